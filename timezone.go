package ics

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"
)

// TimeZone is a named IANA zone. A nil *TimeZone on a DateTime means the
// time is floating.
type TimeZone struct {
	id  string
	loc *time.Location
}

var utcZone = &TimeZone{id: "UTC", loc: time.UTC}

// UTC returns the shared UTC zone.
func UTC() *TimeZone {
	return utcZone
}

// LoadTimeZone resolves an IANA zone name. "UTC" is matched without regard
// to case and an empty name selects the host zone.
func LoadTimeZone(name string) (*TimeZone, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return HostTimeZone(), nil
	case strings.EqualFold(name, "UTC"), strings.EqualFold(name, "Z"):
		return utcZone, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown time zone %q: %v", ErrBadParameters, name, err)
	}
	return &TimeZone{id: name, loc: loc}, nil
}

// ZoneOf wraps a *time.Location.
func ZoneOf(loc *time.Location) *TimeZone {
	if loc == nil || loc == time.UTC {
		return utcZone
	}
	return &TimeZone{id: loc.String(), loc: loc}
}

// ID is the IANA identifier, also used as the TZID parameter.
func (z *TimeZone) ID() string {
	if z == nil {
		return ""
	}
	return z.id
}

func (z *TimeZone) String() string {
	return z.ID()
}

// Location returns the backing location, time.UTC for a nil zone.
func (z *TimeZone) Location() *time.Location {
	if z == nil || z.loc == nil {
		return time.UTC
	}
	return z.loc
}

func (z *TimeZone) IsUTC() bool {
	return z != nil && (z == utcZone || z.loc == time.UTC)
}

// Equal compares zones by identifier.
func (z *TimeZone) Equal(o *TimeZone) bool {
	if z == nil || o == nil {
		return z == o
	}
	return z.IsUTC() && o.IsUTC() || z.id == o.id
}

// HostTimeZone returns the zone the operating system is configured with,
// falling back to UTC when it cannot be mapped onto an IANA name.
func HostTimeZone() *TimeZone {
	name, _ := hostZone()
	if name == "" {
		logger().Debug("host time zone unavailable, using UTC")
		return utcZone
	}
	z, err := LoadTimeZone(name)
	if err != nil {
		logger().Debug("host time zone unknown, using UTC", "name", name, "err", err)
		return utcZone
	}
	return z
}

// CurrentZone describes the host zone at the moment of the call.
type CurrentZone struct {
	Name       string
	IsDaylight bool
}

// CurrentTimezone reports the host zone and whether daylight saving time is
// in effect right now. It is not cached since the answer changes over the
// year.
func CurrentTimezone() CurrentZone {
	name, daylight := hostZone()
	if name == "" {
		return CurrentZone{Name: "UTC"}
	}
	if _, err := LoadTimeZone(name); err != nil {
		return CurrentZone{Name: "UTC"}
	}
	return CurrentZone{Name: name, IsDaylight: daylight}
}

// TimezoneInfo is one row of the built-in zone catalog.
type TimezoneInfo struct {
	TZID      string
	Name      string
	Location  string
	Latitude  float64
	Longitude float64
	TZNames   []string
	Zone      *TimeZone
}

//go:embed zones.tab
var zonesTab []byte

var (
	catalogOnce sync.Once
	catalog     []TimezoneInfo
)

// BuiltinTimezones lists every zone of the embedded catalog. The slice is
// built once and shared; callers must not modify it.
func BuiltinTimezones() []TimezoneInfo {
	catalogOnce.Do(func() {
		catalog = parseZonesTab(zonesTab, time.Now().Year())
	})
	return catalog
}

func parseZonesTab(data []byte, year int) []TimezoneInfo {
	var rows []TimezoneInfo
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			continue
		}
		lat, lon, err := parseISO6709(fields[1])
		if err != nil {
			logger().Debug("skipping catalog row", "line", line, "err", err)
			continue
		}
		loc, err := time.LoadLocation(fields[2])
		if err != nil {
			continue
		}
		info := TimezoneInfo{
			TZID:      fields[2],
			Name:      fields[2],
			Location:  fields[2],
			Latitude:  lat,
			Longitude: lon,
			TZNames:   zoneAbbreviations(loc, year),
			Zone:      &TimeZone{id: fields[2], loc: loc},
		}
		if len(fields) > 3 && fields[3] != "" {
			info.Name = fields[2] + " (" + fields[3] + ")"
		}
		rows = append(rows, info)
	}
	return rows
}

// zoneAbbreviations returns the distinct abbreviations in force in January
// and July of year.
func zoneAbbreviations(loc *time.Location, year int) []string {
	var names []string
	for _, m := range []time.Month{time.January, time.July} {
		n, _ := time.Date(year, m, 1, 12, 0, 0, 0, loc).Zone()
		if len(names) == 0 || names[0] != n {
			names = append(names, n)
		}
	}
	return names
}

// parseISO6709 reads the coordinate column of zone.tab, either
// ±DDMM±DDDMM or ±DDMMSS±DDDMMSS.
func parseISO6709(s string) (float64, float64, error) {
	split := strings.IndexAny(s[1:], "+-")
	if split < 0 {
		return 0, 0, fmt.Errorf("%w: coordinates %q", ErrMalformedData, s)
	}
	lat, err := parseCoordinate(s[:split+1], 2)
	if err != nil {
		return 0, 0, err
	}
	lon, err := parseCoordinate(s[split+1:], 3)
	if err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

func parseCoordinate(s string, degreeDigits int) (float64, error) {
	if len(s) < 1+degreeDigits+2 {
		return 0, fmt.Errorf("%w: coordinate %q", ErrMalformedData, s)
	}
	sign := 1.0
	if s[0] == '-' {
		sign = -1
	}
	digits := s[1:]
	parts := []string{digits[:degreeDigits], digits[degreeDigits : degreeDigits+2]}
	if len(digits) >= degreeDigits+4 {
		parts = append(parts, digits[degreeDigits+2:degreeDigits+4])
	}
	var v float64
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("%w: coordinate %q: %v", ErrMalformedData, s, err)
		}
		v += float64(n) / float64([]int{1, 60, 3600}[i])
	}
	return sign * v, nil
}

// OlsonName maps a Windows time zone standard name onto an IANA name. The
// second result is false when the name is not in the table.
func OlsonName(windowsName string) (string, bool) {
	n, ok := windowsToOlson[windowsName]
	return n, ok
}
