package ics

import (
	"fmt"
	"regexp"
	"time"
)

const (
	icalTimestampFormatUtc   = "20060102T150405Z"
	icalTimestampFormatLocal = "20060102T150405"
	icalDateFormatLocal      = "20060102"
)

var timeStampVariations = regexp.MustCompile("^([0-9]{8})?([TZ])?([0-9]{6})?(Z)?$")

// DateTime is a civil date or date-time. Zone is nil for floating times and
// for dates; IsUTC marks times written with a trailing "Z". The zero value
// is the null time, which is distinct from any real instant.
type DateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
	IsDate bool
	IsUTC  bool
	Zone   *TimeZone
}

// NewDateTime builds a date-time in tz. A nil tz gives a floating time.
func NewDateTime(year, month, day, hour, minute, second int, tz *TimeZone) DateTime {
	return DateTime{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
		IsUTC:  tz.IsUTC(),
		Zone:   tz,
	}
}

// NewDate builds an all-day date.
func NewDate(year, month, day int) DateTime {
	return DateTime{Year: year, Month: month, Day: day, IsDate: true}
}

// FromTime captures t as a date-time in its own location.
func FromTime(t time.Time) DateTime {
	return NewDateTime(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), ZoneOf(t.Location()))
}

// Now returns the current time in tz, or in the host zone when tz is nil.
func Now(tz *TimeZone) DateTime {
	if tz == nil {
		tz = HostTimeZone()
	}
	return FromTime(time.Now().In(tz.Location())).withZone(tz)
}

func (d DateTime) withZone(tz *TimeZone) DateTime {
	d.Zone = tz
	d.IsUTC = tz.IsUTC()
	return d
}

// IsNull reports whether d is the null time.
func (d DateTime) IsNull() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0 && d.Hour == 0 && d.Minute == 0 && d.Second == 0
}

// IsFloating reports whether d is a date-time bound to no zone.
func (d DateTime) IsFloating() bool {
	return !d.IsDate && !d.IsUTC && d.Zone == nil
}

// IsValid reports whether the fields describe a real calendar date and, for
// date-times, a real clock time. The null time is not valid.
func (d DateTime) IsValid() bool {
	if d.IsNull() || d.Year < 0 || d.Year > 9999 || d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	if d.Day > daysIn(time.Month(d.Month), d.Year) {
		return false
	}
	if d.IsDate {
		return d.Hour == 0 && d.Minute == 0 && d.Second == 0
	}
	return d.Hour >= 0 && d.Hour < 24 && d.Minute >= 0 && d.Minute < 60 && d.Second >= 0 && d.Second <= 60
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Location is the location d is interpreted in. Dates and floating times
// are read as UTC.
func (d DateTime) Location() *time.Location {
	if d.IsDate || d.IsUTC || d.Zone == nil {
		return time.UTC
	}
	return d.Zone.Location()
}

// Time returns d as an instant.
func (d DateTime) Time() time.Time {
	if d.IsDate {
		return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, 0, d.Location())
}

// ConvertTo returns d expressed in tz. Dates are returned unchanged and a
// floating time simply takes on tz.
func (d DateTime) ConvertTo(tz *TimeZone) (DateTime, error) {
	if !d.IsValid() {
		return DateTime{}, fmt.Errorf("%w: date-time is not valid", ErrBadParameters)
	}
	if tz == nil {
		return DateTime{}, fmt.Errorf("%w: no time zone", ErrBadParameters)
	}
	if d.IsDate {
		return d, nil
	}
	if d.IsFloating() {
		return d.withZone(tz), nil
	}
	return FromTime(d.Time().In(tz.Location())).withZone(tz), nil
}

// Compare orders a and b by instant, returning -1, 0 or 1.
func Compare(a, b DateTime) int {
	return a.Time().Compare(b.Time())
}

// String renders d in ICS form, e.g. "20240101", "20240101T090000Z".
func (d DateTime) String() string {
	if d.IsNull() {
		return ""
	}
	if d.IsDate {
		return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
	}
	s := fmt.Sprintf("%04d%02d%02dT%02d%02d%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
	if d.IsUTC {
		s += "Z"
	}
	return s
}

// ParseDateTime reads an ICS DATE or DATE-TIME. tz applies to times that
// carry no "Z" suffix; nil leaves them floating.
func ParseDateTime(text string, tz *TimeZone) (DateTime, error) {
	matched := timeStampVariations.FindStringSubmatch(text)
	if matched == nil || matched[1] == "" {
		return DateTime{}, fmt.Errorf("%w: time value not matched, got '%s'", ErrParse, text)
	}
	tOrZGrp := matched[2]
	zGrp := matched[4]

	var (
		t   time.Time
		err error
	)
	switch {
	case matched[3] != "" && tOrZGrp == "T" && zGrp == "Z":
		t, err = time.ParseInLocation(icalTimestampFormatUtc, text, time.UTC)
		if err == nil {
			return FromTime(t).withZone(utcZone), nil
		}
	case matched[3] != "" && tOrZGrp == "T" && zGrp == "":
		t, err = time.ParseInLocation(icalTimestampFormatLocal, text, time.UTC)
		if err == nil {
			d := FromTime(t)
			d.IsUTC = false
			d.Zone = nil
			if tz != nil {
				d = d.withZone(tz)
			}
			return d, nil
		}
	case matched[3] == "" && zGrp == "" && (tOrZGrp == "" || tOrZGrp == "Z"):
		t, err = time.ParseInLocation(icalDateFormatLocal, matched[1], time.UTC)
		if err == nil {
			return NewDate(t.Year(), int(t.Month()), t.Day()), nil
		}
	default:
		return DateTime{}, fmt.Errorf("%w: time value matched but not supported, got '%s'", ErrParse, text)
	}
	return DateTime{}, fmt.Errorf("%w: %v", ErrParse, err)
}
