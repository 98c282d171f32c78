package ics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Stamp is a loosely filled date and time as exchanged with callers that
// keep the date and time parts separately.
type Stamp struct {
	Year       int
	Month      int
	Day        int
	Hour       int
	Minute     int
	Second     int
	Hundredths int
	HasDate    bool
	HasTime    bool
	HasSeconds bool
}

// ISO8601 renders YYYY-MM-DD[THH:MM[:SS]]. The date part appears only when
// present, as does the time part. Hundredths are dropped.
func (s Stamp) ISO8601() string {
	var b strings.Builder
	if s.HasDate {
		fmt.Fprintf(&b, "%04d-%02d-%02d", s.Year, s.Month, s.Day)
	}
	if s.HasTime {
		b.WriteByte('T')
		fmt.Fprintf(&b, "%02d:%02d", s.Hour, s.Minute)
		if s.HasSeconds {
			fmt.Fprintf(&b, ":%02d", s.Second)
		}
	}
	return b.String()
}

var iso8601Pattern = regexp.MustCompile(`^(?:(\d{4})-(\d{2})-(\d{2}))?(?:T(\d{2}):(\d{2})(?::(\d{2})(?:\.(\d{1,2})\d*)?)?)?$`)

// ParseISO8601 reads the forms ISO8601 writes, plus optional fractional
// seconds.
func ParseISO8601(text string) (Stamp, error) {
	m := iso8601Pattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil || (m[1] == "" && m[4] == "") {
		return Stamp{}, fmt.Errorf("%w: not an ISO 8601 date or time: %q", ErrParse, text)
	}
	atoi := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}
	var s Stamp
	if m[1] != "" {
		s.HasDate = true
		s.Year, s.Month, s.Day = atoi(m[1]), atoi(m[2]), atoi(m[3])
	}
	if m[4] != "" {
		s.HasTime = true
		s.Hour, s.Minute = atoi(m[4]), atoi(m[5])
		if m[6] != "" {
			s.HasSeconds = true
			s.Second = atoi(m[6])
		}
		if m[7] != "" {
			h := atoi(m[7])
			if len(m[7]) == 1 {
				h *= 10
			}
			s.Hundredths = h
		}
	}
	return s, nil
}

// StampOf converts a DateTime. Dates produce a stamp without a time part.
func StampOf(d DateTime) Stamp {
	if d.IsNull() {
		return Stamp{}
	}
	s := Stamp{Year: d.Year, Month: d.Month, Day: d.Day, HasDate: true}
	if !d.IsDate {
		s.Hour, s.Minute, s.Second = d.Hour, d.Minute, d.Second
		s.HasTime, s.HasSeconds = true, true
	}
	return s
}

// DateTime converts the stamp, placing times in tz. A stamp without a date
// cannot be converted.
func (s Stamp) DateTime(tz *TimeZone) (DateTime, error) {
	if !s.HasDate {
		return DateTime{}, fmt.Errorf("%w: stamp has no date", ErrBadParameters)
	}
	if !s.HasTime {
		return NewDate(s.Year, s.Month, s.Day), nil
	}
	return NewDateTime(s.Year, s.Month, s.Day, s.Hour, s.Minute, s.Second, tz), nil
}
