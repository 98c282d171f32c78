package ics

import (
	"fmt"
	"time"

	"github.com/samber/mo"
	"github.com/teambition/rrule-go"
)

// DefaultMaxRows caps an expansion that is bounded by a date only.
const DefaultMaxRows = 50000

var rruleFrequencies = map[Frequency]rrule.Frequency{
	FrequencySecondly: rrule.SECONDLY,
	FrequencyMinutely: rrule.MINUTELY,
	FrequencyHourly:   rrule.HOURLY,
	FrequencyDaily:    rrule.DAILY,
	FrequencyWeekly:   rrule.WEEKLY,
	FrequencyMonthly:  rrule.MONTHLY,
	FrequencyYearly:   rrule.YEARLY,
}

// indexed by Weekday.index() - 1
var rruleWeekdays = [...]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

func rruleWeekday(d Weekday, n int) (rrule.Weekday, bool) {
	i := d.index()
	if i < 1 || i > len(rruleWeekdays) {
		return rrule.Weekday{}, false
	}
	wd := rruleWeekdays[i-1]
	return wd.Nth(n), true
}

// UntilDate bounds an expansion by a date.
func UntilDate(to DateTime) mo.Either[DateTime, int] {
	return mo.Left[DateTime, int](to)
}

// MaxRows bounds an expansion by a number of occurrences.
func MaxRows(n int) mo.Either[DateTime, int] {
	return mo.Right[DateTime, int](n)
}

// Expansion yields the occurrences of a rule one at a time. It is finite and
// cannot be restarted; call Expand again to start over.
type Expansion struct {
	next    rrule.Next
	from    DateTime
	to      DateTime
	maxRows int
	rows    int
	done    bool
}

// Expand starts iterating r from the date from. The limit is either a date,
// compared as a UTC instant against each occurrence, or a maximum number of
// occurrences. A date limit is additionally capped at DefaultMaxRows.
// Occurrences are expressed in the zone of from.
func (r *Recurrence) Expand(from DateTime, limit mo.Either[DateTime, int]) (*Expansion, error) {
	if r == nil {
		return nil, ErrNotInitialized
	}
	e, err := newExpansion(from, limit)
	if err != nil {
		return nil, err
	}
	rule, err := r.rrule(from)
	if err != nil {
		return nil, err
	}
	e.next = rule.Iterator()
	return e, nil
}

// ExpandSet expands the recurrence set of r, rdates and exdates. r may be
// nil, in which case from itself is the first occurrence. Each date of
// rdates is added and each occurrence matching a date of exdates is
// dropped; date and floating entries are read as wall clock times in the
// zone of from.
func (r *Recurrence) ExpandSet(from DateTime, rdates, exdates []DateTime, limit mo.Either[DateTime, int]) (*Expansion, error) {
	e, err := newExpansion(from, limit)
	if err != nil {
		return nil, err
	}
	var set rrule.Set
	if r != nil {
		rule, err := r.rrule(from)
		if err != nil {
			return nil, err
		}
		set.RRule(rule)
	} else {
		set.RDate(setTime(from, from))
	}
	for _, d := range rdates {
		set.RDate(setTime(d, from))
	}
	for _, d := range exdates {
		set.ExDate(setTime(d, from))
	}
	e.next = set.Iterator()
	return e, nil
}

func newExpansion(from DateTime, limit mo.Either[DateTime, int]) (*Expansion, error) {
	if !from.IsValid() {
		return nil, fmt.Errorf("%w: first parameter, from date, is not a valid date", ErrBadParameters)
	}
	e := &Expansion{from: from, maxRows: DefaultMaxRows}
	if to, ok := limit.Left(); ok {
		if !to.IsNull() && !to.IsValid() {
			return nil, fmt.Errorf("%w: second parameter, to date, is not a valid date", ErrBadParameters)
		}
		e.to = to
	} else {
		e.maxRows = limit.MustRight()
	}
	return e, nil
}

// setTime places d on the time line of an expansion from from. A date takes
// the time of day of from.
func setTime(d, from DateTime) time.Time {
	loc := from.Location()
	switch {
	case d.IsDate:
		return time.Date(d.Year, time.Month(d.Month), d.Day, from.Hour, from.Minute, from.Second, 0, loc)
	case d.IsFloating():
		return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, 0, loc)
	}
	return d.Time().In(loc)
}

func (r *Recurrence) rrule(from DateTime) (*rrule.RRule, error) {
	opt, err := r.rOption(from)
	if err != nil {
		return nil, err
	}
	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExpansion, err)
	}
	return rule, nil
}

func (r *Recurrence) rOption(from DateTime) (rrule.ROption, error) {
	freq, ok := rruleFrequencies[r.Freq]
	if !ok {
		return rrule.ROption{}, fmt.Errorf("%w: rule has no frequency", ErrExpansion)
	}
	loc := from.Location()
	opt := rrule.ROption{
		Freq:       freq,
		Dtstart:    setTime(from, from),
		Interval:   r.Interval,
		Count:      r.Count,
		Bysecond:   r.By(BySecond),
		Byminute:   r.By(ByMinute),
		Byhour:     r.By(ByHour),
		Bymonthday: r.By(ByMonthDay),
		Byyearday:  r.By(ByYearDay),
		Byweekno:   r.By(ByWeekNo),
		Bymonth:    r.By(ByMonth),
		Bysetpos:   r.By(BySetPos),
	}
	if wkst, ok := rruleWeekday(r.WeekStart, 0); ok {
		opt.Wkst = wkst
	}
	for _, d := range r.Days() {
		wd, ok := rruleWeekday(d.Weekday, d.Position)
		if !ok {
			logger().Debug("dropping BYDAY entry without a weekday", "position", d.Position)
			continue
		}
		opt.Byweekday = append(opt.Byweekday, wd)
	}
	if !r.Until.IsNull() {
		switch {
		case r.Until.IsDate:
			opt.Until = time.Date(r.Until.Year, time.Month(r.Until.Month), r.Until.Day, 23, 59, 59, 0, loc)
		case r.Until.IsFloating():
			// floating UNTIL is local time of the start
			opt.Until = time.Date(r.Until.Year, time.Month(r.Until.Month), r.Until.Day, r.Until.Hour, r.Until.Minute, r.Until.Second, 0, loc)
		default:
			opt.Until = r.Until.Time()
		}
	}
	return opt, nil
}

// Next returns the following occurrence. The second result is false once
// the rule is exhausted, the date limit is passed or the row cap is hit.
func (e *Expansion) Next() (DateTime, bool) {
	if e == nil || e.done {
		return DateTime{}, false
	}
	if e.rows >= e.maxRows {
		if e.maxRows > 0 {
			logger().Debug("expansion stopped at row cap", "rows", e.rows)
		}
		e.done = true
		return DateTime{}, false
	}
	t, ok := e.next()
	if !ok {
		e.done = true
		return DateTime{}, false
	}
	occ := e.occurrence(t)
	if !e.to.IsNull() && Compare(occ, e.to) > 0 {
		e.done = true
		return DateTime{}, false
	}
	e.rows++
	return occ, true
}

func (e *Expansion) occurrence(t time.Time) DateTime {
	switch {
	case e.from.IsDate:
		return NewDate(t.Year(), int(t.Month()), t.Day())
	case e.from.IsFloating():
		return NewDateTime(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), nil)
	}
	return FromTime(t).withZone(e.from.Zone)
}

// All drains the expansion.
func (e *Expansion) All() []DateTime {
	var out []DateTime
	for d, ok := e.Next(); ok; d, ok = e.Next() {
		out = append(out, d)
	}
	return out
}

// Occurrence is one row of DatesUntil: the zone aware date and the same
// wall clock time as a time.Time.
type Occurrence struct {
	Date DateTime
	Time time.Time
}

// DatesUntil expands r fully and returns the occurrences as rows.
func (r *Recurrence) DatesUntil(from DateTime, limit mo.Either[DateTime, int]) ([]Occurrence, error) {
	e, err := r.Expand(from, limit)
	if err != nil {
		return nil, err
	}
	var rows []Occurrence
	for d, ok := e.Next(); ok; d, ok = e.Next() {
		rows = append(rows, Occurrence{Date: d, Time: d.Time()})
	}
	return rows, nil
}
