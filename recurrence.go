package ics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// RecurrenceArrayMax marks an unset slot in a by-array. The first unset
// slot ends the array even if later slots hold values.
const RecurrenceArrayMax int16 = 0x7f7f

// Capacities of the by-arrays, one more than the largest number of distinct
// values each rule part can hold.
const (
	BySecondSize   = 61
	ByMinuteSize   = 61
	ByHourSize     = 25
	ByDaySize      = 364
	ByMonthDaySize = 32
	ByYearDaySize  = 367
	ByWeekNoSize   = 54
	ByMonthSize    = 13
	BySetPosSize   = 367
)

// ByField names one of the by-arrays of a Recurrence.
type ByField int

const (
	BySecond ByField = iota
	ByMinute
	ByHour
	ByDay
	ByMonthDay
	ByYearDay
	ByWeekNo
	ByMonth
	BySetPos
)

var byFieldNames = [...]string{"BYSECOND", "BYMINUTE", "BYHOUR", "BYDAY", "BYMONTHDAY", "BYYEARDAY", "BYWEEKNO", "BYMONTH", "BYSETPOS"}

func (f ByField) String() string {
	if f < 0 || int(f) >= len(byFieldNames) {
		return "BY?"
	}
	return byFieldNames[f]
}

// Recurrence is an RRULE held the way libical holds it: scalar rule parts
// plus one fixed capacity array per BYxxx rule part.
type Recurrence struct {
	Freq      Frequency
	Interval  int
	Until     DateTime
	Count     int
	WeekStart Weekday

	bySecond   [BySecondSize]int16
	byMinute   [ByMinuteSize]int16
	byHour     [ByHourSize]int16
	byDay      [ByDaySize]int16
	byMonthDay [ByMonthDaySize]int16
	byYearDay  [ByYearDaySize]int16
	byWeekNo   [ByWeekNoSize]int16
	byMonth    [ByMonthSize]int16
	bySetPos   [BySetPosSize]int16
}

// NewRecurrence returns a cleared rule.
func NewRecurrence() *Recurrence {
	r := &Recurrence{}
	r.Clear()
	return r
}

// Clear resets every rule part: no frequency, interval 1, no limit, weeks
// starting on Monday and all by-arrays unset.
func (r *Recurrence) Clear() {
	r.Freq = FrequencyNone
	r.Interval = 1
	r.Until = DateTime{}
	r.Count = 0
	r.WeekStart = WeekdayMonday
	for f := BySecond; f <= BySetPos; f++ {
		fill(r.slots(f))
	}
}

func fill(s []int16) {
	for i := range s {
		s[i] = RecurrenceArrayMax
	}
}

func (r *Recurrence) slots(f ByField) []int16 {
	switch f {
	case BySecond:
		return r.bySecond[:]
	case ByMinute:
		return r.byMinute[:]
	case ByHour:
		return r.byHour[:]
	case ByDay:
		return r.byDay[:]
	case ByMonthDay:
		return r.byMonthDay[:]
	case ByYearDay:
		return r.byYearDay[:]
	case ByWeekNo:
		return r.byWeekNo[:]
	case ByMonth:
		return r.byMonth[:]
	case BySetPos:
		return r.bySetPos[:]
	}
	return nil
}

// Clone returns an independent copy.
func (r *Recurrence) Clone() *Recurrence {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// Equal compares every rule part and every slot. A zoned UNTIL matches
// any UNTIL naming the same instant.
func (r *Recurrence) Equal(o *Recurrence) bool {
	if r == nil || o == nil {
		return r == o
	}
	a, b := *r, *o
	if !sameUntil(a.Until, b.Until) {
		return false
	}
	a.Until, b.Until = DateTime{}, DateTime{}
	return a == b
}

func sameUntil(a, b DateTime) bool {
	if a.IsDate != b.IsDate || a.IsFloating() != b.IsFloating() || a.IsNull() != b.IsNull() {
		return false
	}
	if a.IsDate || a.IsFloating() || a.IsNull() {
		a.Zone, b.Zone = nil, nil
		return a == b
	}
	return Compare(a, b) == 0
}

// untilText is UNTIL as RRULE text. A time bound to a zone is written in
// UTC; RFC 5545 section 3.3.10 has no other way to carry the zone.
func untilText(until DateTime) string {
	if until.IsDate || until.IsFloating() || until.IsUTC {
		return until.String()
	}
	utc, err := until.ConvertTo(UTC())
	if err != nil {
		return until.String()
	}
	return utc.String()
}

// Raw returns the packed slots of f up to the first unset one.
func (r *Recurrence) Raw(f ByField) []int16 {
	s := r.slots(f)
	for i, v := range s {
		if v == RecurrenceArrayMax {
			return append([]int16(nil), s[:i]...)
		}
	}
	return append([]int16(nil), s...)
}

// By returns the values of a by-array. For ByDay the packed encoding is
// returned; use Days for the decoded form.
func (r *Recurrence) By(f ByField) []int {
	raw := r.Raw(f)
	out := make([]int, len(raw))
	for i, v := range raw {
		out[i] = int(v)
	}
	return out
}

// SetBy replaces a by-array. Values past the capacity of the array are
// dropped.
func (r *Recurrence) SetBy(f ByField, values ...int) error {
	s := r.slots(f)
	if s == nil {
		return fmt.Errorf("%w: unknown by-field %d", ErrBadParameters, int(f))
	}
	for _, v := range values {
		if v < math.MinInt16 || v > math.MaxInt16 || int16(v) == RecurrenceArrayMax {
			return fmt.Errorf("%w: %s value %d out of range", ErrBadParameters, f, v)
		}
	}
	fill(s)
	for i, v := range values {
		if i >= len(s) {
			break
		}
		s[i] = int16(v)
	}
	return nil
}

// DayPosition is the decoded form of a BYDAY entry: "2nd Tuesday" is
// {Position: 2, Weekday: WeekdayTuesday}. A zero position means every such
// weekday in the period and WeekdayNone means any day.
type DayPosition struct {
	Position int
	Weekday  Weekday
}

// EncodeByDay packs a BYDAY entry as position*8 + weekday.
func EncodeByDay(position int, day Weekday) int16 {
	return int16(position*8 + day.index())
}

// DecodeByDay is the inverse of EncodeByDay.
func DecodeByDay(v int16) (int, Weekday) {
	n := int(v)
	pos := n / 8
	wd := n % 8
	if wd < 0 {
		wd += 8
		pos--
	}
	return pos, weekdayAt(wd)
}

// Days returns the BYDAY entries decoded.
func (r *Recurrence) Days() []DayPosition {
	raw := r.Raw(ByDay)
	out := make([]DayPosition, len(raw))
	for i, v := range raw {
		out[i].Position, out[i].Weekday = DecodeByDay(v)
	}
	return out
}

// SetDays replaces the BYDAY entries. Rows past the array capacity are
// dropped.
func (r *Recurrence) SetDays(days ...DayPosition) error {
	values := make([]int, 0, len(days))
	for _, d := range days {
		if _, ok := Weekdays.Parse(string(d.Weekday)); !ok {
			return fmt.Errorf("%w: unknown weekday %q", ErrBadParameters, d.Weekday)
		}
		if d.Position < -53 || d.Position > 53 {
			return fmt.Errorf("%w: day position %d out of range", ErrBadParameters, d.Position)
		}
		values = append(values, int(EncodeByDay(d.Position, d.Weekday)))
	}
	return r.SetBy(ByDay, values...)
}

// ByFieldString comma joins a by-array. ByDay is rendered as ByDayString
// does.
func (r *Recurrence) ByFieldString(f ByField) string {
	if f == ByDay {
		return r.ByDayString()
	}
	raw := r.Raw(f)
	parts := make([]string, len(raw))
	for i, v := range raw {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ",")
}

// ByDayString renders the BYDAY entries as "+1SU,-1SA". Position 0 means
// every such weekday and renders as the bare weekday, "MO" rather than
// "0MO", so the text parses back under RFC 5545.
func (r *Recurrence) ByDayString() string {
	days := r.Days()
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = d.String()
	}
	return strings.Join(parts, ",")
}

func (d DayPosition) String() string {
	var b strings.Builder
	if d.Position > 0 {
		b.WriteByte('+')
	}
	if d.Position != 0 {
		b.WriteString(strconv.Itoa(d.Position))
	}
	if d.Weekday != WeekdayNone {
		b.WriteString(string(d.Weekday))
	}
	return b.String()
}

// RecurrenceOption sets one rule part during Configure.
type RecurrenceOption func(*Recurrence) error

// Configure sets the frequency and interval and then applies opts in order.
// It is not transactional: when an option fails, the rule parts set before
// it stay set.
func (r *Recurrence) Configure(freq Frequency, interval int, opts ...RecurrenceOption) error {
	if r == nil {
		return ErrNotInitialized
	}
	if _, ok := Frequencies.Parse(string(freq)); !ok {
		return fmt.Errorf("%w: first parameter unrecognized, expected frequency constant, got %q", ErrBadParameters, freq)
	}
	r.Freq = freq
	if interval < 1 {
		return fmt.Errorf("%w: second parameter unrecognized, expected interval of at least 1, got %d", ErrBadParameters, interval)
	}
	r.Interval = interval
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return err
		}
	}
	return nil
}

// WithUntil bounds the rule by a date. It leaves Count as it is.
func WithUntil(until DateTime) RecurrenceOption {
	return func(r *Recurrence) error {
		if !until.IsNull() && !until.IsValid() {
			return fmt.Errorf("%w: until date is not valid", ErrBadParameters)
		}
		r.Until = until
		return nil
	}
}

// WithCount bounds the rule by a number of occurrences. It leaves Until as
// it is.
func WithCount(count int) RecurrenceOption {
	return func(r *Recurrence) error {
		if count < 0 {
			return fmt.Errorf("%w: count %d is negative", ErrBadParameters, count)
		}
		r.Count = count
		return nil
	}
}

// WithUntilOrCount takes the limit in either form.
func WithUntilOrCount(limit mo.Either[DateTime, int]) RecurrenceOption {
	return func(r *Recurrence) error {
		if until, ok := limit.Left(); ok {
			return WithUntil(until)(r)
		}
		return WithCount(limit.MustRight())(r)
	}
}

func WithWeekStart(day Weekday) RecurrenceOption {
	return func(r *Recurrence) error {
		if _, ok := Weekdays.Parse(string(day)); !ok || day == WeekdayNone {
			return fmt.Errorf("%w: fourth parameter unrecognized, expected week start constant, got %q", ErrBadParameters, day)
		}
		r.WeekStart = day
		return nil
	}
}

// WithBy replaces one numeric by-array.
func WithBy(f ByField, values ...int) RecurrenceOption {
	return func(r *Recurrence) error {
		if f == ByDay {
			return fmt.Errorf("%w: use WithByDay for BYDAY", ErrBadParameters)
		}
		return r.SetBy(f, values...)
	}
}

// WithByDay replaces the BYDAY entries.
func WithByDay(days ...DayPosition) RecurrenceOption {
	return func(r *Recurrence) error {
		return r.SetDays(days...)
	}
}

// String renders the rule in RRULE text form, the parts ordered as libical
// writes them.
func (r *Recurrence) String() string {
	if r == nil {
		return ""
	}
	parts := []string{"FREQ=" + string(r.Freq)}
	if !r.Until.IsNull() {
		parts = append(parts, "UNTIL="+untilText(r.Until))
	}
	if r.Count != 0 {
		parts = append(parts, "COUNT="+strconv.Itoa(r.Count))
	}
	if r.Interval != 1 {
		parts = append(parts, "INTERVAL="+strconv.Itoa(r.Interval))
	}
	for f := BySecond; f <= BySetPos; f++ {
		if s := r.ByFieldString(f); s != "" {
			parts = append(parts, f.String()+"="+s)
		}
	}
	if r.WeekStart != WeekdayMonday && r.WeekStart != WeekdayNone {
		parts = append(parts, "WKST="+string(r.WeekStart))
	}
	return strings.Join(parts, ";")
}

// ParseRecurrence reads an RRULE value such as
// "FREQ=WEEKLY;BYDAY=MO,WE;INTERVAL=2".
func ParseRecurrence(text string) (*Recurrence, error) {
	text = strings.TrimPrefix(strings.TrimSpace(text), "RRULE:")
	if text == "" {
		return nil, fmt.Errorf("%w: empty rule", ErrParse)
	}
	r := NewRecurrence()
	var hasFreq bool
	for _, part := range strings.Split(text, ";") {
		if part == "" {
			continue
		}
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("%w: invalid rule part: %q", ErrParse, part)
		}
		key = strings.ToUpper(strings.TrimSpace(key))
		val = strings.TrimSpace(val)
		switch key {
		case "FREQ":
			f, ok := Frequencies.Parse(val)
			if !ok || f == FrequencyNone {
				return nil, fmt.Errorf("%w: unknown frequency: %q", ErrParse, val)
			}
			r.Freq = f
			hasFreq = true
		case "INTERVAL":
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: invalid interval: %q", ErrParse, val)
			}
			r.Interval = n
		case "COUNT":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: invalid count: %q", ErrParse, val)
			}
			r.Count = n
		case "UNTIL":
			until, err := ParseDateTime(val, nil)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid UNTIL: %q", ErrParse, val)
			}
			r.Until = until
		case "WKST":
			d, ok := Weekdays.Parse(val)
			if !ok || d == WeekdayNone {
				return nil, fmt.Errorf("%w: invalid WKST: %q", ErrParse, val)
			}
			r.WeekStart = d
		case "BYDAY":
			days, err := parseDayList(val)
			if err != nil {
				return nil, err
			}
			if err := r.SetDays(days...); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrParse, err)
			}
		default:
			f, ok := byFieldByName(key)
			if !ok {
				return nil, fmt.Errorf("%w: unsupported rule key: %q", ErrParse, key)
			}
			values, err := parseIntList(val)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrParse, key, err)
			}
			if err := r.SetBy(f, values...); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrParse, err)
			}
		}
	}
	if !hasFreq {
		return nil, fmt.Errorf("%w: FREQ is required", ErrParse)
	}
	return r, nil
}

func byFieldByName(name string) (ByField, bool) {
	for i, n := range byFieldNames {
		if n == name {
			return ByField(i), true
		}
	}
	return 0, false
}

func parseIntList(val string) ([]int, error) {
	var out []int
	for _, s := range strings.Split(val, ",") {
		n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "+"))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func parseDayList(val string) ([]DayPosition, error) {
	var out []DayPosition
	for _, s := range strings.Split(val, ",") {
		s = strings.ToUpper(strings.TrimSpace(s))
		if len(s) < 2 {
			return nil, fmt.Errorf("%w: unknown day: %q", ErrParse, s)
		}
		day, ok := Weekdays.Parse(s[len(s)-2:])
		if !ok || day == WeekdayNone {
			return nil, fmt.Errorf("%w: unknown day: %q", ErrParse, s)
		}
		var pos int
		if prefix := strings.TrimPrefix(s[:len(s)-2], "+"); prefix != "" {
			n, err := strconv.Atoi(prefix)
			if err != nil {
				return nil, fmt.Errorf("%w: unknown day: %q", ErrParse, s)
			}
			pos = n
		}
		out = append(out, DayPosition{Position: pos, Weekday: day})
	}
	return out, nil
}
