package ics

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecurrence_ClearDefaults(t *testing.T) {
	r := NewRecurrence()
	assert.Equal(t, FrequencyNone, r.Freq)
	assert.Equal(t, 1, r.Interval)
	assert.Equal(t, 0, r.Count)
	assert.True(t, r.Until.IsNull())
	assert.Equal(t, WeekdayMonday, r.WeekStart)
	for f := BySecond; f <= BySetPos; f++ {
		assert.Empty(t, r.By(f), f.String())
		for i, v := range r.slots(f) {
			if v != RecurrenceArrayMax {
				t.Fatalf("%s slot %d is %d after Clear", f, i, v)
			}
		}
	}

	require.NoError(t, r.Configure(FrequencyDaily, 3, WithCount(4), WithBy(ByHour, 9, 17)))
	r.Clear()
	assert.True(t, r.Equal(NewRecurrence()))
}

func TestByDayEncoding(t *testing.T) {
	t.Run("bijection", func(t *testing.T) {
		for pos := -53; pos <= 53; pos++ {
			for idx := 0; idx <= 7; idx++ {
				day := weekdayAt(idx)
				v := EncodeByDay(pos, day)
				gotPos, gotDay := DecodeByDay(v)
				if gotPos != pos || gotDay != day {
					t.Fatalf("decode(encode(%d, %s)) = (%d, %s)", pos, day, gotPos, gotDay)
				}
			}
		}
	})

	tests := []struct {
		name string
		pos  int
		day  Weekday
		want int16
	}{
		{name: "first sunday", pos: 1, day: WeekdaySunday, want: 9},
		{name: "every monday", pos: 0, day: WeekdayMonday, want: 2},
		{name: "last saturday", pos: -1, day: WeekdaySaturday, want: -1},
		{name: "second to last friday", pos: -2, day: WeekdayFriday, want: -10},
		{name: "any day", pos: 0, day: WeekdayNone, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeByDay(tt.pos, tt.day))
		})
	}
}

func TestRecurrence_ByDayString(t *testing.T) {
	r := NewRecurrence()
	require.NoError(t, r.SetDays(
		DayPosition{Position: 1, Weekday: WeekdaySunday},
		DayPosition{Position: -1, Weekday: WeekdaySaturday},
	))
	assert.Equal(t, "+1SU,-1SA", r.ByDayString())

	require.NoError(t, r.SetDays(DayPosition{Weekday: WeekdayMonday}, DayPosition{Weekday: WeekdayWednesday}))
	assert.Equal(t, "MO,WE", r.ByDayString())
	assert.Equal(t, "MO,WE", r.ByFieldString(ByDay))

	back, err := ParseRecurrence("FREQ=WEEKLY;BYDAY=" + r.ByDayString())
	require.NoError(t, err)
	assert.Equal(t, []DayPosition{{Weekday: WeekdayMonday}, {Weekday: WeekdayWednesday}}, back.Days())
}

func TestRecurrence_UnsetSlotEndsArray(t *testing.T) {
	r := NewRecurrence()
	r.byMonth[0] = 1
	r.byMonth[1] = RecurrenceArrayMax
	r.byMonth[2] = 3
	assert.Equal(t, []int{1}, r.By(ByMonth))
	assert.Equal(t, "1", r.ByFieldString(ByMonth))
}

func TestRecurrence_SetBy(t *testing.T) {
	r := NewRecurrence()
	require.NoError(t, r.SetBy(ByMonthDay, 1, 15, -1))
	assert.Equal(t, []int{1, 15, -1}, r.By(ByMonthDay))

	require.NoError(t, r.SetBy(ByMonthDay, 2))
	assert.Equal(t, []int{2}, r.By(ByMonthDay), "a new array replaces the old one")

	many := make([]int, ByMonthSize+5)
	for i := range many {
		many[i] = i%12 + 1
	}
	require.NoError(t, r.SetBy(ByMonth, many...))
	assert.Len(t, r.By(ByMonth), ByMonthSize)

	err := r.SetBy(ByHour, int(RecurrenceArrayMax))
	assert.ErrorIs(t, err, ErrBadParameters)
	err = r.SetBy(ByField(42), 1)
	assert.ErrorIs(t, err, ErrBadParameters)

	err = r.SetDays(DayPosition{Position: 54, Weekday: WeekdayMonday})
	assert.ErrorIs(t, err, ErrBadParameters)
}

func TestRecurrence_Configure(t *testing.T) {
	r := NewRecurrence()
	err := r.Configure(FrequencyWeekly, 2,
		WithCount(10),
		WithWeekStart(WeekdaySunday),
		WithByDay(DayPosition{Weekday: WeekdayTuesday}, DayPosition{Weekday: WeekdayThursday}),
	)
	require.NoError(t, err)
	assert.Equal(t, "FREQ=WEEKLY;COUNT=10;INTERVAL=2;BYDAY=TU,TH;WKST=SU", r.String())

	t.Run("bad frequency", func(t *testing.T) {
		r := NewRecurrence()
		err := r.Configure(Frequency("FORTNIGHTLY"), 1)
		assert.ErrorIs(t, err, ErrBadParameters)
		assert.Contains(t, err.Error(), "first parameter")
		assert.Equal(t, FrequencyNone, r.Freq)
	})

	t.Run("not transactional", func(t *testing.T) {
		r := NewRecurrence()
		err := r.Configure(FrequencyMonthly, 1, WithCount(5), WithWeekStart(WeekdayNone), WithCount(7))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fourth parameter")
		assert.Equal(t, FrequencyMonthly, r.Freq, "frequency set before the failure stays")
		assert.Equal(t, 5, r.Count, "count set before the failure stays")
	})

	t.Run("until or count", func(t *testing.T) {
		r := NewRecurrence()
		require.NoError(t, r.Configure(FrequencyDaily, 1, WithUntilOrCount(UntilDate(NewDate(2024, 2, 1)))))
		assert.Equal(t, NewDate(2024, 2, 1), r.Until)
		require.NoError(t, r.Configure(FrequencyDaily, 1, WithUntilOrCount(MaxRows(3))))
		assert.Equal(t, 3, r.Count)
	})

	t.Run("by day through WithBy", func(t *testing.T) {
		err := NewRecurrence().Configure(FrequencyDaily, 1, WithBy(ByDay, 2))
		assert.ErrorIs(t, err, ErrBadParameters)
	})
}

func TestParseRecurrence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		check func(t *testing.T, r *Recurrence)
	}{
		{
			name:  "weekly by day",
			input: "FREQ=WEEKLY;BYDAY=MO,WE;INTERVAL=2",
			want:  "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,WE",
			check: func(t *testing.T, r *Recurrence) {
				assert.Equal(t, []DayPosition{{Weekday: WeekdayMonday}, {Weekday: WeekdayWednesday}}, r.Days())
			},
		},
		{
			name:  "prefixed and positioned",
			input: "RRULE:FREQ=MONTHLY;BYDAY=+1SU,-1SA;COUNT=4",
			want:  "FREQ=MONTHLY;COUNT=4;BYDAY=+1SU,-1SA",
		},
		{
			name:  "year day",
			input: "FREQ=YEARLY;BYYEARDAY=1,100,-1",
			want:  "FREQ=YEARLY;BYYEARDAY=1,100,-1",
			check: func(t *testing.T, r *Recurrence) {
				assert.Equal(t, []int{1, 100, -1}, r.By(ByYearDay))
				assert.Empty(t, r.By(ByMonthDay))
			},
		},
		{
			name:  "until",
			input: "FREQ=DAILY;UNTIL=20240131T235959Z",
			want:  "FREQ=DAILY;UNTIL=20240131T235959Z",
			check: func(t *testing.T, r *Recurrence) {
				assert.True(t, r.Until.IsUTC)
				assert.Equal(t, 31, r.Until.Day)
			},
		},
		{
			name:  "every part",
			input: "FREQ=YEARLY;BYSECOND=0;BYMINUTE=30;BYHOUR=9;BYMONTHDAY=13;BYWEEKNO=20;BYMONTH=5;BYSETPOS=1;WKST=SU",
			want:  "FREQ=YEARLY;BYSECOND=0;BYMINUTE=30;BYHOUR=9;BYMONTHDAY=13;BYWEEKNO=20;BYMONTH=5;BYSETPOS=1;WKST=SU",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRecurrence(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.String())
			if tt.check != nil {
				tt.check(t, r)
			}

			again, err := ParseRecurrence(r.String())
			require.NoError(t, err)
			assert.True(t, r.Equal(again), "round trip of %q", r.String())
		})
	}
}

func TestParseRecurrence_Errors(t *testing.T) {
	for _, input := range []string{
		"",
		"INTERVAL=2",
		"FREQ=FORTNIGHTLY",
		"FREQ=DAILY;INTERVAL=0",
		"FREQ=DAILY;COUNT=x",
		"FREQ=DAILY;UNTIL=tomorrow",
		"FREQ=DAILY;BYDAY=XX",
		"FREQ=DAILY;BYDAY=+60MO",
		"FREQ=DAILY;BYFOO=1",
		"FREQ=DAILY;WKST=NONE",
		"FREQ",
	} {
		t.Run(input, func(t *testing.T) {
			r, err := ParseRecurrence(input)
			assert.Nil(t, r)
			assert.True(t, errors.Is(err, ErrParse), "got %v", err)
		})
	}
}

func TestRecurrence_CloneIsIndependent(t *testing.T) {
	r, err := ParseRecurrence("FREQ=DAILY;BYHOUR=9,17")
	require.NoError(t, err)
	c := r.Clone()
	require.NoError(t, c.SetBy(ByHour, 8))
	assert.Equal(t, []int{9, 17}, r.By(ByHour))
	assert.False(t, r.Equal(c))
	if diff := cmp.Diff([]int{8}, c.By(ByHour)); diff != "" {
		t.Error(diff)
	}
}
