package ics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStamp_ISO8601(t *testing.T) {
	tests := []struct {
		name  string
		stamp Stamp
		want  string
	}{
		{
			name:  "date and time",
			stamp: Stamp{Year: 2024, Month: 3, Day: 9, Hour: 7, Minute: 5, Second: 1, HasDate: true, HasTime: true, HasSeconds: true},
			want:  "2024-03-09T07:05:01",
		},
		{
			name:  "no seconds",
			stamp: Stamp{Year: 2024, Month: 3, Day: 9, Hour: 7, Minute: 5, HasDate: true, HasTime: true},
			want:  "2024-03-09T07:05",
		},
		{name: "date only", stamp: Stamp{Year: 999, Month: 12, Day: 31, HasDate: true}, want: "0999-12-31"},
		{name: "time only", stamp: Stamp{Hour: 23, Minute: 59, HasTime: true}, want: "T23:59"},
		{name: "empty", stamp: Stamp{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stamp.ISO8601())
			if tt.want == "" {
				return
			}
			back, err := ParseISO8601(tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.stamp, back)
		})
	}
}

func TestParseISO8601(t *testing.T) {
	s, err := ParseISO8601("2024-03-09T07:05:01.5")
	require.NoError(t, err)
	assert.Equal(t, 50, s.Hundredths)

	s, err = ParseISO8601("2024-03-09T07:05:01.1234")
	require.NoError(t, err)
	assert.Equal(t, 12, s.Hundredths)

	for _, bad := range []string{"", "2024-3-9", "20240309", "T7:05", "2024-03-09 07:05"} {
		_, err := ParseISO8601(bad)
		assert.ErrorIs(t, err, ErrParse, bad)
	}
}

func TestStamp_DateTime(t *testing.T) {
	tokyo := mustZone(t, "Asia/Tokyo")
	d := NewDateTime(2024, 1, 2, 3, 4, 5, tokyo)
	s := StampOf(d)
	assert.Equal(t, "2024-01-02T03:04:05", s.ISO8601())
	back, err := s.DateTime(tokyo)
	require.NoError(t, err)
	assert.Equal(t, d, back)

	date := StampOf(NewDate(2024, 1, 2))
	assert.Equal(t, "2024-01-02", date.ISO8601())
	back, err = date.DateTime(tokyo)
	require.NoError(t, err)
	assert.True(t, back.IsDate)

	assert.Equal(t, Stamp{}, StampOf(DateTime{}))
	_, err = Stamp{HasTime: true}.DateTime(nil)
	assert.ErrorIs(t, err, ErrBadParameters)
}
