package ics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	berlin := mustZone(t, "Europe/Berlin")
	tests := []struct {
		name   string
		input  string
		zone   *TimeZone
		want   string
		date   bool
		utc    bool
		noZone bool
	}{
		{name: "utc", input: "20240101T090000Z", zone: berlin, want: "20240101T090000Z", utc: true},
		{name: "floating", input: "20240101T090000", want: "20240101T090000", noZone: true},
		{name: "zoned", input: "20240101T090000", zone: berlin, want: "20240101T090000"},
		{name: "date", input: "20240229", zone: berlin, want: "20240229", date: true, noZone: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDateTime(tt.input, tt.zone)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
			assert.Equal(t, tt.date, d.IsDate)
			assert.Equal(t, tt.utc, d.IsUTC)
			assert.Equal(t, tt.noZone, d.Zone == nil)
			assert.True(t, d.IsValid())
		})
	}

	for _, bad := range []string{"", "2024", "20240101T", "20240101T0900", "20241301", "20240101X090000", "T090000"} {
		t.Run("bad "+bad, func(t *testing.T) {
			_, err := ParseDateTime(bad, nil)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestDateTime_IsValid(t *testing.T) {
	assert.False(t, DateTime{}.IsValid(), "the null time is not valid")
	assert.True(t, DateTime{}.IsNull())
	assert.True(t, NewDate(2024, 2, 29).IsValid())
	assert.False(t, NewDate(2023, 2, 29).IsValid())
	assert.False(t, NewDate(2024, 4, 31).IsValid())
	assert.False(t, NewDateTime(2024, 1, 1, 24, 0, 0, nil).IsValid())
	assert.False(t, NewDateTime(2024, 1, 1, 0, 60, 0, nil).IsValid())
	assert.True(t, NewDateTime(2016, 12, 31, 23, 59, 60, UTC()).IsValid(), "leap second")
	assert.False(t, DateTime{Year: 2024, Month: 1, Day: 1, Hour: 3, IsDate: true}.IsValid())
}

func TestDateTime_Location(t *testing.T) {
	tokyo := mustZone(t, "Asia/Tokyo")
	assert.Equal(t, time.UTC, NewDate(2024, 1, 1).Location())
	assert.Equal(t, time.UTC, NewDateTime(2024, 1, 1, 9, 0, 0, nil).Location())
	assert.Equal(t, time.UTC, NewDateTime(2024, 1, 1, 9, 0, 0, UTC()).Location())
	assert.Equal(t, tokyo.Location(), NewDateTime(2024, 1, 1, 9, 0, 0, tokyo).Location())

	d := NewDate(2024, 7, 4)
	assert.True(t, d.Time().Equal(time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)))
}

func TestDateTime_ConvertTo(t *testing.T) {
	berlin := mustZone(t, "Europe/Berlin")
	tokyo := mustZone(t, "Asia/Tokyo")

	t.Run("zone to zone", func(t *testing.T) {
		d := NewDateTime(2024, 7, 1, 20, 30, 0, berlin)
		got, err := d.ConvertTo(tokyo)
		require.NoError(t, err)
		assert.Equal(t, "20240702T033000", got.String(), "Berlin summer is UTC+2, Tokyo UTC+9")
		assert.Equal(t, "Asia/Tokyo", got.Zone.ID())
		assert.Equal(t, 0, Compare(d, got))

		back, err := got.ConvertTo(berlin)
		require.NoError(t, err)
		assert.Equal(t, d.String(), back.String())
	})

	t.Run("to utc", func(t *testing.T) {
		got, err := NewDateTime(2024, 1, 1, 0, 30, 0, berlin).ConvertTo(UTC())
		require.NoError(t, err)
		assert.Equal(t, "20231231T233000Z", got.String(), "conversion rolls back over the year")
		assert.True(t, got.IsUTC)
	})

	t.Run("floating takes the zone", func(t *testing.T) {
		got, err := NewDateTime(2024, 1, 1, 9, 0, 0, nil).ConvertTo(tokyo)
		require.NoError(t, err)
		assert.Equal(t, "20240101T090000", got.String())
		assert.Same(t, tokyo, got.Zone)
	})

	t.Run("dates are unchanged", func(t *testing.T) {
		got, err := NewDate(2024, 1, 1).ConvertTo(tokyo)
		require.NoError(t, err)
		assert.Equal(t, NewDate(2024, 1, 1), got)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := DateTime{}.ConvertTo(tokyo)
		assert.ErrorIs(t, err, ErrBadParameters)
		_, err = NewDate(2024, 1, 1).ConvertTo(nil)
		assert.ErrorIs(t, err, ErrBadParameters)
	})
}

func TestCompare(t *testing.T) {
	berlin := mustZone(t, "Europe/Berlin")
	a := NewDateTime(2024, 1, 1, 10, 0, 0, berlin)
	b := NewDateTime(2024, 1, 1, 9, 0, 0, UTC())
	assert.Equal(t, 0, Compare(a, b))
	assert.Equal(t, -1, Compare(NewDate(2024, 1, 1), a))
	assert.Equal(t, 1, Compare(NewDate(2024, 1, 2), a))
}

func TestNow(t *testing.T) {
	tokyo := mustZone(t, "Asia/Tokyo")
	n := Now(tokyo)
	assert.Same(t, tokyo, n.Zone)
	assert.WithinDuration(t, time.Now(), n.Time(), 5*time.Second)
	assert.True(t, n.IsValid())
}
