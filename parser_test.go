package ics

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cal, err := Load("testdata/serialization/input1.ics")
	require.NoError(t, err)
	assert.Equal(t, ComponentVCalendar, cal.Kind())
	assert.Equal(t, "Team", cal.XProperty("X-WR-CALNAME").ValueText())
	assert.Equal(t, 1, cal.CountChildren(ComponentVTimezone))
	require.Len(t, cal.Events(), 1)
	require.Len(t, cal.Todos(), 1)

	event := cal.Events()[0]
	assert.Equal(t, "Daily standup, team A", event.Summary())
	assert.Len(t, event.Attendees(), 2)
	assert.Equal(t, "Doe, John", event.Attendees()[0].Parameter(ParameterCn).Text())

	start, err := event.Start()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", start.Zone.ID())
	occ, err := event.Occurrences(100)
	require.NoError(t, err)
	assert.Len(t, occ, 19, "COUNT=20 less the EXDATE on 2024-06-10")
	for _, d := range occ {
		assert.NotEqual(t, "20240610T090000", d.String())
	}

	due, err := cal.Todos()[0].dateTime(PropertyDue)
	require.NoError(t, err)
	assert.True(t, due.IsDate)

	custom := event.XProperty("X-CUSTOM")
	require.NotNil(t, custom)
	assert.Equal(t, "Hello\nWorld", custom.ValueText())
	assert.Equal(t, "value", custom.XParameter("X-PARAM").Text())

	alarm := event.Child(ComponentVAlarm)
	require.NotNil(t, alarm)
	assert.Same(t, cal, alarm.Root())
}

func TestLoad_MissingFile(t *testing.T) {
	cal, err := Load("testdata/does-not-exist.ics")
	assert.Nil(t, cal)
	assert.ErrorIs(t, err, ErrFile)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device unplugged")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
		msg   string
	}{
		{name: "begin only", input: "BEGIN:VEVENT", err: ErrMalformedData, msg: "ran out of lines in VEVENT"},
		{name: "unterminated", input: "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nBEGIN:VEVENT\r\nUID:1\r\nEND:VEVENT\r\n", err: ErrMalformedData, msg: "ran out of lines in VCALENDAR"},
		{name: "unbalanced end", input: "BEGIN:VCALENDAR\r\nBEGIN:VEVENT\r\nEND:VCALENDAR\r\nEND:VCALENDAR\r\n", err: ErrMalformedData, msg: "VEVENT closed by VCALENDAR"},
		{name: "empty", input: "", err: ErrMalformedData, msg: "no valid component"},
		{name: "blank lines", input: "\r\n\r\n", err: ErrMalformedData, msg: "no valid component"},
		{name: "not begin", input: "VERSION:2.0\r\n", err: ErrMalformedData, msg: "expected BEGIN"},
		{name: "bad first line", input: "::::\r\n", err: ErrMalformedData},
		{name: "bad property line", input: "BEGIN:VEVENT\r\nSUMMARY\r\nEND:VEVENT\r\n", err: ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := LoadText(tt.input)
			assert.Nil(t, c, "no partial tree is returned")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}

	t.Run("reader error", func(t *testing.T) {
		c, err := Parse(failingReader{})
		assert.Nil(t, c)
		assert.EqualError(t, err, "device unplugged")
	})
}

func TestParse_FirstComponentOnly(t *testing.T) {
	c, err := LoadText("\r\nBEGIN:VEVENT\r\nUID:one\r\nEND:VEVENT\r\nBEGIN:VEVENT\r\nUID:two\r\nEND:VEVENT\r\n")
	require.NoError(t, err)
	assert.Equal(t, "one", c.UID())
	assert.Nil(t, c.Parent())
}

func TestParse_ExperimentalAndUnknown(t *testing.T) {
	c, err := LoadText(strings.Join([]string{
		"BEGIN:VCALENDAR",
		"BEGIN:X-PARTY",
		"X-DJ:someone",
		"FLUX-CAPACITOR;POWER=1.21GW:on",
		"END:X-PARTY",
		"BEGIN:VPOLL",
		"END:VPOLL",
		"END:VCALENDAR",
	}, "\n"))
	require.NoError(t, err)

	party := c.Child(ComponentX)
	require.NotNil(t, party)
	assert.Equal(t, "X-PARTY", party.Name())
	assert.Equal(t, "someone", party.XProperty("X-DJ").ValueText())

	flux := party.XProperty("FLUX-CAPACITOR")
	require.NotNil(t, flux)
	assert.Equal(t, "1.21GW", flux.XParameter("POWER").Text())

	assert.Equal(t, 2, c.CountChildren(ComponentX))
	assert.Contains(t, c.Serialize(WithNewLineUnix), "BEGIN:VPOLL\nEND:VPOLL\n")
}

func TestParse_ValueErrorsBecomeMarkers(t *testing.T) {
	c, err := LoadText("BEGIN:VEVENT\nUID:1\nPRIORITY:high\nDTSTART:not-a-date\nEND:VEVENT\n")
	require.NoError(t, err)
	assert.False(t, c.HasProperty(PropertyPriority))
	assert.False(t, c.HasProperty(PropertyDtstart))
	require.Equal(t, 2, c.CountProperties(PropertyXLicError))

	marker := c.Property(PropertyXLicError)
	assert.Equal(t, "VALUE-PARSE-ERROR", marker.Parameter(ParameterXLicErrorType).Text())
	assert.Equal(t, XLicErrorTypes.Code(XLicErrorTypeValueParseError), marker.Parameter(ParameterXLicErrorType).Value())
	assert.Contains(t, marker.ValueText(), "Failed to parse value of PRIORITY property")

	assert.Equal(t, 2, c.StripErrors())
	assert.Equal(t, 0, c.CountProperties(PropertyXLicError))
}

func TestParse_DateTimeForms(t *testing.T) {
	c, err := LoadText(strings.Join([]string{
		"BEGIN:VEVENT",
		"DTSTART:20240101",
		"DTEND;TZID=Asia/Tokyo:20240101T100000",
		"DUE;TZID=Custom/Zone:20240101T100000",
		"DTSTAMP:20240101T000000Z",
		"END:VEVENT",
	}, "\r\n"))
	require.NoError(t, err)

	start, err := c.Start()
	require.NoError(t, err)
	assert.True(t, start.IsDate, "an eight digit DATE-TIME reads as a date")

	end, err := c.End()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", end.Zone.ID())

	due, err := c.dateTime(PropertyDue)
	require.NoError(t, err)
	assert.True(t, due.IsFloating(), "an unknown TZID leaves the time floating")

	stamp, err := c.DtStamp()
	require.NoError(t, err)
	assert.True(t, stamp.IsUTC)
}

func TestCalendarStream_ReadLine(t *testing.T) {
	cs := NewCalendarStream(strings.NewReader("A:1\r\n  two\r\n\tthree\nB:2\n\nC:3"))
	var lines []string
	for {
		l, err := cs.ReadLine()
		if l != nil {
			lines = append(lines, string(*l))
		}
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"A:1 twothree", "B:2", "C:3"}, lines)
}
