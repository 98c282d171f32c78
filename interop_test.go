package ics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The output is checked against an independent decoder so the two
// implementations agree on folding, escaping and quoting.
func TestSerialize_ReadByGoIcal(t *testing.T) {
	cal, err := Load("testdata/serialization/input1.ics")
	require.NoError(t, err)

	other, err := ical.NewDecoder(strings.NewReader(cal.Serialize(WithNewLineWindows))).Decode()
	require.NoError(t, err)
	assert.Equal(t, ical.CompCalendar, other.Name)

	events := other.Events()
	require.Len(t, events, 1)
	event := events[0]

	uid, err := event.Props.Text(ical.PropUID)
	require.NoError(t, err)
	assert.Equal(t, "standup@example.com", uid)

	summary, err := event.Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Daily standup, team A", summary)

	description, err := event.Props.Text(ical.PropDescription)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(description, "before the sprint review."))

	berlin := mustZone(t, "Europe/Berlin")
	start, err := event.DateTimeStart(nil)
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, 6, 3, 9, 0, 0, 0, berlin.Location())))

	attendees := event.Props.Values(ical.PropAttendee)
	require.Len(t, attendees, 2)
	assert.Equal(t, "Doe, John", attendees[0].Params.Get(ical.ParamCommonName))
	assert.Equal(t, "mailto:john@example.com", attendees[0].Value)
	assert.Equal(t, "mailto:bob@example.com", attendees[1].Value)

	custom := event.Props.Get("X-CUSTOM")
	require.NotNil(t, custom)
	assert.Equal(t, "value", custom.Params.Get("X-PARAM"))

	var kinds []string
	for _, child := range other.Children {
		kinds = append(kinds, child.Name)
	}
	assert.Equal(t, []string{ical.CompTimezone, ical.CompEvent, ical.CompToDo}, kinds)
}

func TestParse_GoIcalOutput(t *testing.T) {
	src := ical.NewCalendar()
	src.Props.SetText(ical.PropVersion, "2.0")
	src.Props.SetText(ical.PropProductID, "-//go-ical//EN")

	berlin := mustZone(t, "Europe/Berlin")
	vevent := ical.NewComponent(ical.CompEvent)
	vevent.Props.SetText(ical.PropUID, "interop@example.com")
	vevent.Props.SetDateTime(ical.PropDateTimeStamp, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	vevent.Props.SetDateTime(ical.PropDateTimeStart, time.Date(2024, 3, 1, 18, 30, 0, 0, berlin.Location()))
	vevent.Props.SetText(ical.PropSummary, "Dinner; bring wine, cheese")
	rrule := ical.NewProp(ical.PropRecurrenceRule)
	rrule.Value = "FREQ=MONTHLY;COUNT=3"
	vevent.Props.Set(rrule)
	src.Children = append(src.Children, vevent)

	var buf bytes.Buffer
	require.NoError(t, ical.NewEncoder(&buf).Encode(src))

	cal, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, cal.Events(), 1)
	event := cal.Events()[0]
	assert.Equal(t, "interop@example.com", event.UID())
	assert.Equal(t, "Dinner; bring wine, cheese", event.Summary())

	occ, err := event.Occurrences(10)
	require.NoError(t, err)
	var got []string
	for _, d := range occ {
		got = append(got, d.Zone.ID()+":"+d.String())
	}
	assert.Equal(t, []string{
		"Europe/Berlin:20240301T183000",
		"Europe/Berlin:20240401T183000",
		"Europe/Berlin:20240501T183000",
	}, got)
	assert.Equal(t, 0, cal.CheckRestrictions())
}
