package ics

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertiesToTable(t *testing.T) {
	event := NewEvent("table@example.com")
	chair, err := NewParameter(ParameterRole, ParticipationRoleChair)
	require.NoError(t, err)
	cn, err := NewParameter(ParameterCn, "Alice")
	require.NoError(t, err)
	_, err = event.AddAttendee("alice@example.com", cn, chair)
	require.NoError(t, err)
	_, err = event.AddAttendee("mailto:bob@example.com")
	require.NoError(t, err)

	table, err := event.PropertiesToTable(PropertyAttendee, "", ParameterCn, ParameterRole)
	require.NoError(t, err)
	want := &Table{
		Columns: []string{"content", "CN", "ROLE"},
		Rows: [][]any{
			{"mailto:alice@example.com", "Alice", ParticipationRoles.Code(ParticipationRoleChair)},
			{"mailto:bob@example.com", nil, nil},
		},
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("PropertiesToTable() mismatch (-want +got):\n%s", diff)
	}

	empty, err := event.PropertiesToTable(PropertyComment, "text")
	require.NoError(t, err)
	assert.Equal(t, []string{"text"}, empty.Columns)
	assert.Empty(t, empty.Rows)

	_, err = event.PropertiesToTable(PropertyAttendee, "", "COLOUR")
	assert.ErrorIs(t, err, ErrBadParameters)
}

func TestTableToProperties(t *testing.T) {
	event := NewEvent("table@example.com")
	added, err := event.TableToProperties(PropertyAttendee, "address", &Table{
		Columns: []string{"Address", "cn", "role", "x-team"},
		Rows: [][]any{
			{"mailto:cy@example.com", "Cy", "OPT-PARTICIPANT", "blue"},
			{"mailto:dan@example.com", nil, ParticipationRoles.Code(ParticipationRoleChair)},
		},
	})
	require.NoError(t, err)
	require.Len(t, added, 2)
	assert.Equal(t, []*Property{added[0], added[1]}, event.Attendees())
	assert.Same(t, event, added[0].Parent())

	assert.Equal(t, "ATTENDEE;CN=Cy;ROLE=OPT-PARTICIPANT;X-TEAM=blue:mailto:cy@example.com\n", added[0].ICSOutput(WithNewLineUnix))
	assert.Equal(t, "ATTENDEE;ROLE=CHAIR:mailto:dan@example.com\n", added[1].ICSOutput(WithNewLineUnix))

	t.Run("value column found by elimination", func(t *testing.T) {
		c := NewEvent("")
		added, err := c.TableToProperties(PropertyComment, "", &Table{
			Columns: []string{"LANGUAGE", "note"},
			Rows:    [][]any{{"en", "first"}, {nil, "second"}},
		})
		require.NoError(t, err)
		require.Len(t, added, 2)
		assert.Equal(t, "COMMENT;LANGUAGE=en:first\n", added[0].ICSOutput(WithNewLineUnix))
		assert.Equal(t, "COMMENT:second\n", added[1].ICSOutput(WithNewLineUnix))
	})

	t.Run("round trip", func(t *testing.T) {
		table, err := event.PropertiesToTable(PropertyAttendee, "", ParameterCn, ParameterRole)
		require.NoError(t, err)
		copied := NewEvent("copy@example.com")
		_, err = copied.TableToProperties(PropertyAttendee, "", table)
		require.NoError(t, err)
		back, err := copied.PropertiesToTable(PropertyAttendee, "", ParameterCn, ParameterRole)
		require.NoError(t, err)
		if diff := cmp.Diff(table, back); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestTableToProperties_Errors(t *testing.T) {
	tests := []struct {
		name        string
		valueColumn string
		table       *Table
	}{
		{name: "no table", table: nil},
		{name: "two value columns", table: &Table{Columns: []string{"a", "b"}}},
		{name: "unknown column", valueColumn: "content", table: &Table{Columns: []string{"content", "COLOUR"}}},
		{name: "long row", valueColumn: "content", table: &Table{Columns: []string{"content"}, Rows: [][]any{{"mailto:a@example.com", "extra"}}}},
		{name: "bad parameter cell", valueColumn: "content", table: &Table{Columns: []string{"content", "ROLE"}, Rows: [][]any{{"mailto:a@example.com", 3.5}}}},
		{name: "bad value cell", valueColumn: "content", table: &Table{Columns: []string{"content"}, Rows: [][]any{{true}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := NewEvent("errors@example.com")
			_, err := event.TableToProperties(PropertyAttendee, tt.valueColumn, tt.table)
			assert.ErrorIs(t, err, ErrBadParameters)
			assert.Empty(t, event.Attendees())
		})
	}

	var none *Component
	_, err := none.TableToProperties(PropertyAttendee, "", &Table{})
	assert.ErrorIs(t, err, ErrNotInitialized)
}
