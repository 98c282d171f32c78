package ics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParameter(t *testing.T) {
	p, err := NewParameter(ParameterCn, "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "CN=Jane Doe", p.ICSOutput())
	assert.Equal(t, "Jane Doe", p.Value())

	p, err = NewParameter("partstat", ParticipationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, ParameterPartstat, p.Kind())
	assert.Equal(t, ParticipationStatuses.Code(ParticipationStatusAccepted), p.Value())

	p, err = NewParameter(ParameterRole, ParticipationRoles.Code(ParticipationRoleChair))
	require.NoError(t, err)
	assert.Equal(t, "ROLE=CHAIR", p.ICSOutput())

	p, err = NewParameter("x-sound", "loud")
	require.NoError(t, err)
	assert.Equal(t, ParameterX, p.Kind())
	assert.Equal(t, "X-SOUND", p.XName())
	assert.Equal(t, "X-SOUND=loud", p.ICSOutput())

	_, err = NewParameter(ParameterX, "x")
	assert.ErrorIs(t, err, ErrNewFailed)
	_, err = NewParameter("COLOUR", "red")
	assert.ErrorIs(t, err, ErrNewFailed)
	_, err = NewParameter(ParameterAny)
	assert.ErrorIs(t, err, ErrNewFailed)
	_, err = NewParameter(ParameterRsvp, 3.5)
	assert.ErrorIs(t, err, ErrBadParameters)

	_, err = NewXParameter("COLOUR", "red")
	assert.ErrorIs(t, err, ErrBadParameters)
}

func TestParameter_UnknownEnumToken(t *testing.T) {
	p, err := NewParameter(ParameterCutype, "X-ROBOT")
	require.NoError(t, err)
	assert.Equal(t, CalendarUserTypes.Code(CalendarUserTypeX), p.Value())
	assert.Equal(t, "CUTYPE=X-ROBOT", p.ICSOutput())
}

func TestParameter_Output(t *testing.T) {
	tests := []struct {
		name  string
		kind  ParameterKind
		value any
		want  string
	}{
		{name: "uri always quoted", kind: ParameterAltrep, value: "http://example.com/x", want: `ALTREP="http://example.com/x"`},
		{name: "special chars quoted", kind: ParameterCn, value: "Doe, Jane", want: `CN="Doe, Jane"`},
		{name: "caret encoded", kind: ParameterCn, value: "George \"Herb\" Bush\n^", want: `CN=George ^'Herb^' Bush^n^^`},
		{name: "list", kind: ParameterDelegatedTo, value: []string{"mailto:a@example.com", "mailto:b@example.com"}, want: `DELEGATED-TO="mailto:a@example.com","mailto:b@example.com"`},
		{name: "enum normalised", kind: ParameterRsvp, value: "true", want: "RSVP=TRUE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParameter(tt.kind, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.ICSOutput())
		})
	}
}

func TestParameter_CloneIsIndependent(t *testing.T) {
	p, err := NewParameter(ParameterMember, []string{"mailto:a@example.com"})
	require.NoError(t, err)
	c := p.Clone()
	require.NoError(t, c.SetValue([]string{"mailto:b@example.com", "mailto:c@example.com"}))
	assert.Equal(t, []string{"mailto:a@example.com"}, p.Values())
	assert.Equal(t, "mailto:b@example.com,mailto:c@example.com", c.Text())
}
