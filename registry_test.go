package ics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_Codes(t *testing.T) {
	assert.Equal(t, 23001, ComponentKinds.Code(ComponentNone))
	assert.Equal(t, 23001, ComponentKinds.First())
	assert.Equal(t, ComponentVEvent, ComponentKinds.Kind(ComponentKinds.Code(ComponentVEvent)))
	assert.Equal(t, ComponentNone, ComponentKinds.Kind(ComponentKinds.Last()+1))
	assert.Equal(t, ComponentNone, ComponentKinds.Kind(0))

	assert.Equal(t, 23650, Weekdays.Code(WeekdayNone))
	assert.Equal(t, 23651, Weekdays.Code(WeekdaySunday))
	assert.Equal(t, 23657, Weekdays.Code(WeekdaySaturday))
	assert.Equal(t, 23657, Weekdays.Last())

	assert.Equal(t, 23600, Frequencies.Code(FrequencySecondly))
	assert.Equal(t, FrequencyNone, Frequencies.Kind(Frequencies.Last()))
	assert.Equal(t, Frequencies.Code(FrequencyNone), Frequencies.Code(Frequency("FORTNIGHTLY")), "unknown members report the sentinel code")
}

func TestLookup_Families(t *testing.T) {
	assert.Equal(t, "value", ValueKinds.Name())
	assert.Equal(t, "valuetype", ValueDataTypes.Name())

	families := []interface {
		Name() string
		First() int
		Last() int
	}{
		ComponentKinds, PropertyKinds, ParameterKinds, ValueKinds,
		ActionParams, CalendarUserTypes, Enables, Encodings, FreeBusyTimeTypes, Locals,
		ParticipationStatuses, RecurrenceRanges, AlarmTriggerRelationships, RelationshipTypes,
		ParticipationRoles, Rsvps, ValueDataTypes, XLicCompareTypes, XLicErrorTypes,
		Actions, CarLevels, Classifications, Commands, Methods, QueryLevels, ObjectStatuses,
		TimeTransparencies, XLicClasses, RequestStatuses, Frequencies, Weekdays,
	}
	names := map[string]bool{}
	for i, a := range families {
		assert.False(t, names[a.Name()], "family name %q is taken", a.Name())
		names[a.Name()] = true
		assert.LessOrEqual(t, a.First(), a.Last(), a.Name())
		for _, b := range families[i+1:] {
			overlap := a.First() <= b.Last() && b.First() <= a.Last()
			assert.False(t, overlap, "%s [%d,%d] overlaps %s [%d,%d]", a.Name(), a.First(), a.Last(), b.Name(), b.First(), b.Last())
		}
	}
}

func TestLookup_Parse(t *testing.T) {
	k, ok := Methods.Parse("request")
	assert.True(t, ok)
	assert.Equal(t, MethodRequest, k)

	k, ok = Methods.Parse("SHOUT")
	assert.False(t, ok)
	assert.Equal(t, MethodNone, k)

	code, ok := ObjectStatuses.CodeOf(" confirmed ")
	assert.True(t, ok)
	token, ok := ObjectStatuses.TokenOf(code)
	assert.True(t, ok)
	assert.Equal(t, "CONFIRMED", token)

	_, ok = ObjectStatuses.TokenOf(1)
	assert.False(t, ok)
	assert.Equal(t, ObjectStatuses.Code(ObjectStatusX), ObjectStatuses.xCode())
}

func TestKindFromName(t *testing.T) {
	tests := []struct {
		name     string
		property PropertyKind
	}{
		{"DTSTART", PropertyDtstart},
		{"dtstart", PropertyDtstart},
		{"X-LIC-ERROR", PropertyXLicError},
		{"X-WR-CALNAME", PropertyX},
		{"x-custom", PropertyX},
		{"X", PropertyX},
		{"ANY", PropertyAny},
		{"FLUX-CAPACITOR", PropertyNone},
		{"", PropertyNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.property, PropertyKindFromName(tt.name), tt.name)
	}

	assert.Equal(t, ParameterTzid, ParameterKindFromName("tzid"))
	assert.Equal(t, ParameterX, ParameterKindFromName("X-CUSTOM"))
	assert.Equal(t, ParameterNone, ParameterKindFromName("FOO"))

	assert.Equal(t, ComponentVEvent, ComponentKindFromName("vevent"))
	assert.Equal(t, ComponentX, ComponentKindFromName("X-PARTY"))
	assert.Equal(t, ComponentX, ComponentKindFromName("VPOLL"))
	assert.Equal(t, ComponentX, ComponentKindFromName("ANY"))
}

func TestDefaultValueKind(t *testing.T) {
	tests := map[PropertyKind]ValueKind{
		PropertyExdate:        ValueDateTime,
		PropertyRdate:         ValueDateTimePeriod,
		PropertyAttendee:      ValueCalAddress,
		PropertyTrigger:       ValueTrigger,
		PropertyPriority:      ValueInteger,
		PropertyRrule:         ValueRecur,
		PropertyGeo:           ValueGeo,
		PropertyRequestStatus: ValueRequestStatus,
		PropertyDuration:      ValueDuration,
		PropertySummary:       ValueText,
		PropertyXLicError:     ValueText,
		PropertyX:             ValueX,
	}
	for p, want := range tests {
		assert.Equal(t, want, DefaultValueKind(p), string(p))
	}
}

func TestRequestStatusCode(t *testing.T) {
	assert.Equal(t, RequestStatus2_0, RequestStatusCode("2.0;Success"))
	assert.Equal(t, RequestStatus3_1, RequestStatusCode("3.1;Invalid property value;DTSTART:96-Apr-01"))
	assert.Equal(t, RequestStatusUnknown, RequestStatusCode("7.7;Lucky"))
}
