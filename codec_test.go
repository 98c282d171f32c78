package ics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueCodec_RoundTrip(t *testing.T) {
	codec := ValueCodec{}
	tests := []struct {
		kind  ValueKind
		text  string
		value any
	}{
		{ValueText, "Hello, world", "Hello, world"},
		{ValueCalAddress, "mailto:a@example.com", "mailto:a@example.com"},
		{ValueGeo, "37.386013;-122.082932", "37.386013;-122.082932"},
		{ValueDuration, "PT1H30M", "PT1H30M"},
		{ValueInteger, "-7", -7},
		{ValueUtcOffset, "+0100", 3600},
		{ValueUtcOffset, "-013045", -(3600 + 30*60 + 45)},
		{ValueFloat, "2.5", 2.5},
		{ValueBoolean, "TRUE", true},
		{ValueBoolean, "FALSE", false},
		{ValueDate, "20240101", NewDate(2024, 1, 1)},
		{ValueBinary, "aGVsbG8=", []byte("hello")},
		{ValueStatus, "CONFIRMED", ObjectStatuses.Code(ObjectStatusConfirmed)},
		{ValueAction, "DISPLAY", Actions.Code(ActionDisplay)},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind)+" "+tt.text, func(t *testing.T) {
			got, err := codec.Decode(tt.kind, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)

			text, err := codec.Encode(tt.kind, got)
			require.NoError(t, err)
			assert.Equal(t, tt.text, text)
		})
	}
}

func TestValueCodec_DateTimeZone(t *testing.T) {
	berlin := mustZone(t, "Europe/Berlin")
	got, err := ValueCodec{Zone: berlin}.Decode(ValueDateTime, "20240101T090000")
	require.NoError(t, err)
	d := got.(DateTime)
	assert.Same(t, berlin, d.Zone)

	got, err = ValueCodec{Zone: berlin}.Decode(ValueDateTime, "20240101T090000Z")
	require.NoError(t, err)
	assert.True(t, got.(DateTime).IsUTC)
}

func TestValueCodec_Recur(t *testing.T) {
	got, err := ValueCodec{}.Decode(ValueRecur, "FREQ=DAILY;COUNT=3")
	require.NoError(t, err)
	r, ok := got.(*Recurrence)
	require.True(t, ok)
	assert.Equal(t, 3, r.Count)

	text, err := ValueCodec{}.Encode(ValueRecur, "freq=daily;count=3")
	require.NoError(t, err)
	assert.Equal(t, "FREQ=DAILY;COUNT=3", text)
}

func TestValueCodec_Enum(t *testing.T) {
	codec := ValueCodec{}

	got, err := codec.Decode(ValueMethod, "X-MEETUP")
	require.NoError(t, err)
	assert.Equal(t, Methods.Code(MethodX), got, "unknown tokens decode to the X code")

	text, err := codec.Encode(ValueMethod, MethodPublish)
	require.NoError(t, err)
	assert.Equal(t, "PUBLISH", text)

	text, err = codec.Encode(ValueClass, "private")
	require.NoError(t, err)
	assert.Equal(t, "PRIVATE", text)

	text, err = codec.Encode(ValueMethod, "X-MEETUP")
	require.NoError(t, err)
	assert.Equal(t, "X-MEETUP", text)

	_, err = codec.Encode(ValueMethod, Methods.Code(MethodX))
	assert.ErrorIs(t, err, ErrBadParameters)
	_, err = codec.Encode(ValueMethod, 1)
	assert.ErrorIs(t, err, ErrBadParameters)
	_, err = codec.Encode(ValueMethod, "")
	assert.ErrorIs(t, err, ErrBadParameters)
}

func TestValueCodec_Errors(t *testing.T) {
	codec := ValueCodec{}
	for _, tt := range []struct {
		kind ValueKind
		text string
	}{
		{ValueInteger, "seven"},
		{ValueUtcOffset, "0100"},
		{ValueUtcOffset, "+01"},
		{ValueFloat, "1,5"},
		{ValueBoolean, "yes"},
		{ValueDateTime, "tomorrow"},
		{ValueBinary, "***"},
		{ValueRecur, "COUNT=3"},
	} {
		_, err := codec.Decode(tt.kind, tt.text)
		assert.ErrorIs(t, err, ErrParse, "%s %q", tt.kind, tt.text)
	}

	for _, tt := range []struct {
		kind  ValueKind
		field any
	}{
		{ValueInteger, "7"},
		{ValueBoolean, "TRUE"},
		{ValueDate, "20240101"},
		{ValueDate, DateTime{Year: 2024, Month: 2, Day: 30, IsDate: true}},
		{ValueBinary, "aGVsbG8="},
		{ValueText, nil},
		{ValueText, 42},
	} {
		_, err := codec.Encode(tt.kind, tt.field)
		assert.ErrorIs(t, err, ErrBadParameters, "%s %#v", tt.kind, tt.field)
	}
}

func TestValue(t *testing.T) {
	v, err := NewValue(ValueInteger, 5)
	require.NoError(t, err)
	assert.True(t, v.IsSet())
	assert.Equal(t, "5", v.ICSOutput())
	got, err := v.Get()
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	empty, err := NewValue(ValueText)
	require.NoError(t, err)
	assert.False(t, empty.IsSet())
	assert.Equal(t, "", empty.ICSOutput())
	got, err = empty.Get()
	assert.NoError(t, err)
	assert.Nil(t, got)

	text, err := NewValue(ValueText, "a;b,c\\d\ne")
	require.NoError(t, err)
	assert.Equal(t, `a\;b\,c\\d\ne`, text.ICSOutput())
	assert.Equal(t, "a;b,c\\d\ne", text.Text())

	c := text.Clone()
	require.NoError(t, c.Set("changed"))
	assert.Equal(t, "a;b,c\\d\ne", text.Text())

	_, err = NewValue(ValueNone)
	assert.ErrorIs(t, err, ErrNewFailed)
	_, err = NewValue(ValueKind("COLOUR"))
	assert.ErrorIs(t, err, ErrNewFailed)

	var nilValue *Value
	assert.Equal(t, ValueNone, nilValue.Kind())
	assert.ErrorIs(t, nilValue.Set("x"), ErrNotInitialized)
}
