package ics

import (
	"fmt"
)

// Value is the typed payload of a property. Its kind is fixed when it is
// created; a payload of another kind needs a new Value.
type Value struct {
	kind ValueKind
	text string
	set  bool
}

// NewValue creates a value of kind, optionally holding field.
func NewValue(kind ValueKind, field ...any) (*Value, error) {
	if _, ok := ValueKinds.Parse(string(kind)); !ok || !kind.instantiable() {
		return nil, fmt.Errorf("%w: value kind %q", ErrNewFailed, kind)
	}
	v := &Value{kind: kind}
	if len(field) > 0 && field[0] != nil {
		if err := v.Set(field[0]); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// newValueText wraps already decoded ICS text.
func newValueText(kind ValueKind, text string) *Value {
	return &Value{kind: kind, text: text, set: true}
}

func (v *Value) Kind() ValueKind {
	if v == nil {
		return ValueNone
	}
	return v.kind
}

// IsSet reports whether the value holds a payload.
func (v *Value) IsSet() bool {
	return v != nil && v.set
}

// Text is the logical, unescaped text of the value.
func (v *Value) Text() string {
	if v == nil {
		return ""
	}
	return v.text
}

// Get decodes the payload. Date-times come back floating or UTC; use
// Property.Value to have TZID applied.
func (v *Value) Get() (any, error) {
	return v.decode(nil)
}

func (v *Value) decode(tz *TimeZone) (any, error) {
	if v == nil || v.kind == "" {
		return nil, ErrNotInitialized
	}
	if !v.set {
		return nil, nil
	}
	return ValueCodec{Zone: tz}.Decode(v.kind, v.text)
}

// Set encodes field as the payload.
func (v *Value) Set(field any) error {
	if v == nil || v.kind == "" {
		return ErrNotInitialized
	}
	text, err := ValueCodec{}.Encode(v.kind, field)
	if err != nil {
		return err
	}
	v.text = text
	v.set = true
	return nil
}

// ICSOutput renders the value as it appears after the colon of a content
// line. An unset value renders as the empty string.
func (v *Value) ICSOutput() string {
	if !v.IsSet() {
		return ""
	}
	if escaped(v.kind) {
		return ToText(v.text)
	}
	return v.text
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
