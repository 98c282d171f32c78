package ics

import (
	"fmt"
	"reflect"
)

// WithLineLength sets the fold width, in octets, for Serialize and
// SerializeTo. Zero or less disables folding.
type WithLineLength int

// WithNewLine sets the line terminator for Serialize and SerializeTo.
type WithNewLine string

// SerializationConfiguration controls how components are written out.
// MaxLength and PropertyMaxLength correspond to the 75 octet line length
// recommendation from RFC 5545 section 3.1. NewLine selects the line
// terminator.
type SerializationConfiguration struct {
	MaxLength         int
	NewLine           string
	PropertyMaxLength int
}

// parseSerializeOps interprets the optional arguments given to Serialize or
// SerializeTo. It accepts WithLineLength, WithNewLine or a
// *SerializationConfiguration. Unsupported types return an error.
func parseSerializeOps(ops []any) (*SerializationConfiguration, error) {
	serializeConfig := defaultSerializationOptions()
	for opi, op := range ops {
		switch op := op.(type) {
		case WithLineLength:
			serializeConfig.MaxLength = int(op)
			serializeConfig.PropertyMaxLength = int(op)
		case WithNewLine:
			serializeConfig.NewLine = string(op)
		case *SerializationConfiguration:
			if op == nil {
				continue
			}
			return op, nil
		case error:
			return nil, op
		default:
			return nil, fmt.Errorf("%w: unknown op %d of type %s", ErrBadParameters, opi, reflect.TypeOf(op))
		}
	}
	return serializeConfig, nil
}

// defaultSerializationOptions folds at 75 octets and uses the platform
// newline.
func defaultSerializationOptions() *SerializationConfiguration {
	return &SerializationConfiguration{
		MaxLength:         75,
		PropertyMaxLength: 75,
		NewLine:           string(NewLine),
	}
}
