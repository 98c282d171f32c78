package ics

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// valueClass groups value kinds by the Go type their payload decodes to.
type valueClass int

const (
	classText valueClass = iota
	classRaw
	classInteger
	classUtcOffset
	classFloat
	classBoolean
	classDate
	classRecur
	classBinary
	classEnum
)

func classOf(kind ValueKind) valueClass {
	if _, ok := valueEnumFamilies[kind]; ok {
		return classEnum
	}
	switch kind {
	case ValueInteger:
		return classInteger
	case ValueUtcOffset:
		return classUtcOffset
	case ValueFloat:
		return classFloat
	case ValueBoolean:
		return classBoolean
	case ValueDate, ValueDateTime:
		return classDate
	case ValueRecur:
		return classRecur
	case ValueBinary:
		return classBinary
	case ValueGeo, ValuePeriod, ValueDuration, ValueTrigger, ValueAttach, ValueDateTimePeriod, ValueRequestStatus:
		return classRaw
	}
	return classText
}

// escaped reports whether values of kind are written with TEXT escaping.
func escaped(kind ValueKind) bool {
	switch kind {
	case ValueText, ValueX, ValueString, ValueQuery:
		return true
	}
	return false
}

// ValueCodec converts between the ICS text of a value and the Go type that
// represents it:
//
//	TEXT, STRING, URI, CAL-ADDRESS, QUERY, X   string
//	GEO, PERIOD, DURATION, TRIGGER, ATTACH,
//	DATE-TIME-PERIOD, REQUEST-STATUS           string, as written
//	INTEGER                                    int
//	UTC-OFFSET                                 int, seconds east of UTC
//	FLOAT                                      float64
//	BOOLEAN                                    bool
//	DATE, DATE-TIME                            DateTime
//	RECUR                                      *Recurrence
//	BINARY                                     []byte
//	ACTION, CLASS, STATUS, METHOD, ...         int, the registry code
//
// Enumerated values decode to the code of their family; a token the family
// does not know decodes to the family's X code. Encoding accepts either the
// code or the token.
type ValueCodec struct {
	// Zone applies to DATE-TIME text without a trailing "Z".
	Zone *TimeZone
}

// Decode turns the logical text of a value into its Go form.
func (c ValueCodec) Decode(kind ValueKind, text string) (any, error) {
	switch classOf(kind) {
	case classText, classRaw:
		return text, nil
	case classInteger:
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("%w: integer %q", ErrParse, text)
		}
		return n, nil
	case classUtcOffset:
		return parseUtcOffset(text)
	case classFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: float %q", ErrParse, text)
		}
		return f, nil
	case classBoolean:
		switch strings.ToUpper(strings.TrimSpace(text)) {
		case "TRUE":
			return true, nil
		case "FALSE":
			return false, nil
		}
		return nil, fmt.Errorf("%w: boolean %q", ErrParse, text)
	case classDate:
		d, err := ParseDateTime(text, c.Zone)
		if err != nil {
			return nil, err
		}
		return d, nil
	case classRecur:
		return ParseRecurrence(text)
	case classBinary:
		b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("%w: binary: %v", ErrParse, err)
		}
		return b, nil
	case classEnum:
		family := valueEnumFamilies[kind]
		code, ok := family.CodeOf(text)
		if !ok {
			return family.xCode(), nil
		}
		return code, nil
	}
	return nil, fmt.Errorf("%w: value kind %s", ErrBadParameters, kind)
}

// Encode turns a Go value into the logical text of a value of kind.
func (c ValueCodec) Encode(kind ValueKind, field any) (string, error) {
	if field == nil {
		return "", fmt.Errorf("%w: no value given for %s", ErrBadParameters, kind)
	}
	bad := func() (string, error) {
		return "", fmt.Errorf("%w: %T is not a %s value", ErrBadParameters, field, kind)
	}
	switch classOf(kind) {
	case classText, classRaw:
		if v, ok := asString(field); ok {
			return v, nil
		}
		return bad()
	case classInteger:
		n, ok := asInt(field)
		if !ok {
			return bad()
		}
		return strconv.Itoa(n), nil
	case classUtcOffset:
		n, ok := asInt(field)
		if !ok {
			if s, isString := field.(string); isString {
				if _, err := parseUtcOffset(s); err != nil {
					return "", err
				}
				return s, nil
			}
			return bad()
		}
		return formatUtcOffset(n), nil
	case classFloat:
		switch v := field.(type) {
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		case float32:
			return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
		}
		if n, ok := asInt(field); ok {
			return strconv.Itoa(n), nil
		}
		return bad()
	case classBoolean:
		v, ok := field.(bool)
		if !ok {
			return bad()
		}
		if v {
			return "TRUE", nil
		}
		return "FALSE", nil
	case classDate:
		d, ok := field.(DateTime)
		if !ok {
			return bad()
		}
		if !d.IsValid() {
			return "", fmt.Errorf("%w: date-time is not valid", ErrBadParameters)
		}
		return d.String(), nil
	case classRecur:
		switch v := field.(type) {
		case *Recurrence:
			if v == nil {
				return "", ErrNotInitialized
			}
			return v.String(), nil
		case Recurrence:
			return v.String(), nil
		case string:
			r, err := ParseRecurrence(v)
			if err != nil {
				return "", err
			}
			return r.String(), nil
		}
		return bad()
	case classBinary:
		v, ok := field.([]byte)
		if !ok {
			return bad()
		}
		return base64.StdEncoding.EncodeToString(v), nil
	case classEnum:
		return encodeEnum(valueEnumFamilies[kind], field)
	}
	return bad()
}

// encodeEnum accepts a registry code or a token. The X code carries no text
// of its own, so it cannot be set by code.
func encodeEnum(family enumFamily, field any) (string, error) {
	if s, ok := asString(field); ok {
		if s == "" {
			return "", fmt.Errorf("%w: empty %s value", ErrBadParameters, family.Name())
		}
		if _, known := family.CodeOf(s); known {
			return normalizeName(s), nil
		}
		return s, nil
	}
	code, ok := asInt(field)
	if !ok {
		return "", fmt.Errorf("%w: %T is not a %s value", ErrBadParameters, field, family.Name())
	}
	token, valid := family.TokenOf(code)
	if !valid {
		return "", fmt.Errorf("%w: %d is not a %s constant", ErrBadParameters, code, family.Name())
	}
	if code == family.xCode() {
		return "", fmt.Errorf("%w: experimental %s value needs text", ErrBadParameters, family.Name())
	}
	return token, nil
}

// asString accepts strings, named string types such as Action, and
// fmt.Stringer.
func asString(field any) (string, bool) {
	switch v := field.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}
	if rv := reflect.ValueOf(field); rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func asInt(field any) (int, bool) {
	switch v := field.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	}
	return 0, false
}

// parseUtcOffset reads ("+" / "-") HHMM[SS].
func parseUtcOffset(text string) (int, error) {
	text = strings.TrimSpace(text)
	if len(text) != 5 && len(text) != 7 || (text[0] != '+' && text[0] != '-') {
		return 0, fmt.Errorf("%w: utc-offset %q", ErrParse, text)
	}
	var parts [3]int
	for i := 0; 1+i*2 < len(text); i++ {
		n, err := strconv.Atoi(text[1+i*2 : 3+i*2])
		if err != nil {
			return 0, fmt.Errorf("%w: utc-offset %q", ErrParse, text)
		}
		parts[i] = n
	}
	secs := parts[0]*3600 + parts[1]*60 + parts[2]
	if text[0] == '-' {
		secs = -secs
	}
	return secs, nil
}

func formatUtcOffset(secs int) string {
	sign := '+'
	if secs < 0 {
		sign = '-'
		secs = -secs
	}
	s := fmt.Sprintf("%c%02d%02d", sign, secs/3600, secs/60%60)
	if secs%60 != 0 {
		s += fmt.Sprintf("%02d", secs%60)
	}
	return s
}
