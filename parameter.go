package ics

import (
	"fmt"
	"strings"
)

// Parameter is a named modifier of a property, such as TZID or PARTSTAT.
// Parameters listed in parameterEnumFamilies hold a member of a closed
// enumeration; all others hold text. A parameter may carry a comma
// separated list, as DELEGATED-TO does.
type Parameter struct {
	kind   ParameterKind
	xName  string
	values []string
}

// NewParameter creates a parameter of kind, optionally holding value. The
// kind may also be given as an "X-" name.
func NewParameter(kind ParameterKind, value ...any) (*Parameter, error) {
	p := &Parameter{}
	k, ok := ParameterKinds.Parse(string(kind))
	switch {
	case ok && k == ParameterX:
		return nil, fmt.Errorf("%w: experimental parameter needs a name", ErrNewFailed)
	case ok && k.instantiable():
		p.kind = k
	case isExtensionName(string(kind)) && len(kind) > 2:
		p.kind = ParameterX
		p.xName = normalizeName(string(kind))
	default:
		return nil, fmt.Errorf("%w: first parameter, type, is unrecognized: %q", ErrNewFailed, kind)
	}
	if len(value) > 0 && value[0] != nil {
		if err := p.SetValue(value[0]); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// NewXParameter creates an experimental parameter. name must start with
// "X-".
func NewXParameter(name string, value string) (*Parameter, error) {
	if !isExtensionName(name) || len(name) < 3 {
		return nil, fmt.Errorf("%w: %q is not an experimental parameter name", ErrBadParameters, name)
	}
	return &Parameter{kind: ParameterX, xName: normalizeName(name), values: []string{value}}, nil
}

func (p *Parameter) Kind() ParameterKind {
	if p == nil {
		return ParameterNone
	}
	return p.kind
}

// XName is the name of an experimental parameter.
func (p *Parameter) XName() string {
	if p == nil {
		return ""
	}
	return p.xName
}

// Name is the name written to ICS.
func (p *Parameter) Name() string {
	if p.kind == ParameterX {
		return p.xName
	}
	return string(p.kind)
}

// Text is the parameter value, list members joined by commas.
func (p *Parameter) Text() string {
	if p == nil {
		return ""
	}
	return strings.Join(p.values, ",")
}

// Values returns the list members.
func (p *Parameter) Values() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.values...)
}

// Value returns the registry code for enumerated parameters and the text
// for the others. An unknown token of an enumerated parameter yields the
// family's X code.
func (p *Parameter) Value() any {
	if p == nil || len(p.values) == 0 {
		return nil
	}
	if family, ok := parameterEnumFamilies[p.kind]; ok {
		code, known := family.CodeOf(p.values[0])
		if !known {
			return family.xCode()
		}
		return code
	}
	return p.Text()
}

// SetValue accepts a registry code or token for enumerated parameters and a
// string or list of strings otherwise.
func (p *Parameter) SetValue(v any) error {
	if p == nil || p.kind == "" {
		return ErrNotInitialized
	}
	if family, ok := parameterEnumFamilies[p.kind]; ok {
		token, err := encodeEnum(family, v)
		if err != nil {
			return err
		}
		p.values = []string{token}
		return nil
	}
	if list, ok := v.([]string); ok {
		p.values = append([]string(nil), list...)
		return nil
	}
	text, ok := asString(v)
	if !ok {
		return fmt.Errorf("%w: %T is not a %s parameter value", ErrBadParameters, v, p.Name())
	}
	p.values = []string{text}
	return nil
}

func (p *Parameter) Clone() *Parameter {
	if p == nil {
		return nil
	}
	c := *p
	c.values = append([]string(nil), p.values...)
	return &c
}

// ICSOutput renders NAME=value as it appears in a content line.
func (p *Parameter) ICSOutput() string {
	b := &strings.Builder{}
	p.writeTo(b)
	return b.String()
}

var paramCaretEncoder = strings.NewReplacer("^", "^^", "\n", "^n", `"`, "^'")

func (p *Parameter) writeTo(b *strings.Builder) {
	b.WriteString(p.Name())
	b.WriteByte('=')
	for i, v := range p.values {
		if i > 0 {
			b.WriteByte(',')
		}
		v = paramCaretEncoder.Replace(v)
		if p.kind.IsQuoted() || strings.ContainsAny(v, ";:,") {
			b.WriteByte('"')
			b.WriteString(v)
			b.WriteByte('"')
			continue
		}
		b.WriteString(v)
	}
}
