package ics

import (
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Property is a named field of a component. It holds parameters in the
// order they were added and exactly one value.
type Property struct {
	kind   PropertyKind
	xName  string
	params []*Parameter
	value  *Value
	parent *Component
}

// NewProperty creates a property of kind with an optional initial value.
// Names starting with "X-" create an experimental property.
func NewProperty(kind PropertyKind, value ...any) (*Property, error) {
	k, ok := PropertyKinds.Parse(string(kind))
	switch {
	case ok && k == PropertyX:
		return nil, fmt.Errorf("%w: experimental property needs a name, use NewXProperty", ErrNewFailed)
	case ok && k.instantiable():
	case isExtensionName(string(kind)):
		return NewXProperty(string(kind), value...)
	default:
		return nil, fmt.Errorf("%w: first parameter, type, is unrecognized: %q", ErrNewFailed, kind)
	}
	p := &Property{kind: k}
	if len(value) > 0 && value[0] != nil {
		if err := p.SetValue(value[0]); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// NewXProperty creates an experimental property. The name must start with
// an "X".
func NewXProperty(name string, value ...any) (*Property, error) {
	name = normalizeName(name)
	if name == "" || name[0] != 'X' {
		return nil, fmt.Errorf("%w: experimental property name %q must start with X", ErrBadParameters, name)
	}
	if k, ok := PropertyKinds.Parse(name); ok && k.instantiable() && k != PropertyX {
		return NewProperty(k, value...)
	}
	p := &Property{kind: PropertyX, xName: name}
	if len(value) > 0 && value[0] != nil {
		if err := p.SetValue(value[0]); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Property) Kind() PropertyKind {
	if p == nil {
		return PropertyNone
	}
	return p.kind
}

// XName is the name of an experimental property.
func (p *Property) XName() string {
	if p == nil {
		return ""
	}
	return p.xName
}

// SetXName renames an experimental property.
func (p *Property) SetXName(name string) error {
	if p == nil || p.kind == "" {
		return ErrNotInitialized
	}
	if p.kind != PropertyX {
		return fmt.Errorf("%w: only experimental properties can be renamed", ErrBadParameters)
	}
	name = normalizeName(name)
	if name == "" || name[0] != 'X' {
		return fmt.Errorf("%w: experimental property name %q must start with X", ErrBadParameters, name)
	}
	p.xName = name
	return nil
}

// Name is the name written to ICS.
func (p *Property) Name() string {
	if p.kind == PropertyX {
		return p.xName
	}
	return string(p.kind)
}

// Description is a human readable name for the property kind.
func (p *Property) Description() string {
	if p == nil {
		return ""
	}
	if p.kind == PropertyX {
		return p.xName
	}
	return fmt.Sprintf("%s (%s)", p.kind, p.ValueKind())
}

// Parent is the component the property is attached to, nil when detached.
func (p *Property) Parent() *Component {
	return p.parent
}

// ValueKind is the kind of the property's value: the kind of the value if
// set, otherwise what VALUE selects, otherwise the default for the property.
func (p *Property) ValueKind() ValueKind {
	if p.value != nil {
		return p.value.kind
	}
	if vp := p.Parameter(ParameterValue); vp != nil {
		if t, ok := ValueDataTypes.Parse(vp.Text()); ok {
			if k, ok := valueKindForDataType(t); ok {
				return k
			}
		}
	}
	return DefaultValueKind(p.kind)
}

// Parameters iterates the parameters of kind, or all parameters for
// ParameterAny and the empty kind. The iterator works on a snapshot.
func (p *Property) Parameters(kind ParameterKind) *Iterator[*Parameter] {
	return newIterator(p.params, matchParameter(kind))
}

func matchParameter(kind ParameterKind) func(*Parameter) bool {
	return func(param *Parameter) bool {
		return kind == ParameterAny || kind == "" || param.kind == kind
	}
}

// Parameter returns the first parameter of kind, or nil.
func (p *Property) Parameter(kind ParameterKind) *Parameter {
	param, _ := p.Parameters(kind).Next()
	return param
}

// XParameter returns the first experimental parameter named name.
func (p *Property) XParameter(name string) *Parameter {
	name = normalizeName(name)
	for _, param := range p.params {
		if param.kind == ParameterX && param.xName == name {
			return param
		}
	}
	return nil
}

// CountParameters counts the parameters of kind.
func (p *Property) CountParameters(kind ParameterKind) int {
	n := 0
	for it := p.Parameters(kind); it.Advance(); {
		n++
	}
	return n
}

// ParameterValues returns the decoded values of the parameters of kind.
func (p *Property) ParameterValues(kind ParameterKind) []any {
	var out []any
	for it := p.Parameters(kind); it.Advance(); {
		out = append(out, it.Item().Value())
	}
	return out
}

// AddParameter attaches a copy of param, replacing any parameter of the
// same kind. Experimental parameters are matched by name. The attached copy
// is returned.
func (p *Property) AddParameter(param *Parameter) (*Parameter, error) {
	if p == nil || p.kind == "" {
		return nil, ErrNotInitialized
	}
	if param == nil || param.kind == "" {
		return nil, fmt.Errorf("%w: parameter is not initialized", ErrBadParameters)
	}
	c := param.Clone()
	kept := p.params[:0]
	for _, existing := range p.params {
		if existing.kind == c.kind && (c.kind != ParameterX || existing.xName == c.xName) {
			continue
		}
		kept = append(kept, existing)
	}
	p.params = append(kept, c)
	return c, nil
}

// AppendParameter attaches a copy of param without removing parameters of
// the same kind.
func (p *Property) AppendParameter(param *Parameter) (*Parameter, error) {
	if p == nil || p.kind == "" {
		return nil, ErrNotInitialized
	}
	if param == nil || param.kind == "" {
		return nil, fmt.Errorf("%w: parameter is not initialized", ErrBadParameters)
	}
	c := param.Clone()
	p.params = append(p.params, c)
	return c, nil
}

// SetParameter is NewParameter followed by AddParameter.
func (p *Property) SetParameter(kind ParameterKind, value any) error {
	param, err := NewParameter(kind, value)
	if err != nil {
		return err
	}
	_, err = p.AddParameter(param)
	return err
}

// RemoveParameter detaches param. Only that exact parameter is removed,
// not others equal to it.
func (p *Property) RemoveParameter(param *Parameter) bool {
	for i, existing := range p.params {
		if existing == param {
			p.params = append(p.params[:i:i], p.params[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveParameters detaches every parameter of kind and reports how many
// were removed.
func (p *Property) RemoveParameters(kind ParameterKind) int {
	match := matchParameter(kind)
	kept := p.params[:0]
	removed := 0
	for _, existing := range p.params {
		if match(existing) {
			removed++
			continue
		}
		kept = append(kept, existing)
	}
	for i := len(kept); i < len(p.params); i++ {
		p.params[i] = nil
	}
	p.params = kept
	return removed
}

// Zone resolves the TZID parameter. Unknown zones resolve to nil, leaving
// the time floating.
func (p *Property) Zone() *TimeZone {
	tzid := p.Parameter(ParameterTzid)
	if tzid == nil || tzid.Text() == "" {
		return nil
	}
	tz, err := LoadTimeZone(tzid.Text())
	if err != nil {
		logger().Debug("unknown TZID, treating time as floating", "property", p.Name(), "tzid", tzid.Text())
		return nil
	}
	return tz
}

// RawValue is the Value node, nil when none has been set.
func (p *Property) RawValue() *Value {
	return p.value
}

// Value decodes the property's value with ValueCodec. DATE-TIME values
// take their zone from TZID.
func (p *Property) Value() (any, error) {
	if p == nil || p.kind == "" {
		return nil, ErrNotInitialized
	}
	if p.value == nil {
		return nil, nil
	}
	var tz *TimeZone
	if p.value.kind == ValueDateTime {
		tz = p.Zone()
	}
	return p.value.decode(tz)
}

// ValueText is the logical text of the value.
func (p *Property) ValueText() string {
	return p.value.Text()
}

// SetValue encodes field with ValueCodec using the property's value kind.
// A DateTime given to a date or date-time property also sets VALUE=DATE or
// TZID to match it.
func (p *Property) SetValue(field any) error {
	if p == nil || p.kind == "" {
		return ErrNotInitialized
	}
	kind := p.ValueKind()
	if d, ok := field.(DateTime); ok && (kind == ValueDate || kind == ValueDateTime) {
		return p.setDateTime(d)
	}
	if p.value == nil {
		v, err := NewValue(kind, field)
		if err != nil {
			return err
		}
		p.value = v
		return nil
	}
	return p.value.Set(field)
}

func (p *Property) setDateTime(d DateTime) error {
	kind := ValueDateTime
	if d.IsDate {
		kind = ValueDate
	}
	v, err := NewValue(kind, d)
	if err != nil {
		return err
	}
	p.value = v
	p.RemoveParameters(ParameterTzid)
	p.RemoveParameters(ParameterValue)
	switch {
	case d.IsDate:
		p.params = append(p.params, &Parameter{kind: ParameterValue, values: []string{string(ValueDataTypeDate)}})
	case d.Zone != nil && !d.IsUTC:
		p.params = append(p.params, &Parameter{kind: ParameterTzid, values: []string{d.Zone.ID()}})
	}
	return nil
}

// setValueText installs already parsed text, checking that it decodes.
func (p *Property) setValueText(kind ValueKind, text string) error {
	v := newValueText(kind, text)
	var tz *TimeZone
	if kind == ValueDateTime {
		tz = p.Zone()
	}
	if _, err := v.decode(tz); err != nil {
		return err
	}
	p.value = v
	return nil
}

// Clone returns a detached deep copy.
func (p *Property) Clone() *Property {
	if p == nil {
		return nil
	}
	c := &Property{kind: p.kind, xName: p.xName, value: p.value.Clone()}
	for _, param := range p.params {
		c.params = append(c.params, param.Clone())
	}
	return c
}

// ICSOutput renders the property as folded content lines. A property
// without a value renders as the empty string.
func (p *Property) ICSOutput(ops ...any) string {
	if p == nil || !p.value.IsSet() {
		return ""
	}
	cfg, err := parseSerializeOps(ops)
	if err != nil {
		return ""
	}
	b := &strings.Builder{}
	_ = p.serialize(b, cfg)
	return b.String()
}

func (p *Property) serialize(w io.Writer, serialConfig *SerializationConfiguration) error {
	if !p.value.IsSet() {
		return nil
	}
	b := &strings.Builder{}
	b.WriteString(p.Name())
	for _, param := range p.params {
		b.WriteByte(';')
		param.writeTo(b)
	}
	b.WriteByte(':')
	b.WriteString(p.value.ICSOutput())
	return writeFolded(w, b.String(), serialConfig)
}

func trimUT8StringUpTo(maxLength int, s string) string {
	length := 0
	lastSpace := -1
	for i, r := range s {
		if r == ' ' {
			lastSpace = i
		}

		newLength := length + utf8.RuneLen(r)
		if newLength > maxLength {
			break
		}
		length = newLength
	}
	if lastSpace > 0 && length < len(s) {
		return s[:lastSpace]
	}

	return s[:length]
}

// writeFolded writes one logical line, folding it so no physical line is
// longer than MaxLength octets. Folds never split a UTF-8 sequence.
func writeFolded(w io.Writer, r string, serialConfig *SerializationConfiguration) error {
	nl := serialConfig.NewLine
	if max := serialConfig.MaxLength; max > 1 && len(r) > max {
		l := trimUT8StringUpTo(max, r)
		if _, err := io.WriteString(w, l+nl); err != nil {
			return err
		}
		r = r[len(l):]

		for len(r) > max-1 {
			l := trimUT8StringUpTo(max-1, r)
			if len(l) == 0 {
				break
			}
			if _, err := io.WriteString(w, " "+l+nl); err != nil {
				return err
			}
			r = r[len(l):]
		}
		r = " " + r
	}
	_, err := io.WriteString(w, r+nl)
	return err
}

var (
	propertyIanaTokenReg *regexp.Regexp
	propertyParamNameReg *regexp.Regexp
)

func init() {
	var err error
	propertyIanaTokenReg, err = regexp.Compile("^[A-Za-z0-9-]{1,}")
	if err != nil {
		log.Panicf("Failed to build regex: %v", err)
	}
	propertyParamNameReg = propertyIanaTokenReg
}

// ContentLine is one unfolded line of an iCalendar stream.
type ContentLine string

// RawParameter is a parameter as it appears in a content line.
type RawParameter struct {
	Name   string
	Values []string
}

// ContentLineParts is a content line split into name, parameters and value
// text, before any typing.
type ContentLineParts struct {
	Name   string
	Params []RawParameter
	Value  string
}

// ParseContentLine splits a content line per RFC 5545 section 3.1:
//
//	contentline = name *(";" param ) ":" value CRLF
func ParseContentLine(contentLine ContentLine) (*ContentLineParts, error) {
	r := &ContentLineParts{}
	tokenPos := propertyIanaTokenReg.FindStringIndex(string(contentLine))
	if tokenPos == nil {
		return nil, fmt.Errorf("%w: no property name in %q", ErrParse, contentLine)
	}
	p := tokenPos[1]
	r.Name = strings.ToUpper(string(contentLine[:p]))
	for {
		if p >= len(contentLine) {
			return nil, fmt.Errorf("%w: property %s has no value", ErrParse, r.Name)
		}
		switch contentLine[p] {
		case ':':
			r.Value = string(contentLine[p+1:])
			return r, nil
		case ';':
			np, err := parsePropertyParam(r, string(contentLine), p+1)
			if err != nil {
				return nil, fmt.Errorf("parsing property %s: %w", r.Name, err)
			}
			p = np
		default:
			return nil, fmt.Errorf("%w: unexpected %q after %s", ErrParse, contentLine[p], r.Name)
		}
	}
}

func parsePropertyParam(r *ContentLineParts, contentLine string, p int) (int, error) {
	tokenPos := propertyParamNameReg.FindStringIndex(contentLine[p:])
	if tokenPos == nil {
		return p, fmt.Errorf("%w: missing parameter name in %s", ErrParse, r.Name)
	}
	k := strings.ToUpper(contentLine[p : p+tokenPos[1]])
	p += tokenPos[1]
	if p >= len(contentLine) || contentLine[p] != '=' {
		return p, fmt.Errorf("%w: missing property value for %s in %s", ErrParse, k, r.Name)
	}
	p++
	param := RawParameter{Name: k}
	for {
		if p >= len(contentLine) {
			return p, fmt.Errorf("%w: parameter %s runs to end of line in %s", ErrParse, k, r.Name)
		}
		var (
			v   string
			err error
		)
		v, p, err = parsePropertyParamValue(contentLine, p)
		if err != nil {
			return 0, fmt.Errorf("parse error: %w %s in %s", err, k, r.Name)
		}
		param.Values = append(param.Values, v)
		if p < len(contentLine) && contentLine[p] == ',' {
			p++
			continue
		}
		r.Params = append(r.Params, param)
		return p, nil
	}
}

var paramCaretDecoder = strings.NewReplacer("^^", "^", "^n", "\n", "^N", "\n", "^'", `"`)

func parsePropertyParamValue(s string, p int) (string, int, error) {
	/*
	   quoted-string = DQUOTE *QSAFE-CHAR DQUOTE

	   QSAFE-CHAR    = WSP / %x21 / %x23-7E / NON-US-ASCII
	   ; Any character except CONTROL and DQUOTE

	   SAFE-CHAR     = WSP / %x21 / %x23-2B / %x2D-39 / %x3C-7E
	                 / NON-US-ASCII
	   ; Any character except CONTROL, DQUOTE, ";", ":", ","

	   CONTROL       = %x00-08 / %x0A-1F / %x7F
	   ; All the controls except HTAB
	*/
	r := make([]byte, 0, len(s)-p)
	quoted := false
	ip := p
	for ; p < len(s); p++ {
		c := s[p]
		switch {
		case c <= 0x08, c >= 0x0A && c <= 0x1F, c == 0x7F:
			return "", 0, fmt.Errorf("%w: unexpected char ascii:%d in property param value", ErrParse, c)
		case c == '"':
			if p == ip {
				quoted = true
				continue
			}
			if quoted {
				return paramCaretDecoder.Replace(string(r)), p + 1, nil
			}
			return "", 0, fmt.Errorf("%w: unexpected double quote in property param value", ErrParse)
		case !quoted && (c == ';' || c == ':' || c == ','):
			return paramCaretDecoder.Replace(string(r)), p, nil
		}
		r = append(r, c)
	}
	if quoted {
		return "", 0, fmt.Errorf("%w: unterminated quoted param value", ErrParse)
	}
	return paramCaretDecoder.Replace(string(r)), p, nil
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	`;`, `\;`,
	`,`, `\,`,
)

// ToText escapes s for use as a TEXT value.
func ToText(s string) string {
	return textEscaper.Replace(s)
}

var textUnescaper = strings.NewReplacer(
	`\\`, `\`,
	`\n`, "\n",
	`\N`, "\n",
	`\;`, `;`,
	`\,`, `,`,
)

// FromText reverses ToText.
func FromText(s string) string {
	return textUnescaper.Replace(s)
}
