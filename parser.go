package ics

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// CalendarStream reads content lines from an iCalendar stream. Folding, as
// described in RFC 5545 section 3.1, is undone so callers see logical lines
// without CRLF continuations.
type CalendarStream struct {
	r io.Reader
	b *bufio.Reader
}

// NewCalendarStream wraps r so the caller can read unfolded content lines.
func NewCalendarStream(r io.Reader) *CalendarStream {
	return &CalendarStream{
		r: r,
		b: bufio.NewReader(r),
	}
}

// ReadLine reads the next unfolded content line from the stream. Any CRLF
// or LF followed by a space or horizontal tab is removed. The returned
// ContentLine does not include the line terminator.
func (cs *CalendarStream) ReadLine() (*ContentLine, error) {
	r := []byte{}
	c := true
	var err error
	for c {
		var b []byte
		b, err = cs.b.ReadBytes('\n')
		switch {
		case len(b) == 0:
			if err == nil {
				continue
			} else {
				c = false
			}
		case b[len(b)-1] == '\n':
			o := 1
			if len(b) > 1 && b[len(b)-2] == '\r' {
				o = 2
			}
			p, err := cs.b.Peek(1)
			r = append(r, b[:len(b)-o]...)
			if err == io.EOF {
				c = false
			}
			switch {
			case len(p) == 0:
				c = false
			case p[0] == ' ' || p[0] == '\t':
				_, _ = cs.b.Discard(1) // nolint:errcheck
			default:
				c = false
			}
		default:
			r = append(r, b...)
		}
		switch err {
		case nil:
			if len(r) == 0 {
				c = true
			}
		case io.EOF:
			c = false
		default:
			return nil, err
		}
	}
	if len(r) == 0 && err != nil {
		return nil, err
	}
	cl := ContentLine(r)
	return &cl, err
}

// Load parses the first complete component of the ICS file at path.
// Failing to read the file is reported as ErrFile, bad content as
// ErrMalformedData or ErrParse.
func Load(path string) (*Component, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFile, err)
	}
	defer func() {
		_ = f.Close()
	}()
	c, err := Parse(f)
	if err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			return nil, fmt.Errorf("%w: %v", ErrFile, err)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadText parses the first complete component of text.
func LoadText(text string) (*Component, error) {
	return Parse(strings.NewReader(text))
}

// Parse reads the first complete top-level component from r. Anything
// after it is ignored. A stream that ends before the component is closed
// is an error; no partial tree is returned.
func Parse(r io.Reader) (*Component, error) {
	cs := NewCalendarStream(r)
	for ln := 0; ; ln++ {
		l, err := cs.ReadLine()
		if err != nil && err != io.EOF {
			return nil, err
		}
		if l != nil && len(strings.TrimSpace(string(*l))) > 0 {
			line, perr := ParseContentLine(*l)
			if perr != nil {
				return nil, fmt.Errorf("%w: parsing line %d: %v", ErrMalformedData, ln, perr)
			}
			if line.Name != "BEGIN" {
				return nil, fmt.Errorf("%w: expected BEGIN, got %s", ErrMalformedData, line.Name)
			}
			c, perr := parseComponent(cs, line)
			if perr != nil {
				return nil, perr
			}
			return c, nil
		}
		if err == io.EOF {
			return nil, fmt.Errorf("%w: no valid component in stream", ErrMalformedData)
		}
	}
}

func newParsedComponent(name string) *Component {
	name = normalizeName(name)
	kind := ComponentKindFromName(name)
	c := &Component{kind: kind}
	if kind == ComponentX {
		c.xName = name
	}
	return c
}

func parseComponent(cs *CalendarStream, startLine *ContentLineParts) (*Component, error) {
	c := newParsedComponent(startLine.Value)
	cont := true
	for ln := 0; cont; ln++ {
		l, err := cs.ReadLine()
		if err != nil {
			switch err {
			case io.EOF:
				cont = false
			default:
				return nil, err
			}
		}
		if l == nil || len(*l) == 0 {
			continue
		}
		line, err := ParseContentLine(*l)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing %s property %d: %v", ErrParse, c.Name(), ln, err)
		}
		switch line.Name {
		case "END":
			if normalizeName(line.Value) != c.Name() {
				return nil, fmt.Errorf("%w: unbalanced end, %s closed by %s", ErrMalformedData, c.Name(), line.Value)
			}
			return c, nil
		case "BEGIN":
			child, err := parseComponent(cs, line)
			if err != nil {
				return nil, err
			}
			c.addNew(child)
		default:
			c.addParsedProperty(line)
		}
	}
	return nil, fmt.Errorf("%w: ran out of lines in %s", ErrMalformedData, c.Name())
}

// addParsedProperty types a content line into a Property. A value that does
// not decode is dropped and replaced by an X-LIC-ERROR marker on c.
func (c *Component) addParsedProperty(line *ContentLineParts) {
	p := &Property{kind: PropertyKindFromName(line.Name), parent: c}
	if !p.kind.instantiable() || p.kind == PropertyX {
		p.kind = PropertyX
		p.xName = line.Name
	}
	for _, raw := range line.Params {
		param := &Parameter{kind: ParameterKindFromName(raw.Name), values: raw.Values}
		if !param.kind.instantiable() || param.kind == ParameterX {
			param.kind = ParameterX
			param.xName = raw.Name
		}
		if family, ok := parameterEnumFamilies[param.kind]; ok {
			for i, v := range param.values {
				if _, known := family.CodeOf(v); known {
					param.values[i] = normalizeName(v)
				}
			}
		}
		p.params = append(p.params, param)
	}
	kind := p.ValueKind()
	text := line.Value
	if kind == ValueDateTime && len(text) == len(icalDateFormatLocal) {
		kind = ValueDate
	}
	if escaped(kind) {
		text = FromText(text)
	}
	if err := p.setValueText(kind, text); err != nil {
		logger().Debug("dropping property with unparsable value", "property", line.Name, "value", line.Value, "err", err)
		c.addErrorMarker(XLicErrorTypeValueParseError, fmt.Sprintf("Failed to parse value of %s property: %v", line.Name, err))
		return
	}
	c.properties = append(c.properties, p)
}

func (c *Component) addErrorMarker(t XLicErrorType, message string) {
	c.properties = append(c.properties, &Property{
		kind:   PropertyXLicError,
		params: []*Parameter{{kind: ParameterXLicErrorType, values: []string{string(t)}}},
		value:  newValueText(DefaultValueKind(PropertyXLicError), message),
		parent: c,
	})
}
