package ics

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// XCalNamespace is the RFC 6321 namespace.
const XCalNamespace = "urn:ietf:params:xml:ns:icalendar-2.0"

// xcalValueType names the RFC 6321 element for a value kind. Kinds without
// an XML type of their own are written as text.
func xcalValueType(kind ValueKind) string {
	switch kind {
	case ValueBinary, ValueBoolean, ValueCalAddress, ValueDate, ValueDateTime, ValueDuration, ValueFloat,
		ValueInteger, ValuePeriod, ValueRecur, ValueText, ValueUri, ValueUtcOffset:
		return strings.ToLower(string(kind))
	case ValueX:
		return "unknown"
	}
	return "text"
}

// XCal renders the tree rooted at c as an xCal document.
func (c *Component) XCal() (*etree.Document, error) {
	if err := c.initialized(); err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := doc.CreateElement("icalendar")
	root.CreateAttr("xmlns", XCalNamespace)
	if err := c.xcalElement(root); err != nil {
		return nil, err
	}
	return doc, nil
}

// WriteXCal writes the xCal form of c to w, indented by two spaces.
func (c *Component) WriteXCal(w io.Writer) error {
	doc, err := c.XCal()
	if err != nil {
		return err
	}
	doc.Indent(2)
	_, err = doc.WriteTo(w)
	return err
}

func (c *Component) xcalElement(parent *etree.Element) error {
	e := parent.CreateElement(strings.ToLower(c.Name()))
	if len(c.properties) > 0 {
		props := e.CreateElement("properties")
		for _, p := range c.properties {
			if err := p.xcalElement(props); err != nil {
				return err
			}
		}
	}
	if len(c.children) > 0 {
		comps := e.CreateElement("components")
		for _, child := range c.children {
			if err := child.xcalElement(comps); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Property) xcalElement(parent *etree.Element) error {
	if !p.value.IsSet() {
		return nil
	}
	e := parent.CreateElement(strings.ToLower(p.Name()))
	params := p.params
	if p.value.kind == ValueDate || p.value.kind == ValueDateTime {
		// the element name carries VALUE in xCal
		params = nil
		for _, param := range p.params {
			if param.kind != ParameterValue {
				params = append(params, param)
			}
		}
	}
	if len(params) > 0 {
		pe := e.CreateElement("parameters")
		for _, param := range params {
			el := pe.CreateElement(strings.ToLower(param.Name()))
			for _, v := range param.values {
				el.CreateElement("text").SetText(v)
			}
		}
	}
	typ := xcalValueType(p.value.kind)
	text := p.value.text
	switch p.value.kind {
	case ValueDate, ValueDateTime:
		d, err := ParseDateTime(text, nil)
		if err != nil {
			return fmt.Errorf("%s: %w", p.Name(), err)
		}
		if d.IsDate {
			typ = "date"
		}
		e.CreateElement(typ).SetText(xcalDateTime(d))
		return nil
	case ValueUtcOffset:
		e.CreateElement(typ).SetText(xcalUtcOffset(text))
		return nil
	case ValueRecur:
		xcalRecur(e.CreateElement(typ), text)
		return nil
	}
	e.CreateElement(typ).SetText(text)
	return nil
}

func xcalDateTime(d DateTime) string {
	if d.IsDate {
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
	s := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
	if d.IsUTC {
		s += "Z"
	}
	return s
}

// xcalUtcOffset turns "+0100" into "+01:00" and "-013045" into "-01:30:45".
func xcalUtcOffset(s string) string {
	if len(s) < 5 {
		return s
	}
	out := s[:3] + ":" + s[3:5]
	if len(s) >= 7 {
		out += ":" + s[5:7]
	}
	return out
}

// xcalRecur writes each rule part as its own element, repeating the
// element for list values.
func xcalRecur(e *etree.Element, rule string) {
	for _, part := range strings.Split(rule, ";") {
		name, val, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		name = strings.ToLower(name)
		if name == "until" {
			if d, err := ParseDateTime(val, nil); err == nil {
				val = xcalDateTime(d)
			}
		}
		for _, v := range strings.Split(val, ",") {
			e.CreateElement(name).SetText(v)
		}
	}
}
