package ics

import (
	"fmt"
)

// propertyRule bounds how often a property may occur in a component.
// max < 0 means unbounded.
type propertyRule struct {
	kind PropertyKind
	min  int
	max  int
	when func(c *Component) bool
}

func (r propertyRule) expected() string {
	switch {
	case r.min == r.max:
		return fmt.Sprint(r.min)
	case r.max < 0:
		return fmt.Sprintf("%d or more", r.min)
	}
	return fmt.Sprintf("%d or %d", r.min, r.max)
}

// pairRule ties two properties together: either they must not both be
// present, or if and is present then also must be.
type pairRule struct {
	kind      PropertyKind
	other     PropertyKind
	exclusive bool
}

func one(kind PropertyKind) propertyRule {
	return propertyRule{kind: kind, min: 1, max: 1}
}

func optional(kinds ...PropertyKind) []propertyRule {
	rules := make([]propertyRule, 0, len(kinds))
	for _, k := range kinds {
		rules = append(rules, propertyRule{kind: k, min: 0, max: 1})
	}
	return rules
}

func actionIs(a Action) func(c *Component) bool {
	return func(c *Component) bool {
		p := c.Property(PropertyAction)
		return p != nil && normalizeName(p.ValueText()) == string(a)
	}
}

// hasMethod reports whether the calendar containing c carries a METHOD,
// in which case RFC 5546 decides whether DTSTART is needed.
func hasMethod(c *Component) bool {
	for n := c; n != nil; n = n.parent {
		if n.HasProperty(PropertyMethod) {
			return true
		}
	}
	return false
}

var restrictionRules = map[ComponentKind][]propertyRule{
	// https://www.rfc-editor.org/rfc/rfc5545#section-3.6
	ComponentVCalendar: append([]propertyRule{one(PropertyProductId), one(PropertyVersion)},
		optional(PropertyCalscale, PropertyMethod)...),
	// https://www.rfc-editor.org/rfc/rfc5545#section-3.6.1
	ComponentVEvent: append([]propertyRule{
		one(PropertyDtstamp),
		one(PropertyUid),
		{kind: PropertyDtstart, min: 1, max: 1, when: func(c *Component) bool { return !hasMethod(c) }},
	}, optional(PropertyClass, PropertyCreated, PropertyDescription, PropertyGeo, PropertyLastModified,
		PropertyLocation, PropertyOrganizer, PropertyPriority, PropertySequence, PropertyStatus, PropertySummary,
		PropertyTransp, PropertyUrl, PropertyRecurrenceId, PropertyDtend, PropertyDuration)...),
	// https://www.rfc-editor.org/rfc/rfc5545#section-3.6.2
	ComponentVTodo: append([]propertyRule{one(PropertyDtstamp), one(PropertyUid)},
		optional(PropertyClass, PropertyCompleted, PropertyCreated, PropertyDescription, PropertyDtstart,
			PropertyGeo, PropertyLastModified, PropertyLocation, PropertyOrganizer, PropertyPercentComplete,
			PropertyPriority, PropertyRecurrenceId, PropertySequence, PropertyStatus, PropertySummary, PropertyUrl,
			PropertyDue, PropertyDuration)...),
	// https://www.rfc-editor.org/rfc/rfc5545#section-3.6.3
	ComponentVJournal: append([]propertyRule{one(PropertyDtstamp), one(PropertyUid)},
		optional(PropertyClass, PropertyCreated, PropertyDtstart, PropertyLastModified, PropertyOrganizer,
			PropertyRecurrenceId, PropertySequence, PropertyStatus, PropertySummary, PropertyUrl)...),
	// https://www.rfc-editor.org/rfc/rfc5545#section-3.6.4
	ComponentVFreeBusy: append([]propertyRule{one(PropertyDtstamp), one(PropertyUid)},
		optional(PropertyContact, PropertyDtstart, PropertyDtend, PropertyOrganizer, PropertyUrl)...),
	// https://www.rfc-editor.org/rfc/rfc5545#section-3.6.5
	ComponentVTimezone: append([]propertyRule{one(PropertyTzid)},
		optional(PropertyLastModified, PropertyTzurl)...),
	ComponentStandard: {one(PropertyDtstart), one(PropertyTzoffsetto), one(PropertyTzoffsetfrom)},
	ComponentDaylight: {one(PropertyDtstart), one(PropertyTzoffsetto), one(PropertyTzoffsetfrom)},
	// https://www.rfc-editor.org/rfc/rfc5545#section-3.6.6
	ComponentVAlarm: {
		one(PropertyAction),
		one(PropertyTrigger),
		{kind: PropertyDuration, min: 0, max: 1},
		{kind: PropertyRepeat, min: 0, max: 1},
		{kind: PropertyAttach, min: 0, max: 1, when: actionIs(ActionAudio)},
		{kind: PropertyDescription, min: 1, max: 1, when: actionIs(ActionDisplay)},
		{kind: PropertyDescription, min: 1, max: 1, when: actionIs(ActionEmail)},
		{kind: PropertySummary, min: 1, max: 1, when: actionIs(ActionEmail)},
		{kind: PropertyAttendee, min: 1, max: -1, when: actionIs(ActionEmail)},
	},
}

var pairRules = map[ComponentKind][]pairRule{
	ComponentVEvent: {
		{kind: PropertyDtend, other: PropertyDuration, exclusive: true},
	},
	ComponentVTodo: {
		{kind: PropertyDue, other: PropertyDuration, exclusive: true},
		{kind: PropertyDuration, other: PropertyDtstart},
	},
	ComponentVAlarm: {
		{kind: PropertyDuration, other: PropertyRepeat},
		{kind: PropertyRepeat, other: PropertyDuration},
	},
}

// CheckRestrictions validates the tree rooted at c against the structural
// restrictions of RFC 5545 and returns the number of violations. Each
// violation is recorded as an X-LIC-ERROR property, with X-LIC-ERRORTYPE set
// to INVALID-ITIP, on the component at fault. Markers from an earlier check
// are replaced.
func (c *Component) CheckRestrictions() int {
	if c.initialized() != nil {
		return 0
	}
	c.stripErrors(func(p *Property) bool {
		param := p.Parameter(ParameterXLicErrorType)
		return param != nil && param.Text() == string(XLicErrorTypeInvalidItip)
	})
	return c.checkRestrictions()
}

func (c *Component) checkRestrictions() int {
	failures := 0
	fail := func(msg string) {
		logger().Debug("restriction failed", "component", c.Name(), "message", msg)
		c.addErrorMarker(XLicErrorTypeInvalidItip, msg)
		failures++
	}
	for _, rule := range restrictionRules[c.kind] {
		if rule.when != nil && !rule.when(c) {
			continue
		}
		n := c.CountProperties(rule.kind)
		if n < rule.min || rule.max >= 0 && n > rule.max {
			fail(fmt.Sprintf("Failed iTIP restrictions for %s property. Expected %s instances of the property and got %d",
				rule.kind, rule.expected(), n))
		}
	}
	for _, rule := range pairRules[c.kind] {
		if !c.HasProperty(rule.kind) {
			continue
		}
		n := c.CountProperties(rule.other)
		switch {
		case rule.exclusive && n > 0:
			fail(fmt.Sprintf("Failed iTIP restrictions for %s property. Expected 0 instances of the property when %s is present and got %d",
				rule.other, rule.kind, n))
		case !rule.exclusive && n == 0:
			fail(fmt.Sprintf("Failed iTIP restrictions for %s property. Expected 1 instances of the property when %s is present and got 0",
				rule.other, rule.kind))
		}
	}
	if c.kind == ComponentVTimezone {
		if n := c.CountChildren(ComponentStandard) + c.CountChildren(ComponentDaylight); n == 0 {
			fail("Failed iTIP restrictions for VTIMEZONE component. Expected 1 or more STANDARD or DAYLIGHT components and got 0")
		}
	}
	for _, child := range c.children {
		failures += child.checkRestrictions()
	}
	return failures
}

// StripErrors removes every X-LIC-ERROR property from the tree rooted at c,
// whether it came from parsing or from CheckRestrictions, and returns how
// many were removed.
func (c *Component) StripErrors() int {
	if c.initialized() != nil {
		return 0
	}
	return c.stripErrors(func(*Property) bool { return true })
}

func (c *Component) stripErrors(match func(p *Property) bool) int {
	removed := 0
	kept := c.properties[:0]
	for _, p := range c.properties {
		if p.kind == PropertyXLicError && match(p) {
			p.parent = nil
			removed++
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(c.properties); i++ {
		c.properties[i] = nil
	}
	c.properties = kept
	for _, child := range c.children {
		removed += child.stripErrors(match)
	}
	return removed
}
