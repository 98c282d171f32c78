package ics

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Component is a node of a calendar tree: a VCALENDAR, VEVENT, VALARM and so
// on. It owns its properties and child components. Pointers handed out by
// accessors are views into the tree and stay valid for as long as the tree
// is reachable. A tree is not safe for concurrent use.
type Component struct {
	kind       ComponentKind
	xName      string
	properties []*Property
	children   []*Component
	parent     *Component
}

// NewComponent creates an empty component of kind. Names starting with
// "X-" create an experimental component.
func NewComponent(kind ComponentKind) (*Component, error) {
	k, ok := ComponentKinds.Parse(string(kind))
	switch {
	case ok && k == ComponentX:
		return nil, fmt.Errorf("%w: experimental component needs a name", ErrNewFailed)
	case ok && k.instantiable():
		return &Component{kind: k}, nil
	case isExtensionName(string(kind)) && len(kind) > 2:
		return &Component{kind: ComponentX, xName: normalizeName(string(kind))}, nil
	}
	return nil, fmt.Errorf("%w: first parameter, type, is unrecognized: %q", ErrNewFailed, kind)
}

func (c *Component) Kind() ComponentKind {
	if c == nil {
		return ComponentNone
	}
	return c.kind
}

// XName is the name of an experimental component.
func (c *Component) XName() string {
	if c == nil {
		return ""
	}
	return c.xName
}

// Name is the name written after BEGIN and END.
func (c *Component) Name() string {
	if c.kind == ComponentX {
		return c.xName
	}
	return string(c.kind)
}

// Parent is the enclosing component, nil for a root.
func (c *Component) Parent() *Component {
	return c.parent
}

// Root is the top of the tree c belongs to.
func (c *Component) Root() *Component {
	for c.parent != nil {
		c = c.parent
	}
	return c
}

func (c *Component) initialized() error {
	if c == nil || c.kind == "" {
		return ErrNotInitialized
	}
	return nil
}

func matchComponent(kind ComponentKind) func(*Component) bool {
	return func(child *Component) bool {
		return kind == ComponentAny || kind == "" || child.kind == kind
	}
}

func matchProperty(kind PropertyKind) func(*Property) bool {
	return func(p *Property) bool {
		return kind == PropertyAny || kind == "" || p.kind == kind
	}
}

// Children iterates the child components of kind, or all of them for
// ComponentAny.
func (c *Component) Children(kind ComponentKind) *Iterator[*Component] {
	return newIterator(c.children, matchComponent(kind))
}

// Child returns the first child of kind, or nil.
func (c *Component) Child(kind ComponentKind) *Component {
	child, _ := c.Children(kind).Next()
	return child
}

// Properties iterates the properties of kind, or all of them for
// PropertyAny.
func (c *Component) Properties(kind PropertyKind) *Iterator[*Property] {
	return newIterator(c.properties, matchProperty(kind))
}

// Property returns the first property of kind, or nil.
func (c *Component) Property(kind PropertyKind) *Property {
	p, _ := c.Properties(kind).Next()
	return p
}

// XProperty returns the first experimental property named name, or nil.
func (c *Component) XProperty(name string) *Property {
	name = normalizeName(name)
	for _, p := range c.properties {
		if p.kind == PropertyX && p.xName == name {
			return p
		}
	}
	return nil
}

// HasProperty reports whether a property of kind is present.
func (c *Component) HasProperty(kind PropertyKind) bool {
	return c.Property(kind) != nil
}

func (c *Component) CountChildren(kind ComponentKind) int {
	return c.Children(kind).Len()
}

func (c *Component) CountProperties(kind PropertyKind) int {
	return c.Properties(kind).Len()
}

// AddChild attaches a copy of child and returns the copy. The caller keeps
// ownership of child.
func (c *Component) AddChild(child *Component) (*Component, error) {
	if err := c.initialized(); err != nil {
		return nil, err
	}
	if child.initialized() != nil {
		return nil, fmt.Errorf("%w: child component is not initialized", ErrBadParameters)
	}
	cc := child.Clone()
	cc.parent = c
	c.children = append(c.children, cc)
	return cc, nil
}

// RemoveChild detaches child, which must be one of c's own children, not a
// copy of one.
func (c *Component) RemoveChild(child *Component) bool {
	for i, existing := range c.children {
		if existing == child {
			c.children = append(c.children[:i:i], c.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// AddProperty attaches a copy of p and returns the copy.
func (c *Component) AddProperty(p *Property) (*Property, error) {
	if err := c.initialized(); err != nil {
		return nil, err
	}
	if p == nil || p.kind == "" {
		return nil, fmt.Errorf("%w: property is not initialized", ErrBadParameters)
	}
	pc := p.Clone()
	pc.parent = c
	c.properties = append(c.properties, pc)
	return pc, nil
}

// RemoveProperty detaches p by identity.
func (c *Component) RemoveProperty(p *Property) bool {
	for i, existing := range c.properties {
		if existing == p {
			c.properties = append(c.properties[:i:i], c.properties[i+1:]...)
			p.parent = nil
			return true
		}
	}
	return false
}

// RemoveProperties detaches every property of kind and returns them.
func (c *Component) RemoveProperties(kind PropertyKind) []*Property {
	var removed []*Property
	kept := c.properties[:0]
	match := matchProperty(kind)
	for _, p := range c.properties {
		if match(p) {
			p.parent = nil
			removed = append(removed, p)
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(c.properties); i++ {
		c.properties[i] = nil
	}
	c.properties = kept
	return removed
}

// SetProperty replaces every property of kind with a single new one
// holding value.
func (c *Component) SetProperty(kind PropertyKind, value any, params ...*Parameter) (*Property, error) {
	if err := c.initialized(); err != nil {
		return nil, err
	}
	p, err := NewProperty(kind, value)
	if err != nil {
		return nil, err
	}
	for _, param := range params {
		if _, err := p.AddParameter(param); err != nil {
			return nil, err
		}
	}
	c.RemoveProperties(p.kind)
	p.parent = c
	c.properties = append(c.properties, p)
	return p, nil
}

// AppendProperty adds a new property of kind holding value, keeping any
// existing ones.
func (c *Component) AppendProperty(kind PropertyKind, value any, params ...*Parameter) (*Property, error) {
	if err := c.initialized(); err != nil {
		return nil, err
	}
	p, err := NewProperty(kind, value)
	if err != nil {
		return nil, err
	}
	for _, param := range params {
		if _, err := p.AppendParameter(param); err != nil {
			return nil, err
		}
	}
	p.parent = c
	c.properties = append(c.properties, p)
	return p, nil
}

// FirstPropertyValue decodes the value of the first property of kind.
func (c *Component) FirstPropertyValue(kind PropertyKind) (any, error) {
	p := c.Property(kind)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrorPropertyNotFound, kind)
	}
	return p.Value()
}

// PropertyValues decodes the values of every property of kind, in order.
func (c *Component) PropertyValues(kind PropertyKind) ([]any, error) {
	var out []any
	for it := c.Properties(kind); it.Advance(); {
		v, err := it.Item().Value()
		if err != nil {
			return out, fmt.Errorf("%s: %w", it.Item().Name(), err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Clone returns a detached deep copy.
func (c *Component) Clone() *Component {
	if c == nil {
		return nil
	}
	cc := &Component{kind: c.kind, xName: c.xName}
	for _, p := range c.properties {
		pc := p.Clone()
		pc.parent = cc
		cc.properties = append(cc.properties, pc)
	}
	for _, child := range c.children {
		ch := child.Clone()
		ch.parent = cc
		cc.children = append(cc.children, ch)
	}
	return cc
}

func (c *Component) Serialize(ops ...any) string {
	b := &strings.Builder{}
	// We are intentionally ignoring the return value. _ used to communicate this to lint.
	_ = c.SerializeTo(b, ops...)
	return b.String()
}

// SerializeTo writes c and its subtree as ICS text. ops accepts
// WithLineLength, WithNewLine or a *SerializationConfiguration.
func (c *Component) SerializeTo(w io.Writer, ops ...any) error {
	if err := c.initialized(); err != nil {
		return err
	}
	serializeConfig, err := parseSerializeOps(ops)
	if err != nil {
		return err
	}
	return c.serializeThis(w, serializeConfig)
}

// ICSOutput is the ICS text of the subtree.
func (c *Component) ICSOutput(ops ...any) string {
	return c.Serialize(ops...)
}

func (c *Component) serializeThis(writer io.Writer, serialConfig *SerializationConfiguration) error {
	if _, err := io.WriteString(writer, "BEGIN:"+c.Name()+serialConfig.NewLine); err != nil {
		return err
	}
	for _, p := range c.properties {
		if err := p.serialize(writer, serialConfig); err != nil {
			return err
		}
	}
	for _, child := range c.children {
		if err := child.serializeThis(writer, serialConfig); err != nil {
			return err
		}
	}
	_, err := io.WriteString(writer, "END:"+c.Name()+serialConfig.NewLine)
	return err
}

// NewCalendar is NewCalendarFor with the library's own product name.
func NewCalendar() *Component {
	return NewCalendarFor("arran4")
}

// NewCalendarFor creates a VCALENDAR with VERSION 2.0 and a PRODID naming
// service.
func NewCalendarFor(service string) *Component {
	cal := &Component{kind: ComponentVCalendar}
	_, _ = cal.SetProperty(PropertyVersion, "2.0")
	_, _ = cal.SetProperty(PropertyProductId, "-//"+service+"//Golang ICS Library")
	return cal
}

func newScheduled(kind ComponentKind, uid string) *Component {
	if uid == "" {
		uid = uuid.NewString()
	}
	c := &Component{kind: kind}
	_, _ = c.SetProperty(PropertyUid, uid)
	_, _ = c.SetProperty(PropertyDtstamp, FromTime(time.Now().UTC()))
	return c
}

// NewEvent creates a VEVENT with UID and DTSTAMP set. An empty uid is
// replaced with a random UUID.
func NewEvent(uid string) *Component {
	return newScheduled(ComponentVEvent, uid)
}

func NewTodo(uid string) *Component {
	return newScheduled(ComponentVTodo, uid)
}

func NewJournal(uid string) *Component {
	return newScheduled(ComponentVJournal, uid)
}

// NewAlarm creates a VALARM with ACTION set.
func NewAlarm(action Action) (*Component, error) {
	c := &Component{kind: ComponentVAlarm}
	if _, err := c.SetProperty(PropertyAction, string(action)); err != nil {
		return nil, err
	}
	return c, nil
}

// addNew attaches child directly, without copying it.
func (c *Component) addNew(child *Component) *Component {
	child.parent = c
	c.children = append(c.children, child)
	return child
}

// AddEvent creates a VEVENT under c and returns it.
func (c *Component) AddEvent(uid string) *Component {
	return c.addNew(NewEvent(uid))
}

func (c *Component) AddTodo(uid string) *Component {
	return c.addNew(NewTodo(uid))
}

func (c *Component) AddJournal(uid string) *Component {
	return c.addNew(NewJournal(uid))
}

// AddAlarm creates a VALARM under c with the given action and trigger.
func (c *Component) AddAlarm(action Action, trigger string) (*Component, error) {
	a, err := NewAlarm(action)
	if err != nil {
		return nil, err
	}
	if _, err := a.SetProperty(PropertyTrigger, trigger); err != nil {
		return nil, err
	}
	return c.addNew(a), nil
}

func (c *Component) collect(kind ComponentKind) []*Component {
	var out []*Component
	for it := c.Children(kind); it.Advance(); {
		out = append(out, it.Item())
	}
	return out
}

func (c *Component) Events() []*Component {
	return c.collect(ComponentVEvent)
}

func (c *Component) Todos() []*Component {
	return c.collect(ComponentVTodo)
}

func (c *Component) Alarms() []*Component {
	return c.collect(ComponentVAlarm)
}

func (c *Component) textProperty(kind PropertyKind) string {
	if p := c.Property(kind); p != nil {
		return p.ValueText()
	}
	return ""
}

// UID is the value of the UID property, empty when absent.
func (c *Component) UID() string {
	return c.textProperty(PropertyUid)
}

func (c *Component) Summary() string {
	return c.textProperty(PropertySummary)
}

func (c *Component) SetSummary(s string, params ...*Parameter) error {
	_, err := c.SetProperty(PropertySummary, s, params...)
	return err
}

func (c *Component) SetDescription(s string, params ...*Parameter) error {
	_, err := c.SetProperty(PropertyDescription, s, params...)
	return err
}

func (c *Component) SetLocation(s string, params ...*Parameter) error {
	_, err := c.SetProperty(PropertyLocation, s, params...)
	return err
}

func (c *Component) SetStatus(s ObjectStatus) error {
	_, err := c.SetProperty(PropertyStatus, string(s))
	return err
}

func (c *Component) SetClass(s Classification) error {
	_, err := c.SetProperty(PropertyClass, string(s))
	return err
}

func (c *Component) dateTime(kind PropertyKind) (DateTime, error) {
	v, err := c.FirstPropertyValue(kind)
	if err != nil {
		return DateTime{}, err
	}
	d, ok := v.(DateTime)
	if !ok {
		return DateTime{}, fmt.Errorf("%w: %s holds %T", ErrMalformedData, kind, v)
	}
	return d, nil
}

func (c *Component) setDateTime(kind PropertyKind, d DateTime) error {
	if !d.IsValid() {
		return fmt.Errorf("%w: %s needs a valid date-time", ErrBadParameters, kind)
	}
	_, err := c.SetProperty(kind, d)
	return err
}

func (c *Component) Start() (DateTime, error) {
	return c.dateTime(PropertyDtstart)
}

// SetStart sets DTSTART. Zoned times get a TZID parameter, dates get
// VALUE=DATE.
func (c *Component) SetStart(d DateTime) error {
	return c.setDateTime(PropertyDtstart, d)
}

func (c *Component) End() (DateTime, error) {
	return c.dateTime(PropertyDtend)
}

func (c *Component) SetEnd(d DateTime) error {
	return c.setDateTime(PropertyDtend, d)
}

func (c *Component) DtStamp() (DateTime, error) {
	return c.dateTime(PropertyDtstamp)
}

// SetDtStamp sets DTSTAMP, which RFC 5545 requires in UTC.
func (c *Component) SetDtStamp(t time.Time) error {
	return c.setDateTime(PropertyDtstamp, FromTime(t.UTC()))
}

// Recurrence decodes the RRULE property.
func (c *Component) Recurrence() (*Recurrence, error) {
	v, err := c.FirstPropertyValue(PropertyRrule)
	if err != nil {
		return nil, err
	}
	r, ok := v.(*Recurrence)
	if !ok {
		return nil, fmt.Errorf("%w: RRULE holds %T", ErrMalformedData, v)
	}
	return r, nil
}

func (c *Component) SetRecurrence(r *Recurrence) error {
	if r == nil {
		return fmt.Errorf("%w: no recurrence given", ErrBadParameters)
	}
	_, err := c.SetProperty(PropertyRrule, r)
	return err
}

// Occurrences expands the component's recurrence set from its DTSTART: the
// RRULE plus every RDATE, less every EXDATE. Without an RRULE the DTSTART is
// the first occurrence.
func (c *Component) Occurrences(limit int) ([]DateTime, error) {
	start, err := c.Start()
	if err != nil {
		return nil, err
	}
	r, err := c.Recurrence()
	if err != nil {
		if !errors.Is(err, ErrorPropertyNotFound) {
			return nil, err
		}
		r = nil
	}
	rdates, err := c.instanceDates(PropertyRdate)
	if err != nil {
		return nil, err
	}
	exdates, err := c.instanceDates(PropertyExdate)
	if err != nil {
		return nil, err
	}
	e, err := r.ExpandSet(start, rdates, exdates, MaxRows(limit))
	if err != nil {
		return nil, err
	}
	return e.All(), nil
}

// instanceDates reads the comma separated dates of every property of kind.
// A PERIOD contributes its start.
func (c *Component) instanceDates(kind PropertyKind) ([]DateTime, error) {
	var out []DateTime
	for it := c.Properties(kind); it.Advance(); {
		p := it.Item()
		tz := p.Zone()
		for _, text := range strings.Split(p.ValueText(), ",") {
			text, _, _ = strings.Cut(strings.TrimSpace(text), "/")
			if text == "" {
				continue
			}
			d, err := ParseDateTime(text, tz)
			if err != nil {
				return out, fmt.Errorf("%s: %w", p.Name(), err)
			}
			out = append(out, d)
		}
	}
	return out, nil
}

// AddAttendee adds an ATTENDEE, prefixing address with "mailto:" when it
// has no scheme.
func (c *Component) AddAttendee(address string, params ...*Parameter) (*Property, error) {
	if !strings.Contains(address, ":") {
		address = "mailto:" + address
	}
	return c.AppendProperty(PropertyAttendee, address, params...)
}

func (c *Component) Attendees() []*Property {
	var out []*Property
	for it := c.Properties(PropertyAttendee); it.Advance(); {
		out = append(out, it.Item())
	}
	return out
}

func (c *Component) SetProductId(s string) error {
	_, err := c.SetProperty(PropertyProductId, s)
	return err
}

func (c *Component) SetMethod(m Method) error {
	_, err := c.SetProperty(PropertyMethod, string(m))
	return err
}

// SetOrganizer sets ORGANIZER, prefixing "mailto:" as AddAttendee does.
func (c *Component) SetOrganizer(address string, params ...*Parameter) error {
	if !strings.Contains(address, ":") {
		address = "mailto:" + address
	}
	_, err := c.SetProperty(PropertyOrganizer, address, params...)
	return err
}

func (c *Component) SetPriority(p int) error {
	_, err := c.SetProperty(PropertyPriority, p)
	return err
}

func (c *Component) SetPercentComplete(p int) error {
	_, err := c.SetProperty(PropertyPercentComplete, p)
	return err
}

func (c *Component) SetDue(d DateTime) error {
	return c.setDateTime(PropertyDue, d)
}

// AddExdate excludes one occurrence of the component's recurrence. A date
// excludes the occurrence on that day.
func (c *Component) AddExdate(d DateTime) error {
	if !d.IsValid() {
		return fmt.Errorf("%w: EXDATE needs a valid date-time", ErrBadParameters)
	}
	_, err := c.AppendProperty(PropertyExdate, d)
	return err
}

// AddTimezone creates a VTIMEZONE with the given TZID under c.
func (c *Component) AddTimezone(tzid string) *Component {
	tz := &Component{kind: ComponentVTimezone}
	_, _ = tz.SetProperty(PropertyTzid, tzid)
	return c.addNew(tz)
}

// AddStandard creates a STANDARD observance under a VTIMEZONE.
func (c *Component) AddStandard(start DateTime, offsetFrom, offsetTo string) (*Component, error) {
	return c.addObservance(ComponentStandard, start, offsetFrom, offsetTo)
}

// AddDaylight creates a DAYLIGHT observance under a VTIMEZONE.
func (c *Component) AddDaylight(start DateTime, offsetFrom, offsetTo string) (*Component, error) {
	return c.addObservance(ComponentDaylight, start, offsetFrom, offsetTo)
}

func (c *Component) addObservance(kind ComponentKind, start DateTime, offsetFrom, offsetTo string) (*Component, error) {
	if c.kind != ComponentVTimezone {
		return nil, fmt.Errorf("%w: %s observances belong in a VTIMEZONE, not %s", ErrBadParameters, kind, c.Name())
	}
	o := &Component{kind: kind}
	if err := o.setDateTime(PropertyDtstart, start); err != nil {
		return nil, err
	}
	if _, err := o.SetProperty(PropertyTzoffsetfrom, offsetFrom); err != nil {
		return nil, err
	}
	if _, err := o.SetProperty(PropertyTzoffsetto, offsetTo); err != nil {
		return nil, err
	}
	return c.addNew(o), nil
}
