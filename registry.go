package ics

import (
	"strings"
	"sync"
)

// Lookup maps the members of one enumeration onto a contiguous range of
// integer codes. The code of a member is the range start plus its position
// in the family. Unknown members and out of range codes resolve to the
// family's sentinel rather than failing.
type Lookup[K ~string] struct {
	name  string
	start int
	none  K
	kinds []K
	codes map[K]int
}

func newLookup[K ~string](name string, start int, none K, kinds ...K) *Lookup[K] {
	l := &Lookup[K]{
		name:  name,
		start: start,
		none:  none,
		kinds: kinds,
		codes: make(map[K]int, len(kinds)),
	}
	for i, k := range kinds {
		l.codes[k] = start + i
	}
	return l
}

// Name of the enumeration family.
func (l *Lookup[K]) Name() string {
	return l.name
}

// Code returns the integer code of k, or the code of the sentinel when k is
// not a member.
func (l *Lookup[K]) Code(k K) int {
	if c, ok := l.codes[k]; ok {
		return c
	}
	return l.codes[l.none]
}

// Kind returns the member with the given code, or the sentinel.
func (l *Lookup[K]) Kind(code int) K {
	if !l.IsValid(code) {
		return l.none
	}
	return l.kinds[code-l.start]
}

func (l *Lookup[K]) First() int {
	return l.start
}

func (l *Lookup[K]) Last() int {
	return l.start + len(l.kinds) - 1
}

func (l *Lookup[K]) IsValid(code int) bool {
	return code >= l.First() && code <= l.Last()
}

// None returns the family's unresolved sentinel.
func (l *Lookup[K]) None() K {
	return l.none
}

// Kinds returns the members in code order.
func (l *Lookup[K]) Kinds() []K {
	return append([]K(nil), l.kinds...)
}

// Parse resolves a textual token, ignoring case.
func (l *Lookup[K]) Parse(token string) (K, bool) {
	k := K(normalizeName(token))
	if _, ok := l.codes[k]; ok {
		return k, true
	}
	return l.none, false
}

// CodeOf is Parse followed by Code, for callers that do not know K.
func (l *Lookup[K]) CodeOf(token string) (int, bool) {
	k, ok := l.Parse(token)
	if !ok {
		return l.Code(l.none), false
	}
	return l.Code(k), true
}

// TokenOf is Kind for callers that do not know K.
func (l *Lookup[K]) TokenOf(code int) (string, bool) {
	if !l.IsValid(code) {
		return string(l.none), false
	}
	return string(l.kinds[code-l.start]), true
}

func (l *Lookup[K]) xCode() int {
	return l.Code(K("X"))
}

// enumFamily is the untyped view of a Lookup used by the value codec.
type enumFamily interface {
	Name() string
	CodeOf(token string) (int, bool)
	TokenOf(code int) (string, bool)
	IsValid(code int) bool
	xCode() int
}

var (
	ComponentKinds = newLookup("component", 23001, ComponentNone,
		ComponentNone, ComponentAny, ComponentXRoot, ComponentXAttach, ComponentVEvent, ComponentVTodo,
		ComponentVJournal, ComponentVCalendar, ComponentVAgenda, ComponentVFreeBusy, ComponentVAlarm,
		ComponentXAudioAlarm, ComponentXDisplayAlarm, ComponentXEmailAlarm, ComponentXProcedureAlarm,
		ComponentVTimezone, ComponentStandard, ComponentDaylight, ComponentX, ComponentVSchedule,
		ComponentVQuery, ComponentVReply, ComponentVCar, ComponentVCommand, ComponentXLicInvalid,
		ComponentXLicMimePart,
	)

	PropertyKinds = newLookup("property", 23050, PropertyNone,
		PropertyAny, PropertyAction, PropertyAllowConflict, PropertyAttach, PropertyAttendee, PropertyCalid,
		PropertyCalmaster, PropertyCalscale, PropertyCapVersion, PropertyCarLevel, PropertyCarid,
		PropertyCategories, PropertyClass, PropertyCmd, PropertyComment, PropertyCompleted, PropertyComponents,
		PropertyContact, PropertyCreated, PropertyCsid, PropertyDateMax, PropertyDateMin, PropertyDecreed,
		PropertyDefaultCharset, PropertyDefaultLocale, PropertyDefaultTzid, PropertyDefaultVcars, PropertyDeny,
		PropertyDescription, PropertyDtend, PropertyDtstamp, PropertyDtstart, PropertyDue, PropertyDuration,
		PropertyExdate, PropertyExpand, PropertyExrule, PropertyFreebusy, PropertyGeo, PropertyGrant,
		PropertyItipVersion, PropertyLastModified, PropertyLocation, PropertyMaxComponentSize, PropertyMaxdate,
		PropertyMaxresults, PropertyMaxresultsSize, PropertyMethod, PropertyMindate, PropertyMultipart,
		PropertyName, PropertyOrganizer, PropertyOwner, PropertyPercentComplete, PropertyPermission,
		PropertyPriority, PropertyProductId, PropertyQuery, PropertyQueryLevel, PropertyQueryid,
		PropertyQueryname, PropertyRdate, PropertyRecurAccepted, PropertyRecurExpand, PropertyRecurLimit,
		PropertyRecurrenceId, PropertyRelatedTo, PropertyRelcalid, PropertyRepeat, PropertyRequestStatus,
		PropertyResources, PropertyRestriction, PropertyRrule, PropertyScope, PropertySequence, PropertyStatus,
		PropertyStoresExpanded, PropertySummary, PropertyTarget, PropertyTransp, PropertyTrigger, PropertyTzid,
		PropertyTzname, PropertyTzoffsetfrom, PropertyTzoffsetto, PropertyTzurl, PropertyUid, PropertyUrl,
		PropertyVersion, PropertyX, PropertyXLicClass, PropertyXLicClusterCount, PropertyXLicError,
		PropertyXLicMimeCharset, PropertyXLicMimeCid, PropertyXLicMimeContentType, PropertyXLicMimeEncoding,
		PropertyXLicMimeFilename, PropertyXLicMimeOptInfo, PropertyNone,
	)

	ParameterKinds = newLookup("parameter", 23200, ParameterNone,
		ParameterAny, ParameterActionParam, ParameterAltrep, ParameterCharset, ParameterCn, ParameterCutype,
		ParameterDelegatedFrom, ParameterDelegatedTo, ParameterDir, ParameterEnable, ParameterEncoding,
		ParameterFbtype, ParameterFmttype, ParameterIana, ParameterId, ParameterLanguage, ParameterLatency,
		ParameterLocal, ParameterLocalize, ParameterMember, ParameterOptions, ParameterPartstat, ParameterRange,
		ParameterRelated, ParameterReltype, ParameterRole, ParameterRsvp, ParameterSentBy, ParameterTzid,
		ParameterValue, ParameterX, ParameterXLicCompareType, ParameterXLicErrorType, ParameterNone,
	)

	ValueKinds = newLookup("value", 23250, ValueNone,
		ValueAny, ValueQuery, ValueDate, ValueAttach, ValueGeo, ValueStatus, ValueTransp, ValueString,
		ValueText, ValueRequestStatus, ValueCmd, ValueBinary, ValueQueryLevel, ValuePeriod, ValueFloat,
		ValueDateTimePeriod, ValueCarLevel, ValueInteger, ValueClass, ValueUri, ValueDuration, ValueBoolean,
		ValueX, ValueCalAddress, ValueTrigger, ValueXLicClass, ValueRecur, ValueAction, ValueDateTime,
		ValueUtcOffset, ValueMethod, ValueNone,
	)
)

// Parameter value families.
var (
	ActionParams = newLookup("actionparam", 23300, ActionParamNone,
		ActionParamX, ActionParamAsk, ActionParamAbort, ActionParamNone)
	CalendarUserTypes = newLookup("cutype", 23304, CalendarUserTypeNone,
		CalendarUserTypeX, CalendarUserTypeIndividual, CalendarUserTypeGroup, CalendarUserTypeResource,
		CalendarUserTypeRoom, CalendarUserTypeUnknown, CalendarUserTypeNone)
	Enables = newLookup("enable", 23311, EnableNone,
		EnableX, EnableTrue, EnableFalse, EnableNone)
	Encodings = newLookup("encoding", 23315, EncodingNone,
		EncodingX, Encoding8Bit, EncodingBase64, EncodingNone)
	FreeBusyTimeTypes = newLookup("fbtype", 23319, FreeBusyTimeTypeNone,
		FreeBusyTimeTypeX, FreeBusyTimeTypeFree, FreeBusyTimeTypeBusy, FreeBusyTimeTypeBusyUnavailable,
		FreeBusyTimeTypeBusyTentative, FreeBusyTimeTypeNone)
	Locals = newLookup("local", 23325, LocalNone,
		LocalX, LocalTrue, LocalFalse, LocalNone)
	ParticipationStatuses = newLookup("partstat", 23329, ParticipationStatusNone,
		ParticipationStatusX, ParticipationStatusNeedsAction, ParticipationStatusAccepted,
		ParticipationStatusDeclined, ParticipationStatusTentative, ParticipationStatusDelegated,
		ParticipationStatusCompleted, ParticipationStatusInProcess, ParticipationStatusNone)
	RecurrenceRanges = newLookup("range", 23338, RecurrenceRangeNone,
		RecurrenceRangeX, RecurrenceRangeThisAndPrior, RecurrenceRangeThisAndFuture, RecurrenceRangeNone)
	AlarmTriggerRelationships = newLookup("related", 23342, AlarmTriggerRelationshipNone,
		AlarmTriggerRelationshipX, AlarmTriggerRelationshipStart, AlarmTriggerRelationshipEnd,
		AlarmTriggerRelationshipNone)
	RelationshipTypes = newLookup("reltype", 23346, RelationshipTypeNone,
		RelationshipTypeX, RelationshipTypeParent, RelationshipTypeChild, RelationshipTypeSibling,
		RelationshipTypeNone)
	ParticipationRoles = newLookup("role", 23351, ParticipationRoleNone,
		ParticipationRoleX, ParticipationRoleChair, ParticipationRoleReqParticipant,
		ParticipationRoleOptParticipant, ParticipationRoleNonParticipant, ParticipationRoleNone)
	Rsvps = newLookup("rsvp", 23357, RsvpNone,
		RsvpX, RsvpTrue, RsvpFalse, RsvpNone)
	ValueDataTypes = newLookup("valuetype", 23361, ValueDataTypeNone,
		ValueDataTypeX, ValueDataTypeBinary, ValueDataTypeBoolean, ValueDataTypeDate, ValueDataTypeDuration,
		ValueDataTypeFloat, ValueDataTypeInteger, ValueDataTypePeriod, ValueDataTypeRecur, ValueDataTypeText,
		ValueDataTypeUri, ValueDataTypeError, ValueDataTypeDateTime, ValueDataTypeUtcOffset,
		ValueDataTypeCalAddress, ValueDataTypeNone)
	XLicCompareTypes = newLookup("xliccomparetype", 23377, XLicCompareTypeNone,
		XLicCompareTypeX, XLicCompareTypeEqual, XLicCompareTypeNotEqual, XLicCompareTypeLess,
		XLicCompareTypeGreater, XLicCompareTypeLessEqual, XLicCompareTypeGreaterEqual, XLicCompareTypeRegex,
		XLicCompareTypeIsNull, XLicCompareTypeIsNotNull, XLicCompareTypeNone)
	XLicErrorTypes = newLookup("xlicerrortype", 23388, XLicErrorTypeNone,
		XLicErrorTypeX, XLicErrorTypeComponentParseError, XLicErrorTypePropertyParseError,
		XLicErrorTypeParameterNameParseError, XLicErrorTypeParameterValueError, XLicErrorTypeValueParseError,
		XLicErrorTypeInvalidItip, XLicErrorTypeUnknownVcalPropError, XLicErrorTypeMimeParseError,
		XLicErrorTypeVcalPropParseError, XLicErrorTypeNone)
)

// Property value families.
var (
	Actions = newLookup("action", 23400, ActionNone,
		ActionX, ActionAudio, ActionDisplay, ActionEmail, ActionProcedure, ActionNone)
	CarLevels = newLookup("carlevel", 23406, CarLevelNone,
		CarLevelX, CarLevelCarNone, CarLevelCarMin, CarLevelCarFull1, CarLevelNone)
	Classifications = newLookup("class", 23411, ClassificationNone,
		ClassificationX, ClassificationPublic, ClassificationPrivate, ClassificationConfidential,
		ClassificationNone)
	Commands = newLookup("cmd", 23416, CommandNone,
		CommandX, CommandAbort, CommandContinue, CommandCreate, CommandDelete, CommandGenerateUid,
		CommandGetCapability, CommandIdentify, CommandModify, CommandMove, CommandReply, CommandSearch,
		CommandSetLocale, CommandNone)
	Methods = newLookup("method", 23430, MethodNone,
		MethodX, MethodPublish, MethodRequest, MethodReply, MethodAdd, MethodCancel, MethodRefresh,
		MethodCounter, MethodDeclineCounter, MethodCreate, MethodRead, MethodResponse, MethodMove,
		MethodModify, MethodGenerateUid, MethodDelete, MethodNone)
	QueryLevels = newLookup("querylevel", 23447, QueryLevelNone,
		QueryLevelX, QueryLevelCalQl1, QueryLevelCalQlNone, QueryLevelNone)
	ObjectStatuses = newLookup("status", 23451, ObjectStatusNone,
		ObjectStatusX, ObjectStatusTentative, ObjectStatusConfirmed, ObjectStatusCompleted,
		ObjectStatusNeedsAction, ObjectStatusCancelled, ObjectStatusInProcess, ObjectStatusDraft,
		ObjectStatusFinal, ObjectStatusNone)
	TimeTransparencies = newLookup("transp", 23461, TimeTransparencyNone,
		TimeTransparencyX, TimeTransparencyOpaque, TimeTransparencyOpaqueNoConflict,
		TimeTransparencyTransparent, TimeTransparencyTransparentNoConflict, TimeTransparencyNone)
	XLicClasses = newLookup("xlicclass", 23467, XLicClassNone,
		XLicClassX, XLicClassPublishNew, XLicClassPublishUpdate, XLicClassPublishFreebusy,
		XLicClassRequestNew, XLicClassRequestUpdate, XLicClassRequestReschedule, XLicClassRequestDelegate,
		XLicClassRequestNewOrganizer, XLicClassRequestForward, XLicClassRequestStatus,
		XLicClassRequestFreebusy, XLicClassReplyAccept, XLicClassReplyDecline, XLicClassReplyDelegate,
		XLicClassReplyCrasherAccept, XLicClassReplyCrasherDecline, XLicClassAddInstance,
		XLicClassCancelEvent, XLicClassCancelInstance, XLicClassCancelAll, XLicClassRefresh,
		XLicClassCounter, XLicClassDeclineCounter, XLicClassMalformed, XLicClassObsolete,
		XLicClassMissequenced, XLicClassUnknown, XLicClassNone)

	RequestStatuses = newLookup("requeststatus", 23500, RequestStatusUnknown,
		RequestStatusUnknown, RequestStatus2_0, RequestStatus2_1, RequestStatus2_2, RequestStatus2_3,
		RequestStatus2_4, RequestStatus2_5, RequestStatus2_6, RequestStatus2_7, RequestStatus2_8,
		RequestStatus2_9, RequestStatus2_10, RequestStatus2_11, RequestStatus3_0, RequestStatus3_1,
		RequestStatus3_2, RequestStatus3_3, RequestStatus3_4, RequestStatus3_5, RequestStatus3_6,
		RequestStatus3_7, RequestStatus3_8, RequestStatus3_9, RequestStatus3_10, RequestStatus3_11,
		RequestStatus3_12, RequestStatus3_13, RequestStatus3_14, RequestStatus3_15, RequestStatus4_0,
		RequestStatus4_1, RequestStatus4_2, RequestStatus4_3, RequestStatus5_0, RequestStatus5_1,
		RequestStatus5_2, RequestStatus5_3, RequestStatus6_1, RequestStatus9_0)

	Frequencies = newLookup("frequency", 23600, FrequencyNone,
		FrequencySecondly, FrequencyMinutely, FrequencyHourly, FrequencyDaily, FrequencyWeekly,
		FrequencyMonthly, FrequencyYearly, FrequencyNone)

	Weekdays = newLookup("weekday", 23650, WeekdayNone,
		WeekdayNone, WeekdaySunday, WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday,
		WeekdayFriday, WeekdaySaturday)
)

// index is the weekday half of a packed BYDAY entry: NONE is 0, SU is 1.
func (d Weekday) index() int {
	return Weekdays.Code(d) - Weekdays.First()
}

func weekdayAt(index int) Weekday {
	return Weekdays.Kind(Weekdays.First() + index)
}

// valueEnumFamilies lists the value kinds whose payload is a member of a
// closed enumeration.
var valueEnumFamilies = map[ValueKind]enumFamily{
	ValueAction:     Actions,
	ValueCarLevel:   CarLevels,
	ValueClass:      Classifications,
	ValueCmd:        Commands,
	ValueMethod:     Methods,
	ValueQueryLevel: QueryLevels,
	ValueStatus:     ObjectStatuses,
	ValueTransp:     TimeTransparencies,
	ValueXLicClass:  XLicClasses,
}

// parameterEnumFamilies lists the parameters whose value is a member of a
// closed enumeration. Every other parameter carries free text.
var parameterEnumFamilies = map[ParameterKind]enumFamily{
	ParameterActionParam:     ActionParams,
	ParameterCutype:          CalendarUserTypes,
	ParameterEnable:          Enables,
	ParameterEncoding:        Encodings,
	ParameterFbtype:          FreeBusyTimeTypes,
	ParameterLocal:           Locals,
	ParameterPartstat:        ParticipationStatuses,
	ParameterRange:           RecurrenceRanges,
	ParameterRelated:         AlarmTriggerRelationships,
	ParameterReltype:         RelationshipTypes,
	ParameterRole:            ParticipationRoles,
	ParameterRsvp:            Rsvps,
	ParameterValue:           ValueDataTypes,
	ParameterXLicCompareType: XLicCompareTypes,
	ParameterXLicErrorType:   XLicErrorTypes,
}

// propertyValueKinds is the default value kind of each property. Anything
// not listed is TEXT.
var propertyValueKinds = map[PropertyKind]ValueKind{
	PropertyAction:              ValueAction,
	PropertyAttach:              ValueAttach,
	PropertyAttendee:            ValueCalAddress,
	PropertyOrganizer:           ValueCalAddress,
	PropertyTarget:              ValueCalAddress,
	PropertyCarLevel:            ValueCarLevel,
	PropertyClass:               ValueClass,
	PropertyCmd:                 ValueCmd,
	PropertyMethod:              ValueMethod,
	PropertyQueryLevel:          ValueQueryLevel,
	PropertyStatus:              ValueStatus,
	PropertyTransp:              ValueTransp,
	PropertyXLicClass:           ValueXLicClass,
	PropertyCompleted:           ValueDateTime,
	PropertyCreated:             ValueDateTime,
	PropertyDateMax:             ValueDateTime,
	PropertyDateMin:             ValueDateTime,
	PropertyDtend:               ValueDateTime,
	PropertyDtstamp:             ValueDateTime,
	PropertyDtstart:             ValueDateTime,
	PropertyDue:                 ValueDateTime,
	PropertyExdate:              ValueDateTime,
	PropertyLastModified:        ValueDateTime,
	PropertyMaxdate:             ValueDateTime,
	PropertyMindate:             ValueDateTime,
	PropertyRecurrenceId:        ValueDateTime,
	PropertyDuration:            ValueDuration,
	PropertyExpand:              ValueInteger,
	PropertyMaxComponentSize:    ValueInteger,
	PropertyMaxresults:          ValueInteger,
	PropertyMaxresultsSize:      ValueInteger,
	PropertyPercentComplete:     ValueInteger,
	PropertyPriority:            ValueInteger,
	PropertyRepeat:              ValueInteger,
	PropertySequence:            ValueInteger,
	PropertyRecurLimit:          ValueInteger,
	PropertyTzoffsetfrom:        ValueUtcOffset,
	PropertyTzoffsetto:          ValueUtcOffset,
	PropertyRrule:               ValueRecur,
	PropertyExrule:              ValueRecur,
	PropertyFreebusy:            ValuePeriod,
	PropertyGeo:                 ValueGeo,
	PropertyRdate:               ValueDateTimePeriod,
	PropertyRequestStatus:       ValueRequestStatus,
	PropertyTrigger:             ValueTrigger,
	PropertyCsid:                ValueUri,
	PropertyTzurl:               ValueUri,
	PropertyUrl:                 ValueUri,
	PropertyQuery:               ValueQuery,
	PropertyRestriction:         ValueQuery,
	PropertyXLicClusterCount:    ValueString,
	PropertyXLicMimeCharset:     ValueString,
	PropertyXLicMimeCid:         ValueString,
	PropertyXLicMimeContentType: ValueString,
	PropertyXLicMimeEncoding:    ValueString,
	PropertyXLicMimeFilename:    ValueString,
	PropertyXLicMimeOptInfo:     ValueString,
	PropertyRecurAccepted:       ValueBoolean,
	PropertyRecurExpand:         ValueBoolean,
	PropertyStoresExpanded:      ValueBoolean,
	PropertyAllowConflict:       ValueBoolean,
	PropertyX:                   ValueX,
}

// DefaultValueKind returns the value kind a property of kind k carries when
// no VALUE parameter overrides it.
func DefaultValueKind(k PropertyKind) ValueKind {
	if v, ok := propertyValueKinds[k]; ok {
		return v
	}
	return ValueText
}

// valueKindForDataType maps a VALUE parameter onto the value kind it selects.
func valueKindForDataType(t ValueDataType) (ValueKind, bool) {
	switch t {
	case ValueDataTypeBinary:
		return ValueBinary, true
	case ValueDataTypeBoolean:
		return ValueBoolean, true
	case ValueDataTypeDate:
		return ValueDate, true
	case ValueDataTypeDuration:
		return ValueDuration, true
	case ValueDataTypeFloat:
		return ValueFloat, true
	case ValueDataTypeInteger:
		return ValueInteger, true
	case ValueDataTypePeriod:
		return ValuePeriod, true
	case ValueDataTypeRecur:
		return ValueRecur, true
	case ValueDataTypeText:
		return ValueText, true
	case ValueDataTypeUri:
		return ValueUri, true
	case ValueDataTypeDateTime:
		return ValueDateTime, true
	case ValueDataTypeUtcOffset:
		return ValueUtcOffset, true
	case ValueDataTypeCalAddress:
		return ValueCalAddress, true
	}
	return "", false
}

var (
	nameCacheOnce      sync.Once
	propertyNameCache  map[string]PropertyKind
	parameterNameCache map[string]ParameterKind
)

func buildNameCache() {
	propertyNameCache = make(map[string]PropertyKind, len(PropertyKinds.kinds))
	for _, k := range PropertyKinds.kinds {
		propertyNameCache[string(k)] = k
	}
	parameterNameCache = make(map[string]ParameterKind, len(ParameterKinds.kinds))
	for _, k := range ParameterKinds.kinds {
		parameterNameCache[string(k)] = k
	}
}

// PropertyKindFromName resolves a property name, ignoring case. Unlisted
// names beginning with "X-" resolve to PropertyX, anything else to
// PropertyNone.
func PropertyKindFromName(name string) PropertyKind {
	nameCacheOnce.Do(buildNameCache)
	n := normalizeName(name)
	if k, ok := propertyNameCache[n]; ok {
		return k
	}
	if isExtensionName(n) {
		return PropertyX
	}
	return PropertyNone
}

// ParameterKindFromName resolves a parameter name the same way.
func ParameterKindFromName(name string) ParameterKind {
	nameCacheOnce.Do(buildNameCache)
	n := normalizeName(name)
	if k, ok := parameterNameCache[n]; ok {
		return k
	}
	if isExtensionName(n) {
		return ParameterX
	}
	return ParameterNone
}

// ComponentKindFromName resolves a BEGIN/END name. Names that are not known
// come back as ComponentX so the parser can keep them.
func ComponentKindFromName(name string) ComponentKind {
	k, ok := ComponentKinds.Parse(name)
	if !ok || !k.instantiable() {
		return ComponentX
	}
	return k
}

// RequestStatusCode extracts the status code from a REQUEST-STATUS value
// such as "2.0;Success".
func RequestStatusCode(value string) RequestStatus {
	code, _, _ := strings.Cut(value, ";")
	k, _ := RequestStatuses.Parse(code)
	return k
}
