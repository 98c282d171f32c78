package ics

import "strings"

// ComponentKind enumerates the component names known to the model. RFC 5545
// section 3.6 defines the V* components; the remaining kinds come from the
// CAP and iTIP drafts and from the libical extension set.
type ComponentKind string

const (
	ComponentNone            ComponentKind = "NONE"
	ComponentAny             ComponentKind = "ANY"
	ComponentXRoot           ComponentKind = "XROOT"
	ComponentXAttach         ComponentKind = "XATTACH"
	ComponentVEvent          ComponentKind = "VEVENT"
	ComponentVTodo           ComponentKind = "VTODO"
	ComponentVJournal        ComponentKind = "VJOURNAL"
	ComponentVCalendar       ComponentKind = "VCALENDAR"
	ComponentVAgenda         ComponentKind = "VAGENDA"
	ComponentVFreeBusy       ComponentKind = "VFREEBUSY"
	ComponentVAlarm          ComponentKind = "VALARM"
	ComponentXAudioAlarm     ComponentKind = "AUDIOALARM"
	ComponentXDisplayAlarm   ComponentKind = "DISPLAYALARM"
	ComponentXEmailAlarm     ComponentKind = "EMAILALARM"
	ComponentXProcedureAlarm ComponentKind = "PROCEDUREALARM"
	ComponentVTimezone       ComponentKind = "VTIMEZONE"
	ComponentStandard        ComponentKind = "STANDARD"
	ComponentDaylight        ComponentKind = "DAYLIGHT"
	ComponentX               ComponentKind = "X"
	ComponentVSchedule       ComponentKind = "SCHEDULE"
	ComponentVQuery          ComponentKind = "VQUERY"
	ComponentVReply          ComponentKind = "VREPLY"
	ComponentVCar            ComponentKind = "VCAR"
	ComponentVCommand        ComponentKind = "VCOMMAND"
	ComponentXLicInvalid     ComponentKind = "X-LIC-UNKNOWN"
	ComponentXLicMimePart    ComponentKind = "X-LIC-MIME-PART"
)

// instantiable reports whether nodes of this kind can exist in a tree. NONE
// and ANY only make sense as filters.
func (k ComponentKind) instantiable() bool {
	return k != "" && k != ComponentNone && k != ComponentAny
}

// PropertyKind enumerates the property names known to the model. Each
// constant is the textual name written to ICS, see RFC 5545 section 3.8.
type PropertyKind string

const (
	PropertyAny                 PropertyKind = "ANY"
	PropertyAction              PropertyKind = "ACTION"
	PropertyAllowConflict       PropertyKind = "ALLOW-CONFLICT"
	PropertyAttach              PropertyKind = "ATTACH"
	PropertyAttendee            PropertyKind = "ATTENDEE"
	PropertyCalid               PropertyKind = "CALID"
	PropertyCalmaster           PropertyKind = "CALMASTER"
	PropertyCalscale            PropertyKind = "CALSCALE"
	PropertyCapVersion          PropertyKind = "CAP-VERSION"
	PropertyCarLevel            PropertyKind = "CAR-LEVEL"
	PropertyCarid               PropertyKind = "CARID"
	PropertyCategories          PropertyKind = "CATEGORIES"
	PropertyClass               PropertyKind = "CLASS"
	PropertyCmd                 PropertyKind = "CMD"
	PropertyComment             PropertyKind = "COMMENT"
	PropertyCompleted           PropertyKind = "COMPLETED"
	PropertyComponents          PropertyKind = "COMPONENTS"
	PropertyContact             PropertyKind = "CONTACT"
	PropertyCreated             PropertyKind = "CREATED"
	PropertyCsid                PropertyKind = "CSID"
	PropertyDateMax             PropertyKind = "DATE-MAX"
	PropertyDateMin             PropertyKind = "DATE-MIN"
	PropertyDecreed             PropertyKind = "DECREED"
	PropertyDefaultCharset      PropertyKind = "DEFAULT-CHARSET"
	PropertyDefaultLocale       PropertyKind = "DEFAULT-LOCALE"
	PropertyDefaultTzid         PropertyKind = "DEFAULT-TZID"
	PropertyDefaultVcars        PropertyKind = "DEFAULT-VCARS"
	PropertyDeny                PropertyKind = "DENY"
	PropertyDescription         PropertyKind = "DESCRIPTION"
	PropertyDtend               PropertyKind = "DTEND"
	PropertyDtstamp             PropertyKind = "DTSTAMP"
	PropertyDtstart             PropertyKind = "DTSTART"
	PropertyDue                 PropertyKind = "DUE"
	PropertyDuration            PropertyKind = "DURATION"
	PropertyExdate              PropertyKind = "EXDATE"
	PropertyExpand              PropertyKind = "EXPAND"
	PropertyExrule              PropertyKind = "EXRULE"
	PropertyFreebusy            PropertyKind = "FREEBUSY"
	PropertyGeo                 PropertyKind = "GEO"
	PropertyGrant               PropertyKind = "GRANT"
	PropertyItipVersion         PropertyKind = "ITIP-VERSION"
	PropertyLastModified        PropertyKind = "LAST-MODIFIED"
	PropertyLocation            PropertyKind = "LOCATION"
	PropertyMaxComponentSize    PropertyKind = "MAX-COMPONENT-SIZE"
	PropertyMaxdate             PropertyKind = "MAXDATE"
	PropertyMaxresults          PropertyKind = "MAXRESULTS"
	PropertyMaxresultsSize      PropertyKind = "MAXRESULTSSIZE"
	PropertyMethod              PropertyKind = "METHOD"
	PropertyMindate             PropertyKind = "MINDATE"
	PropertyMultipart           PropertyKind = "MULTIPART"
	PropertyName                PropertyKind = "NAME"
	PropertyOrganizer           PropertyKind = "ORGANIZER"
	PropertyOwner               PropertyKind = "OWNER"
	PropertyPercentComplete     PropertyKind = "PERCENT-COMPLETE"
	PropertyPermission          PropertyKind = "PERMISSION"
	PropertyPriority            PropertyKind = "PRIORITY"
	PropertyProductId           PropertyKind = "PRODID"
	PropertyQuery               PropertyKind = "QUERY"
	PropertyQueryLevel          PropertyKind = "QUERY-LEVEL"
	PropertyQueryid             PropertyKind = "QUERYID"
	PropertyQueryname           PropertyKind = "QUERYNAME"
	PropertyRdate               PropertyKind = "RDATE"
	PropertyRecurAccepted       PropertyKind = "RECUR-ACCEPTED"
	PropertyRecurExpand         PropertyKind = "RECUR-EXPAND"
	PropertyRecurLimit          PropertyKind = "RECUR-LIMIT"
	PropertyRecurrenceId        PropertyKind = "RECURRENCE-ID"
	PropertyRelatedTo           PropertyKind = "RELATED-TO"
	PropertyRelcalid            PropertyKind = "RELCALID"
	PropertyRepeat              PropertyKind = "REPEAT"
	PropertyRequestStatus       PropertyKind = "REQUEST-STATUS"
	PropertyResources           PropertyKind = "RESOURCES"
	PropertyRestriction         PropertyKind = "RESTRICTION"
	PropertyRrule               PropertyKind = "RRULE"
	PropertyScope               PropertyKind = "SCOPE"
	PropertySequence            PropertyKind = "SEQUENCE"
	PropertyStatus              PropertyKind = "STATUS"
	PropertyStoresExpanded      PropertyKind = "STORES-EXPANDED"
	PropertySummary             PropertyKind = "SUMMARY"
	PropertyTarget              PropertyKind = "TARGET"
	PropertyTransp              PropertyKind = "TRANSP"
	PropertyTrigger             PropertyKind = "TRIGGER"
	PropertyTzid                PropertyKind = "TZID"
	PropertyTzname              PropertyKind = "TZNAME"
	PropertyTzoffsetfrom        PropertyKind = "TZOFFSETFROM"
	PropertyTzoffsetto          PropertyKind = "TZOFFSETTO"
	PropertyTzurl               PropertyKind = "TZURL"
	PropertyUid                 PropertyKind = "UID"
	PropertyUrl                 PropertyKind = "URL"
	PropertyVersion             PropertyKind = "VERSION"
	PropertyX                   PropertyKind = "X"
	PropertyXLicClass           PropertyKind = "X-LIC-CLASS"
	PropertyXLicClusterCount    PropertyKind = "X-LIC-CLUSTERCOUNT"
	PropertyXLicError           PropertyKind = "X-LIC-ERROR"
	PropertyXLicMimeCharset     PropertyKind = "X-LIC-MIMECHARSET"
	PropertyXLicMimeCid         PropertyKind = "X-LIC-MIMECID"
	PropertyXLicMimeContentType PropertyKind = "X-LIC-MIMECONTENTTYPE"
	PropertyXLicMimeEncoding    PropertyKind = "X-LIC-MIMEENCODING"
	PropertyXLicMimeFilename    PropertyKind = "X-LIC-MIMEFILENAME"
	PropertyXLicMimeOptInfo     PropertyKind = "X-LIC-MIMEOPTINFO"
	PropertyNone                PropertyKind = "NO"
)

func (k PropertyKind) instantiable() bool {
	return k != "" && k != PropertyNone && k != PropertyAny
}

// ParameterKind enumerates the parameter names known to the model, see
// RFC 5545 section 3.2.
type ParameterKind string

const (
	ParameterAny             ParameterKind = "ANY"
	ParameterActionParam     ParameterKind = "ACTIONPARAM"
	ParameterAltrep          ParameterKind = "ALTREP"
	ParameterCharset         ParameterKind = "CHARSET"
	ParameterCn              ParameterKind = "CN"
	ParameterCutype          ParameterKind = "CUTYPE"
	ParameterDelegatedFrom   ParameterKind = "DELEGATED-FROM"
	ParameterDelegatedTo     ParameterKind = "DELEGATED-TO"
	ParameterDir             ParameterKind = "DIR"
	ParameterEnable          ParameterKind = "ENABLE"
	ParameterEncoding        ParameterKind = "ENCODING"
	ParameterFbtype          ParameterKind = "FBTYPE"
	ParameterFmttype         ParameterKind = "FMTTYPE"
	ParameterIana            ParameterKind = "IANA"
	ParameterId              ParameterKind = "ID"
	ParameterLanguage        ParameterKind = "LANGUAGE"
	ParameterLatency         ParameterKind = "LATENCY"
	ParameterLocal           ParameterKind = "LOCAL"
	ParameterLocalize        ParameterKind = "LOCALIZE"
	ParameterMember          ParameterKind = "MEMBER"
	ParameterOptions         ParameterKind = "OPTIONS"
	ParameterPartstat        ParameterKind = "PARTSTAT"
	ParameterRange           ParameterKind = "RANGE"
	ParameterRelated         ParameterKind = "RELATED"
	ParameterReltype         ParameterKind = "RELTYPE"
	ParameterRole            ParameterKind = "ROLE"
	ParameterRsvp            ParameterKind = "RSVP"
	ParameterSentBy          ParameterKind = "SENT-BY"
	ParameterTzid            ParameterKind = "TZID"
	ParameterValue           ParameterKind = "VALUE"
	ParameterX               ParameterKind = "X"
	ParameterXLicCompareType ParameterKind = "X-LIC-COMPARETYPE"
	ParameterXLicErrorType   ParameterKind = "X-LIC-ERRORTYPE"
	ParameterNone            ParameterKind = "NO"
)

func (k ParameterKind) instantiable() bool {
	return k != "" && k != ParameterNone && k != ParameterAny
}

// IsQuoted reports whether values of this parameter are always written
// inside double quotes. RFC 5545 requires it for URI valued parameters.
func (k ParameterKind) IsQuoted() bool {
	switch k {
	case ParameterAltrep, ParameterDir, ParameterDelegatedFrom, ParameterDelegatedTo, ParameterMember, ParameterSentBy:
		return true
	}
	return false
}

// ValueKind enumerates the arms of the Value tagged union.
type ValueKind string

const (
	ValueAny            ValueKind = "ANY"
	ValueQuery          ValueKind = "QUERY"
	ValueDate           ValueKind = "DATE"
	ValueAttach         ValueKind = "ATTACH"
	ValueGeo            ValueKind = "GEO"
	ValueStatus         ValueKind = "STATUS"
	ValueTransp         ValueKind = "TRANSP"
	ValueString         ValueKind = "STRING"
	ValueText           ValueKind = "TEXT"
	ValueRequestStatus  ValueKind = "REQUEST-STATUS"
	ValueCmd            ValueKind = "CMD"
	ValueBinary         ValueKind = "BINARY"
	ValueQueryLevel     ValueKind = "QUERY-LEVEL"
	ValuePeriod         ValueKind = "PERIOD"
	ValueFloat          ValueKind = "FLOAT"
	ValueDateTimePeriod ValueKind = "DATE-TIME-PERIOD"
	ValueCarLevel       ValueKind = "CAR-LEVEL"
	ValueInteger        ValueKind = "INTEGER"
	ValueClass          ValueKind = "CLASS"
	ValueUri            ValueKind = "URI"
	ValueDuration       ValueKind = "DURATION"
	ValueBoolean        ValueKind = "BOOLEAN"
	ValueX              ValueKind = "X"
	ValueCalAddress     ValueKind = "CAL-ADDRESS"
	ValueTrigger        ValueKind = "TRIGGER"
	ValueXLicClass      ValueKind = "X-LIC-CLASS"
	ValueRecur          ValueKind = "RECUR"
	ValueAction         ValueKind = "ACTION"
	ValueDateTime       ValueKind = "DATE-TIME"
	ValueUtcOffset      ValueKind = "UTC-OFFSET"
	ValueMethod         ValueKind = "METHOD"
	ValueNone           ValueKind = "NO"
)

func (k ValueKind) instantiable() bool {
	return k != "" && k != ValueNone && k != ValueAny
}

// isExtensionName reports whether name is an experimental "X-" name.
func isExtensionName(name string) bool {
	return len(name) > 0 && (name[0] == 'X' || name[0] == 'x') && (len(name) == 1 || name[1] == '-')
}

func normalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
