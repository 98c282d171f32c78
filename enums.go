package ics

// The enumerations below are the closed value sets of individual parameters
// and properties. Every family carries an "X" member for experimental
// values and a "NONE" member used as the family's unresolved sentinel.

// ActionParam is the value set of the ACTIONPARAM parameter.
type ActionParam string

const (
	ActionParamX     ActionParam = "X"
	ActionParamAsk   ActionParam = "ASK"
	ActionParamAbort ActionParam = "ABORT"
	ActionParamNone  ActionParam = "NONE"
)

// CalendarUserType identifies the type of calendar user specified by the
// property, RFC 5545 section 3.2.3.
type CalendarUserType string

const (
	CalendarUserTypeX          CalendarUserType = "X"
	CalendarUserTypeIndividual CalendarUserType = "INDIVIDUAL"
	CalendarUserTypeGroup      CalendarUserType = "GROUP"
	CalendarUserTypeResource   CalendarUserType = "RESOURCE"
	CalendarUserTypeRoom       CalendarUserType = "ROOM"
	CalendarUserTypeUnknown    CalendarUserType = "UNKNOWN"
	CalendarUserTypeNone       CalendarUserType = "NONE"
)

type Enable string

const (
	EnableX     Enable = "X"
	EnableTrue  Enable = "TRUE"
	EnableFalse Enable = "FALSE"
	EnableNone  Enable = "NONE"
)

// Encoding is the inline encoding of a property value, RFC 5545 section
// 3.2.7.
type Encoding string

const (
	EncodingX      Encoding = "X"
	Encoding8Bit   Encoding = "8BIT"
	EncodingBase64 Encoding = "BASE64"
	EncodingNone   Encoding = "NONE"
)

// FreeBusyTimeType specifies the free or busy time type, RFC 5545 section
// 3.2.9.
type FreeBusyTimeType string

const (
	FreeBusyTimeTypeX               FreeBusyTimeType = "X"
	FreeBusyTimeTypeFree            FreeBusyTimeType = "FREE"
	FreeBusyTimeTypeBusy            FreeBusyTimeType = "BUSY"
	FreeBusyTimeTypeBusyUnavailable FreeBusyTimeType = "BUSY-UNAVAILABLE"
	FreeBusyTimeTypeBusyTentative   FreeBusyTimeType = "BUSY-TENTATIVE"
	FreeBusyTimeTypeNone            FreeBusyTimeType = "NONE"
)

type Local string

const (
	LocalX     Local = "X"
	LocalTrue  Local = "TRUE"
	LocalFalse Local = "FALSE"
	LocalNone  Local = "NONE"
)

// ParticipationStatus specifies the participation status for the calendar
// user specified by the property, RFC 5545 section 3.2.12.
type ParticipationStatus string

const (
	ParticipationStatusX           ParticipationStatus = "X"
	ParticipationStatusNeedsAction ParticipationStatus = "NEEDS-ACTION"
	ParticipationStatusAccepted    ParticipationStatus = "ACCEPTED"
	ParticipationStatusDeclined    ParticipationStatus = "DECLINED"
	ParticipationStatusTentative   ParticipationStatus = "TENTATIVE"
	ParticipationStatusDelegated   ParticipationStatus = "DELEGATED"
	ParticipationStatusCompleted   ParticipationStatus = "COMPLETED"
	ParticipationStatusInProcess   ParticipationStatus = "IN-PROCESS"
	ParticipationStatusNone        ParticipationStatus = "NONE"
)

// RecurrenceRange is the effective range of a recurrence instance, RFC 5545
// section 3.2.13.
type RecurrenceRange string

const (
	RecurrenceRangeX             RecurrenceRange = "X"
	RecurrenceRangeThisAndPrior  RecurrenceRange = "THISANDPRIOR"
	RecurrenceRangeThisAndFuture RecurrenceRange = "THISANDFUTURE"
	RecurrenceRangeNone          RecurrenceRange = "NONE"
)

// AlarmTriggerRelationship says whether a relative trigger is anchored to
// the start or the end of the component, RFC 5545 section 3.2.14.
type AlarmTriggerRelationship string

const (
	AlarmTriggerRelationshipX     AlarmTriggerRelationship = "X"
	AlarmTriggerRelationshipStart AlarmTriggerRelationship = "START"
	AlarmTriggerRelationshipEnd   AlarmTriggerRelationship = "END"
	AlarmTriggerRelationshipNone  AlarmTriggerRelationship = "NONE"
)

// RelationshipType specifies the type of hierarchical relationship
// associated with the calendar component, RFC 5545 section 3.2.15.
type RelationshipType string

const (
	RelationshipTypeX       RelationshipType = "X"
	RelationshipTypeParent  RelationshipType = "PARENT"
	RelationshipTypeChild   RelationshipType = "CHILD"
	RelationshipTypeSibling RelationshipType = "SIBLING"
	RelationshipTypeNone    RelationshipType = "NONE"
)

// ParticipationRole specifies the participation role for the calendar user
// specified by the property, RFC 5545 section 3.2.16.
type ParticipationRole string

const (
	ParticipationRoleX              ParticipationRole = "X"
	ParticipationRoleChair          ParticipationRole = "CHAIR"
	ParticipationRoleReqParticipant ParticipationRole = "REQ-PARTICIPANT"
	ParticipationRoleOptParticipant ParticipationRole = "OPT-PARTICIPANT"
	ParticipationRoleNonParticipant ParticipationRole = "NON-PARTICIPANT"
	ParticipationRoleNone           ParticipationRole = "NONE"
)

type Rsvp string

const (
	RsvpX     Rsvp = "X"
	RsvpTrue  Rsvp = "TRUE"
	RsvpFalse Rsvp = "FALSE"
	RsvpNone  Rsvp = "NONE"
)

// ValueDataType is the value set of the VALUE parameter, RFC 5545 section
// 3.2.20.
type ValueDataType string

const (
	ValueDataTypeX          ValueDataType = "X"
	ValueDataTypeBinary     ValueDataType = "BINARY"
	ValueDataTypeBoolean    ValueDataType = "BOOLEAN"
	ValueDataTypeDate       ValueDataType = "DATE"
	ValueDataTypeDuration   ValueDataType = "DURATION"
	ValueDataTypeFloat      ValueDataType = "FLOAT"
	ValueDataTypeInteger    ValueDataType = "INTEGER"
	ValueDataTypePeriod     ValueDataType = "PERIOD"
	ValueDataTypeRecur      ValueDataType = "RECUR"
	ValueDataTypeText       ValueDataType = "TEXT"
	ValueDataTypeUri        ValueDataType = "URI"
	ValueDataTypeError      ValueDataType = "ERROR"
	ValueDataTypeDateTime   ValueDataType = "DATE-TIME"
	ValueDataTypeUtcOffset  ValueDataType = "UTC-OFFSET"
	ValueDataTypeCalAddress ValueDataType = "CAL-ADDRESS"
	ValueDataTypeNone       ValueDataType = "NONE"
)

type XLicCompareType string

const (
	XLicCompareTypeX            XLicCompareType = "X"
	XLicCompareTypeEqual        XLicCompareType = "EQUAL"
	XLicCompareTypeNotEqual     XLicCompareType = "NOTEQUAL"
	XLicCompareTypeLess         XLicCompareType = "LESS"
	XLicCompareTypeGreater      XLicCompareType = "GREATER"
	XLicCompareTypeLessEqual    XLicCompareType = "LESSEQUAL"
	XLicCompareTypeGreaterEqual XLicCompareType = "GREATEREQUAL"
	XLicCompareTypeRegex        XLicCompareType = "REGEX"
	XLicCompareTypeIsNull       XLicCompareType = "ISNULL"
	XLicCompareTypeIsNotNull    XLicCompareType = "ISNOTNULL"
	XLicCompareTypeNone         XLicCompareType = "NONE"
)

// XLicErrorType classifies the X-LIC-ERROR markers written into a tree by
// the parser and by restriction checking.
type XLicErrorType string

const (
	XLicErrorTypeX                       XLicErrorType = "X"
	XLicErrorTypeComponentParseError     XLicErrorType = "COMPONENT-PARSE-ERROR"
	XLicErrorTypePropertyParseError      XLicErrorType = "PROPERTY-PARSE-ERROR"
	XLicErrorTypeParameterNameParseError XLicErrorType = "PARAMETER-NAME-PARSE-ERROR"
	XLicErrorTypeParameterValueError     XLicErrorType = "PARAMETER-VALUE-PARSE-ERROR"
	XLicErrorTypeValueParseError         XLicErrorType = "VALUE-PARSE-ERROR"
	XLicErrorTypeInvalidItip             XLicErrorType = "INVALID-ITIP"
	XLicErrorTypeUnknownVcalPropError    XLicErrorType = "UNKNOWN-VCAL-PROP-ERROR"
	XLicErrorTypeMimeParseError          XLicErrorType = "MIME-PARSE-ERROR"
	XLicErrorTypeVcalPropParseError      XLicErrorType = "VCAL-PROP-PARSE-ERROR"
	XLicErrorTypeNone                    XLicErrorType = "NONE"
)

// Action is the value of the ACTION property of a VALARM, RFC 5545 section
// 3.8.6.1.
type Action string

const (
	ActionX         Action = "X"
	ActionAudio     Action = "AUDIO"
	ActionDisplay   Action = "DISPLAY"
	ActionEmail     Action = "EMAIL"
	ActionProcedure Action = "PROCEDURE"
	ActionNone      Action = "NONE"
)

type CarLevel string

const (
	CarLevelX        CarLevel = "X"
	CarLevelCarNone  CarLevel = "CAR-NONE"
	CarLevelCarMin   CarLevel = "CAR-MIN"
	CarLevelCarFull1 CarLevel = "CAR-FULL-1"
	CarLevelNone     CarLevel = "NONE"
)

// Classification defines the access classification for a calendar
// component, RFC 5545 section 3.8.1.3.
type Classification string

const (
	ClassificationX            Classification = "X"
	ClassificationPublic       Classification = "PUBLIC"
	ClassificationPrivate      Classification = "PRIVATE"
	ClassificationConfidential Classification = "CONFIDENTIAL"
	ClassificationNone         Classification = "NONE"
)

// Command is the value of the CAP CMD property.
type Command string

const (
	CommandX             Command = "X"
	CommandAbort         Command = "ABORT"
	CommandContinue      Command = "CONTINUE"
	CommandCreate        Command = "CREATE"
	CommandDelete        Command = "DELETE"
	CommandGenerateUid   Command = "GENERATE-UID"
	CommandGetCapability Command = "GET-CAPABILITY"
	CommandIdentify      Command = "IDENTIFY"
	CommandModify        Command = "MODIFY"
	CommandMove          Command = "MOVE"
	CommandReply         Command = "REPLY"
	CommandSearch        Command = "SEARCH"
	CommandSetLocale     Command = "SET-LOCALE"
	CommandNone          Command = "NONE"
)

// Method defines the iCalendar object method associated with the calendar
// object, RFC 5545 section 3.7.2 and RFC 5546.
type Method string

const (
	MethodX              Method = "X"
	MethodPublish        Method = "PUBLISH"
	MethodRequest        Method = "REQUEST"
	MethodReply          Method = "REPLY"
	MethodAdd            Method = "ADD"
	MethodCancel         Method = "CANCEL"
	MethodRefresh        Method = "REFRESH"
	MethodCounter        Method = "COUNTER"
	MethodDeclineCounter Method = "DECLINECOUNTER"
	MethodCreate         Method = "CREATE"
	MethodRead           Method = "READ"
	MethodResponse       Method = "RESPONSE"
	MethodMove           Method = "MOVE"
	MethodModify         Method = "MODIFY"
	MethodGenerateUid    Method = "GENERATEUID"
	MethodDelete         Method = "DELETE"
	MethodNone           Method = "NONE"
)

type QueryLevel string

const (
	QueryLevelX         QueryLevel = "X"
	QueryLevelCalQl1    QueryLevel = "CAL-QL-1"
	QueryLevelCalQlNone QueryLevel = "CAL-QL-NONE"
	QueryLevelNone      QueryLevel = "NONE"
)

// ObjectStatus defines the overall status or confirmation for the calendar
// component, RFC 5545 section 3.8.1.11.
type ObjectStatus string

const (
	ObjectStatusX           ObjectStatus = "X"
	ObjectStatusTentative   ObjectStatus = "TENTATIVE"
	ObjectStatusConfirmed   ObjectStatus = "CONFIRMED"
	ObjectStatusCompleted   ObjectStatus = "COMPLETED"
	ObjectStatusNeedsAction ObjectStatus = "NEEDS-ACTION"
	ObjectStatusCancelled   ObjectStatus = "CANCELLED"
	ObjectStatusInProcess   ObjectStatus = "IN-PROCESS"
	ObjectStatusDraft       ObjectStatus = "DRAFT"
	ObjectStatusFinal       ObjectStatus = "FINAL"
	ObjectStatusNone        ObjectStatus = "NONE"
)

// TimeTransparency defines whether or not an event is transparent to busy
// time searches, RFC 5545 section 3.8.2.7.
type TimeTransparency string

const (
	TimeTransparencyX                     TimeTransparency = "X"
	TimeTransparencyOpaque                TimeTransparency = "OPAQUE"
	TimeTransparencyOpaqueNoConflict      TimeTransparency = "OPAQUE-NOCONFLICT"
	TimeTransparencyTransparent           TimeTransparency = "TRANSPARENT"
	TimeTransparencyTransparentNoConflict TimeTransparency = "TRANSPARENT-NOCONFLICT"
	TimeTransparencyNone                  TimeTransparency = "NONE"
)

// XLicClass is the iTIP message classification written by libical based
// tooling.
type XLicClass string

const (
	XLicClassX                   XLicClass = "X"
	XLicClassPublishNew          XLicClass = "PUBLISH-NEW"
	XLicClassPublishUpdate       XLicClass = "PUBLISH-UPDATE"
	XLicClassPublishFreebusy     XLicClass = "PUBLISH-FREEBUSY"
	XLicClassRequestNew          XLicClass = "REQUEST-NEW"
	XLicClassRequestUpdate       XLicClass = "REQUEST-UPDATE"
	XLicClassRequestReschedule   XLicClass = "REQUEST-RESCHEDULE"
	XLicClassRequestDelegate     XLicClass = "REQUEST-DELEGATE"
	XLicClassRequestNewOrganizer XLicClass = "REQUEST-NEW-ORGANIZER"
	XLicClassRequestForward      XLicClass = "REQUEST-FORWARD"
	XLicClassRequestStatus       XLicClass = "REQUEST-STATUS"
	XLicClassRequestFreebusy     XLicClass = "REQUEST-FREEBUSY"
	XLicClassReplyAccept         XLicClass = "REPLY-ACCEPT"
	XLicClassReplyDecline        XLicClass = "REPLY-DECLINE"
	XLicClassReplyDelegate       XLicClass = "REPLY-DELEGATE"
	XLicClassReplyCrasherAccept  XLicClass = "REPLY-CRASHER-ACCEPT"
	XLicClassReplyCrasherDecline XLicClass = "REPLY-CRASHER-DECLINE"
	XLicClassAddInstance         XLicClass = "ADD-INSTANCE"
	XLicClassCancelEvent         XLicClass = "CANCEL-EVENT"
	XLicClassCancelInstance      XLicClass = "CANCEL-INSTANCE"
	XLicClassCancelAll           XLicClass = "CANCEL-ALL"
	XLicClassRefresh             XLicClass = "REFRESH"
	XLicClassCounter             XLicClass = "COUNTER"
	XLicClassDeclineCounter      XLicClass = "DECLINECOUNTER"
	XLicClassMalformed           XLicClass = "MALFORMED"
	XLicClassObsolete            XLicClass = "OBSOLETE"
	XLicClassMissequenced        XLicClass = "MISSEQUENCED"
	XLicClassUnknown             XLicClass = "UNKNOWN"
	XLicClassNone                XLicClass = "NONE"
)

// RequestStatus is the status code carried by REQUEST-STATUS, RFC 5546
// section 3.6.
type RequestStatus string

const (
	RequestStatusUnknown RequestStatus = "UNKNOWN"
	RequestStatus2_0     RequestStatus = "2.0"
	RequestStatus2_1     RequestStatus = "2.1"
	RequestStatus2_2     RequestStatus = "2.2"
	RequestStatus2_3     RequestStatus = "2.3"
	RequestStatus2_4     RequestStatus = "2.4"
	RequestStatus2_5     RequestStatus = "2.5"
	RequestStatus2_6     RequestStatus = "2.6"
	RequestStatus2_7     RequestStatus = "2.7"
	RequestStatus2_8     RequestStatus = "2.8"
	RequestStatus2_9     RequestStatus = "2.9"
	RequestStatus2_10    RequestStatus = "2.10"
	RequestStatus2_11    RequestStatus = "2.11"
	RequestStatus3_0     RequestStatus = "3.0"
	RequestStatus3_1     RequestStatus = "3.1"
	RequestStatus3_2     RequestStatus = "3.2"
	RequestStatus3_3     RequestStatus = "3.3"
	RequestStatus3_4     RequestStatus = "3.4"
	RequestStatus3_5     RequestStatus = "3.5"
	RequestStatus3_6     RequestStatus = "3.6"
	RequestStatus3_7     RequestStatus = "3.7"
	RequestStatus3_8     RequestStatus = "3.8"
	RequestStatus3_9     RequestStatus = "3.9"
	RequestStatus3_10    RequestStatus = "3.10"
	RequestStatus3_11    RequestStatus = "3.11"
	RequestStatus3_12    RequestStatus = "3.12"
	RequestStatus3_13    RequestStatus = "3.13"
	RequestStatus3_14    RequestStatus = "3.14"
	RequestStatus3_15    RequestStatus = "3.15"
	RequestStatus4_0     RequestStatus = "4.0"
	RequestStatus4_1     RequestStatus = "4.1"
	RequestStatus4_2     RequestStatus = "4.2"
	RequestStatus4_3     RequestStatus = "4.3"
	RequestStatus5_0     RequestStatus = "5.0"
	RequestStatus5_1     RequestStatus = "5.1"
	RequestStatus5_2     RequestStatus = "5.2"
	RequestStatus5_3     RequestStatus = "5.3"
	RequestStatus6_1     RequestStatus = "6.1"
	RequestStatus9_0     RequestStatus = "9.0"
)

// Frequency is the FREQ rule part of a recurrence rule.
type Frequency string

const (
	FrequencySecondly Frequency = "SECONDLY"
	FrequencyMinutely Frequency = "MINUTELY"
	FrequencyHourly   Frequency = "HOURLY"
	FrequencyDaily    Frequency = "DAILY"
	FrequencyWeekly   Frequency = "WEEKLY"
	FrequencyMonthly  Frequency = "MONTHLY"
	FrequencyYearly   Frequency = "YEARLY"
	FrequencyNone     Frequency = "NONE"
)

// Weekday is a two letter day code. Its position in Weekdays, NONE being
// 0 and SA being 7, is the weekday half of a packed BYDAY entry.
type Weekday string

const (
	WeekdayNone      Weekday = "NONE"
	WeekdaySunday    Weekday = "SU"
	WeekdayMonday    Weekday = "MO"
	WeekdayTuesday   Weekday = "TU"
	WeekdayWednesday Weekday = "WE"
	WeekdayThursday  Weekday = "TH"
	WeekdayFriday    Weekday = "FR"
	WeekdaySaturday  Weekday = "SA"
)
