package ics

// The WithNewLine constants select the newline style used when serializing
// calendars.  RFC 5545 section 3.1 requires lines to be delimited by CRLF
// ("\r\n"), but many tools also accept LF on Unix systems.
const (
	// WithNewLineUnix uses LF line endings.
	WithNewLineUnix WithNewLine = "\n"
	// WithNewLineWindows uses CRLF line endings as required by RFC 5545 section 3.1.
	WithNewLineWindows WithNewLine = "\r\n"
)

// hostZoneOverride replaces platform detection, used by tests.
var hostZoneOverride func() (string, bool)

// hostZone returns the IANA name of the zone the host is configured with
// and whether daylight saving time is currently in effect. The name is
// empty when it cannot be determined.
func hostZone() (string, bool) {
	if hostZoneOverride != nil {
		return hostZoneOverride()
	}
	return platformZone()
}
