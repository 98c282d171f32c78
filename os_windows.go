package ics

import (
	"golang.org/x/sys/windows"
)

// NewLine is the native newline of the host, CRLF here.
const (
	NewLine = WithNewLineWindows
)

// timeZoneIDDaylight is the GetTimeZoneInformation result while daylight
// saving time is in effect.
const timeZoneIDDaylight = 2

func platformZone() (string, bool) {
	var tzi windows.Timezoneinformation
	rc, err := windows.GetTimeZoneInformation(&tzi)
	if err != nil {
		logger().Debug("GetTimeZoneInformation failed", "err", err)
		return "", false
	}
	name, ok := OlsonName(windows.UTF16ToString(tzi.StandardName[:]))
	if !ok {
		return "UTC", rc == timeZoneIDDaylight
	}
	return name, rc == timeZoneIDDaylight
}
