//go:build !windows

package ics

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// NewLine is the native newline of the host, LF here.
const (
	NewLine = WithNewLineUnix
)

const zoneinfoMarker = "zoneinfo/"

func platformZone() (string, bool) {
	name := unixZoneName()
	if name == "" {
		return "", false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return "", false
	}
	return name, time.Now().In(loc).IsDST()
}

// unixZoneName tries $TZ, the /etc/localtime symlink and /etc/timezone in
// that order.
func unixZoneName() string {
	if tz, ok := os.LookupEnv("TZ"); ok && tz != "" {
		return strings.TrimPrefix(tz, ":")
	}
	if target, err := filepath.EvalSymlinks("/etc/localtime"); err == nil {
		if i := strings.LastIndex(target, zoneinfoMarker); i >= 0 {
			return target[i+len(zoneinfoMarker):]
		}
	}
	if b, err := os.ReadFile("/etc/timezone"); err == nil {
		if name := strings.TrimSpace(string(b)); name != "" {
			return name
		}
	}
	return "UTC"
}
