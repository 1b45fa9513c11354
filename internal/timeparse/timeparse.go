// Package timeparse converts human clock strings into minutes since
// midnight. Order times arrive from external sources and are expected
// to be imperfect, so parsing returns an explicit ok value instead of
// an error: a failed parse disqualifies a pair, it never aborts a pass.
package timeparse

import (
	"regexp"
	"strconv"
	"strings"
)

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?:\s*([AaPp])\.?[Mm]\.?)?$`)

// Minutes parses strings like "7:00 AM", "12:05pm" or "14:30" into
// minutes since midnight. The second return value is false when the
// input cannot be parsed or encodes an impossible time.
func Minutes(s string) (int, bool) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	if minute > 59 {
		return 0, false
	}

	meridiem := strings.ToLower(m[3])
	if meridiem == "" {
		// 24-hour clock.
		if hour > 23 {
			return 0, false
		}
		return hour*60 + minute, true
	}

	if hour < 1 || hour > 12 {
		return 0, false
	}
	if hour == 12 {
		hour = 0
	}
	if meridiem == "p" {
		hour += 12
	}

	return hour*60 + minute, true
}
