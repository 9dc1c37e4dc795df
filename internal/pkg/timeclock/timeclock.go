package timeclock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultReportOffsetMinutes is the display offset reports are rendered in
// (UTC+2). Raw punches arrive zoned at whatever offset the backend stores.
const DefaultReportOffsetMinutes = 120

var (
	clockRegex  = regexp.MustCompile(`([01]?[0-9]|2[0-3]):([0-5][0-9])`)
	offsetRegex = regexp.MustCompile(`(Z|[+-][0-9]{2}:?[0-9]{2})$`)
)

// ExtractClock pulls an "HH:mm" clock time out of a heterogeneous time value:
// a plain "HH:mm[:ss]" string, an ISO-8601 timestamp, or a numeric
// minutes-since-midnight count. Returns "" when nothing is extractable.
func ExtractClock(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return ""
		}
		if m := clockRegex.FindStringSubmatch(s); m != nil {
			return pad2(m[1]) + ":" + m[2]
		}
		if n, err := strconv.Atoi(s); err == nil {
			return fromMinutes(n)
		}
		return ""
	case int:
		return fromMinutes(v)
	case int64:
		return fromMinutes(int(v))
	case float64:
		return fromMinutes(int(v))
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format("15:04")
	}
	return ""
}

// NormalizeZoned formats an ISO timestamp as "HH:mm" in the report's display
// offset. Strings carrying a Z or +HH:mm suffix are re-based to offsetMinutes
// before formatting; strings without an offset are treated as already being
// display-local and only have their clock fragment extracted.
func NormalizeZoned(iso string, offsetMinutes int) string {
	s := strings.TrimSpace(iso)
	if s == "" {
		return ""
	}
	if !offsetRegex.MatchString(s) {
		return ExtractClock(s)
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04:05.000Z07:00", s)
		if err != nil {
			return ExtractClock(s)
		}
	}
	loc := time.FixedZone("report", offsetMinutes*60)
	return t.In(loc).Format("15:04")
}

// WorkMinutes returns the minute delta between two clock times anchored to an
// arbitrary common date. Nil when either side is missing or unparsable.
// Negative results (exit before entry) are not clamped; callers must guard.
func WorkMinutes(entry, exit string) *int {
	e := ExtractClock(entry)
	x := ExtractClock(exit)
	if e == "" || x == "" {
		return nil
	}
	eh, em, _ := splitClock(e)
	xh, xm, _ := splitClock(x)
	d := (xh*60 + xm) - (eh*60 + em)
	return &d
}

// MinutesAfter returns how many minutes actual lies after reference, or nil
// when either clock time is unparsable. Negative when actual is earlier.
func MinutesAfter(actual, reference string) *int {
	a := ExtractClock(actual)
	r := ExtractClock(reference)
	if a == "" || r == "" {
		return nil
	}
	ah, am, _ := splitClock(a)
	rh, rm, _ := splitClock(r)
	d := (ah*60 + am) - (rh*60 + rm)
	return &d
}

// RoundedHoursWithSign renders a signed minute total as whole hours with a
// half-up threshold: 30 leftover minutes round the hour up. A zero-hour
// result is suppressed to "" rather than shown as "+0h"/"-0h".
func RoundedHoursWithSign(minutes int) string {
	abs := minutes
	if abs < 0 {
		abs = -abs
	}
	hours := abs / 60
	if abs%60 >= 30 {
		hours++
	}
	if hours == 0 {
		return ""
	}
	if minutes < 0 {
		return fmt.Sprintf("-%dh", hours)
	}
	return fmt.Sprintf("+%dh", hours)
}

func splitClock(s string) (hour, minute int, ok bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}

func fromMinutes(n int) string {
	if n < 0 || n >= 24*60 {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", n/60, n%60)
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
