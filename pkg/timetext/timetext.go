package timetext

import (
	"fmt"
	"strconv"
	"strings"
)

// SentinelMinutes is returned for unparseable time strings so they sort
// after every real time of day.
const SentinelMinutes = 9999

// Clock is a parsed time-of-day: a minute offset from midnight for sorting
// and a human-facing label.
type Clock struct {
	Minutes int
	Label   string
}

// Parse converts a loose schedule time string ("9:00", "1pm", "13:00") into
// a Clock. When the string carries no explicit AM/PM marker, the office
// business-hours heuristic applies: hour 12 and hours 1-6 are PM, hours
// 7-11 are AM. Strings with no digits yield SentinelMinutes with the raw
// input echoed as the label.
func Parse(raw string) Clock {
	if raw == "" {
		return Clock{Minutes: 0, Label: ""}
	}

	lower := strings.ToLower(strings.TrimSpace(raw))
	hasAM := strings.Contains(lower, "am") || strings.Contains(lower, "a.m.")
	hasPM := strings.Contains(lower, "pm") || strings.Contains(lower, "p.m.")

	h, m, ok := splitClock(lower)
	if !ok {
		return Clock{Minutes: SentinelMinutes, Label: raw}
	}

	isPM := inferPM(h, hasAM, hasPM)

	sortH := h
	if isPM && h != 12 {
		sortH += 12
	}
	if !isPM && h == 12 {
		sortH = 0
	}

	suffix := "AM"
	if isPM {
		suffix = "PM"
	}

	return Clock{
		Minutes: sortH*60 + m,
		Label:   fmt.Sprintf("%d:%02d %s", h, m, suffix),
	}
}

// FormatDisplay renders an already-structured time string into "H:MM AM/PM".
// It accepts 24-hour "HH:MM" values and loose digit runs without separators
// ("900", "1330"). Hours above 12 are taken as 24-hour and converted
// directly; hours up to 12 with no suffix go through the same business-hours
// heuristic as Parse. Minutes of 60 or more, or hours above 24, are invalid
// and the input is echoed back unchanged.
func FormatDisplay(raw string) string {
	if raw == "" {
		return ""
	}

	lower := strings.ToLower(strings.TrimSpace(raw))
	hasAM := strings.Contains(lower, "am") || strings.Contains(lower, "a.m.")
	hasPM := strings.Contains(lower, "pm") || strings.Contains(lower, "p.m.")

	var h, m int
	var ok bool
	if strings.Contains(lower, ":") {
		h, m, ok = splitClock(lower)
	} else {
		h, m, ok = splitDigitRun(lower)
	}
	if !ok || m >= 60 || h > 24 {
		return raw
	}

	var isPM bool
	switch {
	case hasAM || hasPM:
		isPM = hasPM
	case h >= 12:
		// Explicit 24-hour value, no heuristic needed.
		isPM = true
	default:
		isPM = inferPM(h, false, false)
	}

	displayH := h % 12
	if displayH == 0 {
		displayH = 12
	}

	suffix := "AM"
	if isPM {
		suffix = "PM"
	}

	return fmt.Sprintf("%d:%02d %s", displayH, m, suffix)
}

// inferPM resolves the meridiem: explicit markers win, otherwise the
// business-hours heuristic (12 and 1-6 are PM, everything else AM).
func inferPM(h int, hasAM, hasPM bool) bool {
	if hasPM {
		return true
	}
	if hasAM {
		return false
	}
	return h == 12 || (h >= 1 && h <= 6)
}

// splitClock extracts hour and minute from a string that may contain a
// colon separator, dropping every character except digits and the colon.
func splitClock(s string) (h, m int, ok bool) {
	clean := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ':' {
			return r
		}
		return -1
	}, s)

	parts := strings.SplitN(clean, ":", 2)
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	if len(parts) > 1 && parts[1] != "" {
		// Trailing garbage after the minutes was already stripped; a second
		// colon leaves extra fields behind which Atoi rejects.
		mm := parts[1]
		if i := strings.IndexByte(mm, ':'); i >= 0 {
			mm = mm[:i]
		}
		m, err = strconv.Atoi(mm)
		if err != nil {
			return 0, 0, false
		}
	}
	return h, m, true
}

// splitDigitRun interprets a separator-less digit run: "9" and "13" are bare
// hours, "900" is 9:00, "1330" is 13:30.
func splitDigitRun(s string) (h, m int, ok bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)

	switch {
	case digits == "":
		return 0, 0, false
	case len(digits) <= 2:
		h, _ = strconv.Atoi(digits)
		return h, 0, true
	default:
		h, _ = strconv.Atoi(digits[:len(digits)-2])
		m, _ = strconv.Atoi(digits[len(digits)-2:])
		return h, m, true
	}
}
