package timetext_test

import (
	"fmt"
	"testing"

	"schedule-board/pkg/timetext"
)

func TestParseHeuristicTable(t *testing.T) {
	// Suffix-less hours: 12 and 1-6 read as PM, 7-11 as AM.
	wantPM := map[int]bool{
		1: true, 2: true, 3: true, 4: true, 5: true, 6: true,
		7: false, 8: false, 9: false, 10: false, 11: false,
		12: true,
	}

	for h := 1; h <= 12; h++ {
		h := h
		t.Run(fmt.Sprintf("hour_%d", h), func(t *testing.T) {
			got := timetext.Parse(fmt.Sprintf("%d:00", h))

			wantMinutes := h * 60
			if wantPM[h] && h != 12 {
				wantMinutes = (h + 12) * 60
			}

			if got.Minutes != wantMinutes {
				t.Errorf("Parse(%d:00) minutes = %d, want %d", h, got.Minutes, wantMinutes)
			}

			suffix := "AM"
			if wantPM[h] {
				suffix = "PM"
			}
			wantLabel := fmt.Sprintf("%d:00 %s", h, suffix)
			if got.Label != wantLabel {
				t.Errorf("Parse(%d:00) label = %q, want %q", h, got.Label, wantLabel)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantMinutes int
		wantLabel   string
	}{
		{name: "morning with minutes", raw: "9:00", wantMinutes: 540, wantLabel: "9:00 AM"},
		{name: "early afternoon heuristic", raw: "1:00", wantMinutes: 780, wantLabel: "1:00 PM"},
		{name: "explicit 24 hour value", raw: "13:00", wantMinutes: 780, wantLabel: "13:00 AM"},
		{name: "explicit pm marker", raw: "9:00 PM", wantMinutes: 1260, wantLabel: "9:00 PM"},
		{name: "explicit am marker on afternoon hour", raw: "1:00am", wantMinutes: 60, wantLabel: "1:00 AM"},
		{name: "dotted marker", raw: "10 a.m.", wantMinutes: 600, wantLabel: "10:00 AM"},
		{name: "bare pm hour", raw: "1pm", wantMinutes: 780, wantLabel: "1:00 PM"},
		{name: "noon", raw: "12:00", wantMinutes: 720, wantLabel: "12:00 PM"},
		{name: "midnight via explicit am", raw: "12:00 AM", wantMinutes: 0, wantLabel: "12:00 AM"},
		{name: "half hour", raw: "9:30", wantMinutes: 570, wantLabel: "9:30 AM"},
		{name: "unparseable sorts last", raw: "TBD", wantMinutes: timetext.SentinelMinutes, wantLabel: "TBD"},
		{name: "empty", raw: "", wantMinutes: 0, wantLabel: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timetext.Parse(tt.raw)
			if got.Minutes != tt.wantMinutes {
				t.Errorf("Parse(%q) minutes = %d, want %d", tt.raw, got.Minutes, tt.wantMinutes)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Parse(%q) label = %q, want %q", tt.raw, got.Label, tt.wantLabel)
			}
		})
	}
}

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "24 hour afternoon", raw: "13:00", want: "1:00 PM"},
		{name: "24 hour morning", raw: "09:15", want: "9:15 AM"},
		{name: "suffix-less afternoon heuristic", raw: "1:00", want: "1:00 PM"},
		{name: "suffix-less morning heuristic", raw: "9:00", want: "9:00 AM"},
		{name: "noon", raw: "12:00", want: "12:00 PM"},
		{name: "midnight", raw: "00:30", want: "12:30 AM"},
		{name: "hour 24 wraps to noon display", raw: "24:00", want: "12:00 PM"},
		{name: "loose digits morning", raw: "900", want: "9:00 AM"},
		{name: "loose digits 24 hour", raw: "1330", want: "1:30 PM"},
		{name: "bare hour", raw: "9", want: "9:00 AM"},
		{name: "explicit am beats heuristic", raw: "1:00 AM", want: "1:00 AM"},
		{name: "invalid minutes echoed", raw: "9:75", want: "9:75"},
		{name: "invalid hour echoed", raw: "25:00", want: "25:00"},
		{name: "no digits echoed", raw: "noonish", want: "noonish"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timetext.FormatDisplay(tt.raw); got != tt.want {
				t.Errorf("FormatDisplay(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
