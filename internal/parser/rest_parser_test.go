package parser

import (
	"testing"
	"time"
)

func TestParseRest(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"90", 90 * time.Second},
		{" 60 ", time.Minute},
		{"90s", 90 * time.Second},
		{"2m", 2 * time.Minute},
		{"1m30s", 90 * time.Second},
		{"1.5m", 90 * time.Second},
		{"1:30", 90 * time.Second},
		{"00:05", 5 * time.Second},
		{"1h", time.Hour},
	}

	for _, tt := range tests {
		got, err := ParseRest(tt.input)
		if err != nil {
			t.Errorf("ParseRest(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRest(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseRestErrors(t *testing.T) {
	for _, input := range []string{"", "abc", "3", "-30", "1:75", "2h", "1:2"} {
		if _, err := ParseRest(input); err == nil {
			t.Errorf("ParseRest(%q) succeeded, want error", input)
		}
	}
}

func TestFormatRest(t *testing.T) {
	tests := map[time.Duration]string{
		0:                "00:00",
		59 * time.Second: "00:59",
		90 * time.Second: "01:30",
		-time.Second:     "00:00",
	}
	for d, want := range tests {
		if got := FormatRest(d); got != want {
			t.Errorf("FormatRest(%v) = %q, want %q", d, got, want)
		}
	}
}
