package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Rest bounds accepted by ParseRest
const (
	MinRest = 5 * time.Second
	MaxRest = time.Hour
)

var clockRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseRest parses rest durations
// Supported formats:
// - plain seconds (e.g., "90")
// - Go durations (e.g., "90s", "2m", "1m30s")
// - mm:ss (e.g., "1:30")
func ParseRest(input string) (time.Duration, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, fmt.Errorf("rest time is required")
	}

	var d time.Duration
	if n, err := strconv.Atoi(input); err == nil {
		d = time.Duration(n) * time.Second
	} else if m := clockRegex.FindStringSubmatch(input); len(m) == 3 {
		minutes, _ := strconv.Atoi(m[1])
		seconds, _ := strconv.Atoi(m[2])
		if seconds > 59 {
			return 0, fmt.Errorf("seconds must be between 0 and 59")
		}
		d = time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
	} else if parsed, err := time.ParseDuration(input); err == nil {
		d = parsed
	} else {
		return 0, fmt.Errorf("invalid rest format. Use: 90, 90s, 2m, 1m30s or 1:30")
	}

	if d < MinRest || d > MaxRest {
		return 0, fmt.Errorf("rest must be between %s and %s", MinRest, MaxRest)
	}
	return d.Truncate(time.Second), nil
}

// FormatRest formats a countdown as MM:SS
func FormatRest(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
