package tui

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"
)

// ShimmerConfig holds configuration for the highlight sweep
type ShimmerConfig struct {
	Enabled        bool    // animations: on|off
	SpeedMs        int     // tick interval (default 100)
	WidthRatio     float64 // highlight width relative to text (default 0.25)
	CycleMs        int     // one sweep in ms (default 1800)
	PauseBetweenMs int     // pause between sweeps in ms (default 500)
}

// ShimmerState holds the current state of a shimmer effect
type ShimmerState struct {
	Center            float64
	Active            bool
	Config            ShimmerConfig
	SupportsTrueColor bool

	paused     bool
	pauseTicks int
}

// DefaultShimmerConfig returns default shimmer configuration.
// FITTRACK_NO_ANIMATION disables it.
func DefaultShimmerConfig() ShimmerConfig {
	return ShimmerConfig{
		Enabled:        os.Getenv("FITTRACK_NO_ANIMATION") == "",
		SpeedMs:        100,
		WidthRatio:     0.25,
		CycleMs:        1800,
		PauseBetweenMs: 500,
	}
}

// NewShimmerState creates a new shimmer state
func NewShimmerState(config ShimmerConfig) *ShimmerState {
	return &ShimmerState{
		Active:            config.Enabled,
		Config:            config,
		SupportsTrueColor: os.Getenv("COLORTERM") == "truecolor",
	}
}

// Advance moves the sweep by one tick across text of length n
func (s *ShimmerState) Advance(n int) {
	if !s.Active || n <= 0 {
		return
	}

	if s.paused {
		s.pauseTicks--
		if s.pauseTicks <= 0 {
			s.paused = false
			s.Center = -float64(n) * s.Config.WidthRatio // Start before the beginning
		}
		return
	}

	ticksPerCycle := float64(s.Config.CycleMs) / float64(s.Config.SpeedMs)
	totalDistance := float64(n) * (1.0 + 2.0*s.Config.WidthRatio)
	s.Center += totalDistance / ticksPerCycle

	if maxCenter := float64(n) * (1.0 + s.Config.WidthRatio); s.Center >= maxCenter {
		s.paused = true
		s.pauseTicks = s.Config.PauseBetweenMs / s.Config.SpeedMs
		s.Center = maxCenter
	}
}

// Reset restarts the sweep (call when selection changes)
func (s *ShimmerState) Reset() {
	s.Center = 0
	s.paused = false
	s.pauseTicks = 0
}

// TickInterval returns the interval for tea.Tick commands
func (s *ShimmerState) TickInterval() time.Duration {
	return time.Duration(s.Config.SpeedMs) * time.Millisecond
}

// Render renders text with the sweep applied
func (s *ShimmerState) Render(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	if !s.Active {
		return fmt.Sprintf("\033[38;2;93;173;226m%s\033[0m", text) // ColorAccentBright
	}

	sigma := math.Max(1.0, s.Config.WidthRatio*float64(len(runes))/2.0)

	var b strings.Builder
	for i, char := range runes {
		dx := float64(i) - s.Center
		weight := math.Exp(-(dx * dx) / (2 * sigma * sigma))

		if !s.SupportsTrueColor {
			if weight > 0.5 {
				b.WriteString(fmt.Sprintf("\033[38;5;153m%c", char))
			} else {
				b.WriteString(fmt.Sprintf("\033[38;5;250m%c", char))
			}
			continue
		}

		// Blend base #AAB7C4 towards #EAF6FF
		r := int(170*(1-weight) + 234*weight)
		g := int(183*(1-weight) + 246*weight)
		bl := int(196*(1-weight) + 255*weight)
		b.WriteString(fmt.Sprintf("\033[38;2;%d;%d;%dm%c", r, g, bl, char))
	}
	b.WriteString("\033[0m")

	return b.String()
}
