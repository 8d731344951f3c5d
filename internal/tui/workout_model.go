package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fancybaby404/FitTrack/internal/models"
	"github.com/fancybaby404/FitTrack/internal/parser"
	"github.com/fancybaby404/FitTrack/internal/workout"
)

// restStep is how much [ and ] shift the rest countdown
const restStep = 15 * time.Second

// WorkoutModel represents the TUI model for a running workout
type WorkoutModel struct {
	width  int
	height int

	session  *workout.Session
	rest     *workout.Rest // nil when not resting
	restFor  time.Duration
	selected int
	now      func() time.Time

	// Animation state
	timerAnimation int

	// UI state
	summary   workout.Summary
	finished  bool // True when user pressed space on a running session
	abandoned bool // True when user left without finishing
}

// workoutTickMsg is sent every second to advance the stopwatch and rest timer
type workoutTickMsg struct{}

// NewWorkoutModel creates a workout model for routine
func NewWorkoutModel(routine models.Routine, rest time.Duration) WorkoutModel {
	if rest <= 0 {
		rest = workout.DefaultRest
	}
	return WorkoutModel{
		session: workout.NewSession(routine),
		restFor: rest,
		now:     time.Now,
	}
}

func workoutTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return workoutTickMsg{}
	})
}

// bell rings the terminal bell when a rest period ends
func bell() tea.Msg {
	fmt.Fprint(os.Stderr, "\a")
	return nil
}

// Init initializes the workout model
func (m WorkoutModel) Init() tea.Cmd {
	return workoutTick()
}

// Update handles messages
func (m WorkoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workoutTickMsg:
		if m.finished || m.abandoned {
			return m, nil
		}
		m.session.Tick()
		m.timerAnimation = (m.timerAnimation + 1) % 4

		var cmd tea.Cmd
		if m.rest != nil {
			m.rest.Tick()
			if m.rest.Done() {
				m.rest = nil
				cmd = bell
			}
		}
		return m, tea.Batch(cmd, workoutTick())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.rest != nil {
			if handled := m.updateRest(msg); handled {
				return m, nil
			}
		}

		switch msg.String() {
		case " ", "space":
			if !m.session.Started() {
				m.session.Start(m.now())
				return m, nil
			}
			m.summary = m.session.Finish(m.now())
			m.finished = true
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.session.Routine.Exercises)-1 {
				m.selected++
			}

		case "+", "=", "right", "l":
			if m.session.AddSet(m.selected) {
				m.rest = workout.NewRest(m.restFor)
			}
		case "-", "_", "left", "h":
			m.session.RemoveSet(m.selected)

		case "r":
			if m.rest != nil {
				m.rest = nil
			} else if m.session.Started() {
				m.rest = workout.NewRest(m.restFor)
			}

		case "ctrl+c", "esc", "q":
			m.abandoned = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// updateRest handles keys that only apply while the rest overlay is shown
func (m *WorkoutModel) updateRest(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "p":
		m.rest.TogglePause()
	case "[":
		m.rest.Adjust(-restStep)
		if m.rest.Done() {
			m.rest = nil
		}
	case "]":
		m.rest.Adjust(restStep)
	case "esc":
		m.rest = nil
	default:
		return false
	}
	return true
}

// Finished reports whether the workout was completed and should be logged
func (m WorkoutModel) Finished() bool {
	return m.finished
}

// Abandoned reports whether the user left without finishing
func (m WorkoutModel) Abandoned() bool {
	return m.abandoned
}

// Summary returns the finished session summary
func (m WorkoutModel) Summary() workout.Summary {
	return m.summary
}

// Session exposes the live session state
func (m WorkoutModel) Session() *workout.Session {
	return m.session
}

// Resting reports whether the rest overlay is shown
func (m WorkoutModel) Resting() bool {
	return m.rest != nil
}

// View renders the workout TUI
func (m WorkoutModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	if m.rest != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderRestPanel(m.width, contentHeight),
			helpBar,
		)
	}

	// Narrow view: stack clock above the exercise list
	if m.width < 90 {
		clockHeight := min(contentHeight/2, 14)
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderClockPanel(m.width, clockHeight),
			m.renderExercisePanel(m.width, contentHeight-clockHeight),
			helpBar,
		)
	}

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderClockPanel(leftWidth, contentHeight),
		"  ", // Gap
		m.renderExercisePanel(rightWidth, contentHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, helpBar)
}

// renderClockPanel renders the stopwatch
func (m WorkoutModel) renderClockPanel(width, height int) string {
	var components []string

	headerText := "💪  READY  💪"
	if m.session.Started() {
		animChars := []string{"⏱", "⏲", "⏱", "⏲"}
		animChar := animChars[m.timerAnimation]
		headerText = fmt.Sprintf("%s  WORKING OUT  %s", animChar, animChar)
	}
	components = append(components, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render(headerText))

	titleText := m.session.Routine.Name
	if runes := []rune(titleText); len(runes) > width-4 && width > 7 {
		titleText = string(runes[:width-7]) + "..."
	}
	components = append(components, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render(titleText))

	components = append(components, centerLines(renderBigClock(models.FormatClock(m.session.Elapsed), ColorAccentBright), width))

	info := "Press space to start"
	if m.session.Started() {
		info = fmt.Sprintf("Started at %s · %d/%d sets",
			m.session.StartedAt.Format("15:04:05"),
			m.session.Routine.CompletedSets(),
			m.session.Routine.TotalSets())
	}
	components = append(components, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(width).
		Render(info))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(components, "\n\n"))
}

// renderExercisePanel renders the exercise list with set progress
func (m WorkoutModel) renderExercisePanel(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	exercises := m.session.Routine.Exercises
	if len(exercises) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Italic(true).
			Render("No exercises in this routine"))
		return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
	}

	cardWidth := max(width-4, 20)
	for i, e := range exercises {
		nameColor := ColorPrimaryText
		progressColor := ColorSecondaryText
		if e.IsDone() {
			nameColor = ColorSuccess
			progressColor = ColorSuccess
		}

		name := lipgloss.NewStyle().Foreground(lipgloss.Color(nameColor)).Bold(true).Render(e.Name)
		progress := lipgloss.NewStyle().
			Foreground(lipgloss.Color(progressColor)).
			Render(fmt.Sprintf("%d/%d sets", e.CompletedSets, e.Sets))
		details := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Render(fmt.Sprintf("%.2fkg × %d reps × %d sets", e.Weight, e.Reps, e.Sets))

		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Width(cardWidth).
			Padding(0, 1)
		if i == m.selected {
			card = card.BorderForeground(lipgloss.Color(ColorAccentMain))
		}

		b.WriteString(card.Render(fmt.Sprintf("%s  %s\n%s", name, progress, details)))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}

// renderRestPanel renders the rest countdown overlay
func (m WorkoutModel) renderRestPanel(width, height int) string {
	var components []string

	header := "😮‍💨  REST  😮‍💨"
	color := ColorWarning
	if m.rest.Paused {
		header = "⏸  REST (paused)  ⏸"
		color = ColorDisabledText
	}
	components = append(components, lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render(header))

	components = append(components, centerLines(renderBigClock(parser.FormatRest(m.rest.Remaining), color), width))

	// Progress bar
	barWidth := min(max(width-20, 10), 40)
	filled := int(m.rest.Progress() * float64(barWidth))
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder)).Render(strings.Repeat("░", barWidth-filled))
	components = append(components, lipgloss.NewStyle().Align(lipgloss.Center).Width(width).Render(bar))

	if len(m.session.Routine.Exercises) > 0 {
		e := m.session.Routine.Exercises[m.selected]
		components = append(components, lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Align(lipgloss.Center).
			Width(width).
			Render(fmt.Sprintf("Next: %s (%d/%d sets)", e.Name, e.CompletedSets, e.Sets)))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(components, "\n\n"))
}

// renderHelpBar renders the help bar at the bottom
func (m WorkoutModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	var helpText string
	switch {
	case m.rest != nil:
		helpText = "p pause · [ -15s · ] +15s · esc skip rest · space finish"
	case !m.session.Started():
		helpText = "space start · ↑/↓ select · esc/q leave"
	default:
		helpText = "+/- sets · ↑/↓ select · r rest · space finish & log · esc/q abandon"
	}

	return helpStyle.Render(helpText)
}

func centerLines(block string, width int) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.NewStyle().Align(lipgloss.Center).Width(width).Render(line)
	}
	return strings.Join(lines, "\n")
}
