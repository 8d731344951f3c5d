package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fancybaby404/FitTrack/internal/models"
)

// Action is what the user picked in the routine browser
type Action int

const (
	ActionNone Action = iota
	ActionWorkout
	ActionAddExercise
	ActionDelete
)

// RoutinesModel represents the TUI model for browsing routines
type RoutinesModel struct {
	width  int
	height int

	routines []models.Routine
	selected int

	// Pagination
	currentPage     int
	routinesPerPage int

	// UI state
	confirmDelete bool
	action        Action

	// Shimmer effect for selected routine name
	shimmer *ShimmerState
}

// NewRoutinesModel creates a routine browser over routines
func NewRoutinesModel(routines []models.Routine) RoutinesModel {
	return RoutinesModel{
		routines:        routines,
		routinesPerPage: 10,
		shimmer:         NewShimmerState(DefaultShimmerConfig()),
	}
}

func (m RoutinesModel) shimmerTick() tea.Cmd {
	return tea.Tick(m.shimmer.TickInterval(), func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	})
}

// Init initializes the model
func (m RoutinesModel) Init() tea.Cmd {
	if m.shimmer.Active && len(m.routines) > 0 {
		return m.shimmerTick()
	}
	return nil
}

// Update handles messages
func (m RoutinesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		if r, ok := m.Selected(); ok {
			m.shimmer.Advance(len([]rune(r.Name)))
		}
		if m.shimmer.Active && m.action == ActionNone {
			return m, m.shimmerTick()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.routinesPerPage = max(m.height-12, 3)
		m.currentPage = m.selected / m.routinesPerPage
		return m, nil

	case tea.KeyMsg:
		if m.confirmDelete {
			switch msg.String() {
			case "y", "Y":
				m.action = ActionDelete
				return m, tea.Quit
			default:
				m.confirmDelete = false
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			return m.moveSelection(-1), nil
		case "down", "j":
			return m.moveSelection(1), nil

		case "enter", " ":
			if len(m.routines) > 0 {
				m.action = ActionWorkout
				return m, tea.Quit
			}
		case "a":
			if len(m.routines) > 0 {
				m.action = ActionAddExercise
				return m, tea.Quit
			}
		case "d":
			if len(m.routines) > 0 {
				m.confirmDelete = true
			}
		}
	}

	return m, nil
}

// moveSelection moves the selection by delta, following page boundaries
func (m RoutinesModel) moveSelection(delta int) RoutinesModel {
	next := m.selected + delta
	if next < 0 || next >= len(m.routines) {
		return m
	}
	m.selected = next
	m.currentPage = m.selected / m.routinesPerPage
	m.shimmer.Reset()
	return m
}

// Action returns the action chosen before the browser closed
func (m RoutinesModel) Action() Action {
	return m.action
}

// Selected returns the highlighted routine
func (m RoutinesModel) Selected() (models.Routine, bool) {
	if m.selected < 0 || m.selected >= len(m.routines) {
		return models.Routine{}, false
	}
	return m.routines[m.selected], true
}

// View renders the TUI
func (m RoutinesModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	leftWidth := m.width * 45 / 100
	rightWidth := m.width - leftWidth - 1

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderRoutineTable(leftWidth),
		" ",
		m.renderRoutineDetails(rightWidth),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		content,
		"",
		m.renderHelpBar(),
	)
}

// renderRoutineTable renders the left panel with the routine names
func (m RoutinesModel) renderRoutineTable(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		Render("📋 Routines"))
	b.WriteString("\n\n")

	if len(m.routines) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Render("No routines yet. Create one with 'fittrack routine new <name>'"))
		return b.String()
	}

	nameWidth := max(width-16, 12)
	startIndex := m.currentPage * m.routinesPerPage
	endIndex := min(startIndex+m.routinesPerPage, len(m.routines))

	for i := startIndex; i < endIndex; i++ {
		r := m.routines[i]
		name := r.Name
		if len([]rune(name)) > nameWidth {
			name = string([]rune(name)[:nameWidth-3]) + "..."
		}
		count := fmt.Sprintf("%d exercises", len(r.Exercises))

		if i == m.selected {
			row := fmt.Sprintf("%s%s  %s",
				m.shimmer.Render(name),
				strings.Repeat(" ", nameWidth-len([]rune(name))),
				count)
			b.WriteString(lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorAccentMain)).
				Padding(0, 1).
				Render(row))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorPrimaryText)).
				Padding(0, 2).
				Render(fmt.Sprintf("%-*s  %s", nameWidth, name, count)))
		}
		b.WriteString("\n")
	}

	if pages := (len(m.routines) + m.routinesPerPage - 1) / m.routinesPerPage; pages > 1 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Render(fmt.Sprintf("Page %d/%d", m.currentPage+1, pages)))
	}

	return b.String()
}

// renderRoutineDetails renders the exercises of the selected routine
func (m RoutinesModel) renderRoutineDetails(width int) string {
	r, ok := m.Selected()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(max(width-4, 10)).
		Padding(0, 1).
		Render(r.Name))
	b.WriteString("\n\n")

	if len(r.Exercises) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Italic(true).
			Render("No exercises. Press 'a' to add one."))
		return b.String()
	}

	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	for i, e := range r.Exercises {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1,
			lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true).Render(e.Name)))
		b.WriteString("   " + detailStyle.Render(fmt.Sprintf("%.2fkg × %d reps × %d sets", e.Weight, e.Reps, e.Sets)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(detailStyle.Render(fmt.Sprintf("Total: %d sets", r.TotalSets())))

	return b.String()
}

// renderHelpBar renders the help bar at the bottom
func (m RoutinesModel) renderHelpBar() string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	if m.confirmDelete {
		r, _ := m.Selected()
		return style.Foreground(lipgloss.Color(ColorError)).
			Render(fmt.Sprintf("Delete every routine named '%s'? y confirm · any other key cancel", r.Name))
	}
	return style.Render("↑/↓ navigate · enter start workout · a add exercise · d delete · q quit")
}
