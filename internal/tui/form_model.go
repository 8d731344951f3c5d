package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fancybaby404/FitTrack/internal/models"
	"github.com/fancybaby404/FitTrack/internal/parser"
)

// Step represents the current step in the exercise wizard
type Step int

const (
	StepName Step = iota
	StepWeight
	StepReps
	StepSets
	StepSave
)

var stepLabels = []string{"Name", "Weight (kg)", "Reps", "Sets", "Save"}

// ExerciseFormModel represents the TUI model for adding an exercise
type ExerciseFormModel struct {
	routine     string
	currentStep Step
	inputs      []textinput.Model
	width       int
	height      int

	// Parsed values
	exercise models.Exercise

	// State
	completed     bool
	cancelled     bool
	validationErr string

	// Shimmer effect for the current step label
	shimmer *ShimmerState
}

// shimmerTickMsg is sent when shimmer should update
type shimmerTickMsg struct{}

// NewExerciseFormModel creates the form. Fields found in prefilled
// (usually a partial quick-add spec) are filled in.
func NewExerciseFormModel(routine string, prefilled parser.ParsedExercise) ExerciseFormModel {
	inputs := make([]textinput.Model, StepSave)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[StepName].Placeholder = "Exercise name... (required)"
	inputs[StepName].CharLimit = 100
	inputs[StepName].Focus()

	inputs[StepWeight].Placeholder = "80, 42.5kg or 135lb (Enter for bodyweight)"
	inputs[StepWeight].CharLimit = 12

	inputs[StepReps].Placeholder = "Reps per set"
	inputs[StepReps].CharLimit = 4

	inputs[StepSets].Placeholder = "Number of sets (required)"
	inputs[StepSets].CharLimit = 3

	if prefilled.Name != "" {
		inputs[StepName].SetValue(prefilled.Name)
	}
	if prefilled.Weight > 0 {
		inputs[StepWeight].SetValue(strconv.FormatFloat(prefilled.Weight, 'f', -1, 64))
	}
	if prefilled.Reps > 0 {
		inputs[StepReps].SetValue(strconv.Itoa(prefilled.Reps))
	}
	if prefilled.Sets > 0 {
		inputs[StepSets].SetValue(strconv.Itoa(prefilled.Sets))
	}

	return ExerciseFormModel{
		routine:     routine,
		currentStep: StepName,
		inputs:      inputs,
		shimmer:     NewShimmerState(DefaultShimmerConfig()),
	}
}

func (m ExerciseFormModel) shimmerTick() tea.Cmd {
	return tea.Tick(m.shimmer.TickInterval(), func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	})
}

// Init initializes the model
func (m ExerciseFormModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.shimmer.Active {
		cmds = append(cmds, m.shimmerTick())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m ExerciseFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		m.shimmer.Advance(len(stepLabels[m.currentStep]))
		if m.shimmer.Active && !m.completed && !m.cancelled {
			return m, m.shimmerTick()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for i := range m.inputs {
			m.inputs[i].Width = min(max(m.width-30, 30), 60)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter", "tab", "down":
			if m.currentStep == StepSave {
				if msg.String() != "enter" {
					return m, nil
				}
				return m.save()
			}
			if err := m.validateStep(m.currentStep); err != nil {
				m.validationErr = err.Error()
				return m, nil
			}
			return m.nextStep()

		case "shift+tab", "up":
			return m.prevStep()
		}
	}

	var cmd tea.Cmd
	if m.currentStep < StepSave {
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
		m.validationErr = ""
	}
	return m, cmd
}

// validateStep checks one field and stores the parsed value
func (m *ExerciseFormModel) validateStep(step Step) error {
	value := strings.TrimSpace(m.inputs[step].Value())

	switch step {
	case StepName:
		if err := models.ValidateName(value); err != nil {
			var fe *models.FormatError
			if errors.As(err, &fe) {
				return fmt.Errorf("exercise %s", fe.Reason)
			}
			return err
		}
		m.exercise.Name = value

	case StepWeight:
		w, err := parser.ParseWeight(value)
		if err != nil {
			return err
		}
		m.exercise.Weight = w

	case StepReps:
		if value == "" {
			m.exercise.Reps = 0
			return nil
		}
		n, err := parser.ParseCount(value)
		if err != nil {
			return err
		}
		m.exercise.Reps = n

	case StepSets:
		n, err := parser.ParseCount(value)
		if err != nil || n == 0 {
			return errors.New("sets must be a positive number")
		}
		m.exercise.Sets = n
	}
	return nil
}

func (m ExerciseFormModel) save() (ExerciseFormModel, tea.Cmd) {
	for step := StepName; step < StepSave; step++ {
		if err := m.validateStep(step); err != nil {
			m.validationErr = err.Error()
			m = m.goTo(step)
			return m, nil
		}
	}
	m.exercise.CompletedSets = 0
	m.completed = true
	return m, tea.Quit
}

// nextStep moves to the next step
func (m ExerciseFormModel) nextStep() (ExerciseFormModel, tea.Cmd) {
	if m.currentStep < StepSave {
		m = m.goTo(m.currentStep + 1)
	}
	return m, textinput.Blink
}

// prevStep moves to the previous step
func (m ExerciseFormModel) prevStep() (ExerciseFormModel, tea.Cmd) {
	if m.currentStep > StepName {
		m = m.goTo(m.currentStep - 1)
	}
	return m, textinput.Blink
}

func (m ExerciseFormModel) goTo(step Step) ExerciseFormModel {
	if m.currentStep < StepSave {
		m.inputs[m.currentStep].Blur()
	}
	m.currentStep = step
	if m.currentStep < StepSave {
		m.inputs[m.currentStep].Focus()
	}
	m.shimmer.Reset()
	return m
}

// Completed reports whether the user saved the exercise
func (m ExerciseFormModel) Completed() bool {
	return m.completed
}

// Cancelled reports whether the user left the form
func (m ExerciseFormModel) Cancelled() bool {
	return m.cancelled
}

// Exercise returns the exercise entered in the form
func (m ExerciseFormModel) Exercise() models.Exercise {
	return m.exercise
}

// View renders the form
func (m ExerciseFormModel) View() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	b.WriteString(headerStyle.Render(fmt.Sprintf("🏋️  New exercise for %s", m.routine)))
	b.WriteString("\n\n")

	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	futureStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	for i, label := range stepLabels {
		step := Step(i)
		if step == StepSave {
			b.WriteString("\n")
		}

		switch {
		case step == m.currentStep:
			b.WriteString("▶ " + m.shimmer.Render(label))
		case step < m.currentStep:
			b.WriteString(doneStyle.Render("✓ " + label))
		default:
			b.WriteString(futureStyle.Render("  " + label))
		}
		b.WriteString("\n")

		if step < StepSave && (step == m.currentStep || m.inputs[step].Value() != "") {
			b.WriteString("  " + m.inputs[step].View() + "\n")
		}
	}

	if m.currentStep == StepSave {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorAccentMain)).
			Padding(0, 1).
			Render(fmt.Sprintf("%s  %.2fkg × %d reps × %d sets",
				m.exercise.Name, m.exercise.Weight, m.exercise.Reps, m.exercise.Sets)))
		b.WriteString("\n")
	}

	if m.validationErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Render("❌ " + m.validationErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Render("enter next · shift+tab back · enter on Save to add · esc cancel"))

	return b.String()
}
