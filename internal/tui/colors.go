package tui

// Color constants for the FitTrack TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#10202E" // Deep navy
	ColorBorder         = "#34495E" // Slate

	// Text Colors
	ColorPrimaryText   = "#ECF0F1" // Labels, input, titles
	ColorSecondaryText = "#AAB7C4" // Details line under an exercise
	ColorDisabledText  = "#6C7A89" // Sets not started yet, empty states
	ColorPlaceholder   = "#AAB7C4"
	ColorHelpText      = "240" // Dark grey for help text

	// Accent Colors (steel blue)
	ColorAccentMain   = "#4682B4" // Headers, selected border
	ColorAccentBright = "#5DADE2" // Clock digits, current step

	// State Colors
	ColorError   = "#E74C3C" // Validation errors, destructive actions
	ColorSuccess = "#2ECC71" // Finished exercises
	ColorWarning = "#F39C12" // Rest timer
)
