package cli

import "github.com/charmbracelet/lipgloss"

// Color palette for the terminal viewer and command output.
var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary accents
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// Viewer styles.
var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleStatus = lipgloss.NewStyle().Foreground(colorGray)
	styleHelp   = lipgloss.NewStyle().Foreground(colorDim)
	styleLink   = lipgloss.NewStyle().Foreground(colorDim)
	styleDisc   = lipgloss.NewStyle().Foreground(colorGray)
	styleLabel  = lipgloss.NewStyle().Foreground(colorWhite)
	styleRoot   = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleActive = lipgloss.NewStyle().Foreground(colorGreen)
)
