package alerts

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/agentstation/bookshelf/internal/cmd/emoji"
)

// Level represents the severity of an alert.
type Level int

const (
	// LevelError indicates a failure or error condition.
	LevelError Level = iota
	// LevelWarning indicates a potential issue or important notice.
	LevelWarning
	// LevelInfo indicates general informational messages.
	LevelInfo
	// LevelSuccess indicates successful completion of an operation.
	LevelSuccess
)

// String returns the string representation of the alert level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	default:
		return fmt.Sprintf("unknown(%d)", l)
	}
}

// Icon returns the symbol shown in front of the alert message.
func (l Level) Icon() string {
	switch l {
	case LevelError:
		return emoji.Error
	case LevelWarning:
		return emoji.Warning
	case LevelInfo:
		return emoji.Info
	case LevelSuccess:
		return emoji.Success
	default:
		return "?"
	}
}

// ANSI 16-color palette indexes.
var (
	colorRed    = lipgloss.Color("1")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorCyan   = lipgloss.Color("6")
)

// Style returns the terminal style for the level.
func (l Level) Style() lipgloss.Style {
	style := lipgloss.NewStyle()
	switch l {
	case LevelError:
		return style.Foreground(colorRed).Bold(true)
	case LevelWarning:
		return style.Foreground(colorYellow)
	case LevelInfo:
		return style.Foreground(colorCyan)
	case LevelSuccess:
		return style.Foreground(colorGreen)
	default:
		return style
	}
}
