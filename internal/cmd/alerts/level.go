package alerts

import (
	"fmt"

	"github.com/agentstation/dessertshop/internal/cmd/emoji"
)

// Level represents the severity of an alert.
type Level int

const (
	// LevelError indicates the operation was rejected.
	LevelError Level = iota
	// LevelWarning indicates the operation was applied but something went wrong.
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

// Icon returns the symbol printed before the message.
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

// Color returns ANSI color codes for terminal output.
func (l Level) Color() string {
	switch l {
	case LevelError:
		return "\033[31m"
	case LevelWarning:
		return "\033[33m"
	case LevelInfo:
		return "\033[36m"
	case LevelSuccess:
		return "\033[32m"
	default:
		return resetColor
	}
}

const resetColor = "\033[0m"
