package alerts

import (
	"fmt"

	"github.com/areatab/areatab/internal/cmd/emoji"
)

// Level is the severity of an alert.
type Level int

const (
	// LevelError marks a failed operation.
	LevelError Level = iota
	// LevelWarning marks a recoverable problem, like a skipped write.
	LevelWarning
	// LevelInfo marks a neutral notice.
	LevelInfo
	// LevelSuccess marks completed work.
	LevelSuccess
)

// String returns the level name.
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

// Icon returns the symbol rendered in front of the message.
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
		return emoji.Unknown
	}
}
