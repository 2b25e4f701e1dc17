// internal/pkg/notify/notice.go
package notify

import "time"

// Level is the visual severity of a notice
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Default display durations
const (
	DefaultSuccessDismiss = 3 * time.Second
	DefaultErrorDismiss   = 4 * time.Second
)

// Notice is a transient, user-visible message returned alongside a response
type Notice struct {
	Level          Level  `json:"level"`
	Message        string `json:"message"`
	DismissAfterMs int64  `json:"dismissAfterMs"`
}

// Notifier builds notices with configured dismiss durations
type Notifier struct {
	successDismiss time.Duration
	errorDismiss   time.Duration
}

// NewNotifier creates a notifier; zero durations fall back to the defaults
func NewNotifier(successDismiss, errorDismiss time.Duration) *Notifier {
	if successDismiss <= 0 {
		successDismiss = DefaultSuccessDismiss
	}
	if errorDismiss <= 0 {
		errorDismiss = DefaultErrorDismiss
	}
	return &Notifier{successDismiss: successDismiss, errorDismiss: errorDismiss}
}

// Success builds a success notice
func (n *Notifier) Success(message string) *Notice {
	return n.build(LevelSuccess, message)
}

// Info builds an info notice
func (n *Notifier) Info(message string) *Notice {
	return n.build(LevelInfo, message)
}

// Warning builds a warning notice
func (n *Notifier) Warning(message string) *Notice {
	return n.build(LevelWarning, message)
}

// Error builds an error notice. Errors stay visible longer.
func (n *Notifier) Error(message string) *Notice {
	return n.build(LevelError, message)
}

func (n *Notifier) build(level Level, message string) *Notice {
	dismiss := n.successDismiss
	if level == LevelError {
		dismiss = n.errorDismiss
	}
	return &Notice{
		Level:          level,
		Message:        message,
		DismissAfterMs: dismiss.Milliseconds(),
	}
}
