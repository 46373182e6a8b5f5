// Package alerts reports the outcome of a command to the user, either as a
// one-line status message or as a structured document.
package alerts

import (
	"fmt"

	"github.com/agentstation/dessertshop/pkg/errors"
)

// Alert represents a status notification.
type Alert struct {
	Level   Level
	Message string
	Details []string
	Err     error
}

// New creates a new alert with the given level and message.
func New(level Level, message string) *Alert {
	return &Alert{Level: level, Message: message}
}

// NewError creates a new error alert.
func NewError(message string) *Alert {
	return New(LevelError, message)
}

// NewWarning creates a new warning alert.
func NewWarning(message string) *Alert {
	return New(LevelWarning, message)
}

// NewInfo creates a new info alert.
func NewInfo(message string) *Alert {
	return New(LevelInfo, message)
}

// NewSuccess creates a new success alert.
func NewSuccess(message string) *Alert {
	return New(LevelSuccess, message)
}

// WithError adds an underlying error to the alert.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// WithDetails adds additional context details to the alert.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

// String returns the alert as one line.
func (a *Alert) String() string {
	message := fmt.Sprintf("%s %s", a.Level.Icon(), a.Message)
	if a.Err != nil {
		message += fmt.Sprintf(": %v", a.Err)
	}
	return message
}

// ForMutation turns the result of a store mutation into an alert.
//
// A nil error is a success. A snapshot write failure means the change was
// applied in memory, so it is a warning. Anything else was rejected.
func ForMutation(action, id string, err error) *Alert {
	switch {
	case err == nil:
		return NewSuccess(fmt.Sprintf("Dessert %s %s", id, action))
	case errors.Is(err, errors.ErrPersistenceWrite):
		return NewWarning(fmt.Sprintf("Dessert %s %s but not saved", id, action)).
			WithError(err).
			WithDetails("The change is kept in memory until the next successful save.")
	default:
		return NewError(fmt.Sprintf("Dessert %s not %s", id, action)).WithError(err)
	}
}

// Writer handles alert output.
type Writer interface {
	WriteAlert(alert *Alert) error
}

// WriterFunc is an adapter to allow functions to be used as Writers.
type WriterFunc func(*Alert) error

// WriteAlert calls the function.
func (f WriterFunc) WriteAlert(alert *Alert) error {
	return f(alert)
}

// DiscardWriter is a Writer that discards all alerts.
var DiscardWriter Writer = WriterFunc(func(*Alert) error { return nil })
