// Package prompt asks the user for input. Prompter is the seam between the
// command handlers and the terminal; the promptui implementation is used at
// runtime and tests substitute scripted answers.
package prompt

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when the user aborts a prompt (Ctrl+C / Ctrl+D).
var ErrCancelled = errors.New("operation cancelled")

// IsCancel reports whether err is a user cancellation.
func IsCancel(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// TextRequest describes a free-text prompt.
type TextRequest struct {
	Message     string
	Placeholder string
	// Validate returns a non-nil error to block submission.
	Validate func(string) error
}

// Option is one choice in a select prompt.
type Option struct {
	Value string
	Label string
}

// SelectRequest describes a single-choice prompt.
type SelectRequest struct {
	Message string
	Options []Option
}

// Prompter asks questions. Both methods return ErrCancelled when the user aborts.
type Prompter interface {
	Text(req TextRequest) (string, error)
	Select(req SelectRequest) (string, error)
}

// Label combines a message and placeholder hint into one prompt label.
func Label(message, placeholder string) string {
	if placeholder == "" {
		return message
	}
	return fmt.Sprintf("%s (e.g. %s)", message, placeholder)
}

// Labels returns the option labels in order.
func Labels(options []Option) []string {
	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = o.Label
	}
	return labels
}
