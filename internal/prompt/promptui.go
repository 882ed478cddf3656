package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
)

// Terminal is a Prompter backed by promptui.
type Terminal struct {
	// Stdin and Stdout default to the process streams when nil.
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// NewTerminal returns a Terminal prompting on the process streams.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Text shows a single-line input. Validation failures keep the prompt open.
func (t *Terminal) Text(req TextRequest) (string, error) {
	p := promptui.Prompt{
		Label:  Label(req.Message, req.Placeholder),
		Stdin:  t.Stdin,
		Stdout: t.Stdout,
	}
	if req.Validate != nil {
		p.Validate = promptui.ValidateFunc(req.Validate)
	}

	value, err := p.Run()
	if err != nil {
		return "", translate(err)
	}
	return value, nil
}

// Select shows a single-choice list. Typing "/" searches labels fuzzily.
func (t *Terminal) Select(req SelectRequest) (string, error) {
	if len(req.Options) == 0 {
		return "", fmt.Errorf("select %q has no options", req.Message)
	}

	labels := Labels(req.Options)
	s := promptui.Select{
		Label:    req.Message,
		Items:    labels,
		Size:     len(labels),
		Searcher: Searcher(labels),
		Stdin:    t.Stdin,
		Stdout:   t.Stdout,
	}

	idx, _, err := s.Run()
	if err != nil {
		return "", translate(err)
	}
	return req.Options[idx].Value, nil
}

// Searcher returns a promptui search function that fuzzy-matches input
// against the label at each index.
func Searcher(labels []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}
		if index < 0 || index >= len(labels) {
			return false
		}
		return len(fuzzy.Find(input, []string{labels[index]})) > 0
	}
}

// translate maps promptui's abort errors to ErrCancelled.
func translate(err error) error {
	switch {
	case errors.Is(err, promptui.ErrInterrupt),
		errors.Is(err, promptui.ErrEOF),
		errors.Is(err, promptui.ErrAbort):
		return ErrCancelled
	default:
		return fmt.Errorf("prompt: %w", err)
	}
}
