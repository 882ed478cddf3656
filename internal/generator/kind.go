package generator

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is the type of artifact a generator produces.
type Kind string

const (
	KindModel      Kind = "model"
	KindController Kind = "controller"
	KindMiddleware Kind = "middleware"
)

// Kinds lists every supported kind.
var Kinds = []Kind{KindModel, KindController, KindMiddleware}

// ParseKind converts a catalog kind string to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown generator kind %q", s)
}

// Title returns the capitalized kind, e.g. "Controller".
func (k Kind) Title() string {
	// A Caser keeps state, so each call gets its own.
	return cases.Title(language.English).String(string(k))
}

// StartMessage is shown next to the spinner while creating.
func (k Kind) StartMessage() string {
	return "Creating " + string(k)
}

// SuccessMessage replaces the spinner when creation succeeds.
func (k Kind) SuccessMessage() string {
	return k.Title() + " created successfully"
}

// FailureMessage replaces the spinner when creation fails.
func (k Kind) FailureMessage() string {
	return "Failed to create " + string(k)
}

// ValidateName checks a name typed at the prompt. It rejects blank input and,
// when suffix is set, input that does not already end with it.
func (k Kind) ValidateName(value, suffix string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s name is required", k.Title())
	}
	if suffix != "" && !strings.HasSuffix(value, suffix) {
		return fmt.Errorf("%s name must end with %q", k.Title(), suffix)
	}
	return nil
}

// NormalizeName appends suffix to name unless it is already present.
func NormalizeName(name, suffix string) string {
	if suffix == "" || strings.HasSuffix(name, suffix) {
		return name
	}
	return name + suffix
}
