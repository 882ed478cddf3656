package generator

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrCreateFailed marks an error from the create step. The failure has
// already been reported through the spinner when it is returned.
var ErrCreateFailed = errors.New("create failed")

// Request describes one artifact to create.
type Request struct {
	Kind    Kind
	Name    string
	Variant string // empty for kinds without variants
}

// Result holds the outcome of a successful create.
type Result struct {
	Kind    Kind
	Name    string
	Variant string
	Elapsed time.Duration
}

// Creator produces an artifact.
type Creator interface {
	Create(ctx context.Context, req Request) (*Result, error)
}

// Spinner is the progress indicator shown while a Creator runs.
type Spinner interface {
	Start(msg string)
	Stop(msg string)
	Fail(msg string)
}

// Placeholder is a Creator that waits for Delay and writes nothing.
type Placeholder struct {
	Delay time.Duration
}

// NewPlaceholder returns a Placeholder with the given delay.
func NewPlaceholder(delay time.Duration) *Placeholder {
	return &Placeholder{Delay: delay}
}

// Create waits for the configured delay. A cancelled context ends the wait
// early with an error.
func (p *Placeholder) Create(ctx context.Context, req Request) (*Result, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%s name is empty", req.Kind)
	}

	start := time.Now()
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return &Result{
		Kind:    req.Kind,
		Name:    req.Name,
		Variant: req.Variant,
		Elapsed: time.Since(start),
	}, nil
}

// Run drives c under the spinner. On failure the spinner shows the kind's
// failure message and the returned error wraps ErrCreateFailed.
func Run(ctx context.Context, sp Spinner, c Creator, req Request) (*Result, error) {
	sp.Start(req.Kind.StartMessage())

	result, err := safeCreate(ctx, c, req)
	if err != nil {
		sp.Fail(req.Kind.FailureMessage())
		return nil, fmt.Errorf("%w: %s %s: %w", ErrCreateFailed, req.Kind, req.Name, err)
	}

	sp.Stop(req.Kind.SuccessMessage())
	return result, nil
}

// safeCreate turns a panic inside a Creator into an error so the spinner is
// always stopped.
func safeCreate(ctx context.Context, c Creator, req Request) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return c.Create(ctx, req)
}
