package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/kirubel12/hono-artisan/internal/catalog"
	"github.com/kirubel12/hono-artisan/internal/generator"
	"github.com/kirubel12/hono-artisan/internal/logging"
	"github.com/kirubel12/hono-artisan/internal/prompt"
	"github.com/kirubel12/hono-artisan/internal/ui"
	"github.com/spf13/viper"
)

// scriptedPrompter answers prompts from fixed scripts. Text answers that fail
// validation are recorded as rejections and the next answer is tried, the
// way a user retypes after a validation message. Running out of answers
// counts as the user cancelling.
type scriptedPrompter struct {
	texts      []string
	textErr    error
	selection  string
	selectErr  error
	rejections []string

	textCalls   int
	selectCalls int
	lastText    prompt.TextRequest
	lastSelect  prompt.SelectRequest
}

func (p *scriptedPrompter) Text(req prompt.TextRequest) (string, error) {
	p.textCalls++
	p.lastText = req
	if p.textErr != nil {
		return "", p.textErr
	}
	for len(p.texts) > 0 {
		answer := p.texts[0]
		p.texts = p.texts[1:]
		if req.Validate != nil {
			if err := req.Validate(answer); err != nil {
				p.rejections = append(p.rejections, err.Error())
				continue
			}
		}
		return answer, nil
	}
	return "", prompt.ErrCancelled
}

func (p *scriptedPrompter) Select(req prompt.SelectRequest) (string, error) {
	p.selectCalls++
	p.lastSelect = req
	if p.selectErr != nil {
		return "", p.selectErr
	}
	return p.selection, nil
}

type recordingSpinner struct {
	mu     sync.Mutex
	events []string
}

func (s *recordingSpinner) record(e string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *recordingSpinner) Start(msg string) { s.record("start:" + msg) }
func (s *recordingSpinner) Stop(msg string)  { s.record("stop:" + msg) }
func (s *recordingSpinner) Fail(msg string)  { s.record("fail:" + msg) }

func (s *recordingSpinner) started() bool {
	for _, e := range s.events {
		if strings.HasPrefix(e, "start:") {
			return true
		}
	}
	return false
}

type fakeCreator struct {
	err      error
	requests []generator.Request
}

func (f *fakeCreator) Create(_ context.Context, req generator.Request) (*generator.Result, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &generator.Result{Kind: req.Kind, Name: req.Name, Variant: req.Variant}, nil
}

type testEnv struct {
	app      *app
	prompter *scriptedPrompter
	spinner  *recordingSpinner
	creator  *fakeCreator
	out      *bytes.Buffer
	errOut   *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("ARTISAN_HOME", t.TempDir())

	env := &testEnv{
		prompter: &scriptedPrompter{},
		spinner:  &recordingSpinner{},
		creator:  &fakeCreator{},
		out:      &bytes.Buffer{},
		errOut:   &bytes.Buffer{},
	}
	env.app = &app{
		build:    buildInfo{version: "v1.2.0", commit: "abc123", date: "2026-01-01"},
		out:      env.out,
		errOut:   env.errOut,
		console:  ui.NewConsole(env.out, true),
		prompter: env.prompter,
		spinner:  func() generator.Spinner { return env.spinner },
		creator:  env.creator,
		log:      logging.Discard(),
	}
	return env
}

func (e *testEnv) execute(t *testing.T, args ...string) error {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error: %v", err)
	}
	return e.app.run(context.Background(), newRootCmd(e.app, cat), args)
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("content should not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertNoCreate(t *testing.T, env *testEnv) {
	t.Helper()
	if env.spinner.started() {
		t.Errorf("spinner should not start, events: %v", env.spinner.events)
	}
	if len(env.creator.requests) != 0 {
		t.Errorf("creator should not run, got %v", env.creator.requests)
	}
}

func modelGenerator(t *testing.T) (catalog.Generator, generator.Kind) {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error: %v", err)
	}
	g, ok := cat.Lookup("make:model")
	if !ok {
		t.Fatal("make:model missing from catalog")
	}
	return *g, generator.KindModel
}

var errDiskFull = errors.New("disk full")
