//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kirubel12/hono-artisan/internal/catalog"
	"github.com/kirubel12/hono-artisan/internal/ui"
	"github.com/spf13/viper"
)

// testEnv holds the sandboxed home directory and the captured console.
type testEnv struct {
	HomeDir string // ARTISAN_HOME, holds config.yaml
	Out     *bytes.Buffer
	Console *ui.Console
	Catalog *catalog.Catalog
}

// setupTestEnv points ARTISAN_HOME at a temp dir and resets viper so every
// test reads configuration from scratch. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	env := &testEnv{
		HomeDir: t.TempDir(),
		Out:     &bytes.Buffer{},
	}
	t.Setenv("ARTISAN_HOME", env.HomeDir)

	// The buffer is not a terminal, so the console falls back to the line spinner.
	env.Console = ui.NewConsole(env.Out, true)

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	env.Catalog = cat
	return env
}

// lookup returns the catalog entry for command or fails the test.
func (e *testEnv) lookup(t *testing.T, command string) catalog.Generator {
	t.Helper()
	g, ok := e.Catalog.Lookup(command)
	if !ok {
		t.Fatalf("%s missing from catalog", command)
	}
	return *g
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// assertLines fails unless out consists of exactly the given lines.
func assertLines(t *testing.T, out string, want ...string) {
	t.Helper()
	got := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("output lines:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}
