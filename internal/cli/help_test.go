package cli

import (
	"strings"
	"testing"

	"github.com/kirubel12/hono-artisan/internal/catalog"
)

func TestHelpCommand(t *testing.T) {
	env := newTestEnv(t)

	if err := env.execute(t, "help"); err != nil {
		t.Fatalf("help error: %v", err)
	}
	out := env.out.String()

	for _, want := range []string{
		"Hono Artisan Help",
		"Available Commands:",
		"➜ make:controller [name]",
		"  Create a new controller for your Hono application",
		"  ├─ Basic Controller: Simple controller with basic routing",
		"  ├─ Resource Controller: Full CRUD operations",
		"  │   (index, show, create, update, delete)",
		"  └─ API Controller: Specialized for API endpoints with JSON responses",
		"➜ make:model [name]",
		"  └─ Relational Model: Model with relationship definitions",
		"➜ make:middleware [name]",
		"  Examples:",
		"  ├─ AuthMiddleware: Handle authentication",
		"  └─ CorsMiddleware: Handle CORS policies",
		"Other Commands:",
		"➜ config Manage user settings",
		"➜ version Print version information",
		"➜ help Display help information about Hono Artisan",
		"Usage Examples:",
		"  $ hono-artisan make:controller UserController",
		"  $ hono-artisan make:model User",
		"  $ hono-artisan make:middleware AuthMiddleware",
		"Run hono-artisan <command> to execute a command",
	} {
		assertContains(t, out, want)
	}
	assertNoCreate(t, env)
}

func TestHelpListsEveryRegisteredGenerator(t *testing.T) {
	env := newTestEnv(t)
	if err := env.execute(t, "help"); err != nil {
		t.Fatalf("help error: %v", err)
	}

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error: %v", err)
	}
	out := env.out.String()
	for _, g := range cat.Generators {
		assertContains(t, out, "➜ "+g.Command)
		assertContains(t, out, g.Description)
	}
	if got := strings.Count(out, "➜ make:"); got != len(cat.Generators) {
		t.Errorf("generator sections = %d, want %d", got, len(cat.Generators))
	}
}

func TestBareInvocationShowsHelp(t *testing.T) {
	env := newTestEnv(t)

	if err := env.execute(t); err != nil {
		t.Fatalf("error: %v", err)
	}
	assertContains(t, env.out.String(), "Available Commands:")
	assertNoCreate(t, env)
}

func TestHelpForGenerator(t *testing.T) {
	env := newTestEnv(t)

	if err := env.execute(t, "help", "make:controller"); err != nil {
		t.Fatalf("help error: %v", err)
	}
	out := env.out.String()
	assertContains(t, out, "➜ make:controller [name]")
	assertContains(t, out, "Resource Controller: Full CRUD operations")
	assertContains(t, out, "$ hono-artisan make:controller UserController")
	assertContains(t, out, "--type")
	assertNotContains(t, out, "make:model")
}

func TestHelpForOtherCommand(t *testing.T) {
	env := newTestEnv(t)

	if err := env.execute(t, "help", "version"); err != nil {
		t.Fatalf("help error: %v", err)
	}
	assertContains(t, env.out.String(), "Print version information")
}

func TestHelpUnknownTopic(t *testing.T) {
	env := newTestEnv(t)

	if err := env.execute(t, "help", "make:service"); err == nil {
		t.Fatal("expected error for unknown topic")
	}
	assertContains(t, env.errOut.String(), `unknown help topic "make:service"`)
}

func TestHelpFlag(t *testing.T) {
	env := newTestEnv(t)

	if err := env.execute(t, "--help"); err != nil {
		t.Fatalf("--help error: %v", err)
	}
	assertContains(t, env.out.String(), "make:model")
	assertNoCreate(t, env)
}
