package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/kirubel12/hono-artisan/internal/branding"
	"github.com/kirubel12/hono-artisan/internal/catalog"
	"github.com/kirubel12/hono-artisan/internal/config"
	"github.com/kirubel12/hono-artisan/internal/generator"
	"github.com/kirubel12/hono-artisan/internal/logging"
	"github.com/kirubel12/hono-artisan/internal/prompt"
	"github.com/kirubel12/hono-artisan/internal/ui"
	"github.com/spf13/cobra"
)

// buildInfo is injected via ldflags at build time.
type buildInfo struct {
	version string
	commit  string
	date    string
}

// app carries the collaborators shared by every command. Nil fields are
// filled in by setup before a command runs; tests pre-populate them.
type app struct {
	build  buildInfo
	out    io.Writer
	errOut io.Writer

	console  *ui.Console
	prompter prompt.Prompter
	spinner  func() generator.Spinner
	creator  generator.Creator
	log      *slog.Logger

	verbose bool
	dotEnv  string
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	a := &app{
		build:  buildInfo{version: version, commit: commit, date: date},
		out:    os.Stdout,
		errOut: os.Stderr,
		dotEnv: ".env",
	}

	cat, err := catalog.Default()
	if err != nil {
		ui.NewConsole(os.Stderr, false).Error(err.Error())
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return a.run(ctx, newRootCmd(a, cat), os.Args[1:])
}

// run executes root with args and prints any error that has not already
// been shown to the user.
func (a *app) run(ctx context.Context, root *cobra.Command, args []string) error {
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	if a.log != nil {
		a.log.Debug("command failed", "error", err)
	}
	// The spinner has already reported create failures.
	if !errors.Is(err, generator.ErrCreateFailed) {
		ui.NewConsole(a.errOut, config.NoColor()).Error(err.Error())
	}
	return err
}

func newRootCmd(a *app, cat *catalog.Catalog) *cobra.Command {
	version := a.build.version
	if version == "" {
		version = "dev"
	}

	root := &cobra.Command{
		Use:           branding.CLIName(),
		Short:         branding.Description(),
		Long:          branding.DisplayName() + ` scaffolds models, controllers and middleware for ` + branding.Framework() + ` applications.`,
		Version:       displayVersion(version),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			renderHelp(a.console, cmd.Root(), cat)
			return nil
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Print diagnostic logs to stderr")

	for _, g := range cat.Generators {
		root.AddCommand(newGeneratorCmd(a, g))
	}
	root.AddCommand(newVersionCmd(a))
	root.AddCommand(newConfigCmd())
	root.SetHelpCommand(newHelpCmd(a, cat))

	return root
}

// setup loads configuration and fills in any collaborator not provided.
func (a *app) setup() error {
	if a.dotEnv != "" {
		if err := config.LoadDotEnv(a.dotEnv); err != nil {
			return err
		}
	}
	config.Load()

	if a.log == nil {
		level := config.LogLevel()
		if a.verbose {
			level = "debug"
		}
		a.log = logging.New(a.errOut, level)
	}
	if a.console == nil {
		a.console = ui.NewConsole(a.out, config.NoColor())
	}
	if a.prompter == nil {
		a.prompter = prompt.NewTerminal()
	}
	if a.creator == nil {
		a.creator = generator.NewPlaceholder(config.CreateDelay())
	}
	if a.spinner == nil {
		a.spinner = func() generator.Spinner { return a.console.NewSpinner() }
	}
	return nil
}
