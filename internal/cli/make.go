package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/kirubel12/hono-artisan/internal/branding"
	"github.com/kirubel12/hono-artisan/internal/catalog"
	"github.com/kirubel12/hono-artisan/internal/generator"
	"github.com/kirubel12/hono-artisan/internal/prompt"
	"github.com/spf13/cobra"
)

// annotationGenerator marks commands registered from the catalog.
const annotationGenerator = "generator"

const cancelMessage = "Operation cancelled"

// Outcome is how a make:* invocation ended when it did not fail.
type Outcome int

const (
	OutcomeCreated Outcome = iota
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

func newGeneratorCmd(a *app, g catalog.Generator) *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:         g.Use(),
		Short:       g.Summary,
		Long:        generatorLong(g),
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationGenerator: g.Command},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := generator.ParseKind(g.Kind)
			if err != nil {
				return err
			}
			if variant != "" {
				if _, ok := g.Variant(variant); !ok {
					return fmt.Errorf("unknown %s type %q (valid: %s)", kind, variant, strings.Join(g.VariantValues(), ", "))
				}
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			}

			outcome, err := a.makeArtifact(cmd.Context(), g, kind, name, variant)
			if err != nil {
				return err
			}
			a.log.Debug("make finished", "command", g.Command, "outcome", outcome.String())
			return nil
		},
	}

	if g.HasVariants() {
		cmd.Flags().StringVarP(&variant, "type", "t", "",
			fmt.Sprintf("%s type, skips the prompt (%s)", g.Kind, strings.Join(g.VariantValues(), "|")))
	}
	return cmd
}

func generatorLong(g catalog.Generator) string {
	var b strings.Builder
	b.WriteString(g.Description + ".")
	if g.Suffix != "" {
		fmt.Fprintf(&b, "\n\nNames passed as an argument get the %q suffix appended when missing.", g.Suffix)
	}
	fmt.Fprintf(&b, "\n\nExample:\n  %s %s %s", branding.CLIName(), g.Command, g.Usage)
	return b.String()
}

// makeArtifact runs the make flow: intro, name, variant, create, outro.
// Cancellation at either prompt ends the flow with OutcomeCancelled and a nil
// error; create failures return an error wrapping generator.ErrCreateFailed.
func (a *app) makeArtifact(ctx context.Context, g catalog.Generator, kind generator.Kind, providedName, variant string) (Outcome, error) {
	a.console.Intro(branding.DisplayName())

	name, err := a.resolveName(g, kind, providedName)
	if prompt.IsCancel(err) {
		return a.cancelled()
	}
	if err != nil {
		return 0, err
	}

	variant, err = a.resolveVariant(g, variant)
	if prompt.IsCancel(err) {
		return a.cancelled()
	}
	if err != nil {
		return 0, err
	}

	req := generator.Request{Kind: kind, Name: name, Variant: variant}
	a.log.Debug("creating", "kind", kind, "name", name, "variant", variant)

	if _, err := generator.Run(ctx, a.spinner(), a.creator, req); err != nil {
		return 0, err
	}

	a.console.Success(kind.SuccessMessage() + "!")
	return OutcomeCreated, nil
}

func (a *app) cancelled() (Outcome, error) {
	a.console.Cancel(cancelMessage)
	return OutcomeCancelled, nil
}

// resolveName returns the target name. A name given on the command line
// skips the prompt and gets the suffix appended; a prompted name must
// already carry the suffix to pass validation and is echoed as a step.
func (a *app) resolveName(g catalog.Generator, kind generator.Kind, provided string) (string, error) {
	if strings.TrimSpace(provided) != "" {
		name := generator.NormalizeName(provided, g.Suffix)
		a.log.Debug("name from argument", "argument", provided, "name", name)
		return name, nil
	}

	name, err := a.prompter.Text(prompt.TextRequest{
		Message:     g.Prompt.Message,
		Placeholder: g.Prompt.Placeholder,
		Validate: func(value string) error {
			return kind.ValidateName(value, g.Suffix)
		},
	})
	if err != nil {
		return "", fmt.Errorf("%s name: %w", kind, err)
	}
	a.console.Step(g.Prompt.Message, name)
	return generator.NormalizeName(name, g.Suffix), nil
}

// resolveVariant returns the chosen variant, or "" for generators without
// variants. A value from --type skips the prompt.
func (a *app) resolveVariant(g catalog.Generator, flagValue string) (string, error) {
	if !g.HasVariants() {
		return "", nil
	}
	if flagValue != "" {
		return flagValue, nil
	}

	options := make([]prompt.Option, len(g.Variants))
	for i, v := range g.Variants {
		options[i] = prompt.Option{Value: v.Value, Label: v.Label}
	}

	value, err := a.prompter.Select(prompt.SelectRequest{
		Message: g.VariantPrompt,
		Options: options,
	})
	if err != nil {
		return "", fmt.Errorf("%s type: %w", g.Kind, err)
	}
	if v, ok := g.Variant(value); ok {
		a.console.Step(g.VariantPrompt, v.Label)
	}
	return value, nil
}
