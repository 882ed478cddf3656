package cli

import (
	"fmt"

	"github.com/kirubel12/hono-artisan/internal/branding"
	"github.com/kirubel12/hono-artisan/internal/catalog"
	"github.com/kirubel12/hono-artisan/internal/ui"
	"github.com/spf13/cobra"
)

func newHelpCmd(a *app, cat *catalog.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Display help information about " + branding.DisplayName(),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			if len(args) == 0 {
				renderHelp(a.console, root, cat)
				return nil
			}

			target, _, err := root.Find(args)
			if err != nil || target == root {
				return fmt.Errorf("unknown help topic %q", args[0])
			}
			if _, ok := target.Annotations[annotationGenerator]; ok {
				renderGeneratorHelp(a.console, root, cat, target)
				return nil
			}
			return target.Help()
		},
	}
}

// generatorCommands returns the registered commands that came from the
// catalog, paired with their catalog entries, in command order.
func generatorCommands(root *cobra.Command, cat *catalog.Catalog) ([]*cobra.Command, []catalog.Generator) {
	var cmds []*cobra.Command
	var gens []catalog.Generator
	for _, c := range root.Commands() {
		name, ok := c.Annotations[annotationGenerator]
		if !ok {
			continue
		}
		g, ok := cat.Lookup(name)
		if !ok {
			continue
		}
		cmds = append(cmds, c)
		gens = append(gens, *g)
	}
	return cmds, gens
}

// renderHelp prints the help screen for every registered command.
func renderHelp(c *ui.Console, root *cobra.Command, cat *catalog.Catalog) {
	c.Intro(branding.DisplayName() + " Help")
	c.Println("\n" + c.Bold("Available Commands:") + "\n")

	cmds, gens := generatorCommands(root, cat)
	for i := range cmds {
		renderGeneratorSection(c, cmds[i], gens[i])
		c.Println()
	}

	var others []*cobra.Command
	for _, cmd := range root.Commands() {
		if _, ok := cmd.Annotations[annotationGenerator]; ok {
			continue
		}
		// cobra never reports the help command as available.
		if cmd.IsAvailableCommand() || cmd.Name() == "help" {
			others = append(others, cmd)
		}
	}
	if len(others) > 0 {
		c.Println(c.Bold("Other Commands:"))
		for _, cmd := range others {
			c.Println(c.Pointer() + " " + c.Bold(cmd.Name()) + c.Dim(" "+cmd.Short))
		}
		c.Println()
	}

	c.Println(c.Bold("Usage Examples:"))
	for _, g := range gens {
		c.Println(c.Dim("  $ ") + c.Green(fmt.Sprintf("%s %s %s", root.Name(), g.Command, g.Usage)))
	}
	c.Println()

	c.Outro(fmt.Sprintf("Run %s to execute a command", c.Bold(c.Green(root.Name()+" <command>"))))
}

// renderGeneratorHelp prints the help section of a single make:* command.
func renderGeneratorHelp(c *ui.Console, root *cobra.Command, cat *catalog.Catalog, cmd *cobra.Command) {
	g, ok := cat.Lookup(cmd.Annotations[annotationGenerator])
	if !ok {
		return
	}
	c.Intro(branding.DisplayName() + " Help")
	c.Println()
	renderGeneratorSection(c, cmd, *g)
	c.Println("\n" + c.Bold("Usage Example:"))
	c.Println(c.Dim("  $ ") + c.Green(fmt.Sprintf("%s %s %s", root.Name(), g.Command, g.Usage)))
	c.Println()
	if cmd.HasAvailableFlags() {
		c.Println(c.Bold("Flags:"))
		c.Println(cmd.LocalFlags().FlagUsages())
	}
	c.Outro(fmt.Sprintf("Run %s to execute a command", c.Bold(c.Green(root.Name()+" "+g.Command))))
}

func renderGeneratorSection(c *ui.Console, cmd *cobra.Command, g catalog.Generator) {
	use := cmd.Name()
	if g.Argument != "" {
		use += c.Dim(" [" + g.Argument + "]")
	}
	c.Println(c.Pointer() + " " + c.Bold(use))
	c.Println(c.Dim("  " + g.Description))

	if g.HasVariants() {
		c.Println(c.Yellow("\n  Options:"))
		for i, v := range g.Variants {
			last := i == len(g.Variants)-1
			c.Println(c.Dim("  "+branch(last)+" ") + c.Green(v.DisplayTitle()) + c.Dim(": "+v.Help))
			if v.Detail != "" {
				c.Println(c.Dim("  "+continuation(last)+"  ") + c.Dim(v.Detail))
			}
		}
	}

	if len(g.Examples) > 0 {
		c.Println(c.Yellow("\n  Examples:"))
		for i, ex := range g.Examples {
			last := i == len(g.Examples)-1
			line := c.Dim("  "+branch(last)+" ") + c.Green(ex.Name)
			if ex.Help != "" {
				line += c.Dim(": " + ex.Help)
			}
			c.Println(line)
		}
	}
}

func branch(last bool) string {
	if last {
		return "└─"
	}
	return "├─"
}

func continuation(last bool) string {
	if last {
		return "  "
	}
	return "│ "
}
