// Package ui renders console output: the intro/outro frame around a command,
// styled help text and the progress spinner.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Frame glyphs.
const (
	barStart = "┌"
	bar      = "│"
	barEnd   = "└"
	stepDone = "◇"
	stepFail = "■"
	stepWait = "◒"
	checked  = "✔"
	pointer  = "➜"
)

// Console writes styled output to a single writer.
type Console struct {
	w           io.Writer
	interactive bool

	badge   lipgloss.Style
	bold    lipgloss.Style
	dim     lipgloss.Style
	cyan    lipgloss.Style
	green   lipgloss.Style
	yellow  lipgloss.Style
	red     lipgloss.Style
	spinner lipgloss.Style
}

// NewConsole returns a Console for w. Colors follow the terminal's
// capabilities unless noColor is set.
func NewConsole(w io.Writer, noColor bool) *Console {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Console{
		w:           w,
		interactive: isTerminal(w),
		badge: r.NewStyle().
			Background(lipgloss.Color("6")).
			Foreground(lipgloss.Color("0")),
		bold:    r.NewStyle().Bold(true),
		dim:     r.NewStyle().Faint(true),
		cyan:    r.NewStyle().Foreground(lipgloss.Color("6")),
		green:   r.NewStyle().Foreground(lipgloss.Color("2")),
		yellow:  r.NewStyle().Foreground(lipgloss.Color("3")),
		red:     r.NewStyle().Foreground(lipgloss.Color("1")),
		spinner: r.NewStyle().Foreground(lipgloss.Color("5")),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Intro opens the frame with a title badge.
func (c *Console) Intro(title string) {
	fmt.Fprintf(c.w, "%s  %s\n", c.dim.Render(barStart), c.badge.Render(" "+title+" "))
	fmt.Fprintln(c.w, c.dim.Render(bar))
}

// Outro closes the frame.
func (c *Console) Outro(msg string) {
	fmt.Fprintln(c.w, c.dim.Render(bar))
	fmt.Fprintf(c.w, "%s  %s\n\n", c.dim.Render(barEnd), msg)
}

// Success closes the frame with a green check mark.
func (c *Console) Success(msg string) {
	c.Outro(c.green.Render(checked) + " " + msg)
}

// Cancel closes the frame with a cancellation notice.
func (c *Console) Cancel(msg string) {
	fmt.Fprintf(c.w, "%s  %s\n\n", c.dim.Render(barEnd), c.red.Render(msg))
}

// Step prints an answered prompt inside the frame.
func (c *Console) Step(label, value string) {
	fmt.Fprintf(c.w, "%s  %s\n", c.green.Render(stepDone), label)
	fmt.Fprintf(c.w, "%s  %s\n", c.dim.Render(bar), c.dim.Render(value))
}

// Error prints a single red error line.
func (c *Console) Error(msg string) {
	fmt.Fprintln(c.w, c.red.Render("Error: "+msg))
}

// Println writes a raw line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.w, a...)
}

// Style helpers used by the help screen.

func (c *Console) Bold(s string) string   { return c.bold.Render(s) }
func (c *Console) Dim(s string) string    { return c.dim.Render(s) }
func (c *Console) Cyan(s string) string   { return c.cyan.Render(s) }
func (c *Console) Green(s string) string  { return c.green.Render(s) }
func (c *Console) Yellow(s string) string { return c.yellow.Render(s) }
func (c *Console) Pointer() string        { return c.cyan.Render(pointer) }
