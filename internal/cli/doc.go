// Package cli defines the Cobra command tree for hono-artisan. The make:*
// commands are registered from the generator catalog; each one resolves a
// name and variant through the prompter and hands off to the generator
// package. Commands only handle argument parsing, I/O formatting and user
// interaction.
package cli
