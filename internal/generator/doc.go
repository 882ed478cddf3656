// Package generator runs the create step of the make:* commands. Creation is
// behind the Creator interface; the only Creator today is Placeholder, which
// waits for a fixed delay and writes nothing.
package generator
