// Package catalog describes the generators the CLI offers. The catalog is an
// embedded YAML document validated against an embedded JSON Schema; the
// command tree and the help screen are both built from it.
package catalog
