package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

//go:embed generators.yaml
var embeddedCatalog []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog compiled into the binary. It is parsed and
// validated once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(embeddedCatalog)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("embedded generator catalog: %w", defaultErr)
		}
	})
	return defaultCatalog, defaultErr
}

// ParseFile reads and parses a catalog file.
func ParseFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse validates data against the catalog schema, decodes it, and checks
// the constraints the schema cannot express.
func Parse(data []byte) (*Catalog, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) check() error {
	if _, err := semver.NewVersion(c.Version); err != nil {
		return fmt.Errorf("catalog version %q is not semver: %w", c.Version, err)
	}

	commands := make(map[string]bool)
	for _, g := range c.Generators {
		if commands[g.Command] {
			return fmt.Errorf("duplicate generator command %q", g.Command)
		}
		commands[g.Command] = true

		if g.Suffix != "" && g.Prompt.Placeholder != "" && !strings.HasSuffix(g.Prompt.Placeholder, g.Suffix) {
			return fmt.Errorf("%s: placeholder %q does not end with suffix %q", g.Command, g.Prompt.Placeholder, g.Suffix)
		}

		values := make(map[string]bool)
		for _, v := range g.Variants {
			if values[v.Value] {
				return fmt.Errorf("%s: duplicate variant %q", g.Command, v.Value)
			}
			values[v.Value] = true
		}
	}
	return nil
}
