package catalog

// Catalog is the root of generators.yaml.
type Catalog struct {
	Version    string      `yaml:"version" json:"version"`
	Generators []Generator `yaml:"generators" json:"generators"`
}

// Generator describes one make:* subcommand.
type Generator struct {
	Command       string    `yaml:"command" json:"command"`
	Kind          string    `yaml:"kind" json:"kind"`
	Argument      string    `yaml:"argument,omitempty" json:"argument,omitempty"`
	Summary       string    `yaml:"summary" json:"summary"`
	Description   string    `yaml:"description" json:"description"`
	Suffix        string    `yaml:"suffix,omitempty" json:"suffix,omitempty"`
	Prompt        Prompt    `yaml:"prompt" json:"prompt"`
	VariantPrompt string    `yaml:"variant_prompt,omitempty" json:"variant_prompt,omitempty"`
	Variants      []Variant `yaml:"variants,omitempty" json:"variants,omitempty"`
	Examples      []Example `yaml:"examples,omitempty" json:"examples,omitempty"`
	Usage         string    `yaml:"usage" json:"usage"`
}

// Prompt holds the text prompt shown when no name argument is given.
type Prompt struct {
	Message     string `yaml:"message" json:"message"`
	Placeholder string `yaml:"placeholder" json:"placeholder"`
}

// Variant is one selectable generation style.
type Variant struct {
	Value  string `yaml:"value" json:"value"`
	Label  string `yaml:"label" json:"label"`
	Title  string `yaml:"title,omitempty" json:"title,omitempty"`
	Help   string `yaml:"help,omitempty" json:"help,omitempty"`
	Detail string `yaml:"detail,omitempty" json:"detail,omitempty"`
}

// Example is a sample name listed in help output.
type Example struct {
	Name string `yaml:"name" json:"name"`
	Help string `yaml:"help,omitempty" json:"help,omitempty"`
}

// Use returns the cobra usage line, e.g. "make:model [name]".
func (g Generator) Use() string {
	if g.Argument == "" {
		return g.Command
	}
	return g.Command + " [" + g.Argument + "]"
}

// HasVariants reports whether the generator asks for a variant.
func (g Generator) HasVariants() bool {
	return len(g.Variants) > 0
}

// Variant returns the variant with the given value.
func (g Generator) Variant(value string) (Variant, bool) {
	for _, v := range g.Variants {
		if v.Value == value {
			return v, true
		}
	}
	return Variant{}, false
}

// VariantValues returns the values of all variants in catalog order.
func (g Generator) VariantValues() []string {
	values := make([]string, len(g.Variants))
	for i, v := range g.Variants {
		values[i] = v.Value
	}
	return values
}

// DisplayTitle returns the help title of a variant, falling back to its label.
func (v Variant) DisplayTitle() string {
	if v.Title != "" {
		return v.Title
	}
	return v.Label
}

// Lookup returns the generator registered under command.
func (c *Catalog) Lookup(command string) (*Generator, bool) {
	for i := range c.Generators {
		if c.Generators[i].Command == command {
			return &c.Generators[i], true
		}
	}
	return nil, false
}
