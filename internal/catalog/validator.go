package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const schemaName = "catalog.schema.json"

//go:embed schema/catalog.schema.json
var schemaBytes []byte

var printer = message.NewPrinter(language.English)

var catalogSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("reading catalog schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaName, doc); err != nil {
		return nil, fmt.Errorf("adding catalog schema: %w", err)
	}
	s, err := c.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("compiling catalog schema: %w", err)
	}
	return s, nil
})

// Issue is one schema violation in a catalog document.
type Issue struct {
	Path    string // e.g. "/generators/0/kind"; empty for the document root
	Keyword string
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// SchemaError lists every schema violation found in a catalog document.
type SchemaError struct {
	Issues []Issue
}

func (e *SchemaError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return "invalid catalog: " + strings.Join(msgs, "; ")
}

// Validate checks a YAML catalog document against the catalog schema.
// Violations are returned as a *SchemaError; any other error means the
// document could not be read at all.
func Validate(data []byte) error {
	schema, err := catalogSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding catalog YAML: %w", err)
	}
	// The validator works on JSON value types.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("converting catalog to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("converting catalog to JSON: %w", err)
	}

	err = schema.Validate(inst)
	var ve *jsonschema.ValidationError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ve):
		return &SchemaError{Issues: leafIssues(ve)}
	default:
		return fmt.Errorf("validating catalog: %w", err)
	}
}

// leafIssues flattens the cause tree to its leaves, which name the concrete
// keyword that failed, dropping repeats.
func leafIssues(root *jsonschema.ValidationError) []Issue {
	var issues []Issue
	seen := make(map[Issue]bool)

	var walk func(*jsonschema.ValidationError)
	walk = func(ve *jsonschema.ValidationError) {
		for _, cause := range ve.Causes {
			walk(cause)
		}
		if len(ve.Causes) > 0 || ve.ErrorKind == nil {
			return
		}
		kw := ve.ErrorKind.KeywordPath()
		if len(kw) == 0 {
			return
		}
		issue := Issue{
			Path:    pointer(ve.InstanceLocation),
			Keyword: kw[len(kw)-1],
			Message: ve.ErrorKind.LocalizedString(printer),
		}
		if !seen[issue] {
			seen[issue] = true
			issues = append(issues, issue)
		}
	}
	walk(root)

	if len(issues) == 0 {
		return []Issue{{Message: root.Error()}}
	}
	return issues
}

func pointer(location []string) string {
	if len(location) == 0 {
		return ""
	}
	return "/" + strings.Join(location, "/")
}
