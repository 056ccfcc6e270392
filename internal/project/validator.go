package project

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrInvalidModel is returned when aurelia.json does not satisfy the schema.
var ErrInvalidModel = errors.New("invalid project model")

//go:embed schema/project.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationIssue is one schema violation in aurelia.json.
type ValidationIssue struct {
	Path    string // JSON pointer into the model, "" for the root
	Message string
	Keyword string // failing schema keyword, e.g. "required"
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// getSchema returns the model schema, compiling it on first use.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiledSchema, compileErr = compileSchema()
	})
	return compiledSchema, compileErr
}

func compileSchema() (*jsonschema.Schema, error) {
	const url = "project.schema.json"

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("decoding embedded schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("registering embedded schema: %w", err)
	}
	schema, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compiling embedded schema: %w", err)
	}
	return schema, nil
}

// Validate checks the in-memory model against the project schema.
func (p *Project) Validate() error {
	data, err := json.Marshal(p.Model)
	if err != nil {
		return fmt.Errorf("marshaling project model: %w", err)
	}
	return validateBytes(data)
}

// Issues returns the schema violations in raw model JSON. The error return is
// for parse or schema compilation failures.
func Issues(data []byte) ([]ValidationIssue, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing project model: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil, nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}
	return extractIssues(ve), nil
}

func validateBytes(data []byte) error {
	issues, err := Issues(data)
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		return nil
	}
	msgs := make([]string, len(issues))
	for i, issue := range issues {
		msgs[i] = issue.String()
	}
	return fmt.Errorf("%w: %s", ErrInvalidModel, strings.Join(msgs, "; "))
}

// extractIssues flattens a validation error into one issue per failing
// keyword, in tree order and without repeats.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	seen := make(map[ValidationIssue]bool)
	for _, issue := range leafIssues(ve) {
		if !seen[issue] {
			seen[issue] = true
			issues = append(issues, issue)
		}
	}
	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return issues
}

// leafIssues collects the causes that name a concrete keyword. Wrapping
// keywords such as allOf or $ref only group other causes.
func leafIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	if len(ve.Causes) > 0 {
		var out []ValidationIssue
		for _, cause := range ve.Causes {
			out = append(out, leafIssues(cause)...)
		}
		return out
	}
	if ve.ErrorKind == nil {
		return nil
	}

	kw := ve.ErrorKind.KeywordPath()
	if len(kw) == 0 {
		return nil
	}
	keyword := kw[len(kw)-1]
	if keyword == "allOf" || keyword == "$ref" {
		return nil
	}

	issue := ValidationIssue{
		Message: ve.ErrorKind.LocalizedString(printer),
		Keyword: keyword,
	}
	if len(ve.InstanceLocation) > 0 {
		issue.Path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	return []ValidationIssue{issue}
}
