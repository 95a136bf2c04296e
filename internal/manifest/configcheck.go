package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/configuration.schema.json
var configSchemaBytes []byte

var (
	compiledConfigSchema *jsonschema.Schema
	compileOnce          sync.Once
	compileErr           error
	printer              = message.NewPrinter(language.English)
)

// ConfigCheckResult contains the outcome of validating a generated
// configuration.yml against the embedded schema.
type ConfigCheckResult struct {
	Valid  bool
	Issues []ConfigIssue
}

// ConfigIssue represents a single validation error from the schema.
type ConfigIssue struct {
	Path    string // Instance location (e.g., "/environments/dev/debug")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

// getConfigSchema compiles the embedded JSON schema once and returns it.
func getConfigSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(configSchemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("configuration.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledConfigSchema, compileErr = c.Compile("configuration.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledConfigSchema, compileErr
}

// CheckConfig validates raw configuration YAML against the embedded schema.
// The error return is for I/O or schema compilation failures; validation
// issues are returned in the ConfigCheckResult.
func CheckConfig(data []byte) (*ConfigCheckResult, error) {
	schema, err := getConfigSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	// Round-trip through JSON so the validator sees json.Number values.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ConfigCheckResult{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ConfigCheckResult{
		Valid:  false,
		Issues: extractConfigIssues(validationErr),
	}, nil
}

// CheckConfigFile reads a file and validates it against the embedded schema.
func CheckConfigFile(path string) (*ConfigCheckResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return CheckConfig(data)
}

// extractConfigIssues walks the ValidationError tree and returns leaf-level
// issues with specific property information.
func extractConfigIssues(ve *jsonschema.ValidationError) []ConfigIssue {
	var issues []ConfigIssue
	collectConfigIssues(ve, &issues)

	if len(issues) == 0 {
		return []ConfigIssue{{Message: ve.Error()}}
	}
	return issues
}

func collectConfigIssues(ve *jsonschema.ValidationError, issues *[]ConfigIssue) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
		}

		msg := ""
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Skip generic container errors that aren't informative.
		if keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, ConfigIssue{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectConfigIssues(cause, issues)
	}
}
