package validation

import (
	"embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Kind selects which submission schema applies.
type Kind string

const (
	KindMaturity   Kind = "maturity"
	KindROI        Kind = "roi"
	KindAutomation Kind = "automation"
	KindStatus     Kind = "status"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

var schemas = map[Kind]*gojsonschema.Schema{}

func init() {
	for kind, file := range map[Kind]string{
		KindMaturity:   "schemas/maturity.json",
		KindROI:        "schemas/roi.json",
		KindAutomation: "schemas/automation.json",
		KindStatus:     "schemas/status.json",
	} {
		raw, err := schemaFiles.ReadFile(file)
		if err != nil {
			panic(fmt.Sprintf("validation: read schema %s: %v", file, err))
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			panic(fmt.Sprintf("validation: compile schema %s: %v", file, err))
		}
		schemas[kind] = schema
	}
}

// FieldError describes a single schema violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of validating one submission payload.
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// ValidateSubmission checks a raw JSON payload against the fixed schema for a
// kind. A payload that is not parseable JSON is reported as invalid rather
// than as an internal error.
func ValidateSubmission(kind Kind, payload []byte) Result {
	schema, ok := schemas[kind]
	if !ok {
		return Result{Valid: false, Errors: []FieldError{{Field: "kind", Message: fmt.Sprintf("unknown submission kind %q", kind)}}}
	}

	outcome, err := schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return Result{Valid: false, Errors: []FieldError{{Field: "body", Message: "request body is not valid JSON"}}}
	}
	if outcome.Valid() {
		return Result{Valid: true}
	}

	errs := make([]FieldError, 0, len(outcome.Errors()))
	for _, e := range outcome.Errors() {
		errs = append(errs, FieldError{Field: e.Field(), Message: e.Description()})
	}
	return Result{Valid: false, Errors: errs}
}
