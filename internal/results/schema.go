package results

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed results.schema.json
var documentSchema string

const schemaURL = "petquiz://results.schema.json"

// ValidateDocument checks raw results JSON against the embedded schema and
// returns one message per violation.
func ValidateDocument(data []byte) ([]string, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(documentSchema)); err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	var payload interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	if err := schema.Validate(payload); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return flattenSchemaErrors(validationErr), nil
		}
		return []string{err.Error()}, nil
	}
	return nil, nil
}

func flattenSchemaErrors(err *jsonschema.ValidationError) []string {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		return []string{fmt.Sprintf("%s: %s", location, err.Message)}
	}
	var messages []string
	for _, cause := range err.Causes {
		messages = append(messages, flattenSchemaErrors(cause)...)
	}
	return messages
}
