package profile

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema is the structural contract for profile documents accepted by
// Import. Semantic rules (channel ranges, valid effects) stay procedural in
// Profile.validate; the schema guards shape and types so malformed files fail
// before any entry is merged.
const documentSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["profiles"],
	"properties": {
		"profiles": {
			"type": "object",
			"additionalProperties": {
				"type": "object",
				"required": ["color", "effect"],
				"properties": {
					"color": {
						"type": "array",
						"items": {"type": "integer"},
						"minItems": 3,
						"maxItems": 3
					},
					"effect": {"type": "string"},
					"brightness": {"type": "integer"},
					"speed": {"type": "integer"},
					"selected_devices": {
						"type": "array",
						"items": {"type": "string"}
					},
					"created": {"type": "string"},
					"version": {"type": "string"}
				}
			}
		}
	}
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(documentSchema), &doc); err != nil {
			schemaErr = fmt.Errorf("unmarshal schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("profiles.json", doc); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile("profiles.json")
	})
	return schema, schemaErr
}

// validateDocument checks raw profile-document bytes against the structural
// schema.
func validateDocument(data []byte) error {
	compiled, err := compiledSchema()
	if err != nil {
		return err
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	return compiled.Validate(instance)
}
