package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// scenarioSchema is the structural contract for scenario files.
const scenarioSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["regions"],
  "additionalProperties": false,
  "properties": {
    "name": { "type": "string" },
    "regions": {
      "type": "array",
      "minItems": 1,
      "items": { "$ref": "#/definitions/region" }
    }
  },
  "definitions": {
    "region": {
      "type": "object",
      "required": ["label", "duration"],
      "additionalProperties": false,
      "properties": {
        "label": { "type": "string", "minLength": 1 },
        "duration": { "type": "string" },
        "repeat": { "type": "integer", "minimum": 1 },
        "log": { "type": "boolean" },
        "children": {
          "type": "array",
          "items": { "$ref": "#/definitions/region" }
        }
      }
    }
  }
}`

// validateSchema checks raw scenario YAML against scenarioSchema. The YAML is
// decoded generically and round-tripped through JSON so the schema library
// sees the value types it expects.
func validateSchema(data []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}

	jsonData, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("cannot convert scenario to JSON: %w", err)
	}
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return fmt.Errorf("cannot convert scenario to JSON: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("scenario.json", strings.NewReader(scenarioSchema)); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	schema, err := compiler.Compile("scenario.json")
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	return schema.Validate(doc)
}
