package task

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// stateSchema is the JSON Schema for the state file. Priority is an
// open string on purpose: unknown values are carried through as-is and
// only the interactive input layer narrows them to low/medium/high.
const stateSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["next_id", "tasks"],
  "properties": {
    "next_id": {"type": "integer", "minimum": 1},
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "description", "status", "priority", "category", "created_date"],
        "properties": {
          "id": {"type": "integer", "minimum": 1},
          "description": {"type": "string", "minLength": 1},
          "status": {"enum": ["pending", "completed"]},
          "priority": {"type": "string"},
          "category": {"type": "string"},
          "created_date": {"type": "string"},
          "completed_date": {"type": ["string", "null"]}
        }
      }
    }
  }
}`

var compiledStateSchema = jsonschema.MustCompileString("state.schema.json", stateSchema)

// validateState checks raw state file bytes against the schema before
// they are decoded into a State.
func validateState(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	if err := compiledStateSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
