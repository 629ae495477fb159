package profile

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "leo://profiles.schema.json"

// documentSchema constrains the profile document. IDs double as directory
// names for mission files, so they are limited to a safe alphabet.
const documentSchema = `{
  "type": "object",
  "required": ["children"],
  "properties": {
    "children": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "name", "category"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": "string", "pattern": "^[A-Za-z0-9_-]+$"},
          "name": {"type": "string", "minLength": 1},
          "grade": {"type": "string"},
          "category": {"enum": ["elementary", "preschool", "general"]},
          "attention_support": {"type": "boolean"},
          "themes": {"type": "array", "items": {"type": "string", "minLength": 1}}
        }
      }
    }
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func documentValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(documentSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse profile schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add profile schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
