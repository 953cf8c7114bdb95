package schema

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// JSONSchema exports the declarative schema as the JSON Schema object served
// to clients through capability discovery. Additional properties stay
// permitted so unknown fields are dropped by validation instead of rejected
// at the protocol layer.
func (s Schema) JSONSchema() *jsonschema.Schema {
	out := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(s.Fields)),
	}
	for _, field := range s.Fields {
		prop := &jsonschema.Schema{
			Type:        field.Kind.String(),
			Description: field.Description,
		}
		if field.Kind == KindStringArray {
			prop.Items = &jsonschema.Schema{Type: "string"}
		}
		if len(field.Enum) > 0 {
			prop.Enum = make([]any, 0, len(field.Enum))
			for _, value := range field.Enum {
				prop.Enum = append(prop.Enum, value)
			}
		}
		prop.Minimum = field.Min
		prop.Maximum = field.Max
		if field.Default != nil {
			if data, err := json.Marshal(field.Default); err == nil {
				prop.Default = json.RawMessage(data)
			}
		}
		out.Properties[field.Name] = prop
		if field.Required {
			out.Required = append(out.Required, field.Name)
		}
	}
	return out
}
