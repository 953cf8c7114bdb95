// Package schema declares per-operation input schemas and validates raw
// tool arguments against them before any provider call is made.
package schema

import (
	"fmt"

	"github.com/okulweb/github-mcp/internal/platform/errors"
)

// Kind identifies the declared type of a schema field.
type Kind int

const (
	// KindString accepts a JSON string, optionally restricted by Enum.
	KindString Kind = iota
	// KindNumber accepts a JSON number, optionally bounded by Min/Max.
	KindNumber
	// KindBoolean accepts a JSON boolean.
	KindBoolean
	// KindStringArray accepts a JSON array of strings.
	KindStringArray
)

// String returns the JSON Schema type name for the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindStringArray:
		return "array"
	default:
		return "unknown"
	}
}

// Field declares one named parameter of an operation input schema.
type Field struct {
	Name        string
	Description string
	Kind        Kind
	Required    bool
	// Default is applied only when the field is entirely absent from the
	// raw input. It never replaces an explicitly supplied null.
	Default any
	// Min and Max are inclusive numeric bounds; values outside fail rather
	// than clamp. Only meaningful for KindNumber.
	Min *float64
	Max *float64
	// Enum restricts a KindString field to a fixed value set.
	Enum []string
}

// Schema is an ordered set of field declarations. Order is preserved for
// capability discovery but carries no validation significance.
type Schema struct {
	Fields []Field
}

// Float returns a pointer to v, for inline bound declarations.
func Float(v float64) *float64 {
	return &v
}

// Validate checks raw parameters against the schema and produces validated
// params. It is pure: it never mutates raw and performs no I/O. Unknown raw
// fields are dropped; absent optional fields take their declared default;
// missing required fields, explicit nulls, type mismatches, out-of-range
// numbers, and unlisted enum values abort with a validation error naming the
// field.
func (s Schema) Validate(raw map[string]any) (Values, error) {
	values := make(Values, len(s.Fields))
	for _, field := range s.Fields {
		value, present := raw[field.Name]
		if !present {
			if field.Required {
				return nil, errors.Validationf(field.Name, "required parameter is missing")
			}
			if field.Default != nil {
				values[field.Name] = field.Default
			}
			continue
		}
		if value == nil {
			return nil, errors.Validationf(field.Name, "null is not a valid %s", field.Kind)
		}
		checked, err := field.check(value)
		if err != nil {
			return nil, err
		}
		values[field.Name] = checked
	}
	return values, nil
}

// check validates a present, non-null raw value against the field declaration.
func (f Field) check(value any) (any, error) {
	switch f.Kind {
	case KindString:
		str, ok := value.(string)
		if !ok {
			return nil, errors.Validationf(f.Name, "expected string, got %T", value)
		}
		if len(f.Enum) > 0 && !contains(f.Enum, str) {
			return nil, errors.Validationf(f.Name, "value %q is not one of %v", str, f.Enum)
		}
		return str, nil
	case KindNumber:
		num, ok := toFloat(value)
		if !ok {
			return nil, errors.Validationf(f.Name, "expected number, got %T", value)
		}
		if f.Min != nil && num < *f.Min {
			return nil, errors.Validationf(f.Name, "value %v is below the minimum %v", num, *f.Min)
		}
		if f.Max != nil && num > *f.Max {
			return nil, errors.Validationf(f.Name, "value %v is above the maximum %v", num, *f.Max)
		}
		return num, nil
	case KindBoolean:
		b, ok := value.(bool)
		if !ok {
			return nil, errors.Validationf(f.Name, "expected boolean, got %T", value)
		}
		return b, nil
	case KindStringArray:
		items, err := toStrings(value)
		if err != nil {
			return nil, errors.Validationf(f.Name, "%v", err)
		}
		return items, nil
	default:
		return nil, errors.Validationf(f.Name, "unsupported schema kind %d", f.Kind)
	}
}

func contains(set []string, value string) bool {
	for _, candidate := range set {
		if candidate == value {
			return true
		}
	}
	return false
}

// toFloat widens the numeric representations a JSON decoder or a Go caller
// may supply into float64.
func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toStrings(value any) ([]string, error) {
	switch items := value.(type) {
	case []string:
		out := make([]string, len(items))
		copy(out, items)
		return out, nil
	case []any:
		out := make([]string, 0, len(items))
		for i, item := range items {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected array of strings, element %d is %T", i, item)
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected array of strings, got %T", value)
	}
}
