package schema

// Values holds validated, coerced parameters keyed by field name. Entries
// exist only for fields that were supplied or carried a declared default.
type Values map[string]any

// Has reports whether the field was supplied or defaulted.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// String returns the field as a string, or "" when absent.
func (v Values) String(name string) string {
	if s, ok := v[name].(string); ok {
		return s
	}
	return ""
}

// Int returns the field as an int, truncating toward zero, or 0 when absent.
func (v Values) Int(name string) int {
	if f, ok := toFloat(v[name]); ok {
		return int(f)
	}
	return 0
}

// Bool returns the field as a bool, or false when absent.
func (v Values) Bool(name string) bool {
	if b, ok := v[name].(bool); ok {
		return b
	}
	return false
}

// Strings returns the field as a string slice, or nil when absent.
func (v Values) Strings(name string) []string {
	if items, ok := v[name].([]string); ok {
		return items
	}
	return nil
}
