package schema

import (
	"errors"
	"strings"
	"testing"

	platformerrors "github.com/okulweb/github-mcp/internal/platform/errors"
)

func pageSchema() Schema {
	return Schema{Fields: []Field{
		{Name: "owner", Kind: KindString, Required: true},
		{Name: "state", Kind: KindString, Enum: []string{"open", "closed", "all"}, Default: "open"},
		{Name: "per_page", Kind: KindNumber, Min: Float(1), Max: Float(100), Default: 30},
		{Name: "draft", Kind: KindBoolean, Default: false},
		{Name: "labels", Kind: KindStringArray},
	}}
}

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var domainErr *platformerrors.Error
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected domain error, got %T", err)
	}
	if domainErr.Code != platformerrors.CodeValidation {
		t.Fatalf("expected VALIDATION code, got %s", domainErr.Code)
	}
	if domainErr.Metadata["field"] != field {
		t.Fatalf("expected field %q, got metadata %v", field, domainErr.Metadata)
	}
	if !strings.Contains(domainErr.Error(), field) {
		t.Fatalf("expected field %q in message %q", field, domainErr.Error())
	}
}

func TestValidateMissingRequiredField(t *testing.T) {
	_, err := pageSchema().Validate(map[string]any{})
	assertValidationError(t, err, "owner")
}

func TestValidateWrongType(t *testing.T) {
	t.Run("number for string", func(t *testing.T) {
		_, err := pageSchema().Validate(map[string]any{"owner": 42})
		assertValidationError(t, err, "owner")
	})
	t.Run("string for number", func(t *testing.T) {
		_, err := pageSchema().Validate(map[string]any{"owner": "a", "per_page": "30"})
		assertValidationError(t, err, "per_page")
	})
	t.Run("string for boolean", func(t *testing.T) {
		_, err := pageSchema().Validate(map[string]any{"owner": "a", "draft": "yes"})
		assertValidationError(t, err, "draft")
	})
	t.Run("mixed array", func(t *testing.T) {
		_, err := pageSchema().Validate(map[string]any{"owner": "a", "labels": []any{"bug", 1}})
		assertValidationError(t, err, "labels")
	})
}

func TestValidateAppliesDefaultsOnlyWhenAbsent(t *testing.T) {
	values, err := pageSchema().Validate(map[string]any{"owner": "a"})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got := values.String("state"); got != "open" {
		t.Fatalf("expected default state open, got %q", got)
	}
	if got := values.Int("per_page"); got != 30 {
		t.Fatalf("expected default per_page 30, got %d", got)
	}
	if values.Has("labels") {
		t.Fatal("expected no entry for optional field without default")
	}

	values, err = pageSchema().Validate(map[string]any{"owner": "a", "state": "closed", "per_page": float64(50)})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got := values.String("state"); got != "closed" {
		t.Fatalf("expected supplied state to override default, got %q", got)
	}
	if got := values.Int("per_page"); got != 50 {
		t.Fatalf("expected supplied per_page 50, got %d", got)
	}
}

func TestValidateRejectsExplicitNull(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		_, err := pageSchema().Validate(map[string]any{"owner": nil})
		assertValidationError(t, err, "owner")
	})
	t.Run("optional with default", func(t *testing.T) {
		_, err := pageSchema().Validate(map[string]any{"owner": "a", "state": nil})
		assertValidationError(t, err, "state")
	})
}

func TestValidateNumericBoundsInclusive(t *testing.T) {
	for _, valid := range []float64{1, 100} {
		values, err := pageSchema().Validate(map[string]any{"owner": "a", "per_page": valid})
		if err != nil {
			t.Fatalf("expected %v to be accepted: %v", valid, err)
		}
		if got := values.Int("per_page"); got != int(valid) {
			t.Fatalf("expected per_page %v, got %d", valid, got)
		}
	}
	for _, invalid := range []float64{0, 101} {
		_, err := pageSchema().Validate(map[string]any{"owner": "a", "per_page": invalid})
		assertValidationError(t, err, "per_page")
	}
}

func TestValidateEnum(t *testing.T) {
	_, err := pageSchema().Validate(map[string]any{"owner": "a", "state": "merged"})
	assertValidationError(t, err, "state")

	values, err := pageSchema().Validate(map[string]any{"owner": "a", "state": "all"})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got := values.String("state"); got != "all" {
		t.Fatalf("expected state all, got %q", got)
	}
}

func TestValidateDropsUnknownFields(t *testing.T) {
	values, err := pageSchema().Validate(map[string]any{"owner": "a", "surprise": true})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if values.Has("surprise") {
		t.Fatal("expected unknown field to be dropped")
	}
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	raw := map[string]any{"owner": "a"}
	if _, err := pageSchema().Validate(raw); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("expected raw input untouched, got %v", raw)
	}
}

func TestValidateStringArray(t *testing.T) {
	values, err := pageSchema().Validate(map[string]any{"owner": "a", "labels": []any{"bug", "help wanted"}})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	labels := values.Strings("labels")
	if len(labels) != 2 || labels[0] != "bug" || labels[1] != "help wanted" {
		t.Fatalf("unexpected labels %v", labels)
	}
}

func TestJSONSchemaExport(t *testing.T) {
	out := pageSchema().JSONSchema()
	if out.Type != "object" {
		t.Fatalf("expected object schema, got %q", out.Type)
	}
	if len(out.Required) != 1 || out.Required[0] != "owner" {
		t.Fatalf("expected owner required, got %v", out.Required)
	}
	perPage := out.Properties["per_page"]
	if perPage == nil || perPage.Type != "number" {
		t.Fatalf("expected number property for per_page, got %+v", perPage)
	}
	if perPage.Minimum == nil || *perPage.Minimum != 1 {
		t.Fatalf("expected minimum 1, got %v", perPage.Minimum)
	}
	if perPage.Maximum == nil || *perPage.Maximum != 100 {
		t.Fatalf("expected maximum 100, got %v", perPage.Maximum)
	}
	if string(perPage.Default) != "30" {
		t.Fatalf("expected default 30, got %s", perPage.Default)
	}
	state := out.Properties["state"]
	if state == nil || len(state.Enum) != 3 {
		t.Fatalf("expected 3 enum values for state, got %+v", state)
	}
	labels := out.Properties["labels"]
	if labels == nil || labels.Type != "array" || labels.Items == nil || labels.Items.Type != "string" {
		t.Fatalf("expected string array property for labels, got %+v", labels)
	}
}
