package dispatch

import (
	"context"
	"errors"
	"testing"

	platformerrors "github.com/okulweb/github-mcp/internal/platform/errors"
	"github.com/okulweb/github-mcp/internal/services/mcp/schema"
)

func noopHandler(ctx context.Context, params schema.Values) (any, error) {
	return "ok", nil
}

func TestRegistryRoundTrip(t *testing.T) {
	registry := NewRegistry()
	op := Operation{
		Name:        "get_repository",
		Description: "Fetches repository metadata",
		Schema: schema.Schema{Fields: []schema.Field{
			{Name: "owner", Kind: schema.KindString, Required: true},
		}},
		Handler: noopHandler,
	}
	if err := registry.Register(op); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := registry.Lookup("get_repository")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.Name != op.Name || got.Description != op.Description {
		t.Fatalf("expected registered descriptor back, got %+v", got)
	}
	if len(got.Schema.Fields) != 1 || got.Schema.Fields[0].Name != "owner" {
		t.Fatalf("expected schema to round-trip, got %+v", got.Schema)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	op := Operation{Name: "search_code", Handler: noopHandler}
	if err := registry.Register(op); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := registry.Register(op)
	if err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if platformerrors.CodeOf(err) != platformerrors.CodeStartupFailure {
		t.Fatalf("expected startup failure code, got %v", err)
	}
}

func TestRegistryRejectsInvalidDescriptors(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(Operation{Handler: noopHandler}); err == nil {
		t.Fatal("expected empty name to fail")
	}
	if err := registry.Register(Operation{Name: "get_me"}); err == nil {
		t.Fatal("expected nil handler to fail")
	}
}

func TestRegistryLookupUnknown(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.Lookup("does_not_exist")
	if err == nil {
		t.Fatal("expected lookup error")
	}
	var domainErr *platformerrors.Error
	if !errors.As(err, &domainErr) || domainErr.Code != platformerrors.CodeOperationNotFound {
		t.Fatalf("expected OPERATION_NOT_FOUND, got %v", err)
	}
}

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	registry := NewRegistry()
	names := []string{"get_authenticated_user", "list_repositories", "search_code"}
	for _, name := range names {
		if err := registry.Register(Operation{Name: name, Handler: noopHandler}); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	ops := registry.Operations()
	if len(ops) != len(names) {
		t.Fatalf("expected %d operations, got %d", len(names), len(ops))
	}
	for i, name := range names {
		if ops[i].Name != name {
			t.Fatalf("expected %s at position %d, got %s", name, i, ops[i].Name)
		}
	}
}
