package domain

import "github.com/okulweb/github-mcp/internal/services/mcp/schema"

// Shared field declarations. All defaults live here, in the schema, never
// inline at provider call sites.

func ownerField() schema.Field {
	return schema.Field{Name: "owner", Kind: schema.KindString, Required: true, Description: "repository owner (user or organization)"}
}

func repoField() schema.Field {
	return schema.Field{Name: "repo", Kind: schema.KindString, Required: true, Description: "repository name"}
}

func perPageField() schema.Field {
	return schema.Field{Name: "per_page", Kind: schema.KindNumber, Min: schema.Float(1), Max: schema.Float(100), Default: 30, Description: "results per page (1-100)"}
}

func pageField() schema.Field {
	return schema.Field{Name: "page", Kind: schema.KindNumber, Min: schema.Float(1), Default: 1, Description: "page number to fetch"}
}

func stateField() schema.Field {
	return schema.Field{Name: "state", Kind: schema.KindString, Enum: []string{"open", "closed", "all"}, Default: "open", Description: "filter by state"}
}
