package domain

import (
	"context"
	"fmt"

	"github.com/google/go-github/v66/github"
	"github.com/okulweb/github-mcp/internal/services/mcp/dispatch"
	"github.com/okulweb/github-mcp/internal/services/mcp/schema"
)

// RepositorySearchResult is the projected view of a repository search.
type RepositorySearchResult struct {
	TotalCount   int                 `json:"total_count"`
	Repositories []RepositorySummary `json:"items"`
}

// CodeSearchMatch is the projected view of one code search hit.
type CodeSearchMatch struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Repository string `json:"repository,omitempty"`
	HTMLURL    string `json:"html_url"`
}

// CodeSearchResult is the projected view of a code search.
type CodeSearchResult struct {
	TotalCount int               `json:"total_count"`
	Matches    []CodeSearchMatch `json:"items"`
}

func queryField() schema.Field {
	return schema.Field{Name: "query", Kind: schema.KindString, Required: true, Description: "search query using GitHub search syntax"}
}

// SearchRepositoriesOperation searches repositories by query string.
func SearchRepositoriesOperation(provider Provider) dispatch.Operation {
	return dispatch.Operation{
		Name:        "search_repositories",
		Description: "Search for repositories on GitHub",
		Schema: schema.Schema{Fields: []schema.Field{
			queryField(),
			perPageField(),
			pageField(),
		}},
		Handler: func(ctx context.Context, params schema.Values) (any, error) {
			result, err := provider.SearchRepositories(ctx, params.String("query"), params.Int("per_page"), params.Int("page"))
			if err != nil {
				return nil, fmt.Errorf("repository search failed: %w", err)
			}
			if result == nil {
				return nil, fmt.Errorf("repository search response is missing")
			}
			projected := RepositorySearchResult{
				TotalCount:   result.GetTotal(),
				Repositories: make([]RepositorySummary, 0, len(result.Repositories)),
			}
			for _, repo := range result.Repositories {
				projected.Repositories = append(projected.Repositories, repositorySummary(repo))
			}
			return projected, nil
		},
	}
}

// SearchCodeOperation searches code by query string.
func SearchCodeOperation(provider Provider) dispatch.Operation {
	return dispatch.Operation{
		Name:        "search_code",
		Description: "Search for code across GitHub repositories",
		Schema: schema.Schema{Fields: []schema.Field{
			queryField(),
			perPageField(),
			pageField(),
		}},
		Handler: func(ctx context.Context, params schema.Values) (any, error) {
			result, err := provider.SearchCode(ctx, params.String("query"), params.Int("per_page"), params.Int("page"))
			if err != nil {
				return nil, fmt.Errorf("code search failed: %w", err)
			}
			if result == nil {
				return nil, fmt.Errorf("code search response is missing")
			}
			projected := CodeSearchResult{
				TotalCount: result.GetTotal(),
				Matches:    make([]CodeSearchMatch, 0, len(result.CodeResults)),
			}
			for _, match := range result.CodeResults {
				projected.Matches = append(projected.Matches, codeSearchMatch(match))
			}
			return projected, nil
		},
	}
}

func codeSearchMatch(match *github.CodeResult) CodeSearchMatch {
	return CodeSearchMatch{
		Name:       match.GetName(),
		Path:       match.GetPath(),
		Repository: match.GetRepository().GetFullName(),
		HTMLURL:    match.GetHTMLURL(),
	}
}
