package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v66/github"
	"github.com/okulweb/github-mcp/internal/services/mcp/dispatch"
	"github.com/okulweb/github-mcp/internal/services/mcp/schema"
)

// RepositorySummary is the projected repository view shared by listing,
// single fetch, creation, and search results. Internal and rate-limit noise
// from the API payload is dropped on purpose.
type RepositorySummary struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"private"`
	Language    string `json:"language,omitempty"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	HTMLURL     string `json:"html_url"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// ListRepositoriesOperation lists repositories for the authenticated user.
func ListRepositoriesOperation(provider Provider) dispatch.Operation {
	return dispatch.Operation{
		Name:        "list_repositories",
		Description: "List repositories for the authenticated user",
		Schema: schema.Schema{Fields: []schema.Field{
			{Name: "sort", Kind: schema.KindString, Enum: []string{"created", "updated", "pushed", "full_name"}, Default: "updated", Description: "sort order for results"},
			perPageField(),
			pageField(),
		}},
		Handler: func(ctx context.Context, params schema.Values) (any, error) {
			repos, err := provider.ListRepositories(ctx, params.String("sort"), params.Int("per_page"), params.Int("page"))
			if err != nil {
				return nil, fmt.Errorf("repository list failed: %w", err)
			}
			summaries := make([]RepositorySummary, 0, len(repos))
			for _, repo := range repos {
				summaries = append(summaries, repositorySummary(repo))
			}
			return summaries, nil
		},
	}
}

// GetRepositoryOperation fetches a single repository's metadata.
func GetRepositoryOperation(provider Provider) dispatch.Operation {
	return dispatch.Operation{
		Name:        "get_repository",
		Description: "Get metadata for a repository by owner and name",
		Schema: schema.Schema{Fields: []schema.Field{
			ownerField(),
			repoField(),
		}},
		Handler: func(ctx context.Context, params schema.Values) (any, error) {
			repo, err := provider.Repository(ctx, params.String("owner"), params.String("repo"))
			if err != nil {
				return nil, fmt.Errorf("repository fetch failed: %w", err)
			}
			if repo == nil {
				return nil, fmt.Errorf("repository response is missing")
			}
			return repositorySummary(repo), nil
		},
	}
}

// CreateRepositoryOperation creates a repository for the authenticated user.
func CreateRepositoryOperation(provider Provider) dispatch.Operation {
	return dispatch.Operation{
		Name:        "create_repository",
		Description: "Create a new repository for the authenticated user",
		Schema: schema.Schema{Fields: []schema.Field{
			{Name: "name", Kind: schema.KindString, Required: true, Description: "name of the new repository"},
			{Name: "description", Kind: schema.KindString, Description: "repository description"},
			{Name: "private", Kind: schema.KindBoolean, Default: false, Description: "create as a private repository"},
			{Name: "auto_init", Kind: schema.KindBoolean, Default: false, Description: "initialize with an empty README"},
		}},
		Handler: func(ctx context.Context, params schema.Values) (any, error) {
			var description *string
			if params.Has("description") {
				value := params.String("description")
				description = &value
			}
			repo, err := provider.CreateRepository(ctx, params.String("name"), description, params.Bool("private"), params.Bool("auto_init"))
			if err != nil {
				return nil, fmt.Errorf("repository create failed: %w", err)
			}
			if repo == nil {
				return nil, fmt.Errorf("repository create response is missing")
			}
			return repositorySummary(repo), nil
		},
	}
}

func repositorySummary(repo *github.Repository) RepositorySummary {
	return RepositorySummary{
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		Description: repo.GetDescription(),
		Private:     repo.GetPrivate(),
		Language:    repo.GetLanguage(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		HTMLURL:     repo.GetHTMLURL(),
		UpdatedAt:   formatTimestamp(repo.UpdatedAt),
	}
}

// formatTimestamp returns an RFC3339 timestamp or empty string.
// Empty values are treated as missing fields for compact responses.
func formatTimestamp(ts *github.Timestamp) string {
	if ts == nil || ts.Time.IsZero() {
		return ""
	}
	return ts.Time.Format(time.RFC3339)
}
