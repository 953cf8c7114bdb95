package domain

import (
	"context"

	"github.com/google/go-github/v66/github"
)

// Provider executes authenticated GitHub calls on behalf of operation
// handlers. Implementations hold the credential; handlers never see it.
//
// CreateIssue takes body and labels as pointer/nil-slice arguments on
// purpose: nil means the field stays structurally absent from the API
// request, which is not the same as sending an empty string or empty array.
type Provider interface {
	AuthenticatedUser(ctx context.Context) (*github.User, error)
	ListRepositories(ctx context.Context, sort string, perPage, page int) ([]*github.Repository, error)
	Repository(ctx context.Context, owner, repo string) (*github.Repository, error)
	ListIssues(ctx context.Context, owner, repo, state string, perPage, page int) ([]*github.Issue, error)
	CreateIssue(ctx context.Context, owner, repo, title string, body *string, labels []string) (*github.Issue, error)
	CreateRepository(ctx context.Context, name string, description *string, private, autoInit bool) (*github.Repository, error)
	ListPullRequests(ctx context.Context, owner, repo, state string, perPage int) ([]*github.PullRequest, error)
	Contents(ctx context.Context, owner, repo, path, ref string) (*github.RepositoryContent, []*github.RepositoryContent, error)
	SearchRepositories(ctx context.Context, query string, perPage, page int) (*github.RepositoriesSearchResult, error)
	SearchCode(ctx context.Context, query string, perPage, page int) (*github.CodeSearchResult, error)
}
