package domain

import (
	"context"
	"testing"

	"github.com/google/go-github/v66/github"
	"github.com/okulweb/github-mcp/internal/services/mcp/dispatch"
)

// invoke validates raw arguments against the operation schema and runs the
// handler, failing the test on validation errors.
func invoke(t *testing.T, op dispatch.Operation, args map[string]any) (any, error) {
	t.Helper()
	params, err := op.Schema.Validate(args)
	if err != nil {
		t.Fatalf("validate arguments: %v", err)
	}
	return op.Handler(context.Background(), params)
}

// fakeProvider records call arguments and returns canned responses.
type fakeProvider struct {
	err error

	user  *github.User
	repos []*github.Repository
	repo  *github.Repository

	issues       []*github.Issue
	createdIssue *github.Issue

	pulls []*github.PullRequest

	file *github.RepositoryContent
	dir  []*github.RepositoryContent

	repoSearch *github.RepositoriesSearchResult
	codeSearch *github.CodeSearchResult

	gotOwner   string
	gotRepo    string
	gotSort    string
	gotState   string
	gotPerPage int
	gotPage    int
	gotTitle   string
	gotBody    *string
	gotLabels  []string

	gotName        string
	gotDescription *string
	gotPrivate     bool
	gotAutoInit    bool

	gotPath  string
	gotRef   string
	gotQuery string
}

func (f *fakeProvider) AuthenticatedUser(ctx context.Context) (*github.User, error) {
	return f.user, f.err
}

func (f *fakeProvider) ListRepositories(ctx context.Context, sort string, perPage, page int) ([]*github.Repository, error) {
	f.gotSort, f.gotPerPage, f.gotPage = sort, perPage, page
	return f.repos, f.err
}

func (f *fakeProvider) Repository(ctx context.Context, owner, repo string) (*github.Repository, error) {
	f.gotOwner, f.gotRepo = owner, repo
	return f.repo, f.err
}

func (f *fakeProvider) ListIssues(ctx context.Context, owner, repo, state string, perPage, page int) ([]*github.Issue, error) {
	f.gotOwner, f.gotRepo, f.gotState, f.gotPerPage, f.gotPage = owner, repo, state, perPage, page
	return f.issues, f.err
}

func (f *fakeProvider) CreateIssue(ctx context.Context, owner, repo, title string, body *string, labels []string) (*github.Issue, error) {
	f.gotOwner, f.gotRepo, f.gotTitle, f.gotBody, f.gotLabels = owner, repo, title, body, labels
	return f.createdIssue, f.err
}

func (f *fakeProvider) CreateRepository(ctx context.Context, name string, description *string, private, autoInit bool) (*github.Repository, error) {
	f.gotName, f.gotDescription, f.gotPrivate, f.gotAutoInit = name, description, private, autoInit
	return f.repo, f.err
}

func (f *fakeProvider) ListPullRequests(ctx context.Context, owner, repo, state string, perPage int) ([]*github.PullRequest, error) {
	f.gotOwner, f.gotRepo, f.gotState, f.gotPerPage = owner, repo, state, perPage
	return f.pulls, f.err
}

func (f *fakeProvider) Contents(ctx context.Context, owner, repo, path, ref string) (*github.RepositoryContent, []*github.RepositoryContent, error) {
	f.gotOwner, f.gotRepo, f.gotPath, f.gotRef = owner, repo, path, ref
	return f.file, f.dir, f.err
}

func (f *fakeProvider) SearchRepositories(ctx context.Context, query string, perPage, page int) (*github.RepositoriesSearchResult, error) {
	f.gotQuery, f.gotPerPage, f.gotPage = query, perPage, page
	return f.repoSearch, f.err
}

func (f *fakeProvider) SearchCode(ctx context.Context, query string, perPage, page int) (*github.CodeSearchResult, error) {
	f.gotQuery, f.gotPerPage, f.gotPage = query, perPage, page
	return f.codeSearch, f.err
}
