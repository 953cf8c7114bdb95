// Package github adapts the GitHub REST API to the operations the dispatch
// catalogue needs. All API failures are translated to coded errors here so
// callers never inspect transport details.
package github

import (
	"context"
	stderrors "errors"
	"net/http"

	gh "github.com/google/go-github/v66/github"
	"github.com/okulweb/github-mcp/internal/platform/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Config carries the credential and endpoint for the REST client.
type Config struct {
	// Token is the personal access token used for every request.
	Token string
	// APIBaseURL switches the client to a GitHub Enterprise installation.
	// Empty means api.github.com.
	APIBaseURL string
}

// Client is an authenticated GitHub REST client.
type Client struct {
	api *gh.Client
}

// NewClient builds an authenticated REST client from cfg. Outbound requests
// are traced through the global tracer provider, so every GitHub call shows
// up as a client span when tracing is enabled.
func NewClient(cfg Config) (*Client, error) {
	httpClient := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	api := gh.NewClient(httpClient).WithAuthToken(cfg.Token)
	if cfg.APIBaseURL != "" {
		var err error
		api, err = api.WithEnterpriseURLs(cfg.APIBaseURL, cfg.APIBaseURL)
		if err != nil {
			return nil, errors.Wrap(errors.CodeStartupFailure, "configure enterprise endpoint", err)
		}
	}
	return &Client{api: api}, nil
}

// AuthenticatedUser fetches the profile behind the configured token.
func (c *Client) AuthenticatedUser(ctx context.Context) (*gh.User, error) {
	user, _, err := c.api.Users.Get(ctx, "")
	return user, mapError(err)
}

// ListRepositories lists repositories owned by or shared with the
// authenticated user.
func (c *Client) ListRepositories(ctx context.Context, sort string, perPage, page int) ([]*gh.Repository, error) {
	opts := &gh.RepositoryListByAuthenticatedUserOptions{
		Sort:        sort,
		ListOptions: gh.ListOptions{PerPage: perPage, Page: page},
	}
	repos, _, err := c.api.Repositories.ListByAuthenticatedUser(ctx, opts)
	return repos, mapError(err)
}

// Repository fetches a single repository by owner and name.
func (c *Client) Repository(ctx context.Context, owner, repo string) (*gh.Repository, error) {
	repository, _, err := c.api.Repositories.Get(ctx, owner, repo)
	return repository, mapError(err)
}

// ListIssues lists issues in a repository filtered by state.
func (c *Client) ListIssues(ctx context.Context, owner, repo, state string, perPage, page int) ([]*gh.Issue, error) {
	opts := &gh.IssueListByRepoOptions{
		State:       state,
		ListOptions: gh.ListOptions{PerPage: perPage, Page: page},
	}
	issues, _, err := c.api.Issues.ListByRepo(ctx, owner, repo, opts)
	return issues, mapError(err)
}

// CreateIssue opens a new issue. A nil body or labels slice is left off the
// request entirely rather than sent as an empty value.
func (c *Client) CreateIssue(ctx context.Context, owner, repo, title string, body *string, labels []string) (*gh.Issue, error) {
	request := &gh.IssueRequest{
		Title: gh.String(title),
		Body:  body,
	}
	if labels != nil {
		request.Labels = &labels
	}
	issue, _, err := c.api.Issues.Create(ctx, owner, repo, request)
	return issue, mapError(err)
}

// CreateRepository creates a repository for the authenticated user.
func (c *Client) CreateRepository(ctx context.Context, name string, description *string, private, autoInit bool) (*gh.Repository, error) {
	repository := &gh.Repository{
		Name:        gh.String(name),
		Description: description,
		Private:     gh.Bool(private),
		AutoInit:    gh.Bool(autoInit),
	}
	created, _, err := c.api.Repositories.Create(ctx, "", repository)
	return created, mapError(err)
}

// ListPullRequests lists pull requests in a repository filtered by state.
func (c *Client) ListPullRequests(ctx context.Context, owner, repo, state string, perPage int) ([]*gh.PullRequest, error) {
	opts := &gh.PullRequestListOptions{
		State:       state,
		ListOptions: gh.ListOptions{PerPage: perPage},
	}
	pulls, _, err := c.api.PullRequests.List(ctx, owner, repo, opts)
	return pulls, mapError(err)
}

// Contents fetches file or directory contents at a path. Exactly one of the
// two returned values is set on success.
func (c *Client) Contents(ctx context.Context, owner, repo, path, ref string) (*gh.RepositoryContent, []*gh.RepositoryContent, error) {
	opts := &gh.RepositoryContentGetOptions{Ref: ref}
	file, directory, _, err := c.api.Repositories.GetContents(ctx, owner, repo, path, opts)
	return file, directory, mapError(err)
}

// SearchRepositories runs a repository search query.
func (c *Client) SearchRepositories(ctx context.Context, query string, perPage, page int) (*gh.RepositoriesSearchResult, error) {
	opts := &gh.SearchOptions{ListOptions: gh.ListOptions{PerPage: perPage, Page: page}}
	result, _, err := c.api.Search.Repositories(ctx, query, opts)
	return result, mapError(err)
}

// SearchCode runs a code search query.
func (c *Client) SearchCode(ctx context.Context, query string, perPage, page int) (*gh.CodeSearchResult, error) {
	opts := &gh.SearchOptions{ListOptions: gh.ListOptions{PerPage: perPage, Page: page}}
	result, _, err := c.api.Search.Code(ctx, query, opts)
	return result, mapError(err)
}

// mapError translates REST client failures into coded provider errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var rateErr *gh.RateLimitError
	if stderrors.As(err, &rateErr) {
		return errors.Wrap(errors.CodeProviderRateLimited, "rate limit exhausted", err)
	}
	var abuseErr *gh.AbuseRateLimitError
	if stderrors.As(err, &abuseErr) {
		return errors.Wrap(errors.CodeProviderRateLimited, "secondary rate limit triggered", err)
	}
	var respErr *gh.ErrorResponse
	if stderrors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case http.StatusNotFound:
			return errors.Wrap(errors.CodeProviderNotFound, "resource not found", err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return errors.Wrap(errors.CodeProviderUnauthorized, "credential rejected", err)
		case http.StatusConflict:
			return errors.Wrap(errors.CodeProviderConflict, "resource conflict", err)
		case http.StatusUnprocessableEntity:
			return errors.Wrap(errors.CodeProviderInvalidQuery, "query rejected as unprocessable", err)
		}
	}
	return errors.Wrap(errors.CodeProviderUnavailable, "github api request failed", err)
}
