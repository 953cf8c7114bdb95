package domain

import (
	"context"
	"fmt"

	"github.com/google/go-github/v66/github"
	"github.com/okulweb/github-mcp/internal/services/mcp/dispatch"
	"github.com/okulweb/github-mcp/internal/services/mcp/schema"
)

// PullRequestSummary is the projected view of a pull request in listings.
type PullRequestSummary struct {
	Number    int    `json:"number"`
	Title     string `json:"title"`
	State     string `json:"state"`
	User      string `json:"user,omitempty"`
	HeadRef   string `json:"head_ref,omitempty"`
	BaseRef   string `json:"base_ref,omitempty"`
	HTMLURL   string `json:"html_url"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ListPullRequestsOperation lists pull requests for a repository.
func ListPullRequestsOperation(provider Provider) dispatch.Operation {
	return dispatch.Operation{
		Name:        "list_pull_requests",
		Description: "List pull requests for a repository",
		Schema: schema.Schema{Fields: []schema.Field{
			ownerField(),
			repoField(),
			stateField(),
			perPageField(),
		}},
		Handler: func(ctx context.Context, params schema.Values) (any, error) {
			pulls, err := provider.ListPullRequests(ctx, params.String("owner"), params.String("repo"), params.String("state"), params.Int("per_page"))
			if err != nil {
				return nil, fmt.Errorf("pull request list failed: %w", err)
			}
			summaries := make([]PullRequestSummary, 0, len(pulls))
			for _, pull := range pulls {
				summaries = append(summaries, pullRequestSummary(pull))
			}
			return summaries, nil
		},
	}
}

func pullRequestSummary(pull *github.PullRequest) PullRequestSummary {
	return PullRequestSummary{
		Number:    pull.GetNumber(),
		Title:     pull.GetTitle(),
		State:     pull.GetState(),
		User:      pull.GetUser().GetLogin(),
		HeadRef:   pull.GetHead().GetRef(),
		BaseRef:   pull.GetBase().GetRef(),
		HTMLURL:   pull.GetHTMLURL(),
		CreatedAt: formatTimestamp(pull.CreatedAt),
	}
}
