package domain

import (
	"context"
	"fmt"

	"github.com/google/go-github/v66/github"
	"github.com/okulweb/github-mcp/internal/services/mcp/dispatch"
	"github.com/okulweb/github-mcp/internal/services/mcp/schema"
)

// IssueSummary is the projected view of an issue in listings.
type IssueSummary struct {
	Number    int      `json:"number"`
	Title     string   `json:"title"`
	State     string   `json:"state"`
	User      string   `json:"user,omitempty"`
	Comments  int      `json:"comments"`
	Labels    []string `json:"labels,omitempty"`
	HTMLURL   string   `json:"html_url"`
	CreatedAt string   `json:"created_at,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

// IssueCreated is the deliberately narrow projection returned by issue
// creation: number, title, state, and URL only.
type IssueCreated struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
}

// ListIssuesOperation lists issues for a repository.
func ListIssuesOperation(provider Provider) dispatch.Operation {
	return dispatch.Operation{
		Name:        "list_issues",
		Description: "List issues for a repository",
		Schema: schema.Schema{Fields: []schema.Field{
			ownerField(),
			repoField(),
			stateField(),
			perPageField(),
			pageField(),
		}},
		Handler: func(ctx context.Context, params schema.Values) (any, error) {
			issues, err := provider.ListIssues(ctx, params.String("owner"), params.String("repo"), params.String("state"), params.Int("per_page"), params.Int("page"))
			if err != nil {
				return nil, fmt.Errorf("issue list failed: %w", err)
			}
			summaries := make([]IssueSummary, 0, len(issues))
			for _, issue := range issues {
				summaries = append(summaries, issueSummary(issue))
			}
			return summaries, nil
		},
	}
}

// CreateIssueOperation creates an issue in a repository. Absent body and
// labels stay absent on the provider call; they are never sent as empty
// values.
func CreateIssueOperation(provider Provider) dispatch.Operation {
	return dispatch.Operation{
		Name:        "create_issue",
		Description: "Create a new issue in a repository",
		Schema: schema.Schema{Fields: []schema.Field{
			ownerField(),
			repoField(),
			{Name: "title", Kind: schema.KindString, Required: true, Description: "issue title"},
			{Name: "body", Kind: schema.KindString, Description: "issue body text"},
			{Name: "labels", Kind: schema.KindStringArray, Description: "labels to apply"},
		}},
		Handler: func(ctx context.Context, params schema.Values) (any, error) {
			var body *string
			if params.Has("body") {
				value := params.String("body")
				body = &value
			}
			var labels []string
			if params.Has("labels") {
				labels = params.Strings("labels")
			}
			issue, err := provider.CreateIssue(ctx, params.String("owner"), params.String("repo"), params.String("title"), body, labels)
			if err != nil {
				return nil, fmt.Errorf("issue create failed: %w", err)
			}
			if issue == nil {
				return nil, fmt.Errorf("issue create response is missing")
			}
			return IssueCreated{
				Number:  issue.GetNumber(),
				Title:   issue.GetTitle(),
				State:   issue.GetState(),
				HTMLURL: issue.GetHTMLURL(),
			}, nil
		},
	}
}

func issueSummary(issue *github.Issue) IssueSummary {
	var labels []string
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}
	return IssueSummary{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		State:     issue.GetState(),
		User:      issue.GetUser().GetLogin(),
		Comments:  issue.GetComments(),
		Labels:    labels,
		HTMLURL:   issue.GetHTMLURL(),
		CreatedAt: formatTimestamp(issue.CreatedAt),
		UpdatedAt: formatTimestamp(issue.UpdatedAt),
	}
}
