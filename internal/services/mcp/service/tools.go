package service

import (
	"github.com/okulweb/github-mcp/internal/services/mcp/dispatch"
	"github.com/okulweb/github-mcp/internal/services/mcp/domain"
)

type registrationModule struct {
	name     string
	register func(*dispatch.Registry) error
}

const (
	userToolsModuleName        = "user-tools"
	repositoryToolsModuleName  = "repository-tools"
	issueToolsModuleName       = "issue-tools"
	pullRequestToolsModuleName = "pull-request-tools"
	contentToolsModuleName     = "content-tools"
	searchToolsModuleName      = "search-tools"
)

// newRegistrationModules groups the operation catalogue by API surface.
// Module order is registration order, which is the order tools/list reports.
func newRegistrationModules(provider domain.Provider) []registrationModule {
	return []registrationModule{
		{
			name: userToolsModuleName,
			register: func(registry *dispatch.Registry) error {
				return registerOperations(registry,
					domain.AuthenticatedUserOperation(provider),
				)
			},
		},
		{
			name: repositoryToolsModuleName,
			register: func(registry *dispatch.Registry) error {
				return registerOperations(registry,
					domain.ListRepositoriesOperation(provider),
					domain.GetRepositoryOperation(provider),
					domain.CreateRepositoryOperation(provider),
				)
			},
		},
		{
			name: issueToolsModuleName,
			register: func(registry *dispatch.Registry) error {
				return registerOperations(registry,
					domain.ListIssuesOperation(provider),
					domain.CreateIssueOperation(provider),
				)
			},
		},
		{
			name: pullRequestToolsModuleName,
			register: func(registry *dispatch.Registry) error {
				return registerOperations(registry,
					domain.ListPullRequestsOperation(provider),
				)
			},
		},
		{
			name: contentToolsModuleName,
			register: func(registry *dispatch.Registry) error {
				return registerOperations(registry,
					domain.GetFileContentsOperation(provider),
				)
			},
		},
		{
			name: searchToolsModuleName,
			register: func(registry *dispatch.Registry) error {
				return registerOperations(registry,
					domain.SearchRepositoriesOperation(provider),
					domain.SearchCodeOperation(provider),
				)
			},
		},
	}
}

func registerOperations(registry *dispatch.Registry, ops ...dispatch.Operation) error {
	for _, op := range ops {
		if err := registry.Register(op); err != nil {
			return err
		}
	}
	return nil
}
