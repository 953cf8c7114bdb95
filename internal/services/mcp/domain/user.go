package domain

import (
	"context"
	"fmt"

	"github.com/okulweb/github-mcp/internal/services/mcp/dispatch"
	"github.com/okulweb/github-mcp/internal/services/mcp/schema"
)

// UserProfile is the projected view of the authenticated user.
type UserProfile struct {
	Login       string `json:"login"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	HTMLURL     string `json:"html_url"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// AuthenticatedUserOperation fetches the authenticated user's profile.
func AuthenticatedUserOperation(provider Provider) dispatch.Operation {
	return dispatch.Operation{
		Name:        "get_authenticated_user",
		Description: "Get the profile of the authenticated GitHub user",
		Schema:      schema.Schema{},
		Handler: func(ctx context.Context, _ schema.Values) (any, error) {
			user, err := provider.AuthenticatedUser(ctx)
			if err != nil {
				return nil, fmt.Errorf("user fetch failed: %w", err)
			}
			if user == nil {
				return nil, fmt.Errorf("user response is missing")
			}
			return UserProfile{
				Login:       user.GetLogin(),
				Name:        user.GetName(),
				Email:       user.GetEmail(),
				Bio:         user.GetBio(),
				Company:     user.GetCompany(),
				Location:    user.GetLocation(),
				PublicRepos: user.GetPublicRepos(),
				Followers:   user.GetFollowers(),
				Following:   user.GetFollowing(),
				HTMLURL:     user.GetHTMLURL(),
				CreatedAt:   formatTimestamp(user.CreatedAt),
			}, nil
		},
	}
}
