// Package github looks up existing contribution activity so the plan
// can warn before stacking commits on days that already show up on the
// graph. The lookup is advisory: no token, no network, no warning.
package github

import (
	"context"
	"net/http"
	"os"

	"golang.org/x/oauth2"
)

const defaultEndpoint = "https://api.github.com/graphql"

// Client talks to the GitHub GraphQL API on behalf of the token owner.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// TokenFromEnv returns the access token, if the environment carries one.
func TokenFromEnv() string {
	return os.Getenv("GITHUB_TOKEN")
}

// NewClient builds a client authenticated with a personal access token.
func NewClient(ctx context.Context, token string) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{
		httpClient: oauth2.NewClient(ctx, src),
		endpoint:   defaultEndpoint,
	}
}
