package host

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v66/github"

	"github.com/cicd-ai-toolkit/diffscope/pkg/errors"
)

// GitHubClient implements Client against the GitHub REST API.
type GitHubClient struct {
	client *github.Client
}

// NewGitHubClient creates a GitHub-backed client. An empty token makes
// unauthenticated requests, which are subject to aggressive rate limiting on
// shared CI infrastructure.
func NewGitHubClient(token string) *GitHubClient {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return &GitHubClient{client: client}
}

// SetBaseURL points the client at a GitHub Enterprise instance.
func (c *GitHubClient) SetBaseURL(baseURL string) error {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return errors.Config(fmt.Sprintf("invalid GitHub base URL: %s", baseURL), err)
	}
	c.client.BaseURL = parsed
	return nil
}

// PRInfo fetches base SHA, base ref and merged state for a pull request.
func (c *GitHubClient) PRInfo(ctx context.Context, slug string, number int) (*PRInfo, error) {
	owner, repo, ok := strings.Cut(slug, "/")
	if !ok || owner == "" || repo == "" {
		return nil, errors.Validation(fmt.Sprintf("invalid repository slug: %q", slug), nil)
	}
	if number <= 0 {
		return nil, errors.Validation(fmt.Sprintf("invalid pull request number: %d", number), nil)
	}

	pr, _, err := c.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, errors.HostAPI(fmt.Sprintf("failed to fetch PR %s#%d", slug, number), err)
	}
	if pr.GetBase().GetSHA() == "" {
		return nil, errors.HostAPI(fmt.Sprintf("PR %s#%d payload missing base SHA", slug, number), nil)
	}

	return &PRInfo{
		BaseSHA: pr.GetBase().GetSHA(),
		BaseRef: pr.GetBase().GetRef(),
		Merged:  pr.GetMerged(),
	}, nil
}
