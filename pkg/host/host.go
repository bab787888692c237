// Package host fetches pull request metadata from project-hosting APIs.
package host

import "context"

// PRInfo is the subset of pull request metadata needed for diffbase
// resolution.
type PRInfo struct {
	// BaseSHA is the commit the pull request is based on.
	BaseSHA string

	// BaseRef is the name of the branch the pull request targets.
	BaseRef string

	// Merged reports whether the pull request has been merged.
	Merged bool
}

// Client retrieves pull request metadata for a repository slug. A Client is
// only consulted when the provider does not already expose the base SHA in
// its environment.
//
// Authentication, retries and timeouts are the implementation's concern;
// failures surface as HostAPI errors.
type Client interface {
	PRInfo(ctx context.Context, slug string, number int) (*PRInfo, error)
}
