package ci

import (
	"context"
	"strings"

	"github.com/cicd-ai-toolkit/diffscope/pkg/env"
	"github.com/cicd-ai-toolkit/diffscope/pkg/errors"
	"github.com/cicd-ai-toolkit/diffscope/pkg/host"
	"github.com/cicd-ai-toolkit/diffscope/pkg/hostid"
	"github.com/cicd-ai-toolkit/diffscope/pkg/vcs"
)

// CircleCI classifies CircleCI builds. CircleCI is host-agnostic and does
// not expose a PR's base SHA in the environment, so PR diffbase resolution
// goes through the hosting-site API. Only GitHub-hosted repositories are
// supported for that path.
type CircleCI struct {
	base

	hostClient host.Client

	identity cell[repoIdentity]
	prInfo   cell[*host.PRInfo]
	diffbase cell[string]
}

// repoIdentity pairs the classified hosting site with the repository slug.
type repoIdentity struct {
	host hostid.Host
	slug string
}

// NewCircleCI builds a CircleCI context from an environment snapshot.
func NewCircleCI(snapshot *env.Snapshot, probe vcs.Probe, hostClient host.Client) *CircleCI {
	return &CircleCI{
		base: base{
			env:       snapshot,
			probe:     probe,
			name:      "CircleCI",
			service:   ServiceCircleCI,
			active:    circleCIActive(snapshot),
			branchVar: env.CircleBranch,
			tagVar:    env.CircleTag,
		},
		hostClient: hostClient,
	}
}

func circleCIActive(snapshot *env.Snapshot) bool {
	return snapshot.GetBool(env.InCircleCI)
}

// InPR reports whether a PR URL is present for this build.
func (c *CircleCI) InPR() (bool, error) {
	prURL, ok := c.env.Lookup(env.CirclePR)
	return ok && prURL != "", nil
}

// PR returns the pull request number, from CIRCLE_PR_NUMBER when the build
// came from a fork, otherwise from the trailing segment of the PR URL.
func (c *CircleCI) PR() (int, error) {
	inPR, _ := c.InPR()
	if !inPR {
		return 0, errors.Unsupported("pr: not a pull request build")
	}
	if raw, ok := c.env.Lookup(env.CirclePRNumber); ok {
		pr, valid := parsePositiveInt(raw)
		if !valid {
			return 0, errors.Validation("invalid "+env.CirclePRNumber+" value: "+raw, nil)
		}
		return pr, nil
	}
	prURL := c.env.Get(env.CirclePR)
	pr, valid := parsePositiveInt(prURL[strings.LastIndex(prURL, "/")+1:])
	if !valid {
		return 0, errors.Validation("cannot extract PR number from URL: "+prURL, nil)
	}
	return pr, nil
}

// EventType is inferred: CircleCI has no explicit event variable.
func (c *CircleCI) EventType() (EventType, error) {
	inPR, _ := c.InPR()
	return inferredEventType(inPR), nil
}

// RepoURL returns the repository homepage reported by CircleCI.
func (c *CircleCI) RepoURL() (string, error) {
	repoURL, ok := c.env.Lookup(env.CircleRepoURL)
	if !ok || repoURL == "" {
		return "", errors.Unsupportedf("repo_url: %s not set in this environment", env.CircleRepoURL)
	}
	return repoURL, nil
}

// Host classifies the hosting site from the repository URL.
func (c *CircleCI) Host() (hostid.Host, error) {
	identity, err := c.repoIdentity()
	if err != nil {
		return hostid.Unknown, err
	}
	return identity.host, nil
}

// Slug returns the {organization}/{repository} extracted from the
// repository URL.
func (c *CircleCI) Slug() (string, error) {
	identity, err := c.repoIdentity()
	if err != nil {
		return "", err
	}
	return identity.slug, nil
}

func (c *CircleCI) repoIdentity() (repoIdentity, error) {
	return c.identity.resolve(func() (repoIdentity, error) {
		repoURL, err := c.RepoURL()
		if err != nil {
			return repoIdentity{}, err
		}
		h, slug, err := hostid.FromRepoURL(repoURL)
		if err != nil {
			return repoIdentity{}, err
		}
		return repoIdentity{host: h, slug: slug}, nil
	})
}

// cachedPRInfo fetches and memoizes the PR metadata blob so repeated field
// access never re-calls the API.
func (c *CircleCI) cachedPRInfo() (*host.PRInfo, error) {
	return c.prInfo.resolve(func() (*host.PRInfo, error) {
		slug, err := c.Slug()
		if err != nil {
			return nil, err
		}
		pr, err := c.PR()
		if err != nil {
			return nil, err
		}
		return c.hostClient.PRInfo(context.Background(), slug, pr)
	})
}

// Diffbase resolves the object to diff against. PR builds on GitHub fetch
// the base SHA from the API; push builds fall back to the previous commit
// since CircleCI exposes no base reference, and never touch the API.
func (c *CircleCI) Diffbase() (string, error) {
	return c.diffbase.resolve(func() (string, error) {
		inPR, _ := c.InPR()
		if !inPR {
			return c.probe.ResolveRevision("HEAD^")
		}
		h, err := c.Host()
		if err != nil {
			return "", err
		}
		if h != hostid.GitHub {
			return "", errors.Unsupported("Diff base currently only supported in a PR from GitHub")
		}
		info, err := c.cachedPRInfo()
		if err != nil {
			return "", err
		}
		return info.BaseSHA, nil
	})
}

// MergedPR is not determined for CircleCI builds.
func (c *CircleCI) MergedPR() (int, error) {
	return 0, errors.Unsupported("merged_pr: not supported on CircleCI")
}
