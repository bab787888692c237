package ci

import (
	"context"
	"regexp"

	"github.com/cicd-ai-toolkit/diffscope/pkg/env"
	"github.com/cicd-ai-toolkit/diffscope/pkg/errors"
	"github.com/cicd-ai-toolkit/diffscope/pkg/host"
	"github.com/cicd-ai-toolkit/diffscope/pkg/hostid"
	"github.com/cicd-ai-toolkit/diffscope/pkg/vcs"
)

var (
	pullURLSuffix   = regexp.MustCompile(`/pull/[0-9]+$`)
	commitURLSuffix = regexp.MustCompile(`/commit/.*$`)
)

// Kokoro classifies Kokoro builds. Kokoro jobs run against either GitHub
// (PR and merge builds, identified by URL variables) or Gerrit (change
// requests, identified by GERRIT_* variables); the two carry disjoint
// variable sets.
type Kokoro struct {
	base

	hostClient host.Client

	identity cell[repoIdentity]
	prInfo   cell[*host.PRInfo]
	diffbase cell[string]
}

// NewKokoro builds a Kokoro context from an environment snapshot.
func NewKokoro(snapshot *env.Snapshot, probe vcs.Probe, hostClient host.Client) *Kokoro {
	return &Kokoro{
		base: base{
			env:       snapshot,
			probe:     probe,
			name:      "Kokoro",
			service:   ServiceKokoro,
			active:    kokoroActive(snapshot),
			branchVar: env.KokoroGerritBranch,
		},
		hostClient: hostClient,
	}
}

func kokoroActive(snapshot *env.Snapshot) bool {
	return snapshot.HasPrefix(env.KokoroPrefix)
}

// Branch is only defined for Gerrit changes; GitHub-backed Kokoro builds do
// not report a branch.
func (k *Kokoro) Branch() (string, error) {
	h, err := k.Host()
	if err != nil {
		return "", err
	}
	if h != hostid.Gerrit {
		return "", errors.Unsupported("branch: only defined for Gerrit changes on Kokoro")
	}
	return k.base.Branch()
}

// PR returns the GitHub pull request number or the Gerrit change number.
func (k *Kokoro) PR() (int, error) {
	if pr, ok := parsePositiveInt(k.env.Get(env.KokoroGitHubPRNumber)); ok {
		return pr, nil
	}
	if pr, ok := parsePositiveInt(k.env.Get(env.KokoroGerritChangeNumber)); ok {
		return pr, nil
	}
	return 0, errors.Unsupported("pr: not a pull request build")
}

// InPR reports whether a PR or Gerrit change number is present.
func (k *Kokoro) InPR() (bool, error) {
	_, err := k.PR()
	return err == nil, nil
}

// EventType is inferred: Kokoro has no explicit event variable.
func (k *Kokoro) EventType() (EventType, error) {
	inPR, _ := k.InPR()
	return inferredEventType(inPR), nil
}

// RepoURL derives the repository homepage from the PR or commit URL.
func (k *Kokoro) RepoURL() (string, error) {
	if prURL, ok := k.env.Lookup(env.KokoroGitHubPRURL); ok && prURL != "" {
		return pullURLSuffix.ReplaceAllString(prURL, ""), nil
	}
	if commitURL, ok := k.env.Lookup(env.KokoroGitHubCommitURL); ok && commitURL != "" {
		return commitURLSuffix.ReplaceAllString(commitURL, ""), nil
	}
	return "", errors.Unsupportedf("repo_url: neither %s nor %s set in this environment",
		env.KokoroGitHubPRURL, env.KokoroGitHubCommitURL)
}

// Host classifies the backing site: Gerrit when Gerrit variables are
// present, otherwise from the repository URL.
func (k *Kokoro) Host() (hostid.Host, error) {
	identity, err := k.repoIdentity()
	if err != nil {
		return hostid.Unknown, err
	}
	return identity.host, nil
}

// Slug returns the {organization}/{repository} of a GitHub-backed build.
// Gerrit changes have no slug.
func (k *Kokoro) Slug() (string, error) {
	identity, err := k.repoIdentity()
	if err != nil {
		return "", err
	}
	if identity.slug == "" {
		return "", errors.Unsupported("slug: not defined for Gerrit changes on Kokoro")
	}
	return identity.slug, nil
}

func (k *Kokoro) repoIdentity() (repoIdentity, error) {
	return k.identity.resolve(func() (repoIdentity, error) {
		if _, ok := k.env.Lookup(env.KokoroGerritBranch); ok {
			return repoIdentity{host: hostid.Gerrit}, nil
		}
		if _, ok := k.env.Lookup(env.KokoroGOBCommit); ok {
			return repoIdentity{host: hostid.Gerrit}, nil
		}
		repoURL, err := k.RepoURL()
		if err != nil {
			return repoIdentity{}, err
		}
		h, slug, err := hostid.FromRepoURL(repoURL)
		if err != nil {
			return repoIdentity{}, err
		}
		if h != hostid.GitHub {
			return repoIdentity{}, errors.Unsupportedf("unrecognized Kokoro host for %s", repoURL)
		}
		return repoIdentity{host: h, slug: slug}, nil
	})
}

func (k *Kokoro) cachedPRInfo() (*host.PRInfo, error) {
	return k.prInfo.resolve(func() (*host.PRInfo, error) {
		slug, err := k.Slug()
		if err != nil {
			return nil, err
		}
		pr, err := k.PR()
		if err != nil {
			return nil, err
		}
		return k.hostClient.PRInfo(context.Background(), slug, pr)
	})
}

// Diffbase resolves the object to diff against. Gerrit changes are always a
// single commit, so the previous commit is the base; GitHub PR builds fetch
// the base SHA from the API.
func (k *Kokoro) Diffbase() (string, error) {
	return k.diffbase.resolve(func() (string, error) {
		h, err := k.Host()
		if err != nil {
			return "", err
		}
		if h == hostid.Gerrit {
			return "HEAD~1", nil
		}
		inPR, _ := k.InPR()
		if !inPR {
			return "", errors.Unsupported("Diff base currently only supported in a PR from GitHub")
		}
		info, err := k.cachedPRInfo()
		if err != nil {
			return "", err
		}
		return info.BaseSHA, nil
	})
}

// MergedPR is not determined for Kokoro builds.
func (k *Kokoro) MergedPR() (int, error) {
	return 0, errors.Unsupported("merged_pr: not supported on Kokoro")
}
