// Package ci normalizes heterogeneous CI provider environments into a single
// provider-agnostic build context.
//
// Each supported provider (Travis, CircleCI, AppVeyor, Kokoro) has one
// concrete Context implementation that maps that provider's environment
// variable set onto the shared contract. Detect selects the active one.
// Fields that need version control or a hosting-site API resolve lazily and
// are memoized for the context's lifetime.
package ci

import (
	"fmt"
	"strings"

	"github.com/cicd-ai-toolkit/diffscope/pkg/env"
	"github.com/cicd-ai-toolkit/diffscope/pkg/errors"
	"github.com/cicd-ai-toolkit/diffscope/pkg/hostid"
	"github.com/cicd-ai-toolkit/diffscope/pkg/vcs"
)

// Service identifies a CI provider.
type Service string

const (
	ServiceTravis   Service = "travis"
	ServiceCircleCI Service = "circleci"
	ServiceAppVeyor Service = "appveyor"
	ServiceKokoro   Service = "kokoro"
	ServiceNone     Service = "none"
)

// EventType is the provider-reported trigger kind of a build.
type EventType string

const (
	EventPush        EventType = "push"
	EventPullRequest EventType = "pull_request"
	EventAPI         EventType = "api"
	EventCron        EventType = "cron"
	EventUnknown     EventType = "unknown"
)

// Context is the normalized build context for one CI run.
//
// Accessors return an UNSUPPORTED error when the active provider has no
// defined value for the field, either for this build type or by design;
// callers branch on it with errors.IsUnsupported rather than treating it as
// a failure. Lazily computed fields (Diffbase, IsMerge, MergedPR and
// anything API-backed) memoize their first outcome, errors included.
type Context interface {
	// Service identifies the provider this context classifies.
	Service() Service

	// Active reports whether the provider's signature environment was
	// detected. Every other accessor is only meaningful when true.
	Active() bool

	// Branch is the branch name reported by the provider. For PR builds
	// some providers report the base branch the PR targets.
	Branch() (string, error)

	// Tag is the tag under build, or "" outside tag builds.
	Tag() (string, error)

	// InPR reports whether this build was triggered by a pull request.
	InPR() (bool, error)

	// PR is the pull request number. Only defined when InPR is true.
	PR() (int, error)

	// IsMerge reports whether the commit under build is a merge commit
	// (two or more parents), independent of PR status.
	IsMerge() (bool, error)

	// MergedPR is the number of the PR whose merge produced the current
	// commit, for push builds of a merge commit. Returns 0 when the merge
	// subject does not carry a PR number.
	MergedPR() (int, error)

	// EventType is the provider-reported trigger kind. Providers without
	// an explicit event variable infer it from InPR.
	EventType() (EventType, error)

	// RepoURL is the homepage URL of the repository under build.
	RepoURL() (string, error)

	// Slug is the {organization}/{repository} identity of the repository.
	Slug() (string, error)

	// Host is the project-hosting site the repository lives on.
	Host() (hostid.Host, error)

	// Diffbase is the git object (SHA or branch name) the current build
	// should be diffed against. Resolved on first access and memoized.
	Diffbase() (string, error)

	fmt.Stringer
}

// base carries the state and accessors shared by all concrete contexts.
type base struct {
	env   *env.Snapshot
	probe vcs.Probe

	name      string
	service   Service
	active    bool
	branchVar string
	tagVar    string

	head  cell[string]
	merge cell[bool]
}

func (b *base) Service() Service { return b.service }

func (b *base) Active() bool { return b.active }

func (b *base) String() string {
	return fmt.Sprintf("<%s (active=%t)>", b.name, b.active)
}

func (b *base) Branch() (string, error) {
	branch, ok := b.env.Lookup(b.branchVar)
	if !ok || branch == "" {
		return "", errors.Unsupportedf("branch: %s not set in this environment", b.branchVar)
	}
	return branch, nil
}

func (b *base) Tag() (string, error) {
	if b.tagVar == "" {
		return "", nil
	}
	return b.env.Get(b.tagVar), nil
}

func (b *base) IsMerge() (bool, error) {
	return b.merge.resolve(func() (bool, error) {
		sha, err := b.currentCommit()
		if err != nil {
			return false, err
		}
		return b.probe.IsMergeCommit(sha)
	})
}

func (b *base) currentCommit() (string, error) {
	return b.head.resolve(b.probe.CurrentCommit)
}

// inferredEventType is the trigger kind for providers without an explicit
// event variable.
func inferredEventType(inPR bool) EventType {
	if inPR {
		return EventPullRequest
	}
	return EventPush
}

func parsePositiveInt(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	n := 0
	for _, r := range value {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	if n <= 0 {
		return 0, false
	}
	return n, true
}
