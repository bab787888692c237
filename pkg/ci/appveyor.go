package ci

import (
	"github.com/cicd-ai-toolkit/diffscope/pkg/env"
	"github.com/cicd-ai-toolkit/diffscope/pkg/errors"
	"github.com/cicd-ai-toolkit/diffscope/pkg/hostid"
	"github.com/cicd-ai-toolkit/diffscope/pkg/vcs"
)

// AppVeyor classifies AppVeyor builds. AppVeyor's variable set carries no
// usable base reference and no PR-base API support, so Diffbase, PR and
// MergedPR are unsupported by design; branch, tag, host and merge detection
// resolve normally.
type AppVeyor struct {
	base
}

// NewAppVeyor builds an AppVeyor context from an environment snapshot.
func NewAppVeyor(snapshot *env.Snapshot, probe vcs.Probe) *AppVeyor {
	return &AppVeyor{
		base: base{
			env:       snapshot,
			probe:     probe,
			name:      "AppVeyor",
			service:   ServiceAppVeyor,
			active:    appVeyorActive(snapshot),
			branchVar: env.AppVeyorBranch,
			tagVar:    env.AppVeyorTag,
		},
	}
}

func appVeyorActive(snapshot *env.Snapshot) bool {
	return snapshot.GetBool(env.InAppVeyor)
}

// InPR reports whether AppVeyor set a pull request number for this build.
func (a *AppVeyor) InPR() (bool, error) {
	raw, ok := a.env.Lookup(env.AppVeyorPRNumber)
	return ok && raw != "", nil
}

// PR is not reliably carried by the AppVeyor variable set.
func (a *AppVeyor) PR() (int, error) {
	return 0, errors.Unsupported("pr: not supported on AppVeyor")
}

// MergedPR is not supported on AppVeyor.
func (a *AppVeyor) MergedPR() (int, error) {
	return 0, errors.Unsupported("merged_pr: not supported on AppVeyor")
}

// EventType is inferred: AppVeyor has no explicit event variable.
func (a *AppVeyor) EventType() (EventType, error) {
	inPR, _ := a.InPR()
	return inferredEventType(inPR), nil
}

// Host maps APPVEYOR_REPO_PROVIDER onto the hosting-site enum.
func (a *AppVeyor) Host() (hostid.Host, error) {
	return hostid.ParseAppVeyor(a.env.Get(env.AppVeyorRepoProvider))
}

// RepoURL is not exposed by the AppVeyor variable set.
func (a *AppVeyor) RepoURL() (string, error) {
	return "", errors.Unsupported("repo_url: not supported on AppVeyor")
}

// Slug is not exposed by the AppVeyor variable set.
func (a *AppVeyor) Slug() (string, error) {
	return "", errors.Unsupported("slug: not supported on AppVeyor")
}

// Diffbase is unsupported on AppVeyor regardless of build type.
func (a *AppVeyor) Diffbase() (string, error) {
	return "", errors.Unsupported("diffbase: not supported on AppVeyor")
}
