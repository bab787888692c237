package ci

import (
	"regexp"
	"strings"

	"github.com/cicd-ai-toolkit/diffscope/pkg/env"
	"github.com/cicd-ai-toolkit/diffscope/pkg/errors"
	"github.com/cicd-ai-toolkit/diffscope/pkg/hostid"
	"github.com/cicd-ai-toolkit/diffscope/pkg/vcs"
)

// mergeSubjectPattern matches the subject line GitHub writes on PR merge
// commits: "Merge pull request #123 from fork/branch".
var mergeSubjectPattern = regexp.MustCompile(`^Merge pull request #(\d+)`)

// Travis classifies Travis CI builds. Travis builds GitHub repositories
// only, and distinguishes build types explicitly via TRAVIS_EVENT_TYPE.
type Travis struct {
	base

	diffbase cell[string]
	mergedPR cell[int]
}

// NewTravis builds a Travis context from an environment snapshot.
func NewTravis(snapshot *env.Snapshot, probe vcs.Probe) *Travis {
	return &Travis{
		base: base{
			env:       snapshot,
			probe:     probe,
			name:      "Travis",
			service:   ServiceTravis,
			active:    travisActive(snapshot),
			branchVar: env.TravisBranch,
			tagVar:    env.TravisTag,
		},
	}
}

func travisActive(snapshot *env.Snapshot) bool {
	return snapshot.GetBool(env.InTravis)
}

// EventType maps TRAVIS_EVENT_TYPE onto the closed trigger-kind set.
func (t *Travis) EventType() (EventType, error) {
	value := t.env.Get(env.TravisEventType)
	switch value {
	case "push":
		return EventPush, nil
	case "pull_request":
		return EventPullRequest, nil
	case "api":
		return EventAPI, nil
	case "cron":
		return EventCron, nil
	default:
		return EventUnknown, errors.Validation("invalid "+env.TravisEventType+" value: "+value, nil)
	}
}

// InPR reports whether this is a pull request build.
func (t *Travis) InPR() (bool, error) {
	et, err := t.EventType()
	if err != nil {
		return false, err
	}
	return et == EventPullRequest, nil
}

// PR returns the pull request number of a PR build.
func (t *Travis) PR() (int, error) {
	inPR, err := t.InPR()
	if err != nil {
		return 0, err
	}
	if !inPR {
		return 0, errors.Unsupported("pr: not a pull request build")
	}
	pr, ok := parsePositiveInt(t.env.Get(env.TravisPR))
	if !ok {
		return 0, errors.Validation("invalid "+env.TravisPR+" value: "+t.env.Get(env.TravisPR), nil)
	}
	return pr, nil
}

// Slug returns the {organization}/{repository} under build.
func (t *Travis) Slug() (string, error) {
	slug, ok := t.env.Lookup(env.TravisSlug)
	if !ok || slug == "" {
		return "", errors.Unsupportedf("slug: %s not set in this environment", env.TravisSlug)
	}
	return slug, nil
}

// RepoURL returns the repository homepage. Travis builds GitHub
// repositories, so the URL is derived from the slug.
func (t *Travis) RepoURL() (string, error) {
	slug, err := t.Slug()
	if err != nil {
		return "", err
	}
	return "https://github.com/" + slug, nil
}

// Host reports the hosting site, which is always GitHub on Travis.
func (t *Travis) Host() (hostid.Host, error) {
	return hostid.GitHub, nil
}

// Diffbase resolves the object to diff against. PR builds diff against the
// PR's target branch, which Travis exposes directly; push builds diff
// against the pre-push commit.
func (t *Travis) Diffbase() (string, error) {
	return t.diffbase.resolve(func() (string, error) {
		et, err := t.EventType()
		if err != nil {
			return "", err
		}
		switch et {
		case EventPullRequest:
			return t.Branch()
		case EventPush:
			return t.pushBuildBase()
		default:
			return "", errors.Unsupportedf("diffbase undefined for event type %q", et)
		}
	})
}

// pushBuildBase picks the diffbase for a push build. For a merge commit the
// start of TRAVIS_COMMIT_RANGE is the first parent; it is validated against
// the local repository since a force push can leave the range start
// unreachable. Otherwise the previous commit is used.
func (t *Travis) pushBuildBase() (string, error) {
	isMerge, err := t.IsMerge()
	if err != nil {
		return "", err
	}
	if start, ok := rangeStart(t.env.Get(env.TravisRange)); ok && isMerge && t.probe.ObjectExists(start) {
		return start, nil
	}
	return t.probe.ResolveRevision("HEAD^")
}

// rangeStart extracts the start object of a TRAVIS_COMMIT_RANGE value
// ("start...end" on merge builds, "start..end" otherwise).
func rangeStart(commitRange string) (string, bool) {
	if commitRange == "" {
		return "", false
	}
	start, _, found := strings.Cut(commitRange, "...")
	if !found {
		start, _, found = strings.Cut(commitRange, "..")
	}
	start = strings.TrimSpace(start)
	if !found || start == "" {
		return "", false
	}
	return start, true
}

// MergedPR parses the PR number out of the merge-commit subject on push
// builds. Returns 0 when the subject is not a standard GitHub merge
// message.
func (t *Travis) MergedPR() (int, error) {
	return t.mergedPR.resolve(func() (int, error) {
		inPR, err := t.InPR()
		if err != nil {
			return 0, err
		}
		if inPR {
			return 0, errors.Unsupported("merged_pr: not defined for pull request builds")
		}
		isMerge, err := t.IsMerge()
		if err != nil {
			return 0, err
		}
		if !isMerge {
			return 0, nil
		}
		sha, err := t.currentCommit()
		if err != nil {
			return 0, err
		}
		subject, err := t.probe.CommitSubject(sha)
		if err != nil {
			return 0, err
		}
		return mergedPRFromSubject(subject), nil
	})
}

func mergedPRFromSubject(subject string) int {
	m := mergeSubjectPattern.FindStringSubmatch(subject)
	if m == nil {
		return 0
	}
	pr, ok := parsePositiveInt(m[1])
	if !ok {
		return 0
	}
	return pr
}
