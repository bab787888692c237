package ci

import (
	"testing"

	"github.com/cicd-ai-toolkit/diffscope/pkg/env"
	"github.com/cicd-ai-toolkit/diffscope/pkg/errors"
	"github.com/cicd-ai-toolkit/diffscope/pkg/host"
	"github.com/cicd-ai-toolkit/diffscope/pkg/hostid"
)

func TestKokoroGerritChange(t *testing.T) {
	snapshot := env.FromMap(map[string]string{
		"KOKORO_JOB_NAME":             "library/presubmit",
		"KOKORO_GERRIT_BRANCH":        "main",
		"KOKORO_GERRIT_CHANGE_NUMBER": "31415",
	})
	hostClient := &stubHost{}
	kokoro := NewKokoro(snapshot, &stubProbe{head: "aaa111"}, hostClient)

	if !kokoro.Active() {
		t.Fatal("expected active context")
	}

	h, err := kokoro.Host()
	if err != nil || h != hostid.Gerrit {
		t.Errorf("Host() = %q, %v, want gerrit, nil", h, err)
	}

	branch, err := kokoro.Branch()
	if err != nil || branch != "main" {
		t.Errorf("Branch() = %q, %v, want main, nil", branch, err)
	}

	pr, err := kokoro.PR()
	if err != nil || pr != 31415 {
		t.Errorf("PR() = %d, %v, want 31415, nil", pr, err)
	}

	// A Gerrit change is a single commit on top of its base.
	diffbase, err := kokoro.Diffbase()
	if err != nil || diffbase != "HEAD~1" {
		t.Errorf("Diffbase() = %q, %v, want HEAD~1, nil", diffbase, err)
	}
	if hostClient.callCount() != 0 {
		t.Errorf("host API called %d times for a Gerrit change, want 0", hostClient.callCount())
	}

	if _, err := kokoro.Slug(); !errors.IsUnsupported(err) {
		t.Errorf("Slug() error = %v, want unsupported", err)
	}
}

func TestKokoroGitHubPRBuild(t *testing.T) {
	snapshot := env.FromMap(map[string]string{
		"KOKORO_JOB_NAME":                   "library/presubmit",
		"KOKORO_GITHUB_PULL_REQUEST_NUMBER": "88",
		"KOKORO_GITHUB_PULL_REQUEST_URL":    "https://github.com/organization/repository/pull/88",
	})
	hostClient := &stubHost{info: &host.PRInfo{BaseSHA: "base555"}}
	kokoro := NewKokoro(snapshot, &stubProbe{head: "aaa111"}, hostClient)

	repoURL, err := kokoro.RepoURL()
	if err != nil || repoURL != "https://github.com/organization/repository" {
		t.Errorf("RepoURL() = %q, %v", repoURL, err)
	}

	slug, err := kokoro.Slug()
	if err != nil || slug != "organization/repository" {
		t.Errorf("Slug() = %q, %v", slug, err)
	}

	pr, err := kokoro.PR()
	if err != nil || pr != 88 {
		t.Errorf("PR() = %d, %v, want 88, nil", pr, err)
	}

	diffbase, err := kokoro.Diffbase()
	if err != nil || diffbase != "base555" {
		t.Errorf("Diffbase() = %q, %v, want base555, nil", diffbase, err)
	}
	if hostClient.gotSlug != "organization/repository" || hostClient.gotPR != 88 {
		t.Errorf("host client called with %q #%d", hostClient.gotSlug, hostClient.gotPR)
	}

	if _, err := kokoro.Branch(); !errors.IsUnsupported(err) {
		t.Errorf("Branch() error = %v, want unsupported", err)
	}
}

func TestKokoroGitHubMergeBuild(t *testing.T) {
	snapshot := env.FromMap(map[string]string{
		"KOKORO_JOB_NAME":          "library/continuous",
		"KOKORO_GITHUB_COMMIT_URL": "https://github.com/organization/repository/commit/abc123",
	})
	kokoro := NewKokoro(snapshot, &stubProbe{head: "abc123"}, &stubHost{})

	repoURL, err := kokoro.RepoURL()
	if err != nil || repoURL != "https://github.com/organization/repository" {
		t.Errorf("RepoURL() = %q, %v", repoURL, err)
	}

	inPR, err := kokoro.InPR()
	if err != nil || inPR {
		t.Errorf("InPR() = %v, %v, want false, nil", inPR, err)
	}

	if _, err := kokoro.Diffbase(); !errors.IsUnsupported(err) {
		t.Errorf("Diffbase() error = %v, want unsupported", err)
	}
}

func TestKokoroNoRepoSignal(t *testing.T) {
	snapshot := env.FromMap(map[string]string{"KOKORO_JOB_NAME": "library/continuous"})
	kokoro := NewKokoro(snapshot, &stubProbe{head: "aaa111"}, &stubHost{})

	if !kokoro.Active() {
		t.Fatal("expected active context")
	}
	if _, err := kokoro.Host(); !errors.IsUnsupported(err) {
		t.Errorf("Host() error = %v, want unsupported", err)
	}
}
