package vcs

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/cicd-ai-toolkit/diffscope/pkg/errors"
)

// GitProbe implements Probe against a local git repository via go-git.
// The repository is opened on first use and the handle is reused for the
// probe's lifetime.
type GitProbe struct {
	path string

	openOnce sync.Once
	repo     *git.Repository
	openErr  error
}

// NewGitProbe creates a probe rooted at path. The .git directory is located
// by walking up from path, so any directory inside a checkout works.
func NewGitProbe(path string) *GitProbe {
	if path == "" {
		path = "."
	}
	return &GitProbe{path: path}
}

func (p *GitProbe) open() (*git.Repository, error) {
	p.openOnce.Do(func() {
		repo, err := git.PlainOpenWithOptions(p.path, &git.PlainOpenOptions{
			DetectDotGit: true,
		})
		if err != nil {
			p.openErr = errors.VCS(fmt.Sprintf("not a git repository: %s", p.path), err)
			return
		}
		p.repo = repo
	})
	return p.repo, p.openErr
}

// CurrentCommit returns the SHA of HEAD.
func (p *GitProbe) CurrentCommit() (string, error) {
	repo, err := p.open()
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", errors.VCS("failed to resolve HEAD", err)
	}
	return head.Hash().String(), nil
}

// IsMergeCommit reports whether the commit has two or more parents.
func (p *GitProbe) IsMergeCommit(sha string) (bool, error) {
	repo, err := p.open()
	if err != nil {
		return false, err
	}
	commit, err := repo.CommitObject(plumbing.NewHash(sha))
	if err != nil {
		return false, errors.VCS(fmt.Sprintf("failed to load commit %s", sha), err)
	}
	return commit.NumParents() >= 2, nil
}

// ObjectExists reports whether ref resolves to a commit in the repository.
func (p *GitProbe) ObjectExists(ref string) bool {
	repo, err := p.open()
	if err != nil {
		return false
	}
	_, err = repo.ResolveRevision(plumbing.Revision(ref))
	return err == nil
}

// ResolveRevision resolves a revision expression to a commit SHA.
func (p *GitProbe) ResolveRevision(rev string) (string, error) {
	repo, err := p.open()
	if err != nil {
		return "", err
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", errors.VCS(fmt.Sprintf("failed to resolve revision %q", rev), err)
	}
	return hash.String(), nil
}

// CommitSubject returns the first line of the commit message.
func (p *GitProbe) CommitSubject(sha string) (string, error) {
	repo, err := p.open()
	if err != nil {
		return "", err
	}
	commit, err := repo.CommitObject(plumbing.NewHash(sha))
	if err != nil {
		return "", errors.VCS(fmt.Sprintf("failed to load commit %s", sha), err)
	}
	return commitSubject(commit), nil
}

func commitSubject(c *object.Commit) string {
	subject, _, _ := strings.Cut(c.Message, "\n")
	return strings.TrimSpace(subject)
}
