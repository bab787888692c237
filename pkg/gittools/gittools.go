// Package gittools lists files via the git binary for diff scoping.
//
// This is the collaborator that turns a resolved diffbase into the set of
// changed files; the context classifiers themselves never compute diffs.
package gittools

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cicd-ai-toolkit/diffscope/pkg/errors"
)

// validGitRefPattern matches safe git refs (branch names, tags, commits)
var validGitRefPattern = regexp.MustCompile(`^[a-zA-Z0-9/_\-\.\^~]+$`)

// dangerousShellChars contains characters that must be rejected to prevent shell injection
var dangerousShellChars = []string{"|", "&", ";", "$", "(", ")", "`", "{", "}", ">", "<", "\n", "\t"}

// sanitizeGitRef validates that a git ref is safe to use in commands
func sanitizeGitRef(ref string) error {
	if ref == "" {
		return errors.Validation("git ref cannot be empty", nil)
	}
	if strings.Contains(ref, "\\") {
		return errors.Validation("invalid git ref: contains backslash", nil)
	}
	for _, ch := range dangerousShellChars {
		if strings.Contains(ref, ch) {
			return errors.Validation(fmt.Sprintf("invalid git ref: contains dangerous character %q", ch), nil)
		}
	}
	if !validGitRefPattern.MatchString(ref) {
		return errors.Validation("invalid git ref: contains invalid characters", nil)
	}
	return nil
}

// Tools runs git queries rooted at a repository directory.
type Tools struct {
	dir     string
	exclude []string
}

// New creates Tools for the repository containing dir.
func New(dir string, exclude []string) *Tools {
	if dir == "" {
		dir = "."
	}
	return &Tools{dir: dir, exclude: exclude}
}

func (t *Tools) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = t.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", errors.VCS("git invocation cancelled", ctx.Err())
		}
		return "", errors.VCS(fmt.Sprintf("git %s failed: %s", args[0], strings.TrimSpace(stderr.String())), err)
	}
	return stdout.String(), nil
}

// Root returns the top-level directory of the checkout.
func (t *Tools) Root(ctx context.Context) (string, error) {
	out, err := t.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ChangedFiles lists the files that differ between two revisions, with
// exclude patterns filtered out.
func (t *Tools) ChangedFiles(ctx context.Context, base, head string) ([]string, error) {
	if err := sanitizeGitRef(base); err != nil {
		return nil, err
	}
	if err := sanitizeGitRef(head); err != nil {
		return nil, err
	}

	out, err := t.run(ctx, "diff", "--name-only", "--no-color", base, head)
	if err != nil {
		return nil, err
	}
	return t.splitFiles(out), nil
}

// CheckedInFiles lists every file tracked in the repository.
func (t *Tools) CheckedInFiles(ctx context.Context) ([]string, error) {
	root, err := t.Root(ctx)
	if err != nil {
		return nil, err
	}
	out, err := t.run(ctx, "ls-files", root)
	if err != nil {
		return nil, err
	}
	return t.splitFiles(out), nil
}

func (t *Tools) splitFiles(out string) []string {
	var files []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !t.shouldExclude(line) {
			files = append(files, line)
		}
	}
	return files
}

// shouldExclude checks if a path matches any exclude pattern.
func (t *Tools) shouldExclude(path string) bool {
	for _, pattern := range t.exclude {
		if matched, err := filepath.Match(pattern, path); err == nil && matched {
			return true
		}
		if strings.HasPrefix(path, pattern+"/") {
			return true
		}
		if path == pattern {
			return true
		}
	}
	return false
}
