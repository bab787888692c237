package ci

import (
	"context"
	"sync"

	"github.com/cicd-ai-toolkit/diffscope/pkg/errors"
	"github.com/cicd-ai-toolkit/diffscope/pkg/host"
)

// stubProbe is a canned-answer vcs.Probe for context tests.
type stubProbe struct {
	head     string
	merges   map[string]bool
	exists   map[string]bool
	resolved map[string]string
	subjects map[string]string

	resolveCalls []string
}

func (p *stubProbe) CurrentCommit() (string, error) {
	if p.head == "" {
		return "", errors.VCS("not a git repository", nil)
	}
	return p.head, nil
}

func (p *stubProbe) IsMergeCommit(sha string) (bool, error) {
	return p.merges[sha], nil
}

func (p *stubProbe) ObjectExists(ref string) bool {
	return p.exists[ref]
}

func (p *stubProbe) ResolveRevision(rev string) (string, error) {
	p.resolveCalls = append(p.resolveCalls, rev)
	if sha, ok := p.resolved[rev]; ok {
		return sha, nil
	}
	return "", errors.VCS("failed to resolve revision "+rev, nil)
}

func (p *stubProbe) CommitSubject(sha string) (string, error) {
	if subject, ok := p.subjects[sha]; ok {
		return subject, nil
	}
	return "", errors.VCS("failed to load commit "+sha, nil)
}

// stubHost is a canned-answer host.Client that counts invocations.
type stubHost struct {
	mu    sync.Mutex
	info  *host.PRInfo
	err   error
	calls int

	gotSlug string
	gotPR   int
}

func (h *stubHost) PRInfo(ctx context.Context, slug string, pr int) (*host.PRInfo, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	h.gotSlug = slug
	h.gotPR = pr
	if h.err != nil {
		return nil, h.err
	}
	return h.info, nil
}

func (h *stubHost) callCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}
