package ci

import (
	"github.com/cicd-ai-toolkit/diffscope/pkg/env"
	"github.com/cicd-ai-toolkit/diffscope/pkg/host"
	"github.com/cicd-ai-toolkit/diffscope/pkg/vcs"
)

// Options carries the collaborators a context needs. Zero-value fields are
// filled with production defaults; tests inject fixtures instead of
// mutating process state.
type Options struct {
	// Env is the environment snapshot to classify. Defaults to a capture
	// of the current process environment.
	Env *env.Snapshot

	// VCS answers local repository queries. Defaults to a go-git probe
	// rooted at the working directory.
	VCS vcs.Probe

	// Host fetches PR metadata. Defaults to a GitHub client authenticated
	// with GITHUB_OAUTH_TOKEN from the snapshot.
	Host host.Client
}

func (o *Options) fillDefaults() {
	if o.Env == nil {
		o.Env = env.Capture()
	}
	if o.VCS == nil {
		o.VCS = vcs.NewGitProbe(".")
	}
	if o.Host == nil {
		o.Host = host.NewGitHubClient(o.Env.Get(env.GitHubToken))
	}
}

// Detect inspects the environment snapshot and returns the context of the
// provider running this build. Providers are checked in a fixed order
// (Travis, CircleCI, AppVeyor, Kokoro); detection reads only the snapshot,
// never version control or the network. When no provider matches, the
// inactive None context is returned.
//
// Callers construct exactly one context per process and share it; lazily
// resolved fields are memoized per context.
func Detect(opts Options) Context {
	opts.fillDefaults()

	candidates := []Context{
		NewTravis(opts.Env, opts.VCS),
		NewCircleCI(opts.Env, opts.VCS, opts.Host),
		NewAppVeyor(opts.Env, opts.VCS),
		NewKokoro(opts.Env, opts.VCS, opts.Host),
	}
	for _, candidate := range candidates {
		if candidate.Active() {
			return candidate
		}
	}
	return None{}
}
