// Package hostid classifies which project-hosting site a repository lives on.
//
// Some CI providers are host-agnostic (CircleCI and AppVeyor run builds for
// repositories on several hosting sites), so the hosting site is a separate
// axis from the provider itself.
package hostid

import (
	"fmt"
	"strings"

	giturl "github.com/kubescape/go-git-url"

	"github.com/cicd-ai-toolkit/diffscope/pkg/errors"
)

// Host identifies a project-hosting site.
type Host string

const (
	GitHub    Host = "github"
	Bitbucket Host = "bitbucket"
	GitLab    Host = "gitlab"
	Gerrit    Host = "gerrit"
	Kiln      Host = "kiln"
	VSO       Host = "vso"
	Unknown   Host = "unknown"
)

// appveyorHosts are the values AppVeyor reports in APPVEYOR_REPO_PROVIDER.
var appveyorHosts = map[string]Host{
	"github":    GitHub,
	"bitbucket": Bitbucket,
	"kiln":      Kiln,
	"vso":       VSO,
	"gitlab":    GitLab,
}

// ParseAppVeyor maps an APPVEYOR_REPO_PROVIDER value onto a Host.
func ParseAppVeyor(value string) (Host, error) {
	host, ok := appveyorHosts[strings.ToLower(value)]
	if !ok {
		return Unknown, errors.Validation(
			fmt.Sprintf("invalid repo provider %q, expected one of github, bitbucket, kiln, vso, gitlab", value), nil)
	}
	return host, nil
}

// FromRepoURL classifies a repository URL and extracts its slug
// ({owner}/{repository}). Both https and ssh remote forms are accepted.
func FromRepoURL(repoURL string) (Host, string, error) {
	if repoURL == "" {
		return Unknown, "", errors.Validation("repository URL is empty", nil)
	}
	parsed, err := giturl.NewGitURL(repoURL)
	if err != nil {
		return Unknown, "", errors.Validation(fmt.Sprintf("unrecognized repository URL: %s", repoURL), err)
	}

	slug := parsed.GetOwnerName() + "/" + parsed.GetRepoName()
	switch {
	case strings.Contains(parsed.GetHostName(), "github"):
		return GitHub, slug, nil
	case strings.Contains(parsed.GetHostName(), "bitbucket"):
		return Bitbucket, slug, nil
	case strings.Contains(parsed.GetHostName(), "gitlab"):
		return GitLab, slug, nil
	default:
		return Unknown, slug, nil
	}
}
