package ci

import (
	"github.com/cicd-ai-toolkit/diffscope/pkg/errors"
	"github.com/cicd-ai-toolkit/diffscope/pkg/hostid"
)

// None is the context returned when no recognized CI provider is detected.
// Active is false and every other accessor fails with a NOT_IN_CI error.
type None struct{}

func notInCI(field string) error {
	return errors.NotInCI(field + ": no recognized CI provider detected")
}

func (None) Service() Service { return ServiceNone }

func (None) Active() bool { return false }

func (None) String() string { return "<None (active=false)>" }

func (None) Branch() (string, error) { return "", notInCI("branch") }

func (None) Tag() (string, error) { return "", notInCI("tag") }

func (None) InPR() (bool, error) { return false, notInCI("in_pr") }

func (None) PR() (int, error) { return 0, notInCI("pr") }

func (None) IsMerge() (bool, error) { return false, notInCI("is_merge") }

func (None) MergedPR() (int, error) { return 0, notInCI("merged_pr") }

func (None) EventType() (EventType, error) { return EventUnknown, notInCI("event_type") }

func (None) RepoURL() (string, error) { return "", notInCI("repo_url") }

func (None) Slug() (string, error) { return "", notInCI("slug") }

func (None) Host() (hostid.Host, error) { return hostid.Unknown, notInCI("host") }

func (None) Diffbase() (string, error) { return "", notInCI("diffbase") }
