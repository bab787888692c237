// Package vcs wraps local version-control queries used during build-context
// classification.
package vcs

// Probe answers queries about the local repository. CI classifiers depend on
// this interface rather than a concrete implementation so tests can supply
// fixtures.
type Probe interface {
	// CurrentCommit returns the SHA of the commit currently checked out.
	CurrentCommit() (string, error)

	// IsMergeCommit reports whether the given commit has two or more parents.
	IsMergeCommit(sha string) (bool, error)

	// ObjectExists reports whether a ref resolves to an object in the
	// local repository. Used to validate diffbase candidates before
	// returning them.
	ObjectExists(ref string) bool

	// ResolveRevision resolves a revision expression (e.g. "HEAD^") to a
	// commit SHA.
	ResolveRevision(rev string) (string, error)

	// CommitSubject returns the first line of a commit's message.
	CommitSubject(sha string) (string, error)
}
