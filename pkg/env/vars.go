package env

// Comprehensive list of environment variables read by diffscope.
//
// These variables are core to build-context classification: each provider's
// signature variable drives detection, and the rest feed the normalized
// context fields. See the Travis, AppVeyor and CircleCI environment variable
// references for the authoritative meaning of each.

const (
	// InTravis indicates if running in Travis.
	InTravis = "TRAVIS"

	// TravisPR indicates which Travis pull request we are in.
	// An integer when in a pull request, "false" when not.
	TravisPR = "TRAVIS_PULL_REQUEST"

	// TravisBranch indicates the active Travis branch. In a push build this
	// is the branch that was pushed; in a pull request build it is the
	// branch the pull request is against.
	TravisBranch = "TRAVIS_BRANCH"

	// TravisEventType indicates the type of build that is occurring.
	TravisEventType = "TRAVIS_EVENT_TYPE"

	// TravisRange is the range of commits changed in the current build.
	// Empty for builds triggered by the initial commit of a new branch.
	TravisRange = "TRAVIS_COMMIT_RANGE"

	// TravisSlug is the GitHub repository slug ({organization}/{repository})
	// for the current Travis build.
	TravisSlug = "TRAVIS_REPO_SLUG"

	// TravisTag is the tag of the current Travis build. Only expected
	// during a tag push build, but may be set to the empty string in
	// non-push builds.
	TravisTag = "TRAVIS_TAG"

	// GitHubToken is a GitHub OAuth 2.0 token used to authenticate to the
	// GitHub API. Unauthenticated requests from a CI server are typically
	// rate limited.
	GitHubToken = "GITHUB_OAUTH_TOKEN"

	// InAppVeyor indicates if running in AppVeyor.
	InAppVeyor = "APPVEYOR"

	// AppVeyorRepoProvider is the code hosting provider for the repository
	// being tested in AppVeyor.
	AppVeyorRepoProvider = "APPVEYOR_REPO_PROVIDER"

	// AppVeyorBranch indicates the active AppVeyor branch. In a pull
	// request build it is the base branch the PR is merging into, otherwise
	// it is the branch being built.
	AppVeyorBranch = "APPVEYOR_REPO_BRANCH"

	// AppVeyorTag is the tag of the current AppVeyor build. Only valid when
	// the build was started by a pushed tag.
	AppVeyorTag = "APPVEYOR_REPO_TAG_NAME"

	// AppVeyorPRNumber is the pull request number of the current AppVeyor
	// build, set only during PR builds.
	AppVeyorPRNumber = "APPVEYOR_PULL_REQUEST_NUMBER"

	// InCircleCI indicates if running in CircleCI.
	InCircleCI = "CIRCLECI"

	// CircleBranch indicates the active git branch being tested on CircleCI.
	CircleBranch = "CIRCLE_BRANCH"

	// CircleTag is the name of the git tag being tested. Only set if the
	// build is running for a tag.
	CircleTag = "CIRCLE_TAG"

	// CirclePR is the pull request containing the current change set. If
	// the build is part of only one pull request, the URL of that PR is
	// populated here; with more than one, one of the URLs is picked.
	CirclePR = "CI_PULL_REQUEST"

	// CirclePRs is the comma-separated list of pull requests the current
	// build is a part of.
	CirclePRs = "CI_PULL_REQUESTS"

	// CircleRepoURL is a link to the homepage for the current repository.
	CircleRepoURL = "CIRCLE_REPOSITORY_URL"

	// CirclePRNumber is the ID of the PR that started the current build.
	// Only expected during a build that is part of a PR from a fork.
	CirclePRNumber = "CIRCLE_PR_NUMBER"

	// CirclePRRepo is the name of the forked repository that started the
	// current PR build.
	CirclePRRepo = "CIRCLE_PR_REPONAME"

	// CirclePROwner is the owner of the forked repository that started the
	// current PR build.
	CirclePROwner = "CIRCLE_PR_USERNAME"

	// KokoroPrefix marks variables injected by Kokoro. The presence of any
	// variable with this prefix indicates a Kokoro build.
	KokoroPrefix = "KOKORO_"

	// KokoroGitHubPRNumber is the ID of the PR that started the current
	// build. Only expected during a Kokoro build that is part of a GitHub
	// pull request.
	KokoroGitHubPRNumber = "KOKORO_GITHUB_PULL_REQUEST_NUMBER"

	// KokoroGitHubPRURL is a link to the GitHub pull request. Only expected
	// during a Kokoro build that is part of a pull request.
	KokoroGitHubPRURL = "KOKORO_GITHUB_PULL_REQUEST_URL"

	// KokoroGitHubCommitURL is a link to the GitHub commit. Only expected
	// during a Kokoro build that is part of a merge into a branch.
	KokoroGitHubCommitURL = "KOKORO_GITHUB_COMMIT_URL"

	// KokoroGerritBranch is the branch of a Gerrit change request. Only
	// expected during a Kokoro build for a Gerrit change.
	KokoroGerritBranch = "KOKORO_GERRIT_BRANCH"

	// KokoroGerritChangeNumber is the ID of the Gerrit change that started
	// the current build.
	KokoroGerritChangeNumber = "KOKORO_GERRIT_CHANGE_NUMBER"

	// KokoroGOBCommit is the commit hash of a merge commit for Gerrit.
	KokoroGOBCommit = "KOKORO_GOB_COMMIT"
)
