// Package main provides the diffscope CLI application.
package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cicd-ai-toolkit/diffscope/pkg/ci"
	"github.com/cicd-ai-toolkit/diffscope/pkg/env"
	"github.com/cicd-ai-toolkit/diffscope/pkg/host"
	"github.com/cicd-ai-toolkit/diffscope/pkg/vcs"
)

// contextCmd represents the context command
var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Show the resolved CI build context",
	Long: `Detect the current CI provider and print the normalized build context:
branch, tag, event type, pull request state, merge-commit state, repository
identity, and the resolved diffbase.

Fields the active provider does not define are reported as unsupported
rather than failing the command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		buildCtx := detectContext()
		printContext(buildCtx)
		return nil
	},
}

// detectContext wires the configured collaborators into provider detection.
func detectContext() ci.Context {
	snapshot := env.Capture()

	hostClient := host.NewGitHubClient(snapshot.Get(cfg.GitHub.TokenEnv))
	if cfg.GitHub.BaseURL != "" {
		if err := hostClient.SetBaseURL(cfg.GitHub.BaseURL); err != nil {
			log.Warn("ignoring invalid GitHub base URL", "url", cfg.GitHub.BaseURL, "err", err)
		}
	}

	buildCtx := ci.Detect(ci.Options{
		Env:  snapshot,
		VCS:  vcs.NewGitProbe(cfg.Git.Dir),
		Host: hostClient,
	})
	log.Debug("detected CI provider", "service", buildCtx.Service(), "active", buildCtx.Active())
	return buildCtx
}

func printContext(buildCtx ci.Context) {
	fmt.Println(buildCtx)
	if !buildCtx.Active() {
		return
	}

	printField("branch", stringField(buildCtx.Branch))
	printField("tag", stringField(buildCtx.Tag))
	printField("event_type", func() (string, error) {
		et, err := buildCtx.EventType()
		return string(et), err
	})
	printField("in_pr", boolField(buildCtx.InPR))
	printField("pr", intField(buildCtx.PR))
	printField("is_merge", boolField(buildCtx.IsMerge))
	printField("merged_pr", intField(buildCtx.MergedPR))
	printField("host", func() (string, error) {
		h, err := buildCtx.Host()
		return string(h), err
	})
	printField("slug", stringField(buildCtx.Slug))
	printField("repo_url", stringField(buildCtx.RepoURL))
	printField("diffbase", stringField(buildCtx.Diffbase))
}

func printField(name string, resolve func() (string, error)) {
	value, err := resolve()
	if err != nil {
		fmt.Printf("  %-11s %v\n", name+":", err)
		return
	}
	if value == "" {
		value = "(none)"
	}
	fmt.Printf("  %-11s %s\n", name+":", value)
}

func stringField(fn func() (string, error)) func() (string, error) {
	return fn
}

func boolField(fn func() (bool, error)) func() (string, error) {
	return func() (string, error) {
		v, err := fn()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%t", v), nil
	}
}

func intField(fn func() (int, error)) func() (string, error) {
	return func() (string, error) {
		v, err := fn()
		if err != nil {
			return "", err
		}
		if v == 0 {
			return "(none)", nil
		}
		return fmt.Sprintf("%d", v), nil
	}
}

func init() {
	rootCmd.AddCommand(contextCmd)
}
