// Package main provides the diffscope CLI application.
package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cicd-ai-toolkit/diffscope/pkg/errors"
	"github.com/cicd-ai-toolkit/diffscope/pkg/gittools"
)

// filesCmd represents the files command
var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List files changed relative to the diffbase",
	Long: `Resolve the diffbase for the current CI build and list the files that
changed relative to it, one per line. Exclude patterns from the
configuration are filtered out.

When the provider cannot define a diffbase for this build (or no CI is
detected), the command exits non-zero so callers can fall back to running
their full check suite.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		base := filesOpts.base
		if base == "" {
			buildCtx := detectContext()
			resolved, err := buildCtx.Diffbase()
			if err != nil {
				if errors.IsUnsupported(err) || errors.IsNotInCI(err) {
					log.Debug("no diffbase for this build", "err", err)
				}
				return err
			}
			base = resolved
		}

		tools := gittools.New(cfg.Git.Dir, cfg.Exclude)
		files, err := tools.ChangedFiles(cmd.Context(), base, filesOpts.head)
		if err != nil {
			return err
		}
		for _, file := range files {
			fmt.Println(file)
		}
		return nil
	},
}

// filesFlags holds the flags for the files command
type filesFlags struct {
	base string
	head string
}

var filesOpts filesFlags

func init() {
	rootCmd.AddCommand(filesCmd)

	filesCmd.Flags().StringVar(&filesOpts.base, "base", "", "Diff base (defaults to the resolved diffbase)")
	filesCmd.Flags().StringVar(&filesOpts.head, "head", "HEAD", "Ref to diff against the base")
}
