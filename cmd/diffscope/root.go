// Package main provides the diffscope CLI application.
package main

import (
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cicd-ai-toolkit/diffscope/pkg/config"
	"github.com/cicd-ai-toolkit/diffscope/pkg/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "diffscope",
	Short: "CI build-context and diffbase resolution",
	Long: `diffscope determines which CI provider is running the current build,
normalizes its environment into a provider-agnostic build context, and
resolves the diffbase: the commit or branch the current change set should
be diffed against. CI jobs use the result to scope expensive checks
(tests, linting, fuzzing) to the affected files.`,
	Version:       version.FullString(),
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is the normal case on CI; only local runs carry one.
		_ = godotenv.Load()

		if rootOpts.verbose {
			log.SetLevel(log.DebugLevel)
		}

		var err error
		if rootOpts.config != "" {
			cfg, err = config.Load(rootOpts.config)
		} else {
			cfg, err = config.LoadDefault()
		}
		return err
	},
}

// rootFlags holds the persistent flags shared by all subcommands
type rootFlags struct {
	config  string
	verbose bool
}

var (
	rootOpts rootFlags
	cfg      *config.Config
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootOpts.config, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&rootOpts.verbose, "verbose", "v", false, "Verbose output")
}
