package main

import (
	"fmt"
	"os"

	"github.com/skilllens/skilllens-cli/cmd"
	"github.com/skilllens/skilllens-cli/pkg/config"
	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	cfg := config.Load()

	rootCmd := newRootCmd(cfg)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "skilllens",
		Short: "AI-powered resume and skill-gap analysis",
		Long: `skilllens uploads a resume and a job description to the SkillLens
analysis service and reports the skill match: readiness score, matched and
missing skills, improvement suggestions, and a learning roadmap. Results can
be exported as a multi-page PDF report.`,
		SilenceUsage: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(
		cmd.NewAnalyzeCmd(cfg),
		cmd.NewReportCmd(cfg),
		cmd.NewHistoryCmd(cfg),
		cmd.NewLoginCmd(cfg),
		cmd.NewRegisterCmd(cfg),
		cmd.NewLogoutCmd(cfg),
		cmd.NewWhoamiCmd(cfg),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("skilllens version %s\n", version)
		},
	}
}
