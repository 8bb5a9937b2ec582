package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/skilllens/skilllens-cli/pkg/analyzer"
	"github.com/skilllens/skilllens-cli/pkg/api"
	"github.com/skilllens/skilllens-cli/pkg/config"
	"github.com/skilllens/skilllens-cli/pkg/formatter"
	"github.com/skilllens/skilllens-cli/pkg/input"
	"github.com/skilllens/skilllens-cli/pkg/session"
	"github.com/spf13/cobra"
)

var (
	jdPath       string
	jobRole      string
	outputFormat string
)

func NewAnalyzeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze RESUME.pdf",
		Short: "Analyze a resume against a job description",
		Long: `Upload a resume (PDF, max 5MB) and a job description to the SkillLens
service and display the skill-match report.

Examples:
  # Analyze against a job description file
  skilllens analyze resume.pdf --jd posting.txt

  # Read the job description from stdin and name the target role
  pbpaste | skilllens analyze resume.pdf --jd - --role "Data Scientist"

  # Machine-readable output
  skilllens analyze resume.pdf --jd posting.txt -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cfg, args[0])
		},
	}

	cmd.Flags().StringVar(&jdPath, "jd", "", "Job description file ('-' for stdin)")
	cmd.Flags().StringVar(&jobRole, "role", "", "Target job role (optional)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json, yaml)")

	return cmd
}

func runAnalyze(cfg *config.Config, resumePath string) error {
	jd, err := readJobDescription(jdPath)
	if err != nil {
		return err
	}

	in := input.Analysis{
		ResumePath:     resumePath,
		JobDescription: jd,
		JobRole:        jobRole,
		MaxFileSize:    cfg.Input.MaxFileSize,
	}

	printAnalyzeHeader(resumePath)

	store := session.NewStore(cfg.State.Dir)
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout)

	// Create spinner for visual feedback
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " AI is analyzing your resume..."
	s.Start()

	outcome, err := analyzer.New(client, store).Analyze(in, func(caption string) {
		s.Suffix = " " + caption + "..."
	})
	s.Stop()
	if err != nil {
		printError("Analysis failed")
		return err
	}
	printSuccess("Analysis complete")

	if outcome.Celebrate {
		celebrate := color.New(color.FgGreen, color.Bold)
		celebrate.Println("🎉 Outstanding match! You look interview-ready.")
	}

	if err := formatter.DisplayResult(outcome.Result, outputFormat); err != nil {
		return err
	}

	if outcome.Authenticated && outcome.History != nil {
		printSuccess(fmt.Sprintf("Saved to your history (%d analyses stored)", len(outcome.History)))
	}

	return nil
}

func readJobDescription(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("provide a job description with --jd FILE (or --jd - for stdin)")
	}
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read job description from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read job description: %w", err)
	}
	return string(data), nil
}

func printAnalyzeHeader(resumePath string) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println("🔍 SkillLens AI Resume Analyzer")
	fmt.Printf("📄 Resume: %s", resumePath)
	if info, err := os.Stat(resumePath); err == nil && !info.IsDir() {
		fmt.Printf(" (%s)", input.FormatSize(info.Size()))
	}
	fmt.Println()

	if role := strings.TrimSpace(jobRole); role != "" {
		fmt.Printf("🎯 Target Role: %s\n", role)
	}
	fmt.Println()
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}

func printError(msg string) {
	red := color.New(color.FgRed)
	red.Printf("✗ %s\n", msg)
}
