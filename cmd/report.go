package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/skilllens/skilllens-cli/pkg/api"
	"github.com/skilllens/skilllens-cli/pkg/config"
	"github.com/skilllens/skilllens-cli/pkg/model"
	"github.com/skilllens/skilllens-cli/pkg/report"
	"github.com/skilllens/skilllens-cli/pkg/session"
	"github.com/spf13/cobra"
)

var (
	reportOut    string
	reportRemote bool
)

func NewReportCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the last analysis as a PDF report",
		Long: `Render the most recent analysis result into a four-page PDF report:
cover with readiness score, skills breakdown with charts, skill gaps and
suggestions, and the learning roadmap.

The report is rendered locally. With --remote the SkillLens service
renders a summary report instead (requires login).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cfg)
		},
	}

	cmd.Flags().StringVar(&reportOut, "out", "", "Output file (default SkillLens_AI_Report.pdf)")
	cmd.Flags().BoolVar(&reportRemote, "remote", false, "Use the server-side report generator")

	return cmd
}

func runReport(cfg *config.Config) error {
	store := session.NewStore(cfg.State.Dir)

	snap, err := store.LoadResult()
	if err != nil {
		if err == session.ErrNoResult {
			return fmt.Errorf("no analysis results available (run 'skilllens analyze' first)")
		}
		return err
	}

	out := reportOut
	if out == "" {
		out = cfg.Report.OutputFile
	}

	if reportRemote {
		return runRemoteReport(cfg, store, snap, out)
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Generating professional PDF report..."
	s.Start()

	err = report.WriteFile(snap.Result, report.Options{
		JobRole:     snap.JobRole,
		GeneratedAt: time.Now(),
	}, out)
	s.Stop()
	if err != nil {
		printError("Failed to generate PDF")
		return err
	}

	printSuccess(fmt.Sprintf("Report downloaded: %s", out))
	return nil
}

func runRemoteReport(cfg *config.Config, store *session.Store, snap *session.Snapshot, out string) error {
	token := store.Token()
	if token == "" {
		return fmt.Errorf("login required to download the server-side report")
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout)

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Requesting report from SkillLens..."
	s.Start()

	pdfBytes, err := client.GenerateReport(token, api.ReportSummary{
		MatchScore:    snap.Result.MatchScore,
		Readiness:     snap.Result.ReadinessLevel,
		MissingSkills: strings.Join(model.DisplayList(snap.Result.FullyMissing), ", "),
		Days:          snap.Result.EstimatedDaysToReady,
	})
	s.Stop()
	if err != nil {
		printError("Failed to generate report")
		return err
	}

	if err := os.WriteFile(out, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	printSuccess(fmt.Sprintf("Report downloaded: %s", out))
	return nil
}
