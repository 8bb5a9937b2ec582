package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/skilllens/skilllens-cli/pkg/model"
	"gopkg.in/yaml.v3"
)

// DisplayResult formats and displays one analysis result.
func DisplayResult(result *model.AnalysisResult, format string) error {
	switch format {
	case "json":
		return displayJSON(result)
	case "yaml":
		return displayYAML(result)
	case "human":
		fallthrough
	default:
		displayHuman(result)
	}
	return nil
}

func displayJSON(result *model.AnalysisResult) error {
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayYAML(result *model.AnalysisResult) error {
	output, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayHuman(result *model.AnalysisResult) {
	purple := color.New(color.FgMagenta, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	red := color.New(color.FgRed, color.Bold)

	fmt.Println()

	// Score
	scoreColor := ScoreColor(result.MatchScore)
	scoreColor.Printf("🎯 MATCH SCORE: %.0f%%\n", result.MatchScore)
	if result.ReadinessLevel != "" {
		fmt.Printf("   Readiness: %s\n", result.ReadinessLevel)
	}
	fmt.Println()

	if len(result.ResumeSkills) > 0 {
		purple.Println("🧾 SKILLS DETECTED:")
		printChips(model.DisplayList(result.ResumeSkills))
		fmt.Println()
	}

	if len(result.FullyMatched) > 0 {
		green.Println("✅ MATCHED SKILLS:")
		printChips(model.DisplayList(result.FullyMatched))
		fmt.Println()
	}

	if len(result.PartiallyMatched) > 0 {
		yellow.Println("🟡 PARTIALLY MATCHED:")
		printChips(model.DisplayList(result.PartiallyMatched))
		fmt.Println()
	}

	if len(result.FullyMissing) > 0 {
		red.Println("❌ MISSING SKILLS:")
		printChips(model.DisplayList(result.FullyMissing))
		fmt.Println()
	}

	if len(result.Roadmap) > 0 {
		purple.Printf("🗺️  LEARNING ROADMAP (%d days):\n", result.EstimatedDaysToReady)
		for i, step := range result.Roadmap {
			fmt.Printf("   %d. %s\n", i+1, step.Display())
		}
		fmt.Println()
	}

	if len(result.Suggestions) > 0 {
		purple.Println("💡 AI IMPROVEMENT SUGGESTIONS:")
		for i, s := range result.Suggestions {
			fmt.Printf("   %d. %s\n", i+1, s.Display())
		}
		fmt.Println()
	}

	// Footer
	fmt.Println(strings.Repeat("─", 80))
	fmt.Printf("💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

// DisplayHistory renders the stored analyses list.
func DisplayHistory(entries []model.HistoryEntry) {
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Println()
	cyan.Println("🕘 ANALYSIS HISTORY:")
	if len(entries) == 0 {
		fmt.Println("   No analysis yet.")
		return
	}

	for _, e := range entries {
		scoreColor := ScoreColor(e.MatchScore)
		fmt.Printf("   #%-4d %s  ", e.ID, e.ResumeName)
		scoreColor.Printf("%.0f%%", e.MatchScore)
		fmt.Printf("  %d days to ready\n", e.EstimatedDays)
	}
	fmt.Println()
}

// ScoreColor maps a match score to its tier color: green from 80,
// yellow from 60, red below.
func ScoreColor(score float64) *color.Color {
	switch {
	case score >= 80:
		return color.New(color.FgGreen, color.Bold)
	case score >= 60:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func printChips(names []string) {
	const perLine = 6
	for i := 0; i < len(names); i += perLine {
		end := i + perLine
		if end > len(names) {
			end = len(names)
		}
		fmt.Printf("   %s\n", strings.Join(names[i:end], " · "))
	}
}
