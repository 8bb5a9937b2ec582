// Package report renders a stored analysis result into the four-page
// PDF report, entirely client-side.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/skilllens/skilllens-cli/pkg/model"
)

// TotalPages is fixed: cover, skills, gaps, roadmap. Optional
// sections leave their page sparse rather than changing the count.
const TotalPages = 4

const brandLine = "Generated by SkillLens AI - AI Career Intelligence Platform"

var ErrNoResult = errors.New("no analysis result to export")

type Options struct {
	JobRole     string
	GeneratedAt time.Time
}

type rgb struct{ r, g, b int }

var (
	purple  = rgb{139, 92, 246}
	indigo  = rgb{79, 70, 229}
	redInk  = rgb{239, 68, 68}
	green   = rgb{34, 197, 94}
	amber   = rgb{234, 179, 8}
	grayInk = rgb{100, 100, 100}
)

func scoreTier(score float64) rgb {
	switch {
	case score >= 80:
		return green
	case score >= 60:
		return amber
	default:
		return redInk
	}
}

// Build renders the report for one result and writes the PDF to w.
func Build(result *model.AnalysisResult, opts Options, w io.Writer) error {
	if result == nil {
		return ErrNoResult
	}
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}

	b := newBuilder(result, opts)
	b.cover()
	b.skills()
	b.gaps()
	b.roadmap()

	if err := b.pdf.Output(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// WriteFile renders the report to path. Nothing is written when the
// build fails.
func WriteFile(result *model.AnalysisResult, opts Options, path string) error {
	var buf bytes.Buffer
	if err := Build(result, opts, &buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

type builder struct {
	pdf    *gofpdf.Fpdf
	result *model.AnalysisResult
	opts   Options

	pageW, pageH float64
	margin       float64
}

func newBuilder(result *model.AnalysisResult, opts Options) *builder {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	b := &builder{
		pdf:    pdf,
		result: result,
		opts:   opts,
		margin: 20,
	}
	b.pageW, b.pageH = pdf.GetPageSize()

	pdf.SetFooterFunc(func() {
		footerY := b.pageH - 15

		b.draw(purple)
		pdf.SetLineWidth(0.5)
		pdf.Line(b.margin, footerY, b.pageW-b.margin, footerY)

		pdf.SetFont("Helvetica", "I", 8)
		b.ink(grayInk)
		pdf.SetXY(b.margin, footerY+2)
		pdf.CellFormat(b.contentW(), 5, brandLine, "", 0, "C", false, 0, "")
		pdf.SetXY(b.margin, footerY+2)
		pdf.CellFormat(b.contentW(), 5, fmt.Sprintf("Page %d of %d", pdf.PageNo(), TotalPages), "", 0, "R", false, 0, "")
	})

	return b
}

func (b *builder) contentW() float64 { return b.pageW - 2*b.margin }

func (b *builder) ink(c rgb)  { b.pdf.SetTextColor(c.r, c.g, c.b) }
func (b *builder) draw(c rgb) { b.pdf.SetDrawColor(c.r, c.g, c.b) }
func (b *builder) fill(c rgb) { b.pdf.SetFillColor(c.r, c.g, c.b) }

// ---------- Page 1: cover ----------

func (b *builder) cover() {
	pdf := b.pdf
	pdf.AddPage()
	y := 30.0

	// Brand band
	b.fill(purple)
	pdf.Rect(b.margin, y, b.contentW(), 40, "F")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(b.margin, y+8)
	pdf.CellFormat(b.contentW(), 10, "SkillLens AI", "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetXY(b.margin, y+22)
	pdf.CellFormat(b.contentW(), 8, "Resume Analysis Report", "", 0, "C", false, 0, "")
	y += 50

	pdf.SetFont("Helvetica", "I", 11)
	b.ink(grayInk)
	pdf.SetXY(b.margin, y)
	pdf.CellFormat(b.contentW(), 6, "AI-powered skill gap and readiness analysis", "", 0, "C", false, 0, "")
	y += 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(b.margin, y, "Analysis Summary")
	y += 8

	pdf.SetFont("Helvetica", "", 10)
	if role := strings.TrimSpace(b.opts.JobRole); role != "" {
		pdf.Text(b.margin, y, "Target Role: "+role)
		y += 6
	}
	pdf.Text(b.margin, y, "Generated: "+b.opts.GeneratedAt.Format("Jan 2, 2006 3:04 PM"))
	y += 10

	b.image("score-donut", scoreDonutPNG(b.result.MatchScore), (b.pageW-80)/2, y, 80, 80)
	y += 90

	tier := scoreTier(b.result.MatchScore)
	pdf.SetFont("Helvetica", "B", 32)
	b.ink(tier)
	pdf.SetXY(b.margin, y)
	pdf.CellFormat(b.contentW(), 12, fmt.Sprintf("%.0f%%", b.result.MatchScore), "", 0, "C", false, 0, "")
	y += 14

	pdf.SetFont("Helvetica", "", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(b.margin, y)
	pdf.CellFormat(b.contentW(), 8, "Readiness Level: "+b.result.ReadinessLevel, "", 0, "C", false, 0, "")
}

// ---------- Page 2: skills ----------

func (b *builder) skills() {
	pdf := b.pdf
	pdf.AddPage()
	y := 30.0

	y = b.sectionHeader("Skills Detected", y, indigo)

	if len(b.result.ResumeSkills) > 0 {
		rows := make([][]string, len(b.result.ResumeSkills))
		for i, s := range b.result.ResumeSkills {
			rows[i] = []string{s.Display()}
		}
		y = b.table(y, []string{"Skill"}, []float64{b.contentW()}, rows, indigo) + 8
	}

	barPNG := skillMatchBarPNG(
		len(b.result.FullyMatched),
		len(b.result.PartiallyMatched),
		len(b.result.FullyMissing),
	)
	b.image("skill-bar", barPNG, b.margin, y, b.contentW(), 85)
	y += 93

	y = b.sectionHeader("Skill Match Breakdown", y, purple)

	rows := [][]string{
		{"Matched Skills", strconv.Itoa(len(b.result.FullyMatched)), model.JoinSkills(b.result.FullyMatched)},
		{"Partially Matched", strconv.Itoa(len(b.result.PartiallyMatched)), model.JoinSkills(b.result.PartiallyMatched)},
		{"Missing Skills", strconv.Itoa(len(b.result.FullyMissing)), model.JoinSkills(b.result.FullyMissing)},
	}
	b.table(y, []string{"Category", "Count", "Skills"}, []float64{50, 25, b.contentW() - 75}, rows, purple)
}

// ---------- Page 3: gaps & suggestions ----------

func (b *builder) gaps() {
	pdf := b.pdf
	pdf.AddPage()
	y := 30.0

	if len(b.result.FullyMissing) > 0 {
		y = b.sectionHeader("Skill Gaps", y, redInk)

		rows := make([][]string, len(b.result.FullyMissing))
		for i, s := range b.result.FullyMissing {
			rows[i] = []string{s.Display()}
		}
		y = b.table(y, []string{"Missing Skill"}, []float64{b.contentW()}, rows, redInk) + 12
	}

	if len(b.result.Suggestions) > 0 {
		y = b.sectionHeader("AI Improvement Suggestions", y, purple)

		rows := make([][]string, len(b.result.Suggestions))
		for i, s := range b.result.Suggestions {
			rows[i] = []string{fmt.Sprintf("%d. %s", i+1, s.Display())}
		}
		b.table(y, []string{"Recommendation"}, []float64{b.contentW()}, rows, purple)
	}
}

// ---------- Page 4: roadmap ----------

func (b *builder) roadmap() {
	pdf := b.pdf
	pdf.AddPage()
	y := 30.0

	if len(b.result.Roadmap) == 0 {
		return
	}

	title := fmt.Sprintf("Learning Roadmap (%d days)", b.result.EstimatedDaysToReady)
	y = b.sectionHeader(title, y, purple)

	rows := make([][]string, len(b.result.Roadmap))
	for i, step := range b.result.Roadmap {
		rows[i] = []string{fmt.Sprintf("Step %d", i+1), step.Display()}
	}
	b.table(y, []string{"Step", "Task"}, []float64{30, b.contentW() - 30}, rows, purple)
}

// ---------- primitives ----------

func (b *builder) sectionHeader(text string, y float64, c rgb) float64 {
	pdf := b.pdf
	pdf.SetFont("Helvetica", "B", 14)
	b.ink(c)
	pdf.Text(b.margin, y, text)

	b.draw(c)
	pdf.SetLineWidth(1)
	pdf.Line(b.margin, y+3, b.pageW-b.margin, y+3)
	return y + 10
}

// table draws a striped table at y and returns the y below it. Pages
// never break here: the document is fixed at four pages and long
// tables clip instead of overflowing.
func (b *builder) table(y float64, headers []string, widths []float64, rows [][]string, head rgb) float64 {
	pdf := b.pdf
	const lineH = 5.0

	pdf.SetXY(b.margin, y)
	pdf.SetFont("Helvetica", "B", 9)
	b.fill(head)
	pdf.SetTextColor(255, 255, 255)
	b.draw(rgb{210, 210, 210})
	pdf.SetLineWidth(0.2)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, " "+h, "1", 0, "L", true, 0, "")
	}
	y += 7

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(40, 40, 40)
	for idx, row := range rows {
		split := make([][]string, len(row))
		maxLines := 1
		for i, cell := range row {
			lines := pdf.SplitText(cell, widths[i]-2)
			if len(lines) == 0 {
				lines = []string{""}
			}
			split[i] = lines
			if len(lines) > maxLines {
				maxLines = len(lines)
			}
		}
		rowH := float64(maxLines)*lineH + 2

		x := b.margin
		for i := range row {
			if idx%2 == 1 {
				pdf.SetFillColor(243, 244, 246)
				pdf.Rect(x, y, widths[i], rowH, "F")
			}
			pdf.Rect(x, y, widths[i], rowH, "D")
			pdf.SetXY(x+1, y+1)
			pdf.MultiCell(widths[i]-2, lineH, strings.Join(split[i], "\n"), "", "L", false)
			x += widths[i]
		}
		y += rowH
	}
	return y
}

func (b *builder) image(name string, pngData []byte, x, y, w, h float64) {
	if len(pngData) == 0 {
		return
	}
	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	b.pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(pngData))
	b.pdf.ImageOptions(name, x, y, w, h, false, opt, 0, "")
}
