package report

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	donutSize = 400
	barW      = 600
	barH      = 300
)

var (
	greenFill = drawing.Color{R: 34, G: 197, B: 94, A: 255}
	amberFill = drawing.Color{R: 234, G: 179, B: 8, A: 255}
	redFill   = drawing.Color{R: 239, G: 68, B: 68, A: 255}
	grayFill  = drawing.Color{R: 229, G: 231, B: 235, A: 255}
)

// scoreDonutPNG renders the cover-page donut: the score slice in its
// tier color against a neutral remainder.
func scoreDonutPNG(score float64) []byte {
	return renderPNG(donutSize, donutSize, func(w io.Writer) error {
		s := clampScore(score)
		remaining := 100 - s
		// Degenerate slices (0 or 100) still need two visible values.
		if s < 0.1 {
			s = 0.1
		}
		if remaining < 0.1 {
			remaining = 0.1
		}

		donut := chart.DonutChart{
			Width:  donutSize,
			Height: donutSize,
			Values: []chart.Value{
				{
					Value: s,
					Label: fmt.Sprintf("%.0f%%", clampScore(score)),
					Style: chart.Style{FillColor: tierFill(score)},
				},
				{
					Value: remaining,
					Style: chart.Style{FillColor: grayFill},
				},
			},
		}
		return donut.Render(chart.PNG, w)
	})
}

// skillMatchBarPNG renders the matched / partial / missing counts.
func skillMatchBarPNG(matched, partial, missing int) []byte {
	return renderPNG(barW, barH, func(w io.Writer) error {
		maxCount := matched
		if partial > maxCount {
			maxCount = partial
		}
		if missing > maxCount {
			maxCount = missing
		}
		if maxCount < 1 {
			maxCount = 1
		}

		bars := chart.BarChart{
			Title:    "Skill Match Analysis",
			Width:    barW,
			Height:   barH,
			BarWidth: 80,
			Background: chart.Style{
				Padding: chart.Box{Top: 40},
			},
			YAxis: chart.YAxis{
				Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
			},
			Bars: []chart.Value{
				{Value: float64(matched), Label: "Matched", Style: chart.Style{FillColor: greenFill, StrokeColor: greenFill}},
				{Value: float64(partial), Label: "Partial", Style: chart.Style{FillColor: amberFill, StrokeColor: amberFill}},
				{Value: float64(missing), Label: "Missing", Style: chart.Style{FillColor: redFill, StrokeColor: redFill}},
			},
		}
		return bars.Render(chart.PNG, w)
	})
}

// renderPNG runs one chart render against a fresh buffer and hands
// back only the captured bytes. A render error, or a panic from the
// chart library on degenerate input, degrades to a blank placeholder
// so one bad chart never aborts the export.
func renderPNG(width, height int, render func(io.Writer) error) (out []byte) {
	defer func() {
		if r := recover(); r != nil {
			out = blankPNG(width, height)
		}
	}()

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return blankPNG(width, height)
	}
	return buf.Bytes()
}

func blankPNG(width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}

func tierFill(score float64) drawing.Color {
	switch {
	case score >= 80:
		return greenFill
	case score >= 60:
		return amberFill
	default:
		return redFill
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
