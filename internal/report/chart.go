package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spacesedan/sentimeter/internal/models"
	"github.com/spacesedan/sentimeter/internal/sentiment"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	chartSize        = 600
	legendFontSize   = 8.0
	legendLineHeight = 16
	legendSwatch     = 10
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("[Report] no posts to chart")

type slice struct {
	name  string
	value float64
	color string
}

func slices(b models.SentimentBuckets) []slice {
	return []slice{
		{"Positive", b.Positive, "9ACD32"},
		{"Weakly Positive", b.WeaklyPositive, "90EE90"},
		{"Strongly Positive", b.StronglyPositive, "006400"},
		{"Neutral", b.Neutral, "FFD700"},
		{"Negative", b.Negative, "FF0000"},
		{"Weakly Negative", b.WeaklyNegative, "FFA07A"},
		{"Strongly Negative", b.StronglyNegative, "8B0000"},
	}
}

// LegendLabel formats a slice name with its share, e.g. "Neutral [33.33%]".
func LegendLabel(name string, pct float64) string {
	return fmt.Sprintf("%s [%s%%]", name, sentiment.FormatPercent(pct))
}

func ChartTitle(term string, total int) string {
	return fmt.Sprintf("Sentiment Analysis (Twitter + Reddit) for '%s' | %d posts", term, total)
}

// RenderPieChart draws the seven-bucket distribution to a PNG at path,
// replacing any previous chart.
func RenderPieChart(path string, b models.SentimentBuckets, term string, total int) error {
	if total == 0 || b.Sum() == 0 {
		return ErrNoData
	}

	parts := slices(b)
	values := make([]chart.Value, 0, len(parts))
	for _, p := range parts {
		values = append(values, chart.Value{
			Value: p.value,
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex(p.color),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 1,
			},
		})
	}

	pie := chart.PieChart{
		Title:      ChartTitle(term, total),
		TitleStyle: chart.Style{FontSize: 10},
		Width:      chartSize,
		Height:     chartSize,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 140},
		},
		Values:   values,
		Elements: []chart.Renderable{legend(parts)},
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("[Report] failed to render chart: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("[Report] failed to create chart dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("[Report] failed to write chart: %w", err)
	}
	return nil
}

// legend lists all seven buckets, including empty ones, below the pie.
func legend(parts []slice) chart.Renderable {
	return func(r chart.Renderer, canvas chart.Box, defaults chart.Style) {
		r.SetFont(defaults.Font)
		r.SetFontSize(legendFontSize)
		r.SetFontColor(drawing.ColorBlack)

		x := canvas.Left + 10
		y := canvas.Bottom + 24
		for _, p := range parts {
			r.SetFillColor(drawing.ColorFromHex(p.color))
			r.SetStrokeColor(drawing.ColorFromHex(p.color))
			r.SetStrokeWidth(1)
			r.MoveTo(x, y-legendSwatch)
			r.LineTo(x+legendSwatch, y-legendSwatch)
			r.LineTo(x+legendSwatch, y)
			r.LineTo(x, y)
			r.Close()
			r.FillStroke()

			r.SetFontColor(drawing.ColorBlack)
			r.Text(LegendLabel(p.name, p.value), x+legendSwatch+6, y)
			y += legendLineHeight
		}
	}
}
