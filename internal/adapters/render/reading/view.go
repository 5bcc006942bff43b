package reading

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/fibdrv/internal/application"
	"github.com/bnema/fibdrv/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

type RenderOptions struct {
	MaxIndex int64
}

// Render formats readings for the terminal.
func Render(readings []application.Reading, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderReadings(readings, opts, s)
	})
}

// RenderBench formats the summary of a bench report.
func RenderBench(report domain.BenchReport) (string, error) {
	return run(func(s styles) string {
		return renderBench(report, s)
	})
}

func renderReadings(readings []application.Reading, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Fibonacci Engine"),
		s.header.Render(fmt.Sprintf("max index: %d", opts.MaxIndex)),
	}

	if len(readings) == 0 {
		lines = append(lines, s.empty.Render("No readings."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, r := range readings {
		lines = append(lines, s.section.Render(renderReading(r, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderReading(r application.Reading, opts RenderOptions, s styles) string {
	detail := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.key.Render("index:"),
		" ",
		renderProgressBar(float64(r.Index), float64(opts.MaxIndex), barWidth, s),
		" ",
		s.detail.Render(fmt.Sprintf("%d digits, %s", r.Length, formatElapsed(r.Elapsed))),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.index.Render(fmt.Sprintf("F(%d)", r.Index)),
		s.digits.Render(r.Digits),
		detail,
	)
}

func renderBench(report domain.BenchReport, s styles) string {
	lines := []string{
		s.title.Render("Fibonacci Engine Bench"),
		s.header.Render(fmt.Sprintf("samples: %d", len(report.Samples))),
	}

	slowest, ok := report.Slowest()
	if !ok {
		lines = append(lines, s.empty.Render("No samples."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	first, last := report.Samples[0], report.Samples[len(report.Samples)-1]
	lines = append(lines,
		s.detail.Render(fmt.Sprintf("range: F(%d)..F(%d) of max %d", first.Index, last.Index, report.MaxIndex)),
		s.detail.Render(fmt.Sprintf("total: %s", formatElapsed(report.Total()))),
		s.detail.Render(fmt.Sprintf("mean: %s", formatElapsed(report.Mean()))),
		s.detail.Render(fmt.Sprintf("slowest: F(%d) in %s", slowest.Index, formatElapsed(slowest.Elapsed))),
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.key.Render("mean/slowest:"),
			" ",
			renderProgressBar(float64(report.Mean()), float64(slowest.Elapsed), barWidth, s),
		),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func formatElapsed(d time.Duration) string {
	return domain.CompactNanos(d)
}

func renderProgressBar(value, total float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := 0.0
	if total > 0 {
		fraction = value / total
	}
	filled := int(math.Round(float64(width) * fraction))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	empty := width - filled
	fillSegment := s.barFill.Render(strings.Repeat("=", filled))
	emptySegment := s.barEmpty.Render(strings.Repeat("-", empty))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fillSegment,
		emptySegment,
		s.barBracket.Render("]"),
	)
}
