package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindset/internal/insights"
	"github.com/abhisek/mindset/internal/ui/theme"
)

const chartLabelWidth = 16

// BarChart renders one horizontal bar per entry, scaled to the largest value.
func BarChart(s insights.Series, width int) string {
	return BarChartScaled(s, width, s.Max())
}

// BarChartScaled renders one horizontal bar per entry, scaled so that scale
// fills the whole bar.
func BarChartScaled(s insights.Series, width, scale int) string {
	if s.Len() == 0 {
		return theme.Hint.Render("No data yet")
	}
	if scale <= 0 {
		scale = 1
	}

	labelWidth := 0
	for _, l := range s.Labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}
	labelWidth = min(labelWidth, chartLabelWidth)

	rows := make([]string, s.Len())
	for i, label := range s.Labels {
		v := s.Values[i]
		meter := Meter{
			Label:      label,
			LabelWidth: labelWidth,
			Suffix:     fmt.Sprintf("%3d", v),
			Fill:       theme.SeriesStyle(i),
		}
		rows[i] = meter.Render(float64(v)/float64(scale), width)
	}
	return strings.Join(rows, "\n")
}

// ShareChart renders a single stacked bar split by each entry's share of the
// total, followed by a legend. It stands in for a pie chart.
func ShareChart(s insights.Series, width int) string {
	total := s.Total()
	if total == 0 {
		return theme.Hint.Render("No data yet")
	}

	width = max(width, 10)
	shares := s.Shares()

	// Rounding cumulative shares keeps the bar exactly width cells wide.
	var bar strings.Builder
	cum, drawn := 0.0, 0
	for i, share := range shares {
		cum += share
		end := int(cum*float64(width) + 0.5)
		if i == len(shares)-1 {
			end = width
		}
		if n := end - drawn; n > 0 {
			bar.WriteString(theme.SeriesStyle(i).Render(strings.Repeat(" ", n)))
			drawn = end
		}
	}

	legend := make([]string, s.Len())
	for i, label := range s.Labels {
		swatch := lipgloss.NewStyle().Foreground(theme.SeriesStyle(i).GetBackground()).Render("■")
		legend[i] = fmt.Sprintf("%s %s %d (%.0f%%)", swatch, label, s.Values[i], shares[i]*100)
	}

	line := strings.Join(legend, "   ")
	if lipgloss.Width(line) > width {
		line = strings.Join(legend, "\n")
	}
	return bar.String() + "\n" + line
}
