package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/boltgrid/internal/gridfile"
)

var (
	GlassPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(1, 2)

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(16)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	boltStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ccddff"))
)

// Summary renders a titled panel with the frame set's shape and the given
// metric values, sorted by name.
func Summary(title string, fs *gridfile.FrameSet, values map[string]float64) string {
	var s strings.Builder
	s.WriteString(HeaderStyle.Render(title) + "\n")
	s.WriteString(MetricLabel.Render("grid") + MetricValue.Render(fmt.Sprintf("%dx%d", fs.Height, fs.Width)) + "\n")
	s.WriteString(MetricLabel.Render("frames") + MetricValue.Render(fmt.Sprintf("%d", len(fs.Frames))) + "\n")

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.WriteString(MetricLabel.Render(name) + MetricValue.Render(fmt.Sprintf("%.3f", values[name])) + "\n")
	}
	return GlassPanel.Render(strings.TrimRight(s.String(), "\n"))
}
