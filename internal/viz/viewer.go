package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/boltgrid/internal/gridfile"
	"github.com/san-kum/boltgrid/internal/metrics"
)

// PlayInterval matches the delay between frames of a rendered animation.
const PlayInterval = 500 * time.Millisecond

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(36)
)

type TickMsg time.Time

// Viewer steps through the frames of a frame set in the terminal.
type Viewer struct {
	title   string
	frames  *gridfile.FrameSet
	canvas  *Canvas
	series  map[string][]float64
	names   []string
	current int
	playing bool
}

func NewViewer(title string, fs *gridfile.FrameSet) Viewer {
	v := Viewer{
		title:  title,
		frames: fs,
		canvas: NewCanvas((fs.Width+1)/2, (fs.Height+3)/4),
		series: make(map[string][]float64),
	}
	for _, m := range metrics.Defaults() {
		v.names = append(v.names, m.Name())
		v.series[m.Name()] = metrics.Series(fs, m)
	}
	return v
}

func (v Viewer) Current() int  { return v.current }
func (v Viewer) Playing() bool { return v.playing }

func tick() tea.Cmd {
	return tea.Tick(PlayInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return v, tea.Quit
		case "right", "l":
			v.playing = false
			v.step(1)
		case "left", "h":
			v.playing = false
			v.step(-1)
		case "home", "g":
			v.current = 0
		case "end", "G":
			v.current = max(len(v.frames.Frames)-1, 0)
		case " ":
			v.playing = !v.playing
			if v.playing {
				return v, tick()
			}
		}
	case TickMsg:
		if !v.playing {
			return v, nil
		}
		v.current = (v.current + 1) % max(len(v.frames.Frames), 1)
		return v, tick()
	}
	return v, nil
}

func (v *Viewer) step(dir int) {
	n := len(v.frames.Frames)
	if n == 0 {
		return
	}
	v.current = min(max(v.current+dir, 0), n-1)
}

func (v Viewer) View() string {
	if len(v.frames.Frames) == 0 {
		return Subtle.Render("no frames") + "\n"
	}
	DrawFrame(v.canvas, v.frames.Frames[v.current])
	canvasView := canvasStyle.Render(boltStyle.Render(v.canvas.String()))

	var s strings.Builder
	s.WriteString(HeaderStyle.Render(v.title) + "\n")
	status := StatusPaused.Render("PAUSED")
	if v.playing {
		status = StatusRunning.Render("PLAYING")
	}
	s.WriteString(status + "\n\n")
	s.WriteString(MetricLabel.Render("frame") + MetricValue.Render(fmt.Sprintf("%d/%d", v.current+1, len(v.frames.Frames))) + "\n")
	for _, name := range v.names {
		s.WriteString(MetricLabel.Render(name) + MetricValue.Render(fmt.Sprintf("%.3f", v.series[name][v.current])) + "\n")
	}
	s.WriteString("\n" + KeyHint.Render("←/→ step  space play  q quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

// RunViewer blocks until the user quits.
func RunViewer(title string, fs *gridfile.FrameSet) error {
	_, err := tea.NewProgram(NewViewer(title, fs), tea.WithAltScreen()).Run()
	return err
}
