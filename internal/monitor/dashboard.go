package monitor

// #region imports
import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/obinexus/mmuoko-connect/internal/dispatch"
)

// #endregion

// #region styles
var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
)

// #endregion styles

// #region model

type statsMsg Stats

type model struct {
	stats   Stats
	updates <-chan Stats
}

func newModel(updates <-chan Stats) model {
	return model{updates: updates}
}

func waitForStats(ch <-chan Stats) tea.Cmd {
	return func() tea.Msg {
		return statsMsg(<-ch)
	}
}

func (m model) Init() tea.Cmd {
	return waitForStats(m.updates)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.KeyMsg:
		switch v.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
		if v.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	case statsMsg:
		m.stats = Stats(v)
		return m, waitForStats(m.updates)
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	rule := strings.Repeat("─", 56) + "\n"

	b.WriteString(headerStyle.Render("mmuoko-connect monitor") + "\n")
	b.WriteString(rule)

	coherence := okStyle
	if m.stats.Coherence < dispatch.CoherenceFloor {
		coherence = badStyle
	}
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s   %s %s\n",
		labelStyle.Render("coherence"), coherence.Render(fmt.Sprintf("%.3f", m.stats.Coherence)),
		labelStyle.Render("clusters"), valueStyle.Render(fmt.Sprintf("%d", m.stats.Clusters)),
		labelStyle.Render("cpu"), valueStyle.Render(fmt.Sprintf("%.1f%%", m.stats.CPUPercent)),
		labelStyle.Render("goroutines"), valueStyle.Render(fmt.Sprintf("%d", m.stats.Goroutines)),
	))
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		labelStyle.Render("last score"), valueStyle.Render(fmt.Sprintf("%.4f", m.stats.LastScore)),
		labelStyle.Render("engagement"), valueStyle.Render(fmt.Sprintf("%d", m.stats.LastEngagement)),
	))
	b.WriteString(rule)

	b.WriteString(labelStyle.Render("top nodes") + "\n")
	if len(m.stats.TopNodes) == 0 {
		b.WriteString("   (no ranked nodes)\n")
	} else {
		for _, node := range m.stats.TopNodes {
			b.WriteString(fmt.Sprintf("   %s  %s  %s\n",
				valueStyle.Render(fmt.Sprintf("%-16s", node.Name)),
				valueStyle.Render(fmt.Sprintf("%6.2f", node.Rank)),
				labelStyle.Render(node.Cluster),
			))
		}
	}
	b.WriteString(rule)

	if !m.stats.Tick.IsZero() {
		b.WriteString(labelStyle.Render("sampled "+m.stats.Tick.Format(time.RFC3339)) + "  ")
	}
	b.WriteString(labelStyle.Render("q quit") + "\n")
	return b.String()
}

// #endregion model

// #region run

// RunDashboard drives the live view until the user quits.
func RunDashboard(sched *Scheduler) error {
	sched.Start()
	defer sched.Stop()

	p := tea.NewProgram(newModel(sched.Updates()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}

// RunPlain writes one line per sample until the context is cancelled. For
// terminals and logs that cannot host the live view.
func RunPlain(ctx context.Context, sched *Scheduler, w io.Writer) error {
	sched.Start()
	defer sched.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case stats := <-sched.Updates():
			fmt.Fprintln(w, plainLine(stats))
		}
	}
}

func plainLine(stats Stats) string {
	return fmt.Sprintf("%s coherence=%.3f clusters=%d cpu=%.1f%% goroutines=%d last_score=%.4f engagement=%d",
		stats.Tick.Format(time.RFC3339), stats.Coherence, stats.Clusters,
		stats.CPUPercent, stats.Goroutines, stats.LastScore, stats.LastEngagement)
}

// #endregion run
