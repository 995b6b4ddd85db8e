package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/domain"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/services"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/pkg/ui"
)

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Launch the interactive dashboard (alias: dash)",
	Long: `Launch a full-screen interactive dashboard for the asset tracker.

The dashboard shows the metric cards, the filtered asset table and a
search box.

Keyboard Shortcuts:
  Navigation:
    ↑/k         Move up
    ↓/j         Move down
    g           Jump to top
    G           Jump to bottom

  Filters:
    1           All assets
    2           Assigned assets
    3           Faulty assets
    4           Assets of active users

  Actions:
    d           Delete selected asset (press again to confirm)
    r           Refresh from disk
    /           Search mode
    Esc         Clear search / cancel

  General:
    q           Quit dashboard
    Ctrl+C      Force quit`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	tracker := services.NewTracker(assetService, nil, nil)

	search := textinput.New()
	search.Placeholder = "name or assignee..."
	search.CharLimit = 64
	search.Width = 30

	m := dashboardModel{
		tracker: tracker,
		search:  search,
	}
	m.reload()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}

	return nil
}

// clearStatusMsg clears the transient status line, mirroring the 3s
// status timeout of the metric header.
type clearStatusMsg struct{}

type dashboardModel struct {
	tracker *services.Tracker

	metrics domain.Metrics
	rows    []domain.Asset
	label   string

	search    textinput.Model
	searching bool

	cursor        int
	confirmDelete bool

	status    string
	statusErr bool

	width  int
	height int
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

// reload recomputes metrics and the projected rows for the current
// filter and search query.
func (m *dashboardModel) reload() {
	m.metrics = assetService.Metrics()

	rows, label := m.tracker.Project()
	if q := strings.TrimSpace(m.search.Value()); q != "" {
		q = strings.ToLower(q)
		var filtered []domain.Asset
		for _, a := range rows {
			if strings.Contains(strings.ToLower(a.Name), q) ||
				strings.Contains(strings.ToLower(a.AssignedTo), q) {
				filtered = append(filtered, a)
			}
		}
		rows = filtered
	}

	m.rows = rows
	m.label = label
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *dashboardModel) setStatus(msg string, isErr bool) tea.Cmd {
	m.status = msg
	m.statusErr = isErr

	secs := appConfig.StatusMessageSecs
	if secs <= 0 {
		secs = 3
	}
	return tea.Tick(time.Duration(secs)*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter":
				m.searching = false
				m.search.Blur()
				m.reload()
				return m, nil
			case "esc":
				m.searching = false
				m.search.Blur()
				m.search.SetValue("")
				m.reload()
				return m, nil
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				m.reload()
				return m, cmd
			}
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.confirmDelete = false

		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			m.confirmDelete = false

		case "g":
			m.cursor = 0
			m.confirmDelete = false

		case "G":
			m.cursor = len(m.rows) - 1
			if m.cursor < 0 {
				m.cursor = 0
			}
			m.confirmDelete = false

		case "1":
			m.tracker.SetFilter(domain.FilterAll)
			m.reload()
		case "2":
			m.tracker.SetFilter(domain.FilterAssigned)
			m.reload()
		case "3":
			m.tracker.SetFilter(domain.FilterFaulty)
			m.reload()
		case "4":
			m.tracker.SetFilter(domain.FilterActiveUsers)
			m.reload()

		case "/":
			m.searching = true
			m.search.Focus()
			return m, textinput.Blink

		case "esc":
			m.search.SetValue("")
			m.confirmDelete = false
			m.reload()

		case "r":
			m.reload()
			return m, m.setStatus("Refreshed.", false)

		case "d":
			if len(m.rows) == 0 {
				return m, nil
			}
			if !m.confirmDelete {
				m.confirmDelete = true
				return m, m.setStatus("Press d again to delete "+m.rows[m.cursor].DisplaySeq(), false)
			}
			m.confirmDelete = false

			removed, err := m.tracker.RequestDelete(getContext(), m.rows[m.cursor].ID)
			if err != nil {
				return m, m.setStatus("An error occurred while saving the asset.", true)
			}
			m.reload()
			if removed {
				return m, m.setStatus("Asset deleted successfully!", false)
			}
		}
	}

	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(ui.RenderMetricCards(metricCards(m.metrics), string(m.tracker.Filter())))
	b.WriteString("\n\n")

	b.WriteString(ui.FormatTitle(m.label))
	if m.searching || m.search.Value() != "" {
		b.WriteString("   " + ui.StyleMuted.Render("search: ") + m.search.View())
	}
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(ui.FormatMuted("  No assets in this view.\n"))
	}

	for i, a := range m.rows {
		line := fmt.Sprintf("%-6s %-30s %-12s %-10s %-16s %s",
			a.DisplaySeq(),
			truncate(a.Name, 30),
			truncate(a.Category, 12),
			a.Status,
			truncate(a.AssignedTo, 16),
			a.GetDisplayDate(appConfig.DisplayDateFormat))

		if i == m.cursor {
			b.WriteString(ui.StylePrimary.Render("> " + line))
		} else {
			b.WriteString("  " + ui.StyleTableRow.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(ui.FormatError(m.status))
		} else {
			b.WriteString(ui.FormatSuccess(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString(ui.StyleMuted.Render("1-4 filter · / search · d delete · r refresh · q quit"))
	b.WriteString("\n")

	return b.String()
}
