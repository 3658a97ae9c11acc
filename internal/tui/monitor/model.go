package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/commitgate/internal/gate"
	"github.com/marcus/commitgate/internal/git"
	"github.com/marcus/commitgate/internal/notify"
)

// Panel represents which panel is active
type Panel int

const (
	PanelGate Panel = iota
	PanelRepo
	PanelHistory
)

// MinWidth is the minimum terminal width for proper display
const MinWidth = 40

// MinHeight is the minimum terminal height for proper display
const MinHeight = 12

// TickMsg triggers a data refresh
type TickMsg time.Time

// RefreshMsg carries a refreshed snapshot
type RefreshMsg Snapshot

// Model is the main Bubble Tea model for the monitor TUI
type Model struct {
	Gate *gate.Gate
	Repo *git.CLI
	Mem  *notify.Memory

	Width  int
	Height int

	Snap     Snapshot
	History  viewport.Model
	hasSnap  bool
	ready    bool
	fetching bool
	ShowHelp bool

	ActivePanel     Panel
	RefreshInterval time.Duration
}

// NewModel creates a new monitor model
func NewModel(g *gate.Gate, repo *git.CLI, mem *notify.Memory, interval time.Duration) Model {
	return Model{
		Gate:            g,
		Repo:            repo,
		Mem:             mem,
		RefreshInterval: interval,
		ActivePanel:     PanelGate,
		// Init issues the first fetch; the flag keeps ticks and manual
		// refreshes from overlapping it. Gate.Tick is not safe to run from
		// two command goroutines at once.
		fetching: true,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(), m.scheduleTick())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.sizeViewport()
		return m, nil

	case TickMsg:
		if m.fetching {
			return m, m.scheduleTick()
		}
		m.fetching = true
		return m, tea.Batch(m.fetch(), m.scheduleTick())

	case RefreshMsg:
		m.fetching = false
		m.Snap = Snapshot(msg)
		m.hasSnap = true
		m.History.SetContent(m.historyContent())
		m.History.GotoBottom()
		return m, nil
	}

	return m, nil
}

// handleKey processes key input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.ActivePanel = (m.ActivePanel + 1) % 3
		return m, nil

	case "shift+tab":
		m.ActivePanel = (m.ActivePanel + 2) % 3
		return m, nil

	case "1":
		m.ActivePanel = PanelGate
		return m, nil

	case "2":
		m.ActivePanel = PanelRepo
		return m, nil

	case "3":
		m.ActivePanel = PanelHistory
		return m, nil

	case "j", "down":
		if m.ActivePanel == PanelHistory {
			m.History.ScrollDown(1)
		}
		return m, nil

	case "k", "up":
		if m.ActivePanel == PanelHistory {
			m.History.ScrollUp(1)
		}
		return m, nil

	case "r":
		if m.fetching {
			return m, nil
		}
		m.fetching = true
		return m, m.fetch()

	case "?":
		m.ShowHelp = !m.ShowHelp
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	return m.renderView()
}

// sizeViewport resizes the history viewport to its panel slot.
func (m *Model) sizeViewport() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	panelHeight := (m.Height - 2) / 3
	h := panelHeight - 3
	if h < 1 {
		h = 1
	}
	if !m.ready {
		m.History = viewport.New(m.Width-4, h)
		m.ready = true
		return
	}
	m.History.Width = m.Width - 4
	m.History.Height = h
}

// scheduleTick returns a command that sends a TickMsg after the refresh interval
func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.RefreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fetch returns a command that evaluates the gate and sends a RefreshMsg
func (m Model) fetch() tea.Cmd {
	return func() tea.Msg {
		return RefreshMsg(Fetch(m.Gate, m.Repo, m.Mem))
	}
}
