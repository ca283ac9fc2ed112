package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/marriagecalc/internal/compare"
	"github.com/rgehrsitz/marriagecalc/internal/config"
	"github.com/rgehrsitz/marriagecalc/internal/domain"
	"github.com/rgehrsitz/marriagecalc/internal/heatmap"
)

// Service runs the calculations behind the explorer
type Service interface {
	compare.ComparisonSource
	GetHeatmapData(ctx context.Context, countryID string, h domain.Household) (*domain.HeatmapSweep, error)
}

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	scenarioPath string
	scenario     *domain.Scenario
	service      Service
	timeout      time.Duration

	report *compare.Report
	sweep  *domain.HeatmapSweep

	// Heatmap cursor
	tab       int
	headIdx   int
	spouseIdx int
	palette   heatmap.Scale
	valentine bool

	// Loading state; pending counts calculations in flight
	pending int
	spinner spinner.Model

	viewport viewport.Model
	help     help.Model
	keys     keyMap

	err error
}

type keyMap struct {
	Up, Down, Left, Right key.Binding
	NextTab, PrevTab      key.Binding
	You                   key.Binding
	Palette               key.Binding
	Compare, Heatmap      key.Binding
	Reload                key.Binding
	Help, Back, Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "partner +")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "partner -")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "you -")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "you +")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		You:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "your cell")),
		Palette: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "palette")),
		Compare: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare")),
		Heatmap: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "heatmap")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recalculate")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Right, k.Up, k.NextTab, k.You, k.Compare, k.Heatmap, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextTab, k.PrevTab, k.You, k.Palette},
		{k.Compare, k.Heatmap, k.Reload},
		{k.Help, k.Back, k.Quit},
	}
}

// NewModel creates a new application model for a scenario file
func NewModel(scenarioPath string, service Service, timeout time.Duration) Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = TitleStyle

	return Model{
		currentScene: SceneHeatmap,
		scenarioPath: scenarioPath,
		service:      service,
		timeout:      timeout,
		palette:      heatmap.Teal,
		pending:      1,
		spinner:      sp,
		viewport:     viewport.New(80, 18),
		help:         help.New(),
		keys:         defaultKeyMap(),
		width:        80,
		height:       24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadScenarioCmd(m.scenarioPath))
}

// loadScenarioCmd returns a command that loads the scenario file
func loadScenarioCmd(path string) tea.Cmd {
	return func() tea.Msg {
		scenario, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ScenarioLoadedMsg{Scenario: scenario}
	}
}

func (m Model) calcContext() (context.Context, context.CancelFunc) {
	if m.timeout > 0 {
		return context.WithTimeout(context.Background(), m.timeout)
	}
	return context.WithCancel(context.Background())
}

// compareCmd runs the point comparison
func (m Model) compareCmd() tea.Cmd {
	scenario := m.scenario
	return func() tea.Msg {
		ctx, cancel := m.calcContext()
		defer cancel()
		report, err := compare.NewCompareEngine(m.service).Compare(ctx, scenario, compare.CompareOptions{})
		return ComparisonCompleteMsg{Report: report, Err: err}
	}
}

// heatmapCmd runs the income sweep
func (m Model) heatmapCmd() tea.Cmd {
	scenario := m.scenario
	return func() tea.Msg {
		ctx, cancel := m.calcContext()
		defer cancel()
		sweep, err := m.service.GetHeatmapData(ctx, scenario.Country, scenario.Household)
		return HeatmapCompleteMsg{Sweep: sweep, Err: err}
	}
}

// calculate starts both calculations for the loaded scenario
func (m Model) calculate() (Model, tea.Cmd) {
	m.pending = 2
	m.err = nil
	return m, tea.Batch(m.spinner.Tick, m.compareCmd(), m.heatmapCmd())
}

func (m Model) loading() bool {
	return m.pending > 0
}

// currentTab returns the selected heatmap tab name
func (m Model) currentTab() string {
	if m.sweep == nil || len(m.sweep.Tabs) == 0 {
		return ""
	}
	return m.sweep.Tabs[m.tab%len(m.sweep.Tabs)]
}

// userCell returns the grid cell nearest to the scenario's own incomes
func (m Model) userCell() (headIdx, spouseIdx int) {
	if m.sweep == nil || m.scenario == nil {
		return 0, 0
	}
	h := m.scenario.Household
	return m.sweep.IndexFor(h.Head.Income), m.sweep.IndexFor(h.SpouseIncome())
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHeatmap:
		return "Heatmap"
	case SceneCompare:
		return "Compare"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
