package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/marriagecalc/internal/compare"
	"github.com/rgehrsitz/marriagecalc/internal/heatmap"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-5)
		return m, nil

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.pending = 0
		m.err = msg.Err
		return m, nil

	case ScenarioLoadedMsg:
		m.scenario = msg.Scenario
		return m.calculate()

	case ComparisonCompleteMsg:
		m.pending = max(0, m.pending-1)
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.report = msg.Report
		m.viewport.SetContent((&compare.TableFormatter{ShowDescriptions: true}).Format(msg.Report))
		return m, nil

	case HeatmapCompleteMsg:
		m.pending = max(0, m.pending-1)
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.sweep = msg.Sweep
		if m.tab >= len(m.sweep.Tabs) {
			m.tab = 0
		}
		m.headIdx, m.spouseIdx = m.userCell()
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		return m.navigate(SceneHelp)

	case key.Matches(msg, m.keys.Back):
		if m.err != nil {
			m.err = nil
			return m, nil
		}
		if m.currentScene != SceneHeatmap {
			return m.navigate(m.backTarget())
		}
		return m, nil

	case key.Matches(msg, m.keys.Compare):
		return m.navigate(SceneCompare)

	case key.Matches(msg, m.keys.Heatmap):
		return m.navigate(SceneHeatmap)

	case key.Matches(msg, m.keys.Reload):
		if m.scenario == nil || m.loading() {
			return m, nil
		}
		return m.calculate()
	}

	return m.updateCurrentScene(msg)
}

func (m Model) navigate(scene Scene) (tea.Model, tea.Cmd) {
	if m.currentScene == scene {
		return m, nil
	}
	return m, func() tea.Msg { return NavigateMsg{Scene: scene} }
}

func (m Model) backTarget() Scene {
	if m.previousScene != m.currentScene {
		return m.previousScene
	}
	return SceneHeatmap
}

// updateCurrentScene delegates updates to the current scene
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.currentScene {
	case SceneHeatmap:
		if k, ok := msg.(tea.KeyMsg); ok {
			return m.updateHeatmap(k), nil
		}
	case SceneCompare:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateHeatmap moves the cursor and switches tabs. Up raises the partner's
// income, right raises yours.
func (m Model) updateHeatmap(msg tea.KeyMsg) Model {
	if m.sweep == nil || m.sweep.Count == 0 {
		return m
	}
	last := m.sweep.Count - 1

	switch {
	case key.Matches(msg, m.keys.Up):
		m.spouseIdx = min(last, m.spouseIdx+1)
	case key.Matches(msg, m.keys.Down):
		m.spouseIdx = max(0, m.spouseIdx-1)
	case key.Matches(msg, m.keys.Right):
		m.headIdx = min(last, m.headIdx+1)
	case key.Matches(msg, m.keys.Left):
		m.headIdx = max(0, m.headIdx-1)
	case key.Matches(msg, m.keys.NextTab):
		if n := len(m.sweep.Tabs); n > 0 {
			m.tab = (m.tab + 1) % n
		}
	case key.Matches(msg, m.keys.PrevTab):
		if n := len(m.sweep.Tabs); n > 0 {
			m.tab = (m.tab - 1 + n) % n
		}
	case key.Matches(msg, m.keys.You):
		m.headIdx, m.spouseIdx = m.userCell()
	case key.Matches(msg, m.keys.Palette):
		m.valentine = !m.valentine
		m.palette = heatmap.Teal
		if m.valentine {
			m.palette = heatmap.Valentine
		}
	}
	return m
}
