package tui

import (
	"github.com/rgehrsitz/marriagecalc/internal/compare"
	"github.com/rgehrsitz/marriagecalc/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHeatmap Scene = iota
	SceneCompare
	SceneHelp
)

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ScenarioLoadedMsg signals the scenario file has been parsed
type ScenarioLoadedMsg struct {
	Scenario *domain.Scenario
}

// ComparisonCompleteMsg carries the point comparison for the scenario
type ComparisonCompleteMsg struct {
	Report *compare.Report
	Err    error
}

// HeatmapCompleteMsg carries the income sweep for the scenario
type HeatmapCompleteMsg struct {
	Sweep *domain.HeatmapSweep
	Err   error
}
