// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program for the picture explorer
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jes4go/jes4go/pkg/picture"
)

// NewModel creates an explorer model for ex
func NewModel(ex *picture.Explorer) Model {
	m := Model{ex: ex}
	m.syncFields()
	return m
}

// Run creates the explorer program with mouse support on the alternate screen
func Run(ex *picture.Explorer) *tea.Program {
	return tea.NewProgram(NewModel(ex), tea.WithAltScreen(), tea.WithMouseCellMotion())
}
