package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/wishmaker/internal/screen"
)

// RunPickerTUI starts the interactive color picker and returns the hex
// code of the color on screen when it closed
func RunPickerTUI(scr *screen.Screen, opts PickerOptions) (string, error) {
	model := NewPickerModel(scr, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	if m, ok := finalModel.(PickerModel); ok {
		return m.Hex(), nil
	}
	return scr.Hex(), nil
}
