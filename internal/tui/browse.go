// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package tui implements the interactive shape browser.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/staranto/shapectl/internal/geometry"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

// item adapts a shape to the bubbles list delegate.
type item struct {
	shape     *geometry.Shape
	precision int
}

func (i item) Title() string {
	return fmt.Sprintf("%s (%s)", i.shape.Name(), i.shape.Figure().Dimensions(i.precision))
}

func (i item) Description() string {
	return fmt.Sprintf("Area %.*f, %s %.*f",
		i.precision, i.shape.Area(),
		i.shape.PerimeterLabel(),
		i.precision, i.shape.Perimeter())
}

func (i item) FilterValue() string { return i.shape.Name() }

type model struct {
	list list.Model
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return docStyle.Render(m.list.View())
}

// Browse runs the interactive browser until the user quits.
func Browse(shapes []*geometry.Shape, precision int) error {
	items := make([]list.Item, 0, len(shapes))
	for _, s := range shapes {
		items = append(items, item{shape: s, precision: precision})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Shapes"

	p := tea.NewProgram(model{list: l}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
