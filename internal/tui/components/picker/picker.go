// Package picker is the unused-sticker chooser shown while completing
// a habit.
package picker

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nobunaga0709/sticker-habit/internal/models"
)

type PickedMsg struct {
	OwnedStickerID string
}

type CancelledMsg struct{}

type Item struct {
	Owned   models.OwnedSticker
	Sticker models.Sticker
}

func (i Item) Title() string {
	return fmt.Sprintf("%s %s", i.Sticker.Emoji, i.Sticker.Name)
}

func (i Item) Description() string {
	return fmt.Sprintf("%s | acquired %s", i.Sticker.Rarity, i.Owned.AcquiredAt.Format("2006-01-02"))
}

func (i Item) FilterValue() string { return i.Sticker.Name }

type Model struct {
	list   list.Model
	pick   key.Binding
	cancel key.Binding
}

func New(items []Item, width, height int) Model {
	l := list.New(toListItems(items), list.NewDefaultDelegate(), width, height)
	l.Title = "Pick a sticker"
	l.SetShowHelp(false)

	return Model{
		list: l,
		pick: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "place sticker"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

func toListItems(items []Item) []list.Item {
	out := make([]list.Item, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

func (m *Model) SetItems(items []Item) {
	m.list.SetItems(toListItems(items))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.pick):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return PickedMsg{OwnedStickerID: i.Owned.ID} }
			}
		case key.Matches(msg, m.cancel):
			return m, func() tea.Msg { return CancelledMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
