package stickerbook

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nobunaga0709/sticker-habit/internal/catalog"
	"github.com/nobunaga0709/sticker-habit/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

type Model struct {
	viewport viewport.Model
	catalog  *catalog.Catalog
	owned    map[string][]models.OwnedSticker
	width    int
	height   int
}

func New(cat *catalog.Catalog, width, height int) Model {
	vp := viewport.New(width, height)
	return Model{
		viewport: vp,
		catalog:  cat,
		owned:    make(map[string][]models.OwnedSticker),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

// SetOwned replaces the owned copies shown in the book.
func (m *Model) SetOwned(owned []models.OwnedSticker) {
	m.owned = make(map[string][]models.OwnedSticker)
	for _, o := range owned {
		m.owned[o.StickerID] = append(m.owned[o.StickerID], o)
	}
	m.Render()
}

func (m *Model) Render() {
	var b strings.Builder

	sections := []struct {
		rarity models.Rarity
		title  string
	}{
		{models.RarityNormal, "Normal"},
		{models.RarityRare, "Rare ★"},
		{models.RaritySuperRare, "Super Rare ★★"},
	}

	for _, section := range sections {
		b.WriteString(headerStyle.Render(section.title))
		b.WriteString("\n")

		for _, s := range m.catalog.All() {
			if s.Rarity != section.rarity {
				continue
			}

			copies := m.owned[s.ID]
			if len(copies) == 0 {
				b.WriteString(lockedStyle.Render("  🔒 ???"))
				b.WriteString("\n")
				continue
			}

			unused := 0
			for _, o := range copies {
				if !o.IsUsed {
					unused++
				}
			}
			b.WriteString(fmt.Sprintf("  %s %-24s %s\n",
				s.Emoji, s.Name,
				countStyle.Render(fmt.Sprintf("x%d (%d unused)", len(copies), unused))))
		}
		b.WriteString("\n")
	}

	m.viewport.SetContent(b.String())
}
