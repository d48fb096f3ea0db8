package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateHabits:
		content = docStyle.Render(m.habitList.View())
	case StateGacha:
		content = m.viewGacha()
	case StateStickers:
		content = docStyle.Render(m.book.View())
	case StateCalendar:
		content = docStyle.Render(m.viewCalendar())
	case StateAddHabit:
		content = m.form.View()
	case StatePickSticker:
		content = docStyle.Render(m.picker.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)

	return ui
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Habits", "Gacha", "Stickers", "Calendar"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	tickets := ticketStyle.Render(fmt.Sprintf("🎟 %d", m.store.TicketCount()))
	return lipgloss.JoinHorizontal(lipgloss.Top, row, "  ", tickets)
}

func (m Model) viewStatus() string {
	if m.validationWarning != "" && m.status == "" {
		return warningStyle.Render(m.validationWarning)
	}
	if m.status == "" {
		return ""
	}
	return statusStyle.Render(m.status)
}

func (m Model) viewGacha() string {
	var lines []string

	lines = append(lines,
		fmt.Sprintf("Tickets: %d", m.store.TicketCount()),
		fmt.Sprintf("Collection: %d/%d", m.store.CollectedCount(), m.store.Catalog().Size()),
		"",
	)

	if m.lastDraw != nil {
		style, ok := rarityStyles[string(m.lastDraw.Rarity)]
		if !ok {
			style = rarityStyles["normal"]
		}
		lines = append(lines,
			"🎰 You won:",
			style.Render(fmt.Sprintf("  %s %s (%s)", m.lastDraw.Emoji, m.lastDraw.Name, m.lastDraw.Rarity)),
			"",
		)
	}

	lines = append(lines, "Press 'g' to draw a sticker")

	return lipgloss.Place(m.width, m.height-6,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...),
	)
}

// viewCalendar renders one month with the sticker placed on each day
// that has at least one completion.
func (m Model) viewCalendar() string {
	year, month := m.calendarMonth.Year(), m.calendarMonth.Month()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	today := time.Now().Format("2006-01-02")

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %d\n\n", month, year))
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")

	// Leading blanks up to the first weekday
	col := int(first.Weekday())
	b.WriteString(strings.Repeat("    ", col))

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local).Format("2006-01-02")

		cell := fmt.Sprintf(" %2d ", day)
		records := m.store.RecordsOn(date)
		if len(records) > 0 {
			if s, ok := m.store.Catalog().ByID(records[0].StickerID); ok {
				cell = fmt.Sprintf(" %s ", s.Emoji)
			}
		}

		switch {
		case date == today:
			b.WriteString(calendarTodayStyle.Render(cell))
		case len(records) == 0:
			b.WriteString(calendarDimStyle.Render(cell))
		default:
			b.WriteString(cell)
		}

		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\nh/l to change month")
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this habit and its completion history?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
