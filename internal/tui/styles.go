package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228")).
			Padding(0, 1)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)

	ticketStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	rarityStyles = map[string]lipgloss.Style{
		"normal":     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		"rare":       lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		"super_rare": lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
	}

	calendarTodayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	calendarDimStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))
)
