package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nobunaga0709/sticker-habit/internal/constants"
	"github.com/nobunaga0709/sticker-habit/internal/gacha"
	"github.com/nobunaga0709/sticker-habit/internal/ticket"
	"github.com/nobunaga0709/sticker-habit/internal/tui/components/habitlist"
	"github.com/nobunaga0709/sticker-habit/internal/tui/components/picker"
)

var habitIcons = []string{"✨", "💪", "📚", "🧘", "🏃", "💧", "🌙", "🍎", "🎨", "🪥"}

var habitColors = []string{"#a8d8ea", "#ffb6b9", "#fae3d9", "#bbded6", "#ffd3b4", "#c3aed6"}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					trimmed := strings.TrimSpace(s)
					if trimmed == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					if utf8.RuneCountInString(trimmed) > constants.MaxHabitNameLen {
						return fmt.Errorf("habit name must be at most %d characters", constants.MaxHabitNameLen)
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Icon").
				Options(huh.NewOptions(habitIcons...)...).
				Value(&fm.Icon),
			huh.NewSelect[string]().
				Title("Color").
				Options(huh.NewOptions(habitColors...)...).
				Value(&fm.Color),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Add Habit State
	if m.state == StateAddHabit {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateHabits
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if _, err := m.store.AddHabit(m.habitForm.Name, m.habitForm.Icon, m.habitForm.Color, time.Now()); err == nil {
				m.refresh()
				m.state = StateHabits
			} else {
				// Stay in form state on error to allow retry
				m.status = err.Error()
				m.form.State = huh.StateNormal
			}
		case huh.StateAborted:
			m.state = StateHabits
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Sticker Picker State
	if m.state == StatePickSticker {
		switch msg := msg.(type) {
		case picker.PickedMsg:
			m.completeHabit(m.pendingHabitID, msg.OwnedStickerID)
			m.state = StateHabits
			return m, nil
		case picker.CancelledMsg:
			m.state = StateHabits
			return m, nil
		default:
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
	}

	// Handle Confirm Delete State
	if m.state == StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y":
				if err := m.store.RemoveHabit(m.habitToDeleteID); err != nil {
					m.status = err.Error()
				} else {
					m.status = "Habit removed"
				}
				m.refresh()
				m.state = StateHabits
			case "n", "esc", "q":
				m.state = StateHabits
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.habitList.SetSize(msg.Width-4, msg.Height-6)
		m.book.SetSize(msg.Width-4, msg.Height-6)
		m.picker.SetSize(msg.Width-4, msg.Height-6)

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{Icon: habitIcons[0], Color: habitColors[0]}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.CompleteHabitMsg:
		return m.startCompletion(msg.ID)

	case habitlist.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		switch m.state {
		case StateGacha:
			if key.Matches(msg, m.keys.Draw) {
				m.drawSticker()
				return m, nil
			}
		case StateCalendar:
			if key.Matches(msg, m.keys.PrevMonth) {
				m.calendarMonth = m.calendarMonth.AddDate(0, -1, 0)
				return m, nil
			}
			if key.Matches(msg, m.keys.NextMonth) {
				m.calendarMonth = m.calendarMonth.AddDate(0, 1, 0)
				return m, nil
			}
		}
	}

	// Delegate to the active tab component
	var cmd tea.Cmd
	switch m.state {
	case StateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
	case StateStickers:
		m.book, cmd = m.book.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// startCompletion opens the sticker picker for the habit, unless the
// habit has already been completed today or there is nothing to place.
func (m Model) startCompletion(habitID string) (tea.Model, tea.Cmd) {
	today := time.Now().Format("2006-01-02")
	if m.store.HasCompletionOn(habitID, today) {
		m.status = "Already completed today"
		return m, nil
	}

	unused := m.store.UnusedStickers()
	if len(unused) == 0 {
		m.status = "No unused stickers. Draw one on the Gacha tab first!"
		return m, nil
	}

	items := make([]picker.Item, 0, len(unused))
	for _, o := range unused {
		if s, ok := m.store.Catalog().ByID(o.StickerID); ok {
			items = append(items, picker.Item{Owned: o, Sticker: s})
		}
	}

	m.pendingHabitID = habitID
	m.picker = picker.New(items, m.width-4, m.height-6)
	m.state = StatePickSticker
	return m, nil
}

func (m *Model) completeHabit(habitID, ownedStickerID string) {
	if _, err := m.store.CompleteHabit(habitID, ownedStickerID, time.Now()); err != nil {
		m.status = err.Error()
		return
	}

	if h, err := m.store.Habit(habitID); err == nil {
		m.status = fmt.Sprintf("✓ %s completed, streak %d", h.Name, h.Streak)
	}
	m.refresh()
}

func (m *Model) drawSticker() {
	now := time.Now()
	if err := m.store.Tick(now); err != nil {
		m.status = err.Error()
		return
	}

	owned, err := m.store.DrawReward(now)
	if err != nil {
		switch {
		case errors.Is(err, ticket.ErrNoTickets):
			m.status = "No tickets. Complete a habit and come back tomorrow!"
		case errors.Is(err, gacha.ErrExhausted):
			m.status = "Collection complete! There is nothing left to win."
		default:
			m.status = err.Error()
		}
		return
	}

	if s, ok := m.store.Catalog().ByID(owned.StickerID); ok {
		m.lastDraw = &s
	}
	m.refresh()
}
