package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nobunaga0709/sticker-habit/internal/app"
	"github.com/nobunaga0709/sticker-habit/internal/models"
	"github.com/nobunaga0709/sticker-habit/internal/tui/components/habitlist"
	"github.com/nobunaga0709/sticker-habit/internal/tui/components/picker"
	"github.com/nobunaga0709/sticker-habit/internal/tui/components/stickerbook"
	"github.com/nobunaga0709/sticker-habit/internal/validation"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateGacha
	StateStickers
	StateCalendar
	StateAddHabit
	StatePickSticker
	StateConfirmDelete
)

// tabCount covers only the states reachable with tab.
const tabCount = 4

type HabitFormModel struct {
	Name  string
	Icon  string
	Color string
}

type Model struct {
	store             *app.Store
	state             SessionState
	keys              KeyMap
	help              help.Model
	habitList         habitlist.Model
	book              stickerbook.Model
	picker            picker.Model
	form              *huh.Form
	habitForm         *HabitFormModel
	pendingHabitID    string
	habitToDeleteID   string
	lastDraw          *models.Sticker
	status            string
	validationWarning string
	calendarMonth     time.Time
	quitting          bool
	width             int
	height            int
}

func NewModel(store *app.Store) Model {
	m := Model{
		store:         store,
		state:         StateHabits,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		habitList:     habitlist.New(nil, 0, 0),
		book:          stickerbook.New(store.Catalog(), 0, 0),
		calendarMonth: time.Now(),
	}
	m.refresh()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateHabits:
		keys = append(keys, m.keys.Add, m.keys.Complete, m.keys.Delete)
	case StateGacha:
		keys = append(keys, m.keys.Draw)
	case StateCalendar:
		keys = append(keys, m.keys.PrevMonth, m.keys.NextMonth)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateHabits:
		actions = []key.Binding{m.keys.Add, m.keys.Complete, m.keys.Delete}
	case StateGacha:
		actions = []key.Binding{m.keys.Draw}
	case StateCalendar:
		actions = []key.Binding{m.keys.PrevMonth, m.keys.NextMonth}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh rebuilds every view component from the store.
func (m *Model) refresh() {
	today := time.Now().Format("2006-01-02")

	habits := m.store.Habits()
	items := make([]habitlist.Item, len(habits))
	for i, h := range habits {
		items[i] = habitlist.Item{
			Habit:     h,
			DoneToday: m.store.HasCompletionOn(h.ID, today),
		}
	}
	m.habitList.SetItems(items)

	m.book.SetOwned(m.store.OwnedStickers())

	m.updateValidationStatus()
}

// updateValidationStatus runs validation and updates the warning message
func (m *Model) updateValidationStatus() {
	result := validation.New().ValidateState(m.store.State(), m.store.Catalog())
	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
}
