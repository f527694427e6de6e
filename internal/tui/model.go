package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"habitflow/internal/models"
	"habitflow/internal/storage"
	"habitflow/internal/utils"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateStats
	StateAddHabit
)

// tabCount is the number of cycle-able tabs; form states sit outside the cycle.
const tabCount = 2

type HabitFormModel struct {
	Name string
	Icon string
	Slot models.TimeSlot
}

type Model struct {
	store     storage.Provider
	userID    string
	profile   models.Profile
	today     string
	state     SessionState
	keys      KeyMap
	help      help.Model
	cursor    int
	form      *huh.Form
	habitForm *HabitFormModel
	statusMsg string
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider, userID string) (Model, error) {
	profile, err := store.LoadProfile(userID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return Model{}, err
		}
		profile = models.DefaultProfile()
	}

	return Model{
		store:   store,
		userID:  userID,
		profile: profile,
		today:   utils.Today(),
		state:   StateToday,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}, nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateToday {
		keys = append(keys, m.keys.Toggle, m.keys.Add)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	if m.state == StateToday {
		actions = []key.Binding{m.keys.Toggle, m.keys.Add}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// orderedHabits flattens today's checklist into cursor order: slots in
// display order, profile order within each slot.
func (m Model) orderedHabits() []models.HabitDefinition {
	bySlot := m.profile.HabitsBySlot()
	var habits []models.HabitDefinition
	for _, slot := range models.TimeSlotOrder {
		habits = append(habits, bySlot[slot]...)
	}
	return habits
}

func (m *Model) clampCursor() {
	n := len(m.orderedHabits())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) saveProfile() {
	if err := m.store.SaveProfile(m.userID, m.profile); err != nil {
		m.statusMsg = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.statusMsg = ""
}

func newHabitForm(fm *HabitFormModel, taken map[string]bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					name := strings.TrimSpace(s)
					if name == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					if taken[name] {
						return fmt.Errorf("a habit named %q already exists", name)
					}
					return nil
				}),
			huh.NewInput().
				Title("Icon").
				Description("Emoji shown next to the habit").
				Value(&fm.Icon),
			huh.NewSelect[models.TimeSlot]().
				Title("Time Slot").
				Options(
					huh.NewOption("Morning", models.SlotMorning),
					huh.NewOption("Afternoon", models.SlotAfternoon),
					huh.NewOption("Evening", models.SlotEvening),
					huh.NewOption("Anytime", models.SlotAnytime),
				).
				Value(&fm.Slot),
		),
	).WithTheme(huh.ThemeDracula())
}
