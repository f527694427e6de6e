package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"habitflow/internal/models"
	"habitflow/internal/stats"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.state == StateAddHabit {
			return m.updateAddHabit(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
		case key.Matches(msg, m.keys.Up):
			if m.state == StateToday && m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.state == StateToday && m.cursor < len(m.orderedHabits())-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if m.state == StateToday {
				m.toggleSelected()
			}
		case key.Matches(msg, m.keys.Add):
			if m.state == StateToday {
				m.habitForm = &HabitFormModel{Slot: models.SlotAnytime}
				taken := make(map[string]bool, len(m.profile.Habits))
				for _, h := range m.profile.Habits {
					taken[h.Name] = true
				}
				m.form = newHabitForm(m.habitForm, taken)
				m.state = StateAddHabit
				return m, m.form.Init()
			}
		}
	}

	return m, nil
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = StateToday
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.profile.Habits = append(m.profile.Habits, models.HabitDefinition{
			ID:     uuid.New().String(),
			Name:   strings.TrimSpace(m.habitForm.Name),
			Icon:   m.habitForm.Icon,
			Slot:   m.habitForm.Slot,
			Active: true,
		})
		m.saveProfile()
		m.state = StateToday
	case huh.StateAborted:
		m.state = StateToday
	}

	return m, cmd
}

// toggleSelected flips the habit under the cursor for today, adjusts XP, and
// persists the whole profile immediately.
func (m *Model) toggleSelected() {
	habits := m.orderedHabits()
	m.clampCursor()
	if len(habits) == 0 {
		return
	}

	habit := habits[m.cursor]
	rec := m.profile.Day(m.today)
	done := !rec.HabitCompletion[habit.Name]
	rec.HabitCompletion[habit.Name] = done
	m.profile.SetDay(m.today, rec)
	m.profile.XP += stats.XPDelta(habit.Name, done)

	m.saveProfile()
	if m.statusMsg == "" {
		if done {
			m.statusMsg = fmt.Sprintf("%s done (+%d XP)", habit.Name, stats.XPDelta(habit.Name, true))
		} else {
			m.statusMsg = fmt.Sprintf("%s unchecked", habit.Name)
		}
	}
}
