package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"habitflow/internal/alerts"
	"habitflow/internal/models"
	"habitflow/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = docStyle.Render(m.viewToday())
	case StateStats:
		content = docStyle.Render(m.viewStats())
	case StateAddHabit:
		content = m.form.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Stats"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	var b strings.Builder

	rec, ok := m.profile.History[m.today]
	if !ok {
		rec = models.DefaultDayRecord()
	}
	streaks := stats.Streaks(&m.profile, m.today)
	bySlot := m.profile.HabitsBySlot()

	b.WriteString(fmt.Sprintf("%s\n\n", m.today))

	row := 0
	for _, slot := range models.TimeSlotOrder {
		habits := bySlot[slot]
		if len(habits) == 0 {
			continue
		}
		b.WriteString(slotHeaderStyle.Render(string(slot)) + "\n")
		for _, h := range habits {
			line := m.habitLine(h, rec, streaks[h.Name])
			if row == m.cursor {
				line = cursorStyle.Render("▸ ") + line
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
			row++
		}
		b.WriteString("\n")
	}

	if row == 0 {
		b.WriteString(dimStyle.Render("No active habits. Press 'a' to add one.") + "\n\n")
	}

	b.WriteString(m.viewLevel() + "\n")

	for _, a := range alerts.Evaluate(rec) {
		switch a.Severity {
		case alerts.SeverityCritical:
			b.WriteString(criticalStyle.Render("‼ "+a.Message) + "\n")
		default:
			b.WriteString(warningStyle.Render("⚠ "+a.Message) + "\n")
		}
	}

	if m.statusMsg != "" {
		b.WriteString("\n" + statusStyle.Render(m.statusMsg))
	}

	return b.String()
}

func (m Model) habitLine(h models.HabitDefinition, rec models.DayRecord, streak int) string {
	check := "[ ]"
	if rec.HabitCompletion[h.Name] {
		check = doneStyle.Render("[x]")
	}
	line := fmt.Sprintf("%s %s %s", check, h.Icon, h.Name)
	if streak > 1 {
		line += dimStyle.Render(fmt.Sprintf("  🔥 %d", streak))
	}
	return line
}

func (m Model) viewLevel() string {
	level, progress := stats.Level(m.profile.XP)
	if level < 1 {
		level = 1
	}

	const barWidth = 20
	filled := progress * barWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return levelStyle.Render(fmt.Sprintf("Level %d", level)) +
		fmt.Sprintf("  %s %d/100 XP", bar, progress)
}

func (m Model) viewStats() string {
	var b strings.Builder

	b.WriteString(slotHeaderStyle.Render("Last 7 days") + "\n")
	for _, day := range stats.TrailingWindow(m.profile.History, m.today, 7) {
		bar := strings.Repeat("█", day.Completed)
		if day.Completed == 0 {
			bar = dimStyle.Render("·")
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", day.Date, bar))
	}
	b.WriteString("\n")

	b.WriteString(slotHeaderStyle.Render("Top habits") + "\n")
	top := stats.TopHabits(m.profile.History)
	if len(top) == 0 {
		b.WriteString(dimStyle.Render("  Nothing completed yet.") + "\n")
	}
	for i, hc := range top {
		if i >= 5 {
			break
		}
		b.WriteString(fmt.Sprintf("  %-20s %d\n", hc.Name, hc.Count))
	}
	b.WriteString("\n")

	b.WriteString(slotHeaderStyle.Render("Categories (30 days)") + "\n")
	byCategory := stats.CategoryCompletion(m.profile.Habits, m.profile.History, m.today, 30)
	for _, category := range stats.CategoryOrder {
		pct, ok := byCategory[category]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("  %-12s %5.1f%%\n", category, pct))
	}

	return b.String()
}
