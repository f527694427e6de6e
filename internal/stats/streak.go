package stats

import (
	"sort"

	"habitflow/internal/models"
)

// Streak returns the current consecutive-completion count for a habit,
// walking the history backward from its most recent date. A day where the
// habit is unmarked breaks the streak unless that day is today: "not done
// yet" must not zero out yesterday's run while today is still in progress.
//
// ISO dates sort lexicographically in chronological order, so no parsing is
// needed. An unknown habit name yields 0.
func Streak(history map[string]models.DayRecord, habitName, today string) int {
	dates := make([]string, 0, len(history))
	for d := range history {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	streak := 0
	for _, d := range dates {
		if history[d].HabitCompletion[habitName] {
			streak++
			continue
		}
		if d == today {
			continue
		}
		break
	}
	return streak
}

// Streaks computes the current streak for every habit in the profile.
func Streaks(p *models.Profile, today string) map[string]int {
	streaks := make(map[string]int, len(p.Habits))
	for _, h := range p.Habits {
		streaks[h.Name] = Streak(p.History, h.Name, today)
	}
	return streaks
}
