package stats

import (
	"testing"

	"habitflow/internal/models"
)

func day(habits map[string]bool) models.DayRecord {
	rec := models.DefaultDayRecord()
	for name, done := range habits {
		rec.HabitCompletion[name] = done
	}
	return rec
}

func TestStreak_TodayInProgressDoesNotBreak(t *testing.T) {
	history := map[string]models.DayRecord{
		"2024-01-01": day(map[string]bool{"Reading": true}),
		"2024-01-02": day(map[string]bool{"Reading": true}),
		"2024-01-03": day(nil), // today, nothing marked yet
	}

	if got := Streak(history, "Reading", "2024-01-03"); got != 2 {
		t.Errorf("expected streak 2 with today in progress, got %d", got)
	}
}

func TestStreak_TodayCompletedExtends(t *testing.T) {
	history := map[string]models.DayRecord{
		"2024-01-01": day(map[string]bool{"Reading": true}),
		"2024-01-02": day(map[string]bool{"Reading": true}),
		"2024-01-03": day(map[string]bool{"Reading": true}),
	}

	if got := Streak(history, "Reading", "2024-01-03"); got != 3 {
		t.Errorf("expected streak 3, got %d", got)
	}
}

func TestStreak_PastGapBreaks(t *testing.T) {
	history := map[string]models.DayRecord{
		"2024-01-01": day(map[string]bool{"Reading": true}),
		"2024-01-02": day(map[string]bool{"Reading": false}),
		"2024-01-03": day(map[string]bool{"Reading": true}),
		"2024-01-04": day(map[string]bool{"Reading": true}),
	}

	if got := Streak(history, "Reading", "2024-01-04"); got != 2 {
		t.Errorf("expected streak 2 after the gap on Jan 2, got %d", got)
	}
}

func TestStreak_UnknownHabitIsZero(t *testing.T) {
	history := map[string]models.DayRecord{
		"2024-01-01": day(map[string]bool{"Reading": true}),
	}

	if got := Streak(history, "Juggling", "2024-01-01"); got != 0 {
		t.Errorf("expected 0 for unknown habit, got %d", got)
	}
}

func TestStreak_EmptyHistoryIsZero(t *testing.T) {
	if got := Streak(map[string]models.DayRecord{}, "Reading", "2024-01-01"); got != 0 {
		t.Errorf("expected 0 for empty history, got %d", got)
	}
}

func TestStreak_CompletingTodayNeverDecreases(t *testing.T) {
	history := map[string]models.DayRecord{
		"2024-01-01": day(map[string]bool{"Reading": true}),
		"2024-01-02": day(map[string]bool{"Reading": true}),
		"2024-01-03": day(nil),
	}

	before := Streak(history, "Reading", "2024-01-03")

	rec := history["2024-01-03"]
	rec.HabitCompletion["Reading"] = true
	history["2024-01-03"] = rec

	after := Streak(history, "Reading", "2024-01-03")
	if after < before {
		t.Errorf("completing today decreased the streak: %d -> %d", before, after)
	}
	if after != before+1 {
		t.Errorf("completing today should extend the streak: %d -> %d", before, after)
	}
}

func TestStreaks_CoversAllProfileHabits(t *testing.T) {
	p := models.Profile{
		Habits: []models.HabitDefinition{
			{Name: "Reading", Active: true},
			{Name: "Drink Water", Active: false},
		},
		History: map[string]models.DayRecord{
			"2024-01-01": day(map[string]bool{"Reading": true}),
		},
	}

	streaks := Streaks(&p, "2024-01-01")
	if streaks["Reading"] != 1 {
		t.Errorf("expected Reading streak 1, got %d", streaks["Reading"])
	}
	if got, ok := streaks["Drink Water"]; !ok || got != 0 {
		t.Errorf("inactive habits still get an entry, got %d (present=%v)", got, ok)
	}
}
