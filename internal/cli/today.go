package cli

import (
	"fmt"

	"habitflow/internal/alerts"
	"habitflow/internal/models"
	"habitflow/internal/stats"
	"habitflow/internal/utils"
)

type TodayCmd struct{}

// Run prints the daily dashboard: the checklist grouped by time slot with
// live streaks, the level gauge, and any triggered health alerts.
func (c *TodayCmd) Run(ctx *Context) error {
	profile, err := ctx.LoadProfile()
	if err != nil {
		return err
	}

	today := utils.Today()
	rec := profile.Day(today)
	bySlot := profile.HabitsBySlot()

	fmt.Printf("Today: %s\n", today)

	completed, total := 0, 0
	for _, slot := range models.TimeSlotOrder {
		habits := bySlot[slot]
		if len(habits) == 0 {
			continue
		}
		fmt.Printf("\n%s\n", slot)
		for _, h := range habits {
			total++
			mark := "[ ]"
			if rec.HabitCompletion[h.Name] {
				mark = "[x]"
				completed++
			}
			line := fmt.Sprintf("  %s %s %s", mark, h.Icon, h.Name)
			if streak := stats.Streak(profile.History, h.Name, today); streak > 0 {
				line += fmt.Sprintf(" 🔥 %d", streak)
			}
			fmt.Println(line)
		}
	}

	if total > 0 {
		fmt.Printf("\nCompleted: %d/%d\n", completed, total)
	} else {
		fmt.Println("\nNo active habits. Add one with 'habitflow habit add'.")
	}

	level, progress := stats.Level(profile.XP)
	if level < 1 {
		level = 1
	}
	fmt.Printf("Level %d (%d/100 XP)\n", level, progress)

	for _, a := range alerts.Evaluate(rec) {
		prefix := "⚠"
		if a.Severity == alerts.SeverityCritical {
			prefix = "‼"
		}
		fmt.Printf("%s %s\n", prefix, a.Message)
	}

	return nil
}
