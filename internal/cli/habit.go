package cli

import (
	"fmt"

	"github.com/google/uuid"

	"habitflow/internal/models"
	"habitflow/internal/stats"
	"habitflow/internal/utils"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Toggle  HabitToggleCmd  `cmd:"" help:"Toggle a habit's completion for a day."`
	Disable HabitDisableCmd `cmd:"" help:"Disable a habit without losing its history."`
	Enable  HabitEnableCmd  `cmd:"" help:"Re-enable a disabled habit."`
	Remove  HabitRemoveCmd  `cmd:"" help:"Remove a habit outright."`
}

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
	Icon string `help:"Icon shown in the checklist." default:"✅"`
	Slot string `help:"Time of day: Morning, Afternoon, Evening, or Anytime." default:"Anytime"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	slot := models.TimeSlot(c.Slot)
	if !models.ValidTimeSlot(slot) {
		return fmt.Errorf("invalid time slot %q (expected Morning, Afternoon, Evening, or Anytime)", c.Slot)
	}

	profile, err := ctx.LoadProfile()
	if err != nil {
		return err
	}

	if _, exists := profile.Habit(c.Name); exists {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	profile.Habits = append(profile.Habits, models.HabitDefinition{
		ID:     uuid.New().String(),
		Name:   c.Name,
		Icon:   c.Icon,
		Slot:   slot,
		Active: true,
	})

	if err := ctx.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s (%s)\n", c.Icon, c.Name, slot)
	return nil
}

type HabitListCmd struct {
	All bool `help:"Include disabled habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	profile, err := ctx.LoadProfile()
	if err != nil {
		return err
	}

	if len(profile.Habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, h := range profile.Habits {
		if !h.Active && !c.All {
			continue
		}
		status := ""
		if !h.Active {
			status = " [DISABLED]"
		}
		fmt.Printf("%s %s (%s, %s)%s\n", h.Icon, h.Name, h.Slot, stats.CategoryOf(h.Name), status)
	}

	return nil
}

type HabitToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	profile, err := ctx.LoadProfile()
	if err != nil {
		return err
	}

	if _, ok := profile.Habit(c.Name); !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	day, err := utils.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	rec := profile.Day(day)
	done := !rec.HabitCompletion[c.Name]
	rec.HabitCompletion[c.Name] = done
	profile.SetDay(day, rec)
	profile.XP += stats.XPDelta(c.Name, done)

	if err := ctx.SaveProfile(profile); err != nil {
		return err
	}

	streak := stats.Streak(profile.History, c.Name, utils.Today())
	if done {
		fmt.Printf("Completed %q for %s (streak: %d, +%d XP)\n", c.Name, day, streak, stats.XPDelta(c.Name, true))
	} else {
		fmt.Printf("Uncompleted %q for %s (streak: %d, %d XP)\n", c.Name, day, streak, stats.XPDelta(c.Name, false))
	}
	return nil
}

type HabitDisableCmd struct {
	Name string `arg:"" help:"Habit name to disable."`
}

func (c *HabitDisableCmd) Run(ctx *Context) error {
	return setHabitActive(ctx, c.Name, false)
}

type HabitEnableCmd struct {
	Name string `arg:"" help:"Habit name to enable."`
}

func (c *HabitEnableCmd) Run(ctx *Context) error {
	return setHabitActive(ctx, c.Name, true)
}

func setHabitActive(ctx *Context, name string, active bool) error {
	profile, err := ctx.LoadProfile()
	if err != nil {
		return err
	}

	found := false
	for i := range profile.Habits {
		if profile.Habits[i].Name == name {
			profile.Habits[i].Active = active
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("habit %q not found", name)
	}

	if err := ctx.SaveProfile(profile); err != nil {
		return err
	}

	if active {
		fmt.Printf("Enabled habit: %s\n", name)
	} else {
		fmt.Printf("Disabled habit: %s (history is kept)\n", name)
	}
	return nil
}

type HabitRemoveCmd struct {
	Name string `arg:"" help:"Habit name to remove."`
}

func (c *HabitRemoveCmd) Run(ctx *Context) error {
	profile, err := ctx.LoadProfile()
	if err != nil {
		return err
	}

	habits := make([]models.HabitDefinition, 0, len(profile.Habits))
	found := false
	for _, h := range profile.Habits {
		if h.Name == c.Name {
			found = true
			continue
		}
		habits = append(habits, h)
	}
	if !found {
		return fmt.Errorf("habit %q not found", c.Name)
	}
	profile.Habits = habits

	if err := ctx.SaveProfile(profile); err != nil {
		return err
	}

	// History entries referencing the removed habit are left in place.
	fmt.Printf("Removed habit: %s\n", c.Name)
	return nil
}
