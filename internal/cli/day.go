package cli

import (
	"fmt"
	"strings"

	"habitflow/internal/constants"
	"habitflow/internal/models"
	"habitflow/internal/utils"
)

// DayCmd edits a single day's record one field at a time. Every subcommand
// follows the same read-modify-write cycle: load, mutate one field, save.
type DayCmd struct {
	Note     DayNoteCmd     `cmd:"" help:"Set the day's note."`
	Sleep    DaySleepCmd    `cmd:"" help:"Log sleep hours and quality."`
	Weight   DayWeightCmd   `cmd:"" help:"Log morning weight."`
	Hunger   DayHungerCmd   `cmd:"" help:"Toggle morning hunger."`
	Meal     DayMealCmd     `cmd:"" help:"Log a meal slot."`
	Training DayTrainingCmd `cmd:"" help:"Log the day's training session."`
	Symptom  DaySymptomCmd  `cmd:"" help:"Mark or clear a symptom."`
	Show     DayShowCmd     `cmd:"" help:"Show the full record for a day."`
}

func mutateDay(ctx *Context, date string, mutate func(*models.DayRecord) error) error {
	profile, err := ctx.LoadProfile()
	if err != nil {
		return err
	}

	day, err := utils.ResolveDate(date)
	if err != nil {
		return err
	}

	rec := profile.Day(day)
	if err := mutate(&rec); err != nil {
		return err
	}
	profile.SetDay(day, rec)

	return ctx.SaveProfile(profile)
}

type DayNoteCmd struct {
	Text string `arg:"" help:"Note text."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *DayNoteCmd) Run(ctx *Context) error {
	err := mutateDay(ctx, c.Date, func(rec *models.DayRecord) error {
		rec.Note = c.Text
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Println("Note saved.")
	return nil
}

type DaySleepCmd struct {
	Hours   float64 `arg:"" help:"Hours slept."`
	Quality int     `help:"Sleep quality on a 1-5 scale." default:"3"`
	Date    string  `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *DaySleepCmd) Run(ctx *Context) error {
	if c.Quality < 1 || c.Quality > 5 {
		return fmt.Errorf("sleep quality must be between 1 and 5")
	}
	err := mutateDay(ctx, c.Date, func(rec *models.DayRecord) error {
		rec.Metabolic.Sleep.Hours = c.Hours
		rec.Metabolic.Sleep.Quality = c.Quality
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Printf("Logged %.1fh sleep (quality %d/5)\n", c.Hours, c.Quality)
	return nil
}

type DayWeightCmd struct {
	Value float64 `arg:"" help:"Weight in kg. Zero clears the measurement."`
	Date  string  `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *DayWeightCmd) Run(ctx *Context) error {
	err := mutateDay(ctx, c.Date, func(rec *models.DayRecord) error {
		if c.Value > 0 {
			w := c.Value
			rec.Metabolic.Body.Weight = &w
		} else {
			rec.Metabolic.Body.Weight = nil
		}
		return nil
	})
	if err != nil {
		return err
	}
	if c.Value > 0 {
		fmt.Printf("Logged weight: %.1f kg\n", c.Value)
	} else {
		fmt.Println("Cleared weight measurement.")
	}
	return nil
}

type DayHungerCmd struct {
	Off  bool   `help:"Clear the morning hunger flag instead of setting it."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *DayHungerCmd) Run(ctx *Context) error {
	err := mutateDay(ctx, c.Date, func(rec *models.DayRecord) error {
		rec.Metabolic.Body.MorningHunger = !c.Off
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Printf("Morning hunger: %v\n", !c.Off)
	return nil
}

type DayMealCmd struct {
	Slot        string `arg:"" help:"Meal slot: Breakfast, Lunch, Dinner, 'Snack 1', or 'Snack 2'."`
	Description string `arg:"" help:"What was eaten."`
	Tags        string `help:"Comma-separated tags (e.g. high-protein,vegetarian)." default:""`
	Date        string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *DayMealCmd) Run(ctx *Context) error {
	valid := false
	for _, slot := range constants.MealSlots {
		if slot == c.Slot {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown meal slot %q (expected one of: %s)", c.Slot, strings.Join(constants.MealSlots, ", "))
	}

	tags := []string{}
	for _, t := range strings.Split(c.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	err := mutateDay(ctx, c.Date, func(rec *models.DayRecord) error {
		rec.Metabolic.NutritionLog[c.Slot] = models.MealEntry{
			Description: c.Description,
			Tags:        tags,
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Printf("Logged %s: %s\n", c.Slot, c.Description)
	return nil
}

type DayTrainingCmd struct {
	Type     string `arg:"" help:"Training type: Rest, Calisthenics, Weights, Cardio, or Mobility."`
	Duration int    `help:"Duration in minutes." default:"0"`
	Rpe      int    `help:"Intensity as RPE on a 1-10 scale." default:"5"`
	Notes    string `help:"Session notes." default:""`
	Date     string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *DayTrainingCmd) Run(ctx *Context) error {
	trainingType := models.TrainingType(c.Type)
	if !models.ValidTrainingType(trainingType) {
		return fmt.Errorf("unknown training type %q", c.Type)
	}
	if c.Rpe < 1 || c.Rpe > 10 {
		return fmt.Errorf("intensity RPE must be between 1 and 10")
	}

	err := mutateDay(ctx, c.Date, func(rec *models.DayRecord) error {
		rec.TrainingLog = models.TrainingLog{
			Type:            trainingType,
			DurationMinutes: c.Duration,
			IntensityRPE:    c.Rpe,
			Notes:           c.Notes,
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Printf("Logged training: %s, %d min, RPE %d\n", c.Type, c.Duration, c.Rpe)
	return nil
}

type DaySymptomCmd struct {
	Name  string `arg:"" help:"Symptom name (fever, sore_throat, fatigue, headache, nausea)."`
	Clear bool   `help:"Clear the symptom instead of marking it."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *DaySymptomCmd) Run(ctx *Context) error {
	valid := false
	for _, s := range constants.Symptoms {
		if s == c.Name {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown symptom %q (expected one of: %s)", c.Name, strings.Join(constants.Symptoms, ", "))
	}

	err := mutateDay(ctx, c.Date, func(rec *models.DayRecord) error {
		rec.Metabolic.Symptoms[c.Name] = !c.Clear
		return nil
	})
	if err != nil {
		return err
	}
	if c.Clear {
		fmt.Printf("Cleared symptom: %s\n", c.Name)
	} else {
		fmt.Printf("Marked symptom: %s\n", c.Name)
	}
	return nil
}

type DayShowCmd struct {
	Date string `arg:"" optional:"" help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *DayShowCmd) Run(ctx *Context) error {
	profile, err := ctx.LoadProfile()
	if err != nil {
		return err
	}

	day, err := utils.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	rec, ok := profile.History[day]
	if !ok {
		fmt.Printf("No record for %s.\n", day)
		return nil
	}

	fmt.Printf("Record for %s\n\n", day)

	fmt.Println("Habits:")
	for name, done := range rec.HabitCompletion {
		mark := "[ ]"
		if done {
			mark = "[x]"
		}
		fmt.Printf("  %s %s\n", mark, name)
	}

	if rec.Note != "" {
		fmt.Printf("\nNote: %s\n", rec.Note)
	}

	fmt.Printf("\nSleep: %.1fh (quality %d/5)\n", rec.Metabolic.Sleep.Hours, rec.Metabolic.Sleep.Quality)
	if rec.Metabolic.Body.Weight != nil {
		fmt.Printf("Weight: %.1f kg\n", *rec.Metabolic.Body.Weight)
	}

	active := []string{}
	for _, s := range constants.Symptoms {
		if rec.Metabolic.Symptoms[s] {
			active = append(active, s)
		}
	}
	if len(active) > 0 {
		fmt.Printf("Symptoms: %s\n", strings.Join(active, ", "))
	}

	fmt.Println("\nMeals:")
	for _, slot := range constants.MealSlots {
		entry := rec.Metabolic.NutritionLog[slot]
		if !entry.Logged() {
			continue
		}
		line := fmt.Sprintf("  %s: %s", slot, entry.Description)
		if len(entry.Tags) > 0 {
			line += fmt.Sprintf(" (%s)", strings.Join(entry.Tags, ", "))
		}
		fmt.Println(line)
	}

	fmt.Printf("\nTraining: %s", rec.TrainingLog.Type)
	if rec.TrainingLog.Type != models.TrainingRest {
		fmt.Printf(", %d min, RPE %d", rec.TrainingLog.DurationMinutes, rec.TrainingLog.IntensityRPE)
	}
	fmt.Println()

	return nil
}
