package migration

import (
	"time"

	"habitflow/internal/constants"
	"habitflow/internal/models"
)

// Record migration reconciles stored documents of any prior shape with the
// current defaults. Values of a compatible type are kept; anything missing or
// wrong-shaped falls back to the default. The functions are total: they never
// panic for any input, and migrating an already-current document is a no-op
// (aside from deep-copy semantics).

// daySections are the top-level keys of the current day record shape. In the
// earliest stored format habit completion flags lived flat at the top level
// next to "note"; any other top-level boolean is lifted into habitCompletion.
var daySections = map[string]bool{
	"habitCompletion": true,
	"note":            true,
	"metabolic":       true,
	"trainingLog":     true,
}

// Day migrates a raw stored day record into the current shape.
func Day(raw map[string]any) models.DayRecord {
	rec := models.DefaultDayRecord()
	if raw == nil {
		return rec
	}

	if hc, ok := asMap(raw["habitCompletion"]); ok {
		for name, v := range hc {
			if done, ok := v.(bool); ok {
				rec.HabitCompletion[name] = done
			}
		}
	}
	for key, v := range raw {
		if daySections[key] {
			continue
		}
		if done, ok := v.(bool); ok {
			rec.HabitCompletion[key] = done
		}
	}

	rec.Note = stringOr(raw["note"], rec.Note)

	if met, ok := asMap(raw["metabolic"]); ok {
		if sym, ok := asMap(met["symptoms"]); ok {
			for name, v := range sym {
				if present, ok := v.(bool); ok {
					rec.Metabolic.Symptoms[name] = present
				}
			}
		}
		if body, ok := asMap(met["body"]); ok {
			rec.Metabolic.Body.MorningHunger = boolOr(body["morningHunger"], false)
			if w, ok := floatVal(body["weight"]); ok && w > 0 {
				rec.Metabolic.Body.Weight = &w
			}
		}
		if sleep, ok := asMap(met["sleep"]); ok {
			rec.Metabolic.Sleep.Hours = floatOr(sleep["hours"], rec.Metabolic.Sleep.Hours)
			rec.Metabolic.Sleep.Quality = intOr(sleep["quality"], rec.Metabolic.Sleep.Quality)
		}
		if nl, ok := asMap(met["nutritionLog"]); ok {
			for _, slot := range constants.MealSlots {
				stored := nl[slot]
				if slot == constants.MealSlotSnack1 && stored == nil {
					// The single legacy "Snack" slot carries into "Snack 1".
					stored = nl[constants.LegacyMealSlotSnack]
				}
				if m, ok := asMap(stored); ok {
					entry := rec.Metabolic.NutritionLog[slot]
					entry.Description = stringOr(m["description"], entry.Description)
					if tags, ok := stringsVal(m["tags"]); ok {
						entry.Tags = tags
					}
					rec.Metabolic.NutritionLog[slot] = entry
				}
			}
		}
	}

	if tr, ok := asMap(raw["trainingLog"]); ok {
		if s, ok := tr["type"].(string); ok && models.ValidTrainingType(models.TrainingType(s)) {
			rec.TrainingLog.Type = models.TrainingType(s)
		}
		rec.TrainingLog.DurationMinutes = intOr(tr["durationMinutes"], rec.TrainingLog.DurationMinutes)
		rec.TrainingLog.IntensityRPE = intOr(tr["intensityRPE"], rec.TrainingLog.IntensityRPE)
		rec.TrainingLog.Notes = stringOr(tr["notes"], rec.TrainingLog.Notes)
	}

	return rec
}

// Profile migrates a raw stored profile. The habit list was stored under
// "config" before it was renamed to "habits", and each habit's time slot
// under "schedule" before "timeSlot". History keys that are not valid dates
// are skipped.
func Profile(raw map[string]any) models.Profile {
	p := models.Profile{
		Habits:  []models.HabitDefinition{},
		History: make(map[string]models.DayRecord),
	}
	if raw == nil {
		return p
	}

	p.XP = intOr(raw["xp"], 0)

	habits := raw["habits"]
	if habits == nil {
		habits = raw["config"]
	}
	if list, ok := habits.([]any); ok {
		for _, item := range list {
			m, ok := asMap(item)
			if !ok {
				continue
			}
			name := stringOr(m["name"], "")
			if name == "" {
				continue
			}
			slot := m["timeSlot"]
			if slot == nil {
				slot = m["schedule"]
			}
			h := models.HabitDefinition{
				ID:     stringOr(m["id"], ""),
				Name:   name,
				Icon:   stringOr(m["icon"], "✅"),
				Slot:   models.SlotAnytime,
				Active: boolOr(m["active"], true),
			}
			if s, ok := slot.(string); ok && models.ValidTimeSlot(models.TimeSlot(s)) {
				h.Slot = models.TimeSlot(s)
			}
			p.Habits = append(p.Habits, h)
		}
	}

	if history, ok := asMap(raw["history"]); ok {
		for date, v := range history {
			if _, err := time.Parse(constants.DateFormat, date); err != nil {
				continue
			}
			if day, ok := asMap(v); ok {
				p.History[date] = Day(day)
			}
		}
	}

	return p
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func boolOr(v any, def bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

// floatVal accepts both float64 and int, since decoded JSON numbers are
// float64 but in-memory documents may carry ints.
func floatVal(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func floatOr(v any, def float64) float64 {
	if f, ok := floatVal(v); ok {
		return f
	}
	return def
}

func intOr(v any, def int) int {
	if f, ok := floatVal(v); ok {
		return int(f)
	}
	return def
}

func stringsVal(v any) ([]string, bool) {
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	tags := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags, true
}
