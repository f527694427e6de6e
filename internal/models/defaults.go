package models

import "habitflow/internal/constants"

// DefaultDayRecord returns the canonical empty shape for a day: every field
// present at its default value. Each call returns a fresh instance; records
// must never share mutable sub-objects.
func DefaultDayRecord() DayRecord {
	symptoms := make(map[string]bool, len(constants.Symptoms))
	for _, s := range constants.Symptoms {
		symptoms[s] = false
	}

	nutrition := make(map[string]MealEntry, len(constants.MealSlots))
	for _, slot := range constants.MealSlots {
		nutrition[slot] = MealEntry{Description: "", Tags: []string{}}
	}

	return DayRecord{
		HabitCompletion: make(map[string]bool),
		Note:            "",
		Metabolic: Metabolic{
			Symptoms: symptoms,
			Body:     BodyMetrics{Weight: nil, MorningHunger: false},
			Sleep: SleepLog{
				Hours:   constants.DefaultSleepHours,
				Quality: constants.DefaultSleepQuality,
			},
			NutritionLog: nutrition,
		},
		TrainingLog: TrainingLog{
			Type:            TrainingRest,
			DurationMinutes: 0,
			IntensityRPE:    constants.DefaultIntensityRPE,
			Notes:           "",
		},
	}
}

// DefaultProfile returns the first-run profile with the starter habit set and
// an empty history.
func DefaultProfile() Profile {
	return Profile{
		XP: 0,
		Habits: []HabitDefinition{
			{Name: "Drink Water", Icon: "💧", Slot: SlotMorning, Active: true},
			{Name: "Deep Work", Icon: "🧠", Slot: SlotAfternoon, Active: true},
			{Name: "Reading", Icon: "📚", Slot: SlotEvening, Active: true},
		},
		History: make(map[string]DayRecord),
	}
}
