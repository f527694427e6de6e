package models

// TrainingType is the kind of training session logged for a day.
type TrainingType string

const (
	TrainingRest         TrainingType = "Rest"
	TrainingCalisthenics TrainingType = "Calisthenics"
	TrainingWeights      TrainingType = "Weights"
	TrainingCardio       TrainingType = "Cardio"
	TrainingMobility     TrainingType = "Mobility"
)

// TrainingTypes lists the valid training types in display order.
var TrainingTypes = []TrainingType{
	TrainingRest,
	TrainingCalisthenics,
	TrainingWeights,
	TrainingCardio,
	TrainingMobility,
}

// ValidTrainingType reports whether t is a known training type.
func ValidTrainingType(t TrainingType) bool {
	switch t {
	case TrainingRest, TrainingCalisthenics, TrainingWeights, TrainingCardio, TrainingMobility:
		return true
	}
	return false
}

// DayRecord is the complete set of tracked data for one calendar date. The
// json field names are the persistence contract and must not change without a
// migration rule.
type DayRecord struct {
	HabitCompletion map[string]bool `json:"habitCompletion"`
	Note            string          `json:"note"`
	Metabolic       Metabolic       `json:"metabolic"`
	TrainingLog     TrainingLog     `json:"trainingLog"`
}

// Metabolic groups the health metrics logged for a day.
type Metabolic struct {
	Symptoms     map[string]bool      `json:"symptoms"`
	Body         BodyMetrics          `json:"body"`
	Sleep        SleepLog             `json:"sleep"`
	NutritionLog map[string]MealEntry `json:"nutritionLog"`
}

// BodyMetrics holds the morning body measurements. Weight is a pointer so
// that "not measured" is distinguishable from zero.
type BodyMetrics struct {
	Weight        *float64 `json:"weight"`
	MorningHunger bool     `json:"morningHunger"`
}

// SleepLog records the previous night's sleep. Quality is on a 1-5 scale.
type SleepLog struct {
	Hours   float64 `json:"hours"`
	Quality int     `json:"quality"`
}

// MealEntry is one logged meal slot.
type MealEntry struct {
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Logged reports whether anything was recorded for this meal slot.
func (m MealEntry) Logged() bool {
	return m.Description != ""
}

// TrainingLog records the day's training session. IntensityRPE is rate of
// perceived exertion on a 1-10 scale.
type TrainingLog struct {
	Type            TrainingType `json:"type"`
	DurationMinutes int          `json:"durationMinutes"`
	IntensityRPE    int          `json:"intensityRPE"`
	Notes           string       `json:"notes"`
}

// CompletedCount returns the number of habits marked done on this day.
func (r DayRecord) CompletedCount() int {
	count := 0
	for _, done := range r.HabitCompletion {
		if done {
			count++
		}
	}
	return count
}

// LoggedMeals counts the given meal slots with a logged entry.
func (r DayRecord) LoggedMeals(slots []string) int {
	count := 0
	for _, slot := range slots {
		if r.Metabolic.NutritionLog[slot].Logged() {
			count++
		}
	}
	return count
}
