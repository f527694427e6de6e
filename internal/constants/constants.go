package constants

const (
	AppName            = "habitflow"
	Version            = "v0.3.1"
	DefaultConfigPath  = "~/.config/habitflow/habitflow.json"
	DefaultKeyringUser = "database-connection"
	DefaultUserID      = "default"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// XP constants
	XPBase      = 10  // XP awarded for completing a habit
	XPHighValue = 15  // XP awarded for completing a high-value habit
	XPPerLevel  = 100 // XP required per level

	// Day record defaults
	DefaultSleepHours   = 7.0
	DefaultSleepQuality = 3
	DefaultIntensityRPE = 5

	// Alert thresholds
	MinCoreMeals     = 2
	LowSleepHours    = 6.0
	HighIntensityRPE = 7

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitflow-"
)

// Meal slot names. These are persisted as nutritionLog keys, so renaming one
// requires a matching rename rule in the record migrator.
const (
	MealSlotBreakfast = "Breakfast"
	MealSlotLunch     = "Lunch"
	MealSlotDinner    = "Dinner"
	MealSlotSnack1    = "Snack 1"
	MealSlotSnack2    = "Snack 2"

	// LegacyMealSlotSnack is the single snack slot used before it was split in two.
	LegacyMealSlotSnack = "Snack"
)

// MealSlots is the full set of tracked meal slots in display order.
var MealSlots = []string{
	MealSlotBreakfast,
	MealSlotLunch,
	MealSlotDinner,
	MealSlotSnack1,
	MealSlotSnack2,
}

// CoreMealSlots are the meals counted by the nutrition alert rule.
var CoreMealSlots = []string{MealSlotBreakfast, MealSlotLunch, MealSlotDinner}

// Symptom names persisted as metabolic.symptoms keys.
const (
	SymptomFever      = "fever"
	SymptomSoreThroat = "sore_throat"
	SymptomFatigue    = "fatigue"
	SymptomHeadache   = "headache"
	SymptomNausea     = "nausea"
)

// Symptoms is the tracked symptom set in display order.
var Symptoms = []string{
	SymptomFever,
	SymptomSoreThroat,
	SymptomFatigue,
	SymptomHeadache,
	SymptomNausea,
}
