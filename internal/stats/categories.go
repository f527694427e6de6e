package stats

// Habit categories for rollup reporting and XP weighting. The mapping is
// static; habits not listed fall into General.
const (
	CategoryFocus    = "Focus"
	CategoryStrength = "Strength"
	CategoryMind     = "Mind"
	CategoryBody     = "Body"
	CategoryHealth   = "Health"
	CategoryGeneral  = "General"
)

// CategoryOrder is the fixed display order for category rollups.
var CategoryOrder = []string{
	CategoryFocus,
	CategoryStrength,
	CategoryMind,
	CategoryBody,
	CategoryHealth,
	CategoryGeneral,
}

var habitCategories = map[string]string{
	"Deep Work":         CategoryFocus,
	"Study":             CategoryFocus,
	"Strength Training": CategoryStrength,
	"Weights":           CategoryStrength,
	"Reading":           CategoryMind,
	"Meditation":        CategoryMind,
	"Journaling":        CategoryMind,
	"Stretching":        CategoryBody,
	"Walk":              CategoryBody,
	"Run":               CategoryBody,
	"Drink Water":       CategoryHealth,
	"Sleep Early":       CategoryHealth,
	"No Sugar":          CategoryHealth,
}

// highValueCategories mark habits that award the higher XP amount.
var highValueCategories = map[string]bool{
	CategoryFocus:    true,
	CategoryStrength: true,
}

// CategoryOf returns the category for a habit name.
func CategoryOf(habitName string) string {
	if c, ok := habitCategories[habitName]; ok {
		return c
	}
	return CategoryGeneral
}

// IsHighValue reports whether completing the habit awards high-value XP.
func IsHighValue(habitName string) bool {
	return highValueCategories[CategoryOf(habitName)]
}
