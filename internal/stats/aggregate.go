package stats

import (
	"sort"
	"time"

	"habitflow/internal/constants"
	"habitflow/internal/models"
)

// TrendPoint is one row of the dashboard time series. Weight stays a pointer
// so that rendering can distinguish "not measured" from an actual value.
type TrendPoint struct {
	Date              string
	Weight            *float64
	SleepHours        float64
	HabitsCompleted   int
	TrainingIntensity int
}

// TimeSeries flattens the history into a chronologically sorted series.
func TimeSeries(history map[string]models.DayRecord) []TrendPoint {
	dates := sortedDates(history)
	series := make([]TrendPoint, 0, len(dates))
	for _, d := range dates {
		rec := history[d]
		series = append(series, TrendPoint{
			Date:              d,
			Weight:            rec.Metabolic.Body.Weight,
			SleepHours:        rec.Metabolic.Sleep.Hours,
			HabitsCompleted:   rec.CompletedCount(),
			TrainingIntensity: rec.TrainingLog.IntensityRPE,
		})
	}
	return series
}

// CompletionCounts tallies per-habit completions across all history.
func CompletionCounts(history map[string]models.DayRecord) map[string]int {
	counts := make(map[string]int)
	for _, rec := range history {
		for name, done := range rec.HabitCompletion {
			if done {
				counts[name]++
			}
		}
	}
	return counts
}

// HabitCount ranks one habit by total completions.
type HabitCount struct {
	Name  string
	Count int
}

// TopHabits returns all habits seen in history ranked by completion count,
// ties broken by name for a stable order.
func TopHabits(history map[string]models.DayRecord) []HabitCount {
	counts := CompletionCounts(history)
	ranked := make([]HabitCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, HabitCount{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}

// TagFrequencies counts nutrition tags across all logged meals.
func TagFrequencies(history map[string]models.DayRecord) map[string]int {
	freq := make(map[string]int)
	for _, rec := range history {
		for _, entry := range rec.Metabolic.NutritionLog {
			for _, tag := range entry.Tags {
				freq[tag]++
			}
		}
	}
	return freq
}

// DayCount is one day of the trailing consistency window.
type DayCount struct {
	Date      string
	Completed int
}

// TrailingWindow returns a fixed-length window of per-day completed-habit
// counts ending at end (inclusive), oldest first. Calendar dates with no
// stored record count as zero rather than being skipped. An unparseable end
// date yields an empty window.
func TrailingWindow(history map[string]models.DayRecord, end string, days int) []DayCount {
	endDate, err := time.Parse(constants.DateFormat, end)
	if err != nil || days <= 0 {
		return []DayCount{}
	}

	window := make([]DayCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := endDate.AddDate(0, 0, -i).Format(constants.DateFormat)
		window = append(window, DayCount{
			Date:      d,
			Completed: history[d].CompletedCount(),
		})
	}
	return window
}

// CategoryCompletion computes, per habit category, the completion percentage
// over the trailing window ending at end:
//
//	completions / (habits in category * window length) * 100
//
// Only categories with at least one active habit appear in the result.
func CategoryCompletion(habits []models.HabitDefinition, history map[string]models.DayRecord, end string, days int) map[string]float64 {
	endDate, err := time.Parse(constants.DateFormat, end)
	if err != nil || days <= 0 {
		return map[string]float64{}
	}

	byCategory := make(map[string][]models.HabitDefinition)
	for _, h := range habits {
		if !h.Active {
			continue
		}
		c := CategoryOf(h.Name)
		byCategory[c] = append(byCategory[c], h)
	}

	result := make(map[string]float64, len(byCategory))
	for category, categoryHabits := range byCategory {
		completions := 0
		for i := 0; i < days; i++ {
			d := endDate.AddDate(0, 0, -i).Format(constants.DateFormat)
			rec, ok := history[d]
			if !ok {
				continue
			}
			for _, h := range categoryHabits {
				if rec.HabitCompletion[h.Name] {
					completions++
				}
			}
		}
		result[category] = float64(completions) / float64(len(categoryHabits)*days) * 100
	}
	return result
}

func sortedDates(history map[string]models.DayRecord) []string {
	dates := make([]string, 0, len(history))
	for d := range history {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
