package alerts

import (
	"habitflow/internal/constants"
	"habitflow/internal/models"
)

// Severity indicates how strongly an alert should be surfaced.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

// Alert is one triggered warning for a day.
type Alert struct {
	Rule     string
	Severity Severity
	Message  string
}

// Rule is a pure predicate over a day record paired with a static message.
// Rules must not mutate the record and must be evaluable independently of
// each other.
type Rule struct {
	Name      string
	Severity  Severity
	Message   string
	Triggered func(models.DayRecord) bool
}

// DefaultRules returns the built-in rule set in declaration order. New rules
// extend this list without touching existing ones.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "training-with-fever",
			Severity: SeverityCritical,
			Message:  "Fever logged with a training session planned. Training is contraindicated: rest today.",
			Triggered: func(rec models.DayRecord) bool {
				return rec.Metabolic.Symptoms[constants.SymptomFever] &&
					rec.TrainingLog.Type != models.TrainingRest
			},
		},
		{
			Name:     "missed-core-meals",
			Severity: SeverityWarning,
			Message:  "Fewer than two core meals logged. Check your nutrition intake.",
			Triggered: func(rec models.DayRecord) bool {
				return rec.LoggedMeals(constants.CoreMealSlots) < constants.MinCoreMeals
			},
		},
		{
			Name:     "low-sleep-high-intensity",
			Severity: SeverityWarning,
			Message:  "High-intensity training on under six hours of sleep. Consider dialing back for recovery.",
			Triggered: func(rec models.DayRecord) bool {
				return rec.Metabolic.Sleep.Hours < constants.LowSleepHours &&
					rec.TrainingLog.IntensityRPE > constants.HighIntensityRPE
			},
		},
		{
			Name:     "immune-strain",
			Severity: SeverityWarning,
			Message:  "Sore throat and fatigue together suggest your immune system is under strain. Take it easy.",
			Triggered: func(rec models.DayRecord) bool {
				return rec.Metabolic.Symptoms[constants.SymptomSoreThroat] &&
					rec.Metabolic.Symptoms[constants.SymptomFatigue]
			},
		},
	}
}

// Evaluate runs the default rule set against a day record.
func Evaluate(rec models.DayRecord) []Alert {
	return EvaluateRules(rec, DefaultRules())
}

// EvaluateRules runs the given rules in order and collects every triggered
// alert. Each rule is evaluated unconditionally; there is no short-circuit
// across rules.
func EvaluateRules(rec models.DayRecord, rules []Rule) []Alert {
	var triggered []Alert
	for _, rule := range rules {
		if rule.Triggered(rec) {
			triggered = append(triggered, Alert{
				Rule:     rule.Name,
				Severity: rule.Severity,
				Message:  rule.Message,
			})
		}
	}
	return triggered
}
