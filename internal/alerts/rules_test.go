package alerts

import (
	"testing"

	"habitflow/internal/models"
)

func trainingDayWithFeverAndOneMeal() models.DayRecord {
	rec := models.DefaultDayRecord()
	rec.Metabolic.Symptoms["fever"] = true
	rec.TrainingLog.Type = models.TrainingWeights
	rec.Metabolic.NutritionLog["Breakfast"] = models.MealEntry{Description: "toast"}
	return rec
}

func TestEvaluate_QuietDayOnlyWarnsAboutMeals(t *testing.T) {
	// A default day has no meals logged, so the core-meal rule fires alone.
	triggered := Evaluate(models.DefaultDayRecord())

	if len(triggered) != 1 {
		t.Fatalf("expected exactly 1 alert on an empty day, got %d: %+v", len(triggered), triggered)
	}
	if triggered[0].Rule != "missed-core-meals" {
		t.Errorf("expected missed-core-meals, got %s", triggered[0].Rule)
	}
}

func TestEvaluate_NoAlertsWhenMealsLogged(t *testing.T) {
	rec := models.DefaultDayRecord()
	rec.Metabolic.NutritionLog["Breakfast"] = models.MealEntry{Description: "oats"}
	rec.Metabolic.NutritionLog["Lunch"] = models.MealEntry{Description: "rice"}

	if triggered := Evaluate(rec); len(triggered) != 0 {
		t.Errorf("expected no alerts, got %+v", triggered)
	}
}

func TestEvaluate_RulesFireIndependently(t *testing.T) {
	rec := trainingDayWithFeverAndOneMeal()

	triggered := Evaluate(rec)
	names := make(map[string]Severity, len(triggered))
	for _, a := range triggered {
		names[a.Rule] = a.Severity
	}

	if sev, ok := names["training-with-fever"]; !ok {
		t.Error("training-with-fever did not fire")
	} else if sev != SeverityCritical {
		t.Errorf("training-with-fever should be critical, got %s", sev)
	}
	if _, ok := names["missed-core-meals"]; !ok {
		t.Error("missed-core-meals did not fire alongside the fever rule")
	}

	// Clearing the fever must not affect the meal rule.
	rec.Metabolic.Symptoms["fever"] = false
	triggered = Evaluate(rec)
	if len(triggered) != 1 || triggered[0].Rule != "missed-core-meals" {
		t.Errorf("expected only missed-core-meals after clearing fever, got %+v", triggered)
	}
}

func TestEvaluate_LowSleepHighIntensity(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		rpe   int
		want  bool
	}{
		{"short sleep, hard session", 5.5, 8, true},
		{"short sleep, easy session", 5.5, 7, false},
		{"enough sleep, hard session", 6.0, 8, false},
		{"boundary sleep just under", 5.99, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := models.DefaultDayRecord()
			rec.Metabolic.Sleep.Hours = tt.hours
			rec.TrainingLog.IntensityRPE = tt.rpe

			fired := false
			for _, a := range Evaluate(rec) {
				if a.Rule == "low-sleep-high-intensity" {
					fired = true
				}
			}
			if fired != tt.want {
				t.Errorf("hours=%v rpe=%d: fired=%v, want %v", tt.hours, tt.rpe, fired, tt.want)
			}
		})
	}
}

func TestEvaluate_ImmuneStrainNeedsBothSymptoms(t *testing.T) {
	rec := models.DefaultDayRecord()
	rec.Metabolic.Symptoms["sore_throat"] = true

	for _, a := range Evaluate(rec) {
		if a.Rule == "immune-strain" {
			t.Fatal("immune-strain fired with only a sore throat")
		}
	}

	rec.Metabolic.Symptoms["fatigue"] = true
	fired := false
	for _, a := range Evaluate(rec) {
		if a.Rule == "immune-strain" {
			fired = true
		}
	}
	if !fired {
		t.Error("immune-strain did not fire with sore throat and fatigue together")
	}
}

func TestEvaluateRules_CustomRuleExtension(t *testing.T) {
	custom := append(DefaultRules(), Rule{
		Name:     "no-note",
		Severity: SeverityWarning,
		Message:  "No note for this day.",
		Triggered: func(rec models.DayRecord) bool {
			return rec.Note == ""
		},
	})

	triggered := EvaluateRules(models.DefaultDayRecord(), custom)
	found := false
	for _, a := range triggered {
		if a.Rule == "no-note" {
			found = true
		}
	}
	if !found {
		t.Error("custom rule did not participate in evaluation")
	}
}

func TestEvaluate_OrderMatchesDeclaration(t *testing.T) {
	rec := trainingDayWithFeverAndOneMeal()
	rec.Metabolic.Sleep.Hours = 5
	rec.TrainingLog.IntensityRPE = 9
	rec.Metabolic.Symptoms["sore_throat"] = true
	rec.Metabolic.Symptoms["fatigue"] = true

	triggered := Evaluate(rec)
	want := []string{"training-with-fever", "missed-core-meals", "low-sleep-high-intensity", "immune-strain"}
	if len(triggered) != len(want) {
		t.Fatalf("expected all %d rules to fire, got %d: %+v", len(want), len(triggered), triggered)
	}
	for i, name := range want {
		if triggered[i].Rule != name {
			t.Errorf("position %d: expected %s, got %s", i, name, triggered[i].Rule)
		}
	}
}
