package models

import (
	"testing"
)

func TestDefaultDayRecord_Shape(t *testing.T) {
	rec := DefaultDayRecord()

	if rec.Note != "" {
		t.Errorf("expected empty note, got %q", rec.Note)
	}
	if len(rec.HabitCompletion) != 0 {
		t.Errorf("expected empty habit completion, got %v", rec.HabitCompletion)
	}
	if rec.Metabolic.Sleep.Hours != 7.0 {
		t.Errorf("expected default sleep hours 7.0, got %v", rec.Metabolic.Sleep.Hours)
	}
	if rec.Metabolic.Sleep.Quality != 3 {
		t.Errorf("expected default sleep quality 3, got %v", rec.Metabolic.Sleep.Quality)
	}
	if rec.Metabolic.Body.Weight != nil {
		t.Errorf("expected nil weight, got %v", *rec.Metabolic.Body.Weight)
	}
	if rec.TrainingLog.Type != TrainingRest {
		t.Errorf("expected training type Rest, got %v", rec.TrainingLog.Type)
	}
	if rec.TrainingLog.IntensityRPE != 5 {
		t.Errorf("expected default RPE 5, got %v", rec.TrainingLog.IntensityRPE)
	}

	for name, present := range rec.Metabolic.Symptoms {
		if present {
			t.Errorf("symptom %q should default to false", name)
		}
	}

	for _, slot := range []string{"Breakfast", "Lunch", "Dinner", "Snack 1", "Snack 2"} {
		entry, ok := rec.Metabolic.NutritionLog[slot]
		if !ok {
			t.Errorf("missing meal slot %q", slot)
			continue
		}
		if entry.Logged() {
			t.Errorf("slot %q should not count as logged by default", slot)
		}
		if entry.Tags == nil {
			t.Errorf("slot %q should have an empty tag slice, not nil", slot)
		}
	}
}

func TestDefaultDayRecord_NoSharedState(t *testing.T) {
	a := DefaultDayRecord()
	b := DefaultDayRecord()

	a.HabitCompletion["Reading"] = true
	a.Metabolic.Symptoms["fever"] = true
	a.Metabolic.NutritionLog["Lunch"] = MealEntry{Description: "soup", Tags: []string{"warm"}}

	if b.HabitCompletion["Reading"] {
		t.Error("habit completion map is shared between records")
	}
	if b.Metabolic.Symptoms["fever"] {
		t.Error("symptom map is shared between records")
	}
	if b.Metabolic.NutritionLog["Lunch"].Logged() {
		t.Error("nutrition log is shared between records")
	}
}

func TestDefaultProfile_StarterHabits(t *testing.T) {
	p := DefaultProfile()

	if p.XP != 0 {
		t.Errorf("expected zero XP, got %d", p.XP)
	}
	if len(p.History) != 0 {
		t.Errorf("expected empty history, got %d entries", len(p.History))
	}
	if len(p.Habits) != 3 {
		t.Fatalf("expected 3 starter habits, got %d", len(p.Habits))
	}
	for _, h := range p.Habits {
		if !h.Active {
			t.Errorf("starter habit %q should be active", h.Name)
		}
		if !ValidTimeSlot(h.Slot) {
			t.Errorf("starter habit %q has invalid slot %q", h.Name, h.Slot)
		}
	}
}

func TestProfile_DayCreatesDefaultLazily(t *testing.T) {
	p := DefaultProfile()

	rec := p.Day("2024-03-01")
	if rec.Metabolic.Sleep.Hours != 7.0 {
		t.Errorf("lazily created day should carry defaults, got sleep %v", rec.Metabolic.Sleep.Hours)
	}
	if _, ok := p.History["2024-03-01"]; !ok {
		t.Error("Day should store the created record in history")
	}
}

func TestProfile_HabitsBySlot(t *testing.T) {
	p := Profile{
		Habits: []HabitDefinition{
			{Name: "A", Slot: SlotMorning, Active: true},
			{Name: "B", Slot: SlotMorning, Active: false},
			{Name: "C", Slot: SlotEvening, Active: true},
		},
	}

	bySlot := p.HabitsBySlot()
	if len(bySlot[SlotMorning]) != 1 || bySlot[SlotMorning][0].Name != "A" {
		t.Errorf("expected only active habit A in morning, got %v", bySlot[SlotMorning])
	}
	if len(bySlot[SlotEvening]) != 1 {
		t.Errorf("expected habit C in evening, got %v", bySlot[SlotEvening])
	}
}
