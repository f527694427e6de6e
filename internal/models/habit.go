package models

// TimeSlot is the part of the day a habit is assigned to.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "Morning"
	SlotAfternoon TimeSlot = "Afternoon"
	SlotEvening   TimeSlot = "Evening"
	SlotAnytime   TimeSlot = "Anytime"
)

// TimeSlotOrder is the display order for the daily checklist.
var TimeSlotOrder = []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening, SlotAnytime}

// ValidTimeSlot reports whether s is a known time slot.
func ValidTimeSlot(s TimeSlot) bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotEvening, SlotAnytime:
		return true
	}
	return false
}

// HabitDefinition is a user-defined recurring practice. Habits are identified
// by name within a profile; the uuid is additive metadata.
type HabitDefinition struct {
	ID     string   `json:"id,omitempty"`
	Name   string   `json:"name"`
	Icon   string   `json:"icon"`
	Slot   TimeSlot `json:"timeSlot"`
	Active bool     `json:"active"`
}

// Profile holds everything tracked for one user: gamification score, the
// habit list, and the full date-keyed history.
type Profile struct {
	XP      int                  `json:"xp"`
	Habits  []HabitDefinition    `json:"habits"`
	History map[string]DayRecord `json:"history"`
}

// Habit returns the habit definition with the given name.
func (p *Profile) Habit(name string) (HabitDefinition, bool) {
	for _, h := range p.Habits {
		if h.Name == name {
			return h, true
		}
	}
	return HabitDefinition{}, false
}

// ActiveHabits returns the habits currently enabled, in profile order.
func (p *Profile) ActiveHabits() []HabitDefinition {
	habits := make([]HabitDefinition, 0, len(p.Habits))
	for _, h := range p.Habits {
		if h.Active {
			habits = append(habits, h)
		}
	}
	return habits
}

// HabitsBySlot groups active habits by time slot, preserving profile order
// within each slot.
func (p *Profile) HabitsBySlot() map[TimeSlot][]HabitDefinition {
	bySlot := make(map[TimeSlot][]HabitDefinition)
	for _, h := range p.ActiveHabits() {
		bySlot[h.Slot] = append(bySlot[h.Slot], h)
	}
	return bySlot
}

// Day returns the record for the given date, creating a default one lazily if
// the date has not been touched yet. The returned record is stored in the
// history, so mutations through it must be followed by SetDay.
func (p *Profile) Day(date string) DayRecord {
	if p.History == nil {
		p.History = make(map[string]DayRecord)
	}
	rec, ok := p.History[date]
	if !ok {
		rec = DefaultDayRecord()
		p.History[date] = rec
	}
	return rec
}

// SetDay stores the record for the given date.
func (p *Profile) SetDay(date string, rec DayRecord) {
	if p.History == nil {
		p.History = make(map[string]DayRecord)
	}
	p.History[date] = rec
}
