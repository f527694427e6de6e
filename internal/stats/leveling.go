package stats

import "habitflow/internal/constants"

// Level converts total XP into a level and the progress within it. Uses
// floored division so that negative XP still yields progress in [0,100);
// the level can drop below 1 and callers clamp for display.
func Level(xp int) (level, progress int) {
	q := xp / constants.XPPerLevel
	r := xp % constants.XPPerLevel
	if r < 0 {
		r += constants.XPPerLevel
		q--
	}
	return q + 1, r
}

// XPDelta returns the XP change for toggling a habit. Completing awards the
// base amount, or the high-value amount for habits in a high-value category;
// un-completing refunds exactly what completing would currently award, so the
// function is symmetric: XPDelta(h, true) == -XPDelta(h, false).
//
// The refund is recomputed against the habit's current category rather than
// whatever was awarded historically; see DESIGN.md.
func XPDelta(habitName string, completing bool) int {
	amount := constants.XPBase
	if IsHighValue(habitName) {
		amount = constants.XPHighValue
	}
	if !completing {
		return -amount
	}
	return amount
}
