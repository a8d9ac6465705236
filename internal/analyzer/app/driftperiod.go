package app

import (
	"math"

	"driftAnalyzer/internal/analyzer/models"
)

// DriftPeriod estimates the calendar days needed to serialize the given
// tasks back-to-back: one cooldown between consecutive tasks plus a fixed
// start and end cooldown as safety margin. It assumes exclusive focus and
// no carryover across people.
type DriftPeriod struct {
	TotalWorkHours float64 `json:"totalWorkHours"`
	DaysNeeded     int     `json:"daysNeeded"`
}

func (a *Analyzer) CalculateDriftPeriod(tasks []models.Task) DriftPeriod {
	totalWorkHours := 0.0
	for i, task := range tasks {
		totalWorkHours += task.EffortHours()
		if i < len(tasks)-1 {
			totalWorkHours += a.Config.CooldownHours
		}
	}
	totalWorkHours += 2 * a.Config.CooldownHours

	daysNeeded := int(math.Ceil(totalWorkHours / a.Config.WorkingHoursPerDay))
	if daysNeeded < 1 {
		daysNeeded = 1
	}
	return DriftPeriod{
		TotalWorkHours: round2(totalWorkHours),
		DaysNeeded:     daysNeeded,
	}
}
