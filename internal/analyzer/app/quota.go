package app

import (
	"math"
	"time"

	"driftAnalyzer/internal/analyzer/models"
)

// DayStart normalizes a timestamp to midnight UTC. Every calendar-day
// comparison in the engine goes through here; the process-wide convention
// is UTC.
func DayStart(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// QuotaForDay returns the fraction of one standard workday the task consumes
// on targetDay, spreading the effort evenly from windowStart to the due date
// (inclusive) and decaying it linearly across the grace period afterwards.
// A zero windowEnd means no grace period: past-due days score 0.
func QuotaForDay(task models.Task, windowStart, windowEnd, targetDay time.Time, cfg Config) float64 {
	dueDate := DayStart(task.DueDate)
	startDay := DayStart(windowStart)
	target := DayStart(targetDay)

	daysToDue := int(math.Ceil(dueDate.Sub(startDay).Hours()/24)) + 1
	if daysToDue < 1 {
		daysToDue = 1
	}

	requiredWorkdayFraction := task.EffortHours() / cfg.WorkingHoursPerDay
	fixedQuota := requiredWorkdayFraction / float64(daysToDue)

	if !target.After(dueDate) {
		return fixedQuota
	}

	if windowEnd.IsZero() {
		return 0
	}

	// grace period runs from the due date to one day before the window end
	decayEnd := DayStart(windowEnd).AddDate(0, 0, -1)
	decayDuration := decayEnd.Sub(dueDate).Hours() / 24
	if decayDuration <= 0 {
		// due at the window edge keeps full weight
		return fixedQuota
	}

	if target.After(decayEnd) {
		return 0
	}

	daysPastDue := target.Sub(dueDate).Hours() / 24
	decayFactor := 1 - daysPastDue/decayDuration
	if decayFactor <= 0 {
		return 0
	}
	return fixedQuota * decayFactor
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
