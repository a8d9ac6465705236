package workload

import (
	"math"
	"time"

	"driftAnalyzer/internal/analyzer/models"
)

type Weights struct {
	LeadCycleRatio  *float64
	EfficiencyDelta *float64
	BaseWeight      float64
}

// calculateWeights derives a task's heuristic base weight plus the
// lead/cycle efficiency figures for completed work.
func calculateWeights(task models.Task, cycleTime, leadTime *float64, now time.Time) Weights {
	w := Weights{BaseWeight: 1}

	if leadTime != nil && cycleTime != nil && *cycleTime > 0 {
		ratio := round2(*leadTime / *cycleTime)
		w.LeadCycleRatio = &ratio
	}

	if leadTime != nil && !task.DueDate.IsZero() && !task.CreatedAt.IsZero() {
		estimatedHours := task.DueDate.Sub(task.CreatedAt).Hours()
		// positive means faster than estimated
		delta := round2(estimatedHours - *leadTime)
		w.EfficiencyDelta = &delta
	}

	switch task.Priority {
	case "high":
		w.BaseWeight += 2.5
	case "medium":
		w.BaseWeight += 1.5
	case "low":
		w.BaseWeight += 0.5
	}

	switch task.Status {
	case "blocked":
		w.BaseWeight += 2
	case "under_review":
		w.BaseWeight += 1.5
	}

	return w
}

func cycleTimeHours(task models.Task) *float64 {
	if task.StartedAt == nil || task.CompletedAt == nil {
		return nil
	}
	hours := task.CompletedAt.Sub(*task.StartedAt).Hours()
	return &hours
}

func leadTimeHours(task models.Task) *float64 {
	if task.CreatedAt.IsZero() || task.CompletedAt == nil {
		return nil
	}
	hours := task.CompletedAt.Sub(task.CreatedAt).Hours()
	return &hours
}

func daysUntilDue(task models.Task, now time.Time) *int {
	if task.DueDate.IsZero() {
		return nil
	}
	days := int(math.Ceil(task.DueDate.Sub(now).Hours() / 24))
	return &days
}

func isOverdue(task models.Task, now time.Time) bool {
	return !task.DueDate.IsZero() && task.DueDate.Before(now) && task.CompletedAt == nil
}
