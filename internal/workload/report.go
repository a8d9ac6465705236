// Package workload builds the per-assignee workload report: heuristic
// pressure scores over a person's task history plus efficiency metrics for
// their completed work.
package workload

import (
	"math"
	"time"

	"driftAnalyzer/internal/analyzer/models"
)

const (
	StatusOverloaded  = "overloaded"
	StatusModerate    = "moderate"
	StatusUnderloaded = "underloaded"
	StatusNoData      = "no_data"

	overloadedScore  = 40.0
	underloadedScore = 20.0

	dueSoonDays = 3

	overduePressure = 3.0
	dueSoonPressure = 1.5
	blockedPressure = 2.5
)

type TaskDetail struct {
	TaskId          string   `json:"taskId"`
	Title           string   `json:"title"`
	IsCompleted     bool     `json:"isCompleted"`
	Status          string   `json:"status"`
	CycleTime       *float64 `json:"cycleTime"`
	LeadTime        *float64 `json:"leadTime"`
	LeadCycleRatio  *float64 `json:"leadCycleRatio"`
	EfficiencyDelta *float64 `json:"efficiencyDelta"`
	DueInDays       *int     `json:"dueInDays"`
	PressureScore   float64  `json:"pressureScore"`
}

type Report struct {
	AssigneeId             string       `json:"assigneeId"`
	Status                 string       `json:"status"`
	WorkloadScore          float64      `json:"workloadScore"`
	TaskCount              int          `json:"taskCount"`
	AverageEfficiencyRatio *float64     `json:"averageEfficiencyRatio"`
	Detailed               []TaskDetail `json:"detailed"`
	Message                string       `json:"message,omitempty"`
}

// ReportForAssignee scores one person's tasks at the given reference time.
func ReportForAssignee(assigneeId string, tasks []models.Task, now time.Time) *Report {
	if len(tasks) == 0 {
		return &Report{
			AssigneeId:    assigneeId,
			Status:        StatusNoData,
			WorkloadScore: 0,
			TaskCount:     0,
			Detailed:      []TaskDetail{},
			Message:       "No tasks found for analysis.",
		}
	}

	totalPressureScore := 0.0
	completedEfficiencySum := 0.0
	completedCount := 0
	detailed := make([]TaskDetail, 0, len(tasks))

	for _, task := range tasks {
		isCompleted := task.IsCompleted()
		dueInDays := daysUntilDue(task, now)
		dueSoon := dueInDays != nil && *dueInDays <= dueSoonDays

		var cycleTime, leadTime *float64
		if isCompleted {
			cycleTime = cycleTimeHours(task)
			leadTime = leadTimeHours(task)
		}

		weights := calculateWeights(task, cycleTime, leadTime, now)

		pressure := weights.BaseWeight
		if !isCompleted {
			if isOverdue(task, now) {
				pressure += overduePressure
			} else if dueSoon {
				pressure += dueSoonPressure
			}
			if task.Status == "blocked" {
				pressure += blockedPressure
			}
		}
		totalPressureScore += pressure

		if weights.LeadCycleRatio != nil && isCompleted {
			completedEfficiencySum += *weights.LeadCycleRatio
			completedCount++
		}

		detailed = append(detailed, TaskDetail{
			TaskId:          task.Id,
			Title:           task.Name,
			IsCompleted:     isCompleted,
			Status:          task.Status,
			CycleTime:       cycleTime,
			LeadTime:        leadTime,
			LeadCycleRatio:  weights.LeadCycleRatio,
			EfficiencyDelta: weights.EfficiencyDelta,
			DueInDays:       dueInDays,
			PressureScore:   pressure,
		})
	}

	workloadScore := round2(totalPressureScore)
	status := StatusModerate
	if workloadScore >= overloadedScore {
		status = StatusOverloaded
	} else if workloadScore <= underloadedScore {
		status = StatusUnderloaded
	}

	report := &Report{
		AssigneeId:    assigneeId,
		Status:        status,
		WorkloadScore: workloadScore,
		TaskCount:     len(tasks),
		Detailed:      detailed,
	}
	if completedCount > 0 {
		avg := round2(completedEfficiencySum / float64(completedCount))
		report.AverageEfficiencyRatio = &avg
	}
	return report
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
