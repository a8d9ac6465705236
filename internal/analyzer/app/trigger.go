package app

import (
	"context"
	"fmt"
	"log"

	"driftAnalyzer/internal/analyzer/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

type TriggerOptions struct {
	ForceFresh bool
}

// TriggerDriftIQCheck fetches the current snapshot for a project, runs the
// capacity analysis and shapes a persistable drift record when attention is
// needed. Failures never escape as errors: they come back inside the result.
func (a *Analyzer) TriggerDriftIQCheck(ctx context.Context, projectId string, opts TriggerOptions) *models.CheckResult {
	refreshMode := "NORMAL"
	if opts.ForceFresh {
		refreshMode = "FORCED"
	}
	checkId := uuid.New().String()
	log.Printf("running driftiq check %s for project %s (%s)\n", checkId, projectId, refreshMode)

	result := &models.CheckResult{
		CheckId:      checkId,
		AnalysisDate: a.now(),
		ProjectId:    projectId,
		RefreshMode:  refreshMode,
	}

	works, err := a.Repository.ListActiveTasks(ctx, projectId)
	if err != nil {
		result.Error = errors.Wrap(err, "fetch task snapshot").Error()
		return result
	}
	tasks := models.NormalizeAll(works)
	log.Printf("analyzing %d active tasks\n", len(tasks))

	driftAnalysis := a.GenerateCapacityBasedDrifts(tasks)

	result.Success = true
	result.GraphData = driftAnalysis.GraphData
	result.TasksAnalyzed = len(tasks)

	if !driftAnalysis.NeedsAttention || driftAnalysis.Drift == nil {
		log.Println("no bottlenecks detected - no drift needed")
		result.Message = fmt.Sprintf("No bottlenecks detected for next %d days", a.Config.ScanHorizonDays)
		return result
	}

	drift := a.buildDrift(driftAnalysis.Drift, tasks, 1)
	drift.GraphData = driftAnalysis.GraphData

	log.Printf("drift detected: %s to %s (%d days), %d tasks, %d users\n",
		drift.StartDate.Format("2006-01-02"), drift.EndDate.Format("2006-01-02"),
		drift.DurationDays, len(drift.Tasks), drift.Metadata.AffectedUsers)

	result.HasDrift = true
	result.Drift = drift
	return result
}

// RunDriftIQCheck is the trigger plus optional persistence. A failed save is
// reported in SaveError; the analysis result itself stays successful.
func (a *Analyzer) RunDriftIQCheck(ctx context.Context, projectId string, saveToDB bool) *models.CheckResult {
	result := a.TriggerDriftIQCheck(ctx, projectId, TriggerOptions{})

	if result.Success && result.HasDrift && saveToDB {
		drift := result.Drift
		drift.ProjectId = projectId
		drift.CreatedAt = a.now()
		drift.Status = models.DriftStatusProposed

		saved, err := a.Repository.AddDrift(ctx, drift)
		if err != nil {
			log.Printf("WARNING: error saving drift: %s\n", err)
			result.SaveError = err.Error()
			return result
		}
		log.Printf("drift saved with id %s\n", saved.Id.Hex())
		result.DriftId = saved.Id.Hex()
		result.SavedToDB = true
	}

	return result
}

// buildDrift materializes the persistable record from a suggestion,
// resolving the referenced task ids back into full task summaries.
func (a *Analyzer) buildDrift(suggestion *models.DriftSuggestion, tasks []models.Task, driftIndex int) *models.Drift {
	drift := &models.Drift{
		Name:         fmt.Sprintf("%s %d", a.Config.DriftNamePrefix, driftIndex),
		StartDate:    suggestion.StartDate,
		EndDate:      suggestion.EndDate,
		DurationDays: suggestion.DurationDays,
		Tasks:        []models.DriftTask{},
		Metadata: models.DriftMetadata{
			Type:               suggestion.Type,
			CalculationBasis:   suggestion.CalculationBasis,
			WorkingHoursPerDay: suggestion.WorkingHoursPerDay,
			CooldownHours:      suggestion.CooldownHours,
			TotalTasks:         suggestion.TotalTasks,
			AffectedUsers:      len(suggestion.AffectedUsers),
			Severity:           suggestion.Severity,
			Confidence:         suggestion.Confidence,
			CreatedAt:          a.now(),
		},
		Users: suggestion.AffectedUsers,
	}

	for _, task := range tasks {
		if !slices.Contains(suggestion.TotalTaskIds, task.Id) {
			continue
		}
		drift.Tasks = append(drift.Tasks, models.DriftTask{
			Id:            task.Id,
			Name:          task.Name,
			DueDate:       task.DueDate,
			AssignedTo:    task.AssigneeId,
			EffortSeconds: task.EffortSeconds,
			EffortHours:   round1(task.EffortHours()),
			Priority:      task.Priority,
			Status:        task.Status,
		})
	}

	return drift
}
