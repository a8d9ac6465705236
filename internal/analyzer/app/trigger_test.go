package app

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"driftAnalyzer/internal/analyzer/models"
	"driftAnalyzer/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RepositoryMock struct {
	ListActiveTasksResult []*models.WorkItem
	ListActiveTasksError  bool
	AddDriftError         bool
	SavedDrifts           []*models.Drift
}

var _ repository.ReadWriteRepository = (*RepositoryMock)(nil)

func (r *RepositoryMock) ListActiveTasks(ctx context.Context, projectId string) (mod []*models.WorkItem, err error) {
	mod = r.ListActiveTasksResult
	if r.ListActiveTasksError {
		err = fmt.Errorf("test error from RepositoryMock")
	}
	return
}
func (r *RepositoryMock) ListTasks(ctx context.Context, projectId string) (mod []*models.WorkItem, err error) {
	mod = r.ListActiveTasksResult
	return
}
func (r *RepositoryMock) AddDrift(ctx context.Context, drift *models.Drift) (*models.Drift, error) {
	if r.AddDriftError {
		return nil, fmt.Errorf("test error from RepositoryMock")
	}
	saved := *drift
	saved.Id = primitive.NewObjectID()
	r.SavedDrifts = append(r.SavedDrifts, &saved)
	return &saved, nil
}
func (r *RepositoryMock) ListDrifts(ctx context.Context, projectId string, statuses []string) ([]*models.Drift, error) {
	return r.SavedDrifts, nil
}
func (r *RepositoryMock) UpdateDrift(ctx context.Context, drift *models.Drift) (*models.Drift, error) {
	return drift, nil
}

func overloadedWorkItem(due time.Time) *models.WorkItem {
	return &models.WorkItem{
		Id:            primitive.NewObjectID(),
		ProjectId:     "project1",
		Title:         "migrate billing pipeline",
		AssignedTo:    "user1",
		DueDate:       due,
		EffortSeconds: 16 * 3600,
		Priority:      "High",
		Status:        "In Progress",
	}
}

func TestTriggerDriftIQCheck(t *testing.T) {

	today := time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("succees healthy project", func(t *testing.T) {
		rep := &RepositoryMock{
			ListActiveTasksResult: []*models.WorkItem{
				overloadedWorkItem(today.AddDate(0, 0, 30)),
			},
		}
		analyzer := NewAnalyzer(rep, DefaultConfig())
		analyzer.Clock = func() time.Time { return today }

		result := analyzer.TriggerDriftIQCheck(ctx, "project1", TriggerOptions{})
		if !result.Success {
			t.Fatalf("Expect success, got error %s", result.Error)
		}
		if result.HasDrift {
			t.Errorf("Expect no drift for healthy project")
		}
		if result.Message != "No bottlenecks detected for next 7 days" {
			t.Errorf("Unexpected message: %s", result.Message)
		}
		if result.RefreshMode != "NORMAL" {
			t.Errorf("Expect NORMAL refresh mode, got %s", result.RefreshMode)
		}
		if result.TasksAnalyzed != 1 {
			t.Errorf("Expect 1 analyzed task, got %d", result.TasksAnalyzed)
		}
		if result.CheckId == "" {
			t.Errorf("Expect generated check id")
		}
	})

	t.Run("succees drift detected", func(t *testing.T) {
		item := overloadedWorkItem(today)
		rep := &RepositoryMock{
			ListActiveTasksResult: []*models.WorkItem{item},
		}
		analyzer := NewAnalyzer(rep, DefaultConfig())
		analyzer.Clock = func() time.Time { return today }

		result := analyzer.TriggerDriftIQCheck(ctx, "project1", TriggerOptions{ForceFresh: true})
		if !result.Success {
			t.Fatalf("Expect success, got error %s", result.Error)
		}
		if !result.HasDrift || result.Drift == nil {
			t.Fatalf("Expect drift for overloaded user")
		}
		if result.RefreshMode != "FORCED" {
			t.Errorf("Expect FORCED refresh mode, got %s", result.RefreshMode)
		}
		drift := result.Drift
		if drift.Name != "Drift 1" {
			t.Errorf("Unexpected drift name: %s", drift.Name)
		}
		if len(drift.Tasks) != 1 || drift.Tasks[0].Id != item.Id.Hex() {
			t.Errorf("Expect the analyzed task inside the drift, got %+v", drift.Tasks)
		}
		if !almostEqual(drift.Tasks[0].EffortHours, 16.0) {
			t.Errorf("Expect 16 effort hours, got %v", drift.Tasks[0].EffortHours)
		}
		if drift.Metadata.Type != models.DriftTypeCombinedCapacity {
			t.Errorf("Unexpected drift type: %s", drift.Metadata.Type)
		}
		if drift.Metadata.AffectedUsers != 1 {
			t.Errorf("Expect 1 affected user, got %d", drift.Metadata.AffectedUsers)
		}
		if drift.GraphData == nil {
			t.Errorf("Expect graph data attached to the drift")
		}
		// 16h work plus edge cooldowns = 17h -> 3 days
		if drift.DurationDays != 3 {
			t.Errorf("Expect 3 drift days, got %d", drift.DurationDays)
		}
	})

	t.Run("repository error is reported in result", func(t *testing.T) {
		rep := &RepositoryMock{
			ListActiveTasksError: true,
		}
		analyzer := NewAnalyzer(rep, DefaultConfig())
		analyzer.Clock = func() time.Time { return today }

		result := analyzer.TriggerDriftIQCheck(ctx, "project1", TriggerOptions{})
		if result.Success {
			t.Errorf("Expect failed result on repository error")
		}
		if !strings.Contains(result.Error, "fetch task snapshot") {
			t.Errorf("Expect wrapped fetch error, got: %s", result.Error)
		}
	})
}

func TestRunDriftIQCheck(t *testing.T) {

	today := time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("succees save drift", func(t *testing.T) {
		rep := &RepositoryMock{
			ListActiveTasksResult: []*models.WorkItem{overloadedWorkItem(today)},
		}
		analyzer := NewAnalyzer(rep, DefaultConfig())
		analyzer.Clock = func() time.Time { return today }

		result := analyzer.RunDriftIQCheck(ctx, "project1", true)
		if !result.Success || !result.HasDrift {
			t.Fatalf("Expect successful drift result")
		}
		if !result.SavedToDB || result.DriftId == "" {
			t.Errorf("Expect drift to be persisted, got SavedToDB=%v DriftId=%q", result.SavedToDB, result.DriftId)
		}
		if len(rep.SavedDrifts) != 1 {
			t.Fatalf("Expect 1 saved drift, got %d", len(rep.SavedDrifts))
		}
		saved := rep.SavedDrifts[0]
		if saved.Status != models.DriftStatusProposed {
			t.Errorf("Expect proposed status, got %s", saved.Status)
		}
		if saved.ProjectId != "project1" {
			t.Errorf("Expect projectId on saved drift, got %s", saved.ProjectId)
		}
	})

	t.Run("save error does not fail the check", func(t *testing.T) {
		rep := &RepositoryMock{
			ListActiveTasksResult: []*models.WorkItem{overloadedWorkItem(today)},
			AddDriftError:         true,
		}
		analyzer := NewAnalyzer(rep, DefaultConfig())
		analyzer.Clock = func() time.Time { return today }

		result := analyzer.RunDriftIQCheck(ctx, "project1", true)
		if !result.Success || !result.HasDrift {
			t.Fatalf("Expect analysis to stay successful on save error")
		}
		if result.SaveError == "" {
			t.Errorf("Expect save error to be reported")
		}
		if result.SavedToDB || result.DriftId != "" {
			t.Errorf("Expect no persisted drift on save error")
		}
	})

	t.Run("save disabled leaves repository untouched", func(t *testing.T) {
		rep := &RepositoryMock{
			ListActiveTasksResult: []*models.WorkItem{overloadedWorkItem(today)},
		}
		analyzer := NewAnalyzer(rep, DefaultConfig())
		analyzer.Clock = func() time.Time { return today }

		result := analyzer.RunDriftIQCheck(ctx, "project1", false)
		if !result.Success || !result.HasDrift {
			t.Fatalf("Expect successful drift result")
		}
		if result.SavedToDB || len(rep.SavedDrifts) != 0 {
			t.Errorf("Expect no drift saved when save is disabled")
		}
	})
}
