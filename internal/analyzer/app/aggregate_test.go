package app

import (
	"testing"
	"time"

	"driftAnalyzer/internal/analyzer/models"
)

func testTaskFor(userId string, effortHours float64, due time.Time) models.Task {
	task := testTask(effortHours, due)
	task.AssigneeId = userId
	return task
}

func TestGenerateCapacityBasedDrifts(t *testing.T) {

	today := time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)
	tomorrow := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	t.Run("no tasks produces healthy check", func(t *testing.T) {
		analyzer := fixedClockAnalyzer(today)
		check := analyzer.GenerateCapacityBasedDrifts([]models.Task{})
		if check.NeedsAttention {
			t.Errorf("Expect no attention needed for empty snapshot")
		}
		if check.Drift != nil {
			t.Errorf("Expect no drift suggestion for empty snapshot")
		}
		if len(check.GraphData.ProjectData) != 0 {
			t.Errorf("Expect empty per-person graph data, got %d entries", len(check.GraphData.ProjectData))
		}
	})

	t.Run("unassigned tasks are skipped", func(t *testing.T) {
		analyzer := fixedClockAnalyzer(today)
		unassigned := testTaskFor("", 16, today)
		check := analyzer.GenerateCapacityBasedDrifts([]models.Task{unassigned})
		if check.NeedsAttention {
			t.Errorf("Expect unassigned tasks to be excluded from analysis")
		}
	})

	t.Run("single overloaded user gets medium severity drift", func(t *testing.T) {
		analyzer := fixedClockAnalyzer(today)
		tasks := []models.Task{}
		for i := 0; i < 3; i++ {
			tasks = append(tasks, testTaskFor("user1", 8, today.AddDate(0, 0, 1)))
		}
		for i := 0; i < 2; i++ {
			tasks = append(tasks, testTaskFor("user1", 8, today.AddDate(0, 0, 3)))
		}
		check := analyzer.GenerateCapacityBasedDrifts(tasks)
		if !check.NeedsAttention {
			t.Fatalf("Expect drift for sustained overload")
		}
		drift := check.Drift
		if drift.Severity != "MEDIUM" {
			t.Errorf("Expect MEDIUM severity for single user, got %s", drift.Severity)
		}
		if drift.Confidence != "MEDIUM" {
			t.Errorf("Expect MEDIUM confidence without high pressure tasks, got %s", drift.Confidence)
		}
		// 40h work + 4 between-cooldowns + 2 edge cooldowns = 43h over 6 days
		if !almostEqual(drift.TotalWorkHours, 43.0) {
			t.Errorf("Expect 43.0 total work hours, got %v", drift.TotalWorkHours)
		}
		if drift.DurationDays != 6 {
			t.Errorf("Expect 6 drift days, got %d", drift.DurationDays)
		}
		if !drift.StartDate.Equal(tomorrow) {
			t.Errorf("Expect drift to start tomorrow, got %v", drift.StartDate)
		}
		if !drift.EndDate.Equal(tomorrow.AddDate(0, 0, 5)) {
			t.Errorf("Expect drift to end after 6 days, got %v", drift.EndDate)
		}
		if drift.TotalTasks != 5 || len(drift.TotalTaskIds) != 5 {
			t.Errorf("Expect 5 affected tasks, got %d/%d", drift.TotalTasks, len(drift.TotalTaskIds))
		}
		if len(drift.AffectedUsers) != 1 || drift.AffectedUsers[0].UserId != "user1" {
			t.Errorf("Expect user1 as the only affected user, got %+v", drift.AffectedUsers)
		}
	})

	t.Run("multiple overloaded users escalate severity", func(t *testing.T) {
		analyzer := fixedClockAnalyzer(today)
		tasks := []models.Task{
			testTaskFor("user1", 16, today),
			testTaskFor("user1", 16, today),
			testTaskFor("user2", 16, today),
			testTaskFor("user2", 16, today),
			testTaskFor("user3", 2, today.AddDate(0, 0, 2)),
		}
		check := analyzer.GenerateCapacityBasedDrifts(tasks)
		if !check.NeedsAttention {
			t.Fatalf("Expect drift for two overloaded users")
		}
		drift := check.Drift
		if drift.Severity != "HIGH" {
			t.Errorf("Expect HIGH severity for multiple users, got %s", drift.Severity)
		}
		if drift.Confidence != "HIGH" {
			t.Errorf("Expect HIGH confidence when every user has several high pressure tasks, got %s", drift.Confidence)
		}
		if len(drift.AffectedUsers) != 2 {
			t.Errorf("Expect 2 affected users, got %d", len(drift.AffectedUsers))
		}
		// healthy user3 still contributes graph data
		if len(check.GraphData.ProjectData) != 3 {
			t.Errorf("Expect graph data for all 3 users, got %d", len(check.GraphData.ProjectData))
		}
	})

}
