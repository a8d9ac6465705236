package api

import (
	"time"

	"driftAnalyzer/internal/analyzer/models"
	"driftAnalyzer/internal/workload"
)

// buildWorkloadReports groups the project snapshot by assignee and scores
// each person. With an assignee filter the report map carries exactly that
// one person, a no_data report when they hold no tasks.
func buildWorkloadReports(tasks []models.Task, assigneeId *string, now time.Time) map[string]*workload.Report {
	tasksByUser := map[string][]models.Task{}
	for _, task := range tasks {
		if task.AssigneeId == "" {
			continue
		}
		tasksByUser[task.AssigneeId] = append(tasksByUser[task.AssigneeId], task)
	}

	reports := map[string]*workload.Report{}
	if assigneeId != nil {
		reports[*assigneeId] = workload.ReportForAssignee(*assigneeId, tasksByUser[*assigneeId], now)
		return reports
	}
	for userId, userTasks := range tasksByUser {
		reports[userId] = workload.ReportForAssignee(userId, userTasks, now)
	}
	return reports
}
