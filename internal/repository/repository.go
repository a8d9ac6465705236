package repository

import (
	"context"

	"driftAnalyzer/internal/analyzer/models"
)

type ErrorNotFound struct {
	text string
}

func (e *ErrorNotFound) Error() string {
	return e.text
}

func NewErrorNotFound(text string) *ErrorNotFound {
	return &ErrorNotFound{
		text: text,
	}
}

type ReadWriteRepository interface {
	TaskRepository
	DriftRepository
}

// TaskRepository supplies the work-item snapshots the engine analyzes.
type TaskRepository interface {
	// ListActiveTasks returns every non-completed task of a project,
	// most recently updated first.
	ListActiveTasks(ctx context.Context, projectId string) ([]*models.WorkItem, error)
	// ListTasks returns all tasks of a project, completed ones included.
	ListTasks(ctx context.Context, projectId string) ([]*models.WorkItem, error)
}

// DriftRepository stores and advances drift proposals.
type DriftRepository interface {
	AddDrift(ctx context.Context, drift *models.Drift) (*models.Drift, error)
	// ListDrifts filters by project (empty = all projects) and statuses
	// (empty = all statuses), newest first.
	ListDrifts(ctx context.Context, projectId string, statuses []string) ([]*models.Drift, error)
	UpdateDrift(ctx context.Context, drift *models.Drift) (*models.Drift, error)
}
