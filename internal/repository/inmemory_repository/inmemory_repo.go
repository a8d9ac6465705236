package inmemoryrepository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"driftAnalyzer/internal/analyzer/models"
	"driftAnalyzer/internal/repository"

	"github.com/gofrs/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slices"
)

type InMemoryRepository struct {
	Tasks  map[string]*models.WorkItem
	Drifts map[string]*models.Drift
	Mu     *sync.Mutex
}

func NewInmemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		Tasks:  make(map[string]*models.WorkItem),
		Drifts: make(map[string]*models.Drift),
		Mu:     &sync.Mutex{},
	}
}

var _ repository.ReadWriteRepository = (*InMemoryRepository)(nil)

// AddTask seeds a task, generating an id when the item carries none.
// Used by tests and the dev bootstrap, not part of the engine contract.
func (inm *InMemoryRepository) AddTask(ctx context.Context, work *models.WorkItem) (*models.WorkItem, error) {
	inm.Mu.Lock()
	defer inm.Mu.Unlock()

	if work.Id.IsZero() {
		work.Id = primitive.NewObjectID()
	}
	inm.Tasks[work.Id.Hex()] = work

	return work, nil
}

func (inm *InMemoryRepository) ListActiveTasks(ctx context.Context, projectId string) ([]*models.WorkItem, error) {
	inm.Mu.Lock()
	defer inm.Mu.Unlock()

	tasks := []*models.WorkItem{}
	for _, task := range inm.Tasks {
		if task.ProjectId == projectId && task.Status != models.StatusCompleted {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].UpdatedAt.After(tasks[j].UpdatedAt)
	})
	return tasks, nil
}

func (inm *InMemoryRepository) ListTasks(ctx context.Context, projectId string) ([]*models.WorkItem, error) {
	inm.Mu.Lock()
	defer inm.Mu.Unlock()

	tasks := []*models.WorkItem{}
	for _, task := range inm.Tasks {
		if task.ProjectId == projectId {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].DueDate.Before(tasks[j].DueDate)
	})
	return tasks, nil
}

func (inm *InMemoryRepository) AddDrift(ctx context.Context, drift *models.Drift) (*models.Drift, error) {
	inm.Mu.Lock()
	defer inm.Mu.Unlock()

	uuid, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	if drift.Id.IsZero() {
		drift.Id = primitive.NewObjectID()
	}
	inm.Drifts[uuid.String()] = drift

	return drift, nil
}

func (inm *InMemoryRepository) ListDrifts(ctx context.Context, projectId string, statuses []string) ([]*models.Drift, error) {
	inm.Mu.Lock()
	defer inm.Mu.Unlock()

	drifts := []*models.Drift{}
	for _, drift := range inm.Drifts {
		if projectId != "" && drift.ProjectId != projectId {
			continue
		}
		if len(statuses) > 0 && !slices.Contains(statuses, drift.Status) {
			continue
		}
		drifts = append(drifts, drift)
	}
	sort.Slice(drifts, func(i, j int) bool {
		return drifts[i].CreatedAt.After(drifts[j].CreatedAt)
	})
	return drifts, nil
}

func (inm *InMemoryRepository) UpdateDrift(ctx context.Context, drift *models.Drift) (*models.Drift, error) {
	inm.Mu.Lock()
	defer inm.Mu.Unlock()

	for key, d := range inm.Drifts {
		if d.Id == drift.Id {
			inm.Drifts[key] = drift
			return drift, nil
		}
	}
	return nil, repository.NewErrorNotFound(fmt.Sprintf("Drift with id %s not found", drift.Id.Hex()))
}
