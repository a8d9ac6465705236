package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultEffortSeconds = 3600
	DefaultPriority      = "Normal"
	DefaultStatus        = "Pending"
	DefaultTaskName      = "[Untitled]"

	StatusCompleted = "completed"
)

// WorkItem is the raw task document as the surrounding application stores it.
// Most fields are optional; the engine never reads a WorkItem directly,
// it goes through Normalize first.
type WorkItem struct {
	Id            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProjectId     string             `bson:"projectId,omitempty" json:"projectId,omitempty"`
	Title         string             `bson:"title,omitempty" json:"title,omitempty"`
	AssignedTo    string             `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	DueDate       time.Time          `bson:"dueDate,omitempty" json:"dueDate"`
	EffortSeconds int64              `bson:"effortSeconds,omitempty" json:"effortSeconds,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
	Priority      string             `bson:"priority,omitempty" json:"priority,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	StartedAt     *time.Time         `bson:"startedAt,omitempty" json:"startedAt,omitempty"`
	CompletedAt   *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	UpdatedAt     time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (w WorkItem) String() string {
	return fmt.Sprintf(
		`Id: %s,
Title: %s,
AssignedTo: %s,
DueDate: %s,
EffortSeconds: %d,
Priority: %s,
Status: %s
`, w.Id.Hex(), w.Title, w.AssignedTo, w.DueDate, w.EffortSeconds, w.Priority, w.Status)
}

// Task is the fully populated item the engine computes over. Every field is
// defaulted once here, downstream code assumes completeness.
type Task struct {
	Id            string
	Name          string
	AssigneeId    string
	DueDate       time.Time
	EffortSeconds int64
	Priority      string
	Status        string
	CreatedAt     time.Time
	StartedAt     *time.Time
	CompletedAt   *time.Time
}

func (w *WorkItem) Normalize() Task {
	t := Task{
		Id:            w.Id.Hex(),
		Name:          w.Title,
		AssigneeId:    w.AssignedTo,
		DueDate:       w.DueDate,
		EffortSeconds: w.EffortSeconds,
		Priority:      w.Priority,
		Status:        w.Status,
		CreatedAt:     w.CreatedAt,
		StartedAt:     w.StartedAt,
		CompletedAt:   w.CompletedAt,
	}
	if t.Name == "" {
		t.Name = DefaultTaskName
	}
	if t.EffortSeconds <= 0 {
		t.EffortSeconds = DefaultEffortSeconds
	}
	if t.Priority == "" {
		t.Priority = DefaultPriority
	}
	if t.Status == "" {
		t.Status = DefaultStatus
	}
	return t
}

func (t Task) EffortHours() float64 {
	return float64(t.EffortSeconds) / 3600
}

func (t Task) IsCompleted() bool {
	return t.CompletedAt != nil
}

func NormalizeAll(works []*WorkItem) []Task {
	tasks := make([]Task, 0, len(works))
	for _, w := range works {
		tasks = append(tasks, w.Normalize())
	}
	return tasks
}
