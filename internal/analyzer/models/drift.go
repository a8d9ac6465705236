package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DriftStatusProposed = "proposed"
	DriftStatusExpired  = "expired"

	DriftTypeCombinedCapacity = "COMBINED_CAPACITY_DRIFT"
	CalculationBasisEvenDist  = "EVEN_DISTRIBUTION_DAILY_QUOTA"
)

// DriftTask is a materialized task summary inside a persisted drift.
type DriftTask struct {
	Id            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	DueDate       time.Time `bson:"dueDate" json:"dueDate"`
	AssignedTo    string    `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	EffortSeconds int64     `bson:"effortSeconds" json:"effortSeconds"`
	EffortHours   float64   `bson:"effortHours" json:"effortHours"`
	Priority      string    `bson:"priority" json:"priority"`
	Status        string    `bson:"status" json:"status"`
}

type DriftMetadata struct {
	Type               string    `bson:"type" json:"type"`
	CalculationBasis   string    `bson:"calculationBasis" json:"calculationBasis"`
	WorkingHoursPerDay float64   `bson:"workingHoursPerDay" json:"workingHoursPerDay"`
	CooldownHours      float64   `bson:"cooldownHours" json:"cooldownHours"`
	TotalTasks         int       `bson:"totalTasks" json:"totalTasks"`
	AffectedUsers      int       `bson:"affectedUsers" json:"affectedUsers"`
	Severity           string    `bson:"severity" json:"severity"`
	Confidence         string    `bson:"confidence" json:"confidence"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
}

// Drift is the persistable proposal record. Immutable once created; only its
// Status is advanced afterwards, and not by the engine.
type Drift struct {
	Id           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	StartDate    time.Time          `bson:"startDate" json:"startDate"`
	EndDate      time.Time          `bson:"endDate" json:"endDate"`
	DurationDays int                `bson:"durationDays" json:"durationDays"`
	Tasks        []DriftTask        `bson:"tasks" json:"tasks"`
	Metadata     DriftMetadata      `bson:"metadata" json:"metadata"`
	Users        []AffectedUser     `bson:"users" json:"users"`
	GraphData    *GraphData         `bson:"graphData,omitempty" json:"graphData,omitempty"`
	ProjectId    string             `bson:"projectId,omitempty" json:"projectId,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	Status       string             `bson:"status,omitempty" json:"status,omitempty"`
}

// CheckResult is the orchestrator's boundary shape. Failures surface in the
// Error field, a failed save in SaveError; neither escapes as a Go error.
type CheckResult struct {
	Success       bool       `json:"success"`
	HasDrift      bool       `json:"hasDrift"`
	Message       string     `json:"message,omitempty"`
	Error         string     `json:"error,omitempty"`
	CheckId       string     `json:"checkId,omitempty"`
	AnalysisDate  time.Time  `json:"analysisDate"`
	ProjectId     string     `json:"projectId"`
	Drift         *Drift     `json:"drift,omitempty"`
	GraphData     *GraphData `json:"graphData,omitempty"`
	TasksAnalyzed int        `json:"tasksAnalyzed"`
	RefreshMode   string     `json:"refreshMode,omitempty"`
	DriftId       string     `json:"driftId,omitempty"`
	SavedToDB     bool       `json:"savedToDB,omitempty"`
	SaveError     string     `json:"saveError,omitempty"`
}
