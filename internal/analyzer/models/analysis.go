package models

import "time"

// DailyQuota is one (day, fraction-of-capacity) pair for a single task.
type DailyQuota struct {
	Date  time.Time `json:"date"`
	Quota float64   `json:"quota"`
}

// TaskPressureBreakdown aggregates one task's quotas over the scan window.
// Wire names keep the WLC vocabulary the frontend graphs were built against.
type TaskPressureBreakdown struct {
	TaskId            string    `json:"taskId"`
	TaskName          string    `json:"taskName"`
	DailyQuota        []float64 `json:"dailyWLC"`
	DueDate           time.Time `json:"dueDate"`
	Priority          string    `json:"priority"`
	AvgQuota          float64   `json:"avgWLC"`
	MaxQuota          float64   `json:"maxWLC"`
	SumQuota          float64   `json:"sumWLC"`
	HighPressure      bool      `json:"isHighPressure"`
	DaysOverThreshold int       `json:"daysOverThreshold"`
}

type DailySummary struct {
	Date            string  `json:"date"`
	DateLabel       string  `json:"dateLabel"`
	CumulativeQuota float64 `json:"cumulativeWLC"`
	OverThreshold   bool    `json:"isOverThreshold"`
	Threshold       float64 `json:"threshold"`
}

type AnalysisMetrics struct {
	TotalTasks            int     `json:"totalTasks"`
	HighPressureTaskCount int     `json:"highPressureTaskCount"`
	HighPressureDays      int     `json:"highPressureDays"`
	AvgQuota              float64 `json:"avgWLC"`
	MaxDailyQuota         float64 `json:"maxDailyWLC"`
	HasSustainedOverload  bool    `json:"hasSustainedOverload"`
	HasBottleneck         bool    `json:"hasBottleneck"`
}

type Thresholds struct {
	DailyQuotaThreshold      float64 `json:"dailyWLCThreshold"`
	HighPressureDayThreshold int     `json:"highPressureDayThreshold"`
}

// PersonGraphData is the per-person visualization payload.
type PersonGraphData struct {
	UserId        string                  `json:"userId"`
	UserName      string                  `json:"userName"`
	DailySummary  []DailySummary          `json:"dailySummary"`
	TaskBreakdown []TaskPressureBreakdown `json:"taskBreakdown"`
	Metrics       AnalysisMetrics         `json:"analysisMetrics"`
	Thresholds    Thresholds              `json:"thresholds"`
}

// PersonBottleneckAnalysis is the scanner result for one person.
type PersonBottleneckAnalysis struct {
	UserId                string           `json:"userId"`
	HasBottleneck         bool             `json:"hasBottleneck"`
	RelevantTasks         []Task           `json:"-"`
	HighPressureTaskCount int              `json:"highPressureTaskCount"`
	TotalTasks            int              `json:"totalTasks"`
	AvgQuota              float64          `json:"avgWLC"`
	DailyCumulative       []float64        `json:"dailyCumulativeWLCs"`
	Message               string           `json:"message,omitempty"`
	GraphData             *PersonGraphData `json:"wlcGraphData,omitempty"`
}

type WindowSummary struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	TotalDays int    `json:"totalDays"`
}

type GraphData struct {
	AnalysisWindow WindowSummary      `json:"analysisWindow"`
	ProjectData    []*PersonGraphData `json:"projectWLCData"`
}

// AffectedUser is one bottlenecked person inside a drift suggestion.
type AffectedUser struct {
	UserId                string           `bson:"userId" json:"userId"`
	TaskIds               []string         `bson:"taskIds" json:"taskIds"`
	TaskCount             int              `bson:"taskCount" json:"taskCount"`
	WorkHours             float64          `bson:"workHours" json:"workHours"`
	HighPressureTaskCount int              `bson:"highPressureTaskCount" json:"highPressureTaskCount"`
	AvgQuota              float64          `bson:"avgWLC" json:"avgWLC"`
	DriftDays             int              `bson:"driftDays" json:"driftDays"`
	GraphData             *PersonGraphData `bson:"wlcGraphData,omitempty" json:"wlcGraphData,omitempty"`
}

// DriftSuggestion is the combined proposal computed by the capacity
// aggregator. Transient until the orchestrator materializes a Drift from it.
type DriftSuggestion struct {
	Type               string         `json:"type"`
	StartDate          time.Time      `json:"startDate"`
	EndDate            time.Time      `json:"endDate"`
	DurationDays       int            `json:"durationDays"`
	AffectedUsers      []AffectedUser `json:"affectedUsers"`
	TotalTaskIds       []string       `json:"totalTaskIds"`
	TotalTasks         int            `json:"totalTasks"`
	TotalWorkHours     float64        `json:"totalWorkHours"`
	CalculationBasis   string         `json:"calculationBasis"`
	WorkingHoursPerDay float64        `json:"workingHoursPerDay"`
	CooldownHours      float64        `json:"cooldownHours"`
	Severity           string         `json:"severity"`
	Confidence         string         `json:"confidence"`
}

// DriftCheck is the aggregator output for one project snapshot.
type DriftCheck struct {
	NeedsAttention bool             `json:"needsAttention"`
	Drift          *DriftSuggestion `json:"drift"`
	GraphData      *GraphData       `json:"graphData"`
}
