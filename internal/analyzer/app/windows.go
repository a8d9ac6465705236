package app

import (
	"strings"
	"time"

	"driftAnalyzer/internal/analyzer/models"

	interval "github.com/go-follow/time-interval"
)

// DatesInRange returns n consecutive day buckets starting at start,
// normalized to midnight.
func DatesInRange(start time.Time, n int) []time.Time {
	dates := make([]time.Time, 0, n)
	current := DayStart(start)
	for i := 0; i < n; i++ {
		dates = append(dates, current)
		current = current.AddDate(0, 0, 1)
	}
	return dates
}

// Window is one analysis window over the project timeline.
type Window struct {
	Start time.Time `json:"windowStart"`
	End   time.Time `json:"windowEnd"`
}

func (w Window) Span() (*interval.Span, error) {
	span, err := interval.New(w.Start, w.End)
	if err != nil {
		return nil, err
	}
	return &span, nil
}

// OverlappingWindows produces windows of sizeDays advancing by stepDays,
// stopping once a window would reach past end.
func OverlappingWindows(start, end time.Time, sizeDays, stepDays int) []Window {
	windows := []Window{}
	if sizeDays <= 0 || stepDays <= 0 {
		return windows
	}
	current := start
	for !current.AddDate(0, 0, sizeDays).After(end) {
		windows = append(windows, Window{
			Start: current,
			End:   current.AddDate(0, 0, sizeDays),
		})
		current = current.AddDate(0, 0, stepDays)
	}
	return windows
}

// RelevantInWindow reports whether the task's lifetime span, from creation
// (or the window start when unknown) to its due date, intersects the window.
func RelevantInWindow(task models.Task, w Window) bool {
	taskStart := task.CreatedAt
	if taskStart.IsZero() {
		taskStart = w.Start
	}
	taskSpan, err := interval.New(taskStart, task.DueDate)
	if err != nil {
		// degenerate task span, fall back to plain comparisons
		return taskStart.Before(w.End) && task.DueDate.After(w.Start)
	}
	windowSpan, err := interval.New(w.Start, w.End)
	if err != nil {
		return false
	}
	return taskSpan.IsIntersection(windowSpan)
}

func OverdueInWindow(task models.Task, windowEnd time.Time) bool {
	if !task.DueDate.Before(windowEnd) {
		return false
	}
	return task.CompletedAt == nil || task.CompletedAt.After(windowEnd)
}

func Important(task models.Task) bool {
	switch strings.ToLower(task.Priority) {
	case "high", "urgent":
		return true
	}
	return false
}

// TimelineWindowReport summarizes one window of the multi-window scan.
type TimelineWindowReport struct {
	Window         Window  `json:"window"`
	TaskCount      int     `json:"taskCount"`
	OverdueCount   int     `json:"overdueCount"`
	ImportantCount int     `json:"importantCount"`
	EffortHours    float64 `json:"effortHours"`
	LoadRatio      float64 `json:"loadRatio"`
	OverCapacity   bool    `json:"overCapacity"`
}

// ScanTimeline runs a lower-resolution capacity pass over overlapping
// windows of the whole project timeline, distinct from the fixed
// forward-horizon person scan.
func (a *Analyzer) ScanTimeline(tasks []models.Task, start, end time.Time, sizeDays, stepDays int) []TimelineWindowReport {
	reports := []TimelineWindowReport{}
	for _, w := range OverlappingWindows(start, end, sizeDays, stepDays) {
		report := TimelineWindowReport{Window: w}
		for _, task := range tasks {
			if !RelevantInWindow(task, w) {
				continue
			}
			report.TaskCount++
			report.EffortHours += task.EffortHours()
			if OverdueInWindow(task, w.End) {
				report.OverdueCount++
			}
			if Important(task) {
				report.ImportantCount++
			}
		}
		capacity := float64(sizeDays) * a.Config.WorkingHoursPerDay
		if capacity > 0 {
			report.LoadRatio = round2(report.EffortHours / capacity)
		}
		report.OverCapacity = report.LoadRatio > a.Config.DailyCapacityThreshold
		reports = append(reports, report)
	}
	return reports
}
