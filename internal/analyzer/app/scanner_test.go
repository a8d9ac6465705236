package app

import (
	"testing"
	"time"

	"driftAnalyzer/internal/analyzer/models"
)

func fixedClockAnalyzer(today time.Time) *Analyzer {
	analyzer := NewAnalyzer(nil, DefaultConfig())
	analyzer.Clock = func() time.Time { return today }
	return analyzer
}

func TestScanNext7Days(t *testing.T) {

	today := time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)

	t.Run("no tasks in window exits early", func(t *testing.T) {
		analyzer := fixedClockAnalyzer(today)
		tasks := []models.Task{testTask(8, today.AddDate(0, 0, 30))}
		analysis := analyzer.ScanNext7Days(tasks, "user1")
		if analysis.HasBottleneck {
			t.Errorf("Expect no bottleneck without tasks in window")
		}
		if analysis.GraphData != nil {
			t.Errorf("Expect no graph data on early exit")
		}
		if len(analysis.RelevantTasks) != 0 {
			t.Errorf("Expect no relevant tasks, got %d", len(analysis.RelevantTasks))
		}
	})

	t.Run("two overloaded days is not a bottleneck", func(t *testing.T) {
		analyzer := fixedClockAnalyzer(today)
		// 12h due today: days 1 and 2 over capacity, day 3 exactly at it
		tasks := []models.Task{testTask(12, today)}
		analysis := analyzer.ScanNext7Days(tasks, "user1")
		if analysis.GraphData.Metrics.HighPressureDays != 2 {
			t.Errorf("Expect 2 high pressure days, got %d", analysis.GraphData.Metrics.HighPressureDays)
		}
		if analysis.HasBottleneck {
			t.Errorf("Expect no bottleneck with exactly 2 overloaded days")
		}
	})

	t.Run("three overloaded days is a bottleneck", func(t *testing.T) {
		analyzer := fixedClockAnalyzer(today)
		tasks := []models.Task{testTask(16, today)}
		analysis := analyzer.ScanNext7Days(tasks, "user1")
		if analysis.GraphData.Metrics.HighPressureDays != 3 {
			t.Errorf("Expect 3 high pressure days, got %d", analysis.GraphData.Metrics.HighPressureDays)
		}
		if !analysis.HasBottleneck {
			t.Errorf("Expect bottleneck with 3 overloaded days")
		}
		if analysis.HighPressureTaskCount != 1 {
			t.Errorf("Expect 1 high pressure task, got %d", analysis.HighPressureTaskCount)
		}
	})

	t.Run("cumulative pressure sums across tasks", func(t *testing.T) {
		analyzer := fixedClockAnalyzer(today)
		// three 8h tasks due tomorrow plus two 8h tasks due in 3 days
		tasks := []models.Task{}
		for i := 0; i < 3; i++ {
			tasks = append(tasks, testTask(8, today.AddDate(0, 0, 1)))
		}
		for i := 0; i < 2; i++ {
			tasks = append(tasks, testTask(8, today.AddDate(0, 0, 3)))
		}
		analysis := analyzer.ScanNext7Days(tasks, "user1")
		if !analysis.HasBottleneck {
			t.Errorf("Expect bottleneck for stacked due-soon tasks")
		}
		if analysis.TotalTasks != 5 {
			t.Errorf("Expect 5 relevant tasks, got %d", analysis.TotalTasks)
		}
		// day 1: 3 tasks at 0.5 plus 2 tasks at 0.25
		if !almostEqual(analysis.DailyCumulative[0], 2.0) {
			t.Errorf("Expect cumulative quota 2.0 on day 1, got %v", analysis.DailyCumulative[0])
		}
		if len(analysis.GraphData.DailySummary) != 7 {
			t.Errorf("Expect 7 daily summary entries, got %d", len(analysis.GraphData.DailySummary))
		}
		if len(analysis.GraphData.TaskBreakdown) != 5 {
			t.Errorf("Expect 5 task breakdown entries, got %d", len(analysis.GraphData.TaskBreakdown))
		}
	})

}
