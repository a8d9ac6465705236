package app

import (
	"driftAnalyzer/internal/analyzer/models"
)

// ScanNext7Days classifies one person's pressure over the forward scan
// horizon. Tasks without a due date inside [today, today+horizon] are
// ignored; with nothing left the scan exits early with a healthy result.
func (a *Analyzer) ScanNext7Days(tasks []models.Task, userId string) *models.PersonBottleneckAnalysis {
	horizon := a.Config.ScanHorizonDays
	threshold := a.Config.DailyCapacityThreshold

	today := DayStart(a.now())
	windowEnd := today.AddDate(0, 0, horizon)

	relevantTasks := []models.Task{}
	for _, task := range tasks {
		due := DayStart(task.DueDate)
		if !due.Before(today) && !due.After(windowEnd) {
			relevantTasks = append(relevantTasks, task)
		}
	}

	if len(relevantTasks) == 0 {
		return &models.PersonBottleneckAnalysis{
			UserId:        userId,
			HasBottleneck: false,
			RelevantTasks: []models.Task{},
			Message:       "No tasks due in next 7 days",
		}
	}

	datesInWindow := DatesInRange(today, horizon)
	dailyCumulative := make([]float64, horizon)
	highPressureTaskCount := 0
	taskBreakdown := []models.TaskPressureBreakdown{}

	for _, task := range relevantTasks {
		dailyScores := make([]float64, 0, horizon)
		for _, date := range datesInWindow {
			dailyScores = append(dailyScores, QuotaForDay(task, today, windowEnd, date, a.Config))
		}

		sumQuota := 0.0
		maxQuota := 0.0
		daysOverThreshold := 0
		rounded := make([]float64, 0, horizon)
		for i, quota := range dailyScores {
			sumQuota += quota
			if quota > maxQuota {
				maxQuota = quota
			}
			if quota > threshold {
				daysOverThreshold++
			}
			rounded = append(rounded, round2(quota))
			dailyCumulative[i] += quota
		}
		avgQuota := sumQuota / float64(len(dailyScores))

		// the multiple-days clause is subsumed by daysOverThreshold > 0 but
		// matches the shipped behavior, so it stays
		isHighPressureMultipleDays := daysOverThreshold >= 3
		isHighPressureAvg := avgQuota > threshold*0.5
		isHighPressure := daysOverThreshold > 0 || isHighPressureMultipleDays || isHighPressureAvg

		if isHighPressure {
			highPressureTaskCount++
		}

		taskBreakdown = append(taskBreakdown, models.TaskPressureBreakdown{
			TaskId:            task.Id,
			TaskName:          task.Name,
			DailyQuota:        rounded,
			DueDate:           task.DueDate,
			Priority:          task.Priority,
			AvgQuota:          round2(avgQuota),
			MaxQuota:          round2(maxQuota),
			SumQuota:          round2(sumQuota),
			HighPressure:      isHighPressure,
			DaysOverThreshold: daysOverThreshold,
		})
	}

	dailySummary := make([]models.DailySummary, 0, horizon)
	for i, date := range datesInWindow {
		dailySummary = append(dailySummary, models.DailySummary{
			Date:            date.Format("2006-01-02"),
			DateLabel:       date.Format("Jan 2"),
			CumulativeQuota: round2(dailyCumulative[i]),
			OverThreshold:   dailyCumulative[i] > threshold,
			Threshold:       threshold,
		})
	}

	highPressureDayCount := 0
	totalCumulative := 0.0
	maxDailyCumulative := 0.0
	roundedCumulative := make([]float64, 0, horizon)
	for _, dailySum := range dailyCumulative {
		totalCumulative += dailySum
		if dailySum > maxDailyCumulative {
			maxDailyCumulative = dailySum
		}
		if dailySum > threshold {
			highPressureDayCount++
		}
		roundedCumulative = append(roundedCumulative, round2(dailySum))
	}
	hasSustainedOverload := highPressureDayCount > a.Config.SustainedOverloadDays
	hasBottleneck := highPressureDayCount > 0 && hasSustainedOverload
	avgQuota := totalCumulative / float64(horizon)

	graphData := &models.PersonGraphData{
		UserId:        userId,
		UserName:      shortUserName(userId),
		DailySummary:  dailySummary,
		TaskBreakdown: taskBreakdown,
		Metrics: models.AnalysisMetrics{
			TotalTasks:            len(relevantTasks),
			HighPressureTaskCount: highPressureTaskCount,
			HighPressureDays:      highPressureDayCount,
			AvgQuota:              round2(avgQuota),
			MaxDailyQuota:         round2(maxDailyCumulative),
			HasSustainedOverload:  hasSustainedOverload,
			HasBottleneck:         hasBottleneck,
		},
		Thresholds: models.Thresholds{
			DailyQuotaThreshold:      threshold,
			HighPressureDayThreshold: a.Config.SustainedOverloadDays,
		},
	}

	return &models.PersonBottleneckAnalysis{
		UserId:                userId,
		HasBottleneck:         hasBottleneck,
		RelevantTasks:         relevantTasks,
		HighPressureTaskCount: highPressureTaskCount,
		TotalTasks:            len(relevantTasks),
		AvgQuota:              avgQuota,
		DailyCumulative:       roundedCumulative,
		GraphData:             graphData,
	}
}

func shortUserName(userId string) string {
	if len(userId) <= 4 {
		return userId
	}
	return userId[len(userId)-4:]
}
