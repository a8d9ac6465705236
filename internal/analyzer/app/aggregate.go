package app

import (
	"log"
	"sort"
	"sync"

	"driftAnalyzer/internal/analyzer/models"
)

// scanWorkers bounds the per-person scan pool; scans share no state.
const scanWorkers = 4

// GenerateCapacityBasedDrifts groups the snapshot by assignee, scans every
// person, and synthesizes one combined drift proposal for those with a
// bottleneck. Unassigned tasks are excluded from the analysis.
func (a *Analyzer) GenerateCapacityBasedDrifts(allTasks []models.Task) *models.DriftCheck {
	tasksByUser := map[string][]models.Task{}
	for _, task := range allTasks {
		if task.AssigneeId == "" {
			continue
		}
		tasksByUser[task.AssigneeId] = append(tasksByUser[task.AssigneeId], task)
	}

	userIds := make([]string, 0, len(tasksByUser))
	for userId := range tasksByUser {
		userIds = append(userIds, userId)
	}
	sort.Strings(userIds)

	analyses := a.scanAll(tasksByUser, userIds)

	today := DayStart(a.now())
	analysisWindow := models.WindowSummary{
		StartDate: today.Format("2006-01-02"),
		EndDate:   today.AddDate(0, 0, a.Config.ScanHorizonDays).Format("2006-01-02"),
		TotalDays: a.Config.ScanHorizonDays,
	}

	bottleneckUsers := []models.AffectedUser{}
	allGraphData := []*models.PersonGraphData{}
	totalWorkHours := 0.0
	totalAffectedTasks := 0
	totalTaskIds := []string{}
	maxDriftDays := 0

	for _, userId := range userIds {
		analysis := analyses[userId]

		if analysis.GraphData != nil {
			allGraphData = append(allGraphData, analysis.GraphData)
		}

		if !analysis.HasBottleneck {
			log.Printf("user %s: healthy workload (%d tasks in window)\n", userId, analysis.TotalTasks)
			continue
		}

		driftCalculation := a.CalculateDriftPeriod(analysis.RelevantTasks)
		log.Printf("user %s: bottleneck detected, %d/%d high pressure tasks, %.2fh over %d drift days\n",
			userId, analysis.HighPressureTaskCount, analysis.TotalTasks,
			driftCalculation.TotalWorkHours, driftCalculation.DaysNeeded)

		taskIds := make([]string, 0, len(analysis.RelevantTasks))
		for _, task := range analysis.RelevantTasks {
			taskIds = append(taskIds, task.Id)
		}

		bottleneckUsers = append(bottleneckUsers, models.AffectedUser{
			UserId:                userId,
			TaskIds:               taskIds,
			TaskCount:             analysis.TotalTasks,
			WorkHours:             driftCalculation.TotalWorkHours,
			HighPressureTaskCount: analysis.HighPressureTaskCount,
			AvgQuota:              round2(analysis.AvgQuota),
			DriftDays:             driftCalculation.DaysNeeded,
			GraphData:             analysis.GraphData,
		})

		totalWorkHours += driftCalculation.TotalWorkHours
		totalAffectedTasks += analysis.TotalTasks
		totalTaskIds = append(totalTaskIds, taskIds...)
		if driftCalculation.DaysNeeded > maxDriftDays {
			maxDriftDays = driftCalculation.DaysNeeded
		}
	}

	graphData := &models.GraphData{
		AnalysisWindow: analysisWindow,
		ProjectData:    allGraphData,
	}

	if len(bottleneckUsers) == 0 {
		return &models.DriftCheck{
			NeedsAttention: false,
			Drift:          nil,
			GraphData:      graphData,
		}
	}

	severity := "MEDIUM"
	if len(bottleneckUsers) > 1 {
		severity = "HIGH"
	}
	confidence := "HIGH"
	for _, user := range bottleneckUsers {
		if user.HighPressureTaskCount <= 1 {
			confidence = "MEDIUM"
			break
		}
	}

	tomorrow := today.AddDate(0, 0, 1)
	endDate := tomorrow.AddDate(0, 0, maxDriftDays-1)

	suggestion := &models.DriftSuggestion{
		Type:               models.DriftTypeCombinedCapacity,
		StartDate:          tomorrow,
		EndDate:            endDate,
		DurationDays:       maxDriftDays,
		AffectedUsers:      bottleneckUsers,
		TotalTaskIds:       totalTaskIds,
		TotalTasks:         totalAffectedTasks,
		TotalWorkHours:     round2(totalWorkHours),
		CalculationBasis:   models.CalculationBasisEvenDist,
		WorkingHoursPerDay: a.Config.WorkingHoursPerDay,
		CooldownHours:      a.Config.CooldownHours,
		Severity:           severity,
		Confidence:         confidence,
	}

	return &models.DriftCheck{
		NeedsAttention: true,
		Drift:          suggestion,
		GraphData:      graphData,
	}
}

// scanAll runs the per-person scans on a small worker pool. Each scan reads
// only its own task subset, so the only coordination is the result map.
func (a *Analyzer) scanAll(tasksByUser map[string][]models.Task, userIds []string) map[string]*models.PersonBottleneckAnalysis {
	analyses := make(map[string]*models.PersonBottleneckAnalysis, len(userIds))
	mu := sync.Mutex{}
	wg := sync.WaitGroup{}
	jobs := make(chan string)

	workers := scanWorkers
	if len(userIds) < workers {
		workers = len(userIds)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for userId := range jobs {
				analysis := a.ScanNext7Days(tasksByUser[userId], userId)
				mu.Lock()
				analyses[userId] = analysis
				mu.Unlock()
			}
		}()
	}
	for _, userId := range userIds {
		jobs <- userId
	}
	close(jobs)
	wg.Wait()
	return analyses
}
