package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"driftAnalyzer/internal/analyzer/app"
	"driftAnalyzer/internal/analyzer/models"
	"driftAnalyzer/internal/configuration"
	"driftAnalyzer/internal/repository"
)

type Api struct {
	RepoData repository.ReadWriteRepository
	Config   *configuration.Configurator
}

func NewApi(repo repository.ReadWriteRepository, config *configuration.Configurator) *Api {
	return &Api{
		RepoData: repo,
		Config:   config,
	}
}

var _ ServerInterface = (*Api)(nil)

type ErrorStruct struct {
	ErrorCode string `json:"errorCode,omitempty"`
	Message   string `json:"message,omitempty"`
}

// analyzer builds an engine with an immutable copy of the current config,
// so a config reload mid-request never changes a running analysis.
func (a *Api) analyzer() *app.Analyzer {
	return app.NewAnalyzer(a.RepoData, app.ConfigFrom(a.Config.Data))
}

func (a *Api) writeError(w http.ResponseWriter, status int, code string, message error) {
	w.WriteHeader(status)
	if message == nil {
		message = errors.New("")
	}
	err := ErrorStruct{
		Message:   message.Error(),
		ErrorCode: code,
	}
	errBytes, e := json.Marshal(err)
	if e != nil {
		w.Write([]byte(e.Error()))
	} else {
		w.Write(errBytes)
	}
}

func (a *Api) writeJson(w http.ResponseWriter, status int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "Internal error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

func (a *Api) GetDriftIQ(w http.ResponseWriter, r *http.Request, projectId string, params GetDriftIQParams) {
	defer r.Body.Close()

	forceFresh := params.ForceFresh != nil && *params.ForceFresh

	result := a.analyzer().TriggerDriftIQCheck(r.Context(), projectId, app.TriggerOptions{ForceFresh: forceFresh})
	if !result.Success {
		a.writeJson(w, http.StatusInternalServerError, result)
		return
	}

	a.writeJson(w, http.StatusOK, result)
}

func (a *Api) RunDriftIQ(w http.ResponseWriter, r *http.Request, projectId string, params RunDriftIQParams) {
	defer r.Body.Close()

	save := params.Save != nil && *params.Save

	result := a.analyzer().RunDriftIQCheck(r.Context(), projectId, save)
	if !result.Success {
		a.writeJson(w, http.StatusInternalServerError, result)
		return
	}

	a.writeJson(w, http.StatusOK, result)
}

func (a *Api) GetDrifts(w http.ResponseWriter, r *http.Request, projectId string, params GetDriftsParams) {
	defer r.Body.Close()

	statuses := []string{}
	if params.Statuses != nil {
		statuses = *params.Statuses
	}

	drifts, err := a.RepoData.ListDrifts(r.Context(), projectId, statuses)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "Internal error", err)
		return
	}
	if drifts == nil {
		drifts = []*models.Drift{}
	}

	a.writeJson(w, http.StatusOK, drifts)
}

func (a *Api) GetWorkload(w http.ResponseWriter, r *http.Request, projectId string, params GetWorkloadParams) {
	defer r.Body.Close()

	works, err := a.RepoData.ListTasks(r.Context(), projectId)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "Internal error", err)
		return
	}

	a.writeJson(w, http.StatusOK, buildWorkloadReports(models.NormalizeAll(works), params.AssigneeId, time.Now()))
}

func (a *Api) GetBottleneckTimeline(w http.ResponseWriter, r *http.Request, projectId string, params GetBottleneckTimelineParams) {
	defer r.Body.Close()

	works, err := a.RepoData.ListTasks(r.Context(), projectId)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "Internal error", err)
		return
	}
	tasks := models.NormalizeAll(works)

	fromDate := earliestCreation(tasks)
	toDate := time.Now()
	if params.FromDate != nil {
		fromDate = *params.FromDate
	}
	if params.ToDate != nil {
		toDate = *params.ToDate
	}
	if !fromDate.Before(toDate) {
		a.writeError(w, http.StatusBadRequest, "Bad request", errors.New("fromDate must be before toDate"))
		return
	}

	analyzer := a.analyzer()
	windowDays := analyzer.Config.ScanHorizonDays
	stepDays := 1
	if params.WindowDays != nil {
		windowDays = *params.WindowDays
	}
	if params.StepDays != nil {
		stepDays = *params.StepDays
	}
	if windowDays < 1 || stepDays < 1 {
		a.writeError(w, http.StatusBadRequest, "Bad request", errors.New("windowDays and stepDays must be greater then 0"))
		return
	}

	a.writeJson(w, http.StatusOK, analyzer.ScanTimeline(tasks, fromDate, toDate, windowDays, stepDays))
}

func earliestCreation(tasks []models.Task) time.Time {
	earliest := time.Now()
	for _, task := range tasks {
		if !task.CreatedAt.IsZero() && task.CreatedAt.Before(earliest) {
			earliest = task.CreatedAt
		}
	}
	return earliest
}
