package app

import (
	"time"

	"driftAnalyzer/internal/repository"
)

// Analyzer is the workload-pressure engine. It is stateless between
// invocations; the repository is only touched by the orchestrator entry
// points, the scan itself is pure computation over a snapshot.
type Analyzer struct {
	Config     Config
	Repository repository.ReadWriteRepository
	// Clock overrides time.Now in tests.
	Clock func() time.Time
}

func NewAnalyzer(repo repository.ReadWriteRepository, config Config) *Analyzer {
	return &Analyzer{
		Config:     config,
		Repository: repo,
	}
}

func (a *Analyzer) now() time.Time {
	if a.Clock != nil {
		return a.Clock()
	}
	return time.Now()
}
