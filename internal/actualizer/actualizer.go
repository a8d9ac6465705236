package actualizer

import (
	"context"
	"log"
	"time"

	"driftAnalyzer/internal/analyzer/models"
	"driftAnalyzer/internal/repository"
)

// Actualizer expires stale drift proposals in the background: a proposal
// whose window has fully passed without being accepted moves to "expired".
// The engine itself never advances drift status.
type Actualizer struct {
	Repository repository.ReadWriteRepository
	Interval   time.Duration
}

func NewActualizer(repo repository.ReadWriteRepository) *Actualizer {
	return &Actualizer{
		Repository: repo,
		Interval:   1 * time.Minute,
	}
}

func (a *Actualizer) Run(ctx context.Context) {
	go a.actualize(ctx)
}

func (a *Actualizer) actualize(ctx context.Context) {
	ticker := time.NewTicker(a.Interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.ExpireStaleDrifts(ctx, time.Now())
		}
	}
}

func (a *Actualizer) ExpireStaleDrifts(ctx context.Context, now time.Time) {
	drifts, err := a.Repository.ListDrifts(ctx, "", []string{models.DriftStatusProposed})
	if err != nil {
		log.Printf("WARNING: Find error while getting drifts for actualizer from data, %s\n", err)
		return
	}
	for _, drift := range drifts {
		if drift.EndDate.Before(now) {
			drift.Status = models.DriftStatusExpired
			if _, err := a.Repository.UpdateDrift(ctx, drift); err != nil {
				log.Printf("WARNING: Find error while expiring drift %s, %s\n", drift.Id.Hex(), err)
			}
		}
	}
}
