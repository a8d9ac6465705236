package actualizer

import (
	"context"
	"testing"
	"time"

	"driftAnalyzer/internal/analyzer/models"
	inmemoryrepository "driftAnalyzer/internal/repository/inmemory_repository"
)

func TestExpireStaleDrifts(t *testing.T) {

	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	seedDrift := func(repo *inmemoryrepository.InMemoryRepository, name string, endDate time.Time, status string) *models.Drift {
		drift := &models.Drift{
			Name:      name,
			StartDate: endDate.AddDate(0, 0, -3),
			EndDate:   endDate,
			ProjectId: "project1",
			Status:    status,
		}
		saved, err := repo.AddDrift(ctx, drift)
		if err != nil {
			t.Fatalf("Unexpected seed error: %s", err)
		}
		return saved
	}

	t.Run("stale proposal moves to expired", func(t *testing.T) {
		repo := inmemoryrepository.NewInmemoryRepository()
		stale := seedDrift(repo, "Drift 1", now.AddDate(0, 0, -1), models.DriftStatusProposed)
		current := seedDrift(repo, "Drift 2", now.AddDate(0, 0, 2), models.DriftStatusProposed)

		act := NewActualizer(repo)
		act.ExpireStaleDrifts(ctx, now)

		expired, err := repo.ListDrifts(ctx, "project1", []string{models.DriftStatusExpired})
		if err != nil {
			t.Fatalf("Unexpected list error: %s", err)
		}
		if len(expired) != 1 || expired[0].Id != stale.Id {
			t.Errorf("Expect only the stale drift expired, got %d", len(expired))
		}

		proposed, err := repo.ListDrifts(ctx, "project1", []string{models.DriftStatusProposed})
		if err != nil {
			t.Fatalf("Unexpected list error: %s", err)
		}
		if len(proposed) != 1 || proposed[0].Id != current.Id {
			t.Errorf("Expect the current drift to stay proposed, got %d", len(proposed))
		}
	})

	t.Run("non proposed drifts are left alone", func(t *testing.T) {
		repo := inmemoryrepository.NewInmemoryRepository()
		seedDrift(repo, "Drift 1", now.AddDate(0, 0, -5), models.DriftStatusExpired)

		act := NewActualizer(repo)
		act.ExpireStaleDrifts(ctx, now)

		drifts, err := repo.ListDrifts(ctx, "project1", nil)
		if err != nil {
			t.Fatalf("Unexpected list error: %s", err)
		}
		if len(drifts) != 1 || drifts[0].Status != models.DriftStatusExpired {
			t.Errorf("Expect untouched drift, got %+v", drifts)
		}
	})

	t.Run("end date on the boundary is not stale", func(t *testing.T) {
		repo := inmemoryrepository.NewInmemoryRepository()
		seedDrift(repo, "Drift 1", now, models.DriftStatusProposed)

		act := NewActualizer(repo)
		act.ExpireStaleDrifts(ctx, now)

		proposed, err := repo.ListDrifts(ctx, "", []string{models.DriftStatusProposed})
		if err != nil {
			t.Fatalf("Unexpected list error: %s", err)
		}
		if len(proposed) != 1 {
			t.Errorf("Expect drift ending today to stay proposed, got %d", len(proposed))
		}
	})

}
