package app

import "driftAnalyzer/internal/configuration"

// Config is the engine's immutable tunables. A value is copied in per
// invocation so a hot config reload never changes a running analysis.
type Config struct {
	DailyCapacityThreshold float64
	SustainedOverloadDays  int
	CooldownHours          float64
	WorkingHoursPerDay     float64
	ScanHorizonDays        int
	DriftNamePrefix        string
}

func DefaultConfig() Config {
	return Config{
		DailyCapacityThreshold: 1.0,
		SustainedOverloadDays:  2,
		CooldownHours:          0.5,
		WorkingHoursPerDay:     8,
		ScanHorizonDays:        7,
		DriftNamePrefix:        "Drift",
	}
}

func ConfigFrom(c *configuration.Config) Config {
	if c == nil {
		return DefaultConfig()
	}
	return Config{
		DailyCapacityThreshold: c.DailyCapacityThreshold,
		SustainedOverloadDays:  c.SustainedOverloadDays,
		CooldownHours:          c.CooldownHours,
		WorkingHoursPerDay:     c.WorkingHoursPerDay,
		ScanHorizonDays:        c.ScanHorizonDays,
		DriftNamePrefix:        c.DriftNamePrefix,
	}
}
