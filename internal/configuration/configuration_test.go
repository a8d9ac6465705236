package configuration

import (
	"context"
	"testing"
	"time"
)

const (
	configFile = "../../config.yml"
)

func TestConfigSuccees(t *testing.T) {

	t.Run("succees read config", func(t *testing.T) {
		ctx := context.Background()
		configurator := NewConfigurator(ctx, configFile)
		configurator.Run()
		time.Sleep(2 * time.Second)
		if configurator.Data.DailyCapacityThreshold != 1.0 {
			t.Errorf("wrong DailyCapacityThreshold in config file %s: want 1.0, got %v", configFile, configurator.Data.DailyCapacityThreshold)
		}
		if configurator.Data.ScanHorizonDays != 7 {
			t.Errorf("wrong ScanHorizonDays in config file %s: want 7, got %v", configFile, configurator.Data.ScanHorizonDays)
		}
		if configurator.Data.CooldownHours != 0.5 {
			t.Errorf("wrong CooldownHours in config file %s: want 0.5, got %v", configFile, configurator.Data.CooldownHours)
		}
		if configurator.Data.DriftNamePrefix != "Drift" {
			t.Errorf("wrong DriftNamePrefix in config file %s: want Drift, got %v", configFile, configurator.Data.DriftNamePrefix)
		}
	})

}

func TestConfigValidationError(t *testing.T) {

	t.Run("error invalid tunables", func(t *testing.T) {
		configurator := NewConfigurator(context.Background(), configFile)
		conf := Config{
			DailyCapacityThreshold: 0,
			SustainedOverloadDays:  9,
			CooldownHours:          5,
			WorkingHoursPerDay:     0,
			ScanHorizonDays:        0,
		}
		if err := configurator.validateConfig(&conf); err == nil {
			t.Errorf("Expect validation error but got nil")
		}
	})

	t.Run("succees default drift name prefix", func(t *testing.T) {
		configurator := NewConfigurator(context.Background(), configFile)
		conf := Config{
			DailyCapacityThreshold: 1.0,
			SustainedOverloadDays:  2,
			CooldownHours:          0.5,
			WorkingHoursPerDay:     8,
			ScanHorizonDays:        7,
		}
		if err := configurator.validateConfig(&conf); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if conf.DriftNamePrefix != "Drift" {
			t.Errorf("Expect default drift name prefix, got %v", conf.DriftNamePrefix)
		}
	})

}
