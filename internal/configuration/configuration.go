package configuration

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

type Configurator struct {
	ConfigPath string
	Data       *Config
	Ctx        context.Context
	Mu         *sync.Mutex
	Started    bool
}

// Config carries the engine tunables. The engine itself never reads this
// struct, it gets an immutable copy per invocation (see app.ConfigFrom).
type Config struct {
	DailyCapacityThreshold float64 `yaml:"daily_capacity_threshold"`
	SustainedOverloadDays  int     `yaml:"sustained_overload_days"`
	CooldownHours          float64 `yaml:"cooldown_hours"`
	WorkingHoursPerDay     float64 `yaml:"working_hours_per_day"`
	ScanHorizonDays        int     `yaml:"scan_horizon_days"`
	DriftNamePrefix        string  `yaml:"drift_name_prefix"`
}

func NewConfigurator(ctx context.Context, filepath string) *Configurator {
	return &Configurator{
		ConfigPath: filepath,
		Data:       &Config{},
		Ctx:        ctx,
		Mu:         &sync.Mutex{},
		Started:    false,
	}
}

func (c *Configurator) Run() {
	c.updateConfig()
	go c.mainProcess()
}

func (c *Configurator) mainProcess() {
	path := filepath.Dir(c.ConfigPath)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatal(err)
	}
	defer watcher.Close()
	err = watcher.Add(path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) {
				if event.Name == c.ConfigPath {
					c.updateConfig()
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("WARNING: %s", err)
		case <-c.Ctx.Done():
			return
		}
	}
}

func (c *Configurator) updateConfig() {
	log.Println("Config processing...")
	c.Mu.Lock()
	defer c.Mu.Unlock()
	conf, err := c.readConfig()
	if err != nil && !c.Started {
		log.Fatal(err)
	} else if err != nil {
		log.Printf("WARNING: Given config is invalid, config update ignoring: %s", err)
		return
	}
	err = c.validateConfig(&conf)
	if err != nil && !c.Started {
		log.Fatal(err)
	} else if err != nil {
		log.Printf("WARNING: Given config is invalid, config update ignoring: %s", err)
		return
	} else {
		c.Data = &conf
		c.Started = true
		log.Println("Configuration updated succesfully!")
	}
}

func (c *Configurator) readConfig() (config Config, err error) {
	file, err := os.ReadFile(c.ConfigPath)
	if err != nil {
		return
	}
	err = yaml.Unmarshal(file, &config)
	if err != nil {
		return
	}

	return
}

func (c *Configurator) validateConfig(conf *Config) error {
	errStr := ""

	if conf.DailyCapacityThreshold <= 0 {
		errStr += "daily_capacity_threshold must be greater then 0; "
	}

	if conf.ScanHorizonDays < 1 || conf.ScanHorizonDays > 31 {
		errStr += "scan_horizon_days must be in range from 1 to 31; "
	}

	if conf.SustainedOverloadDays < 0 || conf.SustainedOverloadDays >= conf.ScanHorizonDays {
		errStr += fmt.Sprintf("sustained_overload_days must be in range from 0 to scan_horizon_days (%d); ", conf.ScanHorizonDays)
	}

	if conf.CooldownHours < 0 || conf.CooldownHours > 4 {
		errStr += "cooldown_hours must be in range from 0 to 4; "
	}

	if conf.WorkingHoursPerDay < 1 || conf.WorkingHoursPerDay > 24 {
		errStr += "working_hours_per_day must be in range from 1 to 24; "
	}

	if conf.DriftNamePrefix == "" {
		conf.DriftNamePrefix = "Drift"
	}

	if errStr != "" {
		return errors.New(errStr)
	} else {
		return nil
	}
}
