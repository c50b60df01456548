package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// Tuning is the game balance file. Intervals are in ticks.
type Tuning struct {
	TickDuration      string             `yaml:"tick_duration"`
	Cooldowns         map[string]int     `yaml:"cooldowns"`
	Intervals         Intervals          `yaml:"intervals"`
	InventoryCapacity int                `yaml:"inventory_capacity"`
	StartingCash      int                `yaml:"starting_cash"`
	StartLocation     domain.LocationKey `yaml:"start_location"`
	Contraband        Contraband         `yaml:"contraband"`
	Persistence       PersistencePool    `yaml:"persistence"`
}

// Intervals schedules the periodic clock jobs, in ticks. Zero disables a job.
type Intervals struct {
	Resupply  int `yaml:"resupply"`
	Reshuffle int `yaml:"reshuffle"`
	Autosave  int `yaml:"autosave"`
}

// Contraband flags item subtypes that pay an experience bonus when sold
type Contraband struct {
	Subtypes []string `yaml:"subtypes"`
	ExpBonus int      `yaml:"exp_bonus"`
}

// PersistencePool sizes the persistence worker pool
type PersistencePool struct {
	Workers   int `yaml:"workers"`
	QueueSize int `yaml:"queue_size"`
}

// DefaultTuning is used for any field the file leaves out
func DefaultTuning() Tuning {
	return Tuning{
		TickDuration: "1s",
		Cooldowns: map[string]int{
			domain.ActionChat:   2,
			domain.ActionGlobal: 10,
			domain.ActionTake:   1,
		},
		Intervals:         Intervals{Resupply: 600, Reshuffle: 1800, Autosave: 120},
		InventoryCapacity: 20,
		StartingCash:      50,
		StartLocation:     domain.LocationKey{MapID: "town"},
		Contraband:        Contraband{Subtypes: []string{"contraband"}, ExpBonus: 5},
		Persistence:       PersistencePool{Workers: 1, QueueSize: 256},
	}
}

// LoadTuning reads the YAML file at path over DefaultTuning
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf(ErrMsgReadTuning, path, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf(ErrMsgParseTuning, path, err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Validate rejects values the game loop cannot run with
func (t Tuning) Validate() error {
	var problems []string
	if d, err := time.ParseDuration(t.TickDuration); err != nil || d <= 0 {
		problems = append(problems, "tick_duration must be a positive duration")
	}
	for action, ticks := range t.Cooldowns {
		if ticks < 0 {
			problems = append(problems, fmt.Sprintf("cooldown %s is negative", action))
		}
	}
	if t.Intervals.Resupply < 0 || t.Intervals.Reshuffle < 0 || t.Intervals.Autosave < 0 {
		problems = append(problems, "intervals must not be negative")
	}
	if t.InventoryCapacity <= 0 {
		problems = append(problems, "inventory_capacity must be positive")
	}
	if t.StartLocation.MapID == "" {
		problems = append(problems, "start_location.map_id is required")
	}
	if t.Persistence.Workers <= 0 || t.Persistence.QueueSize <= 0 {
		problems = append(problems, "persistence workers and queue_size must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf(ErrMsgInvalidTuning, strings.Join(problems, "; "))
	}
	return nil
}

// Tick returns the parsed tick duration
func (t Tuning) Tick() time.Duration {
	d, err := time.ParseDuration(t.TickDuration)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}
