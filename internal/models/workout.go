package models

import (
	"fmt"
	"strings"
	"time"
)

type WorkoutTemplate struct {
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Exercises []Exercise `json:"exercises" yaml:"exercises"`
}

type Exercise struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	TargetSets int    `json:"target_sets" yaml:"target_sets"`
	TargetReps int    `json:"target_reps" yaml:"target_reps"`
}

// TrendPoint is one logged session for an exercise. Series are append-only.
type TrendPoint struct {
	Exercise         string    `json:"exercise" yaml:"exercise"`
	Day              time.Time `json:"day" yaml:"day"`
	TopSetWeight     float64   `json:"top_set_weight" yaml:"top_set_weight"`
	TotalVolume      float64   `json:"total_volume" yaml:"total_volume"`
	IsPersonalRecord bool      `json:"is_personal_record" yaml:"is_personal_record"`
}

type CardioMachine string

const (
	MachineTreadmill   CardioMachine = "treadmill"
	MachineStairmaster CardioMachine = "stairmaster"
	MachineBike        CardioMachine = "bike"
	MachineOther       CardioMachine = "other"
)

// CardioMachines lists every machine in display order.
var CardioMachines = []CardioMachine{MachineTreadmill, MachineStairmaster, MachineBike, MachineOther}

func (m CardioMachine) Valid() bool {
	switch m {
	case MachineTreadmill, MachineStairmaster, MachineBike, MachineOther:
		return true
	}
	return false
}

// Label returns the display name, e.g. "Treadmill".
func (m CardioMachine) Label() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}

// ParseCardioMachine parses a machine name, case-insensitively.
func ParseCardioMachine(s string) (CardioMachine, error) {
	m := CardioMachine(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("invalid machine %q (expected treadmill|stairmaster|bike|other)", s)
	}
	return m, nil
}

type CardioLog struct {
	ID              string        `json:"id" yaml:"id"`
	Date            time.Time     `json:"date" yaml:"date"`
	Machine         CardioMachine `json:"machine" yaml:"machine"`
	DurationMinutes int           `json:"duration_minutes" yaml:"duration_minutes"`
	Speed           float64       `json:"speed" yaml:"speed"`
	Incline         float64       `json:"incline" yaml:"incline"`
	Level           int           `json:"level" yaml:"level"`
}
