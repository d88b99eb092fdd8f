package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/WinandMe/UmaRacingProject-sub000/internal/race"
)

const (
	DefaultDt       = 0.1
	DefaultSeed     = 1
	DefaultDistance = 2000.0
)

type Config struct {
	Race   RaceSpec         `yaml:"race"`
	Field  []CompetitorSpec `yaml:"field"`
	Dt     float64          `yaml:"dt"`
	Seed   int64            `yaml:"seed"`
	Tuning TuningSpec       `yaml:"tuning"`
}

type RaceSpec struct {
	Distance  float64 `yaml:"distance"`
	Type      string  `yaml:"type"`
	Surface   string  `yaml:"surface"`
	Condition string  `yaml:"condition"`
}

type CompetitorSpec struct {
	Name        string            `yaml:"name"`
	Speed       int               `yaml:"speed"`
	Stamina     int               `yaml:"stamina"`
	Power       int               `yaml:"power"`
	Guts        int               `yaml:"guts"`
	Wit         int               `yaml:"wit"`
	Style       string            `yaml:"style"`
	DistanceApt map[string]string `yaml:"distance_aptitude"`
	SurfaceApt  map[string]string `yaml:"surface_aptitude"`
}

// TuningSpec overrides a subset of the engine's tuning constants.
// Nil fields keep the defaults.
type TuningSpec struct {
	Jitter        *float64 `yaml:"jitter"`
	SpeedFloor    *float64 `yaml:"speed_floor"`
	StaminaFloor  *float64 `yaml:"stamina_floor"`
	IncidentBase  *float64 `yaml:"incident_base"`
	IncidentGate  *float64 `yaml:"incident_gate"`
	DNFBase       *float64 `yaml:"dnf_base"`
	DNFGate       *float64 `yaml:"dnf_gate"`
	DNFCap        *float64 `yaml:"dnf_cap"`
	DuelWindowMin *float64 `yaml:"duel_window_min"`
	DuelWindowMax *float64 `yaml:"duel_window_max"`
}

func DefaultConfig() *Config {
	return &Config{
		Race: RaceSpec{
			Distance:  DefaultDistance,
			Type:      "Medium",
			Surface:   "Turf",
			Condition: "Good",
		},
		Field: []CompetitorSpec{
			{Name: "Haru", Speed: 700, Stamina: 500, Power: 600, Guts: 550, Wit: 500, Style: "FR"},
			{Name: "Kaze", Speed: 640, Stamina: 620, Power: 560, Guts: 600, Wit: 540, Style: "PC"},
			{Name: "Tsuki", Speed: 600, Stamina: 680, Power: 540, Guts: 700, Wit: 480, Style: "LS"},
			{Name: "Yami", Speed: 660, Stamina: 700, Power: 500, Guts: 820, Wit: 520, Style: "EC"},
		},
		Dt:   DefaultDt,
		Seed: DefaultSeed,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Field = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Field) == 0 {
		cfg.Field = DefaultConfig().Field
	}
	if cfg.Dt <= 0 {
		cfg.Dt = DefaultDt
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RaceSetup converts the loaded config into engine inputs. Unknown
// enum strings fall back to safe defaults and come back as warnings
// instead of failing the load.
func (c *Config) RaceSetup() (race.RaceConfig, []race.Profile, []string) {
	var warnings []string

	rt, err := race.ParseRaceType(c.Race.Type)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("race: %v, using Medium", err))
	}
	surf, err := race.ParseSurface(c.Race.Surface)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("race: %v, using Turf", err))
	}
	cond, err := race.ParseTrackCondition(c.Race.Condition)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("race: %v, using Good", err))
	}

	rc := race.RaceConfig{
		Distance:  c.Race.Distance,
		Type:      rt,
		Surface:   surf,
		Condition: cond,
	}

	profiles := make([]race.Profile, len(c.Field))
	for i, spec := range c.Field {
		p := race.Profile{
			Name: spec.Name,
			Stats: race.Stats{
				Speed:   spec.Speed,
				Stamina: spec.Stamina,
				Power:   spec.Power,
				Guts:    spec.Guts,
				Wit:     spec.Wit,
			},
			DistanceApt: [4]race.Grade{race.GradeB, race.GradeB, race.GradeB, race.GradeB},
			SurfaceApt:  [2]race.Grade{race.GradeB, race.GradeB},
		}
		if p.Name == "" {
			p.Name = fmt.Sprintf("competitor-%d", i+1)
		}

		style, err := race.ParseStyle(spec.Style)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v, using PaceChaser", p.Name, err))
		}
		p.Style = style

		for key, val := range spec.DistanceApt {
			drt, err := race.ParseRaceType(key)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("%s: %v in distance aptitudes", p.Name, err))
				continue
			}
			g, err := race.ParseGrade(val)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("%s: %v, using B", p.Name, err))
			}
			p.DistanceApt[drt] = g
		}
		for key, val := range spec.SurfaceApt {
			s, err := race.ParseSurface(key)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("%s: %v in surface aptitudes", p.Name, err))
				continue
			}
			g, err := race.ParseGrade(val)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("%s: %v, using B", p.Name, err))
			}
			p.SurfaceApt[s] = g
		}
		profiles[i] = p
	}
	return rc, profiles, warnings
}

// Params builds the engine tuning, defaults plus any overrides.
func (c *Config) Params() race.Params {
	p := race.DefaultParams()
	t := c.Tuning

	setf := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setf(&p.Jitter, t.Jitter)
	setf(&p.SpeedFloorFrac, t.SpeedFloor)
	setf(&p.StaminaFloor, t.StaminaFloor)
	setf(&p.Incident.BaseChance, t.IncidentBase)
	setf(&p.Incident.Gate, t.IncidentGate)
	setf(&p.DNF.BaseChance, t.DNFBase)
	setf(&p.DNF.Gate, t.DNFGate)
	setf(&p.DNF.Cap, t.DNFCap)
	setf(&p.Duel.WindowMin, t.DuelWindowMin)
	setf(&p.Duel.WindowMax, t.DuelWindowMax)
	return p
}
