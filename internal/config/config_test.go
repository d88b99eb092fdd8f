package config

import (
	"path/filepath"
	"testing"

	"github.com/WinandMe/UmaRacingProject-sub000/internal/race"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Race.Distance <= 0 {
		t.Error("distance should be positive")
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if len(cfg.Field) == 0 {
		t.Error("default field should not be empty")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Race.Distance = 1800
	cfg.Race.Type = "Mile"
	cfg.Seed = 321
	jitter := 0.01
	cfg.Tuning.Jitter = &jitter

	path := filepath.Join(t.TempDir(), "race.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Race.Distance != 1800 || loaded.Race.Type != "Mile" || loaded.Seed != 321 {
		t.Errorf("roundtrip lost race fields: %+v", loaded.Race)
	}
	if len(loaded.Field) != len(cfg.Field) {
		t.Errorf("roundtrip lost field: %d vs %d", len(loaded.Field), len(cfg.Field))
	}
	if loaded.Tuning.Jitter == nil || *loaded.Tuning.Jitter != 0.01 {
		t.Error("roundtrip lost tuning override")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRaceSetup(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Field[0].DistanceApt = map[string]string{"Medium": "S"}
	cfg.Field[0].SurfaceApt = map[string]string{"Dirt": "C"}

	rc, profiles, warnings := cfg.RaceSetup()
	if len(warnings) != 0 {
		t.Errorf("clean config produced warnings: %v", warnings)
	}
	if rc.Type != race.Medium || rc.Surface != race.Turf {
		t.Errorf("race conversion wrong: %+v", rc)
	}
	if len(profiles) != len(cfg.Field) {
		t.Fatalf("profile count %d != field size %d", len(profiles), len(cfg.Field))
	}
	if profiles[0].Style != race.FrontRunner {
		t.Errorf("style FR parsed as %v", profiles[0].Style)
	}
	if profiles[0].DistanceApt[race.Medium] != race.GradeS {
		t.Errorf("distance aptitude not applied: %v", profiles[0].DistanceApt)
	}
	if profiles[0].SurfaceApt[race.Dirt] != race.GradeC {
		t.Errorf("surface aptitude not applied: %v", profiles[0].SurfaceApt)
	}
	if profiles[1].DistanceApt[race.Long] != race.GradeB {
		t.Error("unspecified aptitudes should default to B")
	}
}

func TestRaceSetupDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Race.Type = "Marathon"
	cfg.Race.Condition = "Muddy"
	cfg.Field[0].Style = "Sideways"
	cfg.Field[1].Name = ""

	rc, profiles, warnings := cfg.RaceSetup()
	if len(warnings) < 3 {
		t.Errorf("expected warnings for unknown enums, got %v", warnings)
	}
	if rc.Type != race.Medium {
		t.Errorf("unknown race type should default to Medium, got %v", rc.Type)
	}
	if rc.Condition != race.Good {
		t.Errorf("unknown condition should default to Good, got %v", rc.Condition)
	}
	if profiles[0].Style != race.PaceChaser {
		t.Errorf("unknown style should default to PaceChaser, got %v", profiles[0].Style)
	}
	if profiles[1].Name == "" {
		t.Error("blank name should be filled in")
	}
}

func TestParamsOverrides(t *testing.T) {
	cfg := DefaultConfig()
	jitter := 0.0
	gate := 1.0
	cfg.Tuning.Jitter = &jitter
	cfg.Tuning.DNFGate = &gate

	p := cfg.Params()
	if p.Jitter != 0.0 {
		t.Errorf("jitter override not applied: %v", p.Jitter)
	}
	if p.DNF.Gate != 1.0 {
		t.Errorf("dnf gate override not applied: %v", p.DNF.Gate)
	}
	if p.Incident.Gate != race.DefaultParams().Incident.Gate {
		t.Error("untouched fields should keep defaults")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("long-haul")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Race.Type != "Long" {
		t.Errorf("expected Long race, got %s", cfg.Race.Type)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Error("preset names should be sorted")
		}
	}
}
