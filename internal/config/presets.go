package config

import "sort"

var Presets = map[string]*Config{
	"sprint-dash": {
		Race: RaceSpec{Distance: 1200, Type: "Sprint", Surface: "Turf", Condition: "Firm"},
		Field: []CompetitorSpec{
			{Name: "Hayate", Speed: 920, Stamina: 360, Power: 700, Guts: 480, Wit: 520, Style: "FR"},
			{Name: "Raiden", Speed: 880, Stamina: 400, Power: 740, Guts: 520, Wit: 460, Style: "PC"},
			{Name: "Kiri", Speed: 860, Stamina: 420, Power: 680, Guts: 560, Wit: 500, Style: "LS"},
			{Name: "Sora", Speed: 900, Stamina: 380, Power: 660, Guts: 600, Wit: 440, Style: "EC"},
		},
		Dt: 0.1, Seed: 7,
	},
	"mile-classic": {
		Race: RaceSpec{Distance: 1600, Type: "Mile", Surface: "Turf", Condition: "Good"},
		Field: []CompetitorSpec{
			{Name: "Aoi", Speed: 780, Stamina: 560, Power: 640, Guts: 540, Wit: 580, Style: "FR"},
			{Name: "Botan", Speed: 740, Stamina: 620, Power: 600, Guts: 580, Wit: 540, Style: "PC"},
			{Name: "Chiyo", Speed: 720, Stamina: 640, Power: 580, Guts: 640, Wit: 520, Style: "PC"},
			{Name: "Den", Speed: 760, Stamina: 580, Power: 560, Guts: 700, Wit: 480, Style: "LS"},
			{Name: "Emi", Speed: 700, Stamina: 660, Power: 540, Guts: 760, Wit: 500, Style: "EC"},
		},
		Dt: 0.1, Seed: 11,
	},
	"long-haul": {
		Race: RaceSpec{Distance: 3000, Type: "Long", Surface: "Turf", Condition: "Soft"},
		Field: []CompetitorSpec{
			{Name: "Fubuki", Speed: 620, Stamina: 880, Power: 520, Guts: 700, Wit: 540, Style: "PC",
				DistanceApt: map[string]string{"Long": "S"}},
			{Name: "Gen", Speed: 660, Stamina: 800, Power: 560, Guts: 640, Wit: 580, Style: "FR",
				DistanceApt: map[string]string{"Long": "A"}},
			{Name: "Hana", Speed: 600, Stamina: 840, Power: 500, Guts: 820, Wit: 500, Style: "EC",
				DistanceApt: map[string]string{"Long": "A"}},
			{Name: "Isamu", Speed: 680, Stamina: 720, Power: 580, Guts: 600, Wit: 520, Style: "LS",
				DistanceApt: map[string]string{"Long": "B"}},
		},
		Dt: 0.1, Seed: 23,
	},
	"dirt-scramble": {
		Race: RaceSpec{Distance: 1800, Type: "Medium", Surface: "Dirt", Condition: "Heavy"},
		Field: []CompetitorSpec{
			{Name: "Jin", Speed: 700, Stamina: 620, Power: 720, Guts: 560, Wit: 460, Style: "FR",
				SurfaceApt: map[string]string{"Dirt": "A"}},
			{Name: "Koyuki", Speed: 680, Stamina: 660, Power: 680, Guts: 620, Wit: 500, Style: "PC",
				SurfaceApt: map[string]string{"Dirt": "S"}},
			{Name: "Luna", Speed: 720, Stamina: 580, Power: 640, Guts: 680, Wit: 480, Style: "LS",
				SurfaceApt: map[string]string{"Dirt": "B"}},
			{Name: "Mikoto", Speed: 660, Stamina: 700, Power: 600, Guts: 740, Wit: 520, Style: "EC",
				SurfaceApt: map[string]string{"Dirt": "C"}},
		},
		Dt: 0.1, Seed: 31,
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
