package config

import "sort"

// Presets bundle generator and simulation settings. The pattern mode is
// always chosen on the command line.
var Presets = map[string]*Config{
	"classic": {
		Generator:  GeneratorConfig{Profile: "a"},
		Simulation: SimulationConfig{Steps: 10, Seed: 1},
	},
	"steep": {
		Generator:  GeneratorConfig{Profile: "a", BiasNumerator: 1, BiasDenominator: 2},
		Simulation: SimulationConfig{Steps: 10, Seed: 1},
	},
	"shallow": {
		Generator:  GeneratorConfig{Profile: "a", BiasNumerator: 9, BiasDenominator: 10},
		Simulation: SimulationConfig{Steps: 20, Seed: 1},
	},
	"directed": {
		Generator:  GeneratorConfig{Profile: "a", Eta: 3},
		Simulation: SimulationConfig{Steps: 20, Seed: 1},
	},
	"variant": {
		Generator:  GeneratorConfig{Profile: "b"},
		Simulation: SimulationConfig{Steps: 10, Seed: 1},
	},
	"variant-long": {
		Generator:  GeneratorConfig{Profile: "b", Power: 10},
		Simulation: SimulationConfig{Steps: 30, Seed: 1},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
