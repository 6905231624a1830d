package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/boltgrid/internal/generate"
)

const (
	DefaultProfile = "a"
	DefaultSteps   = 10
	DefaultSeed    = 1
)

type Config struct {
	Generator  GeneratorConfig  `yaml:"generator"`
	Simulation SimulationConfig `yaml:"simulation"`
}

type GeneratorConfig struct {
	Profile         string `yaml:"profile"`
	BiasNumerator   int    `yaml:"bias_numerator,omitempty"`
	BiasDenominator int    `yaml:"bias_denominator,omitempty"`
	Power           int    `yaml:"power,omitempty"`
	Eta             int    `yaml:"eta,omitempty"`
	// Seed of zero means a time based seed.
	Seed int64 `yaml:"seed,omitempty"`
}

type SimulationConfig struct {
	Steps int   `yaml:"steps"`
	Seed  int64 `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Profile: DefaultProfile,
		},
		Simulation: SimulationConfig{
			Steps: DefaultSteps,
			Seed:  DefaultSeed,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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

// GenerateConfig converts the file form into the generator's configuration
// for the given pattern mode.
func (g GeneratorConfig) GenerateConfig(mode int) (generate.Config, error) {
	profile, err := generate.ParseProfile(g.Profile)
	if err != nil {
		return generate.Config{}, err
	}
	return generate.Config{
		Mode:            mode,
		Profile:         profile,
		BiasNumerator:   g.BiasNumerator,
		BiasDenominator: g.BiasDenominator,
		Power:           g.Power,
		Eta:             g.Eta,
	}, nil
}
