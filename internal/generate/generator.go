// Package generate builds grid descriptions from the fixed procedural
// patterns: straight line, per-column profile, bottom comb, closed loop
// and multi-branch grounds.
package generate

import (
	"math/rand"

	"github.com/san-kum/boltgrid/internal/gridfile"
)

type Generator struct {
	cfg      Config
	rng      *rand.Rand
	registry *Registry
}

// New validates cfg. rng supplies every random row; pass a seeded source
// for reproducible output.
func New(cfg Config, rng *rand.Rand) (*Generator, error) {
	if cfg.Profile == "" {
		cfg.Profile = ProfileA
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Generator{
		cfg:      cfg,
		rng:      rng,
		registry: NewRegistry(),
	}, nil
}

func (g *Generator) Config() Config { return g.cfg }

func (g *Generator) Generate(width int) (*gridfile.Description, error) {
	if width < 1 {
		return nil, ErrInvalidWidth
	}
	fn, err := g.registry.Get(g.cfg.Profile, g.cfg.Mode)
	if err != nil {
		return nil, err
	}
	return fn(width, g.cfg, g.rng)
}

// WriteFile generates a description for width and saves it to path.
func (g *Generator) WriteFile(path string, width int) (*gridfile.Description, error) {
	d, err := g.Generate(width)
	if err != nil {
		return nil, err
	}
	if err := gridfile.SaveDescription(path, d); err != nil {
		return nil, err
	}
	return d, nil
}
