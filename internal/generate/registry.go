package generate

import (
	"fmt"
	"sort"
)

// Registry maps (profile, mode) to a pattern. Each profile also has a
// fallback used for any mode it does not list.
type Registry struct {
	patterns  map[Profile]map[int]Pattern
	fallbacks map[Profile]Pattern
}

func NewRegistry() *Registry {
	r := &Registry{
		patterns:  make(map[Profile]map[int]Pattern),
		fallbacks: make(map[Profile]Pattern),
	}

	r.Register(ProfileA, 1, straightLine)
	r.Register(ProfileA, 2, columnProfile)
	r.Register(ProfileA, 3, bottomComb)
	r.fallbacks[ProfileA] = bottomComb

	r.Register(ProfileB, 1, closedLoop)
	r.Register(ProfileB, 2, columnProfile)
	r.Register(ProfileB, 3, branches)
	r.fallbacks[ProfileB] = branches

	return r
}

func (r *Registry) Register(p Profile, mode int, fn Pattern) {
	if r.patterns[p] == nil {
		r.patterns[p] = make(map[int]Pattern)
	}
	r.patterns[p][mode] = fn
}

func (r *Registry) Get(p Profile, mode int) (Pattern, error) {
	modes, ok := r.patterns[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, p)
	}
	if fn, ok := modes[mode]; ok {
		return fn, nil
	}
	if fn, ok := r.fallbacks[p]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("generate: no pattern for profile %s mode %d", p, mode)
}

func (r *Registry) Modes(p Profile) []int {
	modes := make([]int, 0, len(r.patterns[p]))
	for m := range r.patterns[p] {
		modes = append(modes, m)
	}
	sort.Ints(modes)
	return modes
}
