// Package noise synthesizes white and pink noise one sample at a time.
//
// Pink noise uses Paul Kellet's refined filter from
// http://www.firstpr.com.au/dsp/pink-noise/#Filtering : seven one-pole
// low-pass stages summed together, normalized by an empirical 37.
package noise

import (
	"strings"

	"github.com/pkg/errors"
)

type Mode int

const (
	Pink Mode = iota
	White
)

func (m Mode) String() string {
	switch m {
	case Pink:
		return "pink"
	case White:
		return "white"
	}
	return "unknown"
}

// Parses "pink" or "white"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pink":
		return Pink, nil
	case "white":
		return White, nil
	}
	return 0, errors.Wrapf(ErrInvalidMode, "%q", s)
}

// Output level normalization for the pink filter
const pinkScale = 37.0

// Accumulated output of each stage of the pink filter
type FilterState struct {
	B0, B1, B2, B3, B4, B5, B6 float32
}

// Seeds a FilterState with seven independent draws from src
func NewFilterState(src Source) FilterState {
	return FilterState{
		B0: src.Float32(),
		B1: src.Float32(),
		B2: src.Float32(),
		B3: src.Float32(),
		B4: src.Float32(),
		B5: src.Float32(),
		B6: src.Float32(),
	}
}

// Generator produces one sample per call to Next. It is not safe for
// concurrent use: a single goroutine (the audio callback) owns it once
// streaming starts.
type Generator struct {
	mode     Mode
	centered bool
	src      Source
	state    FilterState
}

// Returns a Generator whose filter state is seeded from src
func New(cfg Config, src Source) *Generator {
	return NewWithState(cfg, src, NewFilterState(src))
}

// Returns a Generator starting from the given filter state
func NewWithState(cfg Config, src Source, state FilterState) *Generator {
	return &Generator{
		mode:     cfg.Mode,
		centered: cfg.Centered,
		src:      src,
		state:    state,
	}
}

func (g *Generator) Mode() Mode { return g.mode }

// Returns a copy of the current filter state
func (g *Generator) State() FilterState { return g.state }

// Next draws one white value and returns the next sample for the
// generator's mode. Pink mode advances the filter state exactly once.
func (g *Generator) Next() float32 {
	white := g.src.Float32()
	if g.centered {
		white = 2*white - 1
	}
	if g.mode == White {
		return white
	}
	s := &g.state
	s.B0 = 0.99886*s.B0 + white*0.0555179
	s.B1 = 0.99332*s.B1 + white*0.0750759
	s.B2 = 0.96900*s.B2 + white*0.1538520
	s.B3 = 0.86650*s.B3 + white*0.3104856
	s.B4 = 0.55000*s.B4 + white*0.5329522
	s.B5 = -0.7616*s.B5 - white*0.0168980
	pink := s.B0 + s.B1 + s.B2 + s.B3 + s.B4 + s.B5 + s.B6 + white*0.5362
	s.B6 = white * 0.115926
	return pink / pinkScale
}
