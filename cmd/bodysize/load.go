package main

import (
	"math"

	"github.com/philipparndt/bodysize/pkg/analysis"
	"github.com/philipparndt/bodysize/pkg/scene"
	"github.com/rs/zerolog/log"
)

// resolveScale prefers an explicitly set flag, then the first positive value
// of environment and scene file. A negative flag is taken by magnitude.
func resolveScale(flagScale float64, flagSet bool, s *scene.Scene) float64 {
	switch {
	case flagSet:
		return math.Abs(flagScale)
	case cfg != nil && cfg.Scale > 0:
		return cfg.Scale
	case s.Scale > 0:
		return s.Scale
	default:
		return 1
	}
}

// loadReport parses a scene file, builds its world and measures every body
func loadReport(filename string, flagScale float64, flagSet bool) (*analysis.Report, error) {
	s, err := scene.Parse(filename)
	if err != nil {
		return nil, err
	}

	world, err := scene.Build(s)
	if err != nil {
		return nil, err
	}

	scale := resolveScale(flagScale, flagSet, s)
	log.Debug().
		Str("file", filename).
		Int("bodies", len(world.Bodies)).
		Float64("scale", scale).
		Msg("Scene loaded")

	return analysis.AnalyzeWorld(world, scale), nil
}
