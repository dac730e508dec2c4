package config

import (
	"fmt"
	"math/rand"

	"gopkg.in/ini.v1"

	"github.com/concussgo/concuss/coloring"
	"github.com/concussgo/concuss/combine"
	"github.com/concussgo/concuss/decompose"
)

// Config is the parsed run configuration, one field group per INI section
// named in spec.md §6.
type Config struct {
	Color      coloring.Options
	Sweep      decompose.Sweep
	Combine    combine.Kind
	BVKPattern bool // compute.k_pattern == "BVKPattern"
	Memoised   bool // compute.k_pattern memoised variant suffix
	Forward    bool // compute.table_forward
	Reuse      bool // compute.table_reuse
}

// Default returns the conservative baseline a CLI run falls back to when
// no config file is supplied: plain low-degree orientation, the full
// transitive-fraternal step, greedy coloring with next-free-color choice,
// InclusionExclusion combined over a CombinationsSweep.
func Default() *Config {
	return &Config{
		Color:   coloring.Options{},
		Sweep:   decompose.CombinationsSweep{},
		Combine: combine.KindInclusionExclusion,
	}
}

// Load reads an INI file at path and maps its color/compute/combine/
// decompose sections onto a Config, per spec.md §6's option table.
func Load(path string) (*Config, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return fromFile(f)
}

func fromFile(f *ini.File) (*Config, error) {
	cfg := Default()

	color := f.Section("color")
	if err := applyColorSection(color, &cfg.Color); err != nil {
		return nil, err
	}

	compute := f.Section("compute")
	switch v := compute.Key("k_pattern").MustString("KPattern"); v {
	case "KPattern":
		cfg.BVKPattern, cfg.Memoised = false, false
	case "BVKPattern":
		cfg.BVKPattern, cfg.Memoised = true, false
	case "MemoisedKPattern":
		cfg.BVKPattern, cfg.Memoised = false, true
	case "MemoisedBVKPattern":
		cfg.BVKPattern, cfg.Memoised = true, true
	default:
		return nil, fmt.Errorf("config.Load: compute.k_pattern=%q: %w", v, ErrInvalidConfig)
	}
	cfg.Forward = compute.Key("table_forward").MustBool(false)
	cfg.Reuse = compute.Key("table_reuse").MustBool(false)

	combineSec := f.Section("combine")
	switch v := combine.Kind(combineSec.Key("count").MustString(string(combine.KindInclusionExclusion))); v {
	case combine.KindInclusionExclusion, combine.KindColorCount, combine.KindHybridCount,
		combine.KindBVColorCount, combine.KindBVHybridCount:
		cfg.Combine = v
	default:
		return nil, fmt.Errorf("config.Load: combine.count=%q: %w", v, ErrInvalidConfig)
	}

	decomposeSec := f.Section("decompose")
	switch v := decomposeSec.Key("sweep").MustString("CombinationsSweep"); v {
	case "CombinationsSweep":
		cfg.Sweep = decompose.CombinationsSweep{}
	case "DFSSweep":
		cfg.Sweep = decompose.DFSSweep{}
	default:
		return nil, fmt.Errorf("config.Load: decompose.sweep=%q: %w", v, ErrInvalidConfig)
	}

	return cfg, nil
}

func applyColorSection(s *ini.Section, opts *coloring.Options) error {
	switch v := s.Key("low_degree_orientation").MustString("low_degree_orientation"); v {
	case "low_degree_orientation":
		opts.Orientation = coloring.OrientationLDO
	case "sandpile_orientation":
		opts.Orientation = coloring.OrientationSandpile
	default:
		return fmt.Errorf("config: color.low_degree_orientation=%q: %w", v, ErrInvalidConfig)
	}

	switch v := s.Key("step").MustString("trans_frater_augmentation"); v {
	case "trans_frater_augmentation":
		opts.Step = coloring.StepTransFrater
	case "truncated_tf_augmentation":
		opts.Step = coloring.StepTruncatedTransFrater
		opts.MaxTriplesPerVertex = s.Key("max_triples_per_vertex").MustInt(0)
	default:
		return fmt.Errorf("config: color.step=%q: %w", v, ErrInvalidConfig)
	}

	switch v := s.Key("coloring").MustString("greedy_coloring"); v {
	case "greedy_coloring":
		opts.Heuristic = coloring.HeuristicGreedy
	case "dsatur":
		opts.Heuristic = coloring.HeuristicDSATUR
	case "max_deg":
		opts.Heuristic = coloring.HeuristicMaxDeg
	default:
		return fmt.Errorf("config: color.coloring=%q: %w", v, ErrInvalidConfig)
	}

	switch v := s.Key("chooser").MustString("next_free"); v {
	case "next_free":
		opts.Chooser = coloring.ChooserNextFree
	case "least_used":
		opts.Chooser = coloring.ChooserLeastUsed
	case "most_used":
		opts.Chooser = coloring.ChooserMostUsed
	default:
		return fmt.Errorf("config: color.chooser=%q: %w", v, ErrInvalidConfig)
	}

	if s.Key("optimization").MustBool(false) {
		window := s.Key("optimization_window").MustInt(10)
		opts.Optimization = &coloring.OptimizationInterval{
			Rand:         rand.New(rand.NewSource(1)),
			WindowLength: window,
		}
	}

	if s.Key("preprocess").MustBool(false) {
		opts.Preprocess = &coloring.PreprocessOptions{
			MinDegree: s.Key("preprocess_min_degree").MustInt(0),
			MaxDegree: s.Key("preprocess_max_degree").MustInt(0),
		}
	}

	return nil
}
