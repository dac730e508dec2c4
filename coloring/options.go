package coloring

import "github.com/concussgo/concuss/graphmodel"

// Orientation selects the low-degree-orientation variant (spec.md §6
// "color.low_degree_orientation"). A closed enum, per spec.md §9's
// "Dynamic dispatch -> tagged enums" design note.
type Orientation int

const (
	OrientationLDO Orientation = iota
	OrientationSandpile
)

// Step selects the augmentation variant (spec.md §6 "color.step").
type Step int

const (
	StepTransFrater Step = iota
	StepTruncatedTransFrater
)

// Heuristic selects the coloring heuristic (spec.md §6 "color.coloring").
type Heuristic int

const (
	HeuristicGreedy Heuristic = iota
	HeuristicDSATUR
	HeuristicMaxDeg
)

// Chooser selects the color-chooser policy feeding every Heuristic
// (spec.md §4.3 "next-free-color, least-used-color, most-used-color").
type Chooser int

const (
	ChooserNextFree Chooser = iota
	ChooserLeastUsed
	ChooserMostUsed
)

func (c Chooser) fn() ColorChooser {
	switch c {
	case ChooserLeastUsed:
		return LeastUsedColor
	case ChooserMostUsed:
		return MostUsedColor
	default:
		return NextFreeColor
	}
}

// Options configures BuildPCenteredColoring (spec.md §6 config table).
type Options struct {
	Orientation          Orientation
	VertexWeight         map[int]int // used by OrientationSandpile
	Step                 Step
	MaxTriplesPerVertex  int // used by StepTruncatedTransFrater; 0 means a sane default
	Heuristic            Heuristic
	Chooser              Chooser
	Optimization         *OptimizationInterval // nil disables the refiner
	Preprocess           *PreprocessOptions    // nil disables trimming
}

// PreprocessOptions configures the optional degree-trim preprocessor
// (spec.md §6 "color.preprocess").
type PreprocessOptions struct {
	MinDegree, MaxDegree int
}

func (o Options) heuristicFn() func(*graphmodel.Graph, ColorChooser) *Coloring {
	switch o.Heuristic {
	case HeuristicDSATUR:
		return DSATUR
	case HeuristicMaxDeg:
		return MaxDegreeFirst
	default:
		return Greedy
	}
}
