package pattern

import (
	"fmt"
	"regexp"
	"strconv"
)

// Builder constructs a pattern graph, in the style of lvlath/builder's
// Constructor: a closure applying a deterministic graph mutation, returning
// only sentinel errors (spec.md §5.6 "named pattern builders... grounded
// one-to-one on the teacher's builder package constructors").
type Builder func(h *Graph) error

// Build runs a Builder against a fresh pattern graph and returns it.
func Build(b Builder) (*Graph, error) {
	h := New()
	if err := b(h); err != nil {
		return nil, fmt.Errorf("pattern.Build: %w", err)
	}
	return h, nil
}

// Clique returns a Builder for the complete graph K_n (n >= 1).
func Clique(n int) Builder {
	return func(h *Graph) error {
		if n < 1 {
			return fmt.Errorf("pattern.Clique: n=%d: %w", n, ErrInvalidPatternSize)
		}
		for i := 0; i < n; i++ {
			if err := h.AddVertex(i); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := h.AddEdge(i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Path returns a Builder for the path P_n (n >= 2).
func Path(n int) Builder {
	return func(h *Graph) error {
		if n < 2 {
			return fmt.Errorf("pattern.Path: n=%d: %w", n, ErrInvalidPatternSize)
		}
		for i := 0; i < n-1; i++ {
			if err := h.AddEdge(i, i+1); err != nil {
				return err
			}
		}
		return nil
	}
}

// Star returns a Builder for the star with center 0 and n-1 leaves (n >= 2).
func Star(n int) Builder {
	return func(h *Graph) error {
		if n < 2 {
			return fmt.Errorf("pattern.Star: n=%d: %w", n, ErrInvalidPatternSize)
		}
		for i := 1; i < n; i++ {
			if err := h.AddEdge(0, i); err != nil {
				return err
			}
		}
		return nil
	}
}

// Wheel returns a Builder for the wheel W_n = C_{n-1} + center 0 (n >= 4).
func Wheel(n int) Builder {
	return func(h *Graph) error {
		if n < 4 {
			return fmt.Errorf("pattern.Wheel: n=%d: %w", n, ErrInvalidPatternSize)
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := h.AddEdge(1+i, 1+(i+1)%rim); err != nil {
				return err
			}
			if err := h.AddEdge(0, 1+i); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle returns a Builder for the cycle C_n (n >= 3).
func Cycle(n int) Builder {
	return func(h *Graph) error {
		if n < 3 {
			return fmt.Errorf("pattern.Cycle: n=%d: %w", n, ErrInvalidPatternSize)
		}
		for i := 0; i < n; i++ {
			if err := h.AddEdge(i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}

// Biclique returns a Builder for the complete bipartite graph K_{m,n}
// (m, n >= 1). The left part is vertices 0..m-1, the right part m..m+n-1 —
// the one family lvlath/builder's impl_bipartite.go names but does not
// expose in the small-pattern shape this package needs, adapted here.
func Biclique(m, n int) Builder {
	return func(h *Graph) error {
		if m < 1 || n < 1 {
			return fmt.Errorf("pattern.Biclique: m=%d,n=%d: %w", m, n, ErrInvalidPatternSize)
		}
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				if err := h.AddEdge(i, m+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

var patternNamePattern = regexp.MustCompile(`^([a-z]+)\{([0-9]+)(?:,([0-9]+))?\}$`)

// ParseName parses the pattern-name mini-language named in spec.md §1's
// external interface: "clique{n}", "path{n}", "star{n}", "wheel{n}",
// "cycle{n}", "biclique{m},{n}" (also accepted as "biclique{m,n}").
func ParseName(s string) (Builder, error) {
	m := patternNamePattern.FindStringSubmatch(s)
	if m == nil {
		if b, n, ok := parseBicliqueTwoBraces(s); ok {
			return Biclique(b, n), nil
		}
		return nil, fmt.Errorf("pattern.ParseName: %q: %w", s, ErrUnknownPatternName)
	}
	name, a := m[1], m[2]
	n, err := strconv.Atoi(a)
	if err != nil {
		return nil, fmt.Errorf("pattern.ParseName: %q: %w", s, ErrInvalidPatternSize)
	}

	switch name {
	case "clique":
		return Clique(n), nil
	case "path":
		return Path(n), nil
	case "star":
		return Star(n), nil
	case "wheel":
		return Wheel(n), nil
	case "cycle":
		return Cycle(n), nil
	case "biclique":
		if m[3] == "" {
			return nil, fmt.Errorf("pattern.ParseName: %q: missing second biclique size: %w", s, ErrInvalidPatternSize)
		}
		n2, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, fmt.Errorf("pattern.ParseName: %q: %w", s, ErrInvalidPatternSize)
		}
		return Biclique(n, n2), nil
	default:
		return nil, fmt.Errorf("pattern.ParseName: %q: %w", s, ErrUnknownPatternName)
	}
}

var bicliqueTwoBraces = regexp.MustCompile(`^biclique\{([0-9]+)\},\{([0-9]+)\}$`)

func parseBicliqueTwoBraces(s string) (int, int, bool) {
	m := bicliqueTwoBraces.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	a, err1 := strconv.Atoi(m[1])
	b, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return a, b, true
}
