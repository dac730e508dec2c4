package coloring

import "sort"

// Coloring is a partial map vertex -> color id plus the set of colors
// actually used (spec.md §3 "Coloring"). It is built incrementally during
// the coloring stage and treated as immutable once BuildPCenteredColoring
// returns.
type Coloring struct {
	color map[int]int
}

// New returns an empty Coloring.
func New() *Coloring {
	return &Coloring{color: make(map[int]int)}
}

// Set assigns color c to vertex v.
func (c *Coloring) Set(v, color int) {
	c.color[v] = color
}

// Unset removes v from the coloring.
func (c *Coloring) Unset(v int) {
	delete(c.color, v)
}

// Get returns the color of v and whether v is colored.
func (c *Coloring) Get(v int) (int, bool) {
	col, ok := c.color[v]
	return col, ok
}

// Len returns the number of colored vertices.
func (c *Coloring) Len() int { return len(c.color) }

// Vertices returns every colored vertex in ascending order.
func (c *Coloring) Vertices() []int {
	out := make([]int, 0, len(c.color))
	for v := range c.color {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Colors returns the distinct color ids in use, ascending.
func (c *Coloring) Colors() []int {
	seen := make(map[int]bool)
	out := make([]int, 0)
	for _, col := range c.color {
		if !seen[col] {
			seen[col] = true
			out = append(out, col)
		}
	}
	sort.Ints(out)
	return out
}

// NumColors returns the number of distinct colors in use.
func (c *Coloring) NumColors() int { return len(c.Colors()) }

// Frequency returns, for every used color, the number of vertices carrying it.
func (c *Coloring) Frequency() map[int]int {
	freq := make(map[int]int)
	for _, col := range c.color {
		freq[col]++
	}
	return freq
}

// VerticesOfColorSet returns every vertex whose color is in set, ascending.
func (c *Coloring) VerticesOfColorSet(set map[int]bool) []int {
	out := make([]int, 0)
	for v, col := range c.color {
		if set[col] {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// Clone returns an independent deep copy.
func (c *Coloring) Clone() *Coloring {
	out := New()
	for v, col := range c.color {
		out.color[v] = col
	}
	return out
}

// Equal reports whether c and other assign identical colors to identical vertex sets.
func (c *Coloring) Equal(other *Coloring) bool {
	if len(c.color) != len(other.color) {
		return false
	}
	for v, col := range c.color {
		if oc, ok := other.color[v]; !ok || oc != col {
			return false
		}
	}
	return true
}

// Normalize relabels colors by descending frequency (most-frequent color
// becomes 0), ties broken by ascending original color id for determinism
// (spec.md §3 "a normalisation that relabels colors by descending
// frequency").
func (c *Coloring) Normalize() *Coloring {
	freq := c.Frequency()
	colors := c.Colors()
	sort.SliceStable(colors, func(i, j int) bool {
		if freq[colors[i]] != freq[colors[j]] {
			return freq[colors[i]] > freq[colors[j]]
		}
		return colors[i] < colors[j]
	})
	relabel := make(map[int]int, len(colors))
	for newID, old := range colors {
		relabel[old] = newID
	}
	out := New()
	for v, col := range c.color {
		out.color[v] = relabel[col]
	}
	return out
}
