package decompose

import "sort"

// TDD is a rooted treedepth decomposition of one connected component: every
// vertex has a parent (or none, for the root) and a depth, and every
// ancestor-descendant pair in the forest is adjacent or connected through
// shared ancestors in the host graph (spec.md §4.6).
type TDD struct {
	Root     int
	Parent   map[int]int   // vertex -> parent; root maps to -1
	Children map[int][]int // vertex -> children, ascending
	Depth    map[int]int   // vertex -> depth, root is 0
	Vertices []int         // component members, ascending
}

// MaxDepth returns the greatest depth assigned to any vertex.
func (t *TDD) MaxDepth() int {
	max := 0
	for _, d := range t.Depth {
		if d > max {
			max = d
		}
	}
	return max
}

// neighborFn abstracts the host graph's adjacency so BuildTDD does not need
// to import graphmodel directly for its recursive helper.
type neighborFn func(v int) []int

// BuildTDD constructs a TDD for component, a connected vertex set, using
// colorOf to find the center at each level: the unique vertex in the
// (sub)component whose color appears exactly once there (spec.md §4.6 "Build
// the TDD: pick the vertex whose color is unique in the component as root").
//
// When component carries exactly two colors, removing the unique-colored
// center leaves a single remaining color, which is an independent set (the
// coloring is proper) — so every other vertex becomes a direct depth+1 leaf
// of the center without a further connectivity scan (spec.md §4.6's
// documented fast path).
func BuildTDD(component []int, colorOf map[int]int, neighbors neighborFn) (*TDD, error) {
	t := &TDD{
		Parent:   make(map[int]int),
		Children: make(map[int][]int),
		Depth:    make(map[int]int),
		Vertices: append([]int(nil), component...),
	}
	sort.Ints(t.Vertices)

	root, err := buildLevel(component, colorOf, neighbors, 0, -1, t)
	if err != nil {
		return nil, err
	}
	t.Root = root
	return t, nil
}

func buildLevel(component []int, colorOf map[int]int, neighbors neighborFn, depth, parent int, t *TDD) (int, error) {
	if len(component) == 0 {
		return -1, nil
	}

	sorted := append([]int(nil), component...)
	sort.Ints(sorted)

	freq := make(map[int]int, len(sorted))
	for _, v := range sorted {
		freq[colorOf[v]]++
	}

	center := -1
	for _, v := range sorted {
		if freq[colorOf[v]] == 1 {
			center = v
			break
		}
	}
	if center == -1 {
		return -1, ErrNoCenter
	}

	t.Parent[center] = parent
	t.Depth[center] = depth
	if parent != -1 {
		t.Children[parent] = append(t.Children[parent], center)
		sort.Ints(t.Children[parent])
	}
	if _, ok := t.Children[center]; !ok {
		t.Children[center] = nil
	}

	remaining := make([]int, 0, len(sorted)-1)
	remainingColors := make(map[int]bool)
	for _, v := range sorted {
		if v == center {
			continue
		}
		remaining = append(remaining, v)
		remainingColors[colorOf[v]] = true
	}
	if len(remaining) == 0 {
		return center, nil
	}

	if len(remainingColors) == 1 {
		// fast path: the remaining vertices share one color, hence form an
		// independent set and attach directly as depth+1 leaves.
		for _, v := range remaining {
			if _, err := buildLevel([]int{v}, colorOf, neighbors, depth+1, center, t); err != nil {
				return -1, err
			}
		}
		return center, nil
	}

	for _, sub := range connectedSubcomponents(remaining, neighbors) {
		if _, err := buildLevel(sub, colorOf, neighbors, depth+1, center, t); err != nil {
			return -1, err
		}
	}
	return center, nil
}

// connectedSubcomponents splits verts (already known to lie in one induced
// subgraph) into its connected components using neighbors restricted to
// verts, returning components ordered by their smallest member.
func connectedSubcomponents(verts []int, neighbors neighborFn) [][]int {
	member := make(map[int]bool, len(verts))
	for _, v := range verts {
		member[v] = true
	}
	visited := make(map[int]bool, len(verts))
	sorted := append([]int(nil), verts...)
	sort.Ints(sorted)

	var comps [][]int
	for _, start := range sorted {
		if visited[start] {
			continue
		}
		queue := []int{start}
		visited[start] = true
		comp := []int{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, u := range neighbors(v) {
				if member[u] && !visited[u] {
					visited[u] = true
					comp = append(comp, u)
					queue = append(queue, u)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	return comps
}
