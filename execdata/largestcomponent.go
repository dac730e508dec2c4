package execdata

import (
	"sort"

	"github.com/concussgo/concuss/graphmodel"
)

// LargestComponent returns the vertex set of g's largest connected
// component, ascending, via a plain BFS over g.Neighbors — the same
// adjacency-restricted search decompose's CombinationsSweep uses, just over
// the whole graph rather than a color-set-induced subgraph.
func LargestComponent(g *graphmodel.Graph) []int {
	vertices := g.Vertices()
	visited := make(map[int]bool, len(vertices))
	var best []int
	for _, start := range vertices {
		if visited[start] {
			continue
		}
		queue := []int{start}
		visited[start] = true
		comp := []int{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, u := range g.Neighbors(v) {
				if !visited[u] {
					visited[u] = true
					comp = append(comp, u)
					queue = append(queue, u)
				}
			}
		}
		if len(comp) > len(best) {
			sort.Ints(comp)
			best = comp
		}
	}
	return best
}

// InducedSubgraph returns the subgraph of g induced by verts.
func InducedSubgraph(g *graphmodel.Graph, verts []int) *graphmodel.Graph {
	member := make(map[int]bool, len(verts))
	for _, v := range verts {
		member[v] = true
	}
	sub := graphmodel.New()
	for _, u := range verts {
		sub.AddVertex(u)
		for _, v := range g.Neighbors(u) {
			if member[v] && v >= u {
				sub.AddEdge(u, v)
			}
		}
	}
	return sub
}
