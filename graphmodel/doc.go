// Package graphmodel provides the host-graph data structure CONCUSS counts
// pattern occurrences in.
package graphmodel
