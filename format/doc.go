// Package format reads and writes the external file formats CONCUSS's CLI
// accepts: host graphs (edgelist, LEDA, GML, GEXF, GraphML), colorings, and
// pattern-name batch files (spec.md §6).
package format
