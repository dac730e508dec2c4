// Package cli builds the concuss command-line tool's cobra.Command tree:
// one root command reading a host graph, a pattern (named family, graph
// file, or -m multi-pattern file), and an optional INI config, and
// reporting pipeline.Run's count to stdout or -o OUT.
package cli
