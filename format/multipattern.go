package format

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/concussgo/concuss/pattern"
	"gopkg.in/yaml.v3"
)

// NamedPattern pairs a parsed pattern graph with the name it was built
// from, so a multi-pattern run can report per-pattern counts against the
// name the caller supplied rather than a bare index.
type NamedPattern struct {
	Name  string
	Graph *pattern.Graph
}

// ReadMultiPatternFile reads a plain-text batch file: one pattern name
// (spec.md §1's mini-language, e.g. "clique{4}") per non-blank, non-"#"
// line.
func ReadMultiPatternFile(path string) ([]NamedPattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("format.ReadMultiPatternFile: %w", err)
	}
	defer f.Close()
	return readMultiPatternFile(f)
}

func readMultiPatternFile(r io.Reader) ([]NamedPattern, error) {
	var out []NamedPattern
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		np, err := buildNamedPattern(line)
		if err != nil {
			return nil, fmt.Errorf("format.ReadMultiPatternFile: %w", err)
		}
		out = append(out, np)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("format.ReadMultiPatternFile: %w", err)
	}
	return out, nil
}

// multiPatternYAML is the on-disk shape ReadMultiPatternYAML expects:
//
//	patterns:
//	  - clique{4}
//	  - path{3}
type multiPatternYAML struct {
	Patterns []string `yaml:"patterns"`
}

// ReadMultiPatternYAML reads a YAML batch file. It is a supplement to the
// plain-text batch format above, for callers who already drive the rest of
// their run configuration from YAML.
func ReadMultiPatternYAML(path string) ([]NamedPattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("format.ReadMultiPatternYAML: %w", err)
	}
	defer f.Close()
	return readMultiPatternYAML(f)
}

func readMultiPatternYAML(r io.Reader) ([]NamedPattern, error) {
	var doc multiPatternYAML
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("format.ReadMultiPatternYAML: %w", err)
	}
	out := make([]NamedPattern, 0, len(doc.Patterns))
	for _, name := range doc.Patterns {
		np, err := buildNamedPattern(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("format.ReadMultiPatternYAML: %w", err)
		}
		out = append(out, np)
	}
	return out, nil
}

func buildNamedPattern(name string) (NamedPattern, error) {
	builder, err := pattern.ParseName(name)
	if err != nil {
		return NamedPattern{}, err
	}
	h := pattern.New()
	if err := builder(h); err != nil {
		return NamedPattern{}, err
	}
	return NamedPattern{Name: name, Graph: h}, nil
}
