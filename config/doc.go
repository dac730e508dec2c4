// Package config loads the CONCUSS run configuration (spec.md §6's
// "Configuration file (INI)") via gopkg.in/ini.v1, mapping the color,
// compute, combine and decompose sections to the closed enums the rest of
// the module consumes.
package config
