// Package loader reads a structured configuration source (HCL, JSON, YAML
// or TOML) and translates it into the format-agnostic config model.
//
// Each loader fixes a deterministic iteration order for its format so that
// repeated runs over the same input produce byte-identical output: HCL and
// JSON inputs emit in source order, YAML in document order, and TOML in
// lexical order (its decoder yields unordered maps).
package loader
