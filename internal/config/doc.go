// Package config defines the unified, format-agnostic representation of a
// parsed configuration source: an ordered two-level mapping from section
// names to key/value pairs. Loaders for the individual input formats all
// translate into this model, and the INI renderer consumes only this model.
package config
