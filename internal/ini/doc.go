// Package ini renders the format-agnostic config model as INI text.
//
// The produced grammar is fixed: a `[name]` header per section, one
// `key = value` line per pair, and a single blank line after every section
// (including the last). Values are emitted verbatim with no quoting or
// escaping, and top-level entries that are not sections produce no output.
package ini
