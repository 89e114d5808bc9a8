package config

// Entry is a single top-level entry of a Map. Exactly one of Section and
// Scalar is meaningful: when Section is non-nil the entry is a section,
// otherwise it carries the textual form of a scalar value.
type Entry struct {
	Name    string
	Section *Section
	Scalar  string
}

// IsSection reports whether the entry holds a nested mapping.
func (e *Entry) IsSection() bool {
	return e.Section != nil
}

// Map is the ordered top-level mapping. Entries iterate in insertion order,
// which is how loaders make the output deterministic across runs.
type Map struct {
	entries []*Entry
	index   map[string]int
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{index: make(map[string]int)}
}

// AddSection appends a new named section and returns it. If a section with
// that name already exists, the existing section is returned and its position
// is unchanged. Adding a section under a name previously used for a scalar
// replaces the scalar in place.
func (m *Map) AddSection(name string) *Section {
	if i, ok := m.index[name]; ok {
		e := m.entries[i]
		if e.Section == nil {
			e.Section = &Section{Name: name, index: make(map[string]int)}
			e.Scalar = ""
		}
		return e.Section
	}
	s := &Section{Name: name, index: make(map[string]int)}
	m.index[name] = len(m.entries)
	m.entries = append(m.entries, &Entry{Name: name, Section: s})
	return s
}

// AddScalar appends a top-level entry whose value is not a mapping. The
// renderer skips such entries; the model still records them so that the
// skip decision stays with the renderer rather than the loaders.
func (m *Map) AddScalar(name, value string) {
	if i, ok := m.index[name]; ok {
		m.entries[i] = &Entry{Name: name, Scalar: value}
		return
	}
	m.index[name] = len(m.entries)
	m.entries = append(m.entries, &Entry{Name: name, Scalar: value})
}

// Entries returns the top-level entries in insertion order.
func (m *Map) Entries() []*Entry {
	return m.entries
}

// Len returns the number of top-level entries, sections and scalars alike.
func (m *Map) Len() int {
	return len(m.entries)
}

// Lookup returns the entry with the given name, if any.
func (m *Map) Lookup(name string) (*Entry, bool) {
	i, ok := m.index[name]
	if !ok {
		return nil, false
	}
	return m.entries[i], true
}

// Key is one key/value pair inside a section. Values are already in their
// textual form; the model carries no type information.
type Key struct {
	Name  string
	Value string
}

// Section is an ordered list of key/value pairs.
type Section struct {
	Name  string
	keys  []Key
	index map[string]int
}

// Set appends a key, or overwrites the value in place when the key already
// exists. Key order is insertion order of first appearance.
func (s *Section) Set(name, value string) {
	if i, ok := s.index[name]; ok {
		s.keys[i].Value = value
		return
	}
	s.index[name] = len(s.keys)
	s.keys = append(s.keys, Key{Name: name, Value: value})
}

// Keys returns the section's key/value pairs in insertion order.
func (s *Section) Keys() []Key {
	return s.keys
}

// Len returns the number of keys in the section.
func (s *Section) Len() int {
	return len(s.keys)
}

// Get returns the value stored under name, if any.
func (s *Section) Get(name string) (string, bool) {
	i, ok := s.index[name]
	if !ok {
		return "", false
	}
	return s.keys[i].Value, true
}
