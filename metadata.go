package adaptordata

import "sort"

// MetaItem is one metadata name/value pair.
type MetaItem struct {
	Name  string
	Value string
}

// Metadata is an ordered collection of metadata items with unique names.
type Metadata []MetaItem

// Set sets a value, updating the existing item or adding a new one.
// Later writes win on duplicate names.
func (m *Metadata) Set(name, value string) {
	for i := range *m {
		if (*m)[i].Name == name {
			(*m)[i].Value = value
			return
		}
	}
	*m = append(*m, MetaItem{Name: name, Value: value})
}

// Get returns the value for name and whether it exists.
func (m Metadata) Get(name string) (string, bool) {
	for _, item := range m {
		if item.Name == name {
			return item.Value, true
		}
	}
	return "", false
}

// Map returns the metadata as a plain map.
func (m Metadata) Map() map[string]string {
	out := make(map[string]string, len(m))
	for _, item := range m {
		out[item.Name] = item.Value
	}
	return out
}

// MetadataFromMap builds Metadata from a map, in sorted name order so
// the result is deterministic.
func MetadataFromMap(values map[string]string) Metadata {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	m := make(Metadata, 0, len(values))
	for _, name := range names {
		m = append(m, MetaItem{Name: name, Value: values[name]})
	}
	return m
}
