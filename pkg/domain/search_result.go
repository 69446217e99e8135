package domain

// SearchResult is one catalog hit from a TV News Archive search: the
// broadcast's unique identifier plus whatever metadata fields the catalog
// returned alongside it (channel, broadcast start time, title, tags).
// Immutable once returned from search.
type SearchResult struct {
	// Identifier is the unique key the archive assigned to the broadcast.
	Identifier string

	// Fields is the raw catalog record. Values may be scalars or arrays;
	// use Field for flat string access.
	Fields map[string]any
}

// Field returns the first string value of a catalog field, or "" when the
// field is absent or not string-shaped.
func (r SearchResult) Field(name string) string {
	switch v := r.Fields[name].(type) {
	case string:
		return v
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

// Title returns the broadcast title from the catalog record.
func (r SearchResult) Title() string {
	return r.Field("title")
}

// Channel returns the archive channel code from the catalog record.
func (r SearchResult) Channel() string {
	return r.Field("channel")
}
