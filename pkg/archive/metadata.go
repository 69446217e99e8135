package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ShowMetadata is the raw metadata record of one broadcast, as the archive
// returns it: a mapping from field name to one or more values.
type ShowMetadata map[string][]string

// First returns the first value of a metadata field, or "" when the field
// is absent.
func (m ShowMetadata) First(field string) string {
	values := m[field]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Title returns the broadcast title.
func (m ShowMetadata) Title() string {
	return m.First("title")
}

// Duration returns the total broadcast duration in seconds, parsed from the
// HH:MM:SS runtime field.
func (m ShowMetadata) Duration() (int, error) {
	runtime := m.First("runtime")
	if runtime == "" {
		return 0, fmt.Errorf("metadata has no runtime field")
	}

	parts := strings.Split(runtime, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("runtime %q is not HH:MM:SS", runtime)
	}

	var seconds int
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("runtime %q is not HH:MM:SS", runtime)
		}
		seconds = seconds*60 + n
	}
	return seconds, nil
}

// GetShowMetadata fetches the metadata record for one broadcast identifier
// from the archive's details endpoint.
func (c *Client) GetShowMetadata(ctx context.Context, identifier string) (ShowMetadata, error) {
	if strings.TrimSpace(identifier) == "" {
		return nil, ErrEmptyIdentifier
	}

	detailsURL := c.baseURL + "/details/" + identifier + "?output=json"

	body, err := c.get(ctx, detailsURL)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Metadata map[string]any `json:"metadata"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode metadata for %s: %w", identifier, err)
	}
	if len(payload.Metadata) == 0 {
		return nil, fmt.Errorf("%w: %s has no metadata", ErrNotFound, identifier)
	}

	meta := make(ShowMetadata, len(payload.Metadata))
	for field, value := range payload.Metadata {
		meta[field] = normalizeValues(value)
	}
	return meta, nil
}

// normalizeValues flattens the archive's mixed scalar-or-array JSON values
// into a string slice.
func normalizeValues(value any) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, el := range v {
			if s, ok := el.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(el))
			}
		}
		return out
	case nil:
		return nil
	default:
		return []string{fmt.Sprint(v)}
	}
}
