package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"iatv/pkg/domain"
)

// SearchOptions narrows a catalog search. The zero value applies no filter.
type SearchOptions struct {
	// Channel is an archive channel code, e.g. "FOXNEWSW".
	// Valid codes are the keys of StationMappings.
	Channel string

	// Time is a date facet at year, year-month, or year-month-day
	// granularity: YYYY, YYYYMM, or YYYYMMDD. Dashes between the parts
	// are accepted and stripped.
	Time string

	// Rows caps the number of results returned. Zero means the archive's
	// own default page size.
	Rows int

	// Start is the row offset for pagination.
	Start int
}

// SearchItems searches the TV News Archive catalog. The query uses SOLR
// syntax with the leading "q=" left off, e.g.
//
//	results, err := client.SearchItems(ctx, "climate change", archive.SearchOptions{Channel: "FOXNEWSW"})
//
// Each call issues exactly one catalog request. The returned slice never
// exceeds opts.Rows when Rows is set. Re-invoking re-queries the catalog;
// nothing is cached.
func (c *Client) SearchItems(ctx context.Context, query string, opts SearchOptions) ([]domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	timeFilter, err := normalizeTimeFilter(opts.Time)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query)
	if opts.Channel != "" {
		params.Set("fq", fmt.Sprintf("channel:%q", opts.Channel))
	}
	if timeFilter != "" {
		params.Set("time", timeFilter)
	}
	if opts.Rows > 0 {
		params.Set("rows", strconv.Itoa(opts.Rows))
	}
	if opts.Start > 0 {
		params.Set("start", strconv.Itoa(opts.Start))
	}
	params.Set("output", "json")

	searchURL := c.baseURL + "/details/tv?" + params.Encode()

	body, err := c.get(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	var raw []map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(raw))
	for _, fields := range raw {
		r := domain.SearchResult{Fields: fields}
		r.Identifier = r.Field("identifier")
		if r.Identifier == "" {
			continue
		}
		results = append(results, r)
	}

	// The catalog is not trusted to honor the rows parameter.
	if opts.Rows > 0 && len(results) > opts.Rows {
		results = results[:opts.Rows]
	}

	return results, nil
}

// normalizeTimeFilter validates a time facet and strips separating dashes.
// Accepted forms: YYYY, YYYYMM, YYYYMMDD.
func normalizeTimeFilter(t string) (string, error) {
	if t == "" {
		return "", nil
	}

	digits := strings.ReplaceAll(t, "-", "")
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q is not numeric", ErrInvalidTimeFilter, t)
		}
	}

	switch len(digits) {
	case 4:
		return digits, nil
	case 6, 8:
		month, _ := strconv.Atoi(digits[4:6])
		if month < 1 || month > 12 {
			return "", fmt.Errorf("%w: %q has month %02d", ErrInvalidTimeFilter, t, month)
		}
		if len(digits) == 8 {
			day, _ := strconv.Atoi(digits[6:8])
			if day < 1 || day > 31 {
				return "", fmt.Errorf("%w: %q has day %02d", ErrInvalidTimeFilter, t, day)
			}
		}
		return digits, nil
	default:
		return "", fmt.Errorf("%w: %q must be YYYY, YYYYMM, or YYYYMMDD", ErrInvalidTimeFilter, t)
	}
}
