package identifiers

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/mmcdole/gofeed"

	"iatv/pkg/domain"
)

// FeedSource reads broadcast identifiers from an archive.org collection
// RSS/Atom feed, where each item links to a /details/<identifier> page.
type FeedSource struct {
	feedURL    string
	feedParser *gofeed.Parser
}

// NewFeedSource creates an identifier source backed by a collection feed.
func NewFeedSource(feedURL string) *FeedSource {
	return &FeedSource{
		feedURL:    feedURL,
		feedParser: gofeed.NewParser(),
	}
}

// Fetch parses the feed and extracts one identifier per item from the item
// link's last path segment. Items without a usable link are skipped.
func (s *FeedSource) Fetch(ctx context.Context) ([]domain.SearchResult, error) {
	feed, err := s.feedParser.ParseURLWithContext(s.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse collection feed: %w", err)
	}

	if feed == nil || len(feed.Items) == 0 {
		return nil, fmt.Errorf("collection feed contains no items")
	}

	results := make([]domain.SearchResult, 0, len(feed.Items))
	for _, item := range feed.Items {
		identifier := identifierFromLink(item.Link)
		if identifier == "" {
			continue
		}
		result := domain.SearchResult{Identifier: identifier}
		if item.Title != "" {
			result.Fields = map[string]any{"title": item.Title}
		}
		results = append(results, result)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no identifiers found in feed items")
	}

	return results, nil
}

// identifierFromLink pulls the identifier out of an archive item link like
// https://archive.org/details/FOXNEWSW_20160101_070000_Red_Eye.
func identifierFromLink(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return ""
	}

	identifier := path.Base(strings.TrimRight(parsed.Path, "/"))
	if identifier == "." || identifier == "/" || identifier == "details" {
		return ""
	}
	return identifier
}
