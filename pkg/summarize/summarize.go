package summarize

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// ErrEmptyText is returned when there is nothing to summarize.
var ErrEmptyText = errors.New("text to summarize is empty")

// Text produces an extractive summary of text: the n highest-scoring
// sentences, re-emitted in document order. Sentences are scored by the
// document-wide frequency of their content words, so the summary favors
// sentences about what the broadcast kept talking about. When the text has
// fewer than n sentences, all of them are returned.
func Text(text string, n int) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if n <= 0 {
		return nil, fmt.Errorf("sentence count must be positive, got %d", n)
	}

	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("segment text: %w", err)
	}

	sentences := doc.Sentences()
	if len(sentences) == 0 {
		return nil, ErrEmptyText
	}
	if len(sentences) <= n {
		out := make([]string, 0, len(sentences))
		for _, s := range sentences {
			out = append(out, strings.TrimSpace(s.Text))
		}
		return out, nil
	}

	freq := wordFrequencies(text)

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, 0, len(sentences))
	for i, s := range sentences {
		ranked = append(ranked, scored{index: i, score: sentenceScore(s.Text, freq)})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})
	ranked = ranked[:n]

	// Back to document order.
	sort.Slice(ranked, func(a, b int) bool {
		return ranked[a].index < ranked[b].index
	})

	out := make([]string, 0, n)
	for _, r := range ranked {
		out = append(out, strings.TrimSpace(sentences[r.index].Text))
	}
	return out, nil
}

// wordFrequencies counts content words across the whole document,
// normalized so the most frequent word scores 1.
func wordFrequencies(text string) map[string]float64 {
	counts := make(map[string]float64)
	max := 0.0

	for _, raw := range strings.Fields(text) {
		word := normalizeWord(raw)
		if word == "" {
			continue
		}
		counts[word]++
		if counts[word] > max {
			max = counts[word]
		}
	}

	if max > 0 {
		for word := range counts {
			counts[word] /= max
		}
	}
	return counts
}

// sentenceScore averages the normalized frequencies of a sentence's content
// words. Averaging rather than summing keeps long rambling sentences from
// dominating.
func sentenceScore(sentence string, freq map[string]float64) float64 {
	total, count := 0.0, 0
	for _, raw := range strings.Fields(sentence) {
		word := normalizeWord(raw)
		if word == "" {
			continue
		}
		total += freq[word]
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// normalizeWord lowercases a token, strips surrounding punctuation, and
// drops stopwords and very short words. Returns "" for words that should
// not contribute to scoring.
func normalizeWord(raw string) string {
	word := strings.ToLower(strings.Trim(raw, ".,;:!?\"'()[]-–—"))
	if len(word) < 3 || stopwords[word] {
		return ""
	}
	return word
}

var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"has": true, "have": true, "him": true, "his": true, "how": true,
	"its": true, "may": true, "new": true, "now": true, "old": true,
	"see": true, "two": true, "way": true, "who": true, "did": true,
	"get": true, "got": true, "that": true, "this": true, "with": true,
	"they": true, "them": true, "then": true, "than": true, "were": true,
	"will": true, "what": true, "when": true, "where": true, "there": true,
	"their": true, "would": true, "could": true, "should": true,
	"about": true, "because": true, "just": true, "like": true,
	"into": true, "over": true, "also": true, "been": true, "being": true,
	"from": true, "going": true, "here": true, "know": true, "well": true,
	"your": true, "very": true, "some": true, "more": true, "said": true,
	"says": true, "want": true, "think": true, "right": true,
}
