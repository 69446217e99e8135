package captions

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Cue is one SRT subtitle entry. Start and End are offsets within the
// fetched chunk, not within the whole broadcast: the archive restarts cue
// timings at zero for every window.
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// ParseSRT parses SRT caption text into cues. A leading UTF-8 BOM (the
// archive prepends one on the first chunk) is stripped, inline markup such
// as <i> or <font> tags is removed from cue text, and blocks without a
// valid timing line are skipped rather than failing the parse.
func ParseSRT(s string) ([]Cue, error) {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ReplaceAll(s, "\r\n", "\n")

	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var cues []Cue
	for _, block := range strings.Split(s, "\n\n") {
		lines := nonEmptyLines(block)
		if len(lines) == 0 {
			continue
		}

		// Optional numeric index line.
		index := 0
		if n, err := strconv.Atoi(strings.TrimSpace(lines[0])); err == nil {
			index = n
			lines = lines[1:]
		}
		if len(lines) == 0 {
			continue
		}

		start, end, err := parseTiming(lines[0])
		if err != nil {
			continue
		}

		text := stripMarkup(strings.Join(lines[1:], " "))
		if text == "" {
			continue
		}

		cues = append(cues, Cue{Index: index, Start: start, End: end, Text: text})
	}
	return cues, nil
}

func nonEmptyLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// parseTiming parses an SRT timing line: "00:00:10,312 --> 00:00:30,101".
func parseTiming(line string) (start, end time.Duration, err error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("not a timing line: %q", line)
	}

	start, err = parseTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	end, err = parseTimestamp(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// parseTimestamp parses "HH:MM:SS,mmm". The archive is known to emit
// out-of-range second fields like 00:00:60,101, so fields are summed
// rather than range-checked.
func parseTimestamp(ts string) (time.Duration, error) {
	ts = strings.ReplaceAll(ts, ".", ",")
	main, millis, _ := strings.Cut(ts, ",")

	fields := strings.Split(main, ":")
	if len(fields) != 3 {
		return 0, fmt.Errorf("bad timestamp %q", ts)
	}

	var secs int
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("bad timestamp %q", ts)
		}
		secs = secs*60 + n
	}

	d := time.Duration(secs) * time.Second
	if millis != "" {
		ms, err := strconv.Atoi(strings.TrimSpace(millis))
		if err != nil || ms < 0 {
			return 0, fmt.Errorf("bad timestamp %q", ts)
		}
		d += time.Duration(ms) * time.Millisecond
	}
	return d, nil
}

// stripMarkup removes inline tags (<i>, <font>, music-note spans) and
// decodes HTML entities in cue text.
func stripMarkup(text string) string {
	text = strings.TrimSpace(text)
	if !strings.ContainsAny(text, "<&") {
		return text
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return text
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
