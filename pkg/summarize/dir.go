package summarize

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const (
	transcriptFileName = "transcript.txt"
	summaryFileName    = "summary.txt"
)

// Dir summarizes every downloaded transcript under baseDir. For each
// identifier directory containing a transcript.txt, it writes an
// n-sentence summary.txt next to it. Directories without a transcript and
// transcripts that fail to summarize are logged and skipped; the walk
// continues. Operates purely on files already on disk.
func Dir(baseDir string, n int) error {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return fmt.Errorf("read base directory: %w", err)
	}

	summarized := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		showDir := filepath.Join(baseDir, entry.Name())
		data, err := os.ReadFile(filepath.Join(showDir, transcriptFileName))
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				log.Printf("summarize %s: %v", entry.Name(), err)
			}
			continue
		}

		sentences, err := Text(string(data), n)
		if err != nil {
			log.Printf("summarize %s: %v", entry.Name(), err)
			continue
		}

		summary := strings.Join(sentences, "\n")
		if err := os.WriteFile(filepath.Join(showDir, summaryFileName), []byte(summary), 0o644); err != nil {
			return fmt.Errorf("write summary for %s: %w", entry.Name(), err)
		}
		summarized++
	}

	log.Printf("summarized %d transcripts under %s", summarized, baseDir)
	return nil
}
