package identifiers

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"iatv/pkg/domain"
)

// FileSource reads broadcast identifiers from a file, one per line.
type FileSource struct {
	path string
}

// NewFileSource creates an identifier source backed by a line-oriented file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch reads all identifiers from the file. Blank lines and lines starting
// with "#" are skipped.
func (s *FileSource) Fetch(ctx context.Context) ([]domain.SearchResult, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open identifier file: %w", err)
	}
	defer file.Close()

	var results []domain.SearchResult
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimRight(line, ", \t")
		if line == "" {
			continue
		}

		results = append(results, domain.SearchResult{Identifier: line})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read identifier file at line %d: %w", lineNum, err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no identifiers found in %s", s.path)
	}

	return results, nil
}
