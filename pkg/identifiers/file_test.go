package identifiers

import (
	"context"
	"os"
	"testing"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	file, err := os.CreateTemp(t.TempDir(), "ids-*.txt")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if _, err := file.WriteString(content); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	file.Close()
	return file.Name()
}

func TestFileSource_Fetch(t *testing.T) {
	path := writeTempFile(t, `FOXNEWSW_20160101_070000_Red_Eye
CNNW_20160101_120000_Newsroom

# a comment line
MSNBCW_20160102_030000_Hardball,
`)

	source := NewFileSource(path)
	results, err := source.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}

	expected := []string{
		"FOXNEWSW_20160101_070000_Red_Eye",
		"CNNW_20160101_120000_Newsroom",
		"MSNBCW_20160102_030000_Hardball",
	}
	if len(results) != len(expected) {
		t.Fatalf("Expected %d identifiers, got %d", len(expected), len(results))
	}
	for i, want := range expected {
		if results[i].Identifier != want {
			t.Errorf("Expected identifier %d to be %q, got %q", i, want, results[i].Identifier)
		}
	}
}

func TestFileSource_Fetch_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "")

	source := NewFileSource(path)
	if _, err := source.Fetch(context.Background()); err == nil {
		t.Error("Expected error for empty file, got nil")
	}
}

func TestFileSource_Fetch_OnlyComments(t *testing.T) {
	path := writeTempFile(t, "# just\n# comments\n")

	source := NewFileSource(path)
	if _, err := source.Fetch(context.Background()); err == nil {
		t.Error("Expected error for comment-only file, got nil")
	}
}

func TestFileSource_Fetch_NonexistentFile(t *testing.T) {
	source := NewFileSource("/nonexistent/identifiers.txt")
	if _, err := source.Fetch(context.Background()); err == nil {
		t.Error("Expected error for nonexistent file, got nil")
	}
}
