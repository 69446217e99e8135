package download

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"iatv/pkg/archive"
	"iatv/pkg/domain"
)

const (
	transcriptFileName = "transcript.txt"
	metadataFileName   = "metadata.json"

	// TurnSeparator joins speaker turns in transcript.txt. Splitting the
	// file on it reproduces the original turn sequence.
	TurnSeparator = "\n\n"
)

// Store persists transcript records and remembers which broadcasts were
// already downloaded. Satisfied by db.Client.
type Store interface {
	SaveTranscript(ctx context.Context, record *domain.TranscriptRecord) error
	GetExistingIdentifiers(ctx context.Context) (map[string]bool, error)
}

// Config wires the bulk download dependencies.
type Config struct {
	// Client talks to the archive. Required.
	Client *archive.Client

	// Store, when non-nil, additionally persists each downloaded
	// transcript and skips identifiers it already holds.
	Store Store

	// Verbose enables per-window progress output; otherwise only
	// per-identifier status lines are printed.
	Verbose bool

	// ChunkSeconds overrides the caption window width. Zero keeps the
	// default.
	ChunkSeconds int
}

// Service downloads transcripts for a batch of search results into a
// directory-per-identifier layout on disk.
type Service struct {
	client       *archive.Client
	store        Store
	verbose      bool
	chunkSeconds int
}

// NewService creates a bulk download service.
func NewService(cfg Config) *Service {
	return &Service{
		client:       cfg.Client,
		store:        cfg.Store,
		verbose:      cfg.Verbose,
		chunkSeconds: cfg.ChunkSeconds,
	}
}

// Run downloads the transcript and raw metadata of every result into
// <baseDir>/<identifier>/. Identifiers whose directory already exists, or
// that the store already holds, are skipped without any network traffic, so
// a rerun resumes at directory granularity. A failing identifier is logged
// and the batch continues; Run only returns an error when the base
// directory or store cannot be read, when the context is cancelled, or when
// every identifier failed.
func (s *Service) Run(ctx context.Context, results []domain.SearchResult, baseDir string) error {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return fmt.Errorf("prepare base directory: %w", err)
	}

	var stored map[string]bool
	if s.store != nil {
		var err error
		stored, err = s.store.GetExistingIdentifiers(ctx)
		if err != nil {
			return fmt.Errorf("load stored identifiers: %w", err)
		}
	}

	downloaded, skipped, failed := 0, 0, 0

	for _, result := range results {
		if err := ctx.Err(); err != nil {
			return err
		}

		identifier := strings.TrimSpace(result.Identifier)
		if identifier == "" {
			continue
		}

		showDir := filepath.Join(baseDir, identifier)
		if _, err := os.Stat(showDir); err == nil {
			if s.verbose {
				log.Printf("skipping %s: directory exists", identifier)
			}
			skipped++
			continue
		}
		if stored[identifier] {
			if s.verbose {
				log.Printf("skipping %s: already stored", identifier)
			}
			skipped++
			continue
		}

		if err := s.downloadOne(ctx, identifier, showDir); err != nil {
			log.Printf("download %s: %v", identifier, err)
			failed++
			continue
		}
		downloaded++
	}

	log.Printf("bulk download done: %d downloaded, %d skipped, %d failed",
		downloaded, skipped, failed)

	if failed > 0 && downloaded == 0 && skipped == 0 {
		return fmt.Errorf("all %d downloads failed", failed)
	}
	return nil
}

// downloadOne assembles one show's transcript and writes transcript.txt and
// metadata.json into showDir.
func (s *Service) downloadOne(ctx context.Context, identifier, showDir string) error {
	show := s.client.Show(identifier)
	if s.chunkSeconds > 0 {
		show.SetChunkSeconds(s.chunkSeconds)
	}

	meta, err := show.Metadata(ctx)
	if err != nil {
		return err
	}

	if s.verbose {
		log.Printf("downloading %q (%s)", meta.Title(), identifier)
	}

	turns, err := show.GetTranscript(ctx)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(showDir, 0o755); err != nil {
		return fmt.Errorf("create show directory: %w", err)
	}

	transcript := strings.Join(turns, TurnSeparator)
	if err := os.WriteFile(filepath.Join(showDir, transcriptFileName), []byte(transcript), 0o644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}

	metaJSON, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(showDir, metadataFileName), metaJSON, 0o644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}

	if s.store != nil {
		record := &domain.TranscriptRecord{
			Identifier:   identifier,
			Title:        meta.Title(),
			Channel:      meta.First("channel"),
			Turns:        turns,
			Metadata:     meta,
			DownloadedAt: time.Now(),
		}
		if err := s.store.SaveTranscript(ctx, record); err != nil {
			return fmt.Errorf("save transcript record: %w", err)
		}
	}

	return nil
}

// ReadTranscript reads a previously downloaded transcript.txt back into its
// ordered turn sequence.
func ReadTranscript(baseDir, identifier string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, identifier, transcriptFileName))
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return strings.Split(string(data), TurnSeparator), nil
}
