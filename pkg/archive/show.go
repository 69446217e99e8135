package archive

import (
	"context"
	"errors"
	"fmt"
	"log"

	"iatv/pkg/captions"
)

// Show is a handle on one broadcast. Metadata and the assembled transcript
// are fetched lazily on first access and cached for the lifetime of the
// handle; the handle is not safe for concurrent use.
type Show struct {
	client       *Client
	identifier   string
	chunkSeconds int

	meta        ShowMetadata
	metaFetched bool

	turns          []string
	turnsAssembled bool
}

// Show creates a handle for the given broadcast identifier. Nothing is
// fetched until the handle is used.
func (c *Client) Show(identifier string) *Show {
	return &Show{
		client:       c,
		identifier:   identifier,
		chunkSeconds: captions.DefaultChunkSeconds,
	}
}

// Identifier returns the broadcast identifier the handle was created with.
func (s *Show) Identifier() string {
	return s.identifier
}

// SetChunkSeconds overrides the caption window width used by GetTranscript.
// Values <= 0 are ignored. Changing the width drops a cached transcript,
// since the window layout it was assembled from no longer applies.
func (s *Show) SetChunkSeconds(seconds int) {
	if seconds <= 0 || seconds == s.chunkSeconds {
		return
	}
	s.chunkSeconds = seconds
	s.turns = nil
	s.turnsAssembled = false
}

// Metadata returns the broadcast metadata, fetching it on first call.
func (s *Show) Metadata(ctx context.Context) (ShowMetadata, error) {
	if s.metaFetched {
		return s.meta, nil
	}

	meta, err := s.client.GetShowMetadata(ctx, s.identifier)
	if err != nil {
		return nil, err
	}

	s.meta = meta
	s.metaFetched = true
	return s.meta, nil
}

// GetTranscript assembles the full closed-caption transcript of the show.
//
// The archive only serves captions in short time-windowed chunks, so the
// broadcast's [0, duration) span is partitioned into fixed-width windows
// (the final one clipped to the remaining duration), each window's SRT is
// fetched in time order, and the per-window speaker turns are merged into
// one ordered sequence. A turn split by a window boundary rather than a
// speaker change is joined back into a single entry; recognizing such
// splits is a best-effort heuristic based on the absence of a new-speaker
// marker at the boundary.
//
// A failure on any window aborts the whole assembly with ErrAssembly; no
// partial transcript is returned or cached. Windows are fetched strictly
// one at a time. Once assembled, the transcript is served from the handle
// on repeated calls.
func (s *Show) GetTranscript(ctx context.Context) ([]string, error) {
	if s.turnsAssembled {
		return s.turns, nil
	}

	meta, err := s.Metadata(ctx)
	if err != nil {
		return nil, err
	}

	duration, err := meta.Duration()
	if err != nil {
		return nil, fmt.Errorf("show %s: %w", s.identifier, err)
	}

	windows := captions.Partition(duration, s.chunkSeconds)

	var turns []string
	for _, w := range windows {
		chunkURL := s.client.BuildCaptionURL(s.identifier) + fmt.Sprintf("%d/%d", w.Start, w.End)

		log.Printf("fetching captions %d/%d [%ds,%ds) from %s",
			w.Index+1, len(windows), w.Start, w.End, chunkURL)

		body, err := s.client.get(ctx, chunkURL)
		if err != nil {
			return nil, errors.Join(
				ErrAssembly,
				fmt.Errorf("show %s window %d [%ds,%ds): %w", s.identifier, w.Index, w.Start, w.End, err),
			)
		}

		cues, err := captions.ParseSRT(string(body))
		if err != nil {
			return nil, errors.Join(
				ErrAssembly,
				fmt.Errorf("show %s window %d [%ds,%ds): %w", s.identifier, w.Index, w.Start, w.End, err),
			)
		}

		turns = captions.Merge(turns, captions.Fragments(cues))
	}

	s.turns = turns
	s.turnsAssembled = true
	return s.turns, nil
}
