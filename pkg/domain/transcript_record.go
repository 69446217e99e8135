package domain

import (
	"strings"
	"time"
)

// TranscriptRecord is a fully assembled broadcast transcript as persisted
// by the transcript store and the bulk downloader's optional database sink.
type TranscriptRecord struct {
	// Identifier is the archive's unique key for the broadcast.
	Identifier string `bson:"identifier" json:"identifier"`

	// Title is the broadcast title from its metadata, when available.
	Title string `bson:"title,omitempty" json:"title,omitempty"`

	// Channel is the archive channel code, when available.
	Channel string `bson:"channel,omitempty" json:"channel,omitempty"`

	// Turns is the ordered sequence of speaker turns making up the
	// transcript. Concatenating the turns in order reproduces the full
	// spoken content.
	Turns []string `bson:"turns" json:"turns"`

	// Metadata is the raw broadcast metadata record.
	Metadata map[string][]string `bson:"metadata,omitempty" json:"metadata,omitempty"`

	// DownloadedAt is when the transcript was assembled.
	DownloadedAt time.Time `bson:"downloaded_at" json:"downloaded_at"`
}

// Text returns the transcript as one string, with speaker turns separated
// by a blank line. This is the on-disk transcript.txt format.
func (t TranscriptRecord) Text() string {
	return strings.Join(t.Turns, "\n\n")
}
