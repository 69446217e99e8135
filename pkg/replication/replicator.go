package replication

import (
	"context"
	"fmt"
	"log"

	"iatv/pkg/db"
	"iatv/pkg/domain"
)

// Config wires the replication dependencies.
type Config struct {
	Mongo  *db.Client
	Target db.DBProvider
}

// Replicator copies stored transcripts from MongoDB into Postgres (or a
// Supabase project) so they can be queried with Postgres full-text search.
//
// This is a one-shot, "copy everything" flow: already-replicated
// identifiers are skipped, nothing is deleted.
type Replicator struct {
	mongo  *db.Client
	target db.DBProvider
}

// NewReplicator validates the wiring and builds a replicator.
func NewReplicator(cfg Config) (*Replicator, error) {
	if cfg.Mongo == nil {
		return nil, fmt.Errorf("mongo client is required")
	}
	if cfg.Target == nil {
		return nil, fmt.Errorf("replication target is required")
	}
	return &Replicator{
		mongo:  cfg.Mongo,
		target: cfg.Target,
	}, nil
}

// Replicate reads all transcripts from Mongo and inserts the ones whose
// identifier is not yet present in the Postgres transcript table.
func (r *Replicator) Replicate(ctx context.Context) error {
	if err := r.ensureTranscriptSchema(ctx); err != nil {
		return err
	}

	records, err := r.mongo.ReadAllTranscripts(ctx)
	if err != nil {
		return fmt.Errorf("read transcripts from mongo: %w", err)
	}

	log.Printf("Loaded %d transcripts from Mongo, replicating in batches...", len(records))

	const batchSize = 100

	inserted := 0
	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}

		n, err := r.replicateBatch(ctx, records[start:end])
		if err != nil {
			return fmt.Errorf("replicate batch [%d:%d]: %w", start, end, err)
		}
		inserted += n
	}

	log.Printf("Replication complete: processed %d transcripts, inserted %d new", len(records), inserted)
	return nil
}

// ensureTranscriptSchema creates the transcript table and its full-text
// index when they do not exist yet.
func (r *Replicator) ensureTranscriptSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS transcript (
	identifier    TEXT PRIMARY KEY,
	title         TEXT NOT NULL DEFAULT '',
	channel       TEXT NOT NULL DEFAULT '',
	body          TEXT NOT NULL,
	downloaded_at TIMESTAMPTZ NOT NULL,
	tsv           tsvector GENERATED ALWAYS AS (to_tsvector('english', body)) STORED
);
CREATE INDEX IF NOT EXISTS transcript_tsv_idx ON transcript USING GIN (tsv);
`
	if _, err := r.target.DB().ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure transcript schema: %w", err)
	}
	return nil
}

// replicateBatch inserts one batch, skipping identifiers that already exist,
// and returns how many rows were actually inserted.
func (r *Replicator) replicateBatch(ctx context.Context, batch []domain.TranscriptRecord) (int, error) {
	const insert = `
INSERT INTO transcript (identifier, title, channel, body, downloaded_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (identifier) DO NOTHING
`
	inserted := 0
	for _, record := range batch {
		if record.Identifier == "" {
			continue
		}

		res, err := r.target.DB().ExecContext(ctx, insert,
			record.Identifier, record.Title, record.Channel, record.Text(), record.DownloadedAt)
		if err != nil {
			return inserted, fmt.Errorf("insert transcript %s: %w", record.Identifier, err)
		}

		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}
	return inserted, nil
}
