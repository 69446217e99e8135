package main

import (
	"context"
	"flag"
	"log"
	"time"

	"iatv/pkg/archive"
	"iatv/pkg/db"
	"iatv/pkg/download"
	"iatv/pkg/identifiers"
)

func main() {
	var (
		query   = flag.String("query", "", "SOLR query for the TV News Archive catalog (without q=)")
		channel = flag.String("channel", "", "Archive channel code filter, e.g. FOXNEWSW")
		timeStr = flag.String("time", "", "Date facet: YYYY, YYYYMM, or YYYYMMDD")
		rows    = flag.Int("rows", 50, "Max search results to download")

		idsFile = flag.String("ids-file", "", "File with one broadcast identifier per line (overrides -query)")
		feedURL = flag.String("feed", "", "archive.org collection RSS feed to read identifiers from (overrides -query)")

		outDir  = flag.String("out", "transcripts", "Base directory for downloaded transcripts")
		chunk   = flag.Int("chunk", 0, "Caption window width in seconds (0 = default 60)")
		verbose = flag.Bool("verbose", false, "Print per-window progress")

		mongoURI   = flag.String("mongo-uri", "", "Optional MongoDB connection string; when set, transcripts are also stored there")
		dbName     = flag.String("db", "iatv", "MongoDB database name")
		collection = flag.String("collection", "transcripts", "MongoDB collection for transcript records")
	)
	flag.Parse()

	ctx := context.Background()

	client := archive.NewClient(archive.Config{})

	var source identifiers.Source
	switch {
	case *idsFile != "":
		source = identifiers.NewFileSource(*idsFile)
	case *feedURL != "":
		source = identifiers.NewFeedSource(*feedURL)
	case *query != "":
		source = identifiers.NewSearchSource(client, *query, archive.SearchOptions{
			Channel: *channel,
			Time:    *timeStr,
			Rows:    *rows,
		})
	default:
		log.Fatal("one of -query, -ids-file, or -feed is required")
	}

	cfg := download.Config{
		Client:       client,
		Verbose:      *verbose,
		ChunkSeconds: *chunk,
	}
	if *mongoURI != "" {
		store := db.NewClient(*mongoURI, *dbName, *collection)
		if err := store.Connect(ctx); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer store.Close(ctx)
		cfg.Store = store
	}

	results, err := source.Fetch(ctx)
	if err != nil {
		log.Fatalf("Failed to collect identifiers: %v", err)
	}

	service := download.NewService(cfg)

	start := time.Now()
	log.Printf("Downloading transcripts for %d broadcasts into %s", len(results), *outDir)
	if err := service.Run(ctx, results, *outDir); err != nil {
		log.Fatalf("Bulk download failed: %v", err)
	}
	log.Printf("Done. Duration: %s", time.Since(start))
}
