package main

import (
	"context"
	"flag"
	"log"

	"iatv/pkg/db"
	"iatv/pkg/replication"
)

func main() {
	var (
		mongoURI   = flag.String("mongo-uri", "mongodb://localhost:27017", "MongoDB connection string")
		dbName     = flag.String("db", "iatv", "MongoDB database name")
		collection = flag.String("collection", "transcripts", "MongoDB collection for transcript records")

		pgDSN = flag.String("pg-dsn", "", "Postgres DSN replication target")

		supabaseURL      = flag.String("supabase-url", "", "Supabase project URL (alternative target)")
		supabaseKey      = flag.String("supabase-key", "", "Supabase API key")
		supabasePassword = flag.String("supabase-password", "", "Supabase database password")
	)
	flag.Parse()

	ctx := context.Background()

	mongo := db.NewClient(*mongoURI, *dbName, *collection)
	if err := mongo.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongo.Close(ctx)

	var target db.DBProvider
	switch {
	case *pgDSN != "":
		pg := db.NewPostgresClient(db.PostgresConfig{DSN: *pgDSN})
		if err := pg.Connect(ctx); err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		defer pg.Close()
		target = pg
	case *supabaseURL != "":
		sb := db.NewSupabaseClient(db.SupabaseConfig{
			SupabaseURL: *supabaseURL,
			SupabaseKey: *supabaseKey,
			Password:    *supabasePassword,
		})
		if err := sb.Connect(ctx); err != nil {
			log.Fatalf("Failed to connect to Supabase: %v", err)
		}
		defer sb.Close()
		target = sb
	default:
		log.Fatal("one of -pg-dsn or -supabase-url is required")
	}

	replicator, err := replication.NewReplicator(replication.Config{
		Mongo:  mongo,
		Target: target,
	})
	if err != nil {
		log.Fatalf("Failed to build replicator: %v", err)
	}

	if err := replicator.Replicate(ctx); err != nil {
		log.Fatalf("Replication failed: %v", err)
	}
}
