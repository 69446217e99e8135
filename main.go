package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"iatv/pkg/archive"
)

func main() {
	var (
		query   = flag.String("query", "climate change", "SOLR query for the TV News Archive catalog (without q=)")
		channel = flag.String("channel", "", "Archive channel code filter, e.g. FOXNEWSW")
		timeStr = flag.String("time", "", "Date facet: YYYY, YYYYMM, or YYYYMMDD")
		rows    = flag.Int("rows", 10, "Max results to return")
	)
	flag.Parse()

	client := archive.NewClient(archive.Config{})

	results, err := client.SearchItems(context.Background(), *query, archive.SearchOptions{
		Channel: *channel,
		Time:    *timeStr,
		Rows:    *rows,
	})
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	fmt.Printf("Found %d results:\n\n", len(results))
	for i, result := range results {
		fmt.Printf("Result %d:\n", i+1)
		fmt.Printf("  Identifier: %s\n", result.Identifier)
		if title := result.Title(); title != "" {
			fmt.Printf("  Title: %s\n", title)
		}
		if channel := result.Channel(); channel != "" {
			network := archive.NetworkName(channel)
			fmt.Printf("  Channel: %s (%s)\n", channel, network)
		}
		fmt.Println()
	}
}
