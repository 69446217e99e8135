package main

import (
	"flag"
	"log"

	"iatv/pkg/summarize"
)

func main() {
	var (
		dir       = flag.String("dir", "transcripts", "Base directory containing downloaded transcripts")
		sentences = flag.Int("sentences", 5, "Number of sentences per summary")
	)
	flag.Parse()

	if err := summarize.Dir(*dir, *sentences); err != nil {
		log.Fatalf("Summarization failed: %v", err)
	}
}
