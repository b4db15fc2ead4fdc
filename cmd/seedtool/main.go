package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"work-scheduler-service/internal/adapters/seed"
	"work-scheduler-service/internal/domain"
)

// seedtool writes the demo schedule to a seed file, anchored to today, so
// a fresh checkout always has bars near the visible window. Run it again
// whenever the demo data has drifted too far into the past.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	defaultPath := os.Getenv("SEED_PATH")
	if defaultPath == "" {
		defaultPath = "data/seeds/schedule.json"
	}

	outPath := flag.String("out", defaultPath, "seed file to write")
	anchor := flag.String("date", "", "anchor date YYYY-MM-DD (default today, local calendar day)")
	flag.Parse()

	today := domain.DateOf(time.Now())
	if *anchor != "" {
		parsed, err := domain.ParseDate(*anchor)
		if err != nil {
			log.Fatalf("invalid -date: %v", err)
		}
		today = parsed
	}

	file := seed.Demo(today)

	raw, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		log.Fatalf("encode seed file: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatalf("create seed directory: %v", err)
	}
	if err := os.WriteFile(*outPath, raw, 0o644); err != nil {
		log.Fatalf("write %s: %v", *outPath, err)
	}

	log.Printf("Seed written: path=%s anchor=%s centers=%d orders=%d",
		*outPath, today, len(file.WorkCenters), len(file.WorkOrders))
}
