package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/leterax/portfolio/internal/platform/config"
	"github.com/leterax/portfolio/internal/storage/sqlite"
	"github.com/leterax/portfolio/internal/subscribers"
)

func main() {
	log.SetPrefix("[SUBSCRIBERS] ")

	var env struct {
		DBPath string `env:"PORTFOLIO_DB_PATH" envDefault:"data/portfolio.db"`
	}
	if err := config.ParseEnv(&env); err != nil {
		log.Fatalf("parse config: %v", err)
	}

	dbPath := flag.String("db", env.DBPath, "SQLite database path")
	outPath := flag.String("out", "", "CSV output file (stdout when empty)")
	flag.Parse()

	store, err := sqlite.Open(*dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("create %s: %v", *outPath, err)
		}
		defer f.Close()
		out = f
	}

	n, err := subscribers.ExportCSV(context.Background(), store, out)
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	log.Printf("exported rows=%d db=%s", n, *dbPath)
}
