package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"fare-compare-api/internal/config"
	"fare-compare-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	initSchema := flag.Bool("init", false, "Create the distance_cache table")
	stats := flag.Bool("stats", false, "Print the number of cached pairs")
	purge := flag.Duration("purge", 0, "Delete entries older than this duration, e.g. 72h")
	flag.Parse()

	if !*initSchema && !*stats && *purge <= 0 {
		fmt.Println("Error: one of --init, --stats or --purge is required")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.DBSource == "" {
		fmt.Println("Error: DB_SOURCE is not configured")
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	cache := repository.NewDistanceCache(conn)

	if *initSchema {
		if err := cache.EnsureSchema(ctx); err != nil {
			fmt.Printf("Error creating table: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("distance_cache table ready")
	}

	if *purge > 0 {
		removed, err := cache.PurgeOlderThan(ctx, *purge)
		if err != nil {
			fmt.Printf("Error purging cache: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Removed %d entries older than %s\n", removed, purge.Round(time.Second))
	}

	if *stats {
		count, err := cache.Count(ctx)
		if err != nil {
			fmt.Printf("Error counting cache: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%d cached pairs\n", count)
	}
}
