package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brookeadam/vms-helper/internal/config"
	"github.com/brookeadam/vms-helper/internal/server"
)

func main() {
	referencePath := flag.String("reference", "", "Path to the VMS code reference CSV (overrides VMSHELPER_REFERENCE_PATH)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *referencePath != "" {
		cfg.Reference.Engine = "csv"
		cfg.Reference.Path = *referencePath
	}

	deps, err := server.BuildDeps(cfg)
	if err != nil {
		// A missing or empty reference table is a deployment problem;
		// nothing useful can run without it.
		log.Fatalf("Failed to initialize: %v", err)
	}
	log.Printf("Loaded reference table with %d rows", deps.Table.Len())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr, _ := server.Start(ctx, cfg, deps)
	log.Printf("VMS Helper running at http://%s", addr)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")
	cancel()
	time.Sleep(1 * time.Second) // Give time for connections to close
	log.Println("Shutdown complete")
}
