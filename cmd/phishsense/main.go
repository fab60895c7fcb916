package main

import (
	"flag"
	"log"

	"github.com/phishsense-ai/phishsense/internal/config"
	"github.com/phishsense-ai/phishsense/internal/detector"
	"github.com/phishsense-ai/phishsense/internal/pipeline"
	"github.com/phishsense-ai/phishsense/internal/server"
)

func main() {
	addrFlag := flag.String("addr", "", "HTTP listen address (overrides config)")
	configPath := flag.String("config", "phishsense.yaml", "Path to PhishSense config file")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	addr := cfg.Server.Addr
	if *addrFlag != "" {
		addr = *addrFlag
	}

	// The service has no meaning without a model: a missing artifact
	// is fatal here, before any request is served.
	model, err := detector.Load(cfg.Model.BundleDir)
	if err != nil {
		log.Fatalf("failed to load phishing model: %v", err)
	}
	log.Printf("model loaded from %s (%d feature columns)", cfg.Model.BundleDir, len(model.Columns()))

	predictor := pipeline.New(model, cfg.Decision.Threshold)
	srv := server.New(cfg, predictor)

	log.Printf("Starting PhishSense on %s...", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
