package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/phishsense-ai/phishsense/internal/config"
	"github.com/phishsense-ai/phishsense/internal/detector"
	"github.com/phishsense-ai/phishsense/internal/pipeline"
)

func main() {
	cfgPath := flag.String("config", "", "path to config yaml (required)")
	n := flag.Int("n", 200, "number of iterations")
	url := flag.String("url", "http://secure-login-bank-update.com/verify?user=abc&token=123", "URL to score")
	flag.Parse()

	if *cfgPath == "" {
		log.Fatalf("config flag is required")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	model, err := detector.Load(cfg.Model.BundleDir)
	if err != nil {
		log.Fatalf("load phishing model: %v", err)
	}

	predictor := pipeline.New(model, cfg.Decision.Threshold)

	// Warmup
	for i := 0; i < 5; i++ {
		if _, err := predictor.Predict(*url); err != nil {
			log.Fatalf("warmup predict failed: %v", err)
		}
	}

	if *n <= 0 {
		*n = 1
	}

	var last pipeline.Prediction
	durations := make([]time.Duration, 0, *n)
	for i := 0; i < *n; i++ {
		start := time.Now()
		pred, err := predictor.Predict(*url)
		if err != nil {
			log.Fatalf("predict failed: %v", err)
		}
		durations = append(durations, time.Since(start))
		last = pred
	}

	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	var total time.Duration
	for _, d := range durations {
		total += d
	}

	avg := float64(total.Microseconds()) / 1000.0 / float64(len(durations))
	p50 := float64(durations[len(durations)/2].Microseconds()) / 1000.0
	p95 := float64(durations[int(float64(len(durations))*0.95)].Microseconds()) / 1000.0

	fmt.Printf("url: %s\n", *url)
	fmt.Printf("label=%d adjusted=%.4f raw=%.4f\n", last.Label, last.PhishingProbability, last.ModelProbability)
	fmt.Printf("iterations=%d avg=%.3fms p50=%.3fms p95=%.3fms\n", len(durations), avg, p50, p95)
}
