package main

import (
	"fmt"
	"log"
	"os"

	"github.com/basketwise/backend/config"
	httpDelivery "github.com/basketwise/backend/internal/delivery/http"
	"github.com/basketwise/backend/internal/infrastructure/fetch"
	"github.com/basketwise/backend/internal/infrastructure/retailer"
	"github.com/basketwise/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Basketwise Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	client := fetch.NewClient(cfg.Scrape.UserAgent, cfg.Scrape.Timeout)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		client.SetDebug(true)
		log.Printf("Fetch client debug mode enabled")
	}

	extractors := retailer.NewAll(client, cfg)

	for _, extractor := range extractors {
		log.Printf("Retailer registered: %s", extractor.Retailer())
	}

	// Initialize usecase layer
	scrapeService := usecase.NewScrapeService(extractors, usecase.ScrapeServiceConfig{
		Concurrency:        cfg.Scrape.Concurrency,
		EnableDebugLogging: cfg.Scrape.Debug,
	})

	log.Printf("Scrape: timeout=%s, max_results=%d, concurrency=%d, debug=%v",
		cfg.Scrape.Timeout,
		cfg.Scrape.MaxResults,
		cfg.Scrape.Concurrency,
		cfg.Scrape.Debug)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(scrapeService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
