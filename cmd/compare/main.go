// Package main provides the command-line price comparison tool.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/basketwise/backend/config"
	"github.com/basketwise/backend/internal/domain"
	"github.com/basketwise/backend/internal/infrastructure/fetch"
	"github.com/basketwise/backend/internal/infrastructure/retailer"
	"github.com/basketwise/backend/internal/report"
	"github.com/basketwise/backend/internal/usecase"
)

func main() {
	// Define command-line flags
	query := flag.String("q", "", "Search term to compare across retailers")
	formatName := flag.String("format", string(report.FormatTable), "Output format: table, yaml or json")
	configFile := flag.String("config", "", "Path to YAML configuration file")
	debug := flag.Bool("debug", false, "Log every request and per-retailer validation counts")
	help := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	term := strings.TrimSpace(*query)
	if term == "" {
		term = strings.TrimSpace(strings.Join(flag.Args(), " "))
	}
	if term == "" {
		printUsage()
		os.Exit(2)
	}

	format, err := report.ParseFormat(*formatName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	// Load configuration
	var cfg *config.Config
	if *configFile != "" {
		cfg, err = config.LoadFrom(*configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client := fetch.NewClient(cfg.Scrape.UserAgent, cfg.Scrape.Timeout)
	client.SetDebug(*debug)

	service := usecase.NewScrapeService(retailer.NewAll(client, cfg), usecase.ScrapeServiceConfig{
		Concurrency:        cfg.Scrape.Concurrency,
		EnableDebugLogging: *debug || cfg.Scrape.Debug,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	comparison, err := service.Compare(ctx, term)
	var scrapeErr *domain.ScrapeError
	if err != nil && !errors.As(err, &scrapeErr) {
		log.Fatalf("Comparison failed: %v", err)
	}

	if renderErr := report.Render(os.Stdout, comparison, format); renderErr != nil {
		log.Fatalf("Failed to render report: %v", renderErr)
	}

	// every retailer failed
	if scrapeErr != nil {
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Basketwise - grocery price comparison")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  compare -q <term> [options]")
	fmt.Println("  compare [options] <term>")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  compare -q melk")
	fmt.Println("  compare -q \"halfvolle melk\" -format yaml")
	fmt.Println("  compare -config config.yaml -format json boter")
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
