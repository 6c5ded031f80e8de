package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/basketwise/backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ScrapeServiceConfig holds configuration for the scrape service
type ScrapeServiceConfig struct {
	// Concurrency bounds how many retailers are fetched at once; 1 fetches them in turn
	Concurrency        int
	EnableDebugLogging bool
}

// ScrapeService fans a search term out to every retailer extractor
type ScrapeService struct {
	extractors  []domain.Extractor
	concurrency int
	debug       bool
}

// NewScrapeService creates a new scrape service over the given extractors
func NewScrapeService(extractors []domain.Extractor, config ScrapeServiceConfig) *ScrapeService {
	concurrency := config.Concurrency
	if concurrency <= 0 {
		concurrency = len(extractors)
	}

	return &ScrapeService{
		extractors:  extractors,
		concurrency: concurrency,
		debug:       config.EnableDebugLogging,
	}
}

// branchResult is the outcome of one retailer branch
type branchResult struct {
	products []domain.Product
	err      error
}

// ScrapeProducts searches every retailer and returns their validated products.
// Every retailer appears in the list; a failed retailer has an empty slice and its
// error is reported through a *domain.ScrapeError returned next to the list.
func (s *ScrapeService) ScrapeProducts(ctx context.Context, searchTerm string) (domain.ProductList, error) {
	searchTerm = strings.TrimSpace(searchTerm)
	if searchTerm == "" {
		return nil, domain.ErrInvalidRequest
	}

	results := make([]branchResult, len(s.extractors))

	var g errgroup.Group
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}
	for i, extractor := range s.extractors {
		g.Go(func() error {
			products, err := s.scrapeRetailer(ctx, extractor, searchTerm)
			results[i] = branchResult{products: products, err: err}
			// branch errors stay in results so the other retailers keep running
			return nil
		})
	}
	_ = g.Wait()

	list := make(domain.ProductList, len(s.extractors))
	failures := make(map[domain.Retailer]error)
	for i, extractor := range s.extractors {
		retailer := extractor.Retailer()
		if results[i].err != nil {
			log.Printf("[Scrape] %s failed for %q: %v", retailer, searchTerm, results[i].err)
			failures[retailer] = results[i].err
			list[retailer] = []domain.Product{}
			continue
		}
		list[retailer] = results[i].products
	}

	if len(failures) > 0 {
		return list, &domain.ScrapeError{Failures: failures}
	}
	return list, nil
}

// scrapeRetailer extracts one retailer's candidates and filters them by its schema
func (s *ScrapeService) scrapeRetailer(ctx context.Context, extractor domain.Extractor, searchTerm string) ([]domain.Product, error) {
	schema, ok := domain.SchemaFor(extractor.Retailer())
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRetailer, extractor.Retailer())
	}

	candidates, err := extractor.Extract(ctx, searchTerm)
	if err != nil {
		return nil, err
	}

	products := Filter(candidates, schema)
	if s.debug {
		log.Printf("[Scrape] %s: %d of %d candidates valid for %q",
			schema.Retailer, len(products), len(candidates), searchTerm)
	}
	return products, nil
}

// Compare scrapes every retailer and selects the cheapest one.
// Retailer failures are recorded in the comparison; an error is returned only for an
// invalid request or when every retailer failed.
func (s *ScrapeService) Compare(ctx context.Context, searchTerm string) (*domain.Comparison, error) {
	list, err := s.ScrapeProducts(ctx, searchTerm)

	var scrapeErr *domain.ScrapeError
	if err != nil && !errors.As(err, &scrapeErr) {
		return nil, err
	}

	comparison := &domain.Comparison{
		SearchTerm: strings.TrimSpace(searchTerm),
		Products:   list,
		Averages:   Averages(list),
	}

	if scrapeErr != nil {
		comparison.Failures = make(map[domain.Retailer]string, len(scrapeErr.Failures))
		for retailer, failure := range scrapeErr.Failures {
			comparison.Failures[retailer] = failure.Error()
		}
		if len(scrapeErr.Failures) == len(s.extractors) {
			return comparison, scrapeErr
		}
	}

	label, err := GetBestChoice(list)
	switch {
	case errors.Is(err, domain.ErrNoEligibleRetailer):
		log.Printf("[Scrape] No comparable products for %q", comparison.SearchTerm)
	case err != nil:
		return nil, err
	default:
		comparison.BestChoice = label
	}

	return comparison, nil
}
