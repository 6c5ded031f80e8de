package retailer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/basketwise/backend/internal/domain"
)

const delhaizeOperation = "GetProductSearch"

// Delhaize extracts products from the Delhaize product search API
type Delhaize struct {
	fetcher   domain.Fetcher
	baseURL   string
	queryHash string
	language  string
	schema    domain.Schema
}

// NewDelhaize creates a Delhaize extractor for a persisted search query
func NewDelhaize(fetcher domain.Fetcher, baseURL, queryHash, language string, maxResults int) *Delhaize {
	if language == "" {
		language = "nl"
	}
	return &Delhaize{
		fetcher:   fetcher,
		baseURL:   strings.TrimRight(baseURL, "/"),
		queryHash: queryHash,
		language:  language,
		schema:    schemaFor(domain.RetailerDelhaize, maxResults),
	}
}

// Retailer identifies the extractor
func (d *Delhaize) Retailer() domain.Retailer {
	return domain.RetailerDelhaize
}

type searchVariables struct {
	Lang                  string `json:"lang"`
	SearchQuery           string `json:"searchQuery"`
	Sort                  string `json:"sort"`
	PageNumber            int    `json:"pageNumber"`
	PageSize              int    `json:"pageSize"`
	FilterFlag            bool   `json:"filterFlag"`
	UseSpellingSuggestion bool   `json:"useSpellingSuggestion"`
}

type persistedQuery struct {
	Version    int    `json:"version"`
	Sha256Hash string `json:"sha256Hash"`
}

type searchExtensions struct {
	PersistedQuery persistedQuery `json:"persistedQuery"`
}

// searchURL encodes the persisted query call
func (d *Delhaize) searchURL(searchTerm string) (string, error) {
	variables, err := json.Marshal(searchVariables{
		Lang:                  d.language,
		SearchQuery:           searchTerm + ":relevance",
		Sort:                  "relevance",
		PageNumber:            0,
		PageSize:              d.schema.MaxResults,
		FilterFlag:            true,
		UseSpellingSuggestion: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode variables: %w", err)
	}

	extensions, err := json.Marshal(searchExtensions{
		PersistedQuery: persistedQuery{Version: 1, Sha256Hash: d.queryHash},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode extensions: %w", err)
	}

	params := url.Values{}
	params.Add("operationName", delhaizeOperation)
	params.Add("variables", string(variables))
	params.Add("extensions", string(extensions))

	return fmt.Sprintf("%s/?%s", d.baseURL, params.Encode()), nil
}

// Extract calls the search API and maps the returned products onto the result slots
func (d *Delhaize) Extract(ctx context.Context, searchTerm string) ([]domain.Product, error) {
	reqURL, err := d.searchURL(searchTerm)
	if err != nil {
		return nil, err
	}

	body, err := d.fetcher.Fetch(ctx, reqURL, map[string]string{"Accept": "application/json"})
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	for _, e := range resp.Errors {
		log.Printf("[Delhaize] API error for %q: %s", searchTerm, e.Message)
	}

	return mapProducts(resp.Data.ProductSearch.Products, d.schema), nil
}
