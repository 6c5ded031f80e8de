package retailer

import (
	"github.com/basketwise/backend/config"
	"github.com/basketwise/backend/internal/domain"
)

// NewAll builds one extractor per retailer, in retailer table order
func NewAll(fetcher domain.Fetcher, cfg *config.Config) []domain.Extractor {
	retailers := cfg.Retailers
	maxResults := cfg.Scrape.MaxResults

	return []domain.Extractor{
		NewColruyt(fetcher, retailers.Colruyt.BaseURL, maxResults),
		NewAlbertHeijn(fetcher, retailers.AlbertHeijn.BaseURL, maxResults),
		NewDelhaize(fetcher,
			retailers.Delhaize.BaseURL,
			retailers.Delhaize.PersistedQueryHash,
			retailers.Delhaize.Language,
			maxResults),
	}
}
