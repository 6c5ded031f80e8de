package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrTransport is returned when a retailer page or API response cannot be fetched
	ErrTransport = errors.New("retailer request failed")

	// ErrMalformedResponse is returned when a fetched body cannot be decoded
	ErrMalformedResponse = errors.New("malformed retailer response")

	// ErrInvalidPrice is returned when price text is empty or not numeric
	ErrInvalidPrice = errors.New("invalid price text")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNoEligibleRetailer is returned when no retailer has a per-kilo average to compare
	ErrNoEligibleRetailer = errors.New("no retailer with comparable products")

	// ErrUnknownRetailer is returned when a store index has no retailer label
	ErrUnknownRetailer = errors.New("unknown retailer")
)

// ScrapeError collects the failures of individual retailer branches.
// The product list returned next to it is still complete.
type ScrapeError struct {
	Failures map[Retailer]error
}

func (e *ScrapeError) Error() string {
	retailers := make([]string, 0, len(e.Failures))
	for r := range e.Failures {
		retailers = append(retailers, string(r))
	}
	sort.Strings(retailers)

	parts := make([]string, 0, len(retailers))
	for _, r := range retailers {
		parts = append(parts, fmt.Sprintf("%s: %v", r, e.Failures[Retailer(r)]))
	}
	return "scrape failed for " + strings.Join(parts, "; ")
}

// Unwrap exposes the branch errors to errors.Is and errors.As.
func (e *ScrapeError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, err := range e.Failures {
		errs = append(errs, err)
	}
	return errs
}
