// Package document answers CSS-locator queries against fetched HTML pages.
package document

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// Document wraps a parsed HTML page
type Document struct {
	doc *goquery.Document
}

// Parse builds a Document from a response body.
// The HTML parser is lenient, so malformed or empty markup still yields a Document.
func Parse(body []byte) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Text returns the text content of the first element matching locator
func (d *Document) Text(locator string) (string, bool) {
	sel := d.doc.Find(locator).First()
	if sel.Length() == 0 {
		return "", false
	}
	return sel.Text(), true
}

// Attr returns the named attribute of the first element matching locator
func (d *Document) Attr(locator, name string) (string, bool) {
	return d.doc.Find(locator).First().Attr(name)
}
