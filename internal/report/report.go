// Package report renders a retailer comparison for terminal output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/basketwise/backend/internal/domain"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// Format selects the report renderer
type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatTable, FormatYAML, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q (want table, yaml or json)", name)
}

// Render writes the comparison to w in the given format
func Render(w io.Writer, comparison *domain.Comparison, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(comparison); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(comparison); err != nil {
			return fmt.Errorf("failed to encode json report: %w", err)
		}
		return nil
	case FormatTable:
		_, err := io.WriteString(w, Markdown(comparison))
		return err
	}
	return fmt.Errorf("unknown report format %q", format)
}

// Markdown renders one product table per retailer followed by a summary table
func Markdown(comparison *domain.Comparison) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Comparison for %q\n\n", comparison.SearchTerm)
	if comparison.BestChoice != "" {
		fmt.Fprintf(&sb, "Best choice: %s\n", comparison.BestChoice)
	} else {
		sb.WriteString("Best choice: none (no comparable products)\n")
	}

	for _, schema := range domain.Schemas() {
		products, ok := comparison.Products[schema.Retailer]
		if !ok {
			continue
		}

		fmt.Fprintf(&sb, "\n## %s\n\n", schema.Label)
		if failure, failed := comparison.Failures[schema.Retailer]; failed {
			fmt.Fprintf(&sb, "Failed: %s\n", failure)
			continue
		}
		if len(products) == 0 {
			sb.WriteString("No valid products.\n")
			continue
		}

		rows := [][]string{{"#", "Title", "Brand", "Price", "Weight", "Per kg"}}
		for i, p := range products {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				p.Title,
				p.Brand,
				p.Price.StringFixed(2),
				weight(p.Weight),
				perKilo(p),
			})
		}
		writeTable(&sb, rows)
	}

	sb.WriteString("\n## Summary\n\n")
	rows := [][]string{{"Retailer", "Products", "Avg per kg", "Status"}}
	for _, schema := range domain.Schemas() {
		products, ok := comparison.Products[schema.Retailer]
		if !ok {
			continue
		}

		average := "-"
		if avg, has := comparison.Averages[schema.Retailer]; has {
			average = avg.StringFixed(2)
		}

		status := "ok"
		if _, failed := comparison.Failures[schema.Retailer]; failed {
			status = "failed"
		} else if schema.Label == comparison.BestChoice {
			status = "best"
		}

		rows = append(rows, []string{schema.Label, strconv.Itoa(len(products)), average, status})
	}
	writeTable(&sb, rows)

	return sb.String()
}

func weight(w int) string {
	if w == 0 {
		return "-"
	}
	return strconv.Itoa(w)
}

func perKilo(p domain.Product) string {
	if p.PriceKilo.IsZero() {
		return "-"
	}
	return p.PriceKilo.StringFixed(2)
}

// writeTable writes a header row, a separator and the body rows, padding
// every cell to its column's display width
func writeTable(sb *strings.Builder, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	colWidths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(colWidths); i++ {
			if width := runewidth.StringWidth(row[i]); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Ensure min width for separator
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	writeRow := func(row []string) {
		sb.WriteString("|")
		for j, width := range colWidths {
			content := ""
			if j < len(row) {
				content = row[j]
			}
			sb.WriteString(" ")
			sb.WriteString(content)
			if padding := width - runewidth.StringWidth(content); padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	writeRow(rows[0])

	sb.WriteString("|")
	for _, width := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")

	for _, row := range rows[1:] {
		writeRow(row)
	}
}
