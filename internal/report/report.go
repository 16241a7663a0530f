// Package report renders the enriched device set as a spreadsheet and as an
// HTML table.
package report

// Paths returns the spreadsheet and HTML file names for an output base name
func Paths(base string) (xlsx, html string) {
	return base + ".xlsx", base + ".html"
}
