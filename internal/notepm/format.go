package notepm

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
)

// Formatter handles output formatting
type Formatter struct {
	format OutputFormat
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(format OutputFormat, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// FormatPage formats a single page
func (f *Formatter) FormatPage(page *Page) error {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(page)
	case FormatTable:
		return f.formatPageTable(page)
	case FormatText:
		return f.formatPageText(page)
	default:
		return f.formatPageText(page)
	}
}

// FormatPages formats search results
func (f *Formatter) FormatPages(pages []Page) error {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(map[string]interface{}{
			"pages": pages,
		})
	case FormatText:
		return f.formatPagesText(pages)
	case FormatTable:
		return f.formatPagesTable(pages)
	default:
		return f.formatPagesTable(pages)
	}
}

// formatJSON outputs as JSON
func (f *Formatter) formatJSON(v interface{}) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

// formatPageText formats a page as text
func (f *Formatter) formatPageText(page *Page) error {
	fmt.Fprintf(f.writer, "Title: %s\n", page.DisplayTitle())
	fmt.Fprintf(f.writer, "Page code: %s\n", page.PageCode)
	fmt.Fprintf(f.writer, "Note code: %s\n", page.NoteCode)
	if page.User != nil {
		fmt.Fprintf(f.writer, "Author: %s\n", page.User.Name)
	}
	fmt.Fprintf(f.writer, "Created: %s\n", page.CreatedAt)
	fmt.Fprintf(f.writer, "Updated: %s\n", page.UpdatedAt)
	if tags := page.TagNames(); tags != "" {
		fmt.Fprintf(f.writer, "Tags: %s\n", tags)
	}

	if page.Body != "" {
		fmt.Fprintf(f.writer, "\n%s\n", page.Body)
	}

	return nil
}

// formatPageTable formats a page as a key-value table
func (f *Formatter) formatPageTable(page *Page) error {
	rows := [][]string{
		{"Title", page.DisplayTitle()},
		{"Page code", page.PageCode},
		{"Note code", page.NoteCode},
		{"Created", page.CreatedAt},
		{"Updated", page.UpdatedAt},
	}
	if page.User != nil {
		rows = append(rows, []string{"Author", page.User.Name})
	}
	if tags := page.TagNames(); tags != "" {
		rows = append(rows, []string{"Tags", tags})
	}

	if err := f.printTable([]string{"Property", "Value"}, rows); err != nil {
		return err
	}

	if page.Body != "" {
		fmt.Fprintf(f.writer, "\n%s\n", page.Body)
	}

	return nil
}

// formatPagesText formats search results as text
func (f *Formatter) formatPagesText(pages []Page) error {
	for i, page := range pages {
		if i > 0 {
			fmt.Fprintln(f.writer, "---")
		}
		fmt.Fprintf(f.writer, "%s\n", page.DisplayTitle())
		fmt.Fprintf(f.writer, "  Page code: %s\n", page.PageCode)
		fmt.Fprintf(f.writer, "  Updated: %s\n", page.UpdatedAt)
		if page.Body != "" {
			fmt.Fprintf(f.writer, "  %s\n", page.Body)
		}
	}

	return nil
}

// formatPagesTable formats search results as a table
func (f *Formatter) formatPagesTable(pages []Page) error {
	headers := []string{"Title", "Page Code", "Updated"}
	var rows [][]string

	for _, page := range pages {
		title := page.DisplayTitle()
		// Truncate long titles
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		rows = append(rows, []string{
			title,
			page.PageCode,
			page.UpdatedAt,
		})
	}

	return f.printTable(headers, rows)
}

// printTable prints a simple table
func (f *Formatter) printTable(headers []string, rows [][]string) error {
	if len(headers) == 0 {
		return nil
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	// Print header
	var headerLine strings.Builder
	var sepLine strings.Builder
	for i, h := range headers {
		if i > 0 {
			headerLine.WriteString("  ")
			sepLine.WriteString("  ")
		}
		headerLine.WriteString(padRight(h, widths[i]))
		sepLine.WriteString(strings.Repeat("-", widths[i]))
	}
	fmt.Fprintln(f.writer, headerLine.String())
	fmt.Fprintln(f.writer, sepLine.String())

	// Print rows
	for _, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			if i > 0 {
				line.WriteString("  ")
			}
			if i < len(widths) {
				line.WriteString(padRight(cell, widths[i]))
			}
		}
		fmt.Fprintln(f.writer, line.String())
	}

	return nil
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
