package notepm

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultPage is the default result page number
	DefaultPage = 1
	// DefaultPerPage is the default number of results per page
	DefaultPerPage = 10
)

// SearchParams holds the parameters for a page search. Optional string
// filters left empty are omitted from the outgoing request entirely.
type SearchParams struct {
	Query           string
	OnlyTitle       bool
	IncludeArchived bool
	NoteCode        string
	TagName         string
	Created         string
	Page            int
	PerPage         int
}

// Validate checks that required search parameters are present
func (p SearchParams) Validate() error {
	if strings.TrimSpace(p.Query) == "" {
		return fmt.Errorf("q is required and must be a non-empty string")
	}
	return nil
}

// Encode builds the query string for the search request. The upstream
// API expects only_title and include_archived as 0/1 flags. Page and
// per_page fall back to their defaults when unset.
func (p SearchParams) Encode() string {
	v := url.Values{}
	v.Set("q", p.Query)
	v.Set("only_title", boolToFlag(p.OnlyTitle))
	v.Set("include_archived", boolToFlag(p.IncludeArchived))

	if p.NoteCode != "" {
		v.Set("note_code", p.NoteCode)
	}
	if p.TagName != "" {
		v.Set("tag_name", p.TagName)
	}
	if p.Created != "" {
		v.Set("created", p.Created)
	}

	page := p.Page
	if page < 1 {
		page = DefaultPage
	}
	perPage := p.PerPage
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("per_page", strconv.Itoa(perPage))

	return v.Encode()
}

// DetailParams holds the parameters for a page detail request
type DetailParams struct {
	PageCode string
}

// Validate checks that required detail parameters are present
func (p DetailParams) Validate() error {
	if strings.TrimSpace(p.PageCode) == "" {
		return fmt.Errorf("page_code is required and must be a non-empty string")
	}
	return nil
}

func boolToFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
