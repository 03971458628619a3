package notepm

import (
	"strings"
)

// SearchResponse represents the response from the page search API
type SearchResponse struct {
	Pages []Page `json:"pages"`
}

// DetailResponse represents the response from the page detail API
type DetailResponse struct {
	Page Page `json:"page"`
}

// Page represents a NotePM page
type Page struct {
	PageCode  string `json:"page_code"`
	NoteCode  string `json:"note_code"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Memo      string `json:"memo"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Tags      []Tag  `json:"tags"`
	User      *User  `json:"user"`
}

// Tag represents a tag attached to a page
type Tag struct {
	Name string `json:"name"`
}

// User represents the author of a page
type User struct {
	UserCode string `json:"user_code"`
	Name     string `json:"name"`
}

// TagNames returns the page's tag names joined with ", "
func (p *Page) TagNames() string {
	var names []string
	for _, t := range p.Tags {
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}

// DisplayTitle returns the page title, or a placeholder when empty
func (p *Page) DisplayTitle() string {
	if p.Title == "" {
		return "(Untitled)"
	}
	return p.Title
}
