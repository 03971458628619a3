package notepm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPagesTable(t *testing.T) {
	pages := []Page{
		{PageCode: "abc123", Title: "Release checklist", UpdatedAt: "2024-06-01 10:00:00"},
		{PageCode: "def456", UpdatedAt: "2024-06-02 11:00:00"},
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable, &buf).FormatPages(pages))

	out := buf.String()
	assert.Contains(t, out, "Release checklist")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "(Untitled)")
}

func TestFormatPageText(t *testing.T) {
	page := Page{
		PageCode: "abc123",
		NoteCode: "docs",
		Title:    "Onboarding",
		Body:     "Welcome to the team.",
		Tags:     []Tag{{Name: "hr"}, {Name: "guide"}},
		User:     &User{Name: "yamada"},
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatText, &buf).FormatPage(&page))

	out := buf.String()
	assert.Contains(t, out, "Title: Onboarding")
	assert.Contains(t, out, "Page code: abc123")
	assert.Contains(t, out, "Tags: hr, guide")
	assert.Contains(t, out, "Welcome to the team.")
}

func TestFormatPageJSON(t *testing.T) {
	page := Page{PageCode: "abc123", Title: "Onboarding"}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON, &buf).FormatPage(&page))

	assert.Contains(t, buf.String(), `"page_code": "abc123"`)
}
