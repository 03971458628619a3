package notepm

// TruncateBodies bounds the body text of pages in a parsed API
// response. Search responses carry a "pages" array; a response carrying
// a single "page" object is handled the same way. Anything without a
// string body is left untouched, and the walk never fails.
func TruncateBodies(data map[string]any, maxLen int) {
	if pages, ok := data["pages"].([]any); ok {
		for _, p := range pages {
			if page, ok := p.(map[string]any); ok {
				truncatePageBody(page, maxLen)
			}
		}
		return
	}

	if page, ok := data["page"].(map[string]any); ok {
		truncatePageBody(page, maxLen)
	}
}

func truncatePageBody(page map[string]any, maxLen int) {
	body, ok := page["body"].(string)
	if !ok {
		return
	}
	page["body"] = truncateRunes(body, maxLen)
}

// truncateRunes truncates s to n runes without allocating a full
// []rune slice. If the string is longer than n runes, it returns the
// first n runes followed by "...".
func truncateRunes(s string, n int) string {
	i := 0
	for j := range s {
		if i == n {
			return s[:j] + "..."
		}
		i++
	}
	return s
}
