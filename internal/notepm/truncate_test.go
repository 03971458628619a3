package notepm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseJSON(t *testing.T, s string) map[string]any {
	t.Helper()
	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &data))
	return data
}

func pageBody(t *testing.T, data map[string]any, i int) any {
	t.Helper()
	pages, ok := data["pages"].([]any)
	require.True(t, ok)
	require.Greater(t, len(pages), i)
	page, ok := pages[i].(map[string]any)
	require.True(t, ok)
	return page["body"]
}

func TestTruncateBodiesLongBody(t *testing.T) {
	data := parseJSON(t, `{"pages":[{"body":"0123456789ABCDEF"}]}`)

	TruncateBodies(data, 10)

	got := pageBody(t, data, 0)
	assert.Equal(t, "0123456789...", got)
	assert.Len(t, got, 13)
}

func TestTruncateBodiesShortBodyUnchanged(t *testing.T) {
	data := parseJSON(t, `{"pages":[{"body":"short"}]}`)

	TruncateBodies(data, 10)

	assert.Equal(t, "short", pageBody(t, data, 0))
}

func TestTruncateBodiesExactLengthUnchanged(t *testing.T) {
	data := parseJSON(t, `{"pages":[{"body":"0123456789"}]}`)

	TruncateBodies(data, 10)

	assert.Equal(t, "0123456789", pageBody(t, data, 0))
}

func TestTruncateBodiesCountsRunes(t *testing.T) {
	data := parseJSON(t, `{"pages":[{"body":"こんにちは世界です"}]}`)

	TruncateBodies(data, 5)

	assert.Equal(t, "こんにちは...", pageBody(t, data, 0))
}

func TestTruncateBodiesSkipsPagesWithoutBody(t *testing.T) {
	data := parseJSON(t, `{"pages":[{"title":"no body"},{"body":123},{"body":"0123456789ABCDEF"}]}`)

	TruncateBodies(data, 10)

	pages := data["pages"].([]any)
	assert.NotContains(t, pages[0], "body")
	assert.Equal(t, float64(123), pages[1].(map[string]any)["body"])
	assert.Equal(t, "0123456789...", pages[2].(map[string]any)["body"])
}

func TestTruncateBodiesSinglePageObject(t *testing.T) {
	data := parseJSON(t, `{"page":{"body":"0123456789ABCDEF"}}`)

	TruncateBodies(data, 10)

	page := data["page"].(map[string]any)
	assert.Equal(t, "0123456789...", page["body"])
}

func TestTruncateBodiesNoPagesIsNoop(t *testing.T) {
	data := parseJSON(t, `{"messages":["ok"]}`)

	TruncateBodies(data, 10)

	assert.Equal(t, parseJSON(t, `{"messages":["ok"]}`), data)
}

func TestTruncateBodiesLeavesOtherFields(t *testing.T) {
	data := parseJSON(t, `{"pages":[{"body":"0123456789ABCDEF","title":"t","page_code":"abc"}],"total":1}`)

	TruncateBodies(data, 10)

	page := data["pages"].([]any)[0].(map[string]any)
	assert.Equal(t, "t", page["title"])
	assert.Equal(t, "abc", page["page_code"])
	assert.Equal(t, float64(1), data["total"])
}
