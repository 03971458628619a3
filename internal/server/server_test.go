package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kzhmr/notepm-mcp-server/internal/notepm/config"
)

func testServer(t *testing.T, handler http.HandlerFunc) *Server {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := &config.Config{
		Team:                  "example",
		APIToken:              "test-token",
		APIBase:               ts.URL,
		MaxBodyLength:         10,
		SearchDescription:     "search",
		PageDetailDescription: "detail",
	}

	return New(cfg, zerolog.Nop())
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	tc, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return tc.Text
}

func TestHandleSearchReturnsSingleTextResult(t *testing.T) {
	s := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "budget", r.URL.Query().Get("q"))
		w.Write([]byte(`{"pages":[{"body":"short"}]}`))
	})

	result, err := s.handleSearch(context.Background(), callRequest(ToolSearch, map[string]any{"q": "budget"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.JSONEq(t, `{"pages":[{"body":"short"}]}`, resultText(t, result))
}

func TestHandleSearchForwardsOptionalArguments(t *testing.T) {
	s := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("only_title"))
		assert.Equal(t, "docs", q.Get("note_code"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "5", q.Get("per_page"))
		assert.False(t, q.Has("tag_name"))
		w.Write([]byte(`{"pages":[]}`))
	})

	result, err := s.handleSearch(context.Background(), callRequest(ToolSearch, map[string]any{
		"q":          "x",
		"only_title": 1,
		"note_code":  "docs",
		"page":       2,
		"per_page":   5,
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestHandleSearchMissingQuery(t *testing.T) {
	s := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	result, err := s.handleSearch(context.Background(), callRequest(ToolSearch, map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleSearchWrongTypedArguments(t *testing.T) {
	s := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	cases := []map[string]any{
		{"q": "x", "page": "oops"},
		{"q": "x", "per_page": true},
		{"q": "x", "page": 1.5},
		{"q": "x", "only_title": "yes"},
		{"q": "x", "note_code": 42},
		{"q": "x", "tag_name": []any{"release"}},
	}

	for _, args := range cases {
		result, err := s.handleSearch(context.Background(), callRequest(ToolSearch, args))
		require.NoError(t, err)
		assert.True(t, result.IsError, "args %v", args)
	}
}

func TestHandleSearchAcceptsJSONNumbers(t *testing.T) {
	s := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "1", q.Get("only_title"))
		w.Write([]byte(`{"pages":[]}`))
	})

	// JSON-decoded arguments arrive as float64
	result, err := s.handleSearch(context.Background(), callRequest(ToolSearch, map[string]any{
		"q":          "x",
		"page":       float64(2),
		"only_title": float64(1),
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestHandleSearchUpstreamFailure(t *testing.T) {
	s := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"messages":["not found"]}`))
	})

	result, err := s.handleSearch(context.Background(), callRequest(ToolSearch, map[string]any{"q": "x"}))
	require.NoError(t, err)
	require.True(t, result.IsError)

	assert.Contains(t, resultText(t, result), "404")
}

func TestHandlePageDetailReturnsUpstreamText(t *testing.T) {
	upstream := `{"page":{"body":"0123456789ABCDEF"}}`

	s := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/abc123", r.URL.Path)
		w.Write([]byte(upstream))
	})

	result, err := s.handlePageDetail(context.Background(), callRequest(ToolPageDetail, map[string]any{"page_code": "abc123"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	// Detail results are never truncated
	assert.Equal(t, upstream, resultText(t, result))
}

func TestHandlePageDetailMissingPageCode(t *testing.T) {
	s := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	result, err := s.handlePageDetail(context.Background(), callRequest(ToolPageDetail, map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestUnknownToolRejected(t *testing.T) {
	s := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	msg := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"unknown_tool","arguments":{}}}`
	response := s.mcpServer.HandleMessage(context.Background(), json.RawMessage(msg))
	require.NotNil(t, response)

	raw, err := json.Marshal(response)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "error")
	assert.Contains(t, string(raw), "unknown_tool")
}
