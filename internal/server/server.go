// Package server wires the NotePM API client into an MCP stdio server.
package server

import (
	"context"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/kzhmr/notepm-mcp-server/internal/notepm"
	"github.com/kzhmr/notepm-mcp-server/internal/notepm/config"
	"github.com/kzhmr/notepm-mcp-server/internal/version"
)

const serverName = "notepm-mcp"

// Tool names exposed to MCP clients
const (
	ToolSearch     = "notepm_search"
	ToolPageDetail = "notepm_page_detail"
)

// Server exposes NotePM search and page retrieval as MCP tools
type Server struct {
	cfg       *config.Config
	client    *notepm.Client
	logger    zerolog.Logger
	mcpServer *server.MCPServer
}

// New creates a new MCP server backed by the NotePM API
func New(cfg *config.Config, logger zerolog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		client: notepm.NewClient(cfg),
		logger: logger,
	}

	s.mcpServer = server.NewMCPServer(serverName, version.Get())
	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	searchTool := mcp.NewTool(ToolSearch,
		mcp.WithDescription(s.cfg.SearchDescription),
		mcp.WithString("q",
			mcp.Required(),
			mcp.Description("Search query. Words are combined with AND."),
		),
		mcp.WithNumber("only_title",
			mcp.Description("Search titles only (1) or full text (0). Default: 0."),
		),
		mcp.WithNumber("include_archived",
			mcp.Description("Include archived pages (1) or not (0). Default: 0."),
		),
		mcp.WithString("note_code",
			mcp.Description("Restrict the search to the note with this code."),
		),
		mcp.WithString("tag_name",
			mcp.Description("Restrict the search to pages with this tag."),
		),
		mcp.WithString("created",
			mcp.Description("Filter pages by creation date."),
		),
		mcp.WithNumber("page",
			mcp.Description("Result page number. Default: 1."),
		),
		mcp.WithNumber("per_page",
			mcp.Description("Number of results per page. Default: 10."),
		),
	)
	s.mcpServer.AddTool(searchTool, s.handleSearch)

	detailTool := mcp.NewTool(ToolPageDetail,
		mcp.WithDescription(s.cfg.PageDetailDescription),
		mcp.WithString("page_code",
			mcp.Required(),
			mcp.Description("Code of the page to fetch."),
		),
	)
	s.mcpServer.AddTool(detailTool, s.handlePageDetail)

	s.logger.Debug().
		Str("tools", ToolSearch+","+ToolPageDetail).
		Msg("tools registered")
}

// searchParamsFromArgs builds SearchParams from the raw argument map.
// Present-but-wrong-typed arguments fail here, before any request is
// issued.
func searchParamsFromArgs(q string, args map[string]any) (notepm.SearchParams, error) {
	params := notepm.SearchParams{Query: q}

	onlyTitle, err := intArg(args, "only_title", 0)
	if err != nil {
		return params, err
	}
	params.OnlyTitle = onlyTitle != 0

	includeArchived, err := intArg(args, "include_archived", 0)
	if err != nil {
		return params, err
	}
	params.IncludeArchived = includeArchived != 0

	if params.NoteCode, err = stringArg(args, "note_code"); err != nil {
		return params, err
	}
	if params.TagName, err = stringArg(args, "tag_name"); err != nil {
		return params, err
	}
	if params.Created, err = stringArg(args, "created"); err != nil {
		return params, err
	}

	if params.Page, err = intArg(args, "page", notepm.DefaultPage); err != nil {
		return params, err
	}
	if params.PerPage, err = intArg(args, "per_page", notepm.DefaultPerPage); err != nil {
		return params, err
	}

	return params, nil
}

// handleSearch handles the notepm_search tool invocation
func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	q, err := request.RequireString("q")
	if err != nil || strings.TrimSpace(q) == "" {
		return mcp.NewToolResultError("q parameter is required and must be a non-empty string"), nil
	}

	params, err := searchParamsFromArgs(q, request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.client.Search(ctx, params)
	if err != nil {
		s.logger.Error().Err(err).Str("tool", ToolSearch).Msg("search failed")
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.logger.Info().
		Str("tool", ToolSearch).
		Dur("duration", time.Since(start)).
		Msg("search completed")

	return mcp.NewToolResultText(result), nil
}

// handlePageDetail handles the notepm_page_detail tool invocation
func (s *Server) handlePageDetail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	pageCode, err := request.RequireString("page_code")
	if err != nil || strings.TrimSpace(pageCode) == "" {
		return mcp.NewToolResultError("page_code parameter is required and must be a non-empty string"), nil
	}

	result, err := s.client.GetPageDetail(ctx, notepm.DetailParams{PageCode: pageCode})
	if err != nil {
		s.logger.Error().Err(err).Str("tool", ToolPageDetail).Str("page_code", pageCode).Msg("page detail failed")
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.logger.Info().
		Str("tool", ToolPageDetail).
		Str("page_code", pageCode).
		Dur("duration", time.Since(start)).
		Msg("page detail completed")

	return mcp.NewToolResultText(result), nil
}

// Serve runs the MCP server on stdio until the client disconnects
func (s *Server) Serve() error {
	s.logger.Info().
		Str("team", s.cfg.Team).
		Str("api_base", s.cfg.APIBase).
		Msg("serving MCP on stdio")

	return server.ServeStdio(s.mcpServer)
}
