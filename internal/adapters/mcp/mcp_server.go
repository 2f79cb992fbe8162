// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/xvierd/vessel-cli/internal/adapters/export"
	"github.com/xvierd/vessel-cli/internal/domain"
	"github.com/xvierd/vessel-cli/internal/ports"
	"github.com/xvierd/vessel-cli/internal/scheme"
	"github.com/xvierd/vessel-cli/internal/theme"
)

// DurationSaver persists durations changed through the server.
type DurationSaver interface {
	SaveDurations(ctx context.Context, focusMinutes, breakMinutes int) (domain.Durations, error)
}

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server *server.MCPServer
	timer  ports.SessionTimer
	saver  DurationSaver
	theme  theme.ID
	log    *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new MCP server instance. saver may be nil.
func NewServer(timer ports.SessionTimer, saver DurationSaver, defaultTheme theme.ID, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		timer: timer,
		saver: saver,
		theme: theme.Lookup(defaultTheme).ID,
		log:   log,
	}

	// Create the MCP server
	s.server = server.NewMCPServer(
		"vessel",
		"1.0.0",
		server.WithLogging(),
	)

	// Register tools
	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	// Tool: get_timer_state
	s.server.AddTool(
		mcp.NewTool(
			"get_timer_state",
			mcp.WithDescription("Get the current focus/break countdown: phase, remaining time, fill level and durations"),
		),
		s.handleGetTimerState,
	)

	// Timer commands
	for _, c := range []struct {
		name string
		desc string
		cmd  ports.TimerCommand
	}{
		{"start_timer", "Start the countdown", ports.CmdStart},
		{"pause_timer", "Pause the countdown, keeping the remaining time", ports.CmdPause},
		{"toggle_timer", "Start the countdown if idle, pause it if running", ports.CmdToggle},
		{"reset_timer", "Stop and return to a full focus phase", ports.CmdReset},
	} {
		s.server.AddTool(mcp.NewTool(c.name, mcp.WithDescription(c.desc)), s.commandHandler(c.cmd))
	}

	// Tool: set_durations
	s.server.AddTool(
		mcp.NewTool(
			"set_durations",
			mcp.WithDescription("Change the focus and break lengths in minutes. The active phase restarts at its new full length."),
			mcp.WithNumber("focus_minutes", mcp.Description("Focus length, 1-120 (default: current)")),
			mcp.WithNumber("break_minutes", mcp.Description("Break length, 1-60 (default: current)")),
		),
		s.handleSetDurations,
	)

	// Tool: list_themes
	s.server.AddTool(
		mcp.NewTool(
			"list_themes",
			mcp.WithDescription("List the visual themes, optionally fuzzy-filtered"),
			mcp.WithString("query", mcp.Description("Optional fuzzy filter, e.g. 'hour'")),
		),
		s.handleListThemes,
	)

	// Tool: render_scene
	s.server.AddTool(
		mcp.NewTool(
			"render_scene",
			mcp.WithDescription("Render a theme's scene. Fill and phase default to the live timer."),
			mcp.WithString("theme", mcp.Description("Theme id (default: configured theme)")),
			mcp.WithNumber("fill", mcp.Description("Fill level 0-1 (default: live timer)")),
			mcp.WithBoolean("break", mcp.Description("Render the break phase (default: live timer)")),
			mcp.WithString("format", mcp.Description("Output format"), mcp.Enum("ascii", "json", "yaml")),
		),
		s.handleRenderScene,
	)
}

// Start begins serving MCP requests on stdio until ctx ends.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.log.Info("mcp server started")
	defer s.log.Info("mcp server stopped")

	// Start the stdio server
	return server.NewStdioServer(s.server).Listen(s.ctx, os.Stdin, os.Stdout)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// IsRunning returns true if the server is active.
func (s *Server) IsRunning() bool {
	if s.ctx == nil {
		return false
	}
	return s.ctx.Err() == nil
}

// Ensure Server implements ports.MCPHandler.
var _ ports.MCPHandler = (*Server)(nil)

func stateResult(snap domain.Snapshot) map[string]interface{} {
	return map[string]interface{}{
		"session_id":        snap.ID,
		"phase":             string(snap.Phase),
		"label":             snap.Phase.Label(),
		"running":           snap.Running,
		"remaining":         snap.Clock(),
		"remaining_seconds": snap.Remaining,
		"total_seconds":     snap.Total,
		"fill_level":        snap.FillLevel(),
		"focus_minutes":     snap.Durations.FocusMinutes,
		"break_minutes":     snap.Durations.BreakMinutes,
	}
}

func jsonResult(v interface{}, what string) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", what, err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleGetTimerState handles the get_timer_state tool.
func (s *Server) handleGetTimerState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(stateResult(s.timer.Snapshot()), "state")
}

// commandHandler runs cmd and reports the resulting state.
func (s *Server) commandHandler(cmd ports.TimerCommand) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := s.timer.Execute(cmd); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to %s timer: %v", cmd, err)), nil
		}
		s.log.Info("mcp command", "command", cmd)
		return jsonResult(stateResult(s.timer.Snapshot()), "state")
	}
}

// handleSetDurations handles the set_durations tool.
func (s *Server) handleSetDurations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	current := s.timer.Snapshot().Durations
	focus := request.GetInt("focus_minutes", current.FocusMinutes)
	brk := request.GetInt("break_minutes", current.BreakMinutes)

	d := domain.NewDurations(focus, brk)
	s.timer.OnDurationChange(d.FocusMinutes, d.BreakMinutes)

	if s.saver != nil {
		if _, err := s.saver.SaveDurations(ctx, d.FocusMinutes, d.BreakMinutes); err != nil {
			s.log.Warn("failed to persist durations", "error", err)
		}
	}

	result := stateResult(s.timer.Snapshot())
	if d.FocusMinutes != focus || d.BreakMinutes != brk {
		result["coerced"] = true
	}
	return jsonResult(result, "state")
}

// handleListThemes handles the list_themes tool.
func (s *Server) handleListThemes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")

	var themes []map[string]interface{}
	for _, t := range theme.Search(query) {
		themes = append(themes, map[string]interface{}{
			"id":         string(t.ID),
			"name":       t.Name,
			"icon":       t.Icon,
			"focus":      string(t.FocusColors),
			"break":      string(t.BreakColors),
			"focus_dark": string(t.FocusColorsDark),
			"break_dark": string(t.BreakColorsDark),
		})
	}

	result := map[string]interface{}{
		"themes":      themes,
		"total_count": len(themes),
	}
	if query != "" {
		result["query"] = query
	}
	return jsonResult(result, "themes")
}

// handleRenderScene handles the render_scene tool.
func (s *Server) handleRenderScene(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := s.theme
	if raw := request.GetString("theme", ""); raw != "" {
		t, ok := theme.Parse(raw)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown theme %q", raw)), nil
		}
		id = t.ID
	}

	format, err := export.ParseFormat(request.GetString("format", "ascii"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	snap := s.timer.Snapshot()
	frame := scheme.Frame{
		Fill:  request.GetFloat("fill", snap.FillLevel()),
		Break: request.GetBool("break", snap.IsBreak()),
	}

	var buf bytes.Buffer
	if err := export.Encode(&buf, scheme.Render(id, frame), export.Options{Format: format}); err != nil {
		return nil, fmt.Errorf("failed to render scene: %w", err)
	}
	return mcp.NewToolResultText(buf.String()), nil
}
