// Package mcp implements the Model Context Protocol (MCP) server for the
// calculator. MCP allows AI assistants to use the calculator as a tool
// provider.
package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ZaEvab55555/Advanced-Calculator/pkg/calc"
)

// Server wraps a calculator session to provide MCP tool access.
type Server struct {
	session *calc.Session
	server  *server.MCPServer
}

// NewServer creates an MCP server around the given session.
func NewServer(session *calc.Session, version string) *Server {
	s := &Server{
		session: session,
	}

	mcpServer := server.NewMCPServer(
		"advcalc",
		version,
		server.WithToolCapabilities(true),
	)

	s.registerTools(mcpServer)

	s.server = mcpServer
	return s
}

// registerTools registers all MCP tools with the server.
func (s *Server) registerTools(mcpServer *server.MCPServer) {
	// evaluate - Evaluate a calculator expression
	mcpServer.AddTool(
		mcp.NewTool("evaluate",
			mcp.WithDescription("Evaluate a calculator expression. Supports +, -, *, /, %, ^, |x| for absolute value, n! for factorial, sin/cos/tan/asin/acos/atan, sqrt, cbrt, log, ln, log10, exp, floor, ceil, abs, factorial, totient, primecount and the constants pi and e. The result is formatted with the session's display modes and recorded in the history."),
			mcp.WithString("expression",
				mcp.Required(),
				mcp.Description("Expression to evaluate (e.g. '5!+3', '|2-7|', 'sin(90)', '2^10')"),
			),
		),
		s.handleEvaluate,
	)

	// factorize - Prime factorization
	mcpServer.AddTool(
		mcp.NewTool("factorize",
			mcp.WithDescription("Decompose an integer into its prime factors, rendered like '2^3 x 3' for 24."),
			mcp.WithNumber("n",
				mcp.Required(),
				mcp.Description("Integer to factorize"),
			),
		),
		s.handleFactorize,
	)

	// totient - Euler's totient
	mcpServer.AddTool(
		mcp.NewTool("totient",
			mcp.WithDescription("Euler's totient: the count of integers in [1, n] coprime with n."),
			mcp.WithNumber("n",
				mcp.Required(),
				mcp.Description("Positive integer"),
			),
		),
		s.handleTotient,
	)

	// primecount - Primes up to n
	mcpServer.AddTool(
		mcp.NewTool("primecount",
			mcp.WithDescription("Count the primes less than or equal to n."),
			mcp.WithNumber("n",
				mcp.Required(),
				mcp.Description("Non-negative integer"),
			),
		),
		s.handlePrimeCount,
	)

	// history - Recent calculations
	mcpServer.AddTool(
		mcp.NewTool("history",
			mcp.WithDescription("List the most recent calculations of this session, oldest first."),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of entries to return (default: 10)"),
			),
		),
		s.handleHistory,
	)

	// toggle_mode - Flip a display mode
	mcpServer.AddTool(
		mcp.NewTool("toggle_mode",
			mcp.WithDescription("Toggle a display mode and return its new label. Modes: 'fraction' (fraction vs decimal results), 'pi' (render multiples of pi as k·pi), 'angle' (degrees vs radians for trigonometry)."),
			mcp.WithString("mode",
				mcp.Required(),
				mcp.Description("Mode to toggle: fraction, pi or angle"),
			),
		),
		s.handleToggleMode,
	)
}

// handleEvaluate handles the evaluate tool.
func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expression := request.GetString("expression", "")
	if expression == "" {
		return mcp.NewToolResultError("expression parameter is required"), nil
	}

	result, err := s.session.Evaluate(expression)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%s = %s", result.Expression, result.Display)), nil
}

// handleFactorize handles the factorize tool.
func (s *Server) handleFactorize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n := request.GetInt("n", 0)

	factored, err := s.session.Factorize(strconv.Itoa(n))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%d = %s", n, factored)), nil
}

// handleTotient handles the totient tool.
func (s *Server) handleTotient(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n := request.GetInt("n", 0)

	totient, err := s.session.Totient(strconv.Itoa(n))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("totient(%d) = %s", n, totient)), nil
}

// handlePrimeCount handles the primecount tool.
func (s *Server) handlePrimeCount(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n := request.GetInt("n", 0)

	count, err := s.session.PrimeCount(strconv.Itoa(n))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("primecount(%d) = %s", n, count)), nil
}

// handleHistory handles the history tool.
func (s *Server) handleHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	entries := s.session.History()
	if len(entries) == 0 {
		return mcp.NewToolResultText("No calculations yet."), nil
	}
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	var sb strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&sb, "%s = %s\n", entry.Expression, entry.Result)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleToggleMode handles the toggle_mode tool.
func (s *Server) handleToggleMode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var label string
	switch mode := request.GetString("mode", ""); mode {
	case "fraction":
		label = s.session.ToggleFractionMode()
	case "pi":
		label = s.session.TogglePiMode()
	case "angle":
		label = s.session.ToggleAngleMode()
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown mode %q: want fraction, pi or angle", mode)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("mode switched to %s", label)), nil
}

// ServeStdio starts the MCP server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.server)
}
