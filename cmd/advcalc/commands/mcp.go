package commands

import (
	"github.com/spf13/cobra"

	"github.com/ZaEvab55555/Advanced-Calculator/internal/mcp"
	"github.com/ZaEvab55555/Advanced-Calculator/pkg/calc"
)

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server (stdio mode for AI assistant integration)",
		RunE: func(cmd *cobra.Command, args []string) error {
			session := calc.NewSessionWithModes(cfg.Modes())
			return mcp.NewServer(session, version).ServeStdio()
		},
	}
}
