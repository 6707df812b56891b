package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZaEvab55555/Advanced-Calculator/internal/api"
	"github.com/ZaEvab55555/Advanced-Calculator/internal/config"
)

var (
	cfgPath string
	cfg     *config.Config

	version = "dev"
)

// Execute runs the advcalc CLI. Running without a subcommand starts the
// service, the way a desktop calculator launches straight into its window.
func Execute(v string) error {
	version = v
	api.SetVersion(v)

	root := &cobra.Command{
		Use:   "advcalc",
		Short: "Advanced calculator with a web UI, REST API and MCP tools",
		Long: `advcalc is a calculator service: a local web UI with a keypad,
scrollable history and display-mode toggles, backed by a REST API and an
optional MCP stdio server for AI assistant integration.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath == "" {
				cfgPath = config.DefaultConfigPath()
			}
			loaded, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "",
		"config file (default "+config.DefaultConfigPath()+")")

	root.AddCommand(serveCmd(), versionCmd(), statusCmd(), stopCmd(), mcpCmd())
	return root.Execute()
}
