// Package commands defines the advcalc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - serve      Start the calculator service (also the default action)
//   - version    Print version information
//   - status     Show whether the service is running
//   - stop       Stop a running service
//   - mcp        Serve calculator tools over MCP stdio
//
// # Implementation
//
// The root command loads the configuration before any subcommand runs, so
// handlers share one Config resolved from --config or the per-user default
// path. The serve flow owns the daemon lifecycle: logger setup, PID file,
// config watcher, graceful shutdown.
package commands
