package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZaEvab55555/Advanced-Calculator/internal/service"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show service status",
		RunE: func(cmd *cobra.Command, args []string) error {
			if running, pid := service.IsRunning(cfg); running {
				fmt.Printf("advcalc: running (PID %d)\n", pid)
				fmt.Printf("Address: %s\n", cfg.Address())
			} else {
				fmt.Println("advcalc: stopped")
			}
			return nil
		},
	}
}
