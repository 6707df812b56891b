package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZaEvab55555/Advanced-Calculator/internal/service"
)

func stopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running service",
		RunE: func(cmd *cobra.Command, args []string) error {
			running, pid := service.IsRunning(cfg)
			if !running {
				fmt.Println("advcalc is not running")
				return nil
			}

			fmt.Printf("Stopping advcalc (PID %d)...\n", pid)
			if err := service.StopRunning(cfg); err != nil {
				return err
			}

			fmt.Println("advcalc stopped")
			return nil
		},
	}
}
