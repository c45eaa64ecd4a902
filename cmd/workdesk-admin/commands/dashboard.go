package commands

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/samber/do"
	"github.com/spf13/cobra"
	"github.com/workdesk/workdesk/internal/modules/service"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the current dashboard snapshot as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		inj, _, err := container()
		if err != nil {
			return err
		}
		snap, err := do.MustInvoke[service.DashboardService](inj).Snapshot(cmd.Context())
		if err != nil {
			return err
		}
		out, err := sonic.ConfigStd.MarshalIndent(snap, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
