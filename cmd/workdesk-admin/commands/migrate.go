package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/workdesk/workdesk/internal/infra/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the tables of every entity kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := container()
		if err != nil {
			return err
		}
		if cfg.Database.Driver == db.DriverMemory {
			return fmt.Errorf("migrate needs a relational driver")
		}
		d, err := db.New(cfg)
		if err != nil {
			return err
		}
		if err := db.Migrate(d); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "migrated %s\n", cfg.Database.Driver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
