package commands

import (
	"fmt"
	"os"

	"github.com/samber/do"
	"github.com/spf13/cobra"
	"github.com/workdesk/workdesk/internal/bootstrap"
	"github.com/workdesk/workdesk/internal/config"
	"github.com/workdesk/workdesk/internal/infra/db"
)

var (
	// Global flags
	driver string
	dsn    string
)

var rootCmd = &cobra.Command{
	Use:   "workdesk-admin",
	Short: "Workdesk administration tool",
	Long: `workdesk-admin runs maintenance tasks against the configured Workdesk store.

It reads the same configs/config.yaml, .env and APP_* variables as the API
server. --driver and --dsn override the database section.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "Store driver: postgres or sqlite (default from config)")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "Database DSN (default from config)")
}

// container builds the same object graph as the server with the flag
// overrides applied.
func container() (*do.Injector, *config.Config, error) {
	inj := bootstrap.BuildContainer()
	cfg, err := do.Invoke[*config.Config](inj)
	if err != nil {
		return nil, nil, err
	}
	if driver != "" {
		cfg.Database.Driver = driver
	}
	if dsn != "" {
		cfg.Database.DSN = dsn
	}
	if cfg.Database.Driver == db.DriverMemory {
		fmt.Fprintln(os.Stderr, "warning: memory driver selected, nothing will be persisted")
	}
	return inj, cfg, nil
}
