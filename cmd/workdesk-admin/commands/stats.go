package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/samber/do"
	"github.com/spf13/cobra"
	"github.com/workdesk/workdesk/internal/bootstrap"
	"github.com/workdesk/workdesk/internal/modules/service"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how many records each kind holds",
	RunE: func(cmd *cobra.Command, args []string) error {
		inj, _, err := container()
		if err != nil {
			return err
		}
		s := do.MustInvoke[*bootstrap.Stores](inj)
		counts := []struct {
			kind  string
			count func(context.Context) (int64, error)
		}{
			{service.KindUsers, s.Users.Count},
			{service.KindClients, s.Clients.Count},
			{service.KindProjects, s.Projects.Count},
			{service.KindTasks, s.Tasks.Count},
			{service.KindProposals, s.Proposals.Count},
			{service.KindInvoices, s.Invoices.Count},
			{service.KindExpenses, s.Expenses.Count},
			{service.KindSupportTickets, s.SupportTickets.Count},
			{service.KindSupportMessages, s.SupportMessages.Count},
			{service.KindCalendarEvents, s.CalendarEvents.Count},
			{service.KindSettings, s.Settings.Count},
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KIND\tRECORDS")
		for _, c := range counts {
			n, err := c.count(cmd.Context())
			if err != nil {
				return fmt.Errorf("count %s: %w", c.kind, err)
			}
			fmt.Fprintf(w, "%s\t%d\n", c.kind, n)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
