package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/do"
	"github.com/spf13/cobra"
	"github.com/workdesk/workdesk/internal/bootstrap"
	"github.com/workdesk/workdesk/internal/modules/handler"
	"github.com/workdesk/workdesk/internal/modules/model"
)

var (
	// Seed flags
	adminPassword string
	force         bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a small demo data set",
	Long: `Load an admin user, two clients and a handful of projects, tasks, proposals,
invoices and support records so the dashboard has something to show.

The store must be empty unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inj, _, err := container()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		stores := do.MustInvoke[*bootstrap.Stores](inj)
		n, err := stores.Clients.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 && !force {
			return fmt.Errorf("store already holds %d clients, use --force to seed anyway", n)
		}

		if err := seed(ctx, do.MustInvoke[handler.EntityServices](inj), adminPassword); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "seeded demo data")
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&adminPassword, "admin-password", "changeme123", "Password of the seeded admin user")
	seedCmd.Flags().BoolVar(&force, "force", false, "Seed even if the store is not empty")
	rootCmd.AddCommand(seedCmd)
}

func ptr[T any](v T) *T { return &v }

// seed goes through the services so hashing, change events and cache
// invalidation behave as for API writes.
func seed(ctx context.Context, s handler.EntityServices, password string) error {
	admin := &model.User{Name: "Administrator", Email: "admin@workdesk.local", Username: "admin", UserType: model.UserTypeAdmin, Role: "admin", Password: password}
	if err := s.Users.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	acme := &model.Client{CompanyName: "Acme Corp", ContactName: "Wile E.", Email: "contact@acme.test"}
	globex := &model.Client{CompanyName: "Globex", Status: model.ClientStatusLead}
	for _, c := range []*model.Client{acme, globex} {
		if err := s.Clients.Create(ctx, c); err != nil {
			return fmt.Errorf("seed client: %w", err)
		}
	}

	site := &model.Project{Name: "Website relaunch", ClientID: acme.ID, ResponsibleID: &admin.ID, Progress: 40}
	if err := s.Projects.Create(ctx, site); err != nil {
		return fmt.Errorf("seed project: %w", err)
	}

	today := time.Now()
	tasks := []*model.Task{
		{Name: "Wireframes", ProjectID: &site.ID, AssigneeID: &admin.ID, DueDate: &today},
		{Name: "Copywriting", ProjectID: &site.ID, Status: model.TaskStatusInProgress},
		{Name: "QA pass", ProjectID: &site.ID, Status: model.TaskStatusTesting},
	}
	for _, t := range tasks {
		if err := s.Tasks.Create(ctx, t); err != nil {
			return fmt.Errorf("seed task: %w", err)
		}
	}
	if _, err := s.Tasks.Update(ctx, tasks[0].ID, model.TaskPatch{Status: ptr(model.TaskStatusCompleted)}); err != nil {
		return fmt.Errorf("complete task: %w", err)
	}

	for _, p := range []*model.Proposal{
		{ClientID: acme.ID, Title: "Maintenance retainer", Value: 1200},
		{ClientID: globex.ID, Title: "Discovery workshop", Value: 800},
	} {
		if err := s.Proposals.Create(ctx, p); err != nil {
			return fmt.Errorf("seed proposal: %w", err)
		}
	}

	paid := &model.Invoice{ClientID: acme.ID, ProjectID: &site.ID, Number: "INV-0001", Value: 2500, DueDate: today.AddDate(0, 0, -10)}
	open := &model.Invoice{ClientID: acme.ID, Number: "INV-0002", Value: 900, DueDate: today.AddDate(0, 0, 20)}
	for _, inv := range []*model.Invoice{paid, open} {
		if err := s.Invoices.Create(ctx, inv); err != nil {
			return fmt.Errorf("seed invoice: %w", err)
		}
	}
	if _, err := s.Invoices.Update(ctx, paid.ID, model.InvoicePatch{Status: ptr(model.InvoiceStatusPaid)}); err != nil {
		return fmt.Errorf("pay invoice: %w", err)
	}

	if err := s.Expenses.Create(ctx, &model.Expense{Description: "Hosting", Value: 49, Date: today, Category: "infrastructure", Recurring: true}); err != nil {
		return fmt.Errorf("seed expense: %w", err)
	}

	ticket := &model.SupportTicket{ClientID: acme.ID, Title: "Contact form broken"}
	if err := s.SupportTickets.Create(ctx, ticket); err != nil {
		return fmt.Errorf("seed ticket: %w", err)
	}
	if err := s.SupportMessages.Create(ctx, &model.SupportMessage{TicketID: ticket.ID, SenderID: admin.ID, Message: "Looking into it."}); err != nil {
		return fmt.Errorf("seed message: %w", err)
	}

	start := today.Add(24 * time.Hour).Truncate(time.Hour)
	return s.CalendarEvents.Create(ctx, &model.CalendarEvent{
		Title:     "Kick-off",
		UserID:    admin.ID,
		ProjectID: &site.ID,
		StartDate: start,
		EndDate:   start.Add(time.Hour),
	})
}
