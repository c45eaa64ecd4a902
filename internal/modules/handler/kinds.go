package handler

import (
	"github.com/workdesk/workdesk/internal/modules/model"
	"github.com/workdesk/workdesk/internal/modules/service"
)

// EntityServices holds one service per entity kind.
type EntityServices struct {
	Users           service.EntityService[model.User]
	Clients         service.EntityService[model.Client]
	Projects        service.EntityService[model.Project]
	Tasks           service.EntityService[model.Task]
	Proposals       service.EntityService[model.Proposal]
	Invoices        service.EntityService[model.Invoice]
	Expenses        service.EntityService[model.Expense]
	SupportTickets  service.EntityService[model.SupportTicket]
	SupportMessages service.EntityService[model.SupportMessage]
	CalendarEvents  service.EntityService[model.CalendarEvent]
}

// NewEntityRoutes builds the handler of every kind with its query filters.
func NewEntityRoutes(s EntityServices) []Routes {
	return []Routes{
		NewEntityHandler[model.User, model.UserPatch](s.Users, map[string]FilterParam{
			"clientId": IDFilter("client_id"),
			"email":    StringFilter("email"),
			"username": StringFilter("username"),
		}),
		NewEntityHandler[model.Client, model.ClientPatch](s.Clients, map[string]FilterParam{
			"status": StringFilter("status"),
		}),
		NewEntityHandler[model.Project, model.ProjectPatch](s.Projects, map[string]FilterParam{
			"clientId":      IDFilter("client_id"),
			"responsibleId": IDFilter("responsible_id"),
			"status":        StringFilter("status"),
		}),
		NewEntityHandler[model.Task, model.TaskPatch](s.Tasks, map[string]FilterParam{
			"projectId":  IDFilter("project_id"),
			"assigneeId": IDFilter("assignee_id"),
			"status":     StringFilter("status"),
		}),
		NewEntityHandler[model.Proposal, model.ProposalPatch](s.Proposals, map[string]FilterParam{
			"clientId": IDFilter("client_id"),
			"status":   StringFilter("status"),
		}),
		NewEntityHandler[model.Invoice, model.InvoicePatch](s.Invoices, map[string]FilterParam{
			"clientId":  IDFilter("client_id"),
			"projectId": IDFilter("project_id"),
			"status":    StringFilter("status"),
		}),
		NewEntityHandler[model.Expense, model.ExpensePatch](s.Expenses, map[string]FilterParam{
			"category": StringFilter("category"),
		}),
		NewEntityHandler[model.SupportTicket, model.SupportTicketPatch](s.SupportTickets, map[string]FilterParam{
			"clientId": IDFilter("client_id"),
			"status":   StringFilter("status"),
		}),
		NewAppendOnlyHandler(s.SupportMessages, map[string]FilterParam{
			"ticketId": IDFilter("ticket_id"),
			"senderId": IDFilter("sender_id"),
		}),
		NewEntityHandler[model.CalendarEvent, model.CalendarEventPatch](s.CalendarEvents, map[string]FilterParam{
			"userId":    IDFilter("user_id"),
			"taskId":    IDFilter("task_id"),
			"projectId": IDFilter("project_id"),
		}),
	}
}
