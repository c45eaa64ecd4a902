package service

// Kind names double as the URL segment under /entities and as the kind
// field of change events.
const (
	KindUsers           = "users"
	KindClients         = "clients"
	KindProjects        = "projects"
	KindTasks           = "tasks"
	KindProposals       = "proposals"
	KindInvoices        = "invoices"
	KindExpenses        = "expenses"
	KindSupportTickets  = "support-tickets"
	KindSupportMessages = "support-messages"
	KindCalendarEvents  = "calendar-events"
	KindSettings        = "settings"
)
