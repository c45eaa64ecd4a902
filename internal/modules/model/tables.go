package model

// All lists every persisted kind, in migration order.
func All() []any {
	return []any{
		&User{},
		&Client{},
		&Project{},
		&Task{},
		&Proposal{},
		&Invoice{},
		&Expense{},
		&SupportTicket{},
		&SupportMessage{},
		&CalendarEvent{},
		&CompanySettings{},
	}
}
