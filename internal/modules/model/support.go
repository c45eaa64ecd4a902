package model

import "time"

const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "inProgress"
	TicketStatusClosed     = "closed"
)

const (
	TicketTypeSupport = "support"
	TicketTypeBug     = "bug"
	TicketTypeFeature = "feature"
)

type SupportTicket struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ClientID    uint       `gorm:"not null;index" json:"clientId" binding:"required"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title" binding:"required"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"type:varchar(30);not null;index" json:"status"`
	Type        string     `gorm:"type:varchar(30);not null" json:"type"`
	Priority    string     `gorm:"type:varchar(20)" json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	ClosedAt    *time.Time `json:"closedAt"`

	CreatedAt time.Time `json:"createdAt"`
}

func (SupportTicket) TableName() string { return "support_tickets" }

func (t *SupportTicket) GetID() uint     { return t.ID }
func (t *SupportTicket) SetID(id uint)   { t.ID = id }
func (t *SupportTicket) Validate() error { return validateStruct(t) }

func (t *SupportTicket) Prepare(now time.Time) {
	t.CreatedAt = now
	t.ClosedAt = nil
	defaultString(&t.Status, TicketStatusOpen)
	defaultString(&t.Type, TicketTypeSupport)
}

func (t *SupportTicket) Field(column string) (any, bool) {
	switch column {
	case "client_id":
		return t.ClientID, true
	case "status":
		return t.Status, true
	}
	return nil, false
}

func (t *SupportTicket) TerminalStatus() string     { return TicketStatusClosed }
func (t *SupportTicket) CurrentStatus() string      { return t.Status }
func (t *SupportTicket) TerminalAt() *time.Time     { return t.ClosedAt }
func (t *SupportTicket) MarkTerminal(now time.Time) { t.ClosedAt = &now }

type SupportTicketPatch struct {
	ClientID    *uint   `json:"clientId" binding:"omitempty,min=1"`
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,min=1"`
	Type        *string `json:"type"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

func (p SupportTicketPatch) StatusChange() *string { return p.Status }

func (p SupportTicketPatch) Apply(t *SupportTicket) {
	if p.ClientID != nil {
		t.ClientID = *p.ClientID
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
}

// SupportMessage is append-only: there is no patch type for it.
type SupportMessage struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	TicketID   uint   `gorm:"not null;index" json:"ticketId" binding:"required"`
	Message    string `gorm:"type:text;not null" json:"message" binding:"required"`
	SenderID   uint   `gorm:"not null;index" json:"senderId" binding:"required"`
	IsInternal bool   `gorm:"not null;default:false" json:"isInternal"`

	CreatedAt time.Time `json:"createdAt"`
}

func (SupportMessage) TableName() string { return "support_messages" }

func (m *SupportMessage) GetID() uint           { return m.ID }
func (m *SupportMessage) SetID(id uint)         { m.ID = id }
func (m *SupportMessage) Validate() error       { return validateStruct(m) }
func (m *SupportMessage) Prepare(now time.Time) { m.CreatedAt = now }

func (m *SupportMessage) Field(column string) (any, bool) {
	switch column {
	case "ticket_id":
		return m.TicketID, true
	case "sender_id":
		return m.SenderID, true
	}
	return nil, false
}
