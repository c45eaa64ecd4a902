package model

import "time"

const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

type Invoice struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	ClientID  uint       `gorm:"not null;index" json:"clientId" binding:"required"`
	ProjectID *uint      `gorm:"index" json:"projectId,omitempty"`
	Number    string     `gorm:"type:varchar(50)" json:"number"`
	Value     float64    `gorm:"not null;default:0" json:"value" binding:"gte=0"`
	DueDate   time.Time  `gorm:"not null" json:"dueDate" binding:"required"`
	Status    string     `gorm:"type:varchar(30);not null;index" json:"status"`
	PaidAt    *time.Time `json:"paidAt"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Invoice) TableName() string { return "invoices" }

func (i *Invoice) GetID() uint     { return i.ID }
func (i *Invoice) SetID(id uint)   { i.ID = id }
func (i *Invoice) Validate() error { return validateStruct(i) }

func (i *Invoice) Prepare(now time.Time) {
	i.CreatedAt = now
	i.PaidAt = nil
	defaultString(&i.Status, InvoiceStatusPending)
}

func (i *Invoice) Field(column string) (any, bool) {
	switch column {
	case "client_id":
		return i.ClientID, true
	case "project_id":
		return optionalID(i.ProjectID)
	case "status":
		return i.Status, true
	}
	return nil, false
}

func (i *Invoice) TerminalStatus() string     { return InvoiceStatusPaid }
func (i *Invoice) CurrentStatus() string      { return i.Status }
func (i *Invoice) TerminalAt() *time.Time     { return i.PaidAt }
func (i *Invoice) MarkTerminal(now time.Time) { i.PaidAt = &now }

type InvoicePatch struct {
	ClientID  *uint      `json:"clientId" binding:"omitempty,min=1"`
	ProjectID *uint      `json:"projectId"`
	Number    *string    `json:"number"`
	Value     *float64   `json:"value" binding:"omitempty,gte=0"`
	DueDate   *time.Time `json:"dueDate"`
	Status    *string    `json:"status" binding:"omitempty,min=1"`
}

func (p InvoicePatch) StatusChange() *string { return p.Status }

func (p InvoicePatch) Apply(i *Invoice) {
	if p.ClientID != nil {
		i.ClientID = *p.ClientID
	}
	if p.ProjectID != nil {
		i.ProjectID = p.ProjectID
	}
	if p.Number != nil {
		i.Number = *p.Number
	}
	if p.Value != nil {
		i.Value = *p.Value
	}
	if p.DueDate != nil {
		i.DueDate = *p.DueDate
	}
	if p.Status != nil {
		i.Status = *p.Status
	}
}
