package model

import "time"

const (
	ProposalStatusSent     = "sent"
	ProposalStatusAccepted = "accepted"
	ProposalStatusRejected = "rejected"
)

type Proposal struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ClientID    uint       `gorm:"not null;index" json:"clientId" binding:"required"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title" binding:"required"`
	Description string     `gorm:"type:text" json:"description"`
	Value       float64    `gorm:"not null;default:0" json:"value" binding:"gte=0"`
	Status      string     `gorm:"type:varchar(30);not null;index" json:"status"`
	ValidUntil  *time.Time `json:"validUntil,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Proposal) TableName() string { return "proposals" }

func (p *Proposal) GetID() uint     { return p.ID }
func (p *Proposal) SetID(id uint)   { p.ID = id }
func (p *Proposal) Validate() error { return validateStruct(p) }

func (p *Proposal) Prepare(now time.Time) {
	p.CreatedAt = now
	defaultString(&p.Status, ProposalStatusSent)
}

func (p *Proposal) Field(column string) (any, bool) {
	switch column {
	case "client_id":
		return p.ClientID, true
	case "status":
		return p.Status, true
	}
	return nil, false
}

type ProposalPatch struct {
	ClientID    *uint      `json:"clientId" binding:"omitempty,min=1"`
	Title       *string    `json:"title" binding:"omitempty,min=1"`
	Description *string    `json:"description"`
	Value       *float64   `json:"value" binding:"omitempty,gte=0"`
	Status      *string    `json:"status"`
	ValidUntil  *time.Time `json:"validUntil"`
}

func (p ProposalPatch) StatusChange() *string { return p.Status }

func (p ProposalPatch) Apply(pr *Proposal) {
	if p.ClientID != nil {
		pr.ClientID = *p.ClientID
	}
	if p.Title != nil {
		pr.Title = *p.Title
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Value != nil {
		pr.Value = *p.Value
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	if p.ValidUntil != nil {
		pr.ValidUntil = p.ValidUntil
	}
}
