package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ProjectStatusPlanning   = "planning"
	ProjectStatusInProgress = "inProgress"
	ProjectStatusOnHold     = "onHold"
	ProjectStatusCompleted  = "completed"
)

type Project struct {
	ID            uint                        `gorm:"primaryKey" json:"id"`
	Name          string                      `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	Description   string                      `gorm:"type:text" json:"description"`
	ClientID      uint                        `gorm:"not null;index" json:"clientId" binding:"required"`
	ResponsibleID *uint                       `gorm:"index" json:"responsibleId,omitempty"`
	Status        string                      `gorm:"type:varchar(30);not null" json:"status"`
	Progress      int                         `gorm:"not null;default:0" json:"progress" binding:"min=0,max=100"`
	Tags          datatypes.JSONSlice[string] `json:"tags" swaggertype:"array,string"`
	StartDate     *time.Time                  `json:"startDate,omitempty"`
	EndDate       *time.Time                  `json:"endDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) GetID() uint     { return p.ID }
func (p *Project) SetID(id uint)   { p.ID = id }
func (p *Project) Validate() error { return validateStruct(p) }

func (p *Project) Prepare(now time.Time) {
	p.CreatedAt = now
	defaultString(&p.Status, ProjectStatusPlanning)
	if p.Tags == nil {
		p.Tags = datatypes.JSONSlice[string]{}
	}
}

func (p *Project) Field(column string) (any, bool) {
	switch column {
	case "client_id":
		return p.ClientID, true
	case "responsible_id":
		return optionalID(p.ResponsibleID)
	case "status":
		return p.Status, true
	}
	return nil, false
}

type ProjectPatch struct {
	Name          *string    `json:"name" binding:"omitempty,min=1"`
	Description   *string    `json:"description"`
	ClientID      *uint      `json:"clientId" binding:"omitempty,min=1"`
	ResponsibleID *uint      `json:"responsibleId"`
	Status        *string    `json:"status"`
	Progress      *int       `json:"progress" binding:"omitempty,min=0,max=100"`
	Tags          []string   `json:"tags"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
}

func (p ProjectPatch) StatusChange() *string { return p.Status }

func (p ProjectPatch) Apply(pr *Project) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.ClientID != nil {
		pr.ClientID = *p.ClientID
	}
	if p.ResponsibleID != nil {
		pr.ResponsibleID = p.ResponsibleID
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	if p.Progress != nil {
		pr.Progress = *p.Progress
	}
	if p.Tags != nil {
		pr.Tags = datatypes.JSONSlice[string](p.Tags)
	}
	if p.StartDate != nil {
		pr.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		pr.EndDate = p.EndDate
	}
}
