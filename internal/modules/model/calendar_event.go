package model

import "time"

type CalendarEvent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title" binding:"required"`
	Description string    `gorm:"type:text" json:"description"`
	StartDate   time.Time `gorm:"not null;index" json:"startDate" binding:"required"`
	EndDate     time.Time `gorm:"not null" json:"endDate" binding:"required,gtefield=StartDate"`
	AllDay      bool      `gorm:"not null;default:false" json:"allDay"`
	UserID      uint      `gorm:"not null;index" json:"userId" binding:"required"`
	TaskID      *uint     `gorm:"index" json:"taskId,omitempty"`
	ProjectID   *uint     `gorm:"index" json:"projectId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (CalendarEvent) TableName() string { return "calendar_events" }

func (e *CalendarEvent) GetID() uint           { return e.ID }
func (e *CalendarEvent) SetID(id uint)         { e.ID = id }
func (e *CalendarEvent) Validate() error       { return validateStruct(e) }
func (e *CalendarEvent) Prepare(now time.Time) { e.CreatedAt = now }

func (e *CalendarEvent) Field(column string) (any, bool) {
	switch column {
	case "user_id":
		return e.UserID, true
	case "task_id":
		return optionalID(e.TaskID)
	case "project_id":
		return optionalID(e.ProjectID)
	}
	return nil, false
}

type CalendarEventPatch struct {
	Title       *string    `json:"title" binding:"omitempty,min=1"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	AllDay      *bool      `json:"allDay"`
	UserID      *uint      `json:"userId" binding:"omitempty,min=1"`
	TaskID      *uint      `json:"taskId"`
	ProjectID   *uint      `json:"projectId"`
}

func (p CalendarEventPatch) StatusChange() *string { return nil }

func (p CalendarEventPatch) Apply(e *CalendarEvent) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.AllDay != nil {
		e.AllDay = *p.AllDay
	}
	if p.UserID != nil {
		e.UserID = *p.UserID
	}
	if p.TaskID != nil {
		e.TaskID = p.TaskID
	}
	if p.ProjectID != nil {
		e.ProjectID = p.ProjectID
	}
}
