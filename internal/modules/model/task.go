package model

import "time"

const (
	TaskStatusBacklog    = "backlog"
	TaskStatusInProgress = "inProgress"
	TaskStatusTesting    = "testing"
	TaskStatusCompleted  = "completed"
)

const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	Description string     `gorm:"type:text" json:"description"`
	ProjectID   *uint      `gorm:"index" json:"projectId,omitempty"`
	AssigneeID  *uint      `gorm:"index" json:"assigneeId,omitempty"`
	Status      string     `gorm:"type:varchar(30);not null;index" json:"status"`
	Priority    string     `gorm:"type:varchar(20);not null" json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CompletedAt *time.Time `json:"completedAt"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Task) TableName() string { return "tasks" }

func (t *Task) GetID() uint     { return t.ID }
func (t *Task) SetID(id uint)   { t.ID = id }
func (t *Task) Validate() error { return validateStruct(t) }

func (t *Task) Prepare(now time.Time) {
	t.CreatedAt = now
	t.CompletedAt = nil
	defaultString(&t.Status, TaskStatusBacklog)
	defaultString(&t.Priority, TaskPriorityMedium)
}

func (t *Task) Field(column string) (any, bool) {
	switch column {
	case "project_id":
		return optionalID(t.ProjectID)
	case "assignee_id":
		return optionalID(t.AssigneeID)
	case "status":
		return t.Status, true
	}
	return nil, false
}

func (t *Task) TerminalStatus() string     { return TaskStatusCompleted }
func (t *Task) CurrentStatus() string      { return t.Status }
func (t *Task) TerminalAt() *time.Time     { return t.CompletedAt }
func (t *Task) MarkTerminal(now time.Time) { t.CompletedAt = &now }

type TaskPatch struct {
	Name        *string    `json:"name" binding:"omitempty,min=1"`
	Description *string    `json:"description"`
	ProjectID   *uint      `json:"projectId"`
	AssigneeID  *uint      `json:"assigneeId"`
	Status      *string    `json:"status" binding:"omitempty,min=1"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate     *time.Time `json:"dueDate"`
}

func (p TaskPatch) StatusChange() *string { return p.Status }

func (p TaskPatch) Apply(t *Task) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.ProjectID != nil {
		t.ProjectID = p.ProjectID
	}
	if p.AssigneeID != nil {
		t.AssigneeID = p.AssigneeID
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = p.DueDate
	}
}
