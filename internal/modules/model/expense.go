package model

import "time"

type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"type:varchar(255);not null" json:"description" binding:"required"`
	Value       float64   `gorm:"not null;default:0" json:"value" binding:"gte=0"`
	Date        time.Time `gorm:"not null;index" json:"date" binding:"required"`
	Category    string    `gorm:"type:varchar(100);not null;index" json:"category" binding:"required"`
	Recurring   bool      `gorm:"not null;default:false" json:"recurring"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Expense) TableName() string { return "expenses" }

func (e *Expense) GetID() uint           { return e.ID }
func (e *Expense) SetID(id uint)         { e.ID = id }
func (e *Expense) Validate() error       { return validateStruct(e) }
func (e *Expense) Prepare(now time.Time) { e.CreatedAt = now }

func (e *Expense) Field(column string) (any, bool) {
	if column == "category" {
		return e.Category, true
	}
	return nil, false
}

type ExpensePatch struct {
	Description *string    `json:"description" binding:"omitempty,min=1"`
	Value       *float64   `json:"value" binding:"omitempty,gte=0"`
	Date        *time.Time `json:"date"`
	Category    *string    `json:"category" binding:"omitempty,min=1"`
	Recurring   *bool      `json:"recurring"`
}

func (p ExpensePatch) StatusChange() *string { return nil }

func (p ExpensePatch) Apply(e *Expense) {
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Value != nil {
		e.Value = *p.Value
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Recurring != nil {
		e.Recurring = *p.Recurring
	}
}
