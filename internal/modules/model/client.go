package model

import "time"

const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
	ClientStatusLead     = "lead"
)

type Client struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	CompanyName   string     `gorm:"type:varchar(255);not null" json:"companyName" binding:"required"`
	ContactName   string     `gorm:"type:varchar(255)" json:"contactName"`
	Email         string     `gorm:"type:varchar(255)" json:"email" binding:"omitempty,email"`
	Phone         string     `gorm:"type:varchar(50)" json:"phone"`
	Status        string     `gorm:"type:varchar(30);not null;index" json:"status"`
	ContractStart *time.Time `json:"contractStart,omitempty"`
	ContractEnd   *time.Time `json:"contractEnd,omitempty"`
	ContractValue float64    `json:"contractValue" binding:"gte=0"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Client) TableName() string { return "clients" }

func (c *Client) GetID() uint     { return c.ID }
func (c *Client) SetID(id uint)   { c.ID = id }
func (c *Client) Validate() error { return validateStruct(c) }

func (c *Client) Prepare(now time.Time) {
	c.CreatedAt = now
	defaultString(&c.Status, ClientStatusActive)
}

func (c *Client) Field(column string) (any, bool) {
	if column == "status" {
		return c.Status, true
	}
	return nil, false
}

type ClientPatch struct {
	CompanyName   *string    `json:"companyName" binding:"omitempty,min=1"`
	ContactName   *string    `json:"contactName"`
	Email         *string    `json:"email" binding:"omitempty,email"`
	Phone         *string    `json:"phone"`
	Status        *string    `json:"status"`
	ContractStart *time.Time `json:"contractStart"`
	ContractEnd   *time.Time `json:"contractEnd"`
	ContractValue *float64   `json:"contractValue" binding:"omitempty,gte=0"`
}

func (p ClientPatch) StatusChange() *string { return p.Status }

func (p ClientPatch) Apply(c *Client) {
	if p.CompanyName != nil {
		c.CompanyName = *p.CompanyName
	}
	if p.ContactName != nil {
		c.ContactName = *p.ContactName
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.ContractStart != nil {
		c.ContractStart = p.ContractStart
	}
	if p.ContractEnd != nil {
		c.ContractEnd = p.ContractEnd
	}
	if p.ContractValue != nil {
		c.ContractValue = *p.ContractValue
	}
}
