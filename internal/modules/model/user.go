package model

import "time"

const (
	UserTypeAdmin  = "admin"
	UserTypeStaff  = "staff"
	UserTypeClient = "client"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email" binding:"required,email"`
	Username string `gorm:"type:varchar(100);not null;uniqueIndex" json:"username" binding:"required,min=3,max=100"`
	Role     string `gorm:"type:varchar(50);not null" json:"role"`
	UserType string `gorm:"type:varchar(20);not null" json:"userType" binding:"omitempty,oneof=admin staff client"`
	ClientID *uint  `gorm:"index" json:"clientId,omitempty"`

	// Password is accepted on input only and replaced by PasswordHash
	// before the user reaches a store.
	Password     string `gorm:"-" json:"password,omitempty"`
	PasswordHash string `gorm:"type:varchar(255)" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

func (User) TableName() string { return "users" }

func (u *User) GetID() uint     { return u.ID }
func (u *User) SetID(id uint)   { u.ID = id }
func (u *User) Validate() error { return validateStruct(u) }

func (u *User) Prepare(now time.Time) {
	u.CreatedAt = now
	defaultString(&u.Role, "user")
	defaultString(&u.UserType, UserTypeStaff)
}

func (u *User) Field(column string) (any, bool) {
	switch column {
	case "email":
		return u.Email, true
	case "username":
		return u.Username, true
	case "client_id":
		return optionalID(u.ClientID)
	}
	return nil, false
}

func (u *User) UniqueFields() []string { return []string{"email", "username"} }

// Sanitize drops credentials so the user can be serialized safely.
func (u *User) Sanitize() *User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

type UserPatch struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Username *string `json:"username" binding:"omitempty,min=3,max=100"`
	Role     *string `json:"role"`
	UserType *string `json:"userType" binding:"omitempty,oneof=admin staff client"`
	ClientID *uint   `json:"clientId"`
	Password *string `json:"password" binding:"omitempty,min=8"`

	PasswordHash *string `json:"-"`
}

func (p UserPatch) StatusChange() *string { return nil }

func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.UserType != nil {
		u.UserType = *p.UserType
	}
	if p.ClientID != nil {
		u.ClientID = p.ClientID
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
}
