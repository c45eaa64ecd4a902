package model

import "time"

// CompanySettings is a singleton: at most one row exists.
type CompanySettings struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CompanyName string `gorm:"type:varchar(255)" json:"companyName"`
	Email       string `gorm:"type:varchar(255)" json:"email" binding:"omitempty,email"`
	Phone       string `gorm:"type:varchar(50)" json:"phone"`
	Address     string `gorm:"type:text" json:"address"`
	Theme       string `gorm:"type:varchar(20);not null" json:"theme" binding:"omitempty,oneof=light dark system"`
	Language    string `gorm:"type:varchar(10);not null" json:"language"`

	CreatedAt time.Time `json:"createdAt"`
}

func (CompanySettings) TableName() string { return "company_settings" }

func (s *CompanySettings) GetID() uint     { return s.ID }
func (s *CompanySettings) SetID(id uint)   { s.ID = id }
func (s *CompanySettings) Validate() error { return validateStruct(s) }

func (s *CompanySettings) Prepare(now time.Time) {
	s.CreatedAt = now
	defaultString(&s.Theme, "light")
	defaultString(&s.Language, "en")
}

func (s *CompanySettings) Field(string) (any, bool) { return nil, false }

type CompanySettingsPatch struct {
	CompanyName *string `json:"companyName"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Theme       *string `json:"theme" binding:"omitempty,oneof=light dark system"`
	Language    *string `json:"language" binding:"omitempty,min=2,max=10"`
}

func (p CompanySettingsPatch) StatusChange() *string { return nil }

func (p CompanySettingsPatch) Apply(s *CompanySettings) {
	if p.CompanyName != nil {
		s.CompanyName = *p.CompanyName
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.Language != nil {
		s.Language = *p.Language
	}
}
