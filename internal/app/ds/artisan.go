package ds

import (
	"time"

	"artisan-backend/internal/app/schemes"
)

const (
	UserTypeIndividual = "individual"
	UserTypeCompany    = "company"

	StatusPending  = "pending"
	StatusVerified = "verified"
)

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

// Registration - регистрационные флаги (шаг compliance)
type Registration struct {
	UdyamRegistered    bool   `json:"udyam_registered"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	TaxRegistered      bool   `json:"tax_registered"`
	TaxID              string `json:"tax_id,omitempty"`
	GSTRegistered      bool   `json:"gst_registered"`
	GSTID              string `json:"gst_id,omitempty"`
}

// Flags - флаги для расчёта применимости схем
func (r Registration) Flags() schemes.Flags {
	return schemes.Flags{
		Udyam: r.UdyamRegistered,
		Tax:   r.TaxRegistered,
		GST:   r.GSTRegistered,
	}
}

type Banking struct {
	AccountNumber string `json:"account_number,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
	IFSC          string `json:"ifsc,omitempty"`
	Verified      bool   `json:"verified"`
}

type Contact struct {
	Email   string   `json:"email"`
	Mobile  string   `json:"mobile"`
	Address *Address `json:"address,omitempty"`
}

// Artisan - профиль ремесленника
type Artisan struct {
	ArtisanID        string           `gorm:"primaryKey;type:varchar(64)" json:"artisan_id"`
	Type             string           `gorm:"type:varchar(20);not null" json:"type"`
	LegalName        string           `gorm:"type:varchar(200);not null" json:"legal_name"`
	Industry         string           `gorm:"type:varchar(50);not null;index" json:"industry"`
	SkillLevel       string           `gorm:"type:varchar(20);default:'medium'" json:"skill_level"`
	OnboardingStatus string           `gorm:"type:varchar(20);not null" json:"onboarding_status"`
	Registration     Registration     `gorm:"serializer:json" json:"registration"`
	Banking          Banking          `gorm:"serializer:json" json:"banking"`
	Contact          Contact          `gorm:"serializer:json" json:"contact"`
	Phase1Schemes    []schemes.Scheme `gorm:"serializer:json" json:"phase1_schemes"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func (a Artisan) Key() string {
	return a.ArtisanID
}

func (a Artisan) Owner() string {
	return a.ArtisanID
}
