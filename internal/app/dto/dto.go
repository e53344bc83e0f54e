package dto

import (
	"artisan-backend/internal/app/configurator"
	"artisan-backend/internal/app/ds"
	"artisan-backend/internal/app/intelligence"
	"artisan-backend/internal/app/schemes"
	"artisan-backend/internal/app/validation"
	"artisan-backend/internal/app/wizard"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Success bool                    `json:"success"`
	Error   string                  `json:"error"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ============ Товары ============

type ProductSummary struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Industry  string `json:"industry"`
}

type ProductListResponse struct {
	Products []ProductSummary `json:"products"`
	Total    int              `json:"total"`
}

type ProductResponse struct {
	Success bool                  `json:"success"`
	Product *configurator.Product `json:"product"`
}

type ConfigureRequest struct {
	Product string              `json:"product"`
	Tier    configurator.Tier   `json:"tier" binding:"omitempty,oneof=premium standard"`
	Market  string              `json:"market"`
	Values  configurator.Values `json:"values"`
}

type ConfigureResponse struct {
	Success       bool                      `json:"success"`
	Valid         bool                      `json:"valid"`
	Product       string                    `json:"product"`
	Tier          configurator.Tier         `json:"tier"`
	Values        configurator.Values       `json:"values"`
	VisibleFields []configurator.Field      `json:"visible_fields"`
	Errors        []configurator.FieldError `json:"errors"`
}

// ============ Аналитика ============

type MarketSummary struct {
	Market         string                   `json:"market"`
	DemandIndex    intelligence.DemandIndex `json:"demand_index"`
	Trend          intelligence.Trend       `json:"trend"`
	PriceTier      configurator.Tier        `json:"price_tier"`
	SuggestedPrice *float64                 `json:"suggested_price,omitempty"`
}

// IntelligenceView - запись аналитики с ценой после надбавок схем
type IntelligenceView struct {
	*intelligence.Record
	AdjustedPrice *float64 `json:"adjusted_price,omitempty"`
}

type IntelligenceResponse struct {
	Success      bool             `json:"success"`
	Intelligence IntelligenceView `json:"intelligence"`
	AllMarkets   []MarketSummary  `json:"all_markets,omitempty"`
}

type InsightsResponse struct {
	Success         bool                   `json:"success"`
	Industry        string                 `json:"industry"`
	Product         string                 `json:"product,omitempty"`
	ProductFallback bool                   `json:"product_fallback"`
	Insights        *intelligence.Insights `json:"insights"`
}

// ============ Схемы ============

type SchemeListResponse struct {
	Success bool             `json:"success"`
	Phase   schemes.Phase    `json:"phase"`
	Schemes []schemes.Scheme `json:"schemes"`
}

// ============ Онбординг ============

type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type ContactRequest struct {
	Email   string          `json:"email" binding:"required,email"`
	Mobile  string          `json:"mobile" binding:"required,mobile_in"`
	Address *AddressRequest `json:"address"`
}

type ComplianceRequest struct {
	UdyamRegistered    bool   `json:"udyam_registered"`
	RegistrationNumber string `json:"registration_number"`
	TaxRegistered      bool   `json:"tax_registered"`
	TaxID              string `json:"tax_id"`
	GSTRegistered      bool   `json:"gst_registered"`
	GSTID              string `json:"gst_id"`
}

type BankingRequest struct {
	BankName      string `json:"bank_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required,min=10"`
	IFSC          string `json:"ifsc" binding:"required,ifsc"`
}

type OnboardRequest struct {
	Type         string            `json:"type" binding:"required,oneof=individual company"`
	LegalName    string            `json:"legal_name" binding:"required,min=2"`
	Industry     string            `json:"industry" binding:"required,oneof=Leather Carpets"`
	SkillLevel   string            `json:"skill_level" binding:"omitempty,oneof=high medium low"`
	Contact      ContactRequest    `json:"contact"`
	Registration ComplianceRequest `json:"registration"`
	Banking      BankingRequest    `json:"banking"`
}

type OnboardResponse struct {
	Success       bool             `json:"success"`
	ArtisanID     string           `json:"artisan_id"`
	Artisan       *ds.Artisan      `json:"artisan"`
	Phase1Schemes []schemes.Scheme `json:"phase1_schemes"`
	Token         string           `json:"token"`
}

// UpdateArtisanRequest - частичное обновление профиля, nil - поле не меняется
type UpdateArtisanRequest struct {
	LegalName    *string            `json:"legal_name" binding:"omitempty,min=2"`
	SkillLevel   *string            `json:"skill_level" binding:"omitempty,oneof=high medium low"`
	Contact      *ContactRequest    `json:"contact"`
	Registration *ComplianceRequest `json:"registration"`
	Banking      *BankingRequest    `json:"banking"`
}

type ArtisanResponse struct {
	Artisan *ds.Artisan `json:"artisan"`
}

type ArtisanListResponse struct {
	Artisans []ds.Artisan `json:"artisans"`
	Total    int          `json:"total"`
}

// ============ Мастер ============

type WizardResponse struct {
	State *wizard.State `json:"state"`
	Steps []wizard.Step `json:"steps"`
}

// ============ Отправка товара ============

type ProductDataRequest struct {
	Industry string              `json:"industry" binding:"required"`
	Product  string              `json:"product" binding:"required"`
	Tier     configurator.Tier   `json:"tier" binding:"omitempty,oneof=premium standard"`
	Values   configurator.Values `json:"values"`
}

type ProductionInputsRequest struct {
	Quantity  int    `json:"quantity" binding:"min=1"`
	Packaging string `json:"packaging" binding:"required"`
	Notes     string `json:"notes"`
}

type SubmitProductRequest struct {
	ProductData      ProductDataRequest      `json:"product_data"`
	ProductionInputs ProductionInputsRequest `json:"production_inputs"`
	Market           string                  `json:"market"`
}

type SubmitProductResponse struct {
	Success      bool           `json:"success"`
	SubmissionID string         `json:"submission_id"`
	Message      string         `json:"message"`
	Submission   *ds.Submission `json:"submission"`
}

type SubmissionResponse struct {
	Submission *ds.Submission `json:"submission"`
	ArchiveURL string         `json:"archive_url,omitempty"`
}

type SubmissionListResponse struct {
	Submissions []ds.Submission `json:"submissions"`
	Total       int             `json:"total"`
}

// ============ Аутентификация ============

type LoginRequest struct {
	ArtisanID string `json:"artisan_id" binding:"required"`
	Mobile    string `json:"mobile" binding:"required,mobile_in"`
}

type AdminLoginRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}

type TokenResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
