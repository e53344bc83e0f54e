package ds

import (
	"time"

	"artisan-backend/internal/app/configurator"
	"artisan-backend/internal/app/intelligence"
	"artisan-backend/internal/app/schemes"
)

const StatusSubmitted = "submitted"

// ProductData - конфигурация товара, выбранная ремесленником
type ProductData struct {
	Industry string              `json:"industry"`
	Product  string              `json:"product"`
	Tier     configurator.Tier   `json:"tier"`
	Values   configurator.Values `json:"values"`
}

type ProductionInputs struct {
	Quantity  int    `json:"quantity"`
	Packaging string `json:"packaging"`
	Notes     string `json:"notes,omitempty"`
}

// Pricing рассчитывается на сервере при отправке
type Pricing struct {
	BasePrice      *float64          `json:"base_price,omitempty"`
	SuggestedPrice *float64          `json:"suggested_price,omitempty"`
	AdjustedPrice  *float64          `json:"adjusted_price,omitempty"`
	Tier           configurator.Tier `json:"tier"`
	AdjustmentPct  float64           `json:"adjustment_pct"`
}

// Submission - товар, отправленный на рынок
type Submission struct {
	SubmissionID       string               `gorm:"primaryKey;type:varchar(64)" json:"submission_id"`
	ArtisanID          string               `gorm:"type:varchar(64);not null;index" json:"artisan_id"`
	Market             string               `gorm:"type:varchar(50);not null" json:"market"`
	Status             string               `gorm:"type:varchar(20);not null" json:"status"`
	ProductData        ProductData          `gorm:"serializer:json" json:"product_data"`
	ProductionInputs   ProductionInputs     `gorm:"serializer:json" json:"production_inputs"`
	MarketIntelligence *intelligence.Record `gorm:"serializer:json" json:"market_intelligence"`
	Pricing            Pricing              `gorm:"serializer:json" json:"pricing"`
	SchemesApplied     []schemes.Scheme     `gorm:"serializer:json" json:"schemes_applied"`
	ArchiveObject      string               `gorm:"type:varchar(255)" json:"archive_object,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
}

func (s Submission) Key() string {
	return s.SubmissionID
}

func (s Submission) Owner() string {
	return s.ArtisanID
}
