package intelligence

import (
	"artisan-backend/internal/app/configurator"
	"artisan-backend/internal/app/schemes"
)

type DemandIndex string

const (
	DemandHigh   DemandIndex = "high"
	DemandMedium DemandIndex = "medium"
	DemandLow    DemandIndex = "low"
)

type Trend string

const (
	TrendRising    Trend = "rising"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

type TrendPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// MarketData - данные одного рынка в таблице отрасли.
// В записях товаров заполняются только переопределяемые поля.
type MarketData struct {
	DemandIndex    DemandIndex       `json:"demand_index,omitempty"`
	Trend          Trend             `json:"trend,omitempty"`
	PriceTier      configurator.Tier `json:"price_tier,omitempty"`
	BasePrice      *float64          `json:"base_price,omitempty"`
	SuggestedPrice *float64          `json:"suggested_price,omitempty"`
	TrendData      []TrendPoint      `json:"trend_data,omitempty"`
	Phase2Schemes  []schemes.Scheme  `json:"phase2_schemes,omitempty"`
}

// MarketEntry - рынок с данными, порядок записей совпадает с порядком ключей в фикстуре
type MarketEntry struct {
	Market string
	Data   MarketData
}

type ProductEntry struct {
	Name    string
	Markets []MarketEntry
}

// IndustryTable - таблица рыночной аналитики одной отрасли
type IndustryTable struct {
	Industry       string
	DefaultProduct string
	Markets        []MarketEntry
	Products       []ProductEntry
}

// Record - результат разрешения аналитики для тройки (отрасль, товар, рынок).
// Каждый возвращённый Record - независимый снимок.
type Record struct {
	Industry        string            `json:"industry"`
	Product         string            `json:"product"`
	Market          string            `json:"market"`
	DemandIndex     DemandIndex       `json:"demand_index"`
	Trend           Trend             `json:"trend"`
	EligibleMarkets []string          `json:"eligible_markets"`
	PriceTier       configurator.Tier `json:"price_tier"`
	BasePrice       *float64          `json:"base_price,omitempty"`
	SuggestedPrice  *float64          `json:"suggested_price,omitempty"`
	Phase2Schemes   []schemes.Scheme  `json:"phase2_schemes"`
	TrendData       []TrendPoint      `json:"trend_data,omitempty"`
	// ProductFallback - для товара нет собственной записи, использованы данные отрасли
	ProductFallback bool `json:"product_fallback"`
}

func floatPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone возвращает независимую копию записи
func (r *Record) Clone() *Record {
	out := *r
	out.EligibleMarkets = append([]string(nil), r.EligibleMarkets...)
	out.BasePrice = floatPtr(r.BasePrice)
	out.SuggestedPrice = floatPtr(r.SuggestedPrice)
	out.Phase2Schemes = schemes.CloneAll(r.Phase2Schemes)
	out.TrendData = append([]TrendPoint(nil), r.TrendData...)
	return &out
}
