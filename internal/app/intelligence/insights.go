package intelligence

import (
	"strings"

	"artisan-backend/internal/app/apperr"
)

type PriceImpact string

type MarketRequirement struct {
	Demand          DemandIndex `json:"demand"`
	Preferred       bool        `json:"preferred"`
	PriceMultiplier float64     `json:"price_multiplier"`
	Trend           Trend       `json:"trend"`
	Recommendation  string      `json:"recommendation"`
}

type RawMaterialOption struct {
	Value              string                       `json:"value"`
	Label              string                       `json:"label"`
	Description        string                       `json:"description"`
	PriceImpact        PriceImpact                  `json:"price_impact"`
	MarketRequirements map[string]MarketRequirement `json:"market_requirements,omitempty"`
}

type RawMaterial struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Category    string              `json:"category"`
	Description string              `json:"description"`
	Options     []RawMaterialOption `json:"options"`
}

type ProductionRequirements struct {
	MinimumOrderQuantity   int      `json:"minimum_order_quantity"`
	LeadTimeDays           int      `json:"lead_time_days"`
	CertificationsRequired []string `json:"certifications_required"`
	QualityStandards       []string `json:"quality_standards"`
}

// Insights - сырьё и требования к производству для отображения ремесленнику
type Insights struct {
	RawMaterials           []RawMaterial          `json:"raw_materials"`
	ProductionRequirements ProductionRequirements `json:"production_requirements"`
}

func (in Insights) Clone() Insights {
	out := in
	out.RawMaterials = make([]RawMaterial, len(in.RawMaterials))
	for i, rm := range in.RawMaterials {
		opts := make([]RawMaterialOption, len(rm.Options))
		for j, o := range rm.Options {
			if o.MarketRequirements != nil {
				reqs := make(map[string]MarketRequirement, len(o.MarketRequirements))
				for k, v := range o.MarketRequirements {
					reqs[k] = v
				}
				o.MarketRequirements = reqs
			}
			opts[j] = o
		}
		rm.Options = opts
		out.RawMaterials[i] = rm
	}
	out.ProductionRequirements.CertificationsRequired = append([]string(nil), in.ProductionRequirements.CertificationsRequired...)
	out.ProductionRequirements.QualityStandards = append([]string(nil), in.ProductionRequirements.QualityStandards...)
	return out
}

type IndustryInsights struct {
	Industry string
	Default  Insights
	Products []ProductInsights
}

type ProductInsights struct {
	Name     string
	Insights Insights
}

// InsightsTable - данные о сырье по отраслям
type InsightsTable struct {
	industries []IndustryInsights
}

func NewInsightsTable(industries []IndustryInsights) *InsightsTable {
	return &InsightsTable{industries: industries}
}

// Lookup возвращает данные товара, а если их нет - данные отрасли (fallback=true)
func (t *InsightsTable) Lookup(industry, product string) (insights *Insights, fallback bool, err error) {
	industry = strings.TrimSpace(industry)
	if industry == "" {
		return nil, false, apperr.Validation("industry", "industry parameter is required")
	}

	for _, ii := range t.industries {
		if !strings.EqualFold(ii.Industry, industry) {
			continue
		}
		product = strings.TrimSpace(product)
		if product != "" {
			for _, p := range ii.Products {
				if strings.EqualFold(p.Name, product) {
					out := p.Insights.Clone()
					return &out, false, nil
				}
			}
		}
		out := ii.Default.Clone()
		return &out, product != "", nil
	}
	return nil, false, apperr.NotFound("industry", "Invalid industry parameter: %s", industry)
}
