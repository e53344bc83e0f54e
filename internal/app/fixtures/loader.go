package fixtures

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"artisan-backend/internal/app/configurator"
	"artisan-backend/internal/app/intelligence"
	"artisan-backend/internal/app/schemes"
)

// Bundle - все статические справочники, загруженные при старте.
// После загрузки только читается.
type Bundle struct {
	Products     *intelligence.Catalog
	Intelligence *intelligence.Table
	Insights     *intelligence.InsightsTable
	Schemes      *schemes.Catalog
}

// Load читает и проверяет все файлы фикстур.
// Порядок ключей в JSON сохраняется: первый рынок отрасли - рынок по умолчанию.
func Load(ctx context.Context, src Source) (*Bundle, error) {
	read := func(name string) ([]byte, error) {
		data, err := src.ReadFile(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if !gjson.ValidBytes(data) {
			return nil, fmt.Errorf("%s: malformed json", name)
		}
		return data, nil
	}

	raw, err := read(SchemesFile)
	if err != nil {
		return nil, err
	}
	catalog, err := ParseSchemes(raw)
	if err != nil {
		return nil, err
	}

	if raw, err = read(ProductsFile); err != nil {
		return nil, err
	}
	products, err := ParseProducts(raw)
	if err != nil {
		return nil, err
	}

	if raw, err = read(IntelligenceFile); err != nil {
		return nil, err
	}
	tables, err := ParseIntelligence(raw, catalog)
	if err != nil {
		return nil, err
	}

	if raw, err = read(InsightsFile); err != nil {
		return nil, err
	}
	insights, err := ParseInsights(raw)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"products":   len(products),
		"industries": len(tables),
		"phase1":     len(catalog.Phase1()),
		"phase2":     len(catalog.Phase2()),
	}).Info("fixtures loaded")

	return &Bundle{
		Products:     intelligence.NewCatalog(products),
		Intelligence: intelligence.NewTable(tables),
		Insights:     intelligence.NewInsightsTable(insights),
		Schemes:      catalog,
	}, nil
}

// forEachObject обходит ключи JSON-объекта в порядке документа
func forEachObject(res gjson.Result, what string, fn func(key string, value gjson.Result) error) error {
	if !res.IsObject() {
		return fmt.Errorf("%s: expected object", what)
	}
	var err error
	res.ForEach(func(k, v gjson.Result) bool {
		err = fn(k.String(), v)
		return err == nil
	})
	return err
}

func decode(v gjson.Result, dst any) error {
	return json.Unmarshal([]byte(v.Raw), dst)
}

// ParseProducts разбирает products.json: объект "имя товара" -> определение
func ParseProducts(data []byte) ([]configurator.Product, error) {
	var products []configurator.Product
	seen := make(map[string]bool)

	err := forEachObject(gjson.ParseBytes(data), ProductsFile, func(name string, v gjson.Result) error {
		var p configurator.Product
		if err := decode(v, &p); err != nil {
			return fmt.Errorf("product %q: %w", name, err)
		}
		if p.Name == "" {
			p.Name = name
		}
		if err := checkProduct(p); err != nil {
			return err
		}
		if seen[p.ProductID] {
			return fmt.Errorf("product %q: duplicate product_id %s", name, p.ProductID)
		}
		seen[p.ProductID] = true
		products = append(products, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

func checkProduct(p configurator.Product) error {
	if p.ProductID == "" || p.Industry == "" {
		return fmt.Errorf("product %q: product_id and industry are required", p.Name)
	}
	if err := checkFields(p.Name, p.Fields); err != nil {
		return err
	}
	for _, sp := range p.SubProducts {
		if !sp.Tier.Valid() {
			return fmt.Errorf("product %q: sub product %s has invalid tier %q", p.Name, sp.SubProductID, sp.Tier)
		}
		if err := checkFields(p.Name+"/"+sp.Name, sp.InputFields); err != nil {
			return err
		}
	}
	return nil
}

func checkFields(owner string, fields []configurator.Field) error {
	ids := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.FieldID == "" {
			return fmt.Errorf("product %q: field without field_id", owner)
		}
		if ids[f.FieldID] {
			return fmt.Errorf("product %q: duplicate field_id %s", owner, f.FieldID)
		}
		ids[f.FieldID] = true

		if !f.Type.Valid() {
			return fmt.Errorf("product %q: field %s has unknown type %q", owner, f.FieldID, f.Type)
		}
		for _, t := range f.VisibleForTiers {
			if !t.Valid() {
				return fmt.Errorf("product %q: field %s has unknown tier %q", owner, f.FieldID, t)
			}
		}
		if f.Validation != nil {
			if err := f.Validation.Compile(); err != nil {
				return fmt.Errorf("product %q: field %s: %w", owner, f.FieldID, err)
			}
		}
	}
	return nil
}

// ParseSchemes разбирает schemes.json: {"phase1": [...], "phase2": [...]}
func ParseSchemes(data []byte) (*schemes.Catalog, error) {
	var doc struct {
		Phase1 []schemes.Scheme `json:"phase1"`
		Phase2 []schemes.Scheme `json:"phase2"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", SchemesFile, err)
	}

	for _, list := range [][]schemes.Scheme{doc.Phase1, doc.Phase2} {
		keys := make(map[string]bool, len(list))
		for _, s := range list {
			if s.SchemeKey == "" {
				return nil, fmt.Errorf("%s: scheme without scheme_key", SchemesFile)
			}
			if keys[s.SchemeKey] {
				return nil, fmt.Errorf("%s: duplicate scheme_key %s", SchemesFile, s.SchemeKey)
			}
			keys[s.SchemeKey] = true
			for _, req := range s.Requires {
				if req != schemes.RequiresUdyam && req != schemes.RequiresTax && req != schemes.RequiresGST {
					return nil, fmt.Errorf("%s: scheme %s has unknown requirement %q", SchemesFile, s.SchemeKey, req)
				}
			}
		}
	}
	return schemes.NewCatalog(doc.Phase1, doc.Phase2), nil
}

// ParseIntelligence разбирает market-intelligence.json.
// Схемы этапа 2 в записях рынков ссылаются на справочник по scheme_key.
func ParseIntelligence(data []byte, catalog *schemes.Catalog) ([]intelligence.IndustryTable, error) {
	var tables []intelligence.IndustryTable

	err := forEachObject(gjson.ParseBytes(data), IntelligenceFile, func(industry string, v gjson.Result) error {
		it := intelligence.IndustryTable{
			Industry:       industry,
			DefaultProduct: v.Get("default_product").String(),
		}

		markets, err := parseMarkets(v.Get("markets"), industry, true, catalog)
		if err != nil {
			return err
		}
		it.Markets = markets

		if products := v.Get("products"); products.Exists() {
			err = forEachObject(products, industry+" products", func(name string, pv gjson.Result) error {
				overrides, err := parseMarkets(pv, industry+"/"+name, false, catalog)
				if err != nil {
					return err
				}
				it.Products = append(it.Products, intelligence.ProductEntry{Name: name, Markets: overrides})
				return nil
			})
			if err != nil {
				return err
			}
		}

		tables = append(tables, it)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// parseMarkets разбирает объект "рынок" -> данные; full - запись отрасли, все поля обязательны
func parseMarkets(res gjson.Result, owner string, full bool, catalog *schemes.Catalog) ([]intelligence.MarketEntry, error) {
	if !res.Exists() {
		return nil, nil
	}

	var out []intelligence.MarketEntry
	err := forEachObject(res, owner+" markets", func(market string, v gjson.Result) error {
		var d intelligence.MarketData
		if err := decode(v, &d); err != nil {
			return fmt.Errorf("%s/%s: %w", owner, market, err)
		}
		if err := checkMarket(d, full); err != nil {
			return fmt.Errorf("%s/%s: %w", owner, market, err)
		}
		if d.Phase2Schemes != nil {
			resolved, err := resolveSchemes(d.Phase2Schemes, catalog)
			if err != nil {
				return fmt.Errorf("%s/%s: %w", owner, market, err)
			}
			d.Phase2Schemes = resolved
		}
		out = append(out, intelligence.MarketEntry{Market: market, Data: d})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func checkMarket(d intelligence.MarketData, full bool) error {
	if full && (d.DemandIndex == "" || d.Trend == "" || d.PriceTier == "") {
		return fmt.Errorf("demand_index, trend and price_tier are required")
	}
	switch d.DemandIndex {
	case "", intelligence.DemandHigh, intelligence.DemandMedium, intelligence.DemandLow:
	default:
		return fmt.Errorf("unknown demand_index %q", d.DemandIndex)
	}
	switch d.Trend {
	case "", intelligence.TrendRising, intelligence.TrendStable, intelligence.TrendDeclining:
	default:
		return fmt.Errorf("unknown trend %q", d.Trend)
	}
	if d.PriceTier != "" && !d.PriceTier.Valid() {
		return fmt.Errorf("unknown price_tier %q", d.PriceTier)
	}
	return nil
}

// resolveSchemes дополняет ссылки на схемы данными справочника.
// Флаг applicable и надбавка берутся из записи рынка.
func resolveSchemes(refs []schemes.Scheme, catalog *schemes.Catalog) ([]schemes.Scheme, error) {
	out := make([]schemes.Scheme, 0, len(refs))
	for _, ref := range refs {
		s, ok := catalog.Phase2Scheme(ref.SchemeKey)
		if !ok {
			return nil, fmt.Errorf("unknown phase 2 scheme %q", ref.SchemeKey)
		}
		s.Applicable = ref.Applicable
		if ref.PricingAdjustment != nil {
			adj := *ref.PricingAdjustment
			s.PricingAdjustment = &adj
		}
		out = append(out, s)
	}
	return out, nil
}

// ParseInsights разбирает product-insights.json: данные отрасли и, опционально, товаров
func ParseInsights(data []byte) ([]intelligence.IndustryInsights, error) {
	var out []intelligence.IndustryInsights

	err := forEachObject(gjson.ParseBytes(data), InsightsFile, func(industry string, v gjson.Result) error {
		ii := intelligence.IndustryInsights{Industry: industry}
		if err := decode(v, &ii.Default); err != nil {
			return fmt.Errorf("%s insights: %w", industry, err)
		}

		if products := v.Get("products"); products.Exists() {
			err := forEachObject(products, industry+" insights products", func(name string, pv gjson.Result) error {
				var in intelligence.Insights
				if err := decode(pv, &in); err != nil {
					return fmt.Errorf("%s/%s insights: %w", industry, name, err)
				}
				ii.Products = append(ii.Products, intelligence.ProductInsights{Name: name, Insights: in})
				return nil
			})
			if err != nil {
				return err
			}
		}

		out = append(out, ii)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
