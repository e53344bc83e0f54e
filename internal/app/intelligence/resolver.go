package intelligence

import (
	"strings"

	"artisan-backend/internal/app/apperr"
	"artisan-backend/internal/app/schemes"
)

// Table - таблицы аналитики всех отраслей, только для чтения после загрузки
type Table struct {
	industries []IndustryTable
}

func NewTable(industries []IndustryTable) *Table {
	return &Table{industries: industries}
}

func (t *Table) Industries() []string {
	out := make([]string, 0, len(t.industries))
	for _, it := range t.industries {
		out = append(out, it.Industry)
	}
	return out
}

func (t *Table) industry(name string) (*IndustryTable, bool) {
	for i := range t.industries {
		if strings.EqualFold(t.industries[i].Industry, name) {
			return &t.industries[i], true
		}
	}
	return nil, false
}

// Resolver разрешает рыночную аналитику из статических таблиц.
// Не имеет состояния кроме таблицы, поэтому безопасен для параллельных запросов.
type Resolver struct {
	table *Table
}

func NewResolver(t *Table) *Resolver {
	return &Resolver{table: t}
}

func (r *Resolver) Industries() []string {
	return r.table.Industries()
}

// Resolve возвращает аналитику для отрасли, товара и рынка.
// Пустой market - рынок по умолчанию (первый в таблице отрасли).
// Если для товара нет собственной записи, используются данные отрасли и выставляется ProductFallback.
func (r *Resolver) Resolve(industry, product, market string) (*Record, error) {
	industry = strings.TrimSpace(industry)
	if industry == "" {
		return nil, apperr.Validation("industry", "industry parameter is required")
	}

	it, ok := r.table.industry(industry)
	if !ok {
		return nil, apperr.NotFound("industry", "Invalid industry parameter: %s", industry)
	}
	if len(it.Markets) == 0 {
		return nil, apperr.Empty("market", "no market intelligence available for industry %s", industry)
	}

	entry := &it.Markets[0]
	if market = strings.TrimSpace(market); market != "" {
		entry = findMarket(it.Markets, market)
		if entry == nil {
			return nil, apperr.NotFound("market", "market %s not found for industry %s", market, industry)
		}
	}

	productName := strings.TrimSpace(product)
	if productName == "" {
		productName = it.DefaultProduct
	}

	rec := &Record{
		Industry:        it.Industry,
		Product:         productName,
		Market:          entry.Market,
		EligibleMarkets: marketNames(it.Markets),
	}
	apply(rec, entry.Data)

	override, found := findProductMarket(it, productName, entry.Market)
	switch {
	case found && override != nil:
		apply(rec, *override)
	case !found:
		// у товара нет собственной записи: явно отмечаем возврат к данным отрасли.
		// Данные отрасли описывают товар по умолчанию, для него это не считается возвратом.
		rec.ProductFallback = !strings.EqualFold(productName, it.DefaultProduct)
	}

	if rec.Phase2Schemes == nil {
		rec.Phase2Schemes = []schemes.Scheme{}
	}
	return rec, nil
}

// ResolveAll разрешает аналитику по всем рынкам отрасли в порядке таблицы
func (r *Resolver) ResolveAll(industry, product string) ([]*Record, error) {
	first, err := r.Resolve(industry, product, "")
	if err != nil {
		return nil, err
	}

	out := make([]*Record, 0, len(first.EligibleMarkets))
	out = append(out, first)
	for _, m := range first.EligibleMarkets[1:] {
		rec, err := r.Resolve(industry, product, m)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// apply копирует заданные поля MarketData в запись
func apply(rec *Record, d MarketData) {
	if d.DemandIndex != "" {
		rec.DemandIndex = d.DemandIndex
	}
	if d.Trend != "" {
		rec.Trend = d.Trend
	}
	if d.PriceTier != "" {
		rec.PriceTier = d.PriceTier
	}
	if d.BasePrice != nil {
		rec.BasePrice = floatPtr(d.BasePrice)
	}
	if d.SuggestedPrice != nil {
		rec.SuggestedPrice = floatPtr(d.SuggestedPrice)
	}
	if d.TrendData != nil {
		rec.TrendData = append([]TrendPoint(nil), d.TrendData...)
	}
	if d.Phase2Schemes != nil {
		rec.Phase2Schemes = schemes.CloneAll(d.Phase2Schemes)
	}
}

func findMarket(entries []MarketEntry, market string) *MarketEntry {
	for i := range entries {
		if strings.EqualFold(entries[i].Market, market) {
			return &entries[i]
		}
	}
	return nil
}

// findProductMarket ищет запись товара; found=false если у товара нет записи вообще,
// override=nil если запись есть, но для этого рынка переопределений нет
func findProductMarket(it *IndustryTable, product, market string) (override *MarketData, found bool) {
	for i := range it.Products {
		p := &it.Products[i]
		if !strings.EqualFold(p.Name, product) {
			continue
		}
		if m := findMarket(p.Markets, market); m != nil {
			return &m.Data, true
		}
		return nil, true
	}
	return nil, false
}

func marketNames(entries []MarketEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Market
	}
	return out
}
