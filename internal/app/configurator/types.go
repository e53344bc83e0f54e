package configurator

import "regexp"

// Tier - ценовой уровень конфигурации товара
type Tier string

const (
	TierPremium  Tier = "premium"
	TierStandard Tier = "standard"
)

func (t Tier) Valid() bool {
	return t == TierPremium || t == TierStandard
}

// FieldType - тип поля формы конфигурации
type FieldType string

const (
	TypeText     FieldType = "text"
	TypeNumber   FieldType = "number"
	TypeDropdown FieldType = "dropdown"
	TypeCheckbox FieldType = "checkbox"
	TypeRadio    FieldType = "radio"
	TypeColor    FieldType = "color"
)

func (t FieldType) Valid() bool {
	switch t {
	case TypeText, TypeNumber, TypeDropdown, TypeCheckbox, TypeRadio, TypeColor:
		return true
	}
	return false
}

// Values - текущие значения формы (field_id -> значение)
type Values map[string]any

type Validation struct {
	Mandatory bool     `json:"mandatory,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Regex     string   `json:"regex,omitempty"`

	pattern *regexp.Regexp
}

// Compile компилирует Regex один раз, при загрузке справочника
func (v *Validation) Compile() error {
	if v.Regex == "" {
		v.pattern = nil
		return nil
	}
	re, err := regexp.Compile(v.Regex)
	if err != nil {
		return err
	}
	v.pattern = re
	return nil
}

// Pattern возвращает скомпилированный Regex или nil
func (v *Validation) Pattern() *regexp.Regexp {
	return v.pattern
}

// Conditional - поле показывается только если значение DependsOn строго равно Value
type Conditional struct {
	DependsOn string `json:"depends_on,omitempty"`
	Value     any    `json:"value,omitempty"`
}

// Field - один настраиваемый атрибут товара
type Field struct {
	FieldID         string       `json:"field_id"`
	Type            FieldType    `json:"type"`
	Label           string       `json:"label"`
	Options         []string     `json:"options,omitempty"`
	Placeholder     string       `json:"placeholder,omitempty"`
	Validation      *Validation  `json:"validation,omitempty"`
	Conditional     *Conditional `json:"conditional,omitempty"`
	TierDependent   bool         `json:"tier_dependent,omitempty"`
	VisibleForTiers []Tier       `json:"visible_for_tiers,omitempty"`
}

type SubProduct struct {
	SubProductID      string    `json:"sub_product_id"`
	Name              string    `json:"name"`
	Tier              Tier      `json:"tier"`
	InputFields       []Field   `json:"input_fields,omitempty"`
	MarketPricepoints []float64 `json:"market_pricepoints,omitempty"`
	MarketDemand      []string  `json:"market_demand,omitempty"`
}

// Product - определение товара с полями конфигурации
type Product struct {
	ProductID   string       `json:"product_id"`
	Industry    string       `json:"industry"`
	Name        string       `json:"name"`
	Fields      []Field      `json:"fields"`
	SubProducts []SubProduct `json:"sub_products,omitempty"`
}

// Clone возвращает независимую копию поля
func (f Field) Clone() Field {
	out := f
	out.Options = append([]string(nil), f.Options...)
	out.VisibleForTiers = append([]Tier(nil), f.VisibleForTiers...)
	if f.Validation != nil {
		v := *f.Validation
		if f.Validation.Min != nil {
			lo := *f.Validation.Min
			v.Min = &lo
		}
		if f.Validation.Max != nil {
			hi := *f.Validation.Max
			v.Max = &hi
		}
		out.Validation = &v
	}
	if f.Conditional != nil {
		c := *f.Conditional
		out.Conditional = &c
	}
	return out
}

func cloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = f.Clone()
	}
	return out
}

// Clone возвращает независимую копию товара
func (p Product) Clone() Product {
	out := p
	out.Fields = cloneFields(p.Fields)
	if p.SubProducts != nil {
		out.SubProducts = make([]SubProduct, len(p.SubProducts))
		for i, sp := range p.SubProducts {
			sp.InputFields = cloneFields(sp.InputFields)
			sp.MarketPricepoints = append([]float64(nil), sp.MarketPricepoints...)
			sp.MarketDemand = append([]string(nil), sp.MarketDemand...)
			out.SubProducts[i] = sp
		}
	}
	return out
}
