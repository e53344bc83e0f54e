package schemes

import (
	"math"
)

// Phase - этап программы поддержки: 1 - только право на участие, 2 - с влиянием на цену
type Phase int

const (
	Phase1 Phase = 1
	Phase2 Phase = 2
)

// Требования схем к регистрационным флагам ремесленника
const (
	RequiresUdyam = "udyam"
	RequiresTax   = "tax"
	RequiresGST   = "gst"
)

// Scheme - государственная программа поддержки
type Scheme struct {
	SchemeKey         string   `json:"scheme_key"`
	SchemeName        string   `json:"scheme_name"`
	Applicable        bool     `json:"applicable"`
	Benefit           string   `json:"benefit"`
	Phase             Phase    `json:"phase"`
	PricingAdjustment *float64 `json:"pricing_adjustment,omitempty"`
	Requires          []string `json:"requires,omitempty"`
}

// Flags - регистрационные флаги, из которых выводится применимость схем
type Flags struct {
	Udyam bool
	Tax   bool
	GST   bool
}

func (s Scheme) Clone() Scheme {
	out := s
	out.Requires = append([]string(nil), s.Requires...)
	if s.PricingAdjustment != nil {
		adj := *s.PricingAdjustment
		out.PricingAdjustment = &adj
	}
	return out
}

// CloneAll копирует список схем
func CloneAll(list []Scheme) []Scheme {
	if list == nil {
		return nil
	}
	out := make([]Scheme, len(list))
	for i, s := range list {
		out[i] = s.Clone()
	}
	return out
}

func (s Scheme) satisfiedBy(f Flags) bool {
	for _, req := range s.Requires {
		switch req {
		case RequiresUdyam:
			if !f.Udyam {
				return false
			}
		case RequiresTax:
			if !f.Tax {
				return false
			}
		case RequiresGST:
			if !f.GST {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Catalog - справочник схем обоих этапов в порядке фикстуры
type Catalog struct {
	phase1 []Scheme
	phase2 []Scheme
}

func NewCatalog(phase1, phase2 []Scheme) *Catalog {
	c := &Catalog{
		phase1: CloneAll(phase1),
		phase2: CloneAll(phase2),
	}
	for i := range c.phase1 {
		c.phase1[i].Phase = Phase1
		c.phase1[i].PricingAdjustment = nil
	}
	for i := range c.phase2 {
		c.phase2[i].Phase = Phase2
	}
	return c
}

func (c *Catalog) Phase1() []Scheme {
	return CloneAll(c.phase1)
}

func (c *Catalog) Phase2() []Scheme {
	return CloneAll(c.phase2)
}

// Phase2Scheme ищет схему этапа 2 по ключу
func (c *Catalog) Phase2Scheme(key string) (Scheme, bool) {
	for _, s := range c.phase2 {
		if s.SchemeKey == key {
			return s.Clone(), true
		}
	}
	return Scheme{}, false
}

// EvaluatePhase1 выводит применимость схем этапа 1 из регистрационных флагов.
// Схема без требований не применима: право на неё не подтверждено ничем.
func (c *Catalog) EvaluatePhase1(f Flags) []Scheme {
	out := c.Phase1()
	for i := range out {
		out[i].Applicable = len(out[i].Requires) > 0 && out[i].satisfiedBy(f)
	}
	return out
}

// ApplyEligibility пересчитывает применимость схем этапа 2 для конкретного ремесленника:
// схема остаётся применимой, только если она применима по данным рынка и требования выполнены
func ApplyEligibility(list []Scheme, f Flags) []Scheme {
	out := CloneAll(list)
	for i := range out {
		out[i].Applicable = out[i].Applicable && out[i].satisfiedBy(f)
	}
	return out
}

// Applicable возвращает только применимые схемы
func Applicable(list []Scheme) []Scheme {
	out := make([]Scheme, 0, len(list))
	for _, s := range list {
		if s.Applicable {
			out = append(out, s.Clone())
		}
	}
	return out
}

// TotalAdjustment - сумма процентных надбавок применимых схем
func TotalAdjustment(list []Scheme) float64 {
	var total float64
	for _, s := range list {
		if s.Applicable && s.PricingAdjustment != nil {
			total += *s.PricingAdjustment
		}
	}
	return total
}

// AdjustedPrice применяет надбавки применимых схем к цене, округляя до копеек
func AdjustedPrice(price float64, list []Scheme) float64 {
	adjusted := price * (1 + TotalAdjustment(list)/100)
	return math.Round(adjusted*100) / 100
}
