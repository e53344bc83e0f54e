package intelligence

import (
	"strings"

	"artisan-backend/internal/app/apperr"
	"artisan-backend/internal/app/configurator"
)

// Catalog - справочник товаров в порядке фикстуры
type Catalog struct {
	products []configurator.Product
}

func NewCatalog(products []configurator.Product) *Catalog {
	return &Catalog{products: products}
}

// Find возвращает товар по имени, если он принадлежит отрасли,
// иначе первый товар отрасли. Возвращается копия.
func (c *Catalog) Find(industry, name string) (*configurator.Product, error) {
	industry = strings.TrimSpace(industry)
	if industry == "" {
		return nil, apperr.Validation("industry", "industry parameter is required")
	}

	if name = strings.TrimSpace(name); name != "" {
		for _, p := range c.products {
			if strings.EqualFold(p.Name, name) && strings.EqualFold(p.Industry, industry) {
				out := p.Clone()
				return &out, nil
			}
		}
	}

	for _, p := range c.products {
		if strings.EqualFold(p.Industry, industry) {
			out := p.Clone()
			return &out, nil
		}
	}
	return nil, apperr.NotFound("product", "Product not found for this industry")
}

// List возвращает товары отрасли, пустая отрасль - все товары
func (c *Catalog) List(industry string) []configurator.Product {
	out := make([]configurator.Product, 0, len(c.products))
	for _, p := range c.products {
		if industry == "" || strings.EqualFold(p.Industry, industry) {
			out = append(out, p.Clone())
		}
	}
	return out
}
