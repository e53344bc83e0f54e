package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artisan-backend/internal/app/configurator"
	"artisan-backend/internal/app/dto"
)

// GetProducts возвращает список товаров
// @Summary Список товаров
// @Description Возвращает товары в порядке справочника, с фильтром по отрасли
// @Tags Products
// @Produce json
// @Param industry query string false "Отрасль"
// @Success 200 {object} dto.ProductListResponse
// @Router /api/products [get]
func (h *Handler) GetProducts(c *gin.Context) {
	products := h.Fixtures.Products.List(c.Query("industry"))

	resp := dto.ProductListResponse{
		Products: make([]dto.ProductSummary, len(products)),
		Total:    len(products),
	}
	for i, p := range products {
		resp.Products[i] = dto.ProductSummary{
			ProductID: p.ProductID,
			Name:      p.Name,
			Industry:  p.Industry,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// GetProduct возвращает определение товара с полями конфигурации
// @Summary Товар отрасли
// @Description Товар по имени, если он относится к отрасли, иначе первый товар отрасли
// @Tags Products
// @Produce json
// @Param industry path string true "Отрасль"
// @Param product query string false "Название товара"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{industry} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.Fixtures.Products.Find(c.Param("industry"), c.Query("product"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProductResponse{Success: true, Product: product})
}

// ConfigureProduct проверяет значения формы конфигурации
// @Summary Проверка конфигурации товара
// @Description Приводит значения к типам полей, возвращает видимые поля и ошибки по ним.
// @Description Если tier не указан, он берётся из аналитики рынка.
// @Tags Products
// @Accept json
// @Produce json
// @Param industry path string true "Отрасль"
// @Param request body dto.ConfigureRequest true "Товар, уровень и значения формы"
// @Success 200 {object} dto.ConfigureResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{industry}/configure [post]
func (h *Handler) ConfigureProduct(c *gin.Context) {
	var req dto.ConfigureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	industry := c.Param("industry")
	product, err := h.Fixtures.Products.Find(industry, req.Product)
	if err != nil {
		h.handleError(c, err)
		return
	}

	tier := req.Tier
	if tier == "" {
		rec, err := h.Resolver.Resolve(industry, product.Name, req.Market)
		if err != nil {
			h.handleError(c, err)
			return
		}
		tier = rec.PriceTier
	}

	values := configurator.NormalizeValues(product.Fields, req.Values)
	evalValues := withProductContext(product, values)
	fieldErrors := configurator.ValidateVisible(product.Fields, evalValues, tier)

	c.JSON(http.StatusOK, dto.ConfigureResponse{
		Success:       true,
		Valid:         len(fieldErrors) == 0,
		Product:       product.Name,
		Tier:          tier,
		Values:        values,
		VisibleFields: configurator.FilterVisible(product.Fields, evalValues, tier),
		Errors:        fieldErrors,
	})
}

// withProductContext добавляет к значениям формы то, что сервер знает о товаре сам.
// Условия полей могут зависеть от отрасли, и клиент не может её подменить.
func withProductContext(product *configurator.Product, values configurator.Values) configurator.Values {
	out := make(configurator.Values, len(values)+1)
	for k, v := range values {
		out[k] = v
	}
	out["industry"] = product.Industry
	return out
}
