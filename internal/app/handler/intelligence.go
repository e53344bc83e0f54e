package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"artisan-backend/internal/app/apperr"
	"artisan-backend/internal/app/dto"
	"artisan-backend/internal/app/intelligence"
	"artisan-backend/internal/app/schemes"
)

// GetProductIntelligence возвращает рыночную аналитику товара
// @Summary Рыночная аналитика
// @Description Данные рынка для отрасли и товара. Без market используется первый рынок отрасли
// @Description и дополнительно возвращается сводка по всем рынкам.
// @Description С artisan_id применимость схем этапа 2 пересчитывается по регистрации ремесленника.
// @Tags Intelligence
// @Produce json
// @Param industry query string true "Отрасль"
// @Param market query string false "Рынок"
// @Param product query string false "Товар"
// @Param artisan_id query string false "ID ремесленника, нужен токен владельца или администратора"
// @Success 200 {object} dto.IntelligenceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/product-intelligence [get]
func (h *Handler) GetProductIntelligence(c *gin.Context) {
	industry := c.Query("industry")
	product := c.Query("product")
	market := c.Query("market")

	rec, err := h.Resolver.Resolve(industry, product, market)
	if err != nil {
		h.intelligenceError(c, err)
		return
	}

	if artisanID := c.Query("artisan_id"); artisanID != "" {
		// регистрационные данные отдаются только владельцу или администратору
		if _, _, err := currentUser(c); err != nil {
			h.handleError(c, err)
			return
		}
		if !canAccess(c, artisanID) {
			h.errorResponse(c, http.StatusForbidden, "forbidden")
			return
		}
		artisan, err := h.Artisans.Get(c.Request.Context(), artisanID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		rec.Phase2Schemes = schemes.ApplyEligibility(rec.Phase2Schemes, artisan.Registration.Flags())
	}

	resp := dto.IntelligenceResponse{
		Success:      true,
		Intelligence: dto.IntelligenceView{Record: rec, AdjustedPrice: adjustedPrice(rec)},
	}

	if market == "" {
		all, err := h.Resolver.ResolveAll(industry, product)
		if err != nil {
			h.intelligenceError(c, err)
			return
		}
		resp.AllMarkets = make([]dto.MarketSummary, len(all))
		for i, r := range all {
			resp.AllMarkets[i] = dto.MarketSummary{
				Market:         r.Market,
				DemandIndex:    r.DemandIndex,
				Trend:          r.Trend,
				PriceTier:      r.PriceTier,
				SuggestedPrice: r.SuggestedPrice,
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

// intelligenceError - неизвестная отрасль это ошибка параметра запроса, а не отсутствие ресурса
func (h *Handler) intelligenceError(c *gin.Context, err error) {
	if apperr.Is(err, apperr.KindNotFound) && apperr.SubjectOf(err) == "industry" {
		h.errorResponse(c, http.StatusBadRequest, apperr.PublicMessage(err))
		return
	}
	h.handleError(c, err)
}

func adjustedPrice(rec *intelligence.Record) *float64 {
	if rec.SuggestedPrice == nil {
		return nil
	}
	price := schemes.AdjustedPrice(*rec.SuggestedPrice, rec.Phase2Schemes)
	return &price
}

// GetProductInsights возвращает данные о сырье и требованиях к производству
// @Summary Сырьё и требования к производству
// @Description Данные товара, а если их нет - данные отрасли с product_fallback=true
// @Tags Intelligence
// @Produce json
// @Param industry path string true "Отрасль"
// @Param product query string false "Товар"
// @Success 200 {object} dto.InsightsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/product-insights/{industry} [get]
func (h *Handler) GetProductInsights(c *gin.Context) {
	industry := c.Param("industry")
	product := c.Query("product")

	insights, fallback, err := h.Fixtures.Insights.Lookup(industry, product)
	if err != nil {
		h.intelligenceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.InsightsResponse{
		Success:         true,
		Industry:        industry,
		Product:         product,
		ProductFallback: fallback,
		Insights:        insights,
	})
}

// GetPhase1Schemes возвращает схемы этапа 1
// @Summary Схемы этапа 1
// @Description С флагами регистрации в запросе применимость вычисляется по ним
// @Tags Schemes
// @Produce json
// @Param udyam_registered query bool false "Зарегистрирован в Udyam"
// @Param gst_registered query bool false "Зарегистрирован в GST"
// @Param tax_registered query bool false "Есть налоговая регистрация"
// @Success 200 {object} dto.SchemeListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/schemes/phase1 [get]
func (h *Handler) GetPhase1Schemes(c *gin.Context) {
	list := h.Fixtures.Schemes.Phase1()

	if hasAnyQuery(c, "udyam_registered", "gst_registered", "tax_registered") {
		var flags schemes.Flags
		var err error
		if flags.Udyam, err = queryBool(c, "udyam_registered"); err != nil {
			h.handleError(c, err)
			return
		}
		if flags.GST, err = queryBool(c, "gst_registered"); err != nil {
			h.handleError(c, err)
			return
		}
		if flags.Tax, err = queryBool(c, "tax_registered"); err != nil {
			h.handleError(c, err)
			return
		}
		list = h.Fixtures.Schemes.EvaluatePhase1(flags)
	}

	c.JSON(http.StatusOK, dto.SchemeListResponse{Success: true, Phase: schemes.Phase1, Schemes: list})
}

// GetPhase2Schemes возвращает схемы этапа 2
// @Summary Схемы этапа 2
// @Tags Schemes
// @Produce json
// @Success 200 {object} dto.SchemeListResponse
// @Router /api/schemes/phase2 [get]
func (h *Handler) GetPhase2Schemes(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SchemeListResponse{
		Success: true,
		Phase:   schemes.Phase2,
		Schemes: h.Fixtures.Schemes.Phase2(),
	})
}

func hasAnyQuery(c *gin.Context, keys ...string) bool {
	for _, k := range keys {
		if _, ok := c.GetQuery(k); ok {
			return true
		}
	}
	return false
}

func queryBool(c *gin.Context, key string) (bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperr.Validation(key, "%s must be true or false", key)
	}
	return v, nil
}
