package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"artisan-backend/internal/app/apperr"
	"artisan-backend/internal/app/configurator"
	"artisan-backend/internal/app/ds"
	"artisan-backend/internal/app/dto"
	"artisan-backend/internal/app/role"
	"artisan-backend/internal/app/schemes"
	"artisan-backend/internal/app/validation"
	"artisan-backend/internal/app/wizard"
)

// Варианты упаковки по отраслям
var packagingOptions = map[string][]string{
	"leather": {"Box", "Bag", "Custom"},
	"carpets": {"Roll", "Box", "Custom"},
}

// SubmitProduct отправляет сконфигурированный товар на рынок
// @Summary Отправка товара
// @Description Сервер заново получает аналитику рынка, считает цену и применимые схемы этапа 2,
// @Description проверяет конфигурацию и производственные данные и сохраняет отправку.
// @Tags Submissions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.SubmitProductRequest true "Товар, производство и рынок"
// @Success 201 {object} dto.SubmitProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/submit-product [post]
func (h *Handler) SubmitProduct(c *gin.Context) {
	artisanID, _, err := currentUser(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req dto.SubmitProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	artisan, err := h.Artisans.Get(ctx, artisanID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	pd := req.ProductData
	product, err := h.Fixtures.Products.Find(pd.Industry, pd.Product)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !strings.EqualFold(product.Name, pd.Product) {
		h.handleError(c, apperr.NotFound("product", "product %s not found for industry %s", pd.Product, pd.Industry))
		return
	}

	rec, err := h.Resolver.Resolve(product.Industry, product.Name, req.Market)
	if err != nil {
		h.intelligenceError(c, err)
		return
	}
	rec.Phase2Schemes = schemes.ApplyEligibility(rec.Phase2Schemes, artisan.Registration.Flags())

	tier := pd.Tier
	if tier == "" {
		tier = rec.PriceTier
	}

	values := configurator.NormalizeValues(product.Fields, pd.Values)
	evalValues := withProductContext(product, values)
	if fieldErrors := configurator.ValidateVisible(product.Fields, evalValues, tier); len(fieldErrors) > 0 {
		resp := dto.ErrorResponse{Success: false, Error: fieldErrors[0].Message}
		for _, fe := range fieldErrors {
			resp.Errors = append(resp.Errors, validation.FieldError{Field: fe.FieldID, Message: fe.Message})
		}
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	if err := checkPackaging(product.Industry, req.ProductionInputs.Packaging); err != nil {
		h.handleError(c, err)
		return
	}

	applied := schemes.Applicable(rec.Phase2Schemes)
	submission := &ds.Submission{
		SubmissionID: "submission-" + uuid.NewString(),
		ArtisanID:    artisanID,
		Market:       rec.Market,
		Status:       ds.StatusSubmitted,
		ProductData: ds.ProductData{
			Industry: product.Industry,
			Product:  product.Name,
			Tier:     tier,
			Values:   values,
		},
		ProductionInputs: ds.ProductionInputs{
			Quantity:  req.ProductionInputs.Quantity,
			Packaging: req.ProductionInputs.Packaging,
			Notes:     req.ProductionInputs.Notes,
		},
		MarketIntelligence: rec,
		Pricing: ds.Pricing{
			BasePrice:      rec.BasePrice,
			SuggestedPrice: rec.SuggestedPrice,
			AdjustedPrice:  adjustedPrice(rec),
			Tier:           rec.PriceTier,
			AdjustmentPct:  schemes.TotalAdjustment(applied),
		},
		SchemesApplied: applied,
		CreatedAt:      time.Now().UTC(),
	}

	if h.Archive != nil {
		name := fmt.Sprintf("submissions/%s/%s.json", artisanID, submission.SubmissionID)
		if err := h.Archive.PutJSON(ctx, name, submission); err != nil {
			// отправка не должна теряться из-за недоступного архива
			logrus.WithField("submission_id", submission.SubmissionID).Error("Error archiving submission: ", err)
		} else {
			submission.ArchiveObject = name
		}
	}

	if err := h.Submissions.Put(ctx, submission); err != nil {
		h.handleError(c, err)
		return
	}

	_, err = h.Wizard.Advance(ctx, artisanID, wizard.StepSubmitted, func(st *wizard.State) {
		st.Industry = product.Industry
		st.Product = product.Name
		st.Tier = tier
		st.Market = rec.Market
		st.FormValues = values
		inputs := submission.ProductionInputs
		st.ProductionInputs = &inputs
	})
	if err != nil {
		logrus.WithField("artisan_id", artisanID).Warn("failed to advance wizard: ", err)
	}

	logrus.WithFields(logrus.Fields{
		"submission_id": submission.SubmissionID,
		"artisan_id":    artisanID,
		"market":        submission.Market,
	}).Info("product submitted")

	c.JSON(http.StatusCreated, dto.SubmitProductResponse{
		Success:      true,
		SubmissionID: submission.SubmissionID,
		Message:      "Market-ready Product Submitted",
		Submission:   submission,
	})
}

func checkPackaging(industry, packaging string) error {
	options, ok := packagingOptions[strings.ToLower(industry)]
	if !ok {
		return nil
	}
	for _, o := range options {
		if strings.EqualFold(o, packaging) {
			return nil
		}
	}
	return apperr.Validation("packaging", "Packaging must be one of: %s", strings.Join(options, ", "))
}

// GetSubmissions возвращает отправки: администратору все, ремесленнику свои
// @Summary Список отправок
// @Tags Submissions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.SubmissionListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/submissions [get]
func (h *Handler) GetSubmissions(c *gin.Context) {
	artisanID, r, err := currentUser(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	owner := artisanID
	if r == role.Admin {
		owner = ""
	}

	submissions, err := h.Submissions.List(c.Request.Context(), owner)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SubmissionListResponse{Submissions: submissions, Total: len(submissions)})
}

// GetSubmission возвращает отправку и ссылку на её архивную копию
// @Summary Отправка товара
// @Tags Submissions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "ID отправки"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/submissions/{id} [get]
func (h *Handler) GetSubmission(c *gin.Context) {
	ctx := c.Request.Context()
	submission, err := h.Submissions.Get(ctx, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !canAccess(c, submission.ArtisanID) {
		h.errorResponse(c, http.StatusForbidden, "forbidden")
		return
	}

	resp := dto.SubmissionResponse{Submission: submission}
	if h.Archive != nil && submission.ArchiveObject != "" {
		url, err := h.Archive.GetFileURL(ctx, submission.ArchiveObject)
		if err != nil {
			logrus.Error("Error generating archive URL: ", err)
		} else {
			resp.ArchiveURL = url
		}
	}

	c.JSON(http.StatusOK, resp)
}
