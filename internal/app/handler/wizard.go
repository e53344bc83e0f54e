package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artisan-backend/internal/app/dto"
	"artisan-backend/internal/app/wizard"
)

// GetWizard возвращает состояние мастера текущего ремесленника
// @Summary Состояние мастера
// @Description Без сохранённого состояния возвращается начальное: version 0, шаг register
// @Tags Wizard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.WizardResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/wizard [get]
func (h *Handler) GetWizard(c *gin.Context) {
	artisanID, _, err := currentUser(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	st, err := h.Wizard.Get(c.Request.Context(), artisanID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WizardResponse{State: st, Steps: wizard.Steps()})
}

// SaveWizard сохраняет состояние мастера
// @Summary Сохранение состояния мастера
// @Description version в теле должна совпадать с текущей, иначе 409.
// @Description Вперёд можно перейти только на следующий шаг, назад - на любой.
// @Tags Wizard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body wizard.State true "Состояние мастера"
// @Success 200 {object} dto.WizardResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/wizard [put]
func (h *Handler) SaveWizard(c *gin.Context) {
	artisanID, _, err := currentUser(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req wizard.State
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	st, err := h.Wizard.Save(c.Request.Context(), artisanID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WizardResponse{State: st, Steps: wizard.Steps()})
}
