package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"artisan-backend/internal/app/apperr"
	"artisan-backend/internal/app/ds"
	"artisan-backend/internal/app/dto"
	"artisan-backend/internal/app/role"
	"artisan-backend/internal/app/wizard"
)

// Onboard регистрирует ремесленника
// @Summary Онбординг ремесленника
// @Description Регистрация, регистрационные флаги и банковские реквизиты одним запросом.
// @Description Возвращает профиль, схемы этапа 1 и токен для дальнейших шагов.
// @Tags Artisans
// @Accept json
// @Produce json
// @Param request body dto.OnboardRequest true "Данные онбординга"
// @Success 201 {object} dto.OnboardResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/onboard [post]
func (h *Handler) Onboard(c *gin.Context) {
	var req dto.OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	now := time.Now().UTC()
	artisan := &ds.Artisan{
		ArtisanID:        "artisan-" + uuid.NewString(),
		Type:             req.Type,
		LegalName:        req.LegalName,
		Industry:         req.Industry,
		SkillLevel:       req.SkillLevel,
		OnboardingStatus: ds.StatusPending,
		Registration:     toRegistration(req.Registration),
		Banking:          toBanking(req.Banking),
		Contact:          toContact(req.Contact),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if artisan.SkillLevel == "" {
		artisan.SkillLevel = "medium"
	}
	artisan.Phase1Schemes = h.Fixtures.Schemes.EvaluatePhase1(artisan.Registration.Flags())

	ctx := c.Request.Context()
	if err := h.Artisans.Put(ctx, artisan); err != nil {
		h.handleError(c, err)
		return
	}

	token, _, err := h.Auth.IssueToken(artisan.ArtisanID, role.Artisan)
	if err != nil {
		h.handleError(c, apperr.Unexpected(err))
		return
	}

	// мастер переходит к профилю, данные трёх первых шагов уже сохранены
	_, err = h.Wizard.Advance(ctx, artisan.ArtisanID, wizard.StepProfile, func(st *wizard.State) {
		st.Registration = &wizard.RegistrationData{
			Type:      artisan.Type,
			LegalName: artisan.LegalName,
			Industry:  artisan.Industry,
			Contact:   artisan.Contact,
		}
		reg := artisan.Registration
		st.Compliance = &reg
		banking := artisan.Banking
		st.Banking = &banking
		st.Industry = artisan.Industry
	})
	if err != nil {
		logrus.WithField("artisan_id", artisan.ArtisanID).Warn("failed to advance wizard: ", err)
	}

	logrus.WithFields(logrus.Fields{
		"artisan_id": artisan.ArtisanID,
		"industry":   artisan.Industry,
	}).Info("artisan onboarded")

	c.JSON(http.StatusCreated, dto.OnboardResponse{
		Success:       true,
		ArtisanID:     artisan.ArtisanID,
		Artisan:       artisan,
		Phase1Schemes: artisan.Phase1Schemes,
		Token:         token,
	})
}

// GetArtisans возвращает всех ремесленников
// @Summary Список ремесленников
// @Tags Artisans
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ArtisanListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/artisans [get]
func (h *Handler) GetArtisans(c *gin.Context) {
	artisans, err := h.Artisans.List(c.Request.Context(), "")
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ArtisanListResponse{Artisans: artisans, Total: len(artisans)})
}

// GetArtisan возвращает профиль ремесленника
// @Summary Профиль ремесленника
// @Tags Artisans
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "ID ремесленника"
// @Success 200 {object} dto.ArtisanResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/artisans/{id} [get]
func (h *Handler) GetArtisan(c *gin.Context) {
	id := c.Param("id")
	if !canAccess(c, id) {
		h.errorResponse(c, http.StatusForbidden, "forbidden")
		return
	}

	artisan, err := h.Artisans.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ArtisanResponse{Artisan: artisan})
}

// UpdateArtisan обновляет профиль ремесленника
// @Summary Обновление профиля
// @Description Меняются только переданные поля. При смене регистрации схемы этапа 1 пересчитываются.
// @Tags Artisans
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "ID ремесленника"
// @Param request body dto.UpdateArtisanRequest true "Изменяемые поля"
// @Success 200 {object} dto.ArtisanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/artisans/{id} [put]
func (h *Handler) UpdateArtisan(c *gin.Context) {
	id := c.Param("id")
	if !canAccess(c, id) {
		h.errorResponse(c, http.StatusForbidden, "forbidden")
		return
	}

	var req dto.UpdateArtisanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	artisan, err := h.Artisans.Get(ctx, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if req.LegalName != nil {
		artisan.LegalName = *req.LegalName
	}
	if req.SkillLevel != nil {
		artisan.SkillLevel = *req.SkillLevel
	}
	if req.Contact != nil {
		artisan.Contact = toContact(*req.Contact)
	}
	if req.Banking != nil {
		artisan.Banking = toBanking(*req.Banking)
	}
	if req.Registration != nil {
		artisan.Registration = toRegistration(*req.Registration)
		artisan.Phase1Schemes = h.Fixtures.Schemes.EvaluatePhase1(artisan.Registration.Flags())
	}
	artisan.UpdatedAt = time.Now().UTC()

	if err := h.Artisans.Put(ctx, artisan); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ArtisanResponse{Artisan: artisan})
}

func toRegistration(r dto.ComplianceRequest) ds.Registration {
	return ds.Registration{
		UdyamRegistered:    r.UdyamRegistered,
		RegistrationNumber: r.RegistrationNumber,
		TaxRegistered:      r.TaxRegistered,
		TaxID:              r.TaxID,
		GSTRegistered:      r.GSTRegistered,
		GSTID:              r.GSTID,
	}
}

// toBanking - реквизиты прошли проверку формата, но не подтверждены банком
func toBanking(b dto.BankingRequest) ds.Banking {
	return ds.Banking{
		AccountNumber: b.AccountNumber,
		BankName:      b.BankName,
		IFSC:          b.IFSC,
	}
}

func toContact(c dto.ContactRequest) ds.Contact {
	out := ds.Contact{Email: c.Email, Mobile: c.Mobile}
	if c.Address != nil {
		out.Address = &ds.Address{
			Street:  c.Address.Street,
			City:    c.Address.City,
			State:   c.Address.State,
			Zip:     c.Address.Zip,
			Country: c.Address.Country,
		}
	}
	return out
}
