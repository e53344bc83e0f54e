package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"artisan-backend/internal/app/apperr"
	"artisan-backend/internal/app/dto"
	"artisan-backend/internal/app/middleware"
	"artisan-backend/internal/app/role"
)

// Login выдаёт токен ремесленнику
// @Summary Вход ремесленника
// @Description Токен выдаётся по ID ремесленника и мобильному номеру из профиля
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "ID и мобильный номер"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	artisan, err := h.Artisans.Get(c.Request.Context(), req.ArtisanID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			h.errorResponse(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.handleError(c, err)
		return
	}
	if artisan.Contact.Mobile != req.Mobile {
		h.errorResponse(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	h.issueToken(c, artisan.ArtisanID, role.Artisan)
}

// AdminLogin выдаёт токен администратора
// @Summary Вход администратора
// @Description Работает только если в конфигурации задан admin.api_key
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "API ключ"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/admin [post]
func (h *Handler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	key := h.Config.Admin.APIKey
	if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(req.APIKey)) != 1 {
		h.errorResponse(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	h.issueToken(c, "", role.Admin)
}

func (h *Handler) issueToken(c *gin.Context, artisanID string, r role.Role) {
	token, expiresAt, err := h.Auth.IssueToken(artisanID, r)
	if err != nil {
		h.handleError(c, apperr.Unexpected(err))
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	})
}

// Logout отзывает текущий токен до истечения его срока
// @Summary Выход
// @Tags Auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	jwtStr := c.GetString(middleware.ContextToken)
	claims, err := h.Auth.ParseToken(jwtStr)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "invalid token")
		return
	}

	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if err := h.Auth.Blacklist.WriteJWTToBlacklist(c.Request.Context(), jwtStr, ttl); err != nil {
		h.handleError(c, apperr.Unexpected(err))
		return
	}

	logrus.WithField("artisan_id", claims.ArtisanID).Info("token revoked")
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "logged out"})
}
