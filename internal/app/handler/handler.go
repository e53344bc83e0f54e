package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"artisan-backend/internal/app/apperr"
	"artisan-backend/internal/app/config"
	"artisan-backend/internal/app/ds"
	"artisan-backend/internal/app/dto"
	"artisan-backend/internal/app/fixtures"
	"artisan-backend/internal/app/intelligence"
	"artisan-backend/internal/app/middleware"
	"artisan-backend/internal/app/repository"
	"artisan-backend/internal/app/role"
	"artisan-backend/internal/app/validation"
	"artisan-backend/internal/app/wizard"
)

// Archiver - архив отправленных товаров (MinIO)
type Archiver interface {
	PutJSON(ctx context.Context, name string, v any) error
	GetFileURL(ctx context.Context, name string) (string, error)
}

// Handler содержит обработчики REST API
type Handler struct {
	Config      *config.Config
	Fixtures    *fixtures.Bundle
	Resolver    *intelligence.Resolver
	Artisans    repository.Store[ds.Artisan]
	Submissions repository.Store[ds.Submission]
	Wizard      *wizard.Manager
	Auth        *middleware.AuthMiddleware
	// Archive может быть nil - архив выключен
	Archive Archiver
}

func NewHandler(
	cfg *config.Config,
	bundle *fixtures.Bundle,
	artisans repository.Store[ds.Artisan],
	submissions repository.Store[ds.Submission],
	wizardManager *wizard.Manager,
	auth *middleware.AuthMiddleware,
	archive Archiver,
) *Handler {
	return &Handler{
		Config:      cfg,
		Fixtures:    bundle,
		Resolver:    intelligence.NewResolver(bundle.Intelligence),
		Artisans:    artisans,
		Submissions: submissions,
		Wizard:      wizardManager,
		Auth:        auth,
		Archive:     archive,
	}
}

// ============ Вспомогательные функции ============

func (h *Handler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// handleError переводит ошибку в HTTP ответ по её виду.
// Детали неожиданных ошибок пишутся в лог и не отдаются клиенту.
func (h *Handler) handleError(c *gin.Context, err error) {
	if apperr.KindOf(err) == apperr.KindUnexpected {
		logrus.WithField("path", c.FullPath()).Error("Unexpected error: ", err)
	}
	h.errorResponse(c, apperr.StatusOf(err), apperr.PublicMessage(err))
}

// bindError - ответ на ошибку разбора или проверки тела запроса
func (h *Handler) bindError(c *gin.Context, err error) {
	resp := dto.ErrorResponse{
		Success: false,
		Error:   "Invalid request body",
		Errors:  validation.Messages(err),
	}
	if len(resp.Errors) > 0 {
		resp.Error = resp.Errors[0].Message
	}
	c.JSON(http.StatusBadRequest, resp)
}

// currentUser возвращает artisan_id и роль из токена
func currentUser(c *gin.Context) (string, role.Role, error) {
	artisanID := c.GetString(middleware.ContextArtisanID)
	value, exists := c.Get(middleware.ContextUserRole)
	if !exists {
		return "", role.Artisan, apperr.Unauthorized("user not authenticated")
	}
	r, ok := value.(role.Role)
	if !ok {
		return "", role.Artisan, apperr.Unauthorized("invalid role in token")
	}
	if r == role.Artisan && artisanID == "" {
		return "", r, apperr.Unauthorized("token carries no artisan")
	}
	return artisanID, r, nil
}

// canAccess - администратор видит всё, ремесленник только своё
func canAccess(c *gin.Context, ownerID string) bool {
	artisanID, r, err := currentUser(c)
	if err != nil {
		return false
	}
	return r == role.Admin || artisanID == ownerID
}
