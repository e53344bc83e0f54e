package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"

	"artisan-backend/internal/app/config"
	"artisan-backend/internal/app/ds"
	"artisan-backend/internal/app/dto"
	"artisan-backend/internal/app/role"
)

// Ключи контекста gin
const (
	ContextArtisanID = "artisanID"
	ContextUserRole  = "userRole"
	ContextToken     = "jwt"
)

// Blacklist - отозванные токены (Redis или память процесса)
type Blacklist interface {
	WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error
	CheckJWTInBlacklist(ctx context.Context, jwtStr string) (bool, error)
}

type AuthMiddleware struct {
	Blacklist Blacklist
	Config    *config.Config
}

func NewAuthMiddleware(blacklist Blacklist, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		Blacklist: blacklist,
		Config:    cfg,
	}
}

func abort(gCtx *gin.Context, status int, message string) {
	gCtx.AbortWithStatusJSON(status, dto.ErrorResponse{Success: false, Error: message})
}

// WithAuthCheck middleware для проверки авторизации с ролями
func (am *AuthMiddleware) WithAuthCheck(assignedRoles ...role.Role) gin.HandlerFunc {
	return gin.HandlerFunc(func(gCtx *gin.Context) {
		jwtStr := BearerToken(gCtx)
		if jwtStr == "" {
			abort(gCtx, http.StatusUnauthorized, "authorization header missing")
			return
		}

		revoked, err := am.Blacklist.CheckJWTInBlacklist(gCtx.Request.Context(), jwtStr)
		if err != nil {
			logrus.Error("Error checking jwt blacklist: ", err)
			abort(gCtx, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}
		if revoked {
			abort(gCtx, http.StatusUnauthorized, "token revoked")
			return
		}

		claims, err := am.ParseToken(jwtStr)
		if err != nil {
			abort(gCtx, http.StatusUnauthorized, "invalid token")
			return
		}

		// Проверяем роли пользователя
		if len(assignedRoles) > 0 && !hasRequiredRole(claims.Role, assignedRoles) {
			abort(gCtx, http.StatusForbidden, "forbidden")
			return
		}

		gCtx.Set(ContextArtisanID, claims.ArtisanID)
		gCtx.Set(ContextUserRole, claims.Role)
		gCtx.Set(ContextToken, jwtStr)

		gCtx.Next()
	})
}

// WithOptionalAuth пропускает запрос без токена, но присланный токен проверяет так же, как WithAuthCheck
func (am *AuthMiddleware) WithOptionalAuth() gin.HandlerFunc {
	check := am.WithAuthCheck()
	return func(gCtx *gin.Context) {
		if BearerToken(gCtx) == "" {
			gCtx.Next()
			return
		}
		check(gCtx)
	}
}

// BearerToken возвращает токен из заголовка Authorization без префикса "Bearer "
func BearerToken(gCtx *gin.Context) string {
	return strings.TrimSpace(strings.TrimPrefix(gCtx.GetHeader("Authorization"), "Bearer "))
}

// IssueToken выдаёт подписанный токен для ремесленника или администратора
func (am *AuthMiddleware) IssueToken(artisanID string, r role.Role) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(am.Config.JWT.ExpiresIn)

	token := jwt.NewWithClaims(am.Config.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expiresAt.Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "artisan-onboarding",
		},
		ArtisanID: artisanID,
		Role:      r,
	})

	signed, err := token.SignedString([]byte(am.Config.JWT.Token))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken парсит и валидирует JWT токен
func (am *AuthMiddleware) ParseToken(tokenString string) (*ds.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != am.Config.JWT.SigningMethod.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(am.Config.JWT.Token), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// hasRequiredRole проверяет, есть ли у пользователя необходимая роль
func hasRequiredRole(userRole role.Role, requiredRoles []role.Role) bool {
	for _, requiredRole := range requiredRoles {
		if userRole == requiredRole {
			return true
		}
	}
	return false
}

// MemoryBlacklist - отозванные токены в памяти, когда Redis выключен
type MemoryBlacklist struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

func NewMemoryBlacklist() *MemoryBlacklist {
	return &MemoryBlacklist{tokens: make(map[string]time.Time)}
}

func (b *MemoryBlacklist) WriteJWTToBlacklist(_ context.Context, jwtStr string, jwtTTL time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	for t, exp := range b.tokens {
		if now.After(exp) {
			delete(b.tokens, t)
		}
	}
	b.tokens[jwtStr] = now.Add(jwtTTL)
	return nil
}

func (b *MemoryBlacklist) CheckJWTInBlacklist(_ context.Context, jwtStr string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	exp, ok := b.tokens[jwtStr]
	return ok && time.Now().Before(exp), nil
}
