package ds

import (
	"artisan-backend/internal/app/role"

	"github.com/golang-jwt/jwt"
)

type JWTClaims struct {
	jwt.StandardClaims
	ArtisanID string    `json:"artisan_id"`
	Role      role.Role `json:"role"`
}
