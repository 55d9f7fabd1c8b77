package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/Osland07/tensitrack/internals/configs"
	userModel "github.com/Osland07/tensitrack/internals/features/users/user/model"
)

const accessTTLDefault = 24 * time.Hour

// GenerateAccessToken membuat JWT HS256 berisi user_id + roles
// (dibaca AuthMiddleware dan RequirePermission).
func GenerateAccessToken(user *userModel.UserModel) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}

	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.Name)
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"name":    user.Name,
		"roles":   roles,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTTLDefault).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
