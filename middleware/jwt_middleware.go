package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	authutils "job-portal-backend/lib/utils/auth-utils"
	"job-portal-backend/models"
	apimodels "job-portal-backend/models/api"
)

func AuthorizationRequired(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(secret),
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("Invalid or expired token"))
		},
	})
}

// OptionalAuthorization проверяет токен только если это включено в настройках
func OptionalAuthorization(required bool, secret string) fiber.Handler {
	if !required {
		return func(ctx *fiber.Ctx) error {
			return ctx.Next()
		}
	}
	return AuthorizationRequired(secret)
}

func GetUserEmail(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if email, ok := sub.(string); ok {
			return email
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}
