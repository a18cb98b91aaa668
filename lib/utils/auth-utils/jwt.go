package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"job-portal-backend/models"
)

func GetToken(email, name string, role models.UserRole, secret string, expireInSec int) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name": name,
		"sub":  email,
		"role": string(role),
		"exp":  time.Now().Add(time.Second * time.Duration(expireInSec)).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}
