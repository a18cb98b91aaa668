package authapimodels

import (
	"net/mail"
	"strings"

	"github.com/pkg/errors"
	"job-portal-backend/models"
)

type SignupRequest struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	Role        models.UserRole `json:"role"`        // student/recruiter
	CompanyName string          `json:"companyName"` // только для рекрутера
}

func (r SignupRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано имя")
	}
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	if !r.Role.IsValid() {
		return errors.New("некорректная роль пользователя")
	}
	return nil
}

type LoginRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

func (r LoginRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	if !r.Role.IsValid() {
		return errors.New("некорректная роль пользователя")
	}
	return nil
}

type LoginResponse struct {
	Role  models.UserRole `json:"role"`
	Email string          `json:"email"`
	Token string          `json:"token"`
}
