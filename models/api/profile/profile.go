package profileapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

// UserView профиль пользователя, пароль не отдается никогда
type UserView struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        models.UserRole `json:"role"`
	CompanyName string          `json:"companyName,omitempty"`
	ProfilePic  string          `json:"profilePic,omitempty"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		Name:        rec.Name,
		Email:       rec.Email,
		Role:        rec.Role,
		CompanyName: rec.CompanyName,
		ProfilePic:  rec.ProfilePic,
	}
}

type StudentUpdateRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"` // пустой пароль не меняется
}

func (r StudentUpdateRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указана почта")
	}
	return nil
}

type RecruiterUpdateRequest struct {
	Name        string `json:"name"`
	Password    string `json:"password"`    // пустой пароль не меняется
	CompanyName string `json:"companyName"` // пустое название не меняется
}

func (r RecruiterUpdateRequest) Validate() error {
	return nil
}
