package authhandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	usersstore "job-portal-backend/lib/users/store"
	apperrors "job-portal-backend/lib/utils/app-errors"
	authutils "job-portal-backend/lib/utils/auth-utils"
	authapimodels "job-portal-backend/models/api/auth"
	profileapimodels "job-portal-backend/models/api/profile"
	dbmodels "job-portal-backend/models/db"
)

type Provider interface {
	Signup(req authapimodels.SignupRequest) (profileapimodels.UserView, error)
	Login(req authapimodels.LoginRequest) (authapimodels.LoginResponse, error)
}

func NewInstance(usersStore usersstore.Provider, jwtSecret string, jwtExpireInSec int) Provider {
	return &impl{
		usersStore:     usersStore,
		jwtSecret:      jwtSecret,
		jwtExpireInSec: jwtExpireInSec,
	}
}

type impl struct {
	usersStore     usersstore.Provider
	jwtSecret      string
	jwtExpireInSec int
}

func (i impl) Signup(req authapimodels.SignupRequest) (profileapimodels.UserView, error) {
	logger := log.WithField("email", req.Email)
	if err := req.Validate(); err != nil {
		return profileapimodels.UserView{}, apperrors.Validation(err.Error())
	}
	exist, err := i.usersStore.ExistByEmail(req.Email)
	if err != nil {
		return profileapimodels.UserView{}, apperrors.Upstream(err, "ошибка проверки пользователя")
	}
	if exist {
		return profileapimodels.UserView{}, apperrors.Duplicate("User already exists")
	}
	hash, err := authutils.HashPassword(req.Password)
	if err != nil {
		return profileapimodels.UserView{}, apperrors.Upstream(err, "ошибка регистрации")
	}
	rec := dbmodels.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     req.Role,
	}
	if req.Role.IsRecruiter() {
		rec.CompanyName = req.CompanyName
	}
	_, err = i.usersStore.Create(rec)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return profileapimodels.UserView{}, apperrors.Duplicate("User already exists")
		}
		return profileapimodels.UserView{}, apperrors.Upstream(err, "ошибка регистрации")
	}
	logger.WithField("role", req.Role).Info("пользователь зарегистрирован")
	return profileapimodels.UserConvert(rec), nil
}

func (i impl) Login(req authapimodels.LoginRequest) (authapimodels.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return authapimodels.LoginResponse{}, apperrors.Validation(err.Error())
	}
	user, err := i.usersStore.GetByEmail(req.Email)
	if err != nil {
		return authapimodels.LoginResponse{}, apperrors.Upstream(err, "ошибка получения пользователя")
	}
	if user == nil {
		return authapimodels.LoginResponse{}, apperrors.Unauthorized("User not found")
	}
	if !authutils.CheckPassword(user.Password, req.Password) {
		return authapimodels.LoginResponse{}, apperrors.Unauthorized("Invalid credentials")
	}
	if user.Role != req.Role {
		return authapimodels.LoginResponse{}, apperrors.Forbidden(fmt.Sprintf("This account is registered as %v. Please login using correct option.", user.Role))
	}
	token, err := authutils.GetToken(user.Email, user.Name, user.Role, i.jwtSecret, i.jwtExpireInSec)
	if err != nil {
		return authapimodels.LoginResponse{}, apperrors.Upstream(err, "ошибка формирования токена")
	}
	return authapimodels.LoginResponse{
		Role:  user.Role,
		Email: user.Email,
		Token: token,
	}, nil
}
