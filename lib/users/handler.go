package usershandler

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
	applicationsstore "job-portal-backend/lib/applications/store"
	filestorage "job-portal-backend/lib/file-storage"
	jobsstore "job-portal-backend/lib/jobs/store"
	usersstore "job-portal-backend/lib/users/store"
	apperrors "job-portal-backend/lib/utils/app-errors"
	authutils "job-portal-backend/lib/utils/auth-utils"
	"job-portal-backend/models"
	profileapimodels "job-portal-backend/models/api/profile"
	dbmodels "job-portal-backend/models/db"
)

type Provider interface {
	Get(email string) (profileapimodels.UserView, error)
	UpdateStudent(req profileapimodels.StudentUpdateRequest) (profileapimodels.UserView, error)
	UpdateRecruiter(email string, req profileapimodels.RecruiterUpdateRequest) (profileapimodels.UserView, error)
	// DeleteAccount удаляет пользователя и связанные с ним данные по его роли
	DeleteAccount(email string) error
	UploadPicture(ctx context.Context, email string, file models.File) (string, error)
}

func NewInstance(
	store usersstore.Provider,
	applicationsStore applicationsstore.Provider,
	jobsStore jobsstore.Provider,
	files filestorage.Provider,
) Provider {
	return &impl{
		store:             store,
		applicationsStore: applicationsStore,
		jobsStore:         jobsStore,
		files:             files,
	}
}

type impl struct {
	store             usersstore.Provider
	applicationsStore applicationsstore.Provider
	jobsStore         jobsstore.Provider
	files             filestorage.Provider
}

func (i impl) getUser(email string) (*dbmodels.User, error) {
	rec, err := i.store.GetByEmail(email)
	if err != nil {
		return nil, apperrors.Upstream(err, "ошибка получения пользователя")
	}
	if rec == nil {
		return nil, apperrors.NotFound("пользователь не найден")
	}
	return rec, nil
}

func (i impl) Get(email string) (profileapimodels.UserView, error) {
	rec, err := i.getUser(email)
	if err != nil {
		return profileapimodels.UserView{}, err
	}
	return profileapimodels.UserConvert(*rec), nil
}

func (i impl) UpdateStudent(req profileapimodels.StudentUpdateRequest) (profileapimodels.UserView, error) {
	if err := req.Validate(); err != nil {
		return profileapimodels.UserView{}, apperrors.Validation(err.Error())
	}
	updMap := map[string]interface{}{}
	if strings.TrimSpace(req.Name) != "" {
		updMap["name"] = req.Name
	}
	return i.update(req.Email, updMap, req.Password)
}

func (i impl) UpdateRecruiter(email string, req profileapimodels.RecruiterUpdateRequest) (profileapimodels.UserView, error) {
	if err := req.Validate(); err != nil {
		return profileapimodels.UserView{}, apperrors.Validation(err.Error())
	}
	updMap := map[string]interface{}{}
	if strings.TrimSpace(req.Name) != "" {
		updMap["name"] = req.Name
	}
	if strings.TrimSpace(req.CompanyName) != "" {
		updMap["company_name"] = req.CompanyName
	}
	return i.update(email, updMap, req.Password)
}

func (i impl) update(email string, updMap map[string]interface{}, password string) (profileapimodels.UserView, error) {
	if _, err := i.getUser(email); err != nil {
		return profileapimodels.UserView{}, err
	}
	if password != "" {
		hash, err := authutils.HashPassword(password)
		if err != nil {
			return profileapimodels.UserView{}, apperrors.Upstream(err, "ошибка смены пароля")
		}
		updMap["password"] = hash
	}
	if err := i.store.Update(email, updMap); err != nil {
		return profileapimodels.UserView{}, apperrors.Upstream(err, "ошибка обновления профиля")
	}
	return i.Get(email)
}

func (i impl) DeleteAccount(email string) error {
	logger := log.WithField("email", email)
	rec, err := i.getUser(email)
	if err != nil {
		return err
	}
	deleted, err := i.store.DeleteByEmail(email)
	if err != nil {
		return apperrors.Upstream(err, "ошибка удаления пользователя")
	}
	if !deleted {
		return apperrors.NotFound("пользователь не найден")
	}
	switch rec.Role {
	case models.StudentRole:
		count, err := i.applicationsStore.DeleteByStudent(email)
		if err != nil {
			return apperrors.Upstream(err, "ошибка удаления откликов пользователя")
		}
		logger.WithField("applications", count).Info("аккаунт студента удален")
	case models.RecruiterRole:
		// отклики на вакансии удаляются каскадно по внешнему ключу
		count, err := i.jobsStore.DeleteByRecruiter(email)
		if err != nil {
			return apperrors.Upstream(err, "ошибка удаления вакансий пользователя")
		}
		logger.WithField("jobs", count).Info("аккаунт рекрутера удален")
	}
	return nil
}

func (i impl) UploadPicture(ctx context.Context, email string, file models.File) (string, error) {
	if _, err := i.getUser(email); err != nil {
		return "", err
	}
	path, err := i.files.Save(ctx, filestorage.ProfilePicFolder, file)
	if err != nil {
		return "", apperrors.Upstream(err, "ошибка сохранения фото")
	}
	err = i.store.Update(email, map[string]interface{}{"profile_pic": path})
	if err != nil {
		return "", apperrors.Upstream(err, "ошибка обновления профиля")
	}
	return path, nil
}
