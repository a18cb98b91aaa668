package jobshandler

import (
	"context"

	log "github.com/sirupsen/logrus"
	filestorage "job-portal-backend/lib/file-storage"
	jobsstore "job-portal-backend/lib/jobs/store"
	usersstore "job-portal-backend/lib/users/store"
	apperrors "job-portal-backend/lib/utils/app-errors"
	"job-portal-backend/models"
	jobapimodels "job-portal-backend/models/api/job"
	dbmodels "job-portal-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, data jobapimodels.JobData, pdf *models.File) (jobapimodels.JobView, error)
	List() ([]jobapimodels.JobView, error)
	GetByID(id string) (jobapimodels.JobView, error)
	ListByRecruiter(recruiterEmail string) ([]jobapimodels.JobView, error)
	ListAvailable(studentEmail string) ([]jobapimodels.JobView, error)
}

func NewInstance(store jobsstore.Provider, usersStore usersstore.Provider, files filestorage.Provider) Provider {
	return &impl{
		store:      store,
		usersStore: usersStore,
		files:      files,
	}
}

type impl struct {
	store      jobsstore.Provider
	usersStore usersstore.Provider
	files      filestorage.Provider
}

func (i impl) Create(ctx context.Context, data jobapimodels.JobData, pdf *models.File) (jobapimodels.JobView, error) {
	logger := log.WithField("recruiter_email", data.RecruiterEmail)
	if err := data.Validate(); err != nil {
		return jobapimodels.JobView{}, apperrors.Validation(err.Error())
	}
	recruiter, err := i.usersStore.GetByEmail(data.RecruiterEmail)
	if err != nil {
		return jobapimodels.JobView{}, apperrors.Upstream(err, "ошибка получения рекрутера")
	}
	if recruiter == nil {
		return jobapimodels.JobView{}, apperrors.NotFound("рекрутер не найден")
	}
	if !recruiter.Role.IsRecruiter() {
		return jobapimodels.JobView{}, apperrors.Forbidden("публиковать вакансии может только рекрутер")
	}
	rec := dbmodels.Job{
		RecruiterEmail: data.RecruiterEmail,
		Company:        data.Company,
		Title:          data.Title,
		Description:    data.Description,
		JobType:        data.JobType,
		Eligibility:    data.Eligibility,
		Questions:      data.Questions,
	}
	// файл описания хранится только для вакансий с типом pdf
	if data.JobType == models.JobTypePdf && pdf != nil {
		rec.PdfPath, err = i.files.Save(ctx, filestorage.JobPdfFolder, *pdf)
		if err != nil {
			return jobapimodels.JobView{}, apperrors.Upstream(err, "ошибка сохранения файла вакансии")
		}
	}
	rec.ID, err = i.store.Create(rec)
	if err != nil {
		return jobapimodels.JobView{}, apperrors.Upstream(err, "ошибка сохранения вакансии")
	}
	logger.WithField("job_id", rec.ID).Info("вакансия опубликована")
	return jobapimodels.JobConvert(rec), nil
}

func (i impl) List() ([]jobapimodels.JobView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, apperrors.Upstream(err, "ошибка получения списка вакансий")
	}
	return jobapimodels.JobListConvert(list), nil
}

func (i impl) GetByID(id string) (jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.JobView{}, apperrors.Upstream(err, "ошибка получения вакансии")
	}
	if rec == nil {
		return jobapimodels.JobView{}, apperrors.NotFound("вакансия не найдена")
	}
	return jobapimodels.JobConvert(*rec), nil
}

func (i impl) ListByRecruiter(recruiterEmail string) ([]jobapimodels.JobView, error) {
	list, err := i.store.ListByRecruiter(recruiterEmail)
	if err != nil {
		return nil, apperrors.Upstream(err, "ошибка получения списка вакансий")
	}
	return jobapimodels.JobListConvert(list), nil
}

func (i impl) ListAvailable(studentEmail string) ([]jobapimodels.JobView, error) {
	list, err := i.store.ListAvailableForStudent(studentEmail)
	if err != nil {
		return nil, apperrors.Upstream(err, "ошибка получения списка вакансий")
	}
	return jobapimodels.JobListConvert(list), nil
}
