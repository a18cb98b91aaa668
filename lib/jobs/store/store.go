package jobsstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "job-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Job) (string, error)
	GetByID(id string) (*dbmodels.Job, error)
	List() ([]dbmodels.Job, error)
	ListByRecruiter(recruiterEmail string) ([]dbmodels.Job, error)
	ListAvailableForStudent(studentEmail string) ([]dbmodels.Job, error)
	DeleteByRecruiter(recruiterEmail string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List() (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	err = i.db.
		Model(&dbmodels.Job{}).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByRecruiter(recruiterEmail string) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	err = i.db.
		Model(&dbmodels.Job{}).
		Where("recruiter_email = ?", recruiterEmail).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListAvailableForStudent(studentEmail string) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	applied := i.db.
		Model(&dbmodels.Application{}).
		Select("job_id").
		Where("student_email = ?", studentEmail)
	err = i.db.
		Model(&dbmodels.Job{}).
		Where("id NOT IN (?)", applied).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteByRecruiter(recruiterEmail string) (int64, error) {
	tx := i.db.
		Where("recruiter_email = ?", recruiterEmail).
		Delete(&dbmodels.Job{})
	return tx.RowsAffected, tx.Error
}
