package applicationsstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (*dbmodels.Application, error)
	ExistByJobAndStudent(jobID, studentEmail string) (bool, error)
	ListByStudent(studentEmail string) ([]dbmodels.Application, error)
	ListByJob(jobID string) ([]dbmodels.Application, error)
	// UpdateStatus меняет запись только если она все еще в статусе from
	UpdateStatus(id string, from models.ApplicationStatus, updMap map[string]interface{}) (updated bool, err error)
	DeleteByStudent(studentEmail string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.
		Omit("Job").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Preload("Job").
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

func (i impl) ExistByJobAndStudent(jobID, studentEmail string) (bool, error) {
	var exists bool
	err := i.db.Model(&dbmodels.Application{}).
		Select("count(*) > 0").
		Where("job_id = ? and student_email = ?", jobID, studentEmail).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) ListByStudent(studentEmail string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("student_email = ?", studentEmail).
		Preload("Job").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByJob(jobID string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("job_id = ?", jobID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateStatus(id string, from models.ApplicationStatus, updMap map[string]interface{}) (bool, error) {
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ? and status = ?", id, from).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) DeleteByStudent(studentEmail string) (int64, error) {
	tx := i.db.
		Where("student_email = ?", studentEmail).
		Delete(&dbmodels.Application{})
	return tx.RowsAffected, tx.Error
}
