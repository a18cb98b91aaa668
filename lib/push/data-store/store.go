package pushdatastore

import (
	"time"

	dbmodels "job-portal-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.PushData) error
	List(email string) ([]dbmodels.PushData, error)
	Delete(ids []string) error
	// DeleteOlderThan удаляет недоставленные пуши, созданные раньше before
	DeleteOlderThan(before time.Time) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PushData) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) List(email string) (list []dbmodels.PushData, err error) {
	tx := i.db.Model(dbmodels.PushData{})
	err = tx.
		Where("email = ?", email).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(ids []string) error {
	return i.db.Delete(&dbmodels.PushData{}, "id IN ?", ids).Error
}

func (i impl) DeleteOlderThan(before time.Time) (int64, error) {
	tx := i.db.Delete(&dbmodels.PushData{}, "created_at < ?", before)
	return tx.RowsAffected, tx.Error
}
