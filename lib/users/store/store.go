package usersstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "job-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (string, error)
	Update(email string, updMap map[string]interface{}) error
	DeleteByEmail(email string) (deleted bool, err error)
	ExistByEmail(email string) (bool, error)
	GetByEmail(email string) (rec *dbmodels.User, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(email string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.User{}).
		Where("email = ?", email).
		Updates(updMap).
		Error
}

func (i impl) DeleteByEmail(email string) (bool, error) {
	tx := i.db.
		Where("email = ?", email).
		Delete(&dbmodels.User{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) ExistByEmail(email string) (bool, error) {
	var exists bool
	err := i.db.Model(&dbmodels.User{}).
		Select("count(*) > 0").
		Where("email = ?", email).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) GetByEmail(email string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("email = ?", email).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}
