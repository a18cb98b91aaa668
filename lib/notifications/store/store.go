package notificationsstore

import (
	"gorm.io/gorm"
	dbmodels "job-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	ListByRecipient(email string) ([]dbmodels.Notification, error)
	MarkRead(id string) (found bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByRecipient(email string) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	err = i.db.
		Model(&dbmodels.Notification{}).
		Where("recipient_email = ?", email).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkRead(id string) (bool, error) {
	tx := i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Update("read", true)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
