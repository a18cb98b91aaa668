package messagesstore

import (
	"gorm.io/gorm"
	dbmodels "job-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Message) (dbmodels.Message, error)
	ListByEmail(email string) ([]dbmodels.Message, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Message) (dbmodels.Message, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return dbmodels.Message{}, err
	}
	return rec, nil
}

func (i impl) ListByEmail(email string) (list []dbmodels.Message, err error) {
	list = []dbmodels.Message{}
	err = i.db.
		Model(&dbmodels.Message{}).
		Where("sender_email = ? or receiver_email = ?", email, email).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
