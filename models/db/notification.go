package dbmodels

import "job-portal-backend/models"

type Notification struct {
	BaseModel
	RecipientEmail string                  `gorm:"type:varchar(255);index"`
	SenderEmail    string                  `gorm:"type:varchar(255)"`
	Type           models.NotificationType `gorm:"type:varchar(50)"`
	Message        string
	Read           bool `gorm:"default:false"`
}
