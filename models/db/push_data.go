package dbmodels

import "job-portal-backend/models"

// PushData пуш, который не удалось доставить по websocket, отправляется при подключении
type PushData struct {
	BaseModel
	Email string                  `gorm:"type:varchar(255);index:idx_push_email"`
	Code  models.NotificationType `gorm:"type:varchar(50)"`
	Msg   string
	Title string
}
