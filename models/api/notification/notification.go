package notificationapimodels

import (
	"time"

	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

type NotificationView struct {
	ID             string                  `json:"id"`
	RecipientEmail string                  `json:"recipientEmail"`
	SenderEmail    string                  `json:"senderEmail"`
	Type           models.NotificationType `json:"type"`
	Message        string                  `json:"message"`
	Read           bool                    `json:"read"`
	CreatedAt      time.Time               `json:"createdAt"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:             rec.ID,
		RecipientEmail: rec.RecipientEmail,
		SenderEmail:    rec.SenderEmail,
		Type:           rec.Type,
		Message:        rec.Message,
		Read:           rec.Read,
		CreatedAt:      rec.CreatedAt,
	}
}
