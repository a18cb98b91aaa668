package messageapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	dbmodels "job-portal-backend/models/db"
)

type SendRequest struct {
	SenderEmail   string `json:"senderEmail"`
	ReceiverEmail string `json:"receiverEmail"`
	Message       string `json:"message"`
}

func (r SendRequest) Validate() error {
	if strings.TrimSpace(r.SenderEmail) == "" {
		return errors.New("не указан отправитель")
	}
	if strings.TrimSpace(r.ReceiverEmail) == "" {
		return errors.New("не указан получатель")
	}
	if strings.TrimSpace(r.Message) == "" {
		return errors.New("пустое сообщение")
	}
	return nil
}

type MessageView struct {
	ID            string    `json:"id"`
	SenderEmail   string    `json:"senderEmail"`
	ReceiverEmail string    `json:"receiverEmail"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"createdAt"`
}

func MessageConvert(rec dbmodels.Message) MessageView {
	return MessageView{
		ID:            rec.ID,
		SenderEmail:   rec.SenderEmail,
		ReceiverEmail: rec.ReceiverEmail,
		Message:       rec.Message,
		CreatedAt:     rec.CreatedAt,
	}
}
