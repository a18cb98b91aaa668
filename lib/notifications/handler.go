package notificationshandler

import (
	"strings"

	log "github.com/sirupsen/logrus"
	notificationsstore "job-portal-backend/lib/notifications/store"
	"job-portal-backend/lib/smtp"
	apperrors "job-portal-backend/lib/utils/app-errors"
	"job-portal-backend/models"
	notificationapimodels "job-portal-backend/models/api/notification"
	dbmodels "job-portal-backend/models/db"
)

// Event событие жизненного цикла, по нему создается одно уведомление
type Event struct {
	RecipientEmail string
	SenderEmail    string
	Type           models.NotificationType
	Message        string
	Attachment     *models.File // вложение, только для email
}

type Provider interface {
	Emit(event Event) (id string, err error)
	List(email string) ([]notificationapimodels.NotificationView, error)
	MarkRead(id string) error
}

// Pusher доставка события в открытый ws канал
type Pusher interface {
	Push(email string, code models.NotificationType, title, msg string)
}

func NewInstance(store notificationsstore.Provider, pusher Pusher, mailer smtp.Provider) Provider {
	return &impl{
		store:  store,
		pusher: pusher,
		mailer: mailer,
	}
}

type impl struct {
	store  notificationsstore.Provider
	pusher Pusher
	mailer smtp.Provider
}

func (i impl) getLogger(event Event) *log.Entry {
	return log.
		WithField("recipient_email", event.RecipientEmail).
		WithField("notification_type", event.Type)
}

func (i impl) Emit(event Event) (string, error) {
	if strings.TrimSpace(event.RecipientEmail) == "" {
		return "", apperrors.Validation("не указан получатель уведомления")
	}
	rec := dbmodels.Notification{
		RecipientEmail: event.RecipientEmail,
		SenderEmail:    event.SenderEmail,
		Type:           event.Type,
		Message:        event.Message,
		Read:           false,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", apperrors.Upstream(err, "ошибка сохранения уведомления")
	}
	i.fanOut(event)
	return id, nil
}

func (i impl) fanOut(event Event) {
	logger := i.getLogger(event)
	title := event.Type.Title()
	if i.pusher != nil {
		i.pusher.Push(event.RecipientEmail, event.Type, title, event.Message)
	}
	if i.mailer == nil || !i.mailer.IsConfigured() {
		return
	}
	var err error
	if event.Attachment != nil {
		err = i.mailer.SendEMailWithAttachment(event.RecipientEmail, title, event.Message, *event.Attachment)
	} else {
		err = i.mailer.SendEMail(event.RecipientEmail, title, event.Message)
	}
	if err != nil {
		logger.WithError(err).Warn("не удалось отправить уведомление на почту")
	}
}

func (i impl) List(email string) ([]notificationapimodels.NotificationView, error) {
	list, err := i.store.ListByRecipient(email)
	if err != nil {
		return nil, apperrors.Upstream(err, "ошибка получения списка уведомлений")
	}
	result := make([]notificationapimodels.NotificationView, 0, len(list))
	for _, rec := range list {
		result = append(result, notificationapimodels.NotificationConvert(rec))
	}
	return result, nil
}

func (i impl) MarkRead(id string) error {
	found, err := i.store.MarkRead(id)
	if err != nil {
		return apperrors.Upstream(err, "ошибка обновления уведомления")
	}
	if !found {
		return apperrors.NotFound("уведомление не найдено")
	}
	return nil
}
