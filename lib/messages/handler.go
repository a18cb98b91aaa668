package messageshandler

import (
	messagesstore "job-portal-backend/lib/messages/store"
	apperrors "job-portal-backend/lib/utils/app-errors"
	messageapimodels "job-portal-backend/models/api/message"
	dbmodels "job-portal-backend/models/db"
)

type Provider interface {
	Send(req messageapimodels.SendRequest) (messageapimodels.MessageView, error)
	// List сообщения, где email отправитель или получатель, от старых к новым
	List(email string) ([]messageapimodels.MessageView, error)
}

func NewInstance(store messagesstore.Provider) Provider {
	return &impl{
		store: store,
	}
}

type impl struct {
	store messagesstore.Provider
}

func (i impl) Send(req messageapimodels.SendRequest) (messageapimodels.MessageView, error) {
	if err := req.Validate(); err != nil {
		return messageapimodels.MessageView{}, apperrors.Validation(err.Error())
	}
	rec, err := i.store.Create(dbmodels.Message{
		SenderEmail:   req.SenderEmail,
		ReceiverEmail: req.ReceiverEmail,
		Message:       req.Message,
	})
	if err != nil {
		return messageapimodels.MessageView{}, apperrors.Upstream(err, "ошибка сохранения сообщения")
	}
	return messageapimodels.MessageConvert(rec), nil
}

func (i impl) List(email string) ([]messageapimodels.MessageView, error) {
	list, err := i.store.ListByEmail(email)
	if err != nil {
		return nil, apperrors.Upstream(err, "ошибка получения сообщений")
	}
	result := make([]messageapimodels.MessageView, 0, len(list))
	for _, rec := range list {
		result = append(result, messageapimodels.MessageConvert(rec))
	}
	return result, nil
}
