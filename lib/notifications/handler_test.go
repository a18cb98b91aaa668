package notificationshandler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	apperrors "job-portal-backend/lib/utils/app-errors"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

type fakeStore struct {
	list      []dbmodels.Notification
	createErr error
}

func (f *fakeStore) Create(rec dbmodels.Notification) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	rec.ID = "n" + string(rune('0'+len(f.list)))
	f.list = append(f.list, rec)
	return rec.ID, nil
}

func (f *fakeStore) ListByRecipient(email string) ([]dbmodels.Notification, error) {
	result := []dbmodels.Notification{}
	for idx := len(f.list) - 1; idx >= 0; idx-- {
		if f.list[idx].RecipientEmail == email {
			result = append(result, f.list[idx])
		}
	}
	return result, nil
}

func (f *fakeStore) MarkRead(id string) (bool, error) {
	for idx := range f.list {
		if f.list[idx].ID == id {
			f.list[idx].Read = true
			return true, nil
		}
	}
	return false, nil
}

type fakePusher struct {
	pushed []string
}

func (f *fakePusher) Push(email string, code models.NotificationType, title, msg string) {
	f.pushed = append(f.pushed, email+":"+string(code))
}

type fakeMailer struct {
	configured  bool
	sent        []string
	attachments []string
	err         error
}

func (f *fakeMailer) IsConfigured() bool {
	return f.configured
}

func (f *fakeMailer) SendEMail(to, subject, message string) error {
	f.sent = append(f.sent, to)
	return f.err
}

func (f *fakeMailer) SendEMailWithAttachment(to, subject, message string, file models.File) error {
	f.attachments = append(f.attachments, file.FileName)
	return f.err
}

func TestEmit(t *testing.T) {
	t.Run("создается одно непрочитанное уведомление", func(t *testing.T) {
		store := &fakeStore{}
		pusher := &fakePusher{}
		mailer := &fakeMailer{}
		h := NewInstance(store, pusher, mailer)
		id, err := h.Emit(Event{
			RecipientEmail: "r@x.com",
			SenderEmail:    "s@x.com",
			Type:           models.NotificationTypeApplication,
			Message:        "A student applied to your job.",
		})
		require.NoError(t, err)
		require.NotEmpty(t, id)
		require.Len(t, store.list, 1)
		require.False(t, store.list[0].Read)
		require.Equal(t, models.NotificationTypeApplication, store.list[0].Type)
		require.Equal(t, []string{"r@x.com:application"}, pusher.pushed)
		require.Empty(t, mailer.sent)
	})
	t.Run("ошибка хранилища возвращается", func(t *testing.T) {
		store := &fakeStore{createErr: errors.New("db down")}
		pusher := &fakePusher{}
		h := NewInstance(store, pusher, nil)
		_, err := h.Emit(Event{RecipientEmail: "r@x.com", Type: models.NotificationTypeAccept})
		require.Error(t, err)
		require.True(t, apperrors.IsKind(err, apperrors.KindUpstream))
		require.Empty(t, pusher.pushed)
	})
	t.Run("ошибка почты не влияет на результат", func(t *testing.T) {
		store := &fakeStore{}
		mailer := &fakeMailer{configured: true, err: errors.New("smtp down")}
		h := NewInstance(store, nil, mailer)
		_, err := h.Emit(Event{RecipientEmail: "r@x.com", Type: models.NotificationTypeRejected})
		require.NoError(t, err)
		require.Equal(t, []string{"r@x.com"}, mailer.sent)
	})
	t.Run("вложение уходит письмом с файлом", func(t *testing.T) {
		mailer := &fakeMailer{configured: true}
		h := NewInstance(&fakeStore{}, nil, mailer)
		_, err := h.Emit(Event{
			RecipientEmail: "st@x.com",
			Type:           models.NotificationTypeAccepted,
			Attachment:     &models.File{FileName: "offer.pdf"},
		})
		require.NoError(t, err)
		require.Equal(t, []string{"offer.pdf"}, mailer.attachments)
		require.Empty(t, mailer.sent)
	})
	t.Run("пустой получатель", func(t *testing.T) {
		_, err := NewInstance(&fakeStore{}, nil, nil).Emit(Event{})
		require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})
}

func TestListAndMarkRead(t *testing.T) {
	store := &fakeStore{}
	h := NewInstance(store, nil, nil)
	first, err := h.Emit(Event{RecipientEmail: "a@x.com", Type: models.NotificationTypeApplication, Message: "first"})
	require.NoError(t, err)
	_, err = h.Emit(Event{RecipientEmail: "b@x.com", Type: models.NotificationTypeApplication, Message: "other"})
	require.NoError(t, err)
	_, err = h.Emit(Event{RecipientEmail: "a@x.com", Type: models.NotificationTypeAccept, Message: "second"})
	require.NoError(t, err)

	list, err := h.List("a@x.com")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "second", list[0].Message)
	require.Equal(t, "first", list[1].Message)

	require.NoError(t, h.MarkRead(first))
	list, err = h.List("a@x.com")
	require.NoError(t, err)
	require.True(t, list[1].Read)
	require.False(t, list[0].Read)

	err = h.MarkRead("missing")
	require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
