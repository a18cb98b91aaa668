package messageshandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "job-portal-backend/lib/utils/app-errors"
	messageapimodels "job-portal-backend/models/api/message"
	dbmodels "job-portal-backend/models/db"
)

type fakeStore struct {
	list []dbmodels.Message
}

func (f *fakeStore) Create(rec dbmodels.Message) (dbmodels.Message, error) {
	rec.ID = fmt.Sprintf("m-%v", len(f.list)+1)
	f.list = append(f.list, rec)
	return rec, nil
}

func (f *fakeStore) ListByEmail(email string) ([]dbmodels.Message, error) {
	result := []dbmodels.Message{}
	for _, rec := range f.list {
		if rec.SenderEmail == email || rec.ReceiverEmail == email {
			result = append(result, rec)
		}
	}
	return result, nil
}

func TestMessages(t *testing.T) {
	h := NewInstance(&fakeStore{})
	send := func(from, to, text string) {
		_, err := h.Send(messageapimodels.SendRequest{SenderEmail: from, ReceiverEmail: to, Message: text})
		require.NoError(t, err)
	}
	send("a@x.com", "b@x.com", "hi")
	send("b@x.com", "a@x.com", "hello")
	send("c@x.com", "b@x.com", "other")

	list, err := h.List("a@x.com")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "hi", list[0].Message)
	require.Equal(t, "hello", list[1].Message)

	list, err = h.List("b@x.com")
	require.NoError(t, err)
	require.Len(t, list, 3)

	_, err = h.Send(messageapimodels.SendRequest{SenderEmail: "a@x.com", ReceiverEmail: "b@x.com", Message: " "})
	require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}
