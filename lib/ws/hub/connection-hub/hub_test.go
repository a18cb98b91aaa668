package connectionhub

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
	wsmodels "job-portal-backend/models/ws"
)

const (
	testEmail = "st@uni.edu"
	waitFor   = time.Second
	tick      = 5 * time.Millisecond
)

type fakePushStore struct {
	mu      sync.Mutex
	created []dbmodels.PushData
	pending []dbmodels.PushData
	deleted []string
}

func (f *fakePushStore) Create(rec dbmodels.PushData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, rec)
	return nil
}

func (f *fakePushStore) List(email string) ([]dbmodels.PushData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending, nil
}

func (f *fakePushStore) Delete(ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, ids...)
	return nil
}

func (f *fakePushStore) DeleteOlderThan(before time.Time) (int64, error) { return 0, nil }

func (f *fakePushStore) createdCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

func (f *fakePushStore) deletedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.deleted...)
}

type fakeConn struct {
	mu     sync.Mutex
	msgs   []wsmodels.ServerMessage
	closed bool
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, v.(wsmodels.ServerMessage))
	return nil
}

func (f *fakeConn) WriteControl(messageType int, data []byte, deadline time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) received() []wsmodels.ServerMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]wsmodels.ServerMessage{}, f.msgs...)
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func TestPush(t *testing.T) {
	t.Run("клиент не подключен, пуш откладывается", func(t *testing.T) {
		store := &fakePushStore{}
		hub := NewInstance(store)
		require.False(t, hub.IsConnected(testEmail))

		hub.Push(testEmail, models.NotificationTypeAccepted, "Application accepted", "Your application has been accepted.")
		require.Len(t, store.created, 1)
		require.Equal(t, testEmail, store.created[0].Email)
		require.Equal(t, models.NotificationTypeAccepted, store.created[0].Code)
		require.Equal(t, "Your application has been accepted.", store.created[0].Msg)
	})

	t.Run("подключенный клиент получает пуш сразу", func(t *testing.T) {
		store := &fakePushStore{}
		hub := newHub(store)
		conn := &fakeConn{}
		hub.add(testEmail, conn)
		require.True(t, hub.IsConnected(testEmail))

		hub.Push(testEmail, models.NotificationTypeRejected, "Application rejected", "Your application has been rejected.")
		require.Eventually(t, func() bool { return len(conn.received()) == 1 }, waitFor, tick)
		msg := conn.received()[0]
		require.Equal(t, string(models.NotificationTypeRejected), msg.Code)
		require.Equal(t, "Application rejected", msg.Title)
		require.Zero(t, store.createdCount())
	})

	t.Run("удаление неизвестного клиента", func(t *testing.T) {
		hub := newHub(&fakePushStore{})
		require.NotPanics(t, func() { hub.remove("nobody@uni.edu", &fakeConn{}) })
	})
}

func TestReconnect(t *testing.T) {
	store := &fakePushStore{}
	hub := newHub(store)
	oldConn := &fakeConn{}
	newConn := &fakeConn{}

	hub.add(testEmail, oldConn)
	hub.add(testEmail, newConn)
	require.Eventually(t, oldConn.isClosed, waitFor, tick)

	// обработчик старого соединения завершается после переподключения
	hub.remove(testEmail, oldConn)
	require.True(t, hub.IsConnected(testEmail))
	require.False(t, newConn.isClosed())

	hub.Push(testEmail, models.NotificationTypeAccept, "Offer accepted", "st@uni.edu has accepted your offer.")
	require.Eventually(t, func() bool { return len(newConn.received()) == 1 }, waitFor, tick)
	require.Empty(t, oldConn.received())
	require.Zero(t, store.createdCount())

	hub.remove(testEmail, newConn)
	require.False(t, hub.IsConnected(testEmail))
	require.Eventually(t, newConn.isClosed, waitFor, tick)
}

func TestSendDelayedMessages(t *testing.T) {
	store := &fakePushStore{pending: []dbmodels.PushData{
		{BaseModel: dbmodels.BaseModel{ID: "p1"}, Email: testEmail, Code: models.NotificationTypeAccepted, Title: "first", Msg: "1"},
		{BaseModel: dbmodels.BaseModel{ID: "p2"}, Email: testEmail, Code: models.NotificationTypeRejected, Title: "second", Msg: "2"},
	}}
	hub := newHub(store)
	conn := &fakeConn{}
	hub.add(testEmail, conn)

	require.Eventually(t, func() bool { return len(conn.received()) == 2 }, waitFor, tick)
	received := conn.received()
	require.Equal(t, "first", received[0].Title)
	require.Equal(t, "second", received[1].Title)
	require.Eventually(t, func() bool { return len(store.deletedIDs()) == 2 }, waitFor, tick)
	require.Equal(t, []string{"p1", "p2"}, store.deletedIDs())
}

func TestStoppedSessionRedelivers(t *testing.T) {
	redelivered := make(chan wsmodels.ServerMessage, 4)
	sess := &clientSession{
		conn:      &fakeConn{},
		sendCh:    make(chan wsmodels.ServerMessage, 4),
		redeliver: func(msg wsmodels.ServerMessage) { redelivered <- msg },
	}
	sess.ctx, sess.cancel = context.WithCancel(context.Background())

	// сообщение принято в очередь, но отправитель еще не запущен
	require.True(t, sess.enqueue(wsmodels.ServerMessage{ToEmail: testEmail, Title: "queued"}))
	sess.stop()
	require.False(t, sess.enqueue(wsmodels.ServerMessage{ToEmail: testEmail, Title: "late"}))

	go sess.startSend()
	select {
	case msg := <-redelivered:
		require.Equal(t, "queued", msg.Title)
	case <-time.After(waitFor):
		t.Fatal("сообщение из очереди остановленной сессии потеряно")
	}
}
