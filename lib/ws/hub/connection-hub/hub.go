package connectionhub

import (
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
	pushdatastore "job-portal-backend/lib/push/data-store"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
	wsmodels "job-portal-backend/models/ws"
)

const timeFormat = "02.01.2006 15:04:05"

type Provider interface {
	AddClient(email string, conn *websocket.Conn)
	// DeleteClient удаляет сессию, только если она принадлежит conn: после переподключения старое соединение не трогает новое
	DeleteClient(email string, conn *websocket.Conn)
	// Push отправляет событие, если клиент не подключен событие откладывается до подключения
	Push(email string, code models.NotificationType, title, msg string)
	IsConnected(email string) bool
}

func NewInstance(store pushdatastore.Provider) Provider {
	return newHub(store)
}

func newHub(store pushdatastore.Provider) *impl {
	return &impl{
		clients: map[string]*clientSession{},
		store:   store,
	}
}

type impl struct {
	mu      sync.Mutex
	clients map[string]*clientSession //map[email]
	store   pushdatastore.Provider
}

func (i *impl) AddClient(email string, conn *websocket.Conn) {
	i.add(email, conn)
}

func (i *impl) DeleteClient(email string, conn *websocket.Conn) {
	i.remove(email, conn)
}

func (i *impl) add(email string, conn connWriter) {
	sess := newSession(conn, i.deliver)
	i.mu.Lock()
	oldSess, ok := i.clients[email]
	i.clients[email] = sess
	i.mu.Unlock()
	if ok {
		oldSess.stop()
	}
	go i.sendDelayedMessages(email)
}

func (i *impl) remove(email string, conn connWriter) {
	i.mu.Lock()
	sess, ok := i.clients[email]
	if ok && sess.conn == conn {
		delete(i.clients, email)
	} else {
		ok = false
	}
	i.mu.Unlock()
	if ok {
		sess.stop()
	}
}

func (i *impl) Push(email string, code models.NotificationType, title, msg string) {
	i.deliver(wsmodels.ServerMessage{
		ToEmail: email,
		Time:    time.Now().Format(timeFormat),
		Code:    string(code),
		Title:   title,
		Msg:     msg,
	})
}

func (i *impl) IsConnected(email string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	_, ok := i.clients[email]
	return ok
}

// deliver отправляет в текущую сессию получателя, иначе сохраняет до подключения
func (i *impl) deliver(msg wsmodels.ServerMessage) {
	if i.send(msg) {
		return
	}
	err := i.store.Create(dbmodels.PushData{
		Email: msg.ToEmail,
		Code:  models.NotificationType(msg.Code),
		Msg:   msg.Msg,
		Title: msg.Title,
	})
	if err != nil {
		log.WithField("email", msg.ToEmail).WithError(err).Error("ошибка сохранения отложенного события")
	}
}

func (i *impl) send(msg wsmodels.ServerMessage) bool {
	i.mu.Lock()
	sess, ok := i.clients[msg.ToEmail]
	i.mu.Unlock()
	if !ok {
		return false
	}
	return sess.enqueue(msg)
}

func (i *impl) sendDelayedMessages(email string) {
	logger := log.WithField("email", email)
	list, err := i.store.List(email)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка не отправленных событий")
		return
	}
	sendedIDs := []string{}
	for _, item := range list {
		msg := wsmodels.ServerMessage{
			ToEmail: email,
			Time:    item.CreatedAt.Format(timeFormat),
			Code:    string(item.Code),
			Title:   item.Title,
			Msg:     item.Msg,
		}
		if !i.send(msg) {
			break
		}
		sendedIDs = append(sendedIDs, item.ID)
	}
	if len(sendedIDs) > 0 {
		err = i.store.Delete(sendedIDs)
		if err != nil {
			logger.WithError(err).Error("ошибка удаления отправленных событий")
			return
		}
	}
}
