package connectionhub

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
	wsmodels "job-portal-backend/models/ws"
)

// connWriter исходящая сторона websocket соединения
type connWriter interface {
	WriteJSON(v interface{}) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
}

type clientSession struct {
	conn connWriter

	// исходящие сообщения, буферизованы
	sendCh chan wsmodels.ServerMessage
	ctx    context.Context
	cancel func()

	mu      sync.Mutex
	stopped bool

	// redeliver получает сообщения, которые сессия приняла, но не успела отправить
	redeliver func(msg wsmodels.ServerMessage)
}

func newSession(conn connWriter, redeliver func(msg wsmodels.ServerMessage)) *clientSession {
	ctx, cancelFn := context.WithCancel(context.Background())
	sess := &clientSession{
		conn:      conn,
		sendCh:    make(chan wsmodels.ServerMessage, 16),
		ctx:       ctx,
		cancel:    cancelFn,
		redeliver: redeliver,
	}
	go sess.startSend()
	return sess
}

// enqueue не блокирует вызывающего: при остановленной сессии или полном буфере возвращает false
func (s *clientSession) enqueue(msg wsmodels.ServerMessage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return false
	}
	select {
	case s.sendCh <- msg:
		return true
	default:
		return false
	}
}

// stop после stop enqueue не принимает сообщения, очередь передается в redeliver
func (s *clientSession) stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
	s.cancel()
}

func (s *clientSession) startSend() {
	for {
		select {
		case <-s.ctx.Done():
			s.close()
			s.drain()
			return
		case msg := <-s.sendCh:
			if s.ctx.Err() != nil {
				s.redeliver(msg)
				continue
			}
			if err := s.conn.WriteJSON(msg); err != nil {
				log.WithError(err).Error("ошибка отправки сообщения")
			}
		}
	}
}

func (s *clientSession) drain() {
	for {
		select {
		case msg := <-s.sendCh:
			s.redeliver(msg)
		default:
			return
		}
	}
}

func (s *clientSession) close() {
	err := s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Millisecond))
	if err != nil {
		log.WithError(err).Debug("не удалось закрыть соединение")
	}
}
