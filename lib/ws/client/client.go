package wsclient

import (
	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

func NewClient(email string, c *websocket.Conn) *WsClient {
	return &WsClient{
		conn:  c,
		email: email,
	}
}

// WsClient читает входящие сообщения до закрытия соединения, канал только на отправку
type WsClient struct {
	conn  *websocket.Conn
	email string
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

func (c *WsClient) Dispatch() {
	for {
		if c.conn == nil {
			return
		}
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				log.WithField("email", c.email).WithError(err).Error("ошибка получения сообщения")
			}
			break
		}
		log.WithField("email", c.email).WithField("ws_message", string(data)).Debug("ws-msg")
	}
}
