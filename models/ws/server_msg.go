package wsmodels

type ServerMessage struct {
	ToEmail string `json:"-"`
	Time    string `json:"time"`  // время события
	Code    string `json:"code"`  // тип уведомления
	Title   string `json:"title"` // заголовок
	Msg     string `json:"msg"`   // текст события
}
