package smtp

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
	"job-portal-backend/models"
)

type Provider interface {
	IsConfigured() bool
	SendEMail(to, subject, message string) error
	SendEMailWithAttachment(to, subject, message string, file models.File) error
}

func NewInstance(user, password, host, port string, tlsEnabled bool) Provider {
	return &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		tlsEnabled: tlsEnabled,
	}
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
}

func (i impl) IsConfigured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) SendEMail(to, subject, message string) (err error) {
	logger := log.WithField("recipient", to)
	if !i.IsConfigured() {
		logger.Debug("письмо не отправлено, smtp клиент не настроен")
		return nil
	}
	sendTo := []string{
		to,
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	mimeHeaders := "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\r\n"
	body := strings.NewReader(fmt.Sprintf("Subject: Job Portal - %s\n%s\r\n%s\r\n", subject, mimeHeaders, message))

	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.user, sendTo, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.user, sendTo, body)
	}
	if err != nil {
		logger.WithError(err).Error("ошибка отправки письма")
		return err
	}
	logger.Info("письмо отправлено")
	return nil
}

// SendEMailWithAttachment письмо с вложением, например оффер в pdf
func (i impl) SendEMailWithAttachment(to, subject, message string, file models.File) error {
	logger := log.WithField("recipient", to).WithField("attachment", file.FileName)
	if !i.IsConfigured() {
		logger.Debug("письмо не отправлено, smtp клиент не настроен")
		return nil
	}
	port, err := strconv.Atoi(i.port)
	if err != nil {
		return errors.Wrap(err, "некорректный порт smtp")
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", i.user)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Job Portal - "+subject)
	msg.SetBody("text/plain", message)
	msg.Attach(file.FileName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(file.Body)
		return err
	}))

	dialer := gomail.NewDialer(i.host, port, i.user, i.password)
	dialer.SSL = i.tlsEnabled
	if err = dialer.DialAndSend(msg); err != nil {
		logger.WithError(err).Error("ошибка отправки письма с вложением")
		return err
	}
	logger.Info("письмо с вложением отправлено")
	return nil
}
