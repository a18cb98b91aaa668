package initializers

import (
	"context"
	"time"

	"job-portal-backend/config"
	"job-portal-backend/fiberlog"
	applicationshandler "job-portal-backend/lib/applications"
	applicationsstore "job-portal-backend/lib/applications/store"
	authhandler "job-portal-backend/lib/auth"
	pdfexport "job-portal-backend/lib/export/pdf"
	xlsexport "job-portal-backend/lib/export/xls"
	filestorage "job-portal-backend/lib/file-storage"
	jobshandler "job-portal-backend/lib/jobs"
	jobsstore "job-portal-backend/lib/jobs/store"
	messageshandler "job-portal-backend/lib/messages"
	messagesstore "job-portal-backend/lib/messages/store"
	notificationshandler "job-portal-backend/lib/notifications"
	notificationsstore "job-portal-backend/lib/notifications/store"
	pushdatastore "job-portal-backend/lib/push/data-store"
	pushexpireworker "job-portal-backend/lib/push/expire-worker"
	usershandler "job-portal-backend/lib/users"
	usersstore "job-portal-backend/lib/users/store"
	connectionhub "job-portal-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

// Services обработчики, собранные с зависимостями, передаются в контроллеры
type Services struct {
	Hub           connectionhub.Provider
	Files         filestorage.Provider
	Auth          authhandler.Provider
	Users         usershandler.Provider
	Jobs          jobshandler.Provider
	Applications  applicationshandler.Provider
	Notifications notificationshandler.Provider
	Messages      messageshandler.Provider
}

func InitAllServices(ctx context.Context) *Services {
	LoggerConfig = InitLogger()
	config.InitConfig()
	gormDB := InitDBConnection(ctx)
	files := InitFileStorage(ctx)
	mailer := InitSmtp()

	usersStore := usersstore.NewInstance(gormDB)
	jobsStore := jobsstore.NewInstance(gormDB)
	applicationsStore := applicationsstore.NewInstance(gormDB)

	pushStore := pushdatastore.NewInstance(gormDB)
	hub := connectionhub.NewInstance(pushStore)
	pushexpireworker.StartWorker(ctx, pushStore,
		time.Duration(config.Conf.Push.PendingTTLHours)*time.Hour,
		time.Duration(config.Conf.Push.CleanupMinutes)*time.Minute)
	notifications := notificationshandler.NewInstance(notificationsstore.NewInstance(gormDB), hub, mailer)

	applications := applicationshandler.NewInstance(applicationsStore, jobsStore, notifications, files,
		pdfexport.NewInstance(config.Conf.App.PublicURL), xlsexport.NewInstance())

	return &Services{
		Hub:           hub,
		Files:         files,
		Auth:          authhandler.NewInstance(usersStore, config.Conf.Auth.JWTSecret, config.Conf.Auth.JWTExpireInSec),
		Users:         usershandler.NewInstance(usersStore, applicationsStore, jobsStore, files),
		Jobs:          jobshandler.NewInstance(jobsStore, usersStore, files),
		Applications:  applications,
		Notifications: notifications,
		Messages:      messageshandler.NewInstance(messagesstore.NewInstance(gormDB)),
	}
}
