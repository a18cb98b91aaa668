package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"job-portal-backend/config"
	filestorage "job-portal-backend/lib/file-storage"
	"job-portal-backend/lib/smtp"
	s3client "job-portal-backend/s3"
)

const storageKindS3 = "s3"

func InitFileStorage(ctx context.Context) filestorage.Provider {
	if config.Conf.Storage.Kind == storageKindS3 {
		provider, err := initS3Storage(ctx)
		if err == nil {
			log.Info("S3 хранилище успешно инициализировано")
			return provider
		}
		log.WithError(err).Error("Ошибка инициализации S3, файлы сохраняются локально")
	}
	provider, err := filestorage.NewLocalInstance(config.Conf.Storage.UploadDir)
	if err != nil {
		panic(err.Error())
	}
	return provider
}

func initS3Storage(ctx context.Context) (filestorage.Provider, error) {
	minioClient, err := s3client.NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		return nil, err
	}
	return filestorage.NewS3Instance(ctx, minioClient, config.Conf.S3.BucketName)
}

func InitSmtp() smtp.Provider {
	mailer := smtp.NewInstance(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, *config.Conf.Smtp.TLSEnabled)
	if !mailer.IsConfigured() {
		log.Info("SMTP не настроен, уведомления на почту не отправляются")
	}
	return mailer
}
