package config

import (
	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"5000" env:"APP_PORT"`
		PublicURL  string `default:"http://localhost:5000/" env:"APP_PUBLIC_URL"` // адрес, по которому доступны загруженные файлы
		BodyLimit  int    `default:"20971520" env:"APP_BODY_LIMIT"`
		CorsOrigin string `default:"'*'" env:"APP_CORS_ORIGIN"` // default разбирается как yaml, * нужно в кавычках

		// адрес для уведомлений об ответах 5xx, пустой отключает
		ErrNotifyURL string `default:"" env:"APP_ERR_NOTIFY_URL"`
	}
	Database struct {
		Host            string `default:"127.0.0.1" env:"DB_HOST"`
		Port            string `default:"5432" env:"DB_PORT"`
		Name            string `default:"job-portal" env:"DB_NAME"`
		User            string `default:"postgres" env:"DB_USER"`
		Password        string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart  *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		MigrateRetrySec int    `default:"10" env:"DB_MIGRATE_RETRY_SEC"` // период повтора миграции, если БД недоступна при старте
		DebugMode       *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Storage struct {
		Kind      string `default:"local" env:"STORAGE_KIND"` // local/s3
		UploadDir string `default:"uploads" env:"STORAGE_UPLOAD_DIR"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"job-portal" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	Auth struct {
		// при false личность определяется только по email в запросе
		Required       *bool  `default:"false" env:"AUTH_REQUIRED"`
		JWTSecret      string `default:"job-portal-secret" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec int    `default:"86400" env:"AUTH_JWT_EXPIRE_IN_SEC"`
	}
	Push struct {
		PendingTTLHours int `default:"168" env:"PUSH_PENDING_TTL_HOURS"` // недоставленные пуши старше удаляются
		CleanupMinutes  int `default:"60" env:"PUSH_CLEANUP_MINUTES"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	// .env не обязателен, переменные окружения имеют приоритет
	if err := godotenv.Load(); err != nil {
		log.Debug(".env не найден, используются переменные окружения")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
