package initializers

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"job-portal-backend/config"
	"job-portal-backend/db"
	migrateworker "job-portal-backend/db/migrate-worker"
)

// InitDBConnection недоступность БД при старте не останавливает сервис, запросы падают по отдельности,
// миграция повторяется в фоне до появления БД
func InitDBConnection(ctx context.Context) *gorm.DB {
	gormDB, err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode)
	if err != nil {
		if gormDB == nil {
			panic(err.Error())
		}
		log.WithError(err).Error("ошибка инициализации БД, сервис продолжает работу")
	}
	if !*config.Conf.Database.MigrateOnStart {
		return gormDB
	}
	if err == nil {
		err = db.Migrate(gormDB)
	}
	if err != nil {
		log.WithError(err).Warn("миграция БД отложена до появления БД")
		migrateworker.StartWorker(ctx, func() error { return db.Migrate(gormDB) },
			time.Duration(config.Conf.Database.MigrateRetrySec)*time.Second)
	}
	return gormDB
}
