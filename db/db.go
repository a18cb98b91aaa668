package db

import (
	"fmt"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect возвращает подключение даже если БД недоступна, запросы восстановятся при появлении БД
func Connect(host string, port string, database string, user string, pass string, debugMode bool) (*gorm.DB, error) {
	dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", host, port, user, database, pass)
	db, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{
		Logger:               gorm_logrus.New(),
		TranslateError:       true, // ошибки уникальности приходят как gorm.ErrDuplicatedKey
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "Ошибка подключения к БД")
	}
	if debugMode {
		db.Logger = logger.Default.LogMode(logger.Info)
		db = db.Debug()
	}
	if err = PingDB(db); err != nil {
		return db, errors.Wrap(err, "БД недоступна")
	}
	log.Info("Сервис успешно подключен к БД")
	return db, nil
}

// Migrate проверяет доступность БД и применяет миграции
func Migrate(db *gorm.DB) error {
	if err := PingDB(db); err != nil {
		return errors.Wrap(err, "БД недоступна")
	}
	return AutoMigrateDB(db)
}

func PingDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err = sqlDB.Ping(); err != nil {
		return err
	}
	return nil
}
