package fiberlog

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Config struct {
	// nil пишет в стандартный логгер logrus
	Logger   *logrus.Logger
	Tags     []string
	Message  string // текст записи лога
	WarnFrom int    // ответы с кодом от WarnFrom пишутся уровнем warning, от 500 уровнем error
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
	Message:  "запрос api",
	WarnFrom: fiber.StatusBadRequest,
}

func configDefault(config ...Config) Config {
	if len(config) == 0 {
		return ConfigDefault
	}
	cfg := config[0]
	if len(cfg.Tags) == 0 {
		cfg.Tags = ConfigDefault.Tags
	}
	if cfg.Message == "" {
		cfg.Message = ConfigDefault.Message
	}
	if cfg.WarnFrom == 0 {
		cfg.WarnFrom = ConfigDefault.WarnFrom
	}
	return cfg
}
