package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// getLogrusFields значения тегов, пустые строки пропускаются
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		if strValue, ok := value.(string); ok && strValue == "" {
			continue
		}
		f[k] = value
	}
	return f
}

// New middleware логирования запросов
func New(config ...Config) fiber.Handler {
	cfg := configDefault(config...)
	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	return func(c *fiber.Ctx) error {
		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}
		entry := logger.WithFields(getLogrusFields(ftm, c, d))
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Log(level(c.Response().StatusCode(), cfg.WarnFrom), cfg.Message)
		return err
	}
}

func level(status, warnFrom int) log.Level {
	switch {
	case status >= fiber.StatusInternalServerError:
		return log.ErrorLevel
	case status >= warnFrom:
		return log.WarnLevel
	default:
		return log.InfoLevel
	}
}
