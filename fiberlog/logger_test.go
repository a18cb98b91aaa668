package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	app := fiber.New()
	app.Use(New(Config{
		Logger: logger,
		Tags:   []string{TagMethod, TagPath, TagStatus, TagBody},
	}))
	app.Post("/api/echo", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	req := httptest.NewRequest(fiber.MethodPost, "/api/echo", bytes.NewBufferString(`{"a":1}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	_, err := app.Test(req)
	require.NoError(t, err)

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "POST", entry[TagMethod])
	require.Equal(t, "/api/echo", entry[TagPath])
	require.EqualValues(t, 404, entry[TagStatus])
	require.Equal(t, `{"a":1}`, entry[TagBody])
	require.Equal(t, "warning", entry["level"])
	require.Equal(t, "запрос api", entry["msg"])
}

func TestLevel(t *testing.T) {
	require.Equal(t, logrus.InfoLevel, level(fiber.StatusOK, fiber.StatusBadRequest))
	require.Equal(t, logrus.InfoLevel, level(fiber.StatusFound, fiber.StatusBadRequest))
	require.Equal(t, logrus.WarnLevel, level(fiber.StatusConflict, fiber.StatusBadRequest))
	require.Equal(t, logrus.ErrorLevel, level(fiber.StatusInternalServerError, fiber.StatusBadRequest))
}

func TestConfigDefault(t *testing.T) {
	cfg := configDefault(Config{Tags: []string{TagPath}})
	require.Equal(t, []string{TagPath}, cfg.Tags)
	require.Equal(t, "запрос api", cfg.Message)
	require.Equal(t, fiber.StatusBadRequest, cfg.WarnFrom)
}

func TestIsTextContent(t *testing.T) {
	require.True(t, isTextContent("application/json; charset=utf-8"))
	require.False(t, isTextContent("multipart/form-data; boundary=x"))
	require.False(t, isTextContent("application/pdf"))
}
