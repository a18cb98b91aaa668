package controllers

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	apperrors "job-portal-backend/lib/utils/app-errors"
	"job-portal-backend/middleware"
	"job-portal-backend/models"
	apimodels "job-portal-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetParam(ctx, "id")
}

func (c *BaseAPIController) GetParam(ctx *fiber.Ctx, name string) (string, error) {
	value := ctx.Params(name)
	if value == "" {
		return "", errors.Errorf("не указан параметр %v", name)
	}
	return value, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
	if email := middleware.GetUserEmail(ctx); email != "" {
		logger = logger.WithField("user_email", email)
	}
	return logger
}

// SendError код ответа выбирается по классу ошибки, непредвиденные ошибки логируются
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	appErr := apperrors.As(err)
	if appErr.Kind == apperrors.KindUpstream {
		logger.WithError(err).Error(msg)
		return ctx.Status(appErr.HttpCode()).JSON(apimodels.NewError(msg))
	}
	return ctx.Status(appErr.HttpCode()).JSON(apimodels.NewError(appErr.Message))
}

// FormFile файл из multipart формы, nil если файл не передан
func (c *BaseAPIController) FormFile(ctx *fiber.Ctx, key string) (*models.File, error) {
	if !strings.HasPrefix(string(ctx.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		return nil, nil
	}
	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, errors.Wrap(err, "не удалось получить данные формы")
	}
	headers := form.File[key]
	if len(headers) == 0 {
		return nil, nil
	}
	header := headers[0]
	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "не удалось открыть файл %v", key)
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrapf(err, "не удалось прочитать файл %v", key)
	}
	return &models.File{
		FileName:    header.Filename,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Body:        body,
	}, nil
}
