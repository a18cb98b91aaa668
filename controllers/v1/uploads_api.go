package apiv1

import (
	"path"

	"github.com/gofiber/fiber/v2"
	"job-portal-backend/controllers"
	filestorage "job-portal-backend/lib/file-storage"
	apimodels "job-portal-backend/models/api"
)

type uploadsApiController struct {
	controllers.BaseAPIController
	files filestorage.Provider
}

// InitUploadsRouters раздача загруженных файлов только на чтение
func InitUploadsRouters(app fiber.Router, files filestorage.Provider) {
	controller := uploadsApiController{files: files}
	app.Get("*", controller.get)
}

func (c *uploadsApiController) get(ctx *fiber.Ctx) error {
	relPath := path.Join(filestorage.PublicPrefix, ctx.Params("*"))
	body, err := c.files.Get(ctx.UserContext(), relPath)
	if err != nil {
		c.GetLogger(ctx).WithError(err).Warn("ошибка чтения файла")
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("File not found"))
	}
	if body == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("File not found"))
	}
	ctx.Type(path.Ext(relPath))
	return ctx.Status(fiber.StatusOK).Send(body)
}
