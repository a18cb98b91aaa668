package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-portal-backend/controllers"
	notificationshandler "job-portal-backend/lib/notifications"
	apimodels "job-portal-backend/models/api"
)

type notificationApiController struct {
	controllers.BaseAPIController
	handler notificationshandler.Provider
}

func InitNotificationApiRouters(app fiber.Router, handler notificationshandler.Provider) {
	controller := notificationApiController{handler: handler}
	app.Route("notifications", func(router fiber.Router) {
		router.Put("read/:id", controller.markRead)
		router.Get(":email", controller.list)
	})
}

// @Summary Уведомления пользователя
// @Tags Уведомления
// @Description Уведомления пользователя, новые первыми
// @Param	email	path	string	true	"почта"
// @Success 200 {object} apimodels.Response{data=[]notificationapimodels.NotificationView}
// @Failure 500 {object} apimodels.Response
// @router /api/notifications/{email} [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	email, err := c.GetParam(ctx, "email")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.List(email)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error fetching notifications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отметка о прочтении
// @Tags Уведомления
// @Description Отметка уведомления как прочитанного
// @Param	id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/notifications/read/{id} [put]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = c.handler.MarkRead(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error updating notification")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
