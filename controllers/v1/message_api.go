package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-portal-backend/controllers"
	messageshandler "job-portal-backend/lib/messages"
	apimodels "job-portal-backend/models/api"
	messageapimodels "job-portal-backend/models/api/message"
)

type messageApiController struct {
	controllers.BaseAPIController
	handler messageshandler.Provider
}

func InitMessageApiRouters(app fiber.Router, handler messageshandler.Provider) {
	controller := messageApiController{handler: handler}
	app.Route("messages", func(router fiber.Router) {
		router.Post("send", controller.send)
		router.Get(":email", controller.list)
	})
}

// @Summary Отправка сообщения
// @Tags Сообщения
// @Description Отправка сообщения между пользователями
// @Param	body	body	messageapimodels.SendRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=messageapimodels.MessageView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/messages/send [post]
func (c *messageApiController) send(ctx *fiber.Ctx) error {
	var payload messageapimodels.SendRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.Send(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error sending message")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Переписка пользователя
// @Tags Сообщения
// @Description Сообщения, где пользователь отправитель или получатель, от старых к новым
// @Param	email	path	string	true	"почта"
// @Success 200 {object} apimodels.Response{data=[]messageapimodels.MessageView}
// @Failure 500 {object} apimodels.Response
// @router /api/messages/{email} [get]
func (c *messageApiController) list(ctx *fiber.Ctx) error {
	email, err := c.GetParam(ctx, "email")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.List(email)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error fetching messages")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
