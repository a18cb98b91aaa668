package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-portal-backend/controllers"
	authhandler "job-portal-backend/lib/auth"
	apimodels "job-portal-backend/models/api"
	authapimodels "job-portal-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
	handler authhandler.Provider
}

func InitAuthApiRouters(app fiber.Router, handler authhandler.Provider) {
	controller := authApiController{handler: handler}
	app.Post("signup", controller.signup)
	app.Post("login", controller.login)
}

// @Summary Регистрация
// @Tags Аутентификация пользователей
// @Description Регистрация студента или рекрутера
// @Param	body	body	authapimodels.SignupRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=profileapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/signup [post]
func (c *authApiController) signup(ctx *fiber.Ctx) error {
	var payload authapimodels.SignupRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.Signup(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Signup failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Аутентификация пользователя
// @Tags Аутентификация пользователей
// @Description Вход с проверкой роли, роль должна совпадать с ролью при регистрации
// @Param	body	body	authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.LoginResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.Login(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Login failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
