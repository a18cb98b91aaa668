package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-portal-backend/controllers"
	usershandler "job-portal-backend/lib/users"
	apimodels "job-portal-backend/models/api"
	profileapimodels "job-portal-backend/models/api/profile"
)

type profileApiController struct {
	controllers.BaseAPIController
	handler usershandler.Provider
}

func InitProfileApiRouters(app fiber.Router, handler usershandler.Provider) {
	controller := profileApiController{handler: handler}
	app.Route("student", func(router fiber.Router) {
		router.Get("profile/:email", controller.get)
		router.Put("profile/update", controller.updateStudent)
		router.Delete("account/:email", controller.delete)
		router.Post("upload-pic", controller.uploadPicture)
	})
	app.Route("recruiter", func(router fiber.Router) {
		router.Put("update/:email", controller.updateRecruiter)
		router.Delete("delete/:email", controller.delete)
	})
}

// @Summary Профиль студента
// @Tags Профиль
// @Description Профиль пользователя без пароля
// @Param	email	path	string	true	"почта"
// @Success 200 {object} apimodels.Response{data=profileapimodels.UserView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/student/profile/{email} [get]
func (c *profileApiController) get(ctx *fiber.Ctx) error {
	email, err := c.GetParam(ctx, "email")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.Get(email)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error fetching profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление профиля студента
// @Tags Профиль
// @Description Обновление имени и пароля, пустой пароль не меняется
// @Param	body	body	profileapimodels.StudentUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=profileapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/student/profile/update [put]
func (c *profileApiController) updateStudent(ctx *fiber.Ctx) error {
	var payload profileapimodels.StudentUpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.UpdateStudent(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error updating profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление профиля рекрутера
// @Tags Профиль
// @Description Обновление имени, компании и пароля, пустые поля не меняются
// @Param	email	path	string									true	"почта"
// @Param	body	body	profileapimodels.RecruiterUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=profileapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/update/{email} [put]
func (c *profileApiController) updateRecruiter(ctx *fiber.Ctx) error {
	email, err := c.GetParam(ctx, "email")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload profileapimodels.RecruiterUpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.UpdateRecruiter(email, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error updating profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление аккаунта
// @Tags Профиль
// @Description Удаление пользователя, у студента удаляются отклики, у рекрутера вакансии
// @Param	email	path	string	true	"почта"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/student/account/{email} [delete]
// @router /api/recruiter/delete/{email} [delete]
func (c *profileApiController) delete(ctx *fiber.Ctx) error {
	email, err := c.GetParam(ctx, "email")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = c.handler.DeleteAccount(email); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error deleting account")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Загрузка фото профиля
// @Tags Профиль
// @Description Загрузка фото профиля, multipart форма
// @Accept	multipart/form-data
// @Param	email		formData	string	true	"почта"
// @Param	profilePic	formData	file	true	"фото"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/student/upload-pic [post]
func (c *profileApiController) uploadPicture(ctx *fiber.Ctx) error {
	picture, err := c.FormFile(ctx, "profilePic")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if picture == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("No file uploaded"))
	}
	resp, err := c.handler.UploadPicture(ctx.UserContext(), ctx.FormValue("email"), *picture)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error uploading picture")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
