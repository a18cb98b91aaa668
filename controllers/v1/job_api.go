package apiv1

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"job-portal-backend/controllers"
	jobshandler "job-portal-backend/lib/jobs"
	"job-portal-backend/models"
	apimodels "job-portal-backend/models/api"
	jobapimodels "job-portal-backend/models/api/job"
)

type jobApiController struct {
	controllers.BaseAPIController
	handler jobshandler.Provider
}

func InitJobApiRouters(app fiber.Router, handler jobshandler.Provider) {
	controller := jobApiController{handler: handler}
	app.Route("jobs", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("available/:email", controller.listAvailable)
		router.Get(":id", controller.get)
	})
	app.Route("recruiter", func(router fiber.Router) {
		router.Post("post-job", controller.create)
		router.Get("my-jobs/:email", controller.listByRecruiter)
	})
}

// @Summary Публикация вакансии
// @Tags Вакансия
// @Description Публикация вакансии, multipart форма. eligibility и questions передаются json строкой, pdf сохраняется только для jobType=pdf
// @Accept	multipart/form-data
// @Param	recruiterEmail	formData	string	true	"почта рекрутера"
// @Param	company			formData	string	true	"компания"
// @Param	title			formData	string	true	"название"
// @Param	description		formData	string	true	"описание"
// @Param	jobType			formData	string	false	"pdf/questions"
// @Param	eligibility		formData	string	false	"json требований"
// @Param	questions		formData	string	false	"json списка вопросов"
// @Param	pdf				formData	file	false	"описание вакансии"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/post-job [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	payload := jobapimodels.JobData{
		RecruiterEmail: ctx.FormValue("recruiterEmail"),
		Company:        ctx.FormValue("company"),
		Title:          ctx.FormValue("title"),
		Description:    ctx.FormValue("description"),
		JobType:        models.JobType(ctx.FormValue("jobType")),
	}
	if eligibility := strings.TrimSpace(ctx.FormValue("eligibility")); eligibility != "" {
		if err := json.Unmarshal([]byte(eligibility), &payload.Eligibility); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("некорректный формат eligibility"))
		}
	}
	if questions := strings.TrimSpace(ctx.FormValue("questions")); questions != "" {
		if err := json.Unmarshal([]byte(questions), &payload.Questions); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("некорректный формат questions"))
		}
	}
	pdf, err := c.FormFile(ctx, "pdf")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.Create(ctx.UserContext(), payload, pdf)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Job post failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список вакансий
// @Tags Вакансия
// @Description Все вакансии, новые первыми
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 500 {object} apimodels.Response
// @router /api/jobs [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	resp, err := c.handler.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error fetching jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Доступные студенту вакансии
// @Tags Вакансия
// @Description Вакансии, на которые студент еще не откликался
// @Param	email	path	string	true	"почта студента"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 500 {object} apimodels.Response
// @router /api/jobs/available/{email} [get]
func (c *jobApiController) listAvailable(ctx *fiber.Ctx) error {
	email, err := c.GetParam(ctx, "email")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.ListAvailable(email)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error fetching jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получение по ИД
// @Tags Вакансия
// @Description Получение по ИД
// @Param	id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/jobs/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error fetching job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Вакансии рекрутера
// @Tags Вакансия
// @Description Вакансии рекрутера, новые первыми
// @Param	email	path	string	true	"почта рекрутера"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/my-jobs/{email} [get]
func (c *jobApiController) listByRecruiter(ctx *fiber.Ctx) error {
	email, err := c.GetParam(ctx, "email")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.ListByRecruiter(email)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error fetching jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
