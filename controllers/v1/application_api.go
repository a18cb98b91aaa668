package apiv1

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"job-portal-backend/controllers"
	applicationshandler "job-portal-backend/lib/applications"
	apimodels "job-portal-backend/models/api"
	applicationapimodels "job-portal-backend/models/api/application"
)

type applicationApiController struct {
	controllers.BaseAPIController
	handler applicationshandler.Provider
}

func InitApplicationApiRouters(app fiber.Router, handler applicationshandler.Provider) {
	controller := applicationApiController{handler: handler}
	app.Post("apply", controller.submit)
	app.Get("applications/:studentEmail", controller.listByStudent)
	app.Route("recruiter", func(router fiber.Router) {
		router.Get("applications/:jobId/export", controller.exportXlsx)
		router.Get("applications/:jobId", controller.listByJob)
		router.Post("application/:id/send-offer", controller.sendOffer)
		router.Post("application/:id/send-rejection", controller.sendRejection)
		router.Get("application/:id/pdf", controller.renderPdf)
	})
	app.Post("student/respond/:id", controller.respond)
}

// @Summary Отклик на вакансию
// @Tags Отклик
// @Description Отклик студента, multipart форма. application передается json строкой
// @Accept	multipart/form-data
// @Param	jobId			formData	string	true	"ИД вакансии"
// @Param	studentEmail	formData	string	true	"почта студента"
// @Param	application		formData	string	false	"json анкеты"
// @Param	resume			formData	file	false	"резюме"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/apply [post]
func (c *applicationApiController) submit(ctx *fiber.Ctx) error {
	payload := applicationapimodels.SubmitRequest{
		JobID:        ctx.FormValue("jobId"),
		StudentEmail: ctx.FormValue("studentEmail"),
	}
	if data := strings.TrimSpace(ctx.FormValue("application")); data != "" {
		if err := json.Unmarshal([]byte(data), &payload.Data); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("некорректный формат application"))
		}
	}
	resume, err := c.FormFile(ctx, "resume")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.Submit(ctx.UserContext(), payload, resume)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Application submission failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отклики студента
// @Tags Отклик
// @Description Отклики студента вместе с вакансиями
// @Param	studentEmail	path	string	true	"почта студента"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 500 {object} apimodels.Response
// @router /api/applications/{studentEmail} [get]
func (c *applicationApiController) listByStudent(ctx *fiber.Ctx) error {
	email, err := c.GetParam(ctx, "studentEmail")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.ListByStudent(email)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error fetching applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отклики по вакансии
// @Tags Отклик
// @Description Отклики по вакансии
// @Param	jobId	path	string	true	"ИД вакансии"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/applications/{jobId} [get]
func (c *applicationApiController) listByJob(ctx *fiber.Ctx) error {
	jobID, err := c.GetParam(ctx, "jobId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.ListByJob(jobID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error fetching applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Выгрузка откликов в xlsx
// @Tags Отклик
// @Description Выгрузка откликов по вакансии в xlsx
// @Param	jobId	path	string	true	"ИД вакансии"
// @Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/applications/{jobId}/export [get]
func (c *applicationApiController) exportXlsx(ctx *fiber.Ctx) error {
	jobID, err := c.GetParam(ctx, "jobId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, fileName, err := c.handler.ExportXlsx(jobID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Export failed")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(fileName)))
	return ctx.Status(fiber.StatusOK).SendStream(body, body.Len())
}

// @Summary Отправка оффера
// @Tags Отклик
// @Description Перевод отклика из pending в accepted, студент получает уведомление
// @Accept	multipart/form-data
// @Param	id			path		string	true	"ИД отклика"
// @Param	message		formData	string	false	"текст оффера"
// @Param	offerPdf	formData	file	false	"оффер в pdf"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/application/{id}/send-offer [post]
func (c *applicationApiController) sendOffer(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	offerPdf, err := c.FormFile(ctx, "offerPdf")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.SendOffer(ctx.UserContext(), id, ctx.FormValue("message"), offerPdf)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to send offer")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отказ по отклику
// @Tags Отклик
// @Description Перевод отклика из pending в rejected, студент получает уведомление
// @Param	id		path	string									true	"ИД отклика"
// @Param	body	body	applicationapimodels.RejectionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/application/{id}/send-rejection [post]
func (c *applicationApiController) sendRejection(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.RejectionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.SendRejection(id, payload.Message)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to send rejection")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Анкета отклика в pdf
// @Tags Отклик
// @Description Анкета отклика в pdf, отдается inline
// @Param	id	path	string	true	"ИД отклика"
// @Produce	application/pdf
// @Success 200 {file} file
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/application/{id}/pdf [get]
func (c *applicationApiController) renderPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, err := c.handler.RenderPdf(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error generating PDF")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=application-%s.pdf", id))
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Ответ студента на оффер
// @Tags Отклик
// @Description Перевод отклика из accepted в offer_accepted или offer_rejected, рекрутер получает уведомление
// @Param	id		path	string								true	"ИД отклика"
// @Param	body	body	applicationapimodels.RespondRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/student/respond/{id} [post]
func (c *applicationApiController) respond(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.RespondRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.Respond(id, payload.Decision)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to respond to offer")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
