package applicationshandler

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	applicationsstore "job-portal-backend/lib/applications/store"
	pdfexport "job-portal-backend/lib/export/pdf"
	xlsexport "job-portal-backend/lib/export/xls"
	filestorage "job-portal-backend/lib/file-storage"
	jobsstore "job-portal-backend/lib/jobs/store"
	notificationshandler "job-portal-backend/lib/notifications"
	apperrors "job-portal-backend/lib/utils/app-errors"
	"job-portal-backend/models"
	applicationapimodels "job-portal-backend/models/api/application"
	dbmodels "job-portal-backend/models/db"
)

const (
	textApplied       = "A student applied to your job."
	textOfferSent     = "Your application has been accepted."
	textRejected      = "Your application has been rejected."
	textOfferAccepted = "%v has accepted your offer."
	textOfferRejected = "%v has rejected your offer."
)

type Provider interface {
	Submit(ctx context.Context, req applicationapimodels.SubmitRequest, resume *models.File) (applicationapimodels.ApplicationView, error)
	ListByStudent(studentEmail string) ([]applicationapimodels.ApplicationView, error)
	ListByJob(jobID string) ([]applicationapimodels.ApplicationView, error)
	SendOffer(ctx context.Context, id, message string, offerPdf *models.File) (applicationapimodels.ApplicationView, error)
	SendRejection(id, message string) (applicationapimodels.ApplicationView, error)
	Respond(id string, decision models.OfferDecision) (applicationapimodels.ApplicationView, error)
	RenderPdf(id string) ([]byte, error)
	ExportXlsx(jobID string) (body *bytes.Buffer, fileName string, err error)
}

func NewInstance(
	store applicationsstore.Provider,
	jobsStore jobsstore.Provider,
	notifications notificationshandler.Provider,
	files filestorage.Provider,
	pdf pdfexport.Provider,
	xls xlsexport.Provider,
) Provider {
	return &impl{
		store:         store,
		jobsStore:     jobsStore,
		notifications: notifications,
		files:         files,
		pdf:           pdf,
		xls:           xls,
	}
}

type impl struct {
	store         applicationsstore.Provider
	jobsStore     jobsstore.Provider
	notifications notificationshandler.Provider
	files         filestorage.Provider
	pdf           pdfexport.Provider
	xls           xlsexport.Provider
}

func (i impl) getLogger(applicationID string) *log.Entry {
	return log.WithField("application_id", applicationID)
}

func (i impl) Submit(ctx context.Context, req applicationapimodels.SubmitRequest, resume *models.File) (applicationapimodels.ApplicationView, error) {
	logger := log.
		WithField("job_id", req.JobID).
		WithField("student_email", req.StudentEmail)
	if err := req.Validate(); err != nil {
		return applicationapimodels.ApplicationView{}, apperrors.Validation(err.Error())
	}
	job, err := i.jobsStore.GetByID(req.JobID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, apperrors.Upstream(err, "ошибка получения вакансии")
	}
	if job == nil {
		return applicationapimodels.ApplicationView{}, apperrors.NotFound("вакансия не найдена")
	}
	exist, err := i.store.ExistByJobAndStudent(req.JobID, req.StudentEmail)
	if err != nil {
		return applicationapimodels.ApplicationView{}, apperrors.Upstream(err, "ошибка проверки отклика")
	}
	if exist {
		return applicationapimodels.ApplicationView{}, apperrors.Duplicate("вы уже откликнулись на эту вакансию")
	}

	rec := dbmodels.Application{
		JobID:              req.JobID,
		StudentEmail:       req.StudentEmail,
		StudentName:        req.Data.Personal.FullName(),
		Phone:              req.Data.Personal.Phone,
		Personal:           req.Data.Personal,
		Education:          req.Data.Education,
		Experience:         req.Data.Experience,
		Additional:         req.Data.Additional,
		RecruiterQuestions: req.Data.RecruiterQuestions,
		Status:             models.ApplicationStatusPending,
	}
	if resume != nil {
		rec.Resume, err = i.files.Save(ctx, filestorage.ResumeFolder, *resume)
		if err != nil {
			return applicationapimodels.ApplicationView{}, apperrors.Upstream(err, "ошибка сохранения резюме")
		}
	}
	rec.ID, err = i.store.Create(rec)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return applicationapimodels.ApplicationView{}, apperrors.Duplicate("вы уже откликнулись на эту вакансию")
		}
		return applicationapimodels.ApplicationView{}, apperrors.Upstream(err, "ошибка сохранения отклика")
	}
	logger = logger.WithField("application_id", rec.ID)
	logger.Info("отклик создан")

	rec.Job = job
	view := applicationapimodels.ApplicationConvert(rec)
	_, err = i.notifications.Emit(notificationshandler.Event{
		RecipientEmail: job.RecruiterEmail,
		SenderEmail:    req.StudentEmail,
		Type:           models.NotificationTypeApplication,
		Message:        textApplied,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка отправки уведомления рекрутеру")
		return view, err
	}
	return view, nil
}

func (i impl) ListByStudent(studentEmail string) ([]applicationapimodels.ApplicationView, error) {
	list, err := i.store.ListByStudent(studentEmail)
	if err != nil {
		return nil, apperrors.Upstream(err, "ошибка получения списка откликов")
	}
	return applicationapimodels.ApplicationListConvert(list), nil
}

func (i impl) ListByJob(jobID string) ([]applicationapimodels.ApplicationView, error) {
	list, err := i.store.ListByJob(jobID)
	if err != nil {
		return nil, apperrors.Upstream(err, "ошибка получения списка откликов")
	}
	return applicationapimodels.ApplicationListConvert(list), nil
}

func (i impl) SendOffer(ctx context.Context, id, message string, offerPdf *models.File) (applicationapimodels.ApplicationView, error) {
	rec, job, err := i.loadForTransition(id, models.ApplicationStatusAccepted)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"offer_letter": message,
		"accepted_at":  now,
	}
	if offerPdf != nil {
		path, err := i.files.Save(ctx, filestorage.OfferFolder, *offerPdf)
		if err != nil {
			return applicationapimodels.ApplicationView{}, apperrors.Upstream(err, "ошибка сохранения оффера")
		}
		updMap["offer_pdf"] = path
		rec.OfferPdf = path
	}
	if err = i.applyTransition(rec, models.ApplicationStatusAccepted, updMap); err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	rec.OfferLetter = message
	rec.AcceptedAt = &now

	return i.emitAfterTransition(rec, notificationshandler.Event{
		RecipientEmail: rec.StudentEmail,
		SenderEmail:    job.RecruiterEmail,
		Type:           models.NotificationTypeAccepted,
		Message:        textOfferSent,
		Attachment:     offerPdf,
	})
}

func (i impl) SendRejection(id, message string) (applicationapimodels.ApplicationView, error) {
	rec, job, err := i.loadForTransition(id, models.ApplicationStatusRejected)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"rejection_message": message,
		"rejected_at":       now,
	}
	if err = i.applyTransition(rec, models.ApplicationStatusRejected, updMap); err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	rec.RejectionMessage = message
	rec.RejectedAt = &now

	return i.emitAfterTransition(rec, notificationshandler.Event{
		RecipientEmail: rec.StudentEmail,
		SenderEmail:    job.RecruiterEmail,
		Type:           models.NotificationTypeRejected,
		Message:        textRejected,
	})
}

func (i impl) Respond(id string, decision models.OfferDecision) (applicationapimodels.ApplicationView, error) {
	if !decision.IsValid() {
		return applicationapimodels.ApplicationView{}, apperrors.Validation(fmt.Sprintf("некорректное решение: %v", decision))
	}
	to := models.ApplicationStatusOfferAccepted
	notificationType := models.NotificationTypeAccept
	text := textOfferAccepted
	if decision == models.OfferDecisionReject {
		to = models.ApplicationStatusOfferRejected
		notificationType = models.NotificationTypeReject
		text = textOfferRejected
	}
	rec, job, err := i.loadForTransition(id, to)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if err = i.applyTransition(rec, to, map[string]interface{}{}); err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	return i.emitAfterTransition(rec, notificationshandler.Event{
		RecipientEmail: job.RecruiterEmail,
		SenderEmail:    rec.StudentEmail,
		Type:           notificationType,
		Message:        fmt.Sprintf(text, rec.StudentEmail),
	})
}

// loadForTransition получает отклик и его вакансию и проверяет, что переход разрешен
func (i impl) loadForTransition(id string, to models.ApplicationStatus) (*dbmodels.Application, *dbmodels.Job, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, nil, apperrors.Upstream(err, "ошибка получения отклика")
	}
	if rec == nil {
		return nil, nil, apperrors.NotFound("отклик не найден")
	}
	if rec.Status.IsTerminal() {
		return nil, nil, apperrors.InvalidTransition(fmt.Sprintf("решение по отклику уже принято, статус %q", rec.Status))
	}
	if !rec.Status.CanMoveTo(to) {
		return nil, nil, apperrors.InvalidTransition(fmt.Sprintf("отклик в статусе %q нельзя перевести в статус %q", rec.Status, to))
	}
	job := rec.Job
	if job == nil {
		job, err = i.jobsStore.GetByID(rec.JobID)
		if err != nil {
			return nil, nil, apperrors.Upstream(err, "ошибка получения вакансии")
		}
		if job == nil {
			return nil, nil, apperrors.NotFound("вакансия не найдена")
		}
		rec.Job = job
	}
	return rec, job, nil
}

// applyTransition обновляет запись только если статус не изменился с момента чтения
func (i impl) applyTransition(rec *dbmodels.Application, to models.ApplicationStatus, updMap map[string]interface{}) error {
	updMap["status"] = to
	updated, err := i.store.UpdateStatus(rec.ID, rec.Status, updMap)
	if err != nil {
		return apperrors.Upstream(err, "ошибка обновления отклика")
	}
	if !updated {
		return apperrors.InvalidTransition("статус отклика уже изменен")
	}
	i.getLogger(rec.ID).
		WithField("from", rec.Status).
		WithField("to", to).
		Info("статус отклика изменен")
	rec.Status = to
	return nil
}

// emitAfterTransition ошибка уведомления возвращается, но переход не откатывается
func (i impl) emitAfterTransition(rec *dbmodels.Application, event notificationshandler.Event) (applicationapimodels.ApplicationView, error) {
	view := applicationapimodels.ApplicationConvert(*rec)
	_, err := i.notifications.Emit(event)
	if err != nil {
		i.getLogger(rec.ID).WithError(err).Error("ошибка отправки уведомления")
		return view, err
	}
	return view, nil
}

func (i impl) RenderPdf(id string) ([]byte, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, apperrors.Upstream(err, "ошибка получения отклика")
	}
	if rec == nil {
		return nil, apperrors.NotFound("отклик не найден")
	}
	body, err := i.pdf.ApplicationPdf(*rec, rec.Job)
	if err != nil {
		return nil, apperrors.Upstream(err, "ошибка формирования pdf")
	}
	return body, nil
}

func (i impl) ExportXlsx(jobID string) (*bytes.Buffer, string, error) {
	job, err := i.jobsStore.GetByID(jobID)
	if err != nil {
		return nil, "", apperrors.Upstream(err, "ошибка получения вакансии")
	}
	if job == nil {
		return nil, "", apperrors.NotFound("вакансия не найдена")
	}
	list, err := i.store.ListByJob(jobID)
	if err != nil {
		return nil, "", apperrors.Upstream(err, "ошибка получения списка откликов")
	}
	body, err := i.xls.ExportApplicationList(job.Title, list)
	if err != nil {
		return nil, "", apperrors.Upstream(err, "ошибка формирования xlsx")
	}
	fileName := strings.ReplaceAll(strings.TrimSpace(job.Title), " ", "_")
	if fileName == "" {
		fileName = "applications"
	}
	return body, fileName + ".xlsx", nil
}
