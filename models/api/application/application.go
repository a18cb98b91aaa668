package applicationapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"job-portal-backend/models"
	jobapimodels "job-portal-backend/models/api/job"
	dbmodels "job-portal-backend/models/db"
)

type ApplicationView struct {
	ID                 string                   `json:"id"`
	JobID              string                   `json:"jobId"`
	Job                *jobapimodels.JobView    `json:"job,omitempty"`
	StudentEmail       string                   `json:"studentEmail"`
	StudentName        string                   `json:"studentName"`
	Phone              string                   `json:"phone"`
	Personal           dbmodels.PersonalInfo    `json:"personal"`
	Education          dbmodels.EducationList   `json:"education"`
	Experience         dbmodels.ExperienceList  `json:"experience"`
	Additional         dbmodels.AdditionalInfo  `json:"additional"`
	RecruiterQuestions dbmodels.QuestionAnswers `json:"recruiterQuestions"`
	Resume             string                   `json:"resume"`
	Status             models.ApplicationStatus `json:"status"`
	OfferLetter        string                   `json:"offerLetter,omitempty"`
	OfferPdf           string                   `json:"offerPdf,omitempty"`
	RejectionMessage   string                   `json:"rejectionMessage,omitempty"`
	AcceptedAt         *time.Time               `json:"acceptedAt,omitempty"`
	RejectedAt         *time.Time               `json:"rejectedAt,omitempty"`
	CreatedAt          time.Time                `json:"createdAt"`
	UpdatedAt          time.Time                `json:"updatedAt"`
}

func ApplicationConvert(rec dbmodels.Application) ApplicationView {
	result := ApplicationView{
		ID:                 rec.ID,
		JobID:              rec.JobID,
		StudentEmail:       rec.StudentEmail,
		StudentName:        rec.StudentName,
		Phone:              rec.Phone,
		Personal:           rec.Personal,
		Education:          rec.Education,
		Experience:         rec.Experience,
		Additional:         rec.Additional,
		RecruiterQuestions: rec.RecruiterQuestions,
		Resume:             rec.Resume,
		Status:             rec.Status,
		OfferLetter:        rec.OfferLetter,
		OfferPdf:           rec.OfferPdf,
		RejectionMessage:   rec.RejectionMessage,
		AcceptedAt:         rec.AcceptedAt,
		RejectedAt:         rec.RejectedAt,
		CreatedAt:          rec.CreatedAt,
		UpdatedAt:          rec.UpdatedAt,
	}
	if result.Education == nil {
		result.Education = dbmodels.EducationList{}
	}
	if result.Experience == nil {
		result.Experience = dbmodels.ExperienceList{}
	}
	if result.RecruiterQuestions == nil {
		result.RecruiterQuestions = dbmodels.QuestionAnswers{}
	}
	if rec.Job != nil {
		job := jobapimodels.JobConvert(*rec.Job)
		result.Job = &job
	}
	return result
}

func ApplicationListConvert(list []dbmodels.Application) []ApplicationView {
	result := make([]ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, ApplicationConvert(rec))
	}
	return result
}

type SubmitRequest struct {
	JobID        string
	StudentEmail string
	Data         dbmodels.ApplicationData
}

func (r SubmitRequest) Validate() error {
	if strings.TrimSpace(r.JobID) == "" {
		return errors.New("не указан идентификатор вакансии")
	}
	if strings.TrimSpace(r.StudentEmail) == "" {
		return errors.New("не указана почта студента")
	}
	return nil
}

type RejectionRequest struct {
	Message string `json:"message"`
}

func (r RejectionRequest) Validate() error {
	return nil
}

type RespondRequest struct {
	Decision models.OfferDecision `json:"decision"` // accept/reject
}

func (r RespondRequest) Validate() error {
	if !r.Decision.IsValid() {
		return errors.Errorf("некорректное решение: %v", r.Decision)
	}
	return nil
}
