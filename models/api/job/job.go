package jobapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

type JobData struct {
	RecruiterEmail string                `json:"recruiterEmail"`
	Company        string                `json:"company"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	JobType        models.JobType        `json:"jobType"` // pdf/questions
	Eligibility    dbmodels.Eligibility  `json:"eligibility"`
	Questions      dbmodels.JobQuestions `json:"questions"`
}

func (j JobData) Validate() error {
	if strings.TrimSpace(j.RecruiterEmail) == "" {
		return errors.New("не указана почта рекрутера")
	}
	if strings.TrimSpace(j.Company) == "" {
		return errors.New("не указана компания")
	}
	if strings.TrimSpace(j.Title) == "" {
		return errors.New("не указано название вакансии")
	}
	if strings.TrimSpace(j.Description) == "" {
		return errors.New("не указано описание вакансии")
	}
	if j.JobType != "" && !j.JobType.IsValid() {
		return errors.Errorf("некорректный тип вакансии: %v", j.JobType)
	}
	for idx, question := range j.Questions {
		if strings.TrimSpace(question.QuestionText) == "" {
			return errors.Errorf("не указан текст вопроса %v", idx+1)
		}
		if question.AnswerType != "" && !question.AnswerType.IsValid() {
			return errors.Errorf("некорректный тип ответа на вопрос %v", idx+1)
		}
	}
	return nil
}

type JobView struct {
	ID string `json:"id"`
	JobData
	PdfPath   string    `json:"pdfPath,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func JobConvert(rec dbmodels.Job) JobView {
	questions := rec.Questions
	if questions == nil {
		questions = dbmodels.JobQuestions{}
	}
	eligibility := rec.Eligibility
	if eligibility.Skills == nil {
		eligibility.Skills = []string{}
	}
	return JobView{
		ID: rec.ID,
		JobData: JobData{
			RecruiterEmail: rec.RecruiterEmail,
			Company:        rec.Company,
			Title:          rec.Title,
			Description:    rec.Description,
			JobType:        rec.JobType,
			Eligibility:    eligibility,
			Questions:      questions,
		},
		PdfPath:   rec.PdfPath,
		CreatedAt: rec.CreatedAt,
	}
}

func JobListConvert(list []dbmodels.Job) []JobView {
	result := make([]JobView, 0, len(list))
	for _, rec := range list {
		result = append(result, JobConvert(rec))
	}
	return result
}
