package dbmodels

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"job-portal-backend/models"
)

type Job struct {
	BaseModel
	RecruiterEmail string         `gorm:"type:varchar(255);index"`
	Company        string         `gorm:"type:varchar(255)"`
	Title          string         `gorm:"type:varchar(255)"`
	Description    string
	JobType        models.JobType `gorm:"type:varchar(50)"`
	PdfPath        string
	Eligibility    Eligibility  `gorm:"embedded;embeddedPrefix:eligibility_"`
	Questions      JobQuestions `gorm:"type:jsonb"`
}

type Eligibility struct {
	Skills        pq.StringArray `gorm:"type:text[]" json:"skills"`
	YearOfStudy   string         `json:"yearOfStudy"`
	Mode          string         `json:"mode"`
	PaidType      string         `json:"paidType"`
	StipendAmount string         `json:"stipendAmount"`
	Duration      string         `json:"duration"`
	Location      Location       `gorm:"embedded;embeddedPrefix:location_" json:"location"`
}

type Location struct {
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`
}

type JobQuestion struct {
	QuestionText string            `json:"questionText"`
	AnswerType   models.AnswerType `json:"answerType"`
	Options      []string          `json:"options"`
}

type JobQuestions []JobQuestion

func (j JobQuestions) Value() (driver.Value, error) {
	return jsonValue(j)
}

func (j *JobQuestions) Scan(value interface{}) error {
	return jsonScan(value, j)
}
