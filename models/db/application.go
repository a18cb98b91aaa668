package dbmodels

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
	"job-portal-backend/models"
)

type Application struct {
	BaseModel
	JobID              string                   `gorm:"type:varchar(36);not null;uniqueIndex:idx_application_job_student"`
	Job                *Job                     `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	StudentEmail       string                   `gorm:"type:varchar(255);not null;uniqueIndex:idx_application_job_student;index"`
	StudentName        string                   `gorm:"type:varchar(255)"`
	Phone              string                   `gorm:"type:varchar(50)"`
	Personal           PersonalInfo             `gorm:"type:jsonb"`
	Education          EducationList            `gorm:"type:jsonb"`
	Experience         ExperienceList           `gorm:"type:jsonb"`
	Additional         AdditionalInfo           `gorm:"type:jsonb"`
	RecruiterQuestions QuestionAnswers          `gorm:"type:json"` // json, а не jsonb: jsonb не сохраняет порядок ключей
	Resume             string                   // относительный путь к файлу резюме
	Status             models.ApplicationStatus `gorm:"type:varchar(50);index"`
	OfferLetter        string
	OfferPdf           string
	RejectionMessage   string
	AcceptedAt         *time.Time
	RejectedAt         *time.Time
}

type PersonalInfo struct {
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
}

func (p PersonalInfo) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p PersonalInfo) Value() (driver.Value, error) {
	return jsonValue(p)
}

func (p *PersonalInfo) Scan(value interface{}) error {
	return jsonScan(value, p)
}

type Education struct {
	School  string `json:"school"`
	From    string `json:"from"`
	To      string `json:"to"`
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`
}

type EducationList []Education

func (j EducationList) Value() (driver.Value, error) {
	return jsonValue(j)
}

func (j *EducationList) Scan(value interface{}) error {
	return jsonScan(value, j)
}

type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Mode        string `json:"mode"`
	From        string `json:"from"`
	To          string `json:"to"`
	Country     string `json:"country"`
	State       string `json:"state"`
	City        string `json:"city"`
	Description string `json:"description"`
}

type ExperienceList []Experience

func (j ExperienceList) Value() (driver.Value, error) {
	return jsonValue(j)
}

func (j *ExperienceList) Scan(value interface{}) error {
	return jsonScan(value, j)
}

type AdditionalInfo struct {
	Gender         string `json:"gender"`
	EligibleToWork string `json:"eligibleToWork"`
	HearAboutUs    string `json:"hearAboutUs"`
}

func (j AdditionalInfo) Value() (driver.Value, error) {
	return jsonValue(j)
}

func (j *AdditionalInfo) Scan(value interface{}) error {
	return jsonScan(value, j)
}

// QuestionAnswer ответ студента на вопрос рекрутера
type QuestionAnswer struct {
	Question string
	Answer   interface{}
}

// QuestionAnswers упорядоченная карта вопрос -> ответ.
// В json представлена объектом, порядок ключей сохраняется.
type QuestionAnswers []QuestionAnswer

func (q QuestionAnswers) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte('{')
	for idx, item := range q {
		if idx > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(item.Question)
		if err != nil {
			return nil, err
		}
		answer, err := json.Marshal(item.Answer)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(answer)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (q *QuestionAnswers) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		*q = QuestionAnswers{}
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("ответы на вопросы должны быть json объектом")
	}
	result := QuestionAnswers{}
	positions := map[string]int{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		question, ok := keyTok.(string)
		if !ok {
			return errors.New("некорректный ключ вопроса")
		}
		var answer interface{}
		if err = dec.Decode(&answer); err != nil {
			return errors.Wrapf(err, "некорректный ответ на вопрос %q", question)
		}
		// повторный ключ перезаписывает значение, но не позицию
		if pos, exist := positions[question]; exist {
			result[pos].Answer = answer
			continue
		}
		positions[question] = len(result)
		result = append(result, QuestionAnswer{Question: question, Answer: answer})
	}
	if _, err = dec.Token(); err != nil {
		return err
	}
	*q = result
	return nil
}

func (q QuestionAnswers) Value() (driver.Value, error) {
	return jsonValue(q)
}

func (q *QuestionAnswers) Scan(value interface{}) error {
	return jsonScan(value, q)
}

// ApplicationData вложенный json формы отклика
type ApplicationData struct {
	Personal           PersonalInfo    `json:"personal"`
	Education          EducationList   `json:"education"`
	Experience         ExperienceList  `json:"experience"`
	Additional         AdditionalInfo  `json:"additional"`
	RecruiterQuestions QuestionAnswers `json:"recruiterQuestions"`
}
