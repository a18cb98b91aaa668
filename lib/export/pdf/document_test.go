package pdfexport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

func questions(t *testing.T, raw string) dbmodels.QuestionAnswers {
	result := dbmodels.QuestionAnswers{}
	require.NoError(t, json.Unmarshal([]byte(raw), &result))
	return result
}

func TestIsFilled(t *testing.T) {
	require.False(t, IsFilled(nil))
	require.False(t, IsFilled(""))
	require.False(t, IsFilled("  \t"))
	require.False(t, IsFilled([]interface{}{}))
	require.False(t, IsFilled([]string{}))
	require.True(t, IsFilled("x"))
	require.True(t, IsFilled([]interface{}{"a"}))
	require.True(t, IsFilled(json.Number("0")))
	require.True(t, IsFilled(false))
	var nilPtr *string
	require.False(t, IsFilled(nilPtr))
}

func TestBuildApplicationDocument(t *testing.T) {
	t.Run("заголовок", func(t *testing.T) {
		doc := BuildApplicationDocument(dbmodels.Application{
			StudentName:  "Ann Lee",
			StudentEmail: "ann@x.com",
			Status:       models.ApplicationStatusPending,
		}, &dbmodels.Job{Title: "Intern", Company: "Acme"}, "")
		texts := doc.Texts()
		require.Equal(t, []string{
			"Application Details",
			"Applicant: Ann Lee",
			"Email: ann@x.com",
			"Status: pending",
			"Job: Intern (Acme)",
		}, texts[:5])
	})
	t.Run("личные данные только заполненные", func(t *testing.T) {
		doc := BuildApplicationDocument(dbmodels.Application{
			Personal: dbmodels.PersonalInfo{Phone: "123", City: "  "},
		}, nil, "")
		require.True(t, doc.Contains(HeadingPersonal))
		require.True(t, doc.Contains("Phone: 123"))
		for _, text := range doc.Texts() {
			require.False(t, strings.HasPrefix(text, "City"))
		}
	})
	t.Run("без личных данных раздел не выводится", func(t *testing.T) {
		doc := BuildApplicationDocument(dbmodels.Application{}, nil, "")
		require.False(t, doc.Contains(HeadingPersonal))
		require.False(t, doc.Contains(HeadingEducation))
		require.False(t, doc.Contains(HeadingExperience))
		require.False(t, doc.Contains(HeadingAdditional))
		require.False(t, doc.Contains(HeadingResume))
		require.True(t, doc.Contains(HeadingJobQuestions))
		require.True(t, doc.Contains(NoQuestionsText))
	})
	t.Run("образование", func(t *testing.T) {
		doc := BuildApplicationDocument(dbmodels.Application{
			Education: dbmodels.EducationList{
				{Country: "IN"},
				{School: "MIT", From: "2019", City: "Boston"},
			},
		}, nil, "")
		require.True(t, doc.Contains(HeadingEducation))
		require.True(t, doc.Contains("School/College: MIT"))
		require.True(t, doc.Contains("From: 2019"))
		require.True(t, doc.Contains("City: Boston"))
		require.False(t, doc.Contains("Country: IN"))
	})
	t.Run("образование без школы и дат не выводится", func(t *testing.T) {
		doc := BuildApplicationDocument(dbmodels.Application{
			Education: dbmodels.EducationList{{Country: "IN", City: "Pune"}},
		}, nil, "")
		require.False(t, doc.Contains(HeadingEducation))
	})
	t.Run("опыт", func(t *testing.T) {
		doc := BuildApplicationDocument(dbmodels.Application{
			Experience: dbmodels.ExperienceList{
				{Mode: "remote"},
				{Role: "Dev", Mode: "onsite", Description: "backend"},
			},
		}, nil, "")
		require.True(t, doc.Contains(HeadingExperience))
		require.True(t, doc.Contains("Role: Dev"))
		require.True(t, doc.Contains("Mode: onsite"))
		require.True(t, doc.Contains("Description: backend"))
		require.False(t, doc.Contains("Mode: remote"))
	})
	t.Run("дополнительные вопросы", func(t *testing.T) {
		doc := BuildApplicationDocument(dbmodels.Application{
			Additional: dbmodels.AdditionalInfo{EligibleToWork: "yes"},
		}, nil, "")
		require.True(t, doc.Contains(HeadingAdditional))
		require.True(t, doc.Contains("Eligible to work: yes"))
		require.False(t, doc.Contains("Gender: "))
	})
	t.Run("вопросы без ответов", func(t *testing.T) {
		doc := BuildApplicationDocument(dbmodels.Application{
			RecruiterQuestions: questions(t, `{"Why us?":"","Skills":[]}`),
		}, nil, "")
		require.True(t, doc.Contains(NoAnswersText))
		require.False(t, doc.Contains(NoQuestionsText))
	})
	t.Run("нумерация только отвеченных в порядке ввода", func(t *testing.T) {
		doc := BuildApplicationDocument(dbmodels.Application{
			RecruiterQuestions: questions(t, `{"Zeta":"z","Skipped":"  ","Alpha":["go","sql"],"Years":3}`),
		}, nil, "")
		texts := doc.Texts()
		start := -1
		for idx, text := range texts {
			if text == HeadingJobQuestions {
				start = idx
			}
		}
		require.NotEqual(t, -1, start)
		require.Equal(t, []string{
			"Q1: Zeta", "Answer: z",
			"Q2: Alpha", "Answer: go,sql",
			"Q3: Years", "Answer: 3",
		}, texts[start+1:start+7])
		require.False(t, doc.Contains(NoAnswersText))
	})
	t.Run("ссылка на резюме", func(t *testing.T) {
		doc := BuildApplicationDocument(dbmodels.Application{
			Resume: "uploads/resume/a.pdf",
		}, nil, "http://localhost:5000/")
		last := doc.Lines[len(doc.Lines)-1]
		require.Equal(t, LineLink, last.Kind)
		require.Equal(t, "Click here to view resume: uploads/resume/a.pdf", last.Text)
		require.Equal(t, "http://localhost:5000/uploads/resume/a.pdf", last.Link)
	})
}

func TestRender(t *testing.T) {
	app := dbmodels.Application{
		StudentName:  "Zoë Müller",
		StudentEmail: "z@x.com",
		Status:       models.ApplicationStatusAccepted,
		Personal:     dbmodels.PersonalInfo{FirstName: "Zoë", LastName: "Müller", Phone: "123"},
		Resume:       "uploads/resume/r.pdf",
	}
	for idx := 0; idx < 80; idx++ {
		app.Experience = append(app.Experience, dbmodels.Experience{
			Company:     fmt.Sprintf("Company %v", idx),
			Description: strings.Repeat("long text ", 20),
		})
	}
	body, err := NewInstance("http://localhost:5000/").ApplicationPdf(app, nil)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(body, []byte("%PDF")))
	pages := bytes.Count(body, []byte("/Type /Page")) - bytes.Count(body, []byte("/Type /Pages"))
	require.Greater(t, pages, 1)
}
