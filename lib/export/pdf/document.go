package pdfexport

import (
	"fmt"
	"strings"

	dbmodels "job-portal-backend/models/db"
)

type LineKind int

const (
	LineTitle    LineKind = iota // заголовок документа
	LineSubtitle                 // строки под заголовком, по центру
	LineHeading                  // заголовок раздела
	LineText
	LineLink
	LineSpacer
)

type Line struct {
	Kind LineKind
	Text string
	Link string // только для LineLink
}

// Document построчная модель документа, не зависит от формата вывода
type Document struct {
	Lines []Line
}

func (d *Document) add(kind LineKind, text string) {
	d.Lines = append(d.Lines, Line{Kind: kind, Text: text})
}

func (d *Document) addField(label string, value interface{}) {
	if IsFilled(value) {
		d.add(LineText, label+": "+formatAnswer(value))
	}
}

func (d *Document) spacer() {
	d.Lines = append(d.Lines, Line{Kind: LineSpacer})
}

// Texts текст всех строк кроме отступов
func (d Document) Texts() []string {
	result := make([]string, 0, len(d.Lines))
	for _, line := range d.Lines {
		if line.Kind == LineSpacer {
			continue
		}
		result = append(result, line.Text)
	}
	return result
}

func (d Document) Contains(text string) bool {
	for _, line := range d.Lines {
		if line.Kind != LineSpacer && line.Text == text {
			return true
		}
	}
	return false
}

const (
	HeadingPersonal     = "PERSONAL DETAILS"
	HeadingEducation    = "EDUCATION"
	HeadingExperience   = "EXPERIENCE"
	HeadingAdditional   = "ADDITIONAL QUESTIONS"
	HeadingJobQuestions = "JOB SPECIFIC QUESTIONS"
	HeadingResume       = "RESUME"

	NoAnswersText   = "No answers provided"
	NoQuestionsText = "No job-specific questions for this application"
)

// BuildApplicationDocument строит документ по отклику, job может быть nil
func BuildApplicationDocument(app dbmodels.Application, job *dbmodels.Job, baseURL string) Document {
	doc := Document{}

	doc.add(LineTitle, "Application Details")
	doc.add(LineSubtitle, "Applicant: "+app.StudentName)
	doc.add(LineSubtitle, "Email: "+app.StudentEmail)
	doc.add(LineSubtitle, "Status: "+string(app.Status))
	if job != nil {
		doc.add(LineSubtitle, fmt.Sprintf("Job: %v (%v)", job.Title, job.Company))
	}
	doc.spacer()

	addPersonal(&doc, app.Personal)
	addEducation(&doc, app.Education)
	addExperience(&doc, app.Experience)
	addAdditional(&doc, app.Additional)
	addJobQuestions(&doc, app.RecruiterQuestions)

	if IsFilled(app.Resume) {
		doc.add(LineHeading, HeadingResume)
		doc.Lines = append(doc.Lines, Line{
			Kind: LineLink,
			Text: "Click here to view resume: " + app.Resume,
			Link: resumeURL(baseURL, app.Resume),
		})
	}
	return doc
}

func resumeURL(baseURL, resume string) string {
	if baseURL == "" {
		return resume
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(resume, "/")
}

func addPersonal(doc *Document, p dbmodels.PersonalInfo) {
	fields := []struct {
		label string
		value string
	}{
		{"First Name", p.FirstName},
		{"Middle Name", p.MiddleName},
		{"Last Name", p.LastName},
		{"Email", p.Email},
		{"Phone", p.Phone},
		{"Country", p.Country},
		{"State", p.State},
		{"City", p.City},
	}
	hasAny := false
	for _, field := range fields {
		if IsFilled(field.value) {
			hasAny = true
			break
		}
	}
	if !hasAny {
		return
	}
	doc.add(LineHeading, HeadingPersonal)
	for _, field := range fields {
		doc.addField(field.label, field.value)
	}
	doc.spacer()
}

func educationShown(e dbmodels.Education) bool {
	return IsFilled(e.School) || IsFilled(e.From) || IsFilled(e.To)
}

func addEducation(doc *Document, list dbmodels.EducationList) {
	headed := false
	for _, e := range list {
		if !educationShown(e) {
			continue
		}
		if !headed {
			doc.add(LineHeading, HeadingEducation)
			headed = true
		}
		doc.addField("School/College", e.School)
		doc.addField("From", e.From)
		doc.addField("To", e.To)
		doc.addField("Country", e.Country)
		doc.addField("State", e.State)
		doc.addField("City", e.City)
		doc.spacer()
	}
}

func experienceShown(e dbmodels.Experience) bool {
	return IsFilled(e.Company) || IsFilled(e.Role) || IsFilled(e.Description)
}

func addExperience(doc *Document, list dbmodels.ExperienceList) {
	headed := false
	for _, e := range list {
		if !experienceShown(e) {
			continue
		}
		if !headed {
			doc.add(LineHeading, HeadingExperience)
			headed = true
		}
		doc.addField("Company", e.Company)
		doc.addField("Role", e.Role)
		doc.addField("Mode", e.Mode)
		doc.addField("From", e.From)
		doc.addField("To", e.To)
		doc.addField("Country", e.Country)
		doc.addField("State", e.State)
		doc.addField("City", e.City)
		doc.addField("Description", e.Description)
		doc.spacer()
	}
}

func addAdditional(doc *Document, a dbmodels.AdditionalInfo) {
	if !IsFilled(a.Gender) && !IsFilled(a.EligibleToWork) && !IsFilled(a.HearAboutUs) {
		return
	}
	doc.add(LineHeading, HeadingAdditional)
	doc.addField("Gender", a.Gender)
	doc.addField("Eligible to work", a.EligibleToWork)
	doc.addField("Hear about us from", a.HearAboutUs)
	doc.spacer()
}

func addJobQuestions(doc *Document, answers dbmodels.QuestionAnswers) {
	doc.add(LineHeading, HeadingJobQuestions)
	if len(answers) == 0 {
		doc.add(LineText, NoQuestionsText)
		doc.spacer()
		return
	}
	num := 0
	for _, item := range answers {
		if !IsFilled(item.Answer) {
			continue
		}
		num++
		doc.add(LineText, fmt.Sprintf("Q%v: %v", num, item.Question))
		doc.add(LineText, "Answer: "+formatAnswer(item.Answer))
		doc.spacer()
	}
	if num == 0 {
		doc.add(LineText, NoAnswersText)
	}
	doc.spacer()
}
