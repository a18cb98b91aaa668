package models

type JobType string

const (
	JobTypePdf       JobType = "pdf"
	JobTypeQuestions JobType = "questions"
)

func (t JobType) IsValid() bool {
	return t == JobTypePdf || t == JobTypeQuestions
}

type AnswerType string

const (
	AnswerTypeText     AnswerType = "text"
	AnswerTypeDropdown AnswerType = "dropdown"
	AnswerTypeRadio    AnswerType = "radio"
)

func (t AnswerType) IsValid() bool {
	return t == AnswerTypeText || t == AnswerTypeDropdown || t == AnswerTypeRadio
}
