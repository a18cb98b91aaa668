package models

type UserRole string

const (
	StudentRole   UserRole = "student"
	RecruiterRole UserRole = "recruiter"
)

func (r UserRole) IsValid() bool {
	return r == StudentRole || r == RecruiterRole
}

func (r UserRole) IsStudent() bool {
	return r == StudentRole
}

func (r UserRole) IsRecruiter() bool {
	return r == RecruiterRole
}
