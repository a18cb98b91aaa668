package dbmodels

import (
	"job-portal-backend/models"
)

type User struct {
	BaseModel
	Name        string          `gorm:"type:varchar(255)"`
	Email       string          `gorm:"type:varchar(255);uniqueIndex"`
	Password    string          `gorm:"type:varchar(128)"` // bcrypt hash
	Role        models.UserRole `gorm:"type:varchar(50)"`
	CompanyName string          `gorm:"type:varchar(255)"`
	ProfilePic  string
}
