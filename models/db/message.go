package dbmodels

type Message struct {
	BaseModel
	SenderEmail   string `gorm:"type:varchar(255);index"`
	ReceiverEmail string `gorm:"type:varchar(255);index"`
	Message       string
}
