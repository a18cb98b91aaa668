package models

type NotificationType string

const (
	NotificationTypeApplication NotificationType = "application" // студент откликнулся на вакансию
	NotificationTypeAccepted    NotificationType = "accepted"    // рекрутер отправил оффер
	NotificationTypeRejected    NotificationType = "rejected"    // рекрутер отказал
	NotificationTypeAccept      NotificationType = "accept"      // студент принял оффер
	NotificationTypeReject      NotificationType = "reject"      // студент отказался от оффера
	NotificationTypeNewJob      NotificationType = "new_job"
)

var notificationTitle = map[NotificationType]string{
	NotificationTypeApplication: "New application",
	NotificationTypeAccepted:    "Application accepted",
	NotificationTypeRejected:    "Application rejected",
	NotificationTypeAccept:      "Offer accepted",
	NotificationTypeReject:      "Offer rejected",
	NotificationTypeNewJob:      "New job posted",
}

func (t NotificationType) Title() string {
	if title, exist := notificationTitle[t]; exist {
		return title
	}
	return string(t)
}
