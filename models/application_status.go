package models

type ApplicationStatus string

const (
	ApplicationStatusPending       ApplicationStatus = "pending"        // отклик отправлен, ждет решения рекрутера
	ApplicationStatusAccepted      ApplicationStatus = "accepted"       // рекрутер отправил оффер
	ApplicationStatusRejected      ApplicationStatus = "rejected"       // рекрутер отказал
	ApplicationStatusOfferAccepted ApplicationStatus = "offer_accepted" // студент принял оффер
	ApplicationStatusOfferRejected ApplicationStatus = "offer_rejected" // студент отказался от оффера
)

var applicationStatusTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusPending:  {ApplicationStatusAccepted, ApplicationStatusRejected},
	ApplicationStatusAccepted: {ApplicationStatusOfferAccepted, ApplicationStatusOfferRejected},
}

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationStatusPending:       "Pending",
	ApplicationStatusAccepted:      "Offer sent",
	ApplicationStatusRejected:      "Rejected",
	ApplicationStatusOfferAccepted: "Offer accepted",
	ApplicationStatusOfferRejected: "Offer declined",
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApplicationStatus) IsValid() bool {
	_, ok := applicationStatusHumanName[s]
	return ok
}

func (s ApplicationStatus) CanMoveTo(next ApplicationStatus) bool {
	for _, allowed := range applicationStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ApplicationStatus) IsTerminal() bool {
	return len(applicationStatusTransitions[s]) == 0
}

type OfferDecision string

const (
	OfferDecisionAccept OfferDecision = "accept"
	OfferDecisionReject OfferDecision = "reject"
)

func (d OfferDecision) IsValid() bool {
	return d == OfferDecisionAccept || d == OfferDecisionReject
}
