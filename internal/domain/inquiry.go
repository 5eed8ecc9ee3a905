package domain

import "time"

// InquiryStatus is the fixed status enumeration for vacation inquiries.
type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "new"
	InquiryContacted InquiryStatus = "contacted"
	InquiryResolved  InquiryStatus = "resolved"
)

// Valid reports whether s is one of the allowed inquiry statuses.
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryNew, InquiryContacted, InquiryResolved:
		return true
	}
	return false
}

// VacationInquiry is a custom-trip request submitted through the public site.
type VacationInquiry struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Location  string        `json:"location"`
	Dates     string        `json:"dates"`
	Guests    int           `json:"guests"`
	Budget    string        `json:"budget"`
	Message   string        `json:"message"`
	Status    InquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
