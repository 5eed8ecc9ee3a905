package domain

import "time"

// LuxeMembership is a concierge-membership signup.
type LuxeMembership struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	SelectedServices []string  `json:"selectedServices"`
	CreatedAt        time.Time `json:"createdAt"`
}
