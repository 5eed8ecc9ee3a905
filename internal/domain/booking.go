package domain

import "time"

// BookingStatus is the fixed status enumeration for bookings.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the allowed booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingConfirmed, BookingPending, BookingCancelled:
		return true
	}
	return false
}

// Booking is a guest reservation against a listing. PropertyName is resolved
// from the listing at read time so the dashboard never joins client-side.
type Booking struct {
	ID           string        `json:"id"`
	PropertyID   string        `json:"propertyId"`
	PropertyName string        `json:"propertyName"`
	GuestName    string        `json:"guestName"`
	GuestEmail   string        `json:"guestEmail"`
	CheckIn      time.Time     `json:"checkIn"`
	CheckOut     time.Time     `json:"checkOut"`
	Guests       int           `json:"guests"`
	TotalAmount  float64       `json:"totalAmount"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// BookingStats are per-status counts for the current search filter.
type BookingStats struct {
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Cancelled int `json:"cancelled"`
}
