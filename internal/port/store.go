// Package port declares the interfaces the handlers and services consume.
// The Postgres store implements all of them; tests substitute in-memory
// fakes.
package port

import (
	"context"
	"time"

	"github.com/luxehaven/admin-api/internal/domain"
)

// CredentialStore looks up back-office admin accounts by email. A missing
// account is ErrNotFound, not a zero-value record.
type CredentialStore interface {
	GetAdminByEmail(ctx context.Context, email string) (*domain.AdminAccount, error)
}

// ListingStore serves the Properties tab.
type ListingStore interface {
	// ListListings returns one page of listings matching search (title,
	// address or id substring, case-insensitive) plus the total match count.
	ListListings(ctx context.Context, page, limit int, search string) ([]domain.Listing, int, error)
	GetListingByID(ctx context.Context, id string) (*domain.Listing, error)
	UpdateListing(ctx context.Context, id string, upd domain.ListingUpdate) (*domain.Listing, error)
	DeleteListing(ctx context.Context, id string) error
}

// BookingStore serves the Bookings tab and the overview.
type BookingStore interface {
	ListBookings(ctx context.Context, page, limit int, search string) ([]domain.Booking, int, error)
	ListAllBookings(ctx context.Context) ([]domain.Booking, error)
	// CountBookingsByStatus returns per-status counts honouring the same
	// search filter as ListBookings.
	CountBookingsByStatus(ctx context.Context, search string) (domain.BookingStats, error)
	// BookingCreationTimes returns the createdAt of every booking created at
	// or after since, for chart bucketing.
	BookingCreationTimes(ctx context.Context, since time.Time) ([]time.Time, error)
	GetBookingByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}

// InquiryStore serves the Vacation Inquiries tab.
type InquiryStore interface {
	ListInquiries(ctx context.Context) ([]domain.VacationInquiry, error)
	UpdateInquiryStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.VacationInquiry, error)
}

// MembershipStore serves the Members tab.
type MembershipStore interface {
	ListMemberships(ctx context.Context) ([]domain.LuxeMembership, error)
	DeleteMembership(ctx context.Context, id string) error
}

// AuditStore reads back audit records written by the audit middleware.
type AuditStore interface {
	ListAuditLogs(ctx context.Context, limit int, action string) ([]domain.AuditLog, error)
}
