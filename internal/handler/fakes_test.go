package handler

import (
	"context"
	"time"

	"github.com/luxehaven/admin-api/internal/domain"
	"github.com/luxehaven/admin-api/internal/port"
)

// fakeListingStore serves a fixed slice and records updates.
type fakeListingStore struct {
	listings   []domain.Listing
	lastUpdate domain.ListingUpdate
	deleted    []string
	err        error
}

func (f *fakeListingStore) ListListings(_ context.Context, page, limit int, search string) ([]domain.Listing, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	start := (page - 1) * limit
	if start >= len(f.listings) {
		return nil, len(f.listings), nil
	}
	end := start + limit
	if end > len(f.listings) {
		end = len(f.listings)
	}
	return f.listings[start:end], len(f.listings), nil
}

func (f *fakeListingStore) GetListingByID(_ context.Context, id string) (*domain.Listing, error) {
	for i := range f.listings {
		if f.listings[i].ID == id {
			return &f.listings[i], nil
		}
	}
	return nil, port.ErrNotFound
}

func (f *fakeListingStore) UpdateListing(ctx context.Context, id string, upd domain.ListingUpdate) (*domain.Listing, error) {
	f.lastUpdate = upd
	return f.GetListingByID(ctx, id)
}

func (f *fakeListingStore) DeleteListing(ctx context.Context, id string) error {
	if _, err := f.GetListingByID(ctx, id); err != nil {
		return err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeBookingStore serves fixed bookings and stats.
type fakeBookingStore struct {
	bookings []domain.Booking
	stats    domain.BookingStats
	created  []time.Time
	updated  map[string]domain.BookingStatus
}

func (f *fakeBookingStore) ListBookings(context.Context, int, int, string) ([]domain.Booking, int, error) {
	return f.bookings, len(f.bookings), nil
}

func (f *fakeBookingStore) ListAllBookings(context.Context) ([]domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingStore) CountBookingsByStatus(context.Context, string) (domain.BookingStats, error) {
	return f.stats, nil
}

func (f *fakeBookingStore) BookingCreationTimes(context.Context, time.Time) ([]time.Time, error) {
	return f.created, nil
}

func (f *fakeBookingStore) GetBookingByID(_ context.Context, id string) (*domain.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, port.ErrNotFound
}

func (f *fakeBookingStore) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	b, err := f.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.updated == nil {
		f.updated = map[string]domain.BookingStatus{}
	}
	f.updated[id] = status
	b.Status = status
	return b, nil
}

// fakeInquiryStore serves fixed inquiries.
type fakeInquiryStore struct {
	inquiries []domain.VacationInquiry
}

func (f *fakeInquiryStore) ListInquiries(context.Context) ([]domain.VacationInquiry, error) {
	return f.inquiries, nil
}

func (f *fakeInquiryStore) UpdateInquiryStatus(_ context.Context, id string, status domain.InquiryStatus) (*domain.VacationInquiry, error) {
	for i := range f.inquiries {
		if f.inquiries[i].ID == id {
			f.inquiries[i].Status = status
			return &f.inquiries[i], nil
		}
	}
	return nil, port.ErrNotFound
}

// fakeMembershipStore serves fixed memberships.
type fakeMembershipStore struct {
	members []domain.LuxeMembership
	deleted []string
}

func (f *fakeMembershipStore) ListMemberships(context.Context) ([]domain.LuxeMembership, error) {
	return f.members, nil
}

func (f *fakeMembershipStore) DeleteMembership(_ context.Context, id string) error {
	for _, m := range f.members {
		if m.ID == id {
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return port.ErrNotFound
}
