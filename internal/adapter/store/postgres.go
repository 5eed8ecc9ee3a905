// Package store implements the port interfaces on PostgreSQL.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/luxehaven/admin-api/internal/domain"
	"github.com/luxehaven/admin-api/internal/port"
)

// PostgresStore handles all relational database operations.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection and returns a store instance.
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreWithDB wraps an existing connection, used by tests.
func NewPostgresStoreWithDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// --- Admins ---

// GetAdminByEmail returns the admin account for an email, or port.ErrNotFound.
func (s *PostgresStore) GetAdminByEmail(ctx context.Context, email string) (*domain.AdminAccount, error) {
	query := `SELECT id, name, email, password_hash, role, created_at
	          FROM admins WHERE lower(email) = lower($1)`

	var a domain.AdminAccount
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}

// SeedAdmin inserts the bootstrap admin account if the email is not taken.
func (s *PostgresStore) SeedAdmin(ctx context.Context, name, email, passwordHash string) error {
	query := `INSERT INTO admins (name, email, password_hash, role)
	          VALUES ($1, lower($2), $3, $4)
	          ON CONFLICT (email) DO NOTHING`
	if _, err := s.db.ExecContext(ctx, query, name, email, passwordHash, domain.RoleAdmin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

// --- Listings ---

const listingColumns = `id, title, description, featured_image, price_per_night,
	max_guests, bedrooms, bathrooms, address, type_of_place, is_featured, created_at`

func scanListing(row interface{ Scan(...any) error }) (*domain.Listing, error) {
	var l domain.Listing
	err := row.Scan(
		&l.ID, &l.Title, &l.Description, &l.FeaturedImage, &l.PricePerNight,
		&l.MaxGuests, &l.Bedrooms, &l.Bathrooms, &l.Address, &l.TypeOfPlace,
		&l.IsFeatured, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// ListListings returns one page of listings matching search, newest first,
// plus the total match count.
func (s *PostgresStore) ListListings(ctx context.Context, page, limit int, search string) ([]domain.Listing, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit
	pattern := "%" + search + "%"

	where := `($1 = '' OR title ILIKE $2 OR address ILIKE $2 OR id::text ILIKE $2)`

	var total int
	countQuery := `SELECT COUNT(*) FROM listings WHERE ` + where
	if err := s.db.QueryRowContext(ctx, countQuery, search, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count listings: %w", err)
	}

	query := `SELECT ` + listingColumns + ` FROM listings WHERE ` + where + `
	          ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := s.db.QueryContext(ctx, query, search, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan listing: %w", err)
		}
		listings = append(listings, *l)
	}
	return listings, total, rows.Err()
}

// GetListingByID returns a single listing, or port.ErrNotFound.
func (s *PostgresStore) GetListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	l, err := scanListing(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

// UpdateListing applies the non-nil fields of upd and returns the updated row.
func (s *PostgresStore) UpdateListing(ctx context.Context, id string, upd domain.ListingUpdate) (*domain.Listing, error) {
	if upd.Empty() {
		return s.GetListingByID(ctx, id)
	}

	sets := []string{"updated_at = NOW()"}
	args := []any{id}
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.PricePerNight != nil {
		add("price_per_night", *upd.PricePerNight)
	}
	if upd.MaxGuests != nil {
		add("max_guests", *upd.MaxGuests)
	}
	if upd.Bedrooms != nil {
		add("bedrooms", *upd.Bedrooms)
	}
	if upd.Bathrooms != nil {
		add("bathrooms", *upd.Bathrooms)
	}
	if upd.TypeOfPlace != nil {
		add("type_of_place", *upd.TypeOfPlace)
	}
	if upd.IsFeatured != nil {
		add("is_featured", *upd.IsFeatured)
	}

	query := `UPDATE listings SET ` + strings.Join(sets, ", ") + `
	          WHERE id = $1 RETURNING ` + listingColumns
	l, err := scanListing(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}
	return l, nil
}

// DeleteListing removes a listing, or reports port.ErrNotFound.
func (s *PostgresStore) DeleteListing(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return port.ErrNotFound
	}
	return nil
}

// --- Bookings ---

// Bookings carry the listing title as property_name; COALESCE keeps rows
// whose listing was deleted.
const bookingSelect = `SELECT b.id, COALESCE(b.property_id::text, ''),
	COALESCE(l.title, 'Unknown Property'), b.guest_name, b.guest_email,
	b.check_in, b.check_out, b.guests, b.total_amount, b.status, b.created_at
	FROM bookings b LEFT JOIN listings l ON l.id = b.property_id`

const bookingSearch = `($1 = '' OR b.guest_name ILIKE $2 OR b.guest_email ILIKE $2 OR COALESCE(l.title, '') ILIKE $2)`

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.PropertyID, &b.PropertyName, &b.GuestName, &b.GuestEmail,
		&b.CheckIn, &b.CheckOut, &b.Guests, &b.TotalAmount, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBookings returns one page of bookings matching search, newest first,
// plus the total match count.
func (s *PostgresStore) ListBookings(ctx context.Context, page, limit int, search string) ([]domain.Booking, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit
	pattern := "%" + search + "%"

	var total int
	countQuery := `SELECT COUNT(*) FROM bookings b LEFT JOIN listings l ON l.id = b.property_id WHERE ` + bookingSearch
	if err := s.db.QueryRowContext(ctx, countQuery, search, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	query := bookingSelect + ` WHERE ` + bookingSearch + `
	         ORDER BY b.created_at DESC LIMIT $3 OFFSET $4`
	rows, err := s.db.QueryContext(ctx, query, search, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	return bookings, total, rows.Err()
}

// ListAllBookings returns every booking, newest first, for the overview tab.
func (s *PostgresStore) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	rows, err := s.db.QueryContext(ctx, bookingSelect+` ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list all bookings: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// CountBookingsByStatus returns per-status counts for the same search filter
// used by ListBookings.
func (s *PostgresStore) CountBookingsByStatus(ctx context.Context, search string) (domain.BookingStats, error) {
	pattern := "%" + search + "%"
	query := `SELECT
	            COUNT(*) FILTER (WHERE b.status = 'confirmed'),
	            COUNT(*) FILTER (WHERE b.status = 'pending'),
	            COUNT(*) FILTER (WHERE b.status = 'cancelled')
	          FROM bookings b LEFT JOIN listings l ON l.id = b.property_id
	          WHERE ` + bookingSearch

	var stats domain.BookingStats
	err := s.db.QueryRowContext(ctx, query, search, pattern).Scan(
		&stats.Confirmed, &stats.Pending, &stats.Cancelled,
	)
	if err != nil {
		return domain.BookingStats{}, fmt.Errorf("count bookings by status: %w", err)
	}
	return stats, nil
}

// BookingCreationTimes returns the createdAt of bookings created at or after
// since, for chart bucketing.
func (s *PostgresStore) BookingCreationTimes(ctx context.Context, since time.Time) ([]time.Time, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT created_at FROM bookings WHERE created_at >= $1`, since)
	if err != nil {
		return nil, fmt.Errorf("booking creation times: %w", err)
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan created_at: %w", err)
		}
		times = append(times, t)
	}
	return times, rows.Err()
}

// GetBookingByID returns a single booking, or port.ErrNotFound.
func (s *PostgresStore) GetBookingByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := scanBooking(s.db.QueryRowContext(ctx, bookingSelect+` WHERE b.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// UpdateBookingStatus sets a booking's status and returns the updated row.
// The status must already be validated by the caller.
func (s *PostgresStore) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE bookings SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, port.ErrNotFound
	}
	return s.GetBookingByID(ctx, id)
}

// --- Vacation inquiries ---

const inquiryColumns = `id, name, email, phone, location, dates, guests, budget, message, status, created_at`

func scanInquiry(row interface{ Scan(...any) error }) (*domain.VacationInquiry, error) {
	var q domain.VacationInquiry
	err := row.Scan(
		&q.ID, &q.Name, &q.Email, &q.Phone, &q.Location, &q.Dates,
		&q.Guests, &q.Budget, &q.Message, &q.Status, &q.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// ListInquiries returns every vacation inquiry, newest first.
func (s *PostgresStore) ListInquiries(ctx context.Context) ([]domain.VacationInquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM vacation_inquiries ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []domain.VacationInquiry
	for rows.Next() {
		q, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		inquiries = append(inquiries, *q)
	}
	return inquiries, rows.Err()
}

// UpdateInquiryStatus sets an inquiry's status and returns the updated row.
func (s *PostgresStore) UpdateInquiryStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.VacationInquiry, error) {
	query := `UPDATE vacation_inquiries SET status = $1 WHERE id = $2 RETURNING ` + inquiryColumns
	q, err := scanInquiry(s.db.QueryRowContext(ctx, query, string(status), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update inquiry status: %w", err)
	}
	return q, nil
}

// --- Luxe memberships ---

// ListMemberships returns every membership, newest first.
func (s *PostgresStore) ListMemberships(ctx context.Context) ([]domain.LuxeMembership, error) {
	query := `SELECT id, name, email, phone, selected_services, created_at
	          FROM luxe_memberships ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()

	var members []domain.LuxeMembership
	for rows.Next() {
		var m domain.LuxeMembership
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone,
			pq.Array(&m.SelectedServices), &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// DeleteMembership removes a membership, or reports port.ErrNotFound.
func (s *PostgresStore) DeleteMembership(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM luxe_memberships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return port.ErrNotFound
	}
	return nil
}

// --- Audit ---

// WriteAudit persists one audit record.
func (s *PostgresStore) WriteAudit(userID, action, resource, resourceID, details, ip, userAgent string) error {
	query := `INSERT INTO audit_logs (user_id, action, resource, resource_id, details, ip, user_agent)
	          VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7)`
	_, err := s.db.ExecContext(context.Background(), query,
		userID, action, resource, resourceID, details, ip, userAgent,
	)
	return err
}

// ListAuditLogs returns recent audit logs with optional filters.
func (s *PostgresStore) ListAuditLogs(ctx context.Context, limit int, action string) ([]domain.AuditLog, error) {
	query := `SELECT id, user_id, action, resource, resource_id, details, ip, user_agent, created_at
	          FROM audit_logs`
	args := []any{}

	if action != "" {
		args = append(args, action)
		query += fmt.Sprintf(" WHERE action = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.AuditLog
	for rows.Next() {
		var l domain.AuditLog
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.Action, &l.Resource, &l.ResourceID,
			&l.Details, &l.IP, &l.UserAgent, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
