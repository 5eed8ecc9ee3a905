package domain

import "time"

// RoleAdmin is the only role the back office knows about.
const RoleAdmin = "admin"

// User is the identity encoded into a session token and handed back to the
// dashboard. It is a disposable projection: it lives only as long as the
// token it came from.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AdminAccount is a persisted back-office credential record. The password
// hash never leaves the server.
type AdminAccount struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// User returns the token-facing identity for the account.
func (a *AdminAccount) User() *User {
	return &User{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}
