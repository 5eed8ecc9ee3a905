package domain

import "time"

// AuditLog records every request handled by the back office.
type AuditLog struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resourceId"`
	Details    string    `json:"details"` // JSON blob
	IP         string    `json:"ip"`
	UserAgent  string    `json:"userAgent"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Audit action constants.
const (
	AuditActionRequest = "http_request"
	AuditActionLogin   = "login"
	AuditActionLogout  = "logout"
)
