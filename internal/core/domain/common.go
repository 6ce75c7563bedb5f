package domain

import "time"

// AuditFields carries the who/when trail shared by every persisted entity.
// CreatedBy and LastUpdatedBy hold user IDs; system-initiated writes use the
// acting cashier's ID.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
