package domain

import "time"

// Announcement is a general notice published by an admin. Maintenance
// information is never encoded in announcement titles; it lives in the
// dedicated MaintenanceEvent entity.
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"isActive"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
