package models

import "time"

// Advertisement is a resource under ownership-based access control.
// The owner reference is set on creation and never changes.
type Advertisement struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	OwnerID     int64     `db:"owner_id" json:"owner_id"`
}

// AdvertisementRequest defines the body for creating an advertisement.
// Updates replace title and description wholesale, so the same schema
// covers both.
type AdvertisementRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required,max=500"`
}
