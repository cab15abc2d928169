package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a piece of content owned by the user who authored it.
type Post struct {
	ID          uuid.UUID
	Title       string
	Description string
	AuthorID    uuid.UUID // Ownership reference checked by the admin-or-owner gate.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
