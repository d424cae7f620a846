package worlds

import (
	"time"
)

// Series is an owner entity: every series belongs to exactly one user and
// that link never changes after creation.
type Series struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Genre       string `json:"genre,omitempty"`
	Description string `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
