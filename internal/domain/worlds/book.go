package worlds

import (
	"time"
)

// Book is an owner entity like Series. A book can optionally sit inside one
// of the same user's series.
type Book struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"-"`

	Title string `gorm:"not null" json:"title"`
	Blurb string `json:"blurb,omitempty"`

	SeriesID *uint   `gorm:"index" json:"series_id,omitempty"`
	Series   *Series `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
