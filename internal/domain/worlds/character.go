package worlds

import (
	"time"
)

type Character struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName   string  `gorm:"not null" json:"firstName"`
	LastName    *string `json:"lastName"`
	Title       *string `json:"title"`
	Age         *int    `json:"age"`
	Description *string `json:"description"`

	SeriesID *uint   `gorm:"index" json:"-"`
	Series   *Series `json:"-"`
	Books    []Book  `gorm:"many2many:character_books;" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
