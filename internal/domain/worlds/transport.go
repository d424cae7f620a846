package worlds

import (
	"time"
)

type Transport struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"not null" json:"name"`
	Speed       *string `json:"speed"`
	Capacity    *int    `json:"capacity"`
	Description *string `json:"description"`

	SeriesID *uint   `gorm:"index" json:"-"`
	Series   *Series `json:"-"`
	Books    []Book  `gorm:"many2many:transport_books;" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
