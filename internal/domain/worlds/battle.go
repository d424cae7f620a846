package worlds

import (
	"time"
)

type Battle struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"not null" json:"name"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
	Description *string `json:"description"`

	SeriesID *uint   `gorm:"index" json:"-"`
	Series   *Series `json:"-"`
	Books    []Book  `gorm:"many2many:battle_books;" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
