package worlds

import (
	"time"
)

type Setting struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"not null" json:"name"`
	Climate     *string `json:"climate"`
	Terrain     *string `json:"terrain"`
	Description *string `json:"description"`

	SeriesID *uint   `gorm:"index" json:"-"`
	Series   *Series `json:"-"`
	Books    []Book  `gorm:"many2many:setting_books;" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
