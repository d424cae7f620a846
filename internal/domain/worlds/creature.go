package worlds

import (
	"time"
)

type Creature struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"not null" json:"name"`
	Habitat     *string `json:"habitat"`
	Diet        *string `json:"diet"`
	Description *string `json:"description"`

	SeriesID *uint   `gorm:"index" json:"-"`
	Series   *Series `json:"-"`
	Books    []Book  `gorm:"many2many:creature_books;" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
