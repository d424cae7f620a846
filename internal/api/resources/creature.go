package resources

import (
	"worldbuilding-app/internal/domain/ownership"
	"worldbuilding-app/internal/domain/worlds"

	"github.com/gin-gonic/gin"
)

func CreatureDescriptor() Descriptor[worlds.Creature] {
	return Descriptor[worlds.Creature]{
		Singular:      "creature",
		Plural:        "creatures",
		DisplayName:   "Creature",
		DisplayPlural: "Creatures",
		Access: ownership.AccessSpec{
			BookJoinTable: "creature_books",
			ResourceKey:   "creature_id",
		},
		ID:    func(cr *worlds.Creature) uint { return cr.ID },
		SetID: func(cr *worlds.Creature, id uint) { cr.ID = id },
		SetOwner: func(cr *worlds.Creature, o ownership.Owner) {
			cr.SeriesID = ownerSeriesID(o)
			cr.Books = ownerBooks(o)
		},
		DTO: func(cr *worlds.Creature) gin.H {
			return gin.H{
				"id":          cr.ID,
				"name":        cr.Name,
				"habitat":     cr.Habitat,
				"diet":        cr.Diet,
				"description": cr.Description,
			}
		},
		Required: func(cr *worlds.Creature) []ValidationIssue {
			return requireField("name", cr.Name)
		},
	}
}
