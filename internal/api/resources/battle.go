package resources

import (
	"worldbuilding-app/internal/domain/ownership"
	"worldbuilding-app/internal/domain/worlds"

	"github.com/gin-gonic/gin"
)

func BattleDescriptor() Descriptor[worlds.Battle] {
	return Descriptor[worlds.Battle]{
		Singular:      "battle",
		Plural:        "battles",
		DisplayName:   "Battle",
		DisplayPlural: "Battles",
		Access: ownership.AccessSpec{
			BookJoinTable: "battle_books",
			ResourceKey:   "battle_id",
		},
		ID:    func(b *worlds.Battle) uint { return b.ID },
		SetID: func(b *worlds.Battle, id uint) { b.ID = id },
		SetOwner: func(b *worlds.Battle, o ownership.Owner) {
			b.SeriesID = ownerSeriesID(o)
			b.Books = ownerBooks(o)
		},
		DTO: func(b *worlds.Battle) gin.H {
			return gin.H{
				"id":          b.ID,
				"name":        b.Name,
				"start":       b.Start,
				"end":         b.End,
				"description": b.Description,
			}
		},
		Required: func(b *worlds.Battle) []ValidationIssue {
			return requireField("name", b.Name)
		},
	}
}
