package resources

import (
	"worldbuilding-app/internal/domain/ownership"
	"worldbuilding-app/internal/domain/worlds"

	"github.com/gin-gonic/gin"
)

func CharacterDescriptor() Descriptor[worlds.Character] {
	return Descriptor[worlds.Character]{
		Singular:      "character",
		Plural:        "characters",
		DisplayName:   "Character",
		DisplayPlural: "Characters",
		Access: ownership.AccessSpec{
			BookJoinTable: "character_books",
			ResourceKey:   "character_id",
		},
		ID:    func(ch *worlds.Character) uint { return ch.ID },
		SetID: func(ch *worlds.Character, id uint) { ch.ID = id },
		SetOwner: func(ch *worlds.Character, o ownership.Owner) {
			ch.SeriesID = ownerSeriesID(o)
			ch.Books = ownerBooks(o)
		},
		DTO: func(ch *worlds.Character) gin.H {
			return gin.H{
				"id":          ch.ID,
				"firstName":   ch.FirstName,
				"lastName":    ch.LastName,
				"title":       ch.Title,
				"age":         ch.Age,
				"description": ch.Description,
			}
		},
		Required: func(ch *worlds.Character) []ValidationIssue {
			return requireField("firstName", ch.FirstName)
		},
	}
}
