package resources

import (
	"worldbuilding-app/internal/domain/ownership"
	"worldbuilding-app/internal/domain/worlds"

	"github.com/gin-gonic/gin"
)

func TransportDescriptor() Descriptor[worlds.Transport] {
	return Descriptor[worlds.Transport]{
		Singular:      "transport",
		Plural:        "transports",
		DisplayName:   "Transport",
		DisplayPlural: "Transports",
		Access: ownership.AccessSpec{
			BookJoinTable: "transport_books",
			ResourceKey:   "transport_id",
		},
		ID:    func(t *worlds.Transport) uint { return t.ID },
		SetID: func(t *worlds.Transport, id uint) { t.ID = id },
		SetOwner: func(t *worlds.Transport, o ownership.Owner) {
			t.SeriesID = ownerSeriesID(o)
			t.Books = ownerBooks(o)
		},
		DTO: func(t *worlds.Transport) gin.H {
			return gin.H{
				"id":          t.ID,
				"name":        t.Name,
				"speed":       t.Speed,
				"capacity":    t.Capacity,
				"description": t.Description,
			}
		},
		Required: func(t *worlds.Transport) []ValidationIssue {
			return requireField("name", t.Name)
		},
	}
}
