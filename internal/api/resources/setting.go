package resources

import (
	"worldbuilding-app/internal/domain/ownership"
	"worldbuilding-app/internal/domain/worlds"

	"github.com/gin-gonic/gin"
)

func SettingDescriptor() Descriptor[worlds.Setting] {
	return Descriptor[worlds.Setting]{
		Singular:      "setting",
		Plural:        "settings",
		DisplayName:   "Setting",
		DisplayPlural: "Settings",
		Access: ownership.AccessSpec{
			BookJoinTable: "setting_books",
			ResourceKey:   "setting_id",
		},
		ID:    func(s *worlds.Setting) uint { return s.ID },
		SetID: func(s *worlds.Setting, id uint) { s.ID = id },
		SetOwner: func(s *worlds.Setting, o ownership.Owner) {
			s.SeriesID = ownerSeriesID(o)
			s.Books = ownerBooks(o)
		},
		DTO: func(s *worlds.Setting) gin.H {
			return gin.H{
				"id":          s.ID,
				"name":        s.Name,
				"climate":     s.Climate,
				"terrain":     s.Terrain,
				"description": s.Description,
			}
		},
		Required: func(s *worlds.Setting) []ValidationIssue {
			return requireField("name", s.Name)
		},
	}
}
