package resources

import (
	"strings"

	"worldbuilding-app/internal/domain/ownership"
	"worldbuilding-app/internal/domain/worlds"

	"github.com/gin-gonic/gin"
)

// RegisterAll wires every resource kind onto the authenticated group.
func RegisterAll(r gin.IRoutes) {
	Register(r, BattleDescriptor())
	Register(r, CharacterDescriptor())
	Register(r, CreatureDescriptor())
	Register(r, SettingDescriptor())
	Register(r, TransportDescriptor())
}

func ownerSeriesID(o ownership.Owner) *uint {
	if o.Series == nil {
		return nil
	}
	id := o.Series.ID
	return &id
}

func ownerBooks(o ownership.Owner) []worlds.Book {
	if o.Book == nil {
		return nil
	}
	return []worlds.Book{*o.Book}
}

func requireField(field, value string) []ValidationIssue {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	return []ValidationIssue{{Field: field, Message: field + " is required."}}
}
