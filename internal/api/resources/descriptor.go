package resources

import (
	"worldbuilding-app/internal/domain/ownership"

	"github.com/gin-gonic/gin"
)

// ValidationIssue is one entry in the data array of a "Validation failed."
// response.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Descriptor is everything the generic handlers need to serve one resource
// kind: route names, message names, the ownership join plumbing, and the
// per-kind field rules. Instantiated once per kind (battle.go, character.go,
// ...), so the five CRUD operations exist exactly once.
type Descriptor[T any] struct {
	Singular      string // "battle"  (error messages)
	Plural        string // "battles" (route segment)
	DisplayName   string // "Battle"  (success messages)
	DisplayPlural string // "Battles"

	Access ownership.AccessSpec

	ID       func(*T) uint
	SetID    func(*T, uint)
	SetOwner func(*T, ownership.Owner)

	// DTO maps an entity to its response whitelist. Raw relation objects
	// never leave through here.
	DTO func(*T) gin.H

	// Required reports the kind's missing-required-field issues on a bound
	// create payload.
	Required func(*T) []ValidationIssue
}

// Register wires the five standard routes for one kind onto an authenticated
// route group.
func Register[T any](r gin.IRoutes, d Descriptor[T]) {
	r.GET("/"+d.Plural, List(d))
	r.POST("/"+d.Plural, Create(d))
	r.GET("/"+d.Plural+"/:id", GetByID(d))
	r.PATCH("/"+d.Plural+"/:id", UpdateByID(d))
	r.DELETE("/"+d.Plural+"/:id", DeleteByID(d))
}
