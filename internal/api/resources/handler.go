package resources

import (
	"encoding/json"
	"net/http"

	"worldbuilding-app/database"
	"worldbuilding-app/internal/domain/ownership"

	"github.com/gin-gonic/gin"
)

// GET /<kind>?seriesId=&bookId=
func List[T any](d Descriptor[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}

		seriesID, bookID, err := parseOwnerQuery(c)
		if err != nil {
			respondResolverError(c, err)
			return
		}

		items, axis, err := ownership.FindAllOwned[T](database.DB, d.Access, userID, seriesID, bookID)
		if err != nil {
			respondResolverError(c, err)
			return
		}

		data := make([]gin.H, 0, len(items))
		for i := range items {
			data = append(data, d.DTO(&items[i]))
		}

		c.JSON(http.StatusOK, gin.H{
			"message": d.DisplayPlural + " by user id and " + axis + " id fetched.",
			"data":    data,
		})
	}
}

// GET /<kind>/:id?seriesId=&bookId=
func GetByID[T any](d Descriptor[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}

		id, err := parseIDParam(c)
		if err != nil {
			respondResolverError(c, err)
			return
		}
		seriesID, bookID, err := parseOwnerQuery(c)
		if err != nil {
			respondResolverError(c, err)
			return
		}

		entity, err := ownership.FindOwned[T](database.DB, d.Access, id, userID, seriesID, bookID)
		if err != nil {
			respondResolverError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": d.DisplayName + " fetched.",
			"data":    d.DTO(entity),
		})
	}
}

// POST /<kind>?seriesId=&bookId=
func Create[T any](d Descriptor[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}

		seriesID, bookID, err := parseOwnerQuery(c)
		if err != nil {
			respondResolverError(c, err)
			return
		}

		entity := new(T)
		if err := c.ShouldBindJSON(entity); err != nil {
			respondValidationFailed(c, []ValidationIssue{{Field: "body", Message: err.Error()}})
			return
		}
		if issues := d.Required(entity); len(issues) > 0 {
			respondValidationFailed(c, issues)
			return
		}

		owner, err := ownership.ResolveOwnerForCreate(database.DB, d.Singular, userID, seriesID, bookID)
		if err != nil {
			respondResolverError(c, err)
			return
		}

		// identity is always server-assigned, whatever the body said
		d.SetID(entity, 0)
		d.SetOwner(entity, owner)

		if err := database.DB.Create(entity).Error; err != nil {
			respondInternal(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": d.DisplayName + " created.",
			"data":    d.DTO(entity),
		})
	}
}

// PATCH /<kind>/:id?seriesId=&bookId=
//
// The current row is fetched through the access check (series axis
// preferred), the caller's updatedData keys are overlaid on it, and the
// merged row is saved. Keys absent from updatedData keep their stored value.
func UpdateByID[T any](d Descriptor[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}

		id, err := parseIDParam(c)
		if err != nil {
			respondResolverError(c, err)
			return
		}
		seriesID, bookID, err := parseOwnerQuery(c)
		if err != nil {
			respondResolverError(c, err)
			return
		}

		var body struct {
			UpdatedData json.RawMessage `json:"updatedData"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			respondValidationFailed(c, []ValidationIssue{{Field: "body", Message: err.Error()}})
			return
		}

		fields := map[string]json.RawMessage{}
		if len(body.UpdatedData) > 0 {
			// a non-object updatedData is as invalid as a missing one
			if err := json.Unmarshal(body.UpdatedData, &fields); err != nil {
				fields = nil
			}
		}
		if len(fields) == 0 {
			respondValidationFailed(c, []ValidationIssue{{
				Field:   "updatedData",
				Message: "updatedData must be a non-empty object.",
			}})
			return
		}

		entity, err := ownership.FindOwned[T](database.DB, d.Access, id, userID, seriesID, bookID)
		if err != nil {
			respondResolverError(c, err)
			return
		}

		if err := json.Unmarshal(body.UpdatedData, entity); err != nil {
			respondValidationFailed(c, []ValidationIssue{{Field: "updatedData", Message: err.Error()}})
			return
		}
		d.SetID(entity, id)

		if err := database.DB.Save(entity).Error; err != nil {
			respondInternal(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": d.DisplayName + " updated.",
			"data":    d.DTO(entity),
		})
	}
}

// DELETE /<kind>/:id?seriesId=&bookId=
func DeleteByID[T any](d Descriptor[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := mustUserID(c)
		if !ok {
			return
		}

		id, err := parseIDParam(c)
		if err != nil {
			respondResolverError(c, err)
			return
		}
		seriesID, bookID, err := parseOwnerQuery(c)
		if err != nil {
			respondResolverError(c, err)
			return
		}

		entity, err := ownership.FindOwned[T](database.DB, d.Access, id, userID, seriesID, bookID)
		if err != nil {
			respondResolverError(c, err)
			return
		}

		// hard delete, join rows included
		if err := database.DB.Select("Books").Delete(entity).Error; err != nil {
			respondInternal(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": d.DisplayName + " deleted."})
	}
}
