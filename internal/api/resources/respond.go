package resources

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"worldbuilding-app/internal/domain/ownership"

	"github.com/gin-gonic/gin"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// respondResolverError maps the resolver's error taxonomy onto HTTP. Anything
// outside the taxonomy is a persistence or programming failure: logged
// server-side, opaque to the client.
func respondResolverError(c *gin.Context, err error) {
	var ve *ownership.ValidationError
	var ae *ownership.AuthorizationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"message": ve.Message})
	case errors.As(err, &ae):
		c.JSON(http.StatusForbidden, gin.H{"message": ae.Message})
	default:
		respondInternal(c, err)
	}
}

func respondInternal(c *gin.Context, err error) {
	log.Printf("resources: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
}

func respondValidationFailed(c *gin.Context, issues []ValidationIssue) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed.", "data": issues})
}

// parseOwnerQuery reads the optional seriesId/bookId query params. Absent
// params come back nil; presence of at least one is enforced by the
// resolver, not here.
func parseOwnerQuery(c *gin.Context) (seriesID, bookID *uint, err error) {
	seriesID, err = parseUintQuery(c, "seriesId")
	if err != nil {
		return nil, nil, err
	}
	bookID, err = parseUintQuery(c, "bookId")
	if err != nil {
		return nil, nil, err
	}
	return seriesID, bookID, nil
}

func parseUintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, &ownership.ValidationError{Message: name + " must be a numeric id."}
	}
	u := uint(v)
	return &u, nil
}

func parseIDParam(c *gin.Context) (uint, error) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, &ownership.ValidationError{Message: "id must be a numeric id."}
	}
	return uint(v), nil
}
