package worlds

import (
	"net/http"

	"worldbuilding-app/database"
	"worldbuilding-app/internal/domain/worlds"

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

type CreateSeriesRequest struct {
	Title       string `json:"title" binding:"required"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
}

type UpdateSeriesRequest struct {
	Title       *string `json:"title"`
	Genre       *string `json:"genre"`
	Description *string `json:"description"`
}

// GET /series
func ListSeries(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var series []worlds.Series
	if err := database.DB.Where("user_id = ?", userID).Order("id ASC").Find(&series).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Series fetched.", "data": series})
}

// POST /series
func CreateSeries(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CreateSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed.", "data": []gin.H{
			{"field": "title", "message": "title is required."},
		}})
		return
	}

	s := worlds.Series{
		UserID:      userID,
		Title:       req.Title,
		Genre:       req.Genre,
		Description: req.Description,
	}
	if err := database.DB.Create(&s).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Series created.", "data": s})
}

// GET /series/:id
func GetSeriesByID(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var s worlds.Series
	if err := database.DB.First(&s, "id = ? AND user_id = ?", c.Param("id"), userID).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden account action."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Series fetched.", "data": s})
}

// PATCH /series/:id
func UpdateSeriesByID(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req UpdateSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed."})
		return
	}

	var s worlds.Series
	if err := database.DB.First(&s, "id = ? AND user_id = ?", c.Param("id"), userID).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden account action."})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Genre != nil {
		updates["genre"] = *req.Genre
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&s).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Series updated.", "data": s})
}

// DELETE /series/:id
func DeleteSeriesByID(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Delete(&worlds.Series{}, "id = ? AND user_id = ?", c.Param("id"), userID)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden account action."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Series deleted."})
}
