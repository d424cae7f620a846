package worlds

import (
	"net/http"

	"worldbuilding-app/database"
	"worldbuilding-app/internal/domain/worlds"

	"github.com/gin-gonic/gin"
)

type CreateBookRequest struct {
	Title    string `json:"title" binding:"required"`
	Blurb    string `json:"blurb"`
	SeriesID *uint  `json:"seriesId"`
}

type UpdateBookRequest struct {
	Title    *string `json:"title"`
	Blurb    *string `json:"blurb"`
	SeriesID *uint   `json:"seriesId"`
}

// GET /books
func ListBooks(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var books []worlds.Book
	if err := database.DB.Where("user_id = ?", userID).Order("id ASC").Find(&books).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Books fetched.", "data": books})
}

// POST /books
func CreateBook(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed.", "data": []gin.H{
			{"field": "title", "message": "title is required."},
		}})
		return
	}

	// a book may only be filed under one of the caller's own series
	if req.SeriesID != nil {
		var s worlds.Series
		if err := database.DB.First(&s, "id = ? AND user_id = ?", *req.SeriesID, userID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "A book can only be added to one of your series."})
			return
		}
	}

	b := worlds.Book{
		UserID:   userID,
		Title:    req.Title,
		Blurb:    req.Blurb,
		SeriesID: req.SeriesID,
	}
	if err := database.DB.Create(&b).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Book created.", "data": b})
}

// GET /books/:id
func GetBookByID(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var b worlds.Book
	if err := database.DB.First(&b, "id = ? AND user_id = ?", c.Param("id"), userID).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden account action."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book fetched.", "data": b})
}

// PATCH /books/:id
func UpdateBookByID(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed."})
		return
	}

	var b worlds.Book
	if err := database.DB.First(&b, "id = ? AND user_id = ?", c.Param("id"), userID).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden account action."})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Blurb != nil {
		updates["blurb"] = *req.Blurb
	}
	if req.SeriesID != nil {
		var s worlds.Series
		if err := database.DB.First(&s, "id = ? AND user_id = ?", *req.SeriesID, userID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "A book can only be added to one of your series."})
			return
		}
		updates["series_id"] = *req.SeriesID
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&b).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book updated.", "data": b})
}

// DELETE /books/:id
func DeleteBookByID(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Delete(&worlds.Book{}, "id = ? AND user_id = ?", c.Param("id"), userID)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden account action."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book deleted."})
}
