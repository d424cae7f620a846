package routes

import (
	authapi "worldbuilding-app/internal/api/auth"
	"worldbuilding-app/internal/api/resources"
	"worldbuilding-app/internal/api/users"
	worldsapi "worldbuilding-app/internal/api/worlds"
	"worldbuilding-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/verify", users.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	// owner entities
	auth.GET("/series", worldsapi.ListSeries)
	auth.POST("/series", worldsapi.CreateSeries)
	auth.GET("/series/:id", worldsapi.GetSeriesByID)
	auth.PATCH("/series/:id", worldsapi.UpdateSeriesByID)
	auth.DELETE("/series/:id", worldsapi.DeleteSeriesByID)

	auth.GET("/books", worldsapi.ListBooks)
	auth.POST("/books", worldsapi.CreateBook)
	auth.GET("/books/:id", worldsapi.GetBookByID)
	auth.PATCH("/books/:id", worldsapi.UpdateBookByID)
	auth.DELETE("/books/:id", worldsapi.DeleteBookByID)

	// worldbuilding resources: battles, characters, creatures, settings, transports
	resources.RegisterAll(auth)
}
