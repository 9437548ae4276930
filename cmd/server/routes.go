package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"artmarket.backend/internal/domain/entities"
	"artmarket.backend/internal/interfaces/http/handlers"
	"artmarket.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	inquiryHandler        *handlers.InquiryHandler
	authHandler           *handlers.AuthHandler
	galleryInquiryHandler *handlers.GalleryInquiryHandler
	adminHandler          *handlers.AdminHandler
	catalogHandler        *handlers.CatalogHandler
	authMiddleware        gin.HandlerFunc
	idempotencyEnabled    bool
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID, X-Session-ID, Idempotency-Key")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Public inquiry routes
		inquiries := v1.Group("/inquiries")
		{
			if d.idempotencyEnabled {
				inquiries.POST("", middleware.IdempotencyMiddleware(), d.inquiryHandler.Create)
			} else {
				inquiries.POST("", d.inquiryHandler.Create)
			}
			inquiries.GET("/:id/status", d.inquiryHandler.Status)
		}

		// Public catalog routes
		v1.GET("/artworks", d.catalogHandler.ListArtworks)
		v1.GET("/artworks/:slug", d.catalogHandler.GetArtwork)
		v1.GET("/artists", d.catalogHandler.ListArtists)
		v1.GET("/artists/:slug", d.catalogHandler.GetArtist)
		v1.GET("/galleries", d.catalogHandler.ListGalleries)
		v1.GET("/galleries/:slug", d.catalogHandler.GetGallery)

		// Visitor clipboard
		saved := v1.Group("/saved-artworks")
		{
			saved.GET("", d.catalogHandler.SavedArtworks)
			saved.POST("", d.catalogHandler.SaveArtwork)
			saved.DELETE("/:artworkId", d.catalogHandler.UnsaveArtwork)
		}

		// Gallery staff routes
		gallery := v1.Group("/gallery")
		gallery.Use(d.authMiddleware, middleware.RequireRole(entities.UserRoleGallery))
		{
			gallery.GET("/inquiries", d.galleryInquiryHandler.List)
			gallery.GET("/inquiries/:id", d.galleryInquiryHandler.Show)
			gallery.PATCH("/inquiries/:id/status", d.galleryInquiryHandler.UpdateStatus)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireRole(entities.UserRoleAdmin))
		{
			admin.GET("/inquiries", d.adminHandler.ListInquiries)
			admin.GET("/inquiries/:id", d.adminHandler.GetInquiry)
			admin.PATCH("/inquiries/:id/status", d.adminHandler.UpdateInquiryStatus)
			admin.DELETE("/inquiries/:id", d.adminHandler.DeleteInquiry)

			admin.GET("/action-logs", d.adminHandler.ListActionLogs)
			admin.GET("/action-logs/actions", d.adminHandler.ActionLogActions)

			admin.PATCH("/artworks/:id/approval", d.adminHandler.SetArtworkApproval)
		}
	}
}
