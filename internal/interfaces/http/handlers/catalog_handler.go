package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"artmarket.backend/internal/domain/entities"
	"artmarket.backend/internal/interfaces/http/response"
	"artmarket.backend/internal/usecases"
)

// SessionHeader carries the anonymous visitor session id for the clipboard
const SessionHeader = "X-Session-ID"

// CatalogHandler handles the public browsing endpoints
type CatalogHandler struct {
	catalogUsecase *usecases.CatalogUsecase
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUsecase *usecases.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

// ListArtworks lists approved artworks
// GET /api/v1/artworks
func (h *CatalogHandler) ListArtworks(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	var filter entities.ArtworkFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	artworks, meta, err := h.catalogUsecase.ListArtworks(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"data": artworks,
		"meta": meta,
	})
}

// GetArtwork returns one artwork by slug
// GET /api/v1/artworks/:slug
func (h *CatalogHandler) GetArtwork(c *gin.Context) {
	artwork, err := h.catalogUsecase.GetArtwork(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, artwork)
}

// ListArtists lists artists
// GET /api/v1/artists
func (h *CatalogHandler) ListArtists(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	artists, meta, err := h.catalogUsecase.ListArtists(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"data": artists,
		"meta": meta,
	})
}

// GetArtist returns one artist by slug
// GET /api/v1/artists/:slug
func (h *CatalogHandler) GetArtist(c *gin.Context) {
	artist, err := h.catalogUsecase.GetArtist(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, artist)
}

// ListGalleries lists active galleries
// GET /api/v1/galleries
func (h *CatalogHandler) ListGalleries(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	galleries, meta, err := h.catalogUsecase.ListGalleries(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"data": galleries,
		"meta": meta,
	})
}

// GetGallery returns one gallery by slug
// GET /api/v1/galleries/:slug
func (h *CatalogHandler) GetGallery(c *gin.Context) {
	gallery, err := h.catalogUsecase.GetGallery(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gallery)
}

// SaveArtwork adds an artwork to the visitor's clipboard
// POST /api/v1/saved-artworks
func (h *CatalogHandler) SaveArtwork(c *gin.Context) {
	sessionID := c.GetHeader(SessionHeader)
	if sessionID == "" {
		response.BadRequest(c, "missing session header")
		return
	}

	var input entities.SaveArtworkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	saved, err := h.catalogUsecase.SaveArtwork(c.Request.Context(), sessionID, input.ArtworkID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, saved)
}

// UnsaveArtwork removes an artwork from the visitor's clipboard
// DELETE /api/v1/saved-artworks/:artworkId
func (h *CatalogHandler) UnsaveArtwork(c *gin.Context) {
	sessionID := c.GetHeader(SessionHeader)
	if sessionID == "" {
		response.BadRequest(c, "missing session header")
		return
	}

	artworkID, err := strconv.ParseInt(c.Param("artworkId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid artwork id")
		return
	}

	if err := h.catalogUsecase.UnsaveArtwork(c.Request.Context(), sessionID, artworkID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "removed"})
}

// SavedArtworks lists the visitor's clipboard
// GET /api/v1/saved-artworks
func (h *CatalogHandler) SavedArtworks(c *gin.Context) {
	sessionID := c.GetHeader(SessionHeader)
	if sessionID == "" {
		response.BadRequest(c, "missing session header")
		return
	}

	saved, err := h.catalogUsecase.SavedArtworks(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"data": saved})
}
