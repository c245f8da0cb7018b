package favorite

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zenchair/internal/middleware"
	"zenchair/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/favorites/:shop_id", h.Add)
	rg.DELETE("/favorites/:shop_id", h.Remove)
	rg.GET("/favorites", h.List)
	rg.GET("/shops/recent", h.Recent)
}

func (h *Handler) Add(c *gin.Context) {
	err := h.service.Add(c.Request.Context(), middleware.UserID(c), c.Param("shop_id"))
	if err != nil {
		if err == ErrShopNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Shop not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add favorite")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Added to favorites"})
}

func (h *Handler) Remove(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), middleware.UserID(c), c.Param("shop_id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove favorite")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Removed from favorites"})
}

func (h *Handler) List(c *gin.Context) {
	shops, err := h.service.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load favorites")
		return
	}
	response.Success(c, http.StatusOK, shops)
}

func (h *Handler) Recent(c *gin.Context) {
	shops, err := h.service.Recent(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load recent shops")
		return
	}
	response.Success(c, http.StatusOK, shops)
}
