package review

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

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/shops/:id/reviews", h.ListByShop)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.Create)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rev, err := h.service.CreateReview(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		switch err {
		case ErrShopNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Shop not found")
		case ErrInvalidRating:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
		case ErrAlreadyReviewed:
			response.Error(c, http.StatusConflict, "ALREADY_EXISTS", "You already reviewed this shop")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create review")
		}
		return
	}
	response.Success(c, http.StatusCreated, rev)
}

func (h *Handler) ListByShop(c *gin.Context) {
	views, err := h.service.ListByShop(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reviews")
		return
	}
	response.Success(c, http.StatusOK, views)
}
