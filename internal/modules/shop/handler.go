package shop

import (
	"net/http"
	"strconv"

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
	rg.GET("/shops", h.List)
	rg.GET("/shops/:id", h.Get)
}

func (h *Handler) RegisterBarberRoutes(rg *gin.RouterGroup) {
	rg.POST("/shops", h.Create)
	rg.GET("/shops/my", h.Mine)
	rg.PUT("/shops/:id", h.Update)
	rg.PUT("/shops/:id/working-hours", h.SetWorkingHours)
	rg.PUT("/shops/:id/vacation", h.SetVacation)
	rg.POST("/shops/:id/gallery", h.AddGalleryImage)
	rg.DELETE("/shops/:id/gallery/:index", h.RemoveGalleryImage)
}

func (h *Handler) shopError(c *gin.Context, err error) {
	switch err {
	case ErrShopNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Shop not found")
	case ErrShopAlreadyExists:
		response.Error(c, http.StatusConflict, "ALREADY_EXISTS", "You already have a shop")
	case ErrNotOwner:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this shop")
	case ErrInvalidWorkingHours:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid working hours")
	case ErrInvalidVacationDate:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Vacation dates must be YYYY-MM-DD")
	case ErrInvalidImageIndex:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Image index out of range")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	shops, err := h.service.ListByCity(c.Request.Context(), c.Query("city"), limit)
	if err != nil {
		h.shopError(c, err)
		return
	}
	response.Success(c, http.StatusOK, shops)
}

func (h *Handler) Get(c *gin.Context) {
	detail, err := h.service.GetShop(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.shopError(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sh, err := h.service.CreateShop(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.shopError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sh)
}

func (h *Handler) Mine(c *gin.Context) {
	sh, err := h.service.MyShop(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.shopError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sh)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sh, err := h.service.UpdateShop(c.Request.Context(), middleware.UserID(c), c.Param("id"), req)
	if err != nil {
		h.shopError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sh)
}

func (h *Handler) SetWorkingHours(c *gin.Context) {
	var req WorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetWorkingHours(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.WorkingHours); err != nil {
		h.shopError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Working hours updated"})
}

func (h *Handler) SetVacation(c *gin.Context) {
	var req VacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetVacationDates(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Dates); err != nil {
		h.shopError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Vacation dates updated"})
}

func (h *Handler) AddGalleryImage(c *gin.Context) {
	var req GalleryAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	images, err := h.service.AddGalleryImage(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Image)
	if err != nil {
		h.shopError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"gallery_images": images})
}

func (h *Handler) RemoveGalleryImage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Image index must be a number")
		return
	}

	images, err := h.service.RemoveGalleryImage(c.Request.Context(), middleware.UserID(c), c.Param("id"), index)
	if err != nil {
		h.shopError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"gallery_images": images})
}
