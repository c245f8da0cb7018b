package catalog

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
	rg.GET("/shops/:id/services", h.ListServices)
	rg.GET("/shops/:id/products", h.ListProducts)
}

func (h *Handler) RegisterBarberRoutes(rg *gin.RouterGroup) {
	rg.POST("/shops/:id/services", h.CreateService)
	rg.PUT("/services/:id", h.UpdateService)
	rg.DELETE("/services/:id", h.DeleteService)
	rg.POST("/shops/:id/products", h.CreateProduct)
	rg.PUT("/products/:id", h.UpdateProduct)
	rg.DELETE("/products/:id", h.DeleteProduct)
}

func (h *Handler) catalogError(c *gin.Context, err error) {
	switch err {
	case ErrShopNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Shop not found")
	case ErrServiceNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
	case ErrProductNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
	case ErrNotOwner:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this shop")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.catalogError(c, err)
		return
	}
	response.Success(c, http.StatusOK, services)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), middleware.UserID(c), c.Param("id"), req)
	if err != nil {
		h.catalogError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, svc)
}

func (h *Handler) UpdateService(c *gin.Context) {
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.UpdateService(c.Request.Context(), middleware.UserID(c), c.Param("id"), req)
	if err != nil {
		h.catalogError(c, err)
		return
	}
	response.Success(c, http.StatusOK, svc)
}

func (h *Handler) DeleteService(c *gin.Context) {
	if err := h.service.DeleteService(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		h.catalogError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Service deleted"})
}

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.catalogError(c, err)
		return
	}
	response.Success(c, http.StatusOK, products)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.CreateProduct(c.Request.Context(), middleware.UserID(c), c.Param("id"), req)
	if err != nil {
		h.catalogError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.UpdateProduct(c.Request.Context(), middleware.UserID(c), c.Param("id"), req)
	if err != nil {
		h.catalogError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.service.DeleteProduct(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		h.catalogError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Product deleted"})
}
