package subscription

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

func (h *Handler) RegisterBarberRoutes(rg *gin.RouterGroup) {
	rg.POST("/subscriptions", h.Subscribe)
	rg.GET("/subscriptions/my", h.Mine)
	rg.POST("/subscriptions/cancel", h.Cancel)
}

func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sub, err := h.service.Subscribe(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		switch err {
		case ErrInvalidPlan:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Plan must be monthly or yearly")
		case ErrAlreadySubscribed:
			response.Error(c, http.StatusConflict, "ALREADY_EXISTS", "You already have an active subscription")
		case ErrPaymentDeclined:
			response.Error(c, http.StatusPaymentRequired, "PAYMENT_FAILED", "Payment was declined")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to subscribe")
		}
		return
	}
	response.Success(c, http.StatusCreated, sub)
}

func (h *Handler) Mine(c *gin.Context) {
	sub, err := h.service.MySubscription(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if err == ErrNoSubscription {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No subscription found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load subscription")
		return
	}
	response.Success(c, http.StatusOK, sub)
}

func (h *Handler) Cancel(c *gin.Context) {
	sub, err := h.service.Cancel(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if err == ErrNoActiveSubscription {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No active subscription")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel subscription")
		return
	}
	response.Success(c, http.StatusOK, sub)
}
