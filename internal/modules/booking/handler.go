package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zenchair/internal/domain"
	"zenchair/internal/middleware"
	"zenchair/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the endpoints that allow anonymous callers.
// Both run behind OptionalAuth so a logged-in customer is still attributed.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/available-slots/:shop_id", h.AvailableSlots)
	rg.POST("/bookings", h.CreateBooking)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/my", h.MyBookings)
	rg.GET("/bookings/shop/:shop_id", h.ShopBookings)
	rg.PUT("/bookings/:id/status", h.UpdateStatus)
	rg.DELETE("/bookings/:id", h.CancelBooking)
}

func (h *Handler) AvailableSlots(c *gin.Context) {
	shopID := c.Param("shop_id")
	date := c.Query("date")
	if date == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date query parameter is required")
		return
	}

	slots, err := h.service.AvailableSlots(c.Request.Context(), shopID, date)
	if err != nil {
		switch err {
		case ErrShopNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Shop not found")
		default:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date or shop configuration")
		}
		return
	}

	resp := AvailableSlotsResponse{AvailableSlots: slots}
	if len(slots) == 0 {
		resp.Message = "Shop closed on this date"
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req, middleware.UserID(c))
	if err != nil {
		switch err {
		case ErrShopNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Shop not found")
		case ErrInvalidServiceIDs:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service IDs")
		case ErrInvalidProductIDs:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid product IDs")
		case ErrInvalidDate:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date")
		case ErrDateOutOfRange:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Bookings can only be made within the next 7 days")
		case ErrSlotTaken:
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Time slot already booked")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"booking_id": b.ID,
		"status":     b.Status,
	})
}

func (h *Handler) MyBookings(c *gin.Context) {
	bookings, err := h.service.MyBookings(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) ShopBookings(c *gin.Context) {
	bookings, err := h.service.ShopBookings(c.Request.Context(), c.Param("shop_id"), middleware.UserID(c))
	if err != nil {
		switch err {
		case ErrShopNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Shop not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	err := h.service.ChangeStatus(c.Request.Context(), c.Param("id"),
		domain.BookingStatus(req.Status), middleware.UserID(c))
	if err != nil {
		h.statusError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Booking updated successfully"})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	err := h.service.CancelBooking(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		h.statusError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}

func (h *Handler) statusError(c *gin.Context, err error) {
	switch err {
	case ErrBookingNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	case ErrInvalidStatus, ErrInvalidTransition:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Illegal status change")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking")
	}
}
