package auth

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.RegisterCustomer)
	rg.POST("/auth/barber/register", h.RegisterBarber)
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/logout", h.Logout)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.Me)
}

func toPublic(r *LoginResult) AuthResponse {
	return AuthResponse{
		User: UserPublic{
			ID:    r.User.ID,
			Role:  string(r.User.Role),
			Name:  r.User.Name,
			Email: r.User.Email,
		},
		Token: r.Token,
	}
}

func (h *Handler) RegisterCustomer(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.RegisterCustomer(c.Request.Context(), req)
	if err != nil {
		h.registerError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toPublic(res))
}

func (h *Handler) RegisterBarber(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.RegisterBarber(c.Request.Context(), req)
	if err != nil {
		h.registerError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toPublic(res))
}

func (h *Handler) registerError(c *gin.Context, err error) {
	switch err {
	case ErrEmailAlreadyExists:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email already registered")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		}
		return
	}
	response.Success(c, http.StatusOK, toPublic(res))
}

// Logout exists for API compatibility; tokens are stateless and simply
// discarded client-side.
func (h *Handler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *Handler) Me(c *gin.Context) {
	u, err := h.service.Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load profile")
		}
		return
	}
	response.Success(c, http.StatusOK, UserPublic{
		ID:    u.ID,
		Role:  string(u.Role),
		Name:  u.Name,
		Email: u.Email,
	})
}
