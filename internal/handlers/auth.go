package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"employee-management-api/internal/credentials"
	"employee-management-api/internal/dto"
	apierrors "employee-management-api/internal/errors"
	"employee-management-api/internal/models"
	"employee-management-api/internal/services"
)

// AuthHandler coordinates registration and login HTTP handlers.
type AuthHandler struct {
	employeeService *services.EmployeeService
	authService     *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(employeeService *services.EmployeeService, authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		employeeService: employeeService,
		authService:     authService,
	}
}

// Register creates a new employee account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name     string  `json:"name" binding:"required"`
		Email    string  `json:"email" binding:"required,email"`
		Position *string `json:"position"`
		Password string  `json:"password" binding:"required"`
		Role     string  `json:"role" binding:"omitempty,oneof=admin employee"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	emp, err := h.employeeService.Create(services.CreateEmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Position: req.Position,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		respondEmployeeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeOut(*emp))
}

// Login authenticates an employee. No session or token is issued.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			apierrors.InvalidCredentials(c)
		case errors.Is(err, services.ErrPasswordExpired):
			apierrors.PasswordExpired(c)
		case errors.Is(err, credentials.ErrCredentialFault):
			apierrors.InternalError(c, "Stored credentials are unreadable")
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginOut{
		Message:    "Login successful",
		EmployeeID: result.EmployeeID,
		Role:       result.Role,
		Name:       result.Name,
	})
}

// bindError translates a binding failure into a 400 response, exposing
// per-field validation tags when available.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[strings.ToLower(fe.Field())] = fe.Tag()
		}
		apierrors.BadRequestWithDetails(c, "Invalid request body", details)
		return
	}
	apierrors.BadRequest(c, "Invalid request body")
}
