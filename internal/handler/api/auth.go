package api

import (
	"errors"
	"net/http"

	reqdto "equiplend/internal/handler/dto/request"
	resdto "equiplend/internal/handler/dto/response"
	"equiplend/internal/handler/middleware"
	"equiplend/internal/pkg/errs"
	"equiplend/internal/usecase/commands"
	"equiplend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth  commands.AuthCommands
	users queries.UserQueries
}

func NewAuthHandler(auth commands.AuthCommands, users queries.UserQueries) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

// @Summary Login
// @Description Authenticate with email and password, returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Token,
		User:        resdto.FromUserSnapshot(result.User),
	})
}

// @Summary Current user
// @Description Return the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.users.UserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
