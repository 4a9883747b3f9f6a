package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/httperr"
	"jobboard/internal/models"
	"jobboard/internal/services"
)

type AccountHandler struct {
	UserService *services.UserService
	JWT         *auth.JWTManager
}

func NewAccountHandler(u *services.UserService, jwt *auth.JWTManager) *AccountHandler {
	return &AccountHandler{UserService: u, JWT: jwt}
}

// Register is POST /accounts/register/.
func (h *AccountHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if !models.ValidRole(models.Role(req.Role)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be employer or jobseeker"})
		return
	}

	user, err := h.UserService.Register(&req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login is POST /accounts/login/ — exchanges credentials for a token pair.
func (h *AccountHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user, err := h.UserService.Authenticate(&req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	pair, err := h.JWT.IssuePair(auth.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Refresh is POST /accounts/refresh/ — a valid refresh token buys a new pair.
func (h *AccountHandler) Refresh(c *gin.Context) {
	var req dtos.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	identity, err := h.JWT.ValidateRefresh(req.Refresh)
	if err != nil {
		httperr.Abort(c, httperr.ErrUnauthenticated)
		return
	}

	pair, err := h.JWT.IssuePair(identity)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Me is GET /accounts/me/ — the caller's own profile.
func (h *AccountHandler) Me(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		httperr.Abort(c, httperr.ErrUnauthenticated)
		return
	}
	user, err := h.UserService.Get(identity.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
