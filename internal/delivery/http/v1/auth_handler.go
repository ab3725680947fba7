package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kodig3618/Job-Tracker/internal/delivery/http/response"
	"github.com/kodig3618/Job-Tracker/internal/domain"
	"github.com/kodig3618/Job-Tracker/pkg/apperror"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.POST("/logout", handler.Logout)
		protectedAuth.GET("/me", handler.Me)
	}
}

// Credential checks are delegated to the usecase so empty-field and
// password-length messages stay uniform; no binding:"required" here.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new user with an empty job list.
func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUC.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful! You can now log in.", nil)
}

// Login validates credentials and returns a bearer token carrying the
// session username.
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	signed, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token":    signed,
		"username": req.Username,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUC.Logout(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// Me returns the session user without the password field.
func (h *AuthHandler) Me(c *gin.Context) {
	username := c.GetString(string(domain.KeyUsername))
	user, err := h.authUC.GetUser(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Current user", gin.H{
		"username": user.Username,
		"created":  user.Created,
		"jobCount": len(user.Jobs),
	})
}
