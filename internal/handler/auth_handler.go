package handler

import (
	"net/http"

	"pesona/config"
	"pesona/internal/domain"
	"pesona/internal/middleware"
	"pesona/internal/models"
	"pesona/internal/repository"
	"pesona/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	cfg      *config.Config
	svc      *service.AuthService
	activity *repository.ActivityRepository
	log      *zap.Logger
}

func NewAuthHandler(cfg *config.Config, svc *service.AuthService, activity *repository.ActivityRepository, log *zap.Logger) *AuthHandler {
	return &AuthHandler{cfg: cfg, svc: svc, activity: activity, log: log}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and delivers the session token as an HTTP-only
// cookie. The token is not echoed in the body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	u, token, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCreds {
			respondError(c, http.StatusUnauthorized, err.Error())
			return
		}
		h.log.Error("login failed", zap.String("email", req.Email), zap.Error(err))
		respondDomainError(c, err)
		return
	}
	h.setSessionCookie(c, token, int(h.cfg.JWT.Expiry.Seconds()))
	_ = h.activity.Append(&models.ActivityLog{
		Action:    domain.ActionLogin,
		ActorID:   u.ID,
		ActorName: u.Email,
	})
	respondData(c, http.StatusOK, u)
}

// Me returns the current principal, re-validating the account's active flag.
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.svc.Principal(middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, http.StatusUnauthorized, "invalid or expired session")
		return
	}
	respondData(c, http.StatusOK, u)
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	respondData(c, http.StatusOK, gin.H{"loggedOut": true})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	secure := h.cfg.Server.Env == "production"
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", secure, true)
}
