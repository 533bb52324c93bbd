package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/salon-admin/internal/config"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/store"
)

type AuthHandler struct {
	store  *store.Store
	config *config.Config
}

func NewAuthHandler(st *store.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{store: st, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	sess, err := h.store.Authenticate(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	// The currentUser singleton mirrors the session for the UI shell; it
	// never carries a password.
	if err := h.store.SetCurrentUser(c.Request.Context(), *sess); err != nil {
		writeStoreError(c, err)
		return
	}

	token, err := h.generateToken(sess)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  sess,
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.store.ClearCurrentUser(c.Request.Context()); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(sess *models.Session) (string, error) {
	claims := jwt.MapClaims{
		"sub":       sess.ID,
		"companyId": sess.CompanyID,
		"role":      sess.Role,
		"name":      sess.Name,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
