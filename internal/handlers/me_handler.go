package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-admin/internal/middleware"
	"github.com/BruksfildServices01/salon-admin/internal/store"
)

type MeHandler struct {
	store *store.Store
}

func NewMeHandler(st *store.Store) *MeHandler {
	return &MeHandler{store: st}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	user, err := h.store.UserByID(c.Request.Context(), userID)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	resp := gin.H{"user": user}

	if user.CompanyID != "" {
		company, err := h.store.CompanyByID(c.Request.Context(), user.CompanyID)
		if err != nil {
			writeStoreError(c, err)
			return
		}
		resp["company"] = company
	}

	c.JSON(http.StatusOK, resp)
}

// --------- Theme preference ---------

type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

func (h *MeHandler) GetTheme(c *gin.Context) {
	theme, err := h.store.Theme(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

func (h *MeHandler) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := h.store.SetTheme(c.Request.Context(), req.Theme); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}
