package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-admin/internal/httperr"
	"github.com/BruksfildServices01/salon-admin/internal/httpresp"
	"github.com/BruksfildServices01/salon-admin/internal/middleware"
	"github.com/BruksfildServices01/salon-admin/internal/store"
)

type ClientHandler struct {
	store *store.Store
}

func NewClientHandler(st *store.Store) *ClientHandler {
	return &ClientHandler{store: st}
}

// --------- Requests ---------

type CreateClientRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
}

type UpdateClientRequest struct {
	FullName *string `json:"fullName,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(string)

	clients, err := h.store.CompanyClients(c.Request.Context(), companyID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(string)

	client, err := h.store.ClientByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	if client == nil || client.CompanyID != companyID {
		httperr.NotFound(c, "client_not_found", "Record not found.")
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client, err := h.store.AddClient(c.Request.Context(), companyID, userID, store.ClientInput{
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client, err := h.store.UpdateClient(c.Request.Context(), userID, c.Param("id"), store.ClientPatch{
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	id, err := h.store.DeleteClient(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// Appointments lists one client's appointment history with derived services.
func (h *ClientHandler) Appointments(c *gin.Context) {
	appointments, err := h.store.ClientAppointments(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	httpresp.List(c, appointments)
}
