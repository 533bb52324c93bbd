package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-admin/internal/httpresp"
	"github.com/BruksfildServices01/salon-admin/internal/middleware"
	"github.com/BruksfildServices01/salon-admin/internal/store"
)

type ServiceHandler struct {
	store *store.Store
}

func NewServiceHandler(st *store.Store) *ServiceHandler {
	return &ServiceHandler{store: st}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name     string `json:"name" binding:"required"`
	Duration int    `json:"duration" binding:"required,min=1"`
	Type     string `json:"type"`
	Color    string `json:"color"`
}

type UpdateServiceRequest struct {
	Name     *string `json:"name,omitempty"`
	Duration *int    `json:"duration,omitempty"`
	Type     *string `json:"type,omitempty"`
	Color    *string `json:"color,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(string)

	services, err := h.store.CompanyServices(c.Request.Context(), companyID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	service, err := h.store.AddService(c.Request.Context(), companyID, userID, store.ServiceInput{
		Name:     req.Name,
		Duration: req.Duration,
		Type:     req.Type,
		Color:    req.Color,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	service, err := h.store.UpdateService(c.Request.Context(), userID, c.Param("id"), store.ServicePatch{
		Name:     req.Name,
		Duration: req.Duration,
		Type:     req.Type,
		Color:    req.Color,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	id, err := h.store.DeleteService(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}
