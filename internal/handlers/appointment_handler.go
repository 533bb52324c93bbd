package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-admin/internal/httperr"
	"github.com/BruksfildServices01/salon-admin/internal/httpresp"
	"github.com/BruksfildServices01/salon-admin/internal/middleware"
	"github.com/BruksfildServices01/salon-admin/internal/store"
	"github.com/BruksfildServices01/salon-admin/internal/validators"
)

type AppointmentHandler struct {
	store *store.Store
}

func NewAppointmentHandler(st *store.Store) *AppointmentHandler {
	return &AppointmentHandler{store: st}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	Date       string   `json:"date" binding:"required"`
	Time       string   `json:"time" binding:"required"`
	ClientID   string   `json:"clientId" binding:"required"`
	ServiceIDs []string `json:"serviceIds" binding:"required"`
	Notes      string   `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Date       *string  `json:"date,omitempty"`
	Time       *string  `json:"time,omitempty"`
	ClientID   *string  `json:"clientId,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
	ServiceIDs []string `json:"serviceIds,omitempty"`
}

type UpdatePaymentRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// --------- Handlers ---------

// List returns company appointments; ?unpaid=true narrows to the unpaid
// ones (the finances view).
func (h *AppointmentHandler) List(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(string)
	ctx := c.Request.Context()

	if c.Query("unpaid") == "true" {
		appointments, err := h.store.UnpaidAppointments(ctx, companyID)
		if err != nil {
			writeStoreError(c, err)
			return
		}
		httpresp.List(c, appointments)
		return
	}

	appointments, err := h.store.CompanyAppointments(ctx, companyID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsDate(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}
	if !validators.IsClockTime(req.Time) {
		httperr.BadRequest(c, "invalid_time", "Time must be HH:MM.")
		return
	}

	appointment, err := h.store.AddAppointment(c.Request.Context(), companyID, userID, store.AppointmentInput{
		Date:       req.Date,
		Time:       req.Time,
		ClientID:   req.ClientID,
		ServiceIDs: req.ServiceIDs,
		Notes:      req.Notes,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	httpresp.Created(c, appointment)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Date != nil && !validators.IsDate(*req.Date) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}
	if req.Time != nil && !validators.IsClockTime(*req.Time) {
		httperr.BadRequest(c, "invalid_time", "Time must be HH:MM.")
		return
	}

	appointment, err := h.store.UpdateAppointment(c.Request.Context(), userID, c.Param("id"), store.AppointmentPatch{
		Date:       req.Date,
		Time:       req.Time,
		ClientID:   req.ClientID,
		Notes:      req.Notes,
		ServiceIDs: req.ServiceIDs,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	httpresp.OK(c, appointment)
}

func (h *AppointmentHandler) UpdatePayment(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Paid == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	appointment, err := h.store.UpdateAppointmentPaymentStatus(c.Request.Context(), userID, c.Param("id"), *req.Paid)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	httpresp.OK(c, appointment)
}

func (h *AppointmentHandler) UpdateNotes(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	appointment, err := h.store.UpdateAppointmentNotes(c.Request.Context(), userID, c.Param("id"), req.Notes)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	httpresp.OK(c, appointment)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	id, err := h.store.DeleteAppointment(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}
