package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-admin/internal/httpresp"
	"github.com/BruksfildServices01/salon-admin/internal/middleware"
	"github.com/BruksfildServices01/salon-admin/internal/store"
)

type EmployeeHandler struct {
	store *store.Store
}

func NewEmployeeHandler(st *store.Store) *EmployeeHandler {
	return &EmployeeHandler{store: st}
}

// --------- Requests ---------

type CreateEmployeeRequest struct {
	FirstName  string  `json:"firstName" binding:"required"`
	LastName   string  `json:"lastName" binding:"required"`
	HourlyRate float64 `json:"hourlyRate" binding:"min=0"`
	Login      string  `json:"login" binding:"required"`
	Password   string  `json:"password" binding:"required,min=6"`
}

type UpdateEmployeeRequest struct {
	FirstName  *string  `json:"firstName,omitempty"`
	LastName   *string  `json:"lastName,omitempty"`
	HourlyRate *float64 `json:"hourlyRate,omitempty"`
	Login      *string  `json:"login,omitempty"`
	Password   *string  `json:"password,omitempty"`
}

// --------- Handlers ---------

func (h *EmployeeHandler) List(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(string)

	employees, err := h.store.CompanyEmployees(c.Request.Context(), companyID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	httpresp.List(c, employees)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	employee, err := h.store.AddEmployee(c.Request.Context(), companyID, userID, store.EmployeeInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		HourlyRate: req.HourlyRate,
		Login:      req.Login,
		Password:   req.Password,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	httpresp.Created(c, employee)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	employee, err := h.store.UpdateEmployee(c.Request.Context(), userID, c.Param("id"), store.EmployeePatch{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		HourlyRate: req.HourlyRate,
		Login:      req.Login,
		Password:   req.Password,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	httpresp.OK(c, employee)
}
