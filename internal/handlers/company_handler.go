package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-admin/internal/httperr"
	"github.com/BruksfildServices01/salon-admin/internal/httpresp"
	"github.com/BruksfildServices01/salon-admin/internal/store"
	"github.com/BruksfildServices01/salon-admin/internal/validators"
)

// CompanyHandler is the superadmin surface: tenants and their admin accounts.
type CompanyHandler struct {
	store *store.Store
}

func NewCompanyHandler(st *store.Store) *CompanyHandler {
	return &CompanyHandler{store: st}
}

// --------- Requests ---------

type CreateCompanyRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *CompanyHandler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Email != "" && !validators.IsEmail(req.Email) {
		httperr.BadRequest(c, "invalid_email", "Company email is not a valid address.")
		return
	}

	company, err := h.store.AddCompany(c.Request.Context(), store.CompanyInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	httpresp.Created(c, company)
}

func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.store.Companies(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}
	httpresp.List(c, companies)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.store.CompanyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	if company == nil {
		httperr.NotFound(c, "company_not_found", "Record not found.")
		return
	}
	httpresp.OK(c, company)
}

func (h *CompanyHandler) CreateAdmin(c *gin.Context) {
	companyID := c.Param("id")

	company, err := h.store.CompanyByID(c.Request.Context(), companyID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	if company == nil {
		httperr.NotFound(c, "company_not_found", "Record not found.")
		return
	}

	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	admin, err := h.store.AddCompanyAdmin(c.Request.Context(), companyID, store.AdminInput{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	httpresp.Created(c, admin)
}

func (h *CompanyHandler) ListAdmins(c *gin.Context) {
	admins, err := h.store.CompanyAdmins(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	httpresp.List(c, admins)
}
