package store

import "github.com/BruksfildServices01/salon-admin/internal/httperr"

// Business errors raised by store operations. Handlers map these to HTTP
// statuses by code; callers match with errors.Is or httperr.IsBusiness.
var (
	ErrDuplicateLogin        = httperr.ErrBusiness("login_already_exists")
	ErrCompanyNotFound       = httperr.ErrBusiness("company_not_found")
	ErrUserNotFound          = httperr.ErrBusiness("user_not_found")
	ErrEmployeeNotFound      = httperr.ErrBusiness("employee_not_found")
	ErrServiceNotFound       = httperr.ErrBusiness("service_not_found")
	ErrClientNotFound        = httperr.ErrBusiness("client_not_found")
	ErrAppointmentNotFound   = httperr.ErrBusiness("appointment_not_found")
	ErrClientHasAppointments = httperr.ErrBusiness("client_has_appointments")
	ErrInvalidCredentials    = httperr.ErrBusiness("invalid_credentials")
)
