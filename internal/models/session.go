package models

// Session is the currentUser singleton record: the authenticated identity
// with the password already stripped.
type Session struct {
	ID        string `json:"id"`
	Login     string `json:"login"`
	Role      string `json:"role"`
	Name      string `json:"name,omitempty"`
	CompanyID string `json:"companyId,omitempty"`
}
