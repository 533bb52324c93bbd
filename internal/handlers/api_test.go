package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-admin/internal/config"
	"github.com/BruksfildServices01/salon-admin/internal/routes"
	"github.com/BruksfildServices01/salon-admin/internal/storage"
	"github.com/BruksfildServices01/salon-admin/internal/store"
)

func newTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:          "test-secret",
		SuperAdminPassword: "bootpw",
	}

	st := store.New(storage.NewMemory())
	require.NoError(t, st.EnsureSuperAdmin(context.Background(), "bootpw"))

	r := gin.New()
	routes.RegisterRoutes(r, st, cfg)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, user, password string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"login": user, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	r := newTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"login": "superadmin", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCompanyLifecycle(t *testing.T) {
	r := newTestAPI(t)
	super := login(t, r, "superadmin", "bootpw")

	w := doJSON(t, r, http.MethodPost, "/api/companies", super, gin.H{
		"name": "Acme Salon", "address": "1 Main St", "phone": "555-0000", "email": "hello@acme.example",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var company struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &company))

	w = doJSON(t, r, http.MethodPost, "/api/companies/"+company.ID+"/admins", super, gin.H{
		"name": "Bob", "login": "bob", "password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "passwordHash")

	// Same login again: conflict.
	w = doJSON(t, r, http.MethodPost, "/api/companies/"+company.ID+"/admins", super, gin.H{
		"name": "Bob Again", "login": "bob", "password": "pw123456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/companies", super, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Acme Salon")
}

func TestCompanyRoutes_RequireSuperAdmin(t *testing.T) {
	r := newTestAPI(t)
	super := login(t, r, "superadmin", "bootpw")

	w := doJSON(t, r, http.MethodPost, "/api/companies", super, gin.H{"name": "Acme"})
	require.Equal(t, http.StatusCreated, w.Code)
	var company struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &company))

	w = doJSON(t, r, http.MethodPost, "/api/companies/"+company.ID+"/admins", super, gin.H{
		"name": "Bob", "login": "bob", "password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	admin := login(t, r, "bob", "pw123456")

	w = doJSON(t, r, http.MethodGet, "/api/companies", admin, nil)
	assert.Equal(t, http.StatusForbidden, w.Code, "company admins cannot reach tenant management")

	// And the other direction: superadmin carries no company scope.
	w = doJSON(t, r, http.MethodGet, "/api/me/clients", super, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// No token at all.
	w = doJSON(t, r, http.MethodGet, "/api/me/clients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminWorkflow(t *testing.T) {
	r := newTestAPI(t)
	super := login(t, r, "superadmin", "bootpw")

	w := doJSON(t, r, http.MethodPost, "/api/companies", super, gin.H{"name": "Acme"})
	require.Equal(t, http.StatusCreated, w.Code)
	var company struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &company))

	w = doJSON(t, r, http.MethodPost, "/api/companies/"+company.ID+"/admins", super, gin.H{
		"name": "Bob", "login": "bob", "password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	admin := login(t, r, "bob", "pw123456")

	// Client
	w = doJSON(t, r, http.MethodPost, "/api/me/clients", admin, gin.H{
		"fullName": "Jane Doe", "phone": "555-0100",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var client struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &client))

	// Service
	w = doJSON(t, r, http.MethodPost, "/api/me/services", admin, gin.H{
		"name": "Haircut", "duration": 30, "color": "#ff0000",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var service struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &service))

	// Appointment with a bad date is rejected before it hits the store.
	w = doJSON(t, r, http.MethodPost, "/api/me/appointments", admin, gin.H{
		"date": "10/01/2025", "time": "09:00", "clientId": client.ID, "serviceIds": []string{service.ID},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/me/appointments", admin, gin.H{
		"date": "2025-01-10", "time": "09:00", "clientId": client.ID, "serviceIds": []string{service.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var appt struct {
		ID         string   `json:"id"`
		ServiceIDs []string `json:"serviceIds"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appt))
	assert.Equal(t, []string{service.ID}, appt.ServiceIDs)

	// Deleting the client is blocked while the appointment exists.
	w = doJSON(t, r, http.MethodDelete, "/api/me/clients/"+client.ID, admin, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Mark paid, then the unpaid view is empty.
	w = doJSON(t, r, http.MethodPatch, "/api/me/appointments/"+appt.ID+"/payment", admin, gin.H{"paid": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/me/appointments?unpaid=true", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":0`)

	// Client history shows the appointment.
	w = doJSON(t, r, http.MethodGet, "/api/me/clients/"+client.ID+"/appointments", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), appt.ID)

	// Activity trail captured everything this admin did.
	w = doJSON(t, r, http.MethodGet, "/api/me/activity-logs", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jane Doe")
	assert.Contains(t, w.Body.String(), "update_payment")
}

func TestEmployeeEndpoints(t *testing.T) {
	r := newTestAPI(t)
	super := login(t, r, "superadmin", "bootpw")

	w := doJSON(t, r, http.MethodPost, "/api/companies", super, gin.H{"name": "Acme"})
	require.Equal(t, http.StatusCreated, w.Code)
	var company struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &company))

	w = doJSON(t, r, http.MethodPost, "/api/companies/"+company.ID+"/admins", super, gin.H{
		"name": "Bob", "login": "bob", "password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	admin := login(t, r, "bob", "pw123456")

	w = doJSON(t, r, http.MethodPost, "/api/me/employees", admin, gin.H{
		"firstName": "Ann", "lastName": "Lee", "hourlyRate": 25, "login": "ann", "password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "passwordHash")
	var employee struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &employee))

	w = doJSON(t, r, http.MethodPost, "/api/me/employees", admin, gin.H{
		"firstName": "Ann2", "lastName": "Lee2", "hourlyRate": 30, "login": "ann", "password": "pw123456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/me/employees/"+employee.ID, admin, gin.H{
		"hourlyRate": 40,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"hourlyRate":40`)
	assert.Contains(t, w.Body.String(), `"firstName":"Ann"`)

	w = doJSON(t, r, http.MethodPatch, "/api/me/employees/missing", admin, gin.H{"hourlyRate": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestThemeEndpoints(t *testing.T) {
	r := newTestAPI(t)
	super := login(t, r, "superadmin", "bootpw")

	w := doJSON(t, r, http.MethodGet, "/api/me/theme", super, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"theme":"light"}`, w.Body.String())

	w = doJSON(t, r, http.MethodPut, "/api/me/theme", super, gin.H{"theme": "dark"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/me/theme", super, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"theme":"dark"}`, w.Body.String())
}
