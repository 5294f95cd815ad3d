package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/megaxsolutions/syncorp-sub002/internal/adapters/http/middleware"
	"github.com/megaxsolutions/syncorp-sub002/internal/adapters/syncorp"
	"github.com/megaxsolutions/syncorp-sub002/internal/config"
	"github.com/megaxsolutions/syncorp-sub002/internal/core/services"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
)

// stubUpstream answers the HRIS endpoints the gateway touches during
// these tests.
func stubUpstream() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/employees/get_all_employee":
			w.Write([]byte(`{"data": [{"emp_ID": 100, "first_name": "Ana", "last_name": "Reyes"}]}`))
		case "/main/get_all_dropdown_data":
			w.Write([]byte(`{"data": {"cutoff": [], "leave_types": [], "overtime_types": [], "coaching_types": []}}`))
		case "/leave_requests/get_all_leave_request":
			w.Write([]byte(`{"data": [
				{"id": 1, "emp_ID": 100, "leave_type": "Sick Leave", "date_filed": "2024-02-01",
				 "start_date": "2024-02-05", "end_date": "2024-02-06", "status": null, "status2": null}
			]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success": false, "error": "not found"}`))
		}
	}))
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	srv := stubUpstream()
	t.Cleanup(srv.Close)

	hash, err := password.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cfg := &config.Config{AppMode: "dev", Port: "0"}
	cfg.JWT.Secret = "test-signing-key"
	cfg.JWT.AccessTokenMins = 15
	cfg.Admin.Username = "admin"
	cfg.Admin.PasswordHash = hash
	cfg.Admin.EmpID = "900"

	client := syncorp.NewClient(srv.URL, 2*time.Second)
	sess := syncorp.Session{Token: "upstream-token", EmpID: "900"}

	refs := services.NewReferenceService(client, sess, time.Minute)
	if err := refs.Refresh(context.Background()); err != nil {
		t.Fatalf("reference refresh: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	Setup(app, cfg, &Deps{
		Client:     client,
		Session:    sess,
		Auth:       services.NewAuthService(cfg),
		Reference:  refs,
		Leave:      services.NewLeaveService(client, sess, refs, time.Minute),
		Overtime:   services.NewOvertimeService(client, sess, refs, time.Minute),
		Complexity: services.NewComplexityService(client, sess, refs, time.Minute),
		Adjustment: services.NewAdjustmentService(client, sess, refs, time.Minute),
		Incident:   services.NewIncidentService(client, sess, refs, time.Minute),
		Attendance: services.NewAttendanceService(client, sess, refs, time.Minute),
		Coaching:   services.NewCoachingService(client, sess, refs),
		Report:     services.NewReportService(),
	})
	return app
}

func loginToken(t *testing.T, app *fiber.App) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "s3cret"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if !envelope.Success || envelope.Data.AccessToken == "" {
		t.Fatalf("login did not return a token")
	}
	return envelope.Data.AccessToken
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leave-requests", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", resp.StatusCode)
	}
}

func TestLoginThenListLeaveRequests(t *testing.T) {
	app := newTestApp(t)
	token := loginToken(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leave-requests?status=all", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    []struct {
			ID           string `json:"id"`
			EmployeeName string `json:"employee_name"`
			StatusLabel  string `json:"status_label"`
		} `json:"data"`
		Meta *struct {
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if !envelope.Success || len(envelope.Data) != 1 {
		t.Fatalf("unexpected list payload: %+v", envelope)
	}
	if envelope.Data[0].EmployeeName != "Ana Reyes" {
		t.Fatalf("employee name not joined: %q", envelope.Data[0].EmployeeName)
	}
	if envelope.Meta == nil || envelope.Meta.Total != 1 {
		t.Fatalf("pagination meta missing or wrong: %+v", envelope.Meta)
	}
}

func TestHealthCheckIsPublic(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d", resp.StatusCode)
	}
}
