package roi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/bootstrap"
	"assessment-backend/internal/roi"
	"assessment-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{Env: "dev"})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func validCalculation() map[string]any {
	return map[string]any{
		"user_info": map[string]any{
			"name":    "Omar Aziz",
			"email":   "omar@example.com",
			"company": "Logistics Plus",
			"role":    "Operations Manager",
		},
		"inputs": map[string]any{
			"employees":          12,
			"hours_per_week":     18,
			"hourly_rate":        45,
			"automation_percent": 60,
		},
		"calculations": map[string]any{
			"annual_savings": 252720,
			"payback_months": 4.2,
		},
	}
}

func TestROISaveAndGetRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(validCalculation())
	req := httptest.NewRequest(http.MethodPost, "/api/roi-calculator/save", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created roi.SaveResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode save response: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}

	getReq := httptest.NewRequest(http.MethodGet, "/api/roi-calculator/"+created.ID, nil)
	getResp := httptest.NewRecorder()
	router.ServeHTTP(getResp, getReq)
	if getResp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", getResp.Code)
	}

	var fetched roi.Result
	if err := json.NewDecoder(getResp.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if fetched.ID != created.ID {
		t.Fatalf("expected id %s, got %s", created.ID, fetched.ID)
	}
	if fetched.Inputs["employees"] != float64(12) {
		t.Fatalf("inputs did not round-trip: %v", fetched.Inputs)
	}
	if fetched.Calculations["payback_months"] != 4.2 {
		t.Fatalf("calculations did not round-trip: %v", fetched.Calculations)
	}
	if fetched.CreatedAt.IsZero() {
		t.Fatalf("expected server-assigned created_at")
	}
}

func TestROIListEndpointNotShadowedByID(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(validCalculation())
	saveReq := httptest.NewRequest(http.MethodPost, "/api/roi-calculator/save", bytes.NewReader(body))
	saveReq.Header.Set("Content-Type", "application/json")
	saveResp := httptest.NewRecorder()
	router.ServeHTTP(saveResp, saveReq)
	if saveResp.Code != http.StatusCreated {
		t.Fatalf("save: expected 201, got %d", saveResp.Code)
	}

	// "results" must hit the list route, not resolve as an id lookup.
	req := httptest.NewRequest(http.MethodGet, "/api/roi-calculator/results", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var list roi.ListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Count != 1 || len(list.Data) != 1 {
		t.Fatalf("expected one stored result, got %d", list.Count)
	}
}

func TestROISaveRejectsMissingCalculations(t *testing.T) {
	router := newTestRouter(t)

	payload := validCalculation()
	delete(payload, "calculations")
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/roi-calculator/save", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}
	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %q", errResp.Error.Code)
	}
}
