package maturity_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/bootstrap"
	"assessment-backend/internal/maturity"
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

func validSubmission(company string) map[string]any {
	return map[string]any{
		"user_info": map[string]any{
			"name":    "Sara Haddad",
			"email":   "sara@example.com",
			"company": company,
			"role":    "COO",
		},
		"answers": map[string]any{"q1": 3, "q2": 4},
		"results": map[string]any{
			"percentage":        72,
			"maturity_stage":    "Automated",
			"level_name":        "Level 3",
			"level_description": "Core processes run without manual steps",
			"section_scores": []map[string]any{
				{"name": "Data & Reporting", "score": 70, "status": "good", "analysis": "Dashboards exist but are updated by hand"},
				{"name": "Sales Process", "score": 80, "status": "strong", "analysis": "CRM adoption is high"},
			},
			"detailed_recommendations": []string{"Automate report generation"},
			"next_steps":               []string{"Book a process review"},
			"strengths":                []string{"CRM discipline"},
			"weaknesses":               []string{"Manual reporting"},
			"overall_analysis":         map[string]string{"summary": "Solid foundation with reporting gaps"},
		},
	}
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func getJSON(t *testing.T, router *gin.Engine, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if out != nil && resp.Code == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s response: %v", path, err)
		}
	}
	return resp
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/api/assessment/save", validSubmission("TechCorp Solutions"))
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created maturity.SaveResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode save response: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id, got empty")
	}
	if created.AssessmentURL != "/api/assessment/"+created.ID {
		t.Fatalf("unexpected assessment_url %q", created.AssessmentURL)
	}

	var fetched maturity.Assessment
	respGet := getJSON(t, router, "/api/assessment/"+created.ID, &fetched)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}
	if fetched.ID != created.ID {
		t.Fatalf("expected id %s, got %s", created.ID, fetched.ID)
	}
	if fetched.Results.Percentage != 72 {
		t.Fatalf("expected percentage 72, got %d", fetched.Results.Percentage)
	}
	if fetched.Results.MaturityStage != "Automated" {
		t.Fatalf("expected stage Automated, got %q", fetched.Results.MaturityStage)
	}
	if fetched.UserInfo.Company != "TechCorp Solutions" {
		t.Fatalf("expected submitted company, got %q", fetched.UserInfo.Company)
	}
	if fetched.CreatedAt.IsZero() {
		t.Fatalf("expected server-assigned created_at")
	}
	if fetched.Answers["q1"] != 3 || fetched.Answers["q2"] != 4 {
		t.Fatalf("answers did not round-trip: %v", fetched.Answers)
	}
}

func TestSaveMissingEmailRejectedWithoutWrite(t *testing.T) {
	router := newTestRouter(t)

	payload := validSubmission("TechCorp Solutions")
	userInfo := payload["user_info"].(map[string]any)
	delete(userInfo, "email")

	resp := postJSON(t, router, "/api/assessment/save", payload)
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

	var list maturity.ListResponse
	getJSON(t, router, "/api/assessments", &list)
	if list.Count != 0 {
		t.Fatalf("expected no records after rejected submission, got %d", list.Count)
	}
}

func TestGetUnknownIDReturnsNotFound(t *testing.T) {
	router := newTestRouter(t)

	resp := getJSON(t, router, "/api/assessment/does-not-exist", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}

	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Error.Code != "not_found" {
		t.Fatalf("expected not_found, got %q", errResp.Error.Code)
	}
}

func TestListPaginationIsDisjoint(t *testing.T) {
	router := newTestRouter(t)

	for i := 0; i < 5; i++ {
		resp := postJSON(t, router, "/api/assessment/save", validSubmission(fmt.Sprintf("Company %d", i)))
		if resp.Code != http.StatusCreated {
			t.Fatalf("save %d: expected 201, got %d", i, resp.Code)
		}
	}

	var firstPage maturity.ListResponse
	getJSON(t, router, "/api/assessments?limit=2", &firstPage)
	if firstPage.Count != 2 {
		t.Fatalf("expected 2 items on first page, got %d", firstPage.Count)
	}

	var secondPage maturity.ListResponse
	getJSON(t, router, "/api/assessments?limit=2&offset=2", &secondPage)
	if secondPage.Count != 2 {
		t.Fatalf("expected 2 items on second page, got %d", secondPage.Count)
	}

	seen := map[string]bool{}
	for _, a := range firstPage.Data {
		seen[a.ID] = true
	}
	for _, a := range secondPage.Data {
		if seen[a.ID] {
			t.Fatalf("pages overlap on id %s", a.ID)
		}
	}

	// skip is accepted as an alias for offset
	var skipPage maturity.ListResponse
	getJSON(t, router, "/api/assessments?limit=2&skip=2", &skipPage)
	if skipPage.Count != 2 || skipPage.Data[0].ID != secondPage.Data[0].ID {
		t.Fatalf("skip alias did not page like offset")
	}
}

func TestListByCompanyMatchesSubstringCaseInsensitive(t *testing.T) {
	router := newTestRouter(t)

	postJSON(t, router, "/api/assessment/save", validSubmission("TechCorp Solutions"))
	postJSON(t, router, "/api/assessment/save", validSubmission("OtherCo"))

	var matches maturity.CompanyListResponse
	resp := getJSON(t, router, "/api/assessments/company/techcorp", &matches)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if matches.AssessmentCount != 1 {
		t.Fatalf("expected 1 match, got %d", matches.AssessmentCount)
	}
	if matches.Assessments[0].UserInfo.Company != "TechCorp Solutions" {
		t.Fatalf("matched wrong record: %q", matches.Assessments[0].UserInfo.Company)
	}

	var empty maturity.CompanyListResponse
	respEmpty := getJSON(t, router, "/api/assessments/company/nomatch", &empty)
	if respEmpty.Code != http.StatusOK {
		t.Fatalf("expected empty match to be 200, got %d", respEmpty.Code)
	}
	if empty.AssessmentCount != 0 || len(empty.Assessments) != 0 {
		t.Fatalf("expected empty result, got %d", empty.AssessmentCount)
	}
}

func TestStatsReflectStoredAssessments(t *testing.T) {
	router := newTestRouter(t)

	var emptyStats maturity.StatsResponse
	getJSON(t, router, "/api/assessments/stats", &emptyStats)
	if emptyStats.TotalAssessments != 0 || len(emptyStats.StageDistribution) != 0 {
		t.Fatalf("expected zero stats on empty store, got %+v", emptyStats)
	}

	postJSON(t, router, "/api/assessment/save", validSubmission("TechCorp Solutions"))
	postJSON(t, router, "/api/assessment/save", validSubmission("OtherCo"))

	var stats maturity.StatsResponse
	getJSON(t, router, "/api/assessments/stats", &stats)
	if stats.TotalAssessments != 2 {
		t.Fatalf("expected total 2, got %d", stats.TotalAssessments)
	}
	if stats.Recent30Days != 2 {
		t.Fatalf("expected 2 recent, got %d", stats.Recent30Days)
	}
	if len(stats.StageDistribution) != 1 || stats.StageDistribution[0].Stage != "Automated" || stats.StageDistribution[0].Count != 2 {
		t.Fatalf("unexpected stage distribution: %+v", stats.StageDistribution)
	}
	if len(stats.SectionAverages) != 2 {
		t.Fatalf("expected 2 section averages, got %+v", stats.SectionAverages)
	}
	// Sales Process averages 80, Data & Reporting 70; sorted descending.
	if stats.SectionAverages[0].Name != "Sales Process" || stats.SectionAverages[0].AvgScore != 80 {
		t.Fatalf("unexpected first section average: %+v", stats.SectionAverages[0])
	}
}
