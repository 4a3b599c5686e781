package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ayuda/allocation"
	"go-ayuda/db"
	"go-ayuda/mlmodel"
	"go-ayuda/routes"
	"go-ayuda/sms"
	"go-ayuda/types"
)

// newTestAPI wires the real router over an in-memory store, with the ML
// artifact missing and the generative client disabled, so responses are fully
// deterministic.
func newTestAPI(t *testing.T) (*gin.Engine, *db.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := db.OpenMemory(nil)
	require.NoError(t, err)

	model := mlmodel.LoadFrom([]string{filepath.Join(t.TempDir(), "missing.gob")}, nil)
	router := routes.SetupRouter(routes.Deps{
		Store:     store,
		Model:     model,
		Resolver:  allocation.NewResolver(model),
		Generator: sms.NewGenerator(nil, nil),
	})
	return router, store
}

func seedScenario(t *testing.T, store *db.Store) types.DisasterEvent {
	t.Helper()

	d := types.DisasterEvent{Name: "Typhoon Test", IsActive: true}
	require.NoError(t, store.CreateDisaster(&d))

	cases := []struct {
		name   string
		status types.DamageStatus
	}{
		{"Juan Dela Cruz", types.DamageTotal},
		{"Maria Santos", types.DamagePartial},
		{"Pedro Garcia", types.DamageNone},
	}
	for i, tc := range cases {
		h := types.Household{
			HouseholdID: fmt.Sprintf("HH-%05d", i),
			Name:        tc.name, Barangay: "Tondo",
			FloodDepth: 1.5, HouseHeight: 4, HouseWidth: 8,
		}
		require.NoError(t, store.CreateHousehold(&h))
		a := types.DamageAssessment{HouseholdID: h.ID, DisasterID: d.ID, DamageStatus: tc.status}
		require.NoError(t, store.SaveAssessment(&a))
	}
	return d
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBudgetSummaryRequiresDisasterID(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodGet, "/api/ayuda/budget/summary", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/ayuda/budget/summary?disaster_id=999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBudgetSummaryAggregates(t *testing.T) {
	router, store := newTestAPI(t)
	d := seedScenario(t, store)

	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/ayuda/budget/summary?disaster_id=%d", d.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var s types.BudgetSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))

	assert.Equal(t, 3, s.TotalHouseholds)
	assert.Equal(t, 15000, s.TotalBudget)
	assert.Equal(t, 1, s.ByStatus[types.DamageTotal])
	assert.Equal(t, 1, s.ByAmount[5000])
	assert.Equal(t, types.BarangayStats{Count: 3, Budget: 15000}, s.ByBarangay["Tondo"])
	assert.Equal(t, 5000.00, s.AveragePerHousehold)
}

func TestMLPredictFallsBackToRuleWithoutModel(t *testing.T) {
	router, store := newTestAPI(t)
	d := seedScenario(t, store)

	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/ayuda/ml/predict?disaster_id=%d", d.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var results []struct {
		Amount int    `json:"ect_amount"`
		Source string `json:"source"`
		Status string `json:"damage_status"`
		SMS    string `json:"sms"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 3)

	expected := map[string]int{"TOTAL": 10000, "PARTIAL": 5000, "NONE": 0}
	for _, r := range results {
		assert.Equal(t, "rule", r.Source)
		assert.Equal(t, expected[r.Status], r.Amount)
		assert.NotEmpty(t, r.SMS)
	}
}

func TestSaveAssessmentIgnoresCallerAmount(t *testing.T) {
	router, store := newTestAPI(t)
	d := seedScenario(t, store)

	h := types.Household{Name: "Rosa Lopez", Barangay: "Baseco", HouseHeight: 4, HouseWidth: 8}
	require.NoError(t, store.CreateHousehold(&h))

	w := doJSON(t, router, http.MethodPost, "/api/ayuda/assessments", map[string]interface{}{
		"household_id":           h.ID,
		"disaster_id":            d.ID,
		"damage_status":          "PARTIAL",
		"recommended_ect_amount": 9999,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var a types.DamageAssessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &a))
	assert.Equal(t, 5000, a.RecommendedAmount)
}

func TestExportCSV(t *testing.T) {
	router, store := newTestAPI(t)
	d := seedScenario(t, store)

	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/ayuda/export/csv?disaster_id=%d", d.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ayuda_export_Typhoon_Test.csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Household ID")
}

func TestGenerateSMSSnapsAmountToTier(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/ayuda/generate-sms", map[string]interface{}{
		"ect_amount":    9800,
		"household_id":  "HH-00001",
		"barangay":      "Tondo",
		"damage_status": "TOTAL",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string `json:"sms_message"`
		Amount  int    `json:"ect_amount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10000, resp.Amount)
	assert.Contains(t, resp.Message, "PHP10,000")
}

func TestGeoJSONMarksStatuses(t *testing.T) {
	router, store := newTestAPI(t)
	d := seedScenario(t, store)

	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/ayuda/households/geojson?disaster_id=%d", d.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Properties struct {
				DamageStatus string `json:"damage_status"`
				MarkerColor  string `json:"marker_color"`
			} `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 3)

	colors := map[string]string{}
	for _, f := range fc.Features {
		colors[f.Properties.DamageStatus] = f.Properties.MarkerColor
	}
	assert.Equal(t, "red", colors["TOTAL"])
	assert.Equal(t, "orange", colors["PARTIAL"])
	assert.Equal(t, "green", colors["NONE"])
}

func TestModelValidateEndpoint(t *testing.T) {
	router, store := newTestAPI(t)
	seedScenario(t, store)

	w := doJSON(t, router, http.MethodGet, "/api/ayuda/ml/validate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ModelAvailable bool `json:"model_available"`
		Report         struct {
			Total         int     `json:"total"`
			ExactAccuracy float64 `json:"exact_accuracy"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.ModelAvailable)
	assert.Equal(t, 3, resp.Report.Total)
	assert.Equal(t, 100.0, resp.Report.ExactAccuracy)
}
