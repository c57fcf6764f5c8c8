package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmxd-server/internal/catalog"
	"github.com/pharmxd-server/internal/domain"
	"github.com/pharmxd-server/internal/feedback"
	"github.com/pharmxd-server/internal/service"
)

type testConfigManager struct {
	config *domain.Config
}

func (m *testConfigManager) GetConfig() *domain.Config             { return m.config }
func (m *testConfigManager) GetServerConfig() *domain.ServerConfig { return &m.config.Server }
func (m *testConfigManager) Validate() error                       { return nil }

func newTestServer(t *testing.T, store feedback.Store) *Server {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &domain.Config{
		Server: domain.ServerConfig{
			Host:        "127.0.0.1",
			Port:        0,
			MaxUploadMB: 4,
		},
		Session:   domain.SessionConfig{MaxSessions: 16, TTL: time.Minute},
		RateLimit: domain.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
		Logging:   domain.LoggingConfig{Level: "error", Format: "json"},
	}

	return NewServer(&testConfigManager{config: cfg}, logger, Deps{
		Extractor:     service.NewExtractorService(logger),
		Caller:        service.NewCallerService(logger),
		Matcher:       service.NewMatcherService(logger),
		Sessions:      service.NewSessionManager(logger, cfg.Session.MaxSessions, cfg.Session.TTL),
		FeedbackStore: store,
	})
}

func doRequest(t *testing.T, server *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)
	return rec
}

func createDemoSession(t *testing.T, server *Server) string {
	t.Helper()
	rec := doRequest(t, server, http.MethodPost, "/api/v1/sessions/demo", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t, nil)

	rec := doRequest(t, server, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestCreateSessionFromUpload(t *testing.T) {
	server := newTestServer(t, nil)

	rec := doRequest(t, server, http.MethodPost, "/api/v1/sessions", catalog.DemoSample())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		ID             string   `json:"id"`
		DetectedFormat string   `json:"detected_format"`
		PGxCount       int      `json:"pgx_count"`
		GenesCalled    []string `json:"genes_called"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "23andme", resp.DetectedFormat)
	assert.Equal(t, len(catalog.TrackedVariants()), resp.PGxCount)
	assert.Contains(t, resp.GenesCalled, "CYP2C19")
	assert.Contains(t, resp.GenesCalled, "VKORC1")
}

func TestCreateSessionEmptyBody(t *testing.T) {
	server := newTestServer(t, nil)

	rec := doRequest(t, server, http.MethodPost, "/api/v1/sessions", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.ErrCodeInvalidInput)
}

func TestCreateSessionMalformedBodyStillSucceeds(t *testing.T) {
	server := newTestServer(t, nil)

	// Unreadable content degrades to an empty extraction, never an error.
	rec := doRequest(t, server, http.MethodPost, "/api/v1/sessions", "not genotype data at all\n")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		DetectedFormat string `json:"detected_format"`
		PGxCount       int    `json:"pgx_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unknown", resp.DetectedFormat)
	assert.Equal(t, 0, resp.PGxCount)
}

func TestGetAndDeleteSession(t *testing.T) {
	server := newTestServer(t, nil)
	id := createDemoSession(t, server)

	rec := doRequest(t, server, http.MethodGet, "/api/v1/sessions/"+id, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, server, http.MethodDelete, "/api/v1/sessions/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, server, http.MethodGet, "/api/v1/sessions/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.ErrCodeSessionNotFound)
}

func TestGetProfile(t *testing.T) {
	server := newTestServer(t, nil)
	id := createDemoSession(t, server)

	rec := doRequest(t, server, http.MethodGet, "/api/v1/sessions/"+id+"/profile", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Profile map[string]struct {
			Diplotype     string `json:"diplotype"`
			PhenotypeCall struct {
				Phenotype string `json:"phenotype"`
			} `json:"phenotype_call"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Contains(t, resp.Profile, "CYP2C19")
	assert.Equal(t, "*1/*2", resp.Profile["CYP2C19"].Diplotype)
	assert.Equal(t, "intermediate_metabolizer", resp.Profile["CYP2C19"].PhenotypeCall.Phenotype)

	require.Contains(t, resp.Profile, "CYP2D6")
	assert.Equal(t, "*4/*4", resp.Profile["CYP2D6"].Diplotype)
}

func TestSearchDrugsEndpoint(t *testing.T) {
	server := newTestServer(t, nil)

	rec := doRequest(t, server, http.MethodGet, "/api/v1/drugs?q=plavix", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count   int `json:"count"`
		Results []struct {
			ID string `json:"id"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "clopidogrel", resp.Results[0].ID)

	rec = doRequest(t, server, http.MethodGet, "/api/v1/drugs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
}

func TestGetRecommendationEndpoint(t *testing.T) {
	server := newTestServer(t, nil)
	id := createDemoSession(t, server)

	rec := doRequest(t, server, http.MethodGet, "/api/v1/sessions/"+id+"/recommendations/clopidogrel", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.RecommendationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.NoData)
	assert.Equal(t, domain.CAUTION, result.Recommendation.Classification)
	assert.Equal(t, "*1/*2", result.Diplotype)

	// Demo sample is CYP2C9 *1/*3 + VKORC1 AG: warfarin lands on the
	// reduced-dose tier.
	rec = doRequest(t, server, http.MethodGet, "/api/v1/sessions/"+id+"/recommendations/warfarin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, domain.CAUTION, result.Recommendation.Classification)
	assert.Equal(t, "CYP2C9 + VKORC1", result.GeneLabel)

	rec = doRequest(t, server, http.MethodGet, "/api/v1/sessions/"+id+"/recommendations/aspirin", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.ErrCodeDrugNotFound)
}

func TestFeedbackEndpoints(t *testing.T) {
	store := createTestFeedbackStore(t)
	defer store.Close()
	server := newTestServer(t, store)

	body := `{
		"drug_id": "clopidogrel",
		"gene": "CYP2C19",
		"phenotype_key": "intermediate_metabolizer",
		"suggested_classification": "caution",
		"user_classification": "avoid",
		"notes": "post-PCI"
	}`
	rec := doRequest(t, server, http.MethodPost, "/api/v1/feedback", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var saved feedback.Feedback
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.NotZero(t, saved.ID)
	assert.False(t, saved.UserAgreed)

	rec = doRequest(t, server, http.MethodGet, "/api/v1/feedback", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "clopidogrel")

	// Invalid classification rejected.
	rec = doRequest(t, server, http.MethodPost, "/api/v1/feedback",
		`{"drug_id":"x","gene":"y","phenotype_key":"z","suggested_classification":"bogus","user_classification":"avoid"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeedbackEndpointsAbsentWhenDisabled(t *testing.T) {
	server := newTestServer(t, nil)

	rec := doRequest(t, server, http.MethodPost, "/api/v1/feedback", "{}")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func createTestFeedbackStore(t *testing.T) feedback.Store {
	t.Helper()
	store, err := feedback.NewSQLiteStore(t.TempDir() + "/feedback.db")
	require.NoError(t, err)
	return store
}
