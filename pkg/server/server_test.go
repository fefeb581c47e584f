package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/retention-audit/pkg/models/api"
	"github.com/de-tools/retention-audit/pkg/services/audit"
	"github.com/de-tools/retention-audit/pkg/services/export"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBody = `{
	"company_name": "Acme Apparel",
	"industry": "Fashion",
	"monthly_revenue": 500000,
	"average_order_value": 1500,
	"total_customers": 2000,
	"average_customer_lifespan": 24,
	"purchase_frequency": 2.5,
	"customer_acquisition_cost": 600,
	"repeat_purchase_rate": 30,
	"cart_abandonment_rate": 75,
	"retention_score": 6,
	"email_platform": "Klaviyo",
	"has_segmentation": true,
	"data_quality_score": 4
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))

	webAPI := NewWebAPI(logger, Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Calculator: audit.NewCalculator(audit.DefaultSettings()),
		},
	})
	testServer := httptest.NewServer(webAPI.Handler())
	t.Cleanup(testServer.Close)
	return testServer
}

func TestWebAPI_Endpoints(t *testing.T) {
	testServer := newTestServer(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		check          func(t *testing.T, resp *http.Response, body []byte)
	}{
		{
			name:           "Healthz",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, _ *http.Response, body []byte) {
				assert.Equal(t, "ok", string(body))
			},
		},
		{
			name:           "CreateAudit",
			method:         http.MethodPost,
			path:           "/api/v1/audits",
			body:           validBody,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp *http.Response, body []byte) {
				assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

				res, err := unmarshalResponse[api.AuditResults]()(body)
				require.NoError(t, err)
				results := res.(api.AuditResults)

				assert.NotEmpty(t, results.ID)
				assert.Equal(t, "fashion", results.Industry)
				assert.Equal(t, 7500.0, results.Financial.CLV)
				assert.Len(t, results.CategoryScores, 6)
				assert.Len(t, results.Gaps, 6)
				for c, score := range results.CategoryScores {
					assert.GreaterOrEqual(t, score, 0.0, c)
					assert.LessOrEqual(t, score, 100.0, c)
				}
				assert.GreaterOrEqual(t, results.OverallScore, 0.0)
				assert.LessOrEqual(t, results.OverallScore, 100.0)
				assert.Len(t, results.Roadmap, 3)
				assert.NotEmpty(t, results.Recommendations)
			},
		},
		{
			name:           "CreateAudit_MissingCriticalFields",
			method:         http.MethodPost,
			path:           "/api/v1/audits",
			body:           `{"company_name": "Acme", "monthly_revenue": 0}`,
			expectedStatus: http.StatusUnprocessableEntity,
			check: func(t *testing.T, _ *http.Response, body []byte) {
				res, err := unmarshalResponse[api.ErrorResponse]()(body)
				require.NoError(t, err)
				assert.Contains(t, res.(api.ErrorResponse).Error, "monthly_revenue")
			},
		},
		{
			name:           "CreateAudit_MalformedJSON",
			method:         http.MethodPost,
			path:           "/api/v1/audits",
			body:           `{"monthly_revenue": `,
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, _ *http.Response, body []byte) {
				res, err := unmarshalResponse[api.ErrorResponse]()(body)
				require.NoError(t, err)
				assert.Contains(t, res.(api.ErrorResponse).Error, "invalid JSON body")
			},
		},
		{
			name:           "CreateAudit_SchemaViolation",
			method:         http.MethodPost,
			path:           "/api/v1/audits",
			body:           `{"monthly_revenue": "a lot", "retention_score": 11}`,
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, _ *http.Response, body []byte) {
				res, err := unmarshalResponse[api.ErrorResponse]()(body)
				require.NoError(t, err)
				errResp := res.(api.ErrorResponse)
				assert.Len(t, errResp.Details, 2)
				assert.Contains(t, strings.Join(errResp.Details, "\n"), "monthly_revenue")
				assert.Contains(t, strings.Join(errResp.Details, "\n"), "retention_score")
			},
		},
		{
			name:           "ExportAudit",
			method:         http.MethodPost,
			path:           "/api/v1/audits/export",
			body:           validBody,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp *http.Response, body []byte) {
				assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
				assert.Regexp(t, `^attachment; filename="retention-audit-\d{4}-\d{2}-\d{2}\.csv"$`,
					resp.Header.Get("Content-Disposition"))

				rows, err := export.ParseCSV(strings.NewReader(string(body)))
				require.NoError(t, err)
				assert.NotEmpty(t, rows)
				assert.Equal(t, export.Row{Metric: "Company", Value: "Acme Apparel"}, rows[0])
			},
		},
		{
			name:           "ExportAudit_MissingCriticalFields",
			method:         http.MethodPost,
			path:           "/api/v1/audits/export",
			body:           `{}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "ListBenchmarks",
			method:         http.MethodGet,
			path:           "/api/v1/benchmarks",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, _ *http.Response, body []byte) {
				res, err := unmarshalResponse[[]api.IndustryBenchmark]()(body)
				require.NoError(t, err)
				benchmarks := res.([]api.IndustryBenchmark)

				assert.Len(t, benchmarks, len(audit.DefaultBenchmarks()))
				for _, b := range benchmarks {
					assert.Len(t, b.Categories, 6, b.Industry)
				}
			},
		},
		{
			name:           "UnknownRoute",
			method:         http.MethodGet,
			path:           "/api/v1/unknown",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, testServer.URL+tc.path, strings.NewReader(tc.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			if tc.check != nil {
				tc.check(t, resp, body)
			}
		})
	}
}

func TestWebAPI_Metrics(t *testing.T) {
	testServer := newTestServer(t)

	resp, err := http.Post(testServer.URL+"/api/v1/audits", "application/json", strings.NewReader(validBody))
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(testServer.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `retention_audits_calculated_total{industry="fashion",maturity=`)
	assert.Contains(t, string(body), `retention_audit_http_request_duration_seconds_count{method="POST",route="/api/v1/audits",status="200"}`)
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}
