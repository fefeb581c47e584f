package audit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/de-tools/retention-audit/pkg/adapters"
	"github.com/de-tools/retention-audit/pkg/models/api"
	"github.com/de-tools/retention-audit/pkg/models/domain"
	"github.com/de-tools/retention-audit/pkg/services/audit"
	"github.com/de-tools/retention-audit/pkg/services/export"
	"github.com/de-tools/retention-audit/pkg/services/metrics"
	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	calculator *audit.Calculator
}

func NewHandler(calculator *audit.Calculator) *Handler {
	return &Handler{calculator: calculator}
}

func (h *Handler) CreateAudit(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	results, ok := h.calculate(w, r)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapAuditResultsDomainToApi(results))
	logger.Info().
		Str("audit_id", results.ID).
		Float64("overall_score", results.OverallScore).
		Msg("audit calculated")
}

func (h *Handler) ExportAudit(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	results, ok := h.calculate(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.FileName(results.GeneratedAt)))

	err := export.NewWriter(w).Handle(adapters.MapAuditResultsDomainToReport(results))
	if err != nil {
		logger.Error().
			Err(err).
			Str("audit_id", results.ID).
			Msg("failed to write audit csv")
	}
}

func (h *Handler) ListBenchmarks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, adapters.MapBenchmarksDomainToApi(h.calculator.Settings().Benchmarks))
}

// calculate runs the request pipeline and writes the error response itself
// when the request is rejected.
func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) (domain.AuditResults, bool) {
	logger := zerolog.Ctx(r.Context())

	req, details, err := decodeRequest(w, r)
	if err != nil {
		metrics.AuditsRejected.WithLabelValues("bad_request").Inc()
		logger.Warn().Err(err).Strs("details", details).Msg("invalid audit request")
		writeJSON(w, r, http.StatusBadRequest, api.ErrorResponse{Error: err.Error(), Details: details})
		return domain.AuditResults{}, false
	}

	form := adapters.MapAuditRequestApiToDomain(req)
	if !audit.ValidateCritical(form) {
		metrics.AuditsRejected.WithLabelValues("missing_critical").Inc()
		writeJSON(w, r, http.StatusUnprocessableEntity, api.ErrorResponse{
			Error: "monthly_revenue, total_customers and average_order_value must be positive",
		})
		return domain.AuditResults{}, false
	}

	results := h.calculator.Calculate(form)

	industry := results.Industry
	if _, known := h.calculator.Settings().Benchmarks[industry]; !known {
		industry = "other"
	}
	metrics.AuditsCalculated.WithLabelValues(industry, string(results.MaturityLevel)).Inc()
	metrics.AuditOverallScore.Observe(results.OverallScore)

	return results, true
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (api.AuditRequest, []string, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return api.AuditRequest{}, nil, fmt.Errorf("failed to read request body: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return api.AuditRequest{}, nil, fmt.Errorf("invalid JSON body: %w", err)
	}

	result, err := requestSchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return api.AuditRequest{}, nil, fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		details := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			details[i] = desc.String()
		}
		return api.AuditRequest{}, details, errors.New("request does not match the audit schema")
	}

	var req api.AuditRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return api.AuditRequest{}, nil, fmt.Errorf("invalid audit request: %w", err)
	}
	return req, nil, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(api.ErrorResponse{Error: "failed to encode response"})
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to write response")
	}
}
