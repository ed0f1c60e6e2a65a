package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"zip2mp/internal/lookup/service"
	"zip2mp/internal/lookup/validator"
	apperrors "zip2mp/pkg/errors"
	"zip2mp/pkg/events"
	httputil "zip2mp/pkg/http"
	"zip2mp/pkg/logger"
	"zip2mp/pkg/metrics"
	"zip2mp/pkg/middleware"
	"zip2mp/pkg/model"
)

type LookupHandler struct {
	service   service.LookupService
	validator *validator.RequestValidator
	publisher *events.Publisher
	metrics   *metrics.Metrics
	log       *logger.Logger
}

func NewLookupHandler(
	svc service.LookupService,
	reqValidator *validator.RequestValidator,
	publisher *events.Publisher,
	m *metrics.Metrics,
	log *logger.Logger,
) *LookupHandler {
	return &LookupHandler{
		service:   svc,
		validator: reqValidator,
		publisher: publisher,
		metrics:   m,
		log:       log,
	}
}

func (h *LookupHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/lookup", h.Lookup)
	router.GET("/api/countries", h.Countries)
}

func (h *LookupHandler) Lookup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	start := time.Now()

	var req model.LookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Lookup", "error", writeErr)
		}
		return
	}
	req.PostalCode = strings.TrimSpace(req.PostalCode)

	if err := h.validator.Validate(&req); err != nil {
		h.finish(req, outcomeFor(err), "", 0, start)
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Lookup", "error", writeErr)
		}
		return
	}

	result, err := h.service.Lookup(r.Context(), req.Country, req.PostalCode)
	if err != nil {
		h.finish(req, outcomeFor(err), "", 0, start)
		h.log.Warn("lookup failed",
			"request_id", middleware.RequestID(r.Context()),
			"country", req.Country,
			"postal_code", req.PostalCode,
			"error", err,
		)
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Lookup", "error", writeErr)
		}
		return
	}

	h.finish(req, metrics.OutcomeOK, result.Source, len(result.Representatives), start)

	resp := model.LookupResponse{
		Country:         strings.ToUpper(strings.TrimSpace(req.Country)),
		PostalCode:      req.PostalCode,
		Representatives: result.Representatives,
		Source:          result.Source,
	}
	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", "Lookup", "error", err)
	}
}

func (h *LookupHandler) Countries(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	resp := map[string]any{
		"countries": h.service.SupportedCountries(),
	}
	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", "Countries", "error", err)
	}
}

// finish records the request on the metrics and event sides. The event is
// fire-and-forget and detached from the request context so a client
// disconnect cannot lose it.
func (h *LookupHandler) finish(req model.LookupRequest, outcome, source string, count int, start time.Time) {
	country := strings.ToUpper(strings.TrimSpace(req.Country))
	h.metrics.IncLookup(country, outcome)

	event := events.NewLookupEvent(country, req.PostalCode)
	event.Outcome = outcome
	event.Source = source
	event.Count = count
	event.DurationMS = time.Since(start).Milliseconds()
	h.publisher.Publish(context.Background(), event)
}

func outcomeFor(err error) string {
	switch apperrors.AsAppError(err).Code {
	case apperrors.CodeInvalidFormat, apperrors.CodeBadRequest:
		return metrics.OutcomeInvalidFormat
	case apperrors.CodeNotFound:
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeUpstreamError
	}
}
