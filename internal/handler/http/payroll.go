package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/payroll"
	"github.com/crewdesk/crewdesk-backend-go/internal/handler/http/response"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type PayrollHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	CreateBatch(w http.ResponseWriter, r *http.Request)
	GetBatch(w http.ResponseWriter, r *http.Request)
	ListBatches(w http.ResponseWriter, r *http.Request)
	FinalizeBatch(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// actorFromContext returns the user id from the verified JWT claims.
func actorFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// Preview computes payroll for the period without persisting anything. The
// pooled override falls back to the automatic total when it does not parse as
// a non-negative amount; it is treated as not supplied, not rejected.
func (h *payrollHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := payroll.PreviewRequest{
		PeriodStart: query.Get("period_start"),
		PeriodEnd:   query.Get("period_end"),
	}
	if cohort := query.Get("cohort"); cohort != "" {
		req.CohortOverride = validator.SplitIDList(cohort)
	}
	if override := query.Get("pooled_override"); override != "" {
		if amount, ok := validator.ParseNonNegativeAmount(override); ok {
			req.PooledOverride = &amount
		}
	}

	result, err := h.payrollService.Preview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	createdBy, err := actorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.payrollService.CreateBatch(r.Context(), req, createdBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll batch created", result)
}

func (h *payrollHandlerImpl) GetBatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Batch ID is required", nil)
		return
	}

	result, err := h.payrollService.GetBatch(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListBatches(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := payroll.BatchListFilter{
		Page:  1,
		Limit: 20,
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if status := query.Get("status"); status != "" {
		filter.Status = &status
	}

	result, err := h.payrollService.ListBatches(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) FinalizeBatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Batch ID is required", nil)
		return
	}

	finalizedBy, err := actorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.payrollService.Finalize(r.Context(), id, finalizedBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
