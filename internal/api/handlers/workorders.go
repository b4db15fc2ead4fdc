package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"work-scheduler-service/internal/api/dto"
	"work-scheduler-service/internal/domain"
	"work-scheduler-service/internal/ports"
	"work-scheduler-service/internal/services"
)

// WorkOrderHandler is the HTTP face of the editing surface contract:
// create/edit submit drafts through the core, delete removes outright.
type WorkOrderHandler struct {
	Repo     ports.ScheduleRepository
	Validate *validator.Validate
}

func (h *WorkOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		orders []domain.WorkOrder
		err    error
	)
	if centerID := r.URL.Query().Get("work_center_id"); centerID != "" {
		orders, err = h.Repo.ListWorkOrdersForCenter(ctx, centerID)
	} else {
		orders, err = h.Repo.ListWorkOrders(ctx)
	}
	if err != nil {
		slog.Error("list work orders failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListWorkOrdersResponse{
		WorkOrders: make([]domain.WorkOrderDocument, 0, len(orders)),
	}
	for _, o := range orders {
		res.WorkOrders = append(res.WorkOrders, domain.NewWorkOrderDocument(o))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Create submits a draft in create mode: a fresh id is minted at save time.
func (h *WorkOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, "")
}

// Update submits a draft in edit mode. The overlap check excludes the
// edited order itself. An unknown id passes validation and then no-ops in
// the store; the response is still a success (documented quirk).
func (h *WorkOrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, chi.URLParam(r, "id"))
}

func (h *WorkOrderHandler) save(w http.ResponseWriter, r *http.Request, id string) {
	var req dto.SaveWorkOrderRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	draft := services.WorkOrderDraft{
		ID:           id,
		WorkCenterID: req.WorkCenterID,
		Status:       domain.WorkOrderStatus(req.Status),
		Name:         req.Name,
	}

	var err error
	if draft.StartDate, err = domain.ParseDate(req.StartDate); err != nil {
		writeError(w, r, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
		return
	}
	if req.EndDate != "" {
		if draft.EndDate, err = domain.ParseDate(req.EndDate); err != nil {
			writeError(w, r, http.StatusBadRequest, "endDate must be YYYY-MM-DD")
			return
		}
	}

	order, err := services.SaveWorkOrder(r.Context(), h.Repo, draft)
	switch {
	case errors.Is(err, domain.ErrEndBeforeStart):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, domain.ErrOverlap):
		writeError(w, r, http.StatusConflict, err.Error())
		return
	case err != nil:
		slog.Error("save work order failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	writeJSON(w, r, status, domain.NewWorkOrderDocument(order))
}

// Delete removes a work order; deleting an absent id is a no-op and still
// reports success.
func (h *WorkOrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Repo.DeleteWorkOrder(r.Context(), id); err != nil {
		slog.Error("delete work order failed", "id", id, "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
