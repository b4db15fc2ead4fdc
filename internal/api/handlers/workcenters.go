package handlers

import (
	"log/slog"
	"net/http"

	"work-scheduler-service/internal/api/dto"
	"work-scheduler-service/internal/domain"
	"work-scheduler-service/internal/ports"
)

// WorkCenterHandler exposes read-only work center retrieval. Centers are
// created at bootstrap only; there is no edit flow.
type WorkCenterHandler struct {
	Repo ports.ScheduleRepository
}

func (h *WorkCenterHandler) List(w http.ResponseWriter, r *http.Request) {
	centers, err := h.Repo.ListWorkCenters(r.Context())
	if err != nil {
		slog.Error("list work centers failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListWorkCentersResponse{
		WorkCenters: make([]domain.WorkCenterDocument, 0, len(centers)),
	}
	for _, c := range centers {
		res.WorkCenters = append(res.WorkCenters, domain.NewWorkCenterDocument(c))
	}

	writeJSON(w, r, http.StatusOK, res)
}
