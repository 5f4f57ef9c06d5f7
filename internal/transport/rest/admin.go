package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/unievent-backend/internal/domain"
	"github.com/heartmarshall/unievent-backend/internal/service/report"
)

type reportService interface {
	List(ctx context.Context, status string) ([]domain.EventReport, error)
	Resolve(ctx context.Context, in report.ResolveInput) (*domain.EventReport, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	reports reportService
	log     *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(reports reportService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		reports: reports,
		log:     logger.With("handler", "admin"),
	}
}

type reportResponse struct {
	ID         string    `json:"id"`
	EventID    string    `json:"eventId"`
	Reason     string    `json:"reason"`
	ReportedBy string    `json:"reportedBy"`
	Status     string    `json:"status"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type resolveRequest struct {
	Status          string `json:"status"`
	DeactivateEvent bool   `json:"deactivateEvent"`
}

// ListReports returns moderation reports filtered by status.
// GET /api/admin/reports?status=pending
func (h *AdminHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reports.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]reportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, toReportResponse(&reports[i]))
	}
	writeData(w, http.StatusOK, out)
}

// ResolveReport applies an administrator decision to a report.
// PATCH /api/admin/reports/{id}
func (h *AdminHandler) ResolveReport(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rep, err := h.reports.Resolve(r.Context(), report.ResolveInput{
		ReportID:        chi.URLParam(r, "id"),
		Status:          req.Status,
		DeactivateEvent: req.DeactivateEvent,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toReportResponse(rep))
}

func toReportResponse(rep *domain.EventReport) reportResponse {
	return reportResponse{
		ID:         rep.ID.String(),
		EventID:    rep.EventID,
		Reason:     rep.Reason,
		ReportedBy: rep.ReportedBy,
		Status:     rep.Status.String(),
		Type:       rep.Type.String(),
		CreatedAt:  rep.CreatedAt,
		UpdatedAt:  rep.UpdatedAt,
	}
}
