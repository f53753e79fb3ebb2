package http

import (
	"log/slog"
	"net/http"

	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/report"
	"github.com/attendance-mgmt/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	ListLeaveRequests(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// ListUsers implements ReportHandler.
func (h *ReportHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.reportService.ListUsers(r.Context())
	if err != nil {
		slog.Error("ListUsers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// ListLeaveRequests implements ReportHandler.
func (h *ReportHandlerImpl) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.reportService.ListLeaveRequests(r.Context())
	if err != nil {
		slog.Error("ListLeaveRequests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}
