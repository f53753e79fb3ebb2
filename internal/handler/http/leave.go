package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/leave"
	"github.com/attendance-mgmt/attendance-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	SubmitLeave(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// SubmitLeave implements LeaveHandler.
func (l *LeaveHandlerImpl) SubmitLeave(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := l.leaveService.SubmitLeave(r.Context(), req)
	if err != nil {
		slog.Error("SubmitLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created)
}
