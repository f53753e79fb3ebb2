package http

import (
	"fmt"
	"net/http"

	"github.com/attendance-mgmt/attendance-backend-go/internal/domain/auth"
	"github.com/attendance-mgmt/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type DashboardHandler interface {
	CheckDashboard(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct{}

func NewDashboardHandler() DashboardHandler {
	return &DashboardHandlerImpl{}
}

// CheckDashboard greets the authenticated user. The identity comes from the
// verified token claims in the request context, never from shared state.
func (d *DashboardHandlerImpl) CheckDashboard(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Welcome back, %s", username), nil)
}
