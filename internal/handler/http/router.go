package http

import (
	"log/slog"
	"os"

	"github.com/attendance-mgmt/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendance-mgmt/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	dashboardHandler DashboardHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/accounts", func(r chi.Router) {
		r.Post("/signup/", authHandler.Register)
		r.Post("/login/", authHandler.Login)
		r.Post("/token/refresh/", authHandler.RefreshToken)
		r.Post("/logout/", authHandler.Logout)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/checkdashboard/", dashboardHandler.CheckDashboard)
		})
	})

	r.Route("/attendance", func(r chi.Router) {
		r.Post("/check-in", attendanceHandler.CheckIn)
		r.Post("/check-out", attendanceHandler.CheckOut)
	})

	r.Post("/leave/", leaveHandler.SubmitLeave)

	r.Route("/reports", func(r chi.Router) {
		r.Get("/reports/", reportHandler.ListUsers)
		r.Get("/leave-requests/", reportHandler.ListLeaveRequests)
	})

	return r
}
