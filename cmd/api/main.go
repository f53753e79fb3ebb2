package main

import (
	"fmt"
	"net/http"

	"github.com/attendance-mgmt/attendance-backend-go/internal/config"
	appHTTP "github.com/attendance-mgmt/attendance-backend-go/internal/handler/http"
	"github.com/attendance-mgmt/attendance-backend-go/internal/pkg/database"
	"github.com/attendance-mgmt/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendance-mgmt/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendance-mgmt/attendance-backend-go/internal/service/attendance"
	authService "github.com/attendance-mgmt/attendance-backend-go/internal/service/auth"
	leaveService "github.com/attendance-mgmt/attendance-backend-go/internal/service/leave"
	reportService "github.com/attendance-mgmt/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, jwtRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, userRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, userRepo)
	reportSvc := reportService.NewReportService(userRepo, leaveRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	dashboardHandler := appHTTP.NewDashboardHandler()
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		dashboardHandler,
		attendanceHandler,
		leaveHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
