package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/nova-forge/hrms-backend-go/internal/config"
	"github.com/nova-forge/hrms-backend-go/internal/domain/leave"
	appHTTP "github.com/nova-forge/hrms-backend-go/internal/handler/http"
	"github.com/nova-forge/hrms-backend-go/internal/pkg/clock"
	"github.com/nova-forge/hrms-backend-go/internal/pkg/database"
	"github.com/nova-forge/hrms-backend-go/internal/pkg/jwt"
	"github.com/nova-forge/hrms-backend-go/internal/repository/memory"
	"github.com/nova-forge/hrms-backend-go/internal/repository/postgresql"
	analyticsService "github.com/nova-forge/hrms-backend-go/internal/service/analytics"
	attendanceService "github.com/nova-forge/hrms-backend-go/internal/service/attendance"
	leaveService "github.com/nova-forge/hrms-backend-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	clk, err := clock.NewZoneClock(cfg.Attendance.Timezone)
	if err != nil {
		log.Fatal("Error loading attendance timezone: ", err)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	policyStore := memory.NewPolicyStore(leave.DefaultPolicy())

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, clk)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, policyStore, employeeRepo, clk)
	analyticsSvc := analyticsService.NewAnalyticsService(
		attendanceRepo,
		leaveRequestRepo,
		leaveSvc,
		employeeRepo,
		departmentRepo,
		taskRepo,
		documentRepo,
		clk,
	)

	authHandler := appHTTP.NewAuthHandler(JWTService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc, leaveSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		leaveHandler,
		analyticsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
