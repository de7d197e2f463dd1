package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/config"
	appHTTP "github.com/staffhub/staffhub-backend-go/internal/handler/http"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/cron"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/cvextract"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/email"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
	"github.com/staffhub/staffhub-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhub/staffhub-backend-go/internal/service/attendance"
	authService "github.com/staffhub/staffhub-backend-go/internal/service/auth"
	candidateService "github.com/staffhub/staffhub-backend-go/internal/service/candidate"
	employeeService "github.com/staffhub/staffhub-backend-go/internal/service/employee"
	leaveService "github.com/staffhub/staffhub-backend-go/internal/service/leave"
	overtimeService "github.com/staffhub/staffhub-backend-go/internal/service/overtime"
	regionService "github.com/staffhub/staffhub-backend-go/internal/service/region"
	salaryService "github.com/staffhub/staffhub-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	regionRepo := postgresql.NewRegionRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	overtimeRepo := postgresql.NewOvertimeRequestRepository(db)
	leaveRepo := postgresql.NewCasualLeaveRepository(db)
	leavePolicyRepo := postgresql.NewLeavePolicyRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	candidateRepo := postgresql.NewCandidateRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}
	cvExtractor := cvextract.NewClient(cfg.CV)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(txManager, attendanceRepo, employeeRepo, regionRepo, nil)
	overtimeSvc := overtimeService.NewOvertimeService(txManager, overtimeRepo, attendanceRepo, employeeRepo, nil)
	salarySvc := salaryService.NewSalaryService(salaryRepo, attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(txManager, leaveRepo, leavePolicyRepo, attendanceRepo, employeeRepo, salaryRepo, nil)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, regionRepo)
	regionSvc := regionService.NewRegionService(regionRepo)
	candidateSvc := candidateService.NewCandidateService(candidateRepo, userRepo, cvExtractor, emailService)

	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo, employeeRepo, regionRepo)
	salaryJobs := cron.NewSalaryJobs(salarySvc)
	scheduler := cron.NewScheduler()
	attendanceJobs.RegisterJobs(scheduler)
	salaryJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Overtime:   appHTTP.NewOvertimeHandler(overtimeSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Salary:     appHTTP.NewSalaryHandler(salarySvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Region:     appHTTP.NewRegionHandler(regionSvc),
		Candidate:  appHTTP.NewCandidateHandler(candidateSvc),
		Jobs:       appHTTP.NewJobsHandler(attendanceJobs, salarySvc),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
