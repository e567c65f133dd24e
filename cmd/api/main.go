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

	"github.com/dayflow-hr/dayflow-backend-go/internal/config"
	appHTTP "github.com/dayflow-hr/dayflow-backend-go/internal/handler/http"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/cron"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/email"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/sse"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/storage"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/postgresql"
	attendanceService "github.com/dayflow-hr/dayflow-backend-go/internal/service/attendance"
	leaveService "github.com/dayflow-hr/dayflow-backend-go/internal/service/leave"
	notificationService "github.com/dayflow-hr/dayflow-backend-go/internal/service/notification"
	payrollService "github.com/dayflow-hr/dayflow-backend-go/internal/service/payroll"
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

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	emailLogRepo := postgresql.NewEmailLogRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	hub := sse.NewHub()
	notifier := notificationService.NewNotificationService(
		notificationService.Config{},
		hub,
		emailService,
		emailLogRepo,
	)
	defer notifier.Stop()

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, leaveBalanceRepo, notifier, cfg.Leave.AllowNegative)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, fileStorage)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notifier)

	router := appHTTP.NewRouter(
		jwtService,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		notificationHandler,
		cfg.App.Env,
		cfg.Storage.BasePath,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
