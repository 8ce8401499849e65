package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/workaxis/hrms-backend-go/internal/config"
	appHTTP "github.com/workaxis/hrms-backend-go/internal/handler/http"
	"github.com/workaxis/hrms-backend-go/internal/handler/http/middleware"
	"github.com/workaxis/hrms-backend-go/internal/pkg/clock"
	"github.com/workaxis/hrms-backend-go/internal/pkg/cron"
	"github.com/workaxis/hrms-backend-go/internal/pkg/database"
	"github.com/workaxis/hrms-backend-go/internal/pkg/email"
	"github.com/workaxis/hrms-backend-go/internal/pkg/events"
	"github.com/workaxis/hrms-backend-go/internal/pkg/jwt"
	"github.com/workaxis/hrms-backend-go/internal/pkg/pdf"
	"github.com/workaxis/hrms-backend-go/internal/pkg/storage"
	"github.com/workaxis/hrms-backend-go/internal/repository/postgresql"
	employeeService "github.com/workaxis/hrms-backend-go/internal/service/employee"
	leaveService "github.com/workaxis/hrms-backend-go/internal/service/leave"
	"github.com/workaxis/hrms-backend-go/internal/service/master"
	offerService "github.com/workaxis/hrms-backend-go/internal/service/offer"
	payrollService "github.com/workaxis/hrms-backend-go/internal/service/payroll"
	salaryService "github.com/workaxis/hrms-backend-go/internal/service/salary"
	templateService "github.com/workaxis/hrms-backend-go/internal/service/template"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
	})
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal("Error applying migrations: ", err)
	}

	txManager := postgresql.NewTxManager(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	designationRepo := postgresql.NewDesignationRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	templateRepo := postgresql.NewTemplateRepository(db)
	offerRepo := postgresql.NewOfferLetterRepository(db)

	clk := clock.Real()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, clk)

	var publisher events.Publisher
	if cfg.Kafka.Enabled() {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers)
		slog.Info("publishing domain events to kafka", "brokers", cfg.Kafka.Brokers)
	} else {
		publisher = events.NewNoopPublisher()
	}
	defer publisher.Close()

	var idempotencyStore middleware.IdempotencyStore
	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("Error connecting to redis: ", err)
		}
		idempotencyStore = middleware.NewRedisIdempotencyStore(redisClient)
	} else {
		slog.Warn("REDIS_ADDR not set, idempotency keys are ignored")
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}
	renderer := pdf.NewRenderer(cfg.Company.Name)

	masterSvc := master.NewMasterService(departmentRepo, designationRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(txManager, employeeRepo, departmentRepo, designationRepo, clk)
	salarySvc := salaryService.NewSalaryService(txManager, salaryRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(txManager, payrollRepo, employeeRepo, salaryRepo, renderer, publisher, clk)
	leaveSvc := leaveService.NewLeaveService(txManager, leaveTypeRepo, leaveBalanceRepo, leaveRequestRepo, employeeRepo, clk)
	templateSvc := templateService.NewTemplateService(txManager, templateRepo, clk)
	offerSvc := offerService.NewOfferLetterService(
		txManager,
		offerRepo,
		employeeRepo,
		departmentRepo,
		designationRepo,
		templateRepo,
		salaryRepo,
		renderer,
		fileStorage,
		emailService,
		publisher,
		clk,
		cfg.Company.Name,
	)

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Master:   appHTTP.NewMasterHandler(masterSvc),
		Employee: appHTTP.NewEmployeeHandler(employeeSvc, salarySvc),
		Salary:   appHTTP.NewSalaryHandler(salarySvc),
		Payroll:  appHTTP.NewPayrollHandler(payrollSvc),
		Leave:    appHTTP.NewLeaveHandler(leaveSvc),
		Template: appHTTP.NewTemplateHandler(templateSvc),
		Offer:    appHTTP.NewOfferLetterHandler(offerSvc),
		File:     appHTTP.NewFileHandler(fileStorage),
	}, idempotencyStore)

	scheduler := cron.NewScheduler()
	cron.NewLeaveJobs(leaveSvc, clk).RegisterJobs(scheduler, cfg.Jobs.LeaveBalanceInterval)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
