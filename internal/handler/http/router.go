package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workaxis/hrms-backend-go/internal/config"
	"github.com/workaxis/hrms-backend-go/internal/handler/http/middleware"
	"github.com/workaxis/hrms-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Master   MasterHandler
	Employee EmployeeHandler
	Salary   SalaryHandler
	Payroll  PayrollHandler
	Leave    LeaveHandler
	Template TemplateHandler
	Offer    OfferLetterHandler
	File     FileHandler
}

// NewRouter wires every route under /api/v1. A nil idempotency store leaves
// the POST endpoints unguarded.
func NewRouter(cfg *config.Config, JWTService jwt.Service, h Handlers, idempotencyStore middleware.IdempotencyStore) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workaxis-hrms"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.IdempotencyHeader},
		ExposedHeaders:   []string{"Link", "Content-Disposition", middleware.ReplayedHeader},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  requestLogLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	idempotent := middleware.Idempotency(idempotencyStore)
	verifier := jwtauth.Verifier(JWTService.JWTAuth())

	r.Group(func(r chi.Router) {
		r.Use(verifier)
		r.Use(middleware.AuthRequired)
		r.Get("/files/*", h.File.Download)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(verifier)
		r.Use(middleware.AuthRequired)

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", h.Master.ListDepartments)
			r.Post("/", h.Master.CreateDepartment)
			r.Get("/{id}", h.Master.GetDepartment)
			r.Put("/{id}", h.Master.UpdateDepartment)
			r.Delete("/{id}", h.Master.DeleteDepartment)
		})

		r.Route("/designations", func(r chi.Router) {
			r.Get("/", h.Master.ListDesignations)
			r.Post("/", h.Master.CreateDesignation)
			r.Get("/{id}", h.Master.GetDesignation)
			r.Put("/{id}", h.Master.UpdateDesignation)
			r.Delete("/{id}", h.Master.DeleteDesignation)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)
			r.Post("/", h.Employee.Create)
			r.Get("/{id}", h.Employee.Get)
			r.Put("/{id}", h.Employee.Update)
			r.Patch("/{id}/status", h.Employee.ChangeStatus)
			r.Delete("/{id}", h.Employee.Delete)
			r.Get("/{id}/salary", h.Employee.GetActiveSalary)
			r.Get("/{id}/salary/history", h.Employee.GetSalaryHistory)
		})

		r.Route("/salaries", func(r chi.Router) {
			r.Get("/", h.Salary.List)
			r.Post("/", h.Salary.Create)
			r.Get("/{id}", h.Salary.Get)
			r.Put("/{id}", h.Salary.Update)
			r.Delete("/{id}", h.Salary.Delete)
		})

		r.Route("/payrolls", func(r chi.Router) {
			r.Get("/", h.Payroll.List)
			r.With(idempotent).Post("/generate", h.Payroll.Generate)
			r.Get("/{id}", h.Payroll.Get)
			r.Delete("/{id}", h.Payroll.Delete)
			r.Get("/{id}/payslip", h.Payroll.Payslip)
		})

		r.Route("/leave-types", func(r chi.Router) {
			r.Get("/", h.Leave.ListTypes)
			r.Post("/", h.Leave.CreateType)
		})

		r.Route("/leave-balances", func(r chi.Router) {
			r.Get("/", h.Leave.GetBalances)
			r.Post("/initialize", h.Leave.InitializeBalances)
		})

		r.Route("/leave-requests", func(r chi.Router) {
			r.Get("/", h.Leave.ListRequests)
			r.Post("/", h.Leave.CreateRequest)
			r.Get("/pending", h.Leave.ListPendingRequests)
			r.Get("/{id}", h.Leave.GetRequest)
			r.Post("/{id}/approve", h.Leave.ApproveRequest)
			r.Post("/{id}/cancel", h.Leave.CancelRequest)
		})

		r.Route("/offer-templates", func(r chi.Router) {
			r.Get("/", h.Template.List)
			r.Post("/", h.Template.Create)
			r.Get("/default", h.Template.GetDefault)
			r.Get("/placeholders", h.Template.ListPlaceholders)
			r.Get("/{id}", h.Template.Get)
			r.Put("/{id}", h.Template.Update)
			r.Delete("/{id}", h.Template.Delete)
			r.Post("/{id}/default", h.Template.SetDefault)
			r.Post("/{id}/clone", h.Template.Clone)
			r.Post("/{id}/preview", h.Template.Preview)
		})

		r.Route("/offer-letters", func(r chi.Router) {
			r.Get("/", h.Offer.List)
			r.Post("/", h.Offer.Create)
			r.With(idempotent).Post("/bulk", h.Offer.BulkGenerate)
			r.Get("/{id}", h.Offer.Get)
			r.Delete("/{id}", h.Offer.Delete)
			r.Patch("/{id}/status", h.Offer.UpdateStatus)
			r.With(idempotent).Post("/{id}/accept", h.Offer.Accept)
			r.Get("/{id}/pdf", h.Offer.DownloadPDF)
		})
	})

	return r
}

func requestLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
