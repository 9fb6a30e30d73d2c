package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/suweldo-hr/suweldo-backend-go/internal/handler/http/middleware"
	"github.com/suweldo-hr/suweldo-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	payrollHandler PayrollHandler,
	timesheetHandler TimesheetHandler,
	contributionHandler ContributionHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "suweldo-payroll"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication and a company-bound token
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.RequireCompany)

			r.Route("/timesheets", func(r chi.Router) {
				r.Post("/punches", timesheetHandler.RecordPunch)
				r.Get("/{employeeId}/summary", timesheetHandler.GetSummary)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Route("/periods", func(r chi.Router) {
					r.Post("/", payrollHandler.CreatePeriod)
					r.Get("/", payrollHandler.ListPeriods)

					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", payrollHandler.GetPeriod)
						r.Delete("/", payrollHandler.DeletePeriod)
						r.Post("/process", payrollHandler.ProcessPeriod)
						r.Patch("/status", payrollHandler.TransitionPeriod)
						r.Get("/entries", payrollHandler.ListEntries)
					})
				})

				r.Route("/entries/{id}", func(r chi.Router) {
					r.Get("/", payrollHandler.GetEntry)
					r.Delete("/", payrollHandler.DeleteEntry)
					r.Post("/recompute", payrollHandler.RecomputeEntry)
					r.Patch("/status", payrollHandler.TransitionEntry)
				})

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", payrollHandler.GetSettings)
					r.Put("/", payrollHandler.UpdateSettings)
				})
			})

			r.Route("/contributions", func(r chi.Router) {
				r.Route("/tables", func(r chi.Router) {
					r.Get("/", contributionHandler.ListBracketTables)
					r.Post("/", contributionHandler.PublishBracketTable)
				})
				r.Route("/tax-tables", func(r chi.Router) {
					r.Get("/", contributionHandler.ListTaxTables)
					r.Post("/", contributionHandler.PublishTaxTable)
				})
			})
		})
	})
	return r
}
