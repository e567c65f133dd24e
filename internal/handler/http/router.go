package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	notificationHandler NotificationHandler,
	env string,
	uploadsBasePath string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "dayflow-hr"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

	// Generated payslips are served from local storage
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsBasePath))))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/me", attendanceHandler.GetMyAttendance)
				r.Get("/summary", attendanceHandler.GetSummary)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", attendanceHandler.List)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.CreateRequest)
				r.Get("/me", leaveHandler.GetMyRequests)
				r.Get("/balance", leaveHandler.GetMyBalance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", leaveHandler.ListRequests)
					r.Get("/pending", leaveHandler.ListPendingRequests)
					r.Put("/{id}/approve", leaveHandler.ApproveRequest)
					r.Put("/{id}/reject", leaveHandler.RejectRequest)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/salary", payrollHandler.GetMySalary)
				r.Get("/breakdown", payrollHandler.GetBreakdown)
				r.Get("/payslip", payrollHandler.GeneratePayslip)
			})
		})

		// SSE clients cannot set headers, so the stream route also
		// accepts the token as a query parameter.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(jwtService.JWTAuth(), jwtauth.TokenFromQuery, jwtauth.TokenFromHeader))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/notifications/stream", notificationHandler.Stream)
		})
	})
	return r
}
