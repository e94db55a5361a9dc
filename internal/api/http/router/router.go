package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/jobra/portal_backend/config"
	"github.com/jobra/portal_backend/internal/api/http/handler"
	"github.com/jobra/portal_backend/internal/api/http/middleware"
	"github.com/jobra/portal_backend/internal/service/appointment"
	"github.com/jobra/portal_backend/internal/service/auth"
	"github.com/jobra/portal_backend/internal/service/report"
	"github.com/jobra/portal_backend/internal/service/review"
	"github.com/jobra/portal_backend/internal/service/stats"
	"github.com/jobra/portal_backend/internal/service/user"
	"github.com/jobra/portal_backend/pkg/authorize"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	Auth           authorize.IAuthorization
	AuthSvc        auth.Service
	AppointmentSvc appointment.Service
	ReportSvc      report.Service
	ReviewSvc      review.Service
	UserSvc        user.Service
	StatsSvc       stats.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

// Register wires the destination surface onto the app. Paths mirror the
// portal's navigation structure directly, so there is no /api prefix: the
// role namespaces live at the root.
func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Middlewares shared across groups
	session := middleware.Session(r.p.AuthSvc)
	gate := middleware.Gate(r.p.Auth)

	// 3. Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	patientH := handler.NewPatientHandler(r.p.AppointmentSvc, r.p.ReportSvc, r.p.ReviewSvc, r.p.UserSvc)
	doctorH := handler.NewDoctorHandler(r.p.AppointmentSvc, r.p.ReviewSvc)
	adminH := handler.NewAdminHandler(r.p.UserSvc, r.p.ReviewSvc, r.p.StatsSvc)
	navH := handler.NewNavHandler()

	// 4. Delegate to sub-files
	r.registerAuthRoutes(app, authH)
	r.registerNavRoutes(app, navH, session)
	r.registerPatientRoutes(app, patientH, session, gate)
	r.registerDoctorRoutes(app, doctorH, session, gate)
	r.registerAdminRoutes(app, adminH, session, gate)

	// 5. Everything else bounces to login, including the bare root.
	app.Use(middleware.RedirectUnmatched())
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		// ready once the policy table answers for a seeded role
		Probe: func(c fiber.Ctx) bool {
			allowed, err := r.p.Auth.Enforce(c.Context(), "admin", "/admin/dashboard")
			return err == nil && allowed
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
