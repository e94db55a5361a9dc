package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/jobra/portal_backend/config"
	"github.com/jobra/portal_backend/internal/catalog"
	"github.com/jobra/portal_backend/internal/service/appointment"
	"github.com/jobra/portal_backend/internal/service/auth"
	"github.com/jobra/portal_backend/internal/service/report"
	"github.com/jobra/portal_backend/internal/service/review"
	"github.com/jobra/portal_backend/internal/service/stats"
	"github.com/jobra/portal_backend/internal/service/user"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideSessionStore,
		ProvideAuthService,
		ProvideAppointmentService,
		ProvideReportService,
		ProvideReviewService,
		ProvideUserService,
		ProvideStatsService,
	),
)

func ProvideSessionStore(rdb *redis.Client, cfg *config.Config) auth.SessionStore {
	return auth.NewRedisSessionStore(rdb, cfg)
}

func ProvideAuthService(store *catalog.Store, sessions auth.SessionStore, cfg *config.Config) auth.Service {
	return auth.New(store, sessions, cfg)
}

func ProvideAppointmentService(store *catalog.Store) appointment.Service {
	return appointment.New(store)
}

func ProvideReportService(store *catalog.Store) report.Service {
	return report.New(store)
}

func ProvideReviewService(store *catalog.Store) review.Service {
	return review.New(store)
}

func ProvideUserService(store *catalog.Store) user.Service {
	return user.New(store)
}

func ProvideStatsService(store *catalog.Store) stats.Service {
	return stats.New(store)
}
