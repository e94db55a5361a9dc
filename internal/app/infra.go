package app

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
	"go.uber.org/fx"

	"github.com/jobra/portal_backend/config"
	"github.com/jobra/portal_backend/internal/catalog"
	"github.com/jobra/portal_backend/internal/routes"
	"github.com/jobra/portal_backend/pkg/authorize"
	"github.com/jobra/portal_backend/pkg/observability"
	redispkg "github.com/jobra/portal_backend/pkg/redis"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideCatalog),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideAuthorization),
	fx.Provide(ProvideOTel),
)

// ProvideCatalog constructs the seeded in-memory dataset. One instance per
// process; everything downstream shares it.
func ProvideCatalog() *catalog.Store {
	return catalog.New()
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

// ProvideAuthorization builds the in-memory enforcer and seeds it with one
// namespace policy per role, derived from the destination table.
func ProvideAuthorization(cfg *config.Config) (authorize.IAuthorization, error) {
	auth, err := authorize.NewAuthorization()
	if err != nil {
		return nil, err
	}

	policies := lo.FilterMap(routes.Table, func(d routes.Destination, _ int) (authorize.PermissionPolicy, bool) {
		if len(d.AllowedRoles) == 0 {
			return authorize.PermissionPolicy{}, false
		}
		// one destination per role namespace is enough: keyMatch policies
		// cover the whole namespace
		role := d.AllowedRoles[0]
		return authorize.PermissionPolicy{
			Subject: authorize.Role(role),
			Object:  authorize.Object("/" + string(role) + "/*"),
		}, true
	})
	policies = lo.Uniq(policies)

	if err := authorize.SeedPolicies(context.Background(), auth, policies); err != nil {
		return nil, err
	}

	if cfg.Authorization.EnableAudit {
		auth = authorize.NewAuditedAuthorization(auth, slog.Default())
	}
	return auth, nil
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Server.Environment,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
