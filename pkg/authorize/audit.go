package authorize

import (
	"context"
	"log/slog"
	"time"

	casbin "github.com/casbin/casbin/v2"
)

// AuditedAuthorization wraps an IAuthorization implementation with audit
// logging of every decision.
type AuditedAuthorization struct {
	inner  IAuthorization
	logger *slog.Logger
}

func NewAuditedAuthorization(inner IAuthorization, logger *slog.Logger) IAuthorization {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditedAuthorization{
		inner:  inner,
		logger: logger,
	}
}

func (a *AuditedAuthorization) Enforce(ctx context.Context, role Role, object Object) (bool, error) {
	start := time.Now()
	allowed, err := a.inner.Enforce(ctx, role, object)
	duration := time.Since(start)

	attrs := []any{
		"role", string(role),
		"destination", string(object),
		"allowed", allowed,
		"duration_us", duration.Microseconds(),
	}

	if err != nil {
		attrs = append(attrs, "error", err.Error())
		a.logger.Error("authz_decision", attrs...)
	} else if allowed {
		a.logger.Debug("authz_decision", attrs...)
	} else {
		a.logger.Warn("authz_decision", attrs...)
	}

	return allowed, err
}

func (a *AuditedAuthorization) MustEnforce(ctx context.Context, role Role, object Object) error {
	ok, err := a.Enforce(ctx, role, object)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

func (a *AuditedAuthorization) AddPolicy(ctx context.Context, role Role, object Object) (bool, error) {
	return a.inner.AddPolicy(ctx, role, object)
}

func (a *AuditedAuthorization) Raw() *casbin.Enforcer { return a.inner.Raw() }
