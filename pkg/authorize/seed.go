package authorize

import (
	"context"
	"log/slog"
)

// PermissionPolicy is one (role, destination pattern) grant.
type PermissionPolicy struct {
	Subject Role
	Object  Object
}

// SeedPolicies loads the given grants into the enforcer. Called once at
// startup with the policy set derived from the destination table; there is no
// runtime policy mutation beyond this.
func SeedPolicies(ctx context.Context, auth IAuthorization, policies []PermissionPolicy) error {
	logger := slog.Default()

	for _, p := range policies {
		added, err := auth.AddPolicy(ctx, p.Subject, p.Object)
		if err != nil {
			logger.Error("failed to add policy", "role", p.Subject, "destination", p.Object, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "destination", p.Object)
		}
	}

	logger.Info("seeded destination policies", "count", len(policies))
	return nil
}
