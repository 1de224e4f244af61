package permission

import (
	"github.com/tosinajy/carrier-code-verify/internal/shared/authorization"
)

// DefaultPolicies grants admins the whole admin area and every signed-in
// role the NAIC lookup used by the assignment form.
func DefaultPolicies() [][]string {
	return [][]string{
		{authorization.RoleAdmin.String(), "/admin/*", "*"},
		{authorization.RoleAdmin.String(), "/api/naic-lookup", "GET"},
		{authorization.RoleViewer.String(), "/api/naic-lookup", "GET"},
	}
}

// SeedDefaultPolicies installs DefaultPolicies, skipping rules already stored.
func SeedDefaultPolicies(e *Enforcer) error {
	for _, p := range DefaultPolicies() {
		if err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}
	e.logger.Infow("default permissions ensured", "count", len(DefaultPolicies()))
	return nil
}
