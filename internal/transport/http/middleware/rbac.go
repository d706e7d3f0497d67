package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cinevault/movies-service/internal/domain"
)

// UserRoleReader resolves the principal's current role from the source of
// truth (DB). The token never carries role, so a role change applies on the
// very next request without re-login.
type UserRoleReader interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
}

// RequireRole enforces an explicit role allow-list. Assumes Auth() has
// already injected the principal; never runs standalone.
func RequireRole(users UserRoleReader, writeErr WriteErrFunc, allowed ...domain.Role) func(http.Handler) http.Handler {
	required := make([]string, 0, len(allowed))
	for _, a := range allowed {
		required = append(required, string(a))
	}
	requiredLabel := strings.Join(required, ",")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFromContext(r.Context())
			if !ok {
				// Middleware ordering issue (Auth not applied) or context missing
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			u, err := users.GetByID(r.Context(), userID)
			if err != nil {
				// A token may verify while its subject is gone from storage.
				if domain.Is(err, "user_not_found") {
					writeErr(w, r, domain.ErrForbidden())
					return
				}
				writeErr(w, r, err)
				return
			}

			if !domain.RoleAllowed(u.Role, allowed) {
				writeErr(w, r, domain.ErrInsufficientRole(requiredLabel))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
