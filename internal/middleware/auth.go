// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ajaypanchal761/createbharat-sub000/internal/auth"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/google/uuid"
)

type principalContextKey string

// PrincipalKey is the context key the resolved principal is stored under.
const PrincipalKey = principalContextKey("createbharat_principal")

// Principal is the authenticated caller attached to the request context.
type Principal struct {
	ID    uuid.UUID
	Actor auth.Actor
	// Role is populated for admin principals only
	Role model.AdminRole
}

// PrincipalResolver checks that the subject named by a token still maps to a
// live account. Implementations return an error for unknown, deactivated,
// blocked, or locked principals.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Principal, error)
}

// RequireActor validates the bearer token, checks the actor kind matches,
// and resolves the principal against the database. A valid signature plus a
// live row is sufficient until expiry; there is no revocation list.
func RequireActor(tokenManager *auth.TokenManager, resolver PrincipalResolver, actor auth.Actor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractToken(r)
			if raw == "" {
				respondWithError(w, http.StatusUnauthorized, "No authorization token")
				return
			}

			claims, err := tokenManager.Validate(raw)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			if claims.Actor != actor {
				respondWithError(w, http.StatusForbidden, "Token not valid for this resource")
				return
			}

			id, err := uuid.Parse(claims.SubjectID)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token subject")
				return
			}

			principal, err := resolver.ResolvePrincipal(r.Context(), actor, id)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Account not available")
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdminRole gates a route group on the admin's role. It must run
// after RequireActor(ActorAdmin).
func RequireAdminRole(roles ...model.AdminRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := PrincipalFrom(r.Context())
			if principal == nil || principal.Actor != auth.ActorAdmin {
				respondWithError(w, http.StatusUnauthorized, "Admin authentication required")
				return
			}

			for _, role := range roles {
				if principal.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			respondWithError(w, http.StatusForbidden, "Insufficient role")
		})
	}
}

// PrincipalFrom returns the authenticated principal, or nil outside a
// guarded route.
func PrincipalFrom(ctx context.Context) *Principal {
	principal, _ := ctx.Value(PrincipalKey).(*Principal)
	return principal
}

// extractToken pulls the raw JWT out of the Authorization header, falling
// back to the token cookie.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	if cookie, err := r.Cookie("token"); err == nil {
		return cookie.Value
	}
	return ""
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
