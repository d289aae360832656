package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/auth"
	"github.com/ajaypanchal761/createbharat-sub000/internal/middleware"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// stubResolver resolves every id to a principal of the requested actor, or
// fails with err when set.
type stubResolver struct {
	err  error
	role model.AdminRole
}

func (s *stubResolver) ResolvePrincipal(_ context.Context, actor auth.Actor, id uuid.UUID) (*middleware.Principal, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &middleware.Principal{ID: id, Actor: actor, Role: s.role}, nil
}

func TestRequireActor(t *testing.T) {
	tokenManager := auth.NewTokenManager("test_secret", time.Hour)
	userID := uuid.New()

	newGuarded := func(resolver middleware.PrincipalResolver, actor auth.Actor, seen **middleware.Principal) http.Handler {
		return middleware.RequireActor(tokenManager, resolver, actor)(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if seen != nil {
					*seen = middleware.PrincipalFrom(r.Context())
				}
				w.WriteHeader(http.StatusOK)
			}))
	}

	t.Run("passes the resolved principal through the context", func(t *testing.T) {
		token, err := tokenManager.Generate(userID.String(), auth.ActorUser)
		assert.NoError(t, err)

		var seen *middleware.Principal
		handler := newGuarded(&stubResolver{}, auth.ActorUser, &seen)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotNil(t, seen)
		assert.Equal(t, userID, seen.ID)
		assert.Equal(t, auth.ActorUser, seen.Actor)
	})

	t.Run("accepts the token cookie fallback", func(t *testing.T) {
		token, err := tokenManager.Generate(userID.String(), auth.ActorUser)
		assert.NoError(t, err)

		handler := newGuarded(&stubResolver{}, auth.ActorUser, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token is unauthorized", func(t *testing.T) {
		handler := newGuarded(&stubResolver{}, auth.ActorUser, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "No authorization token")
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		handler := newGuarded(&stubResolver{}, auth.ActorUser, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("a user token does not pass a company guard", func(t *testing.T) {
		token, err := tokenManager.Generate(userID.String(), auth.ActorUser)
		assert.NoError(t, err)

		handler := newGuarded(&stubResolver{}, auth.ActorCompany, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/companies/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("a dead account is unauthorized even with a valid token", func(t *testing.T) {
		token, err := tokenManager.Generate(userID.String(), auth.ActorUser)
		assert.NoError(t, err)

		handler := newGuarded(&stubResolver{err: errors.New("account blocked")}, auth.ActorUser, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Account not available")
	})

	t.Run("an expired token is unauthorized", func(t *testing.T) {
		expired := auth.NewTokenManager("test_secret", -time.Minute)
		token, err := expired.Generate(userID.String(), auth.ActorUser)
		assert.NoError(t, err)

		handler := newGuarded(&stubResolver{}, auth.ActorUser, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdminRole(t *testing.T) {
	tokenManager := auth.NewTokenManager("test_secret", time.Hour)
	adminID := uuid.New()

	newGuarded := func(resolver middleware.PrincipalResolver, roles ...model.AdminRole) http.Handler {
		inner := middleware.RequireAdminRole(roles...)(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
		return middleware.RequireActor(tokenManager, resolver, auth.ActorAdmin)(inner)
	}

	t.Run("a super admin reaches the account routes", func(t *testing.T) {
		token, err := tokenManager.Generate(adminID.String(), auth.ActorAdmin)
		assert.NoError(t, err)

		handler := newGuarded(&stubResolver{role: model.RoleSuperAdmin}, model.RoleSuperAdmin)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/accounts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("a plain admin is refused", func(t *testing.T) {
		token, err := tokenManager.Generate(adminID.String(), auth.ActorAdmin)
		assert.NoError(t, err)

		handler := newGuarded(&stubResolver{role: model.RoleAdmin}, model.RoleSuperAdmin)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/accounts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Insufficient role")
	})

	t.Run("without a principal the guard refuses outright", func(t *testing.T) {
		handler := middleware.RequireAdminRole(model.RoleSuperAdmin)(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

		req := httptest.NewRequest(http.MethodGet, "/api/admin/accounts", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
