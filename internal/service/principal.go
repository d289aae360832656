// internal/service/principal.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/auth"
	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/middleware"
	"github.com/ajaypanchal761/createbharat-sub000/internal/repository"
	"github.com/google/uuid"
)

// PrincipalService resolves token subjects against their backing tables so
// that deactivating an account takes effect immediately instead of at token
// expiry.
type PrincipalService struct {
	users     repository.UserRepositoryIface
	companies repository.CompanyRepositoryIface
	mentors   repository.MentorRepositoryIface
	cas       repository.CARepositoryIface
	admins    repository.AdminRepositoryIface
}

func NewPrincipalService(
	users repository.UserRepositoryIface,
	companies repository.CompanyRepositoryIface,
	mentors repository.MentorRepositoryIface,
	cas repository.CARepositoryIface,
	admins repository.AdminRepositoryIface,
) *PrincipalService {
	return &PrincipalService{
		users:     users,
		companies: companies,
		mentors:   mentors,
		cas:       cas,
		admins:    admins,
	}
}

func (s *PrincipalService) ResolvePrincipal(ctx context.Context, actor auth.Actor, id uuid.UUID) (*middleware.Principal, error) {
	principal := &middleware.Principal{ID: id, Actor: actor}

	switch actor {
	case auth.ActorUser:
		user, err := s.users.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := ensureUsable(user); err != nil {
			return nil, err
		}

	case auth.ActorCompany:
		company, err := s.companies.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if company.IsBlocked {
			return nil, domain.ErrAccountBlocked
		}
		if !company.IsActive {
			return nil, domain.ErrAccountInactive
		}

	case auth.ActorMentor:
		mentor, err := s.mentors.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if mentor.IsBlocked {
			return nil, domain.ErrAccountBlocked
		}
		if !mentor.IsActive {
			return nil, domain.ErrAccountInactive
		}

	case auth.ActorCA:
		ca, err := s.cas.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ca.IsActive {
			return nil, domain.ErrAccountInactive
		}

	case auth.ActorAdmin:
		admin, err := s.admins.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !admin.IsActive {
			return nil, domain.ErrAccountInactive
		}
		if admin.Locked(time.Now()) {
			return nil, domain.ErrAccountLocked
		}
		principal.Role = admin.Role

	default:
		return nil, fmt.Errorf("unknown actor kind %q", actor)
	}

	return principal, nil
}
