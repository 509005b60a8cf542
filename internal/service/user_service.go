package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/e-dsin/maturity-sub005/internal/access"
	"github.com/e-dsin/maturity-sub005/internal/model"
	"github.com/e-dsin/maturity-sub005/internal/repository"
	"github.com/e-dsin/maturity-sub005/pkg/logger"
)

var ErrUserNotFound = errors.New("user not found")

// UserService manages actors. Role changes go through the hierarchy
// rule: the actor must outrank the target, and administrator-or-above
// targets require a super administrator.
type UserService struct {
	users  repository.UserRepo
	engine *access.Engine
	log    logger.Logger
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepo, engine *access.Engine, log logger.Logger) *UserService {
	return &UserService{
		users:  users,
		engine: engine,
		log:    log.Named("users"),
	}
}

// List returns the users visible under the principal's data filter.
func (s *UserService) List(ctx context.Context, p access.Principal) ([]*model.User, error) {
	d := s.engine.Authorize(ctx, p, access.ModuleUtilisateurs, access.ActionConsulter)
	if !d.Allowed {
		return nil, denied(d)
	}
	return s.users.List(ctx, filterToBson(d.Filter))
}

// UpdateRole changes a user's role. Both the target's current role and
// the requested role must be manageable by the principal, so nobody
// promotes past their own reach.
func (s *UserService) UpdateRole(ctx context.Context, p access.Principal, targetID, newRole string) error {
	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return fmt.Errorf("%w: %s", ErrUserNotFound, targetID)
	}

	requested := access.RoleFromString(newRole)
	if requested == access.RoleUnknown {
		return fmt.Errorf("unknown role %q", newRole)
	}

	d := s.engine.AuthorizeManage(ctx, p, access.RoleFromString(target.Role), targetID)
	if !d.Allowed {
		return denied(d)
	}
	if !access.CanManage(p.Role, requested) {
		return denied(access.Decision{Reason: access.ReasonHierarchyLevel})
	}
	if !d.Filter.Global && target.EnterpriseID != d.Filter.EnterpriseID {
		return outOfScope()
	}

	if err := s.users.UpdateRole(ctx, targetID, newRole); err != nil {
		return err
	}
	s.log.Info(ctx, "user role updated",
		logger.String("targetId", targetID),
		logger.String("role", newRole),
		logger.String("actorId", p.ActorID))
	return nil
}
