package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
	"github.com/aussiebroadwan/rollcall/internal/presence/store"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
)

// BootstrapAdmin describes the first super administrator.
type BootstrapAdmin struct {
	Name     string
	Email    string
	Password string // generated and logged once when empty
}

type BootstrapService struct {
	Store store.Store
	Users *UserService
}

// EnsureAdmin creates the first super administrator when the user table is
// empty. It reports whether a user was created.
func (s *BootstrapService) EnsureAdmin(ctx context.Context, admin BootstrapAdmin) (bool, error) {
	log := slogx.FromContext(ctx)

	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, fmt.Errorf("check users: %w", err)
	}
	if !empty {
		return false, nil
	}
	if admin.Email == "" {
		log.Warn("no users exist and BOOTSTRAP_ADMIN_EMAIL is unset; nobody can sign in")
		return false, nil
	}
	if admin.Name == "" {
		admin.Name = "Administrator"
	}

	u, generated, err := s.Users.Create(ctx, UserInput{
		Name:     admin.Name,
		Email:    admin.Email,
		Password: admin.Password,
		Role:     domain.RoleSuperAdmin,
	})
	if err != nil {
		// Another instance won the race.
		if errors.Is(err, ErrEmailTaken) {
			return false, nil
		}
		return false, fmt.Errorf("create bootstrap admin: %w", err)
	}

	attrs := []any{slog.String("user_id", u.ID), slog.String("email", u.Email)}
	if generated != "" {
		attrs = append(attrs, slog.String("generated_password", generated))
	}
	log.Warn("bootstrap super admin created", attrs...)
	return true, nil
}
