package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
	"github.com/aussiebroadwan/rollcall/internal/presence/store"
	"github.com/aussiebroadwan/rollcall/pkg/cryptox"
	"github.com/aussiebroadwan/rollcall/pkg/idx"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
)

// generatedPasswordLength is used when an administrator creates a user
// without a password.
const generatedPasswordLength = 16

type UserService struct {
	Store store.Store
}

// UserInput is a new user. An empty Password is generated and returned
// once by Create. An empty Role means Personal.
type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
	Status   domain.AccountStatus
}

// UserUpdate holds administrative edits. Nil fields are unchanged.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Role     *domain.Role
	Status   *domain.AccountStatus

	// ResetMFA clears the user's TOTP enrollment so they can sign in with
	// their password alone.
	ResetMFA bool
}

// Create adds a user and returns it with the generated password, if one
// was generated.
func (s *UserService) Create(ctx context.Context, in UserInput) (domain.User, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	switch {
	case in.Name == "":
		return domain.User{}, "", fmt.Errorf("%w: name is required", ErrInvalidRequest)
	case in.Email == "":
		return domain.User{}, "", fmt.Errorf("%w: email is required", ErrInvalidRequest)
	}
	if in.Role == "" {
		in.Role = domain.RolePersonal
	}
	if !in.Role.Valid() {
		return domain.User{}, "", fmt.Errorf("%w: unknown role %q", ErrInvalidRequest, in.Role)
	}
	if in.Status == "" {
		in.Status = domain.StatusActive
	}
	if !in.Status.Valid() {
		return domain.User{}, "", fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, in.Status)
	}

	var generated string
	if in.Password == "" {
		pw, err := cryptox.GeneratePassword(generatedPasswordLength)
		if err != nil {
			return domain.User{}, "", err
		}
		in.Password, generated = pw, pw
	}
	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	u := domain.User{
		ID:           idx.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		Status:       in.Status,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, "", ErrEmailTaken
		}
		return domain.User{}, "", fmt.Errorf("create user: %w", err)
	}

	slogx.FromContext(ctx).Info("user created",
		slog.String("new_user_id", u.ID),
		slog.String("role", u.Role.String()),
	)

	created, err := s.Get(ctx, u.ID)
	return created, generated, err
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

func (s *UserService) Update(ctx context.Context, id string, in UserUpdate) (domain.User, error) {
	var p domain.UserPatch
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return domain.User{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidRequest)
		}
		p.Name = &name
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email == "" {
			return domain.User{}, fmt.Errorf("%w: email cannot be empty", ErrInvalidRequest)
		}
		p.Email = &email
	}
	if in.Role != nil && !in.Role.Valid() {
		return domain.User{}, fmt.Errorf("%w: unknown role %q", ErrInvalidRequest, *in.Role)
	}
	p.Role = in.Role
	if in.Status != nil && !in.Status.Valid() {
		return domain.User{}, fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, *in.Status)
	}
	p.Status = in.Status
	if in.Password != nil {
		if *in.Password == "" {
			return domain.User{}, fmt.Errorf("%w: password cannot be empty", ErrInvalidRequest)
		}
		hash, err := cryptox.HashPassword(*in.Password)
		if err != nil {
			return domain.User{}, fmt.Errorf("hash password: %w", err)
		}
		p.PasswordHash = &hash
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdateUser(ctx, id, p); err != nil {
			return err
		}
		if in.ResetMFA {
			return tx.Users().DisableMFA(ctx, id)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return domain.User{}, ErrUserNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}
	if in.ResetMFA {
		slogx.FromContext(ctx).Info("user mfa reset", slog.String("target_user_id", id))
	}
	return s.Get(ctx, id)
}

// Delete removes a user. Their access logs remain with the user reference
// cleared.
func (s *UserService) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return ErrCannotDeleteSelf
	}
	if err := s.Store.Users().DeleteUser(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	slogx.FromContext(ctx).Info("user deleted", slog.String("deleted_user_id", id))
	return nil
}
