package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
	"github.com/aussiebroadwan/rollcall/internal/presence/store"
)

type usersRepo struct{ q querier }

const userColumns = `id, name, email, password_hash, role, status, presence, current_location_id,
	last_login_at, last_login_ip, last_login_user_agent, last_login_browser, last_login_os, last_login_device,
	last_logout_at, mfa_secret, mfa_enabled_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u                                  domain.User
		role, status, presence             string
		currentLocation                    sql.NullString
		loginAt, loginIP, loginUA          sql.NullString
		loginBrowser, loginOS, loginDevice sql.NullString
		logoutAt, mfaSecret, mfaEnabledAt  sql.NullString
		createdAt, updatedAt               string
	)

	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &status, &presence, &currentLocation,
		&loginAt, &loginIP, &loginUA, &loginBrowser, &loginOS, &loginDevice,
		&logoutAt, &mfaSecret, &mfaEnabledAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return domain.User{}, mapErr(err)
	}

	u.Role = domain.Role(role)
	u.Status = domain.AccountStatus(status)
	u.Presence = domain.Presence(presence)
	u.CurrentLocationID = currentLocation.String

	if loginAt.Valid {
		at, err := parseTime(loginAt.String)
		if err != nil {
			return domain.User{}, err
		}
		u.LastLogin = &domain.LoginInfo{
			At:        at,
			IP:        loginIP.String,
			UserAgent: loginUA.String,
			Browser:   loginBrowser.String,
			OS:        loginOS.String,
			Device:    loginDevice.String,
		}
	}
	if u.LastLogout, err = parseNullTime(logoutAt); err != nil {
		return domain.User{}, err
	}
	if u.MFAEnabled, err = parseNullTime(mfaEnabledAt); err != nil {
		return domain.User{}, err
	}
	if mfaSecret.Valid {
		s := mfaSecret.String
		u.MFASecret = &s
	}
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.User{}, err
	}
	if u.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ? COLLATE NOCASE`, email))
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY name COLLATE NOCASE, id`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, mapErr(rows.Err())
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}
	if u.Status == "" {
		u.Status = domain.StatusActive
	}

	presence := domain.PresenceAbsent
	if u.CurrentLocationID != "" {
		presence = domain.PresencePresent
	}

	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, status, presence, current_location_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role), string(u.Status), string(presence),
		nullString(u.CurrentLocationID), formatTime(u.CreatedAt), formatTime(u.UpdatedAt),
	)
	return mapErr(err)
}

func (r *usersRepo) UpdateUser(ctx context.Context, id string, p domain.UserPatch) error {
	var set setClause
	if p.Name != nil {
		set.add("name", *p.Name)
	}
	if p.Email != nil {
		set.add("email", *p.Email)
	}
	if p.PasswordHash != nil {
		set.add("password_hash", *p.PasswordHash)
	}
	if p.Role != nil {
		set.add("role", string(*p.Role))
	}
	if p.Status != nil {
		set.add("status", string(*p.Status))
	}
	if set.empty() {
		_, err := r.GetUserByID(ctx, id)
		return err
	}
	set.add("updated_at", formatTime(time.Now()))

	res, err := r.q.ExecContext(ctx, `UPDATE users SET `+set.sql()+` WHERE id = ?`, append(set.args, id)...)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (r *usersRepo) UpdatePresence(ctx context.Context, c domain.PresenceChange) error {
	presence := domain.PresenceAbsent
	if c.ToLocationID != "" {
		presence = domain.PresencePresent
	}

	var loginAt, loginIP, loginUA, loginBrowser, loginOS, loginDevice sql.NullString
	if c.Login != nil {
		loginAt = nullTime(&c.Login.At)
		loginIP = sql.NullString{String: c.Login.IP, Valid: true}
		loginUA = sql.NullString{String: c.Login.UserAgent, Valid: true}
		loginBrowser = sql.NullString{String: c.Login.Browser, Valid: true}
		loginOS = sql.NullString{String: c.Login.OS, Valid: true}
		loginDevice = sql.NullString{String: c.Login.Device, Valid: true}
	}

	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET
			presence              = ?,
			current_location_id   = ?,
			last_login_at         = COALESCE(?, last_login_at),
			last_login_ip         = COALESCE(?, last_login_ip),
			last_login_user_agent = COALESCE(?, last_login_user_agent),
			last_login_browser    = COALESCE(?, last_login_browser),
			last_login_os         = COALESCE(?, last_login_os),
			last_login_device     = COALESCE(?, last_login_device),
			last_logout_at        = COALESCE(?, last_logout_at),
			updated_at            = ?
		WHERE id = ? AND current_location_id IS ?`,
		string(presence), nullString(c.ToLocationID),
		loginAt, loginIP, loginUA, loginBrowser, loginOS, loginDevice,
		nullTime(c.Logout), formatTime(time.Now()),
		c.UserID, nullString(c.FromLocationID),
	)
	if err != nil {
		return mapErr(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}

	// Either the user is gone or someone moved them first.
	if _, err := r.GetUserByID(ctx, c.UserID); err != nil {
		return err
	}
	return store.ErrConflict
}

func (r *usersRepo) DeleteUser(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users)`).Scan(&exists)
	if err != nil {
		return false, mapErr(err)
	}
	return !exists, nil
}

func (r *usersRepo) UpdateMFASecret(ctx context.Context, userID, secret string) error {
	return r.exec(ctx, `UPDATE users SET mfa_secret = ?, updated_at = ? WHERE id = ?`,
		secret, formatTime(time.Now()), userID)
}

func (r *usersRepo) EnableMFA(ctx context.Context, userID string) error {
	now := formatTime(time.Now())
	res, err := r.q.ExecContext(ctx,
		`UPDATE users SET mfa_enabled_at = ?, updated_at = ? WHERE id = ? AND mfa_secret IS NOT NULL`,
		now, now, userID)
	if err != nil {
		return mapErr(err)
	}
	if err := requireRow(res); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			if _, err := r.GetUserByID(ctx, userID); err != nil {
				return err
			}
			return store.ErrConflict
		}
		return err
	}
	return nil
}

func (r *usersRepo) DisableMFA(ctx context.Context, userID string) error {
	return r.exec(ctx, `UPDATE users SET mfa_secret = NULL, mfa_enabled_at = NULL, updated_at = ? WHERE id = ?`,
		formatTime(time.Now()), userID)
}

func (r *usersRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}
