package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"collegeerp/internal/domain/auth"
	"collegeerp/internal/platform/config"
)

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensurePermissions(ctx, pool); err != nil {
		return err
	}

	if err := ensureRolePermissions(ctx, pool); err != nil {
		return err
	}

	if cfg.SeedAdminEmail != "" {
		if err := ensureAdminFaculty(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
			return err
		}
	}

	return nil
}

func ensurePermissions(ctx context.Context, pool *pgxpool.Pool) error {
	for _, perm := range auth.DefaultPermissions {
		_, err := pool.Exec(ctx, "INSERT INTO permissions (key) VALUES ($1) ON CONFLICT (key) DO NOTHING", perm)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureRolePermissions(ctx context.Context, pool *pgxpool.Pool) error {
	for role, perms := range auth.RolePermissions {
		for _, perm := range perms {
			_, err := pool.Exec(ctx, `
        INSERT INTO role_permissions (role, permission_key)
        VALUES ($1, $2)
        ON CONFLICT (role, permission_key) DO NOTHING
      `, role, perm)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// ensureAdminFaculty creates a faculty login so a fresh install has at least
// one account able to mark attendance and review leave.
func ensureAdminFaculty(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	var userID int64
	err := pool.QueryRow(ctx, "SELECT user_id FROM users WHERE email = $1", email).Scan(&userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	if err := pool.QueryRow(ctx, `
    INSERT INTO users (email, password_hash, role)
    VALUES ($1, $2, $3)
    RETURNING user_id
  `, email, hash, auth.StoredRoleFaculty).Scan(&userID); err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO faculty (user_id, name, department, designation)
    VALUES ($1, $2, $3, $4)
  `, userID, "Administrator", "Administration", "Admin")
	return err
}
