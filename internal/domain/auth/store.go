package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type AuthUser struct {
	UserID       int64
	Email        string
	Role         string
	PasswordHash string
}

// FindUserByEmail returns the login row with the role already collapsed to
// its canonical spelling.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (AuthUser, error) {
	var out AuthUser
	var storedRole string
	err := s.DB.QueryRow(ctx, `
    SELECT user_id, email, role, password_hash
    FROM users
    WHERE email = $1
  `, email).Scan(&out.UserID, &out.Email, &storedRole, &out.PasswordHash)
	if err != nil {
		return AuthUser{}, err
	}
	out.Role = CanonicalRole(storedRole)
	return out, nil
}

func (s *Store) HasPermission(ctx context.Context, role, permission string) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM role_permissions
    WHERE role = $1 AND permission_key = $2
  `, role, permission).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
