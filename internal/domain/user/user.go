// Package user models the local administrator accounts and their login sessions.
package user

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/tosinajy/carrier-code-verify/internal/domain/user/valueobjects"
	"github.com/tosinajy/carrier-code-verify/internal/shared/authorization"
	"github.com/tosinajy/carrier-code-verify/internal/shared/biztime"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// AdminUser is a row of the users table. Accounts are created from the CLI.
type AdminUser struct {
	id           uint
	username     string
	passwordHash string
	role         authorization.UserRole
	createdAt    time.Time
}

func NewAdminUser(username string, password *vo.Password, role authorization.UserRole, hasher PasswordHasher) (*AdminUser, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if password == nil {
		return nil, fmt.Errorf("password cannot be nil")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	hash, err := hasher.Hash(password.String())
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &AdminUser{
		username:     username,
		passwordHash: hash,
		role:         role,
		createdAt:    biztime.NowUTC(),
	}, nil
}

// ReconstructAdminUser reconstructs an AdminUser from persistence layer
func ReconstructAdminUser(id uint, username, passwordHash string, role authorization.UserRole, createdAt time.Time) *AdminUser {
	return &AdminUser{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

func (u *AdminUser) ID() uint                     { return u.id }
func (u *AdminUser) Username() string             { return u.username }
func (u *AdminUser) PasswordHash() string         { return u.passwordHash }
func (u *AdminUser) Role() authorization.UserRole { return u.role }
func (u *AdminUser) CreatedAt() time.Time         { return u.createdAt }
func (u *AdminUser) IsAdmin() bool                { return u.role.IsAdmin() }

// SetID sets the user ID (only for persistence layer use)
func (u *AdminUser) SetID(id uint) {
	u.id = id
}

func (u *AdminUser) VerifyPassword(plainPassword string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return ErrInvalidCredentials
	}
	if err := hasher.Verify(plainPassword, u.passwordHash); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
