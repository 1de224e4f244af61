package user

import "context"

// Repository defines the interface for admin user data operations
type Repository interface {
	Create(ctx context.Context, user *AdminUser) error
	GetByID(ctx context.Context, id uint) (*AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*AdminUser, error)

	// List returns every account ordered by username.
	List(ctx context.Context) ([]*AdminUser, error)
}
