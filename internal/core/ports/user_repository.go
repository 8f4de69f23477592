package ports

import (
	"context"

	"github.com/storecore/commerce-api/internal/core/domain"
)

// UserRepository defines persistence for identities. Implementations must
// enforce a uniqueness constraint on the normalized email at the storage
// layer; Create surfaces a violation as domain.ErrEmailTaken.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
