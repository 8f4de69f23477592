package ports

import (
	"context"

	"github.com/storecore/commerce-api/internal/core/domain"
)

// UpdateUserInput carries a partial profile update. Nil fields are left
// unchanged. Email and role are intentionally absent: profile updates only
// touch non-security fields.
type UpdateUserInput struct {
	Name    *string
	Phone   *string
	Address *string
}

type UserService interface {
	Create(ctx context.Context, input RegisterInput) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
