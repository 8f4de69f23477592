package ports

import (
	"context"

	"github.com/storecore/commerce-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration time. Role is
// not part of it: new accounts always start as domain.RoleUser.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

type AuthService interface {
	// Register creates an identity with a hashed password and default role.
	// A duplicate normalized email yields domain.ErrEmailTaken.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed access token plus the
	// identity. Unknown email and wrong password are indistinguishable: both
	// return domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
