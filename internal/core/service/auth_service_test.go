package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/storecore/commerce-api/internal/core/domain"
	"github.com/storecore/commerce-api/internal/core/ports"
)

// stubUserRepo is an in-memory UserRepository enforcing the same unique
// email constraint the Mongo index provides.
type stubUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newAuthFixture() (*AuthService, *stubUserRepo, *TokenService) {
	repo := newStubUserRepo()
	hasher := NewBcryptHasher(4)
	tokens := NewTokenService("secret", time.Hour)
	users := NewUserService(repo, hasher, zerolog.Nop())
	auth := NewAuthService(users, repo, hasher, tokens, zerolog.Nop())
	return auth, repo, tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	auth, _, _ := newAuthFixture()

	user, err := auth.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    "  Alice@Example.COM ",
		Password: "Str0ng!pass",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "Str0ng!pass" || user.PasswordHash == "" {
		t.Fatalf("password not hashed")
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	auth, _, _ := newAuthFixture()

	if _, err := auth.Register(context.Background(), ports.RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "pw"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	// Same email with different casing must collide.
	_, err := auth.Register(context.Background(), ports.RegisterInput{Name: "Bobby", Email: "BOB@example.com", Password: "pw2"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	auth, _, tokens := newAuthFixture()

	registered, err := auth.Register(context.Background(), ports.RegisterInput{Name: "Carol", Email: "carol@example.com", Password: "s3cret!A"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := auth.Login(context.Background(), "Carol@Example.com", "s3cret!A")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %d, got %d", registered.ID, user.ID)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if claims.SubjectID != registered.ID {
		t.Fatalf("token subject %d, want %d", claims.SubjectID, registered.ID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	auth, _, _ := newAuthFixture()

	_, _ = auth.Register(context.Background(), ports.RegisterInput{Name: "Dave", Email: "dave@example.com", Password: "goodpass"})
	_, _, err := auth.Login(context.Background(), "dave@example.com", "badpass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	auth, _, _ := newAuthFixture()

	_, _ = auth.Register(context.Background(), ports.RegisterInput{Name: "Eve", Email: "eve@example.com", Password: "goodpass"})

	_, _, unknownErr := auth.Login(context.Background(), "ghost@example.com", "goodpass")
	_, _, wrongErr := auth.Login(context.Background(), "eve@example.com", "badpass")

	// Unknown email and wrong password must be indistinguishable.
	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) || !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v and %v", unknownErr, wrongErr)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	auth, _, _ := newAuthFixture()

	if _, _, err := auth.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
