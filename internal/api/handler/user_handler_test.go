package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storecore/commerce-api/internal/api/handler"
	"github.com/storecore/commerce-api/internal/api/middleware"
	"github.com/storecore/commerce-api/internal/core/domain"
	"github.com/storecore/commerce-api/internal/core/ports"
)

type stubUserService struct {
	createFn   func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	findAllFn  func(ctx context.Context) ([]*domain.User, error)
	findByIDFn func(ctx context.Context, id int64) (*domain.User, error)
	updateFn   func(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn   func(ctx context.Context, id int64) error
}

func (s *stubUserService) Create(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) FindAll(ctx context.Context) ([]*domain.User, error) {
	return s.findAllFn(ctx)
}

func (s *stubUserService) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubUserService) Update(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubUserService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func withPathID(c echo.Context, id string) {
	c.SetParamNames("id")
	c.SetParamValues(id)
}

func identity(id int64, role string) *domain.User {
	return &domain.User{ID: id, Name: "Someone", Email: "someone@example.com", Role: role}
}

func TestUserHandler_Get_OwnRecord(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		findByIDFn: func(_ context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: id, Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser}, nil
		},
	}
	h := handler.NewUserHandler(stub)

	c, rec := doJSON(e, http.MethodGet, "/users/5", "")
	withPathID(c, "5")
	middleware.SetCurrentUser(c, identity(5, domain.RoleUser))

	if err := h.Get(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUserHandler_Get_ForeignRecordForbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		findByIDFn: func(context.Context, int64) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := handler.NewUserHandler(stub)

	c, rec := doJSON(e, http.MethodGet, "/users/9", "")
	withPathID(c, "9")
	middleware.SetCurrentUser(c, identity(5, domain.RoleUser))

	if err := h.Get(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestUserHandler_Get_ElevatedRolesBypassOwnership(t *testing.T) {
	for _, role := range []string{domain.RoleModerator, domain.RoleAdmin} {
		e := newTestEcho()
		stub := &stubUserService{
			findByIDFn: func(_ context.Context, id int64) (*domain.User, error) {
				return &domain.User{ID: id, Role: domain.RoleUser}, nil
			},
		}
		h := handler.NewUserHandler(stub)

		c, rec := doJSON(e, http.MethodGet, "/users/9", "")
		withPathID(c, "9")
		middleware.SetCurrentUser(c, identity(5, role))

		if err := h.Get(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("role %s: expected 200, got %d", role, rec.Code)
		}
	}
}

func TestUserHandler_Get_NoIdentity(t *testing.T) {
	e := newTestEcho()
	h := handler.NewUserHandler(&stubUserService{})

	c, rec := doJSON(e, http.MethodGet, "/users/5", "")
	withPathID(c, "5")

	if err := h.Get(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestUserHandler_Get_InvalidID(t *testing.T) {
	e := newTestEcho()
	h := handler.NewUserHandler(&stubUserService{})

	for _, raw := range []string{"abc", "-1", "0"} {
		c, rec := doJSON(e, http.MethodGet, "/users/"+raw, "")
		withPathID(c, raw)
		middleware.SetCurrentUser(c, identity(5, domain.RoleAdmin))

		if err := h.Get(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("id %q: expected 400, got %d", raw, rec.Code)
		}
	}
}

func TestUserHandler_Update_PartialFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateFn: func(_ context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
			if input.Name == nil || *input.Name != "Bob" {
				t.Fatalf("expected name update, got %+v", input)
			}
			if input.Phone != nil || input.Address != nil {
				t.Fatalf("expected untouched fields to stay nil: %+v", input)
			}
			return &domain.User{ID: id, Name: *input.Name, Role: domain.RoleUser}, nil
		},
	}
	h := handler.NewUserHandler(stub)

	c, rec := doJSON(e, http.MethodPatch, "/users/5", `{"name":"bob"}`)
	withPathID(c, "5")
	middleware.SetCurrentUser(c, identity(5, domain.RoleUser))

	if err := h.Update(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUserHandler_Update_ForeignRecordForbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateFn: func(context.Context, int64, ports.UpdateUserInput) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := handler.NewUserHandler(stub)

	c, rec := doJSON(e, http.MethodPatch, "/users/9", `{"name":"Mallory"}`)
	withPathID(c, "9")
	middleware.SetCurrentUser(c, identity(5, domain.RoleUser))

	if err := h.Update(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestUserHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		findAllFn: func(context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: 1, Name: "Alice", Role: domain.RoleAdmin},
				{ID: 2, Name: "Bob", Role: domain.RoleUser},
			}, nil
		},
	}
	h := handler.NewUserHandler(stub)

	c, rec := doJSON(e, http.MethodGet, "/users", "")
	if err := h.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUserHandler_Me(t *testing.T) {
	e := newTestEcho()
	h := handler.NewUserHandler(&stubUserService{})

	c, rec := doJSON(e, http.MethodGet, "/users/me", "")
	middleware.SetCurrentUser(c, identity(3, domain.RoleUser))

	if err := h.Me(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var user map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user["id"] != float64(3) {
		t.Fatalf("unexpected payload: %+v", user)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	e := newTestEcho()
	var deletedID int64
	stub := &stubUserService{
		deleteFn: func(_ context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	h := handler.NewUserHandler(stub)

	c, rec := doJSON(e, http.MethodDelete, "/users/7", "")
	withPathID(c, "7")
	middleware.SetCurrentUser(c, identity(1, domain.RoleAdmin))

	if err := h.Delete(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deletedID != 7 {
		t.Fatalf("expected delete of id 7, got %d", deletedID)
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		deleteFn: func(context.Context, int64) error {
			return domain.ErrUserNotFound
		},
	}
	h := handler.NewUserHandler(stub)

	c, rec := doJSON(e, http.MethodDelete, "/users/99", "")
	withPathID(c, "99")
	middleware.SetCurrentUser(c, identity(1, domain.RoleAdmin))

	if err := h.Delete(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
