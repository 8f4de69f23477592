package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/storecore/commerce-api/internal/api/handler"
	"github.com/storecore/commerce-api/internal/core/domain"
	"github.com/storecore/commerce-api/internal/core/ports"
)

type stubProductService struct {
	createFn   func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error)
	findAllFn  func(ctx context.Context) ([]*domain.Product, error)
	findByIDFn func(ctx context.Context, id int64) (*domain.Product, error)
	updateFn   func(ctx context.Context, id int64, input ports.UpdateProductInput) (*domain.Product, error)
	deleteFn   func(ctx context.Context, id int64) error
}

func (s *stubProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubProductService) FindAll(ctx context.Context) ([]*domain.Product, error) {
	return s.findAllFn(ctx)
}

func (s *stubProductService) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubProductService) Update(ctx context.Context, id int64, input ports.UpdateProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubProductService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func TestProductHandler_Create(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(_ context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			if input.Price != 19.99 {
				t.Fatalf("unexpected price: %v", input.Price)
			}
			return &domain.Product{ID: 1, Name: input.Name, Price: input.Price, Category: input.Category, Stock: input.Stock}, nil
		},
	}
	h := handler.NewProductHandler(stub)

	c, rec := doJSON(e, http.MethodPost, "/products", `{"name":"Widget","description":"A widget","price":19.99,"category":"tools","stock":3}`)
	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var product map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &product); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if product["id"] != float64(1) || product["price"] != 19.99 {
		t.Fatalf("unexpected payload: %+v", product)
	}
}

func TestProductHandler_Create_NegativePrice(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(context.Context, ports.CreateProductInput) (*domain.Product, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := handler.NewProductHandler(stub)

	c, rec := doJSON(e, http.MethodPost, "/products", `{"name":"Widget","price":-1,"category":"tools"}`)
	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProductHandler_Get(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		findByIDFn: func(_ context.Context, id int64) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Widget", Price: 9.5}, nil
		},
	}
	h := handler.NewProductHandler(stub)

	c, rec := doJSON(e, http.MethodGet, "/products/4", "")
	withPathID(c, "4")

	if err := h.Get(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		findByIDFn: func(context.Context, int64) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := handler.NewProductHandler(stub)

	c, rec := doJSON(e, http.MethodGet, "/products/404", "")
	withPathID(c, "404")

	if err := h.Get(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProductHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		findAllFn: func(context.Context) ([]*domain.Product, error) {
			return []*domain.Product{{ID: 1}, {ID: 2}, {ID: 3}}, nil
		},
	}
	h := handler.NewProductHandler(stub)

	c, rec := doJSON(e, http.MethodGet, "/products", "")
	if err := h.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var products []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
}

func TestProductHandler_Update_PartialFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		updateFn: func(_ context.Context, id int64, input ports.UpdateProductInput) (*domain.Product, error) {
			if input.Price == nil || *input.Price != 25 {
				t.Fatalf("expected price update, got %+v", input)
			}
			if input.Name != nil || input.Stock != nil {
				t.Fatalf("expected untouched fields to stay nil: %+v", input)
			}
			return &domain.Product{ID: id, Price: *input.Price}, nil
		},
	}
	h := handler.NewProductHandler(stub)

	c, rec := doJSON(e, http.MethodPatch, "/products/4", `{"price":25}`)
	withPathID(c, "4")

	if err := h.Update(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestProductHandler_Delete(t *testing.T) {
	e := newTestEcho()
	var deletedID int64
	stub := &stubProductService{
		deleteFn: func(_ context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	h := handler.NewProductHandler(stub)

	c, rec := doJSON(e, http.MethodDelete, "/products/6", "")
	withPathID(c, "6")

	if err := h.Delete(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deletedID != 6 {
		t.Fatalf("expected delete of id 6, got %d", deletedID)
	}
}
