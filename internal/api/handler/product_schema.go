package handler

import "github.com/storecore/commerce-api/internal/core/ports"

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gte=0,lte=999999.99"`
	Category    string  `json:"category,omitempty"`
	Stock       int     `json:"stock,omitempty" validate:"omitempty,gte=0,lte=999999"`
}

type updateProductRequest struct {
	Name        *string  `json:"name,omitempty"        validate:"omitempty,min=1"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=1"`
	Price       *float64 `json:"price,omitempty"       validate:"omitempty,gte=0,lte=999999.99"`
	Category    *string  `json:"category,omitempty"`
	Stock       *int     `json:"stock,omitempty"       validate:"omitempty,gte=0,lte=999999"`
}

func sanitizeProductCreate(req createProductRequest) ports.CreateProductInput {
	return ports.CreateProductInput{
		Name:        capitalize(stripHTML(req.Name)),
		Description: stripHTML(req.Description),
		Price:       req.Price,
		Category:    capitalize(stripHTML(req.Category)),
		Stock:       req.Stock,
	}
}

func sanitizeProductUpdate(req updateProductRequest) ports.UpdateProductInput {
	input := ports.UpdateProductInput{
		Price: req.Price,
		Stock: req.Stock,
	}
	if req.Name != nil {
		name := capitalize(stripHTML(*req.Name))
		input.Name = &name
	}
	if req.Description != nil {
		description := stripHTML(*req.Description)
		input.Description = &description
	}
	if req.Category != nil {
		category := capitalize(stripHTML(*req.Category))
		input.Category = &category
	}
	return input
}
