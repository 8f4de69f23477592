package handler

import (
	"strings"

	"github.com/storecore/commerce-api/internal/core/domain"
	"github.com/storecore/commerce-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,strongpwd"`
	Phone    string `json:"phone,omitempty"   validate:"omitempty,vnphone"`
	Address  string `json:"address,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// loginResponse carries the access token and the identity. domain.User
// excludes the password hash from serialization, so no credential material
// can appear here.
type loginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        *domain.User `json:"user"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// sanitizeRegister applies the boundary transforms: trim everything, strip
// markup from free text, capitalize the name. Email normalization happens
// again in the service layer; lowering it here keeps validation and
// uniqueness aligned with what gets stored.
func sanitizeRegister(req registerRequest) ports.RegisterInput {
	return ports.RegisterInput{
		Name:     capitalize(stripHTML(req.Name)),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: req.Password,
		Phone:    strings.TrimSpace(req.Phone),
		Address:  stripHTML(req.Address),
	}
}
