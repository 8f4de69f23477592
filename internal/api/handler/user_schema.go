package handler

import (
	"strings"

	"github.com/storecore/commerce-api/internal/core/ports"
)

// updateUserRequest is a partial profile update. Absent fields stay
// unchanged; email, role, and password are not updatable here.
type updateUserRequest struct {
	Name    *string `json:"name,omitempty"    validate:"omitempty,min=2"`
	Phone   *string `json:"phone,omitempty"   validate:"omitempty,vnphone"`
	Address *string `json:"address,omitempty"`
}

func sanitizeUserUpdate(req updateUserRequest) ports.UpdateUserInput {
	input := ports.UpdateUserInput{}
	if req.Name != nil {
		name := capitalize(stripHTML(*req.Name))
		input.Name = &name
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		input.Phone = &phone
	}
	if req.Address != nil {
		address := stripHTML(*req.Address)
		input.Address = &address
	}
	return input
}
