package request

import "strings"

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required"`
	Password string `json:"password" binding:"required" validate:"required"`
}

func (r LoginRequest) Normalize() LoginRequest {
	r.Email = strings.TrimSpace(r.Email)
	return r
}
