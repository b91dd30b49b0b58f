package rentalapi

import (
	"context"
	"net/http"
	"okbikes_admin/internal/usecase/interfaces"
)

var _ interfaces.IAuthGateway = (*Client)(nil)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login is the one call sent without an Authorization header.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := jsonBody(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	var out loginResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: "/store-manager/login", public: true, body: body}, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	body, _ := jsonBody(struct{}{})
	return c.do(ctx, request{method: http.MethodPost, path: "/logout", token: token, body: body}, nil)
}
