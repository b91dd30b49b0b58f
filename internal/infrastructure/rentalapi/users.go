package rentalapi

import (
	"context"
	"net/http"
	"net/url"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase/interfaces"
	"strconv"
)

var _ interfaces.IUserGateway = (*Client)(nil)

func (c *Client) GetUser(ctx context.Context, token string, userID int64) (entities.User, error) {
	var out entities.User
	err := c.do(ctx, request{method: http.MethodGet, path: idPath("/users/%d", userID), token: token}, &out)
	return out, err
}

func (c *Client) ListUsers(ctx context.Context, token string, q entities.PageQuery) (entities.Page[entities.User], error) {
	var out entities.Page[entities.User]
	err := c.do(ctx, request{method: http.MethodGet, path: "/users/all", query: pageValues(q), token: token}, &out)
	return out, err
}

func pageValues(q entities.PageQuery) url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("size", strconv.Itoa(q.Size))
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.SortDirection != "" {
		v.Set("sortDirection", q.SortDirection)
	}
	return v
}
