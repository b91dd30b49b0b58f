package rentalapi

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"okbikes_admin/internal/domain/entities"
	"okbikes_admin/internal/usecase/interfaces"
)

var _ interfaces.IFleetGateway = (*Client)(nil)

func (c *Client) ListStoreVehicles(ctx context.Context, token string, q entities.PageQuery) (entities.Page[entities.Vehicle], error) {
	var out entities.Page[entities.Vehicle]
	err := c.do(ctx, request{method: http.MethodGet, path: "/store-manager/vehicles", query: pageValues(q), token: token}, &out)
	return out, err
}

func (c *Client) ListVehicles(ctx context.Context, token string) (entities.Page[entities.Vehicle], error) {
	var out entities.Page[entities.Vehicle]
	err := c.do(ctx, request{method: http.MethodGet, path: "/vehicles", token: token}, &out)
	return out, err
}

func (c *Client) CreateVehicle(ctx context.Context, token string, form entities.VehicleForm) error {
	body, contentType, err := encodeVehicleForm(form)
	if err != nil {
		return err
	}
	return c.do(ctx, request{method: http.MethodPost, path: "/store-manager/vehicle", token: token, body: body, contentType: contentType}, nil)
}

func (c *Client) UpdateVehicle(ctx context.Context, token string, vehicleID int64, form entities.VehicleForm) error {
	body, contentType, err := encodeVehicleForm(form)
	if err != nil {
		return err
	}
	return c.do(ctx, request{method: http.MethodPut, path: idPath("/store-manager/vehicles/%d", vehicleID), token: token, body: body, contentType: contentType}, nil)
}

func (c *Client) DeleteVehicle(ctx context.Context, token string, vehicleID int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: idPath("/bike/%d", vehicleID), token: token}, nil)
}

func (c *Client) SetVehicleStatus(ctx context.Context, token string, vehicleID int64, status entities.VehicleStatus) error {
	q := url.Values{}
	q.Set("status", string(status))
	return c.do(ctx, request{method: http.MethodPut, path: idPath("/vehicle/%d/status", vehicleID), query: q, token: token}, nil)
}

// Brands, categories and stores come back paged; models are a bare list.

func (c *Client) ListBrands(ctx context.Context, token string) ([]entities.CatalogEntry, error) {
	return c.catalogPage(ctx, token, "/brand/all")
}

func (c *Client) ListModelsByBrand(ctx context.Context, token string, brandID int64) ([]entities.CatalogEntry, error) {
	var out []entities.CatalogEntry
	err := c.do(ctx, request{method: http.MethodGet, path: idPath("/model/bybrandid/%d", brandID), token: token}, &out)
	return out, err
}

func (c *Client) ListCategories(ctx context.Context, token string) ([]entities.CatalogEntry, error) {
	return c.catalogPage(ctx, token, "/category/all")
}

func (c *Client) ListStores(ctx context.Context, token string) ([]entities.CatalogEntry, error) {
	return c.catalogPage(ctx, token, "/store/all")
}

func (c *Client) catalogPage(ctx context.Context, token, path string) ([]entities.CatalogEntry, error) {
	var out entities.Page[entities.CatalogEntry]
	if err := c.do(ctx, request{method: http.MethodGet, path: path, token: token}, &out); err != nil {
		return nil, err
	}
	return out.Content, nil
}

func encodeVehicleForm(form entities.VehicleForm) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, kv := range form.Fields() {
		if kv[1] == "" {
			continue
		}
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", err
		}
	}
	for _, field := range entities.VehicleFileFields() {
		f, ok := form.Files[field]
		if !ok {
			continue
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, string(field), f.Filename))
		ct := f.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
