package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"vacation-front/internal/domain"
)

// VacationForm agrupa los campos del formulario multipart de alta y edición.
// File es opcional; CountryName permite crear el país en la misma operación
// cuando no hay CountryID.
type VacationForm struct {
	CountryID   int
	CountryName string
	Description string
	StartDate   string
	EndDate     string
	Price       float64
	Currency    string
	AdminUserID int
	FileName    string
	File        io.Reader
	RemoveImage bool
}

// ListVacations devuelve el listado público. Un catálogo vacío llega como un
// objeto con mensaje en lugar de un array, y se normaliza a slice vacío.
func (c *Client) ListVacations(ctx context.Context) ([]domain.Vacation, error) {
	var raw json.RawMessage
	if err := c.do(ctx, request{method: http.MethodGet, path: "/vacations"}, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 || raw[0] != '[' {
		return []domain.Vacation{}, nil
	}
	var vacations []domain.Vacation
	if err := json.Unmarshal(raw, &vacations); err != nil {
		return nil, fmt.Errorf("decode vacations: %w", err)
	}
	return vacations, nil
}

// GetVacation devuelve el detalle por id (incluye country_id).
func (c *Client) GetVacation(ctx context.Context, id int) (domain.Vacation, error) {
	var vacation domain.Vacation
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/vacations/%d", id),
	}, &vacation)
	if err != nil {
		return domain.Vacation{}, err
	}
	return vacation, nil
}

// CreateVacation publica una vacación nueva vía POST /vacations (multipart).
func (c *Client) CreateVacation(ctx context.Context, form VacationForm) (domain.Vacation, error) {
	body, contentType, err := form.encode()
	if err != nil {
		return domain.Vacation{}, err
	}
	var vacation domain.Vacation
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/vacations",
		body:        body,
		contentType: contentType,
		authorize:   true,
	}, &vacation)
	if err != nil {
		return domain.Vacation{}, err
	}
	return vacation, nil
}

// UpdateVacation edita una vacación vía PUT /vacations/update/:id (multipart).
func (c *Client) UpdateVacation(ctx context.Context, id int, form VacationForm) error {
	body, contentType, err := form.encode()
	if err != nil {
		return err
	}
	return c.do(ctx, request{
		method:      http.MethodPut,
		path:        fmt.Sprintf("/vacations/update/%d", id),
		body:        body,
		contentType: contentType,
		authorize:   true,
	}, nil)
}

// DeleteVacation elimina una vacación; el backend exige el admin_user_id como
// query param además del bearer.
func (c *Client) DeleteVacation(ctx context.Context, id, adminUserID int) error {
	return c.do(ctx, request{
		method:    http.MethodDelete,
		path:      fmt.Sprintf("/vacations/delete/%d", id),
		query:     map[string]string{"admin_user_id": strconv.Itoa(adminUserID)},
		authorize: true,
	}, nil)
}

func (f VacationForm) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"vacation_description": f.Description,
		"vacation_start":       f.StartDate,
		"vacation_ends":        f.EndDate,
		"vacation_price":       strconv.FormatFloat(f.Price, 'f', -1, 64),
	}
	if f.CountryID > 0 {
		fields["country_id"] = strconv.Itoa(f.CountryID)
	}
	if f.CountryName != "" {
		fields["country_name"] = f.CountryName
	}
	if f.Currency != "" {
		fields["currency"] = f.Currency
	}
	if f.AdminUserID > 0 {
		fields["admin_user_id"] = strconv.Itoa(f.AdminUserID)
	}
	if f.RemoveImage {
		fields["remove_image"] = "true"
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", k, err)
		}
	}

	if f.File != nil {
		name := f.FileName
		if name == "" {
			name = "upload"
		}
		part, err := w.CreateFormFile("file", name)
		if err != nil {
			return nil, "", fmt.Errorf("create file part: %w", err)
		}
		if _, err := io.Copy(part, f.File); err != nil {
			return nil, "", fmt.Errorf("copy file part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
