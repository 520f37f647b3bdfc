package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"vacation-front/internal/domain"
)

// Register crea un usuario nuevo vía POST /users. El backend puede no devolver
// token; el Session Store resuelve eso con un login de seguimiento.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodPost, "/users", reg, &user, false); err != nil {
		return domain.User{}, err
	}
	if user.Email == "" {
		user.Email = reg.Email
	}
	if user.FirstName == "" {
		user.FirstName = reg.FirstName
	}
	if user.LastName == "" {
		user.LastName = reg.LastName
	}
	return user, nil
}

// Login autentica vía GET /users/login con credenciales como query params,
// tal como lo expone el backend.
func (c *Client) Login(ctx context.Context, email, password string) (domain.User, error) {
	var user domain.User
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/users/login",
		query: map[string]string{
			"user_email":    email,
			"user_password": password,
		},
	}, &user)
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// CheckEmail consulta GET /users/check_email; true significa que el mail ya
// está tomado.
func (c *Client) CheckEmail(ctx context.Context, email string) (bool, error) {
	var payload struct {
		Message string `json:"Message"`
	}
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/users/check_email",
		query:  map[string]string{"user_email": email},
	}, &payload)
	if err != nil {
		return false, err
	}
	return strings.Contains(payload.Message, "already exists"), nil
}

// VerifyToken re-consulta el perfil autoritativo vía GET /users/verify_token.
// La respuesta no trae token; el llamador re-adjunta el que ya tenía.
func (c *Client) VerifyToken(ctx context.Context) (domain.User, error) {
	var user domain.User
	err := c.do(ctx, request{
		method:    http.MethodGet,
		path:      "/users/verify_token",
		authorize: true,
	}, &user)
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// ListUsers devuelve todos los usuarios (panel de administración).
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := c.do(ctx, request{
		method:    http.MethodGet,
		path:      "/users",
		authorize: true,
	}, &users)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser devuelve un usuario por id.
func (c *Client) GetUser(ctx context.Context, id int) (domain.User, error) {
	var user domain.User
	err := c.do(ctx, request{
		method:    http.MethodGet,
		path:      fmt.Sprintf("/users/%d", id),
		authorize: true,
	}, &user)
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// UpdateUser aplica un patch parcial vía PUT /users/:id.
func (c *Client) UpdateUser(ctx context.Context, id int, patch domain.UserPatch) error {
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), patch, nil, true)
}

// DeleteUser elimina un usuario vía DELETE /users/:id.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, request{
		method:    http.MethodDelete,
		path:      fmt.Sprintf("/users/%d", id),
		authorize: true,
	}, nil)
}
