package api

import (
	"context"
	"net/http"

	"vacation-front/internal/domain"
)

// ListLikes devuelve todos los pares (user, vacation) con like vigente.
func (c *Client) ListLikes(ctx context.Context) ([]domain.Like, error) {
	var likes []domain.Like
	if err := c.do(ctx, request{method: http.MethodGet, path: "/likes"}, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

// Like registra interés del usuario en la vacación. El backend lo rechaza con
// 403 para administradores; ese mensaje pasa verbatim al llamador.
func (c *Client) Like(ctx context.Context, userID, vacationID int) error {
	in := domain.Like{UserID: userID, VacationID: vacationID}
	return c.doJSON(ctx, http.MethodPost, "/likes", in, nil, true)
}

// Unlike retira el like; es idempotente del lado del backend.
func (c *Client) Unlike(ctx context.Context, userID, vacationID int) error {
	in := domain.Like{UserID: userID, VacationID: vacationID}
	return c.doJSON(ctx, http.MethodDelete, "/likes", in, nil, true)
}
