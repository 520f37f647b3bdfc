package api

import (
	"context"
	"fmt"
	"net/http"

	"vacation-front/internal/domain"
)

// Ban restringe a un usuario por una cantidad de días con un motivo.
func (c *Client) Ban(ctx context.Context, userID int, reason string, days int) (domain.Ban, error) {
	in := struct {
		Reason string `json:"reason"`
		Days   int    `json:"days"`
	}{Reason: reason, Days: days}

	var ban domain.Ban
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/bans/%d", userID), in, &ban, true); err != nil {
		return domain.Ban{}, err
	}
	return ban, nil
}

// Unban levanta todas las restricciones activas del usuario.
func (c *Client) Unban(ctx context.Context, userID int) error {
	return c.do(ctx, request{
		method:    http.MethodDelete,
		path:      fmt.Sprintf("/bans/%d", userID),
		authorize: true,
	}, nil)
}

// CheckBan consulta el estado de restricción de un usuario.
func (c *Client) CheckBan(ctx context.Context, userID int) (domain.BanStatus, error) {
	var status domain.BanStatus
	err := c.do(ctx, request{
		method:    http.MethodGet,
		path:      fmt.Sprintf("/bans/%d", userID),
		authorize: true,
	}, &status)
	if err != nil {
		return domain.BanStatus{}, err
	}
	return status, nil
}
