package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"vacation-front/internal/domain"
)

// ListCountries devuelve todos los países (lectura pública).
func (c *Client) ListCountries(ctx context.Context) ([]domain.Country, error) {
	var countries []domain.Country
	if err := c.do(ctx, request{method: http.MethodGet, path: "/countries"}, &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// CreateCountry da de alta un país. El backend responde con una lista de un
// elemento; se normaliza al país creado.
func (c *Client) CreateCountry(ctx context.Context, name string) (domain.Country, error) {
	in := map[string]string{"country_name": name}
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodPost, "/countries", in, &raw, true); err != nil {
		return domain.Country{}, err
	}
	if len(raw) > 0 && raw[0] == '[' {
		var list []domain.Country
		if err := json.Unmarshal(raw, &list); err != nil {
			return domain.Country{}, fmt.Errorf("decode country: %w", err)
		}
		if len(list) == 0 {
			return domain.Country{}, fmt.Errorf("empty country response")
		}
		return list[0], nil
	}
	var country domain.Country
	if err := json.Unmarshal(raw, &country); err != nil {
		return domain.Country{}, fmt.Errorf("decode country: %w", err)
	}
	return country, nil
}
