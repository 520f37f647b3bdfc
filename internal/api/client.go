package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// TokenSource entrega la credencial bearer vigente como snapshot al momento de
// la llamada. Una cadena vacía significa "sin credencial", que no es un error
// en esta capa: la autorización la aplica el backend.
type TokenSource interface {
	Token() string
}

// TokenFunc adapta una función a TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Client traduce cada operación de dominio en exactamente un request HTTP
// contra el backend REST y normaliza el resultado. Nunca reintenta.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// New construye un cliente apuntando al origen del backend.
func New(baseURL string, tokens TokenSource, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
		breaker: newBreaker("backend", logger),
		logger:  logger,
	}
}

// BaseURL devuelve el origen configurado, sin barra final.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// WithToken devuelve una vista del cliente con esa credencial fija. Comparte
// transporte y breaker; sirve para atar la credencial de un request entrante
// sin tocar el cliente compartido.
func (c *Client) WithToken(tok string) *Client {
	view := *c
	view.tokens = TokenFunc(func() string { return tok })
	return &view
}

func newBreaker(name string, logger *zap.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 2
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.Warn("circuit breaker state change",
					zap.String("name", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			}
		},
		// Un 4xx es una respuesta del backend, no una falla de transporte.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var reqErr *RequestError
			return asRequestError(err, &reqErr) && reqErr.Status < 500
		},
	})
}

type request struct {
	method      string
	path        string
	query       map[string]string
	body        io.Reader
	contentType string
	authorize   bool
}

// do ejecuta el request, normaliza cualquier status no exitoso en RequestError
// y decodifica el body en out cuando out no es nil.
func (c *Client) do(ctx context.Context, r request, out any) error {
	target := c.baseURL + r.path
	if len(r.query) > 0 {
		values := url.Values{}
		for k, v := range r.query {
			values.Set(k, v)
		}
		target += "?" + values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, r.body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.authorize && c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	res, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request %s %s: %w", r.method, r.path, err)
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}
		if resp.StatusCode >= 400 {
			return nil, newRequestError(resp.StatusCode, raw)
		}
		return raw, nil
	})
	if err != nil {
		return err
	}

	raw := res.([]byte)
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any, authorize bool) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}
	return c.do(ctx, request{
		method:      method,
		path:        path,
		body:        body,
		contentType: contentType,
		authorize:   authorize,
	}, out)
}
