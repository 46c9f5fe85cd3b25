// Package meloapi adaptador HTTP hacia la API REST de Melo Engenharia, donde viven
// usuarios, obras, fornecedores, catálogo, solicitações y pedidos.
//
// Cada llamada recibe la sesión del usuario y reenvía su token como Bearer.
package meloapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/melo-compras/internal/domain"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/pkg/logger"
)

const maxResponseBytes = 4 << 20

// Client cliente de la API remota. Seguro para uso concurrente.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. baseURL sin barra final (se recorta si viene).
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Named("meloapi"),
	}
}

// apiError cuerpo de error que devuelve la API ({"message": ...} o {"error": ...}).
type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do ejecuta la petición. in se serializa como JSON si no es nil; out recibe el cuerpo
// de una respuesta 2xx si no es nil.
func (c *Client) do(ctx context.Context, sess entity.Session, method, path string, query url.Values, in, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("meloapi: serializar %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("meloapi: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}
	reqID := sess.RequestID
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("meloapi: timeout o cancelación en %s %s: %w", method, path, ctx.Err())
		}
		c.log.Error().Err(err).Str("method", method).Str("path", path).Str("request_id", reqID).Msg("llamada HTTP fallida")
		return fmt.Errorf("%w: %s %s: %v", domain.ErrUpstream, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", domain.ErrUpstream, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Str("request_id", reqID).
		Msg("meloapi")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: respuesta no es JSON válido en %s %s: %v", domain.ErrUpstream, method, path, err)
	}
	return nil
}

// statusError traduce el código HTTP de la API a un error de dominio.
func statusError(status int, body []byte) error {
	msg := http.StatusText(status)
	var ae apiError
	if json.Unmarshal(body, &ae) == nil {
		if ae.Message != "" {
			msg = ae.Message
		} else if ae.Error != "" {
			msg = ae.Error
		}
	}

	var base error
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		base = domain.ErrInvalidInput
	case status == http.StatusUnauthorized:
		base = domain.ErrUnauthorized
	case status == http.StatusForbidden:
		base = domain.ErrForbidden
	case status == http.StatusNotFound:
		base = domain.ErrNotFound
	case status == http.StatusConflict:
		base = domain.ErrConflict
	default:
		base = domain.ErrUpstream
	}
	return &StatusError{Status: status, Message: msg, base: base}
}

// StatusError error devuelto por la API remota. Es errors.Is con el error de dominio
// correspondiente al código HTTP.
type StatusError struct {
	Status  int
	Message string
	base    error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("meloapi: HTTP %d: %s", e.Status, e.Message)
}

func (e *StatusError) Unwrap() error { return e.base }

// IsStatus true si err viene de la API con ese código HTTP.
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}

func escape(id string) string { return url.PathEscape(id) }
