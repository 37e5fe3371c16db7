package rest

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

	"github.com/google/uuid"
	"github.com/jhoicas/factory-console/internal/domain"
	"github.com/jhoicas/factory-console/pkg/logger"
)

// TokenSource expone la credencial de sesión vigente. La implementa el
// cliente de identidad; para esta capa es de solo lectura.
type TokenSource interface {
	// AccessToken devuelve el bearer token actual, o "" si no hay sesión.
	AccessToken() string
}

// anonymousTokens TokenSource vacío para llamadas sin sesión.
type anonymousTokens struct{}

func (anonymousTokens) AccessToken() string { return "" }

// Client adaptador HTTP hacia el backend de fábrica. Adjunta la credencial
// vigente a cada llamada y normaliza todo fallo a *domain.Failure; no hace
// reintentos ni cache.
type Client struct {
	base   string
	http   *http.Client
	tokens TokenSource
	log    *logger.Logger
}

// Option ajuste opcional del cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client subyacente.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout fija un timeout global de transporte (0 = sin timeout).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// NewClient construye el adaptador. baseURL sin slash final; tokens puede ser
// nil para un cliente anónimo. Sin timeout por defecto: un request colgado
// deja la pantalla en loading y la cancelación corre por cuenta del context.
func NewClient(baseURL string, tokens TokenSource, log *logger.Logger, opts ...Option) *Client {
	if tokens == nil {
		tokens = anonymousTokens{}
	}
	if log == nil {
		log = logger.Nop()
	}
	c := &Client{
		base:   strings.TrimRight(baseURL, "/"),
		http:   &http.Client{},
		tokens: tokens,
		log:    log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorBody cuerpo de error del backend. FastAPI usa {"detail": ...} donde
// detail puede ser string o una lista de errores de validación; se aceptan
// también {"code","message"}.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
}

func (e errorBody) text() string {
	if len(e.Detail) > 0 {
		var s string
		if err := json.Unmarshal(e.Detail, &s); err == nil {
			return s
		}
		return string(e.Detail)
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

// Do ejecuta una llamada contra el backend. path es relativo a la base
// (ej. "/factory/parts"); body y out son opcionales y se serializan como
// JSON. Todo fallo sale normalizado como *domain.Failure, nunca un panic.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domain.NewRequestFailure("no se pudo serializar la petición", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return domain.NewRequestFailure("petición inválida", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Str("method", method).Str("path", path).Err(err).Msg("fallo de transporte")
		return domain.NewRequestFailure("no se pudo contactar el servidor", err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("llamada al backend")

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewRequestFailure("no se pudo leer la respuesta", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.failureFrom(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domain.NewRequestFailure("respuesta con formato inesperado", err)
	}
	return nil
}

// failureFrom convierte una respuesta no-2xx en *domain.Failure con mensaje
// legible y el status original.
func (c *Client) failureFrom(status int, raw []byte) error {
	var eb errorBody
	message := ""
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &eb); err == nil {
			message = eb.text()
		}
	}
	if message == "" {
		message = fmt.Sprintf("el servidor respondió %s", http.StatusText(status))
	}
	return domain.NewServerFailure(status, message)
}

// Get, Post, Put y Delete azúcar sobre Do.

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}
