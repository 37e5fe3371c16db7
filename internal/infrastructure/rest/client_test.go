package rest_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factory-console/internal/domain"
	"github.com/jhoicas/factory-console/internal/infrastructure/rest"
	"github.com/jhoicas/factory-console/internal/infrastructure/rest/resttest"
)

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de fallos del adaptador HTTP
// ──────────────────────────────────────────────────────────────────────────────

// brokenTransport simula un backend inalcanzable.
type brokenTransport struct{}

func (brokenTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestClient_FalloDeTransporte_EsErrRequest(t *testing.T) {
	c := rest.NewClient("http://factory.test", nil, nil,
		rest.WithHTTPClient(&http.Client{Transport: brokenTransport{}}))

	err := c.Get(context.Background(), "/factory/parts", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRequest),
		"sin respuesta del servidor el fallo debe ser de transporte")

	f, ok := domain.AsFailure(err)
	require.True(t, ok)
	assert.Zero(t, f.Status, "un fallo de transporte no tiene status HTTP")
	assert.NotNil(t, f.Cause)
}

func TestClient_SinToken_EsErrUnauthorized(t *testing.T) {
	srv := resttest.New()
	c := srv.RestClient(resttest.StaticToken(""))

	err := c.Get(context.Background(), "/factory/parts", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))

	f, ok := domain.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, f.Status)
	assert.Equal(t, "Not authenticated", f.Message,
		"el mensaje debe salir del cuerpo {\"detail\": ...}")
}

func TestClient_Error500_EsErrServerConDetalle(t *testing.T) {
	srv := resttest.New()
	srv.FailNext()
	c := srv.RestClient(resttest.StaticToken(srv.Token("u1", "op@factory.test")))

	err := c.Get(context.Background(), "/factory/parts", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrServer))

	f, ok := domain.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, f.Status)
	assert.Equal(t, "Internal error (forced)", f.Message)
}

// headerCapture guarda la última petición que pasó por el transporte.
type headerCapture struct {
	next http.RoundTripper
	last *http.Request
}

func (h *headerCapture) RoundTrip(req *http.Request) (*http.Response, error) {
	h.last = req
	return h.next.RoundTrip(req)
}

func TestClient_AdjuntaCredencialYRequestID(t *testing.T) {
	srv := resttest.New()
	capture := &headerCapture{next: srv.HTTPClient().Transport}
	token := srv.Token("u1", "op@factory.test")
	c := rest.NewClient("http://factory.test", resttest.StaticToken(token), nil,
		rest.WithHTTPClient(&http.Client{Transport: capture}))

	require.NoError(t, c.Get(context.Background(), "/factory/parts", nil, nil))
	require.NotNil(t, capture.last)
	assert.Equal(t, "Bearer "+token, capture.last.Header.Get("Authorization"))
	assert.NotEmpty(t, capture.last.Header.Get("X-Request-ID"))
	assert.Equal(t, "application/json", capture.last.Header.Get("Accept"))
}
