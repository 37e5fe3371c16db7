package gotrue_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factory-console/internal/domain"
	"github.com/jhoicas/factory-console/internal/domain/auth"
	"github.com/jhoicas/factory-console/internal/infrastructure/gotrue"
	"github.com/jhoicas/factory-console/pkg/config"
)

const testAnonKey = "anon-key-de-test"

// signToken arma un JWT con sub/email/exp, como los que emite GoTrue.
func signToken(t *testing.T, sub, email string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": sub, "email": email, "exp": exp.Unix()}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto"))
	require.NoError(t, err)
	return tok
}

// fakeGoTrue servicio de identidad mínimo sobre httptest.
type fakeGoTrue struct {
	t *testing.T

	mu          sync.Mutex
	password    string
	accessToken string
	signups     []string // query redirect_to de cada alta
	logoutCalls int
	logoutFails bool
}

func (f *fakeGoTrue) handler() http.Handler {
	mux := http.NewServeMux()
	// Solo POST, como el patrón "POST /ruta" de ServeMux en Go 1.22+.
	post := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			h(w, r)
		}
	}
	mux.HandleFunc("/token", post(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(f.t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(f.t, testAnonKey, r.Header.Get("apikey"))

		var body struct{ Email, Password string }
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&body))
		f.mu.Lock()
		defer f.mu.Unlock()
		if body.Password != f.password {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error":             "invalid_grant",
				"error_description": "Invalid login credentials",
			})
			return
		}
		// Respuesta mínima: sin expires_in ni user, el cliente los completa
		// desde los claims del token.
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  f.accessToken,
			"refresh_token": "refresh-1",
			"token_type":    "bearer",
		})
	}))
	mux.HandleFunc("/signup", post(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.signups = append(f.signups, r.URL.Query().Get("redirect_to"))
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "nuevo"})
	}))
	mux.HandleFunc("/logout", post(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.logoutCalls++
		fails := f.logoutFails
		f.mu.Unlock()
		if fails {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"msg": "Internal error"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	return mux
}

func newAuthClient(t *testing.T) (*fakeGoTrue, *gotrue.Client) {
	t.Helper()
	fake := &fakeGoTrue{t: t, password: "secreta"}
	fake.accessToken = signToken(t, "u1", "ana@factory.test", time.Now().Add(time.Hour))
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	client := gotrue.NewClient(config.AuthConfig{
		URL:     srv.URL,
		AnonKey: testAnonKey,
	}, nil)
	return fake, client
}

// ──────────────────────────────────────────────────────────────────────────────
// Inicio y cierre de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestSignIn_CompletaLaSesionDesdeLosClaims(t *testing.T) {
	_, client := newAuthClient(t)

	session, err := client.SignInWithPassword(context.Background(), "ana@factory.test", "secreta")
	require.NoError(t, err)
	assert.Equal(t, "u1", session.User.ID, "el sub del token completa la identidad")
	assert.Equal(t, "ana@factory.test", session.User.Email)
	assert.False(t, session.ExpiresAt.IsZero(), "el exp del token completa el vencimiento")
	assert.False(t, session.Expired(time.Now()))

	// El cliente queda como TokenSource de la capa de datos.
	assert.Equal(t, session.AccessToken, client.AccessToken())
	require.NotNil(t, client.CurrentSession())
}

func TestSignIn_CredencialesInvalidas(t *testing.T) {
	_, client := newAuthClient(t)

	_, err := client.SignInWithPassword(context.Background(), "ana@factory.test", "mala")
	require.Error(t, err)
	f, ok := domain.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid login credentials", f.Message,
		"el mensaje sale de error_description")
	assert.Nil(t, client.CurrentSession())
	assert.Empty(t, client.AccessToken())
}

func TestSignUp_EnviaElRedirectYNoAbreSesion(t *testing.T) {
	fake, client := newAuthClient(t)

	err := client.SignUp(context.Background(), "nuevo@factory.test", "secreta",
		"https://console.factory.test/bienvenida")
	require.NoError(t, err)
	require.Len(t, fake.signups, 1)
	assert.Equal(t, "https://console.factory.test/bienvenida", fake.signups[0])
	assert.Nil(t, client.CurrentSession(), "el alta no abre sesión hasta confirmar el correo")
}

func TestSignOut_DescartaLaSesionAunqueElRemotoFalle(t *testing.T) {
	fake, client := newAuthClient(t)
	_, err := client.SignInWithPassword(context.Background(), "ana@factory.test", "secreta")
	require.NoError(t, err)

	fake.mu.Lock()
	fake.logoutFails = true
	fake.mu.Unlock()

	err = client.SignOut(context.Background())
	require.Error(t, err, "el fallo remoto se informa")
	assert.Nil(t, client.CurrentSession(),
		"pero la credencial local se descarta igual")
	assert.Empty(t, client.AccessToken())
}

// ──────────────────────────────────────────────────────────────────────────────
// Suscripciones a cambios de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestOnSessionChange_NotificaCadaTransicion(t *testing.T) {
	_, client := newAuthClient(t)

	var mu sync.Mutex
	var seen []*auth.Session
	sub := client.OnSessionChange(func(s *auth.Session) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})
	defer sub.Unsubscribe()

	_, err := client.SignInWithPassword(context.Background(), "ana@factory.test", "secreta")
	require.NoError(t, err)
	_ = client.SignOut(context.Background())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 2)
	assert.NotNil(t, seen[0], "primer aviso: sesión abierta")
	assert.Nil(t, seen[1], "segundo aviso: sesión cerrada")
}

func TestUnsubscribe_CortaLosAvisos(t *testing.T) {
	_, client := newAuthClient(t)

	calls := 0
	sub := client.OnSessionChange(func(*auth.Session) { calls++ })
	sub.Unsubscribe()
	sub.Unsubscribe() // idempotente

	_, err := client.SignInWithPassword(context.Background(), "ana@factory.test", "secreta")
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestAuthClient_ServicioCaido(t *testing.T) {
	client := gotrue.NewClient(config.AuthConfig{
		URL:     "http://127.0.0.1:1", // nadie escucha
		AnonKey: testAnonKey,
	}, nil)

	_, err := client.SignInWithPassword(context.Background(), "ana@factory.test", "secreta")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRequest))
}
