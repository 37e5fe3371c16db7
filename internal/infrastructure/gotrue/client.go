// Package gotrue implementa el cliente del proveedor de identidad externo
// (API compatible con Supabase Auth / GoTrue). Es el único escritor de la
// sesión: los repositorios la leen vía el TokenSource y los suscriptores
// reciben cada cambio por callback.
package gotrue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jhoicas/factory-console/internal/domain"
	"github.com/jhoicas/factory-console/internal/domain/auth"
	"github.com/jhoicas/factory-console/pkg/config"
	"github.com/jhoicas/factory-console/pkg/logger"
)

// Client cliente del servicio de identidad. Mantiene la sesión vigente en
// memoria (el almacenamiento persistente es del proveedor, no nuestro).
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *logger.Logger

	mu      sync.Mutex
	session *auth.Session
	subs    map[int]func(*auth.Session)
	nextSub int
}

// NewClient construye el cliente de identidad con un timeout corto propio:
// a diferencia del backend de datos, una llamada de auth colgada bloquea el
// arranque de la consola.
func NewClient(cfg config.AuthConfig, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.AnonKey,
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     log,
		subs:    make(map[int]func(*auth.Session)),
	}
}

// ── Sesión y suscripciones ────────────────────────────────────────────────────

// CurrentSession devuelve la sesión vigente o nil si no hay.
func (c *Client) CurrentSession() *auth.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	copied := *c.session
	return &copied
}

// AccessToken implementa rest.TokenSource: token vigente o "" sin sesión.
func (c *Client) AccessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return ""
	}
	return c.session.AccessToken
}

// Subscription suscripción activa a cambios de sesión. Unsubscribe es
// idempotente y debe llamarse incondicionalmente al desmontar.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Unsubscribe da de baja el callback; segura de llamar más de una vez.
func (s *Subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

// OnSessionChange registra un callback que recibe cada cambio de sesión
// (nil = sesión cerrada). El callback se invoca de forma síncrona en la
// goroutine que provoca el cambio.
func (c *Client) OnSessionChange(fn func(*auth.Session)) auth.Subscription {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()
	return &Subscription{cancel: func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}}
}

// setSession escribe la sesión y notifica a los suscriptores con una copia.
func (c *Client) setSession(s *auth.Session) {
	c.mu.Lock()
	c.session = s
	listeners := make([]func(*auth.Session), 0, len(c.subs))
	for _, fn := range c.subs {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		var copied *auth.Session
		if s != nil {
			tmp := *s
			copied = &tmp
		}
		fn(copied)
	}
}

// ── Wire del servicio GoTrue ──────────────────────────────────────────────────

type tokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
	User         auth.User `json:"user"`
}

type authError struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
	Msg         string `json:"msg"`
	Message     string `json:"message"`
}

func (e authError) text() string {
	for _, s := range []string{e.Description, e.Msg, e.Message, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// call ejecuta una llamada JSON al servicio de auth y normaliza fallos.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domain.NewRequestFailure("no se pudo serializar la petición de auth", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return domain.NewRequestFailure("petición de auth inválida", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	if token := c.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.NewRequestFailure("no se pudo contactar el servicio de identidad", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewRequestFailure("no se pudo leer la respuesta de auth", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ae authError
		message := ""
		if json.Unmarshal(raw, &ae) == nil {
			message = ae.text()
		}
		if message == "" {
			message = fmt.Sprintf("el servicio de identidad respondió %s", http.StatusText(resp.StatusCode))
		}
		return domain.NewServerFailure(resp.StatusCode, message)
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return domain.NewRequestFailure("respuesta de auth con formato inesperado", err)
		}
	}
	return nil
}

// sessionFrom arma la sesión a partir de la respuesta de token. Completa
// vencimiento e identidad desde los claims del JWT cuando el cuerpo no los trae.
func sessionFrom(tr tokenResponse, now time.Time) *auth.Session {
	s := &auth.Session{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		TokenType:    tr.TokenType,
		User:         tr.User,
	}
	if tr.ExpiresIn > 0 {
		s.ExpiresAt = now.Add(time.Duration(tr.ExpiresIn) * time.Second)
	}

	// El token del proveedor se decodifica sin verificar firma: validar es
	// responsabilidad del servidor, aquí solo se leen exp/sub/email.
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tr.AccessToken, claims); err == nil {
		if s.ExpiresAt.IsZero() {
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				s.ExpiresAt = exp.Time
			}
		}
		if s.User.ID == "" {
			if sub, err := claims.GetSubject(); err == nil {
				s.User.ID = sub
			}
		}
		if s.User.Email == "" {
			if email, ok := claims["email"].(string); ok {
				s.User.Email = email
			}
		}
	}
	return s
}

// ── Operaciones de autenticación ──────────────────────────────────────────────

// SignInWithPassword autentica con email y contraseña; si el proveedor acepta,
// guarda la sesión y notifica a los suscriptores.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*auth.Session, error) {
	query := url.Values{"grant_type": {"password"}}
	body := map[string]string{"email": email, "password": password}
	var tr tokenResponse
	if err := c.call(ctx, http.MethodPost, "/token", query, body, &tr); err != nil {
		c.log.Warn().Str("email", email).Err(err).Msg("inicio de sesión rechazado")
		return nil, err
	}
	session := sessionFrom(tr, time.Now())
	c.setSession(session)
	c.log.Info().Str("user_id", session.User.ID).Msg("sesión iniciada")
	return session, nil
}

// SignUp registra una identidad nueva; redirectTarget es la URL de retorno
// del correo de confirmación. No abre sesión.
func (c *Client) SignUp(ctx context.Context, email, password, redirectTarget string) error {
	query := url.Values{}
	if redirectTarget != "" {
		query.Set("redirect_to", redirectTarget)
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.call(ctx, http.MethodPost, "/signup", query, body, nil); err != nil {
		return err
	}
	c.log.Info().Str("email", email).Msg("registro enviado")
	return nil
}

// SignOut cierra la sesión en el proveedor y la descarta localmente aunque la
// llamada remota falle: quedarse con una credencial revocada es peor.
func (c *Client) SignOut(ctx context.Context) error {
	err := c.call(ctx, http.MethodPost, "/logout", nil, nil, nil)
	c.setSession(nil)
	if err != nil {
		c.log.Warn().Err(err).Msg("cierre de sesión remoto falló; sesión local descartada")
		return err
	}
	c.log.Info().Msg("sesión cerrada")
	return nil
}

var _ auth.Provider = (*Client)(nil)
