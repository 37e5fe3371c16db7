package auth

import "time"

// User identidad mínima expuesta por el proveedor externo.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session sesión activa emitida por el proveedor de identidad. El token se
// adjunta a toda llamada saliente; solo el callback del proveedor lo renueva.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         User      `json:"user"`
}

// Expired indica si el access token ya venció (ExpiresAt cero = sin vencimiento conocido).
func (s *Session) Expired(now time.Time) bool {
	if s == nil {
		return true
	}
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
