package auth

import "context"

// Subscription alta activa a cambios de sesión; Unsubscribe debe llamarse
// incondicionalmente al desmontar (incluidos los caminos de error) para no
// actuar sobre callbacks viejos.
type Subscription interface {
	Unsubscribe()
}

// Provider puerto del proveedor de identidad externo. La implementación
// concreta habla con GoTrue/Supabase; los tests inyectan un fake.
type Provider interface {
	// CurrentSession sesión vigente o nil.
	CurrentSession() *Session
	// OnSessionChange registra un callback para cada cambio de sesión
	// (nil = sesión cerrada).
	OnSessionChange(fn func(*Session)) Subscription
	// SignInWithPassword autentica con email y contraseña.
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	// SignUp registra una identidad nueva sin abrir sesión.
	SignUp(ctx context.Context, email, password, redirectTarget string) error
	// SignOut cierra la sesión vigente.
	SignOut(ctx context.Context) error
}
