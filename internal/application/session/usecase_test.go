package session_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factory-console/internal/application/session"
	"github.com/jhoicas/factory-console/internal/domain"
	"github.com/jhoicas/factory-console/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Caso de uso de sesión
// ──────────────────────────────────────────────────────────────────────────────

// recorder junta las notificaciones emitidas por el caso de uso.
type recorder struct {
	mu        sync.Mutex
	successes []string
	warns     []string
	errors    []string
}

func (r *recorder) Success(m string) {
	r.mu.Lock()
	r.successes = append(r.successes, m)
	r.mu.Unlock()
}
func (r *recorder) Warn(m string)  { r.mu.Lock(); r.warns = append(r.warns, m); r.mu.Unlock() }
func (r *recorder) Error(m string) { r.mu.Lock(); r.errors = append(r.errors, m); r.mu.Unlock() }

// fakeSyncer controla el resultado de la sincronización del usuario de negocio.
type fakeSyncer struct {
	user *entity.AppUser
	err  error
}

func (f *fakeSyncer) SyncAppUser(ctx context.Context) (*entity.AppUser, error) {
	return f.user, f.err
}

func syncerOK(email string) *fakeSyncer {
	return &fakeSyncer{user: &entity.AppUser{
		ID: "app-user-1", AuthUserID: "u1", Email: email,
		Role: entity.RoleInventoryOperator,
	}}
}

func syncerFail() *fakeSyncer {
	return &fakeSyncer{err: domain.NewServerFailure(500, "Internal error")}
}

var _ session.AppUserSyncer = (*fakeSyncer)(nil)

func TestUseCase_LoginSincronizaElUsuario(t *testing.T) {
	p := newFakeProvider()
	rec := &recorder{}
	uc := session.NewUseCase(p, syncerOK("ana@factory.test"), "https://console.factory.test/", rec, nil)

	u, err := uc.Login(context.Background(), "ana@factory.test", "secreta")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "ana@factory.test", u.Email)
	assert.Equal(t, 1, len(rec.successes))
	assert.NotNil(t, p.CurrentSession())
}

func TestUseCase_LoginConCredencialesInvalidas(t *testing.T) {
	p := newFakeProvider()
	p.signInErr = domain.NewServerFailure(401, "Invalid login credentials")
	rec := &recorder{}
	uc := session.NewUseCase(p, syncerOK("x"), "", rec, nil)

	u, err := uc.Login(context.Background(), "ana@factory.test", "mala")
	require.Error(t, err)
	assert.Nil(t, u)
	assert.Nil(t, p.CurrentSession())
	require.Len(t, rec.errors, 1)
	assert.Equal(t, "Invalid login credentials", rec.errors[0])
}

func TestUseCase_FalloDeSyncSoloAdvierte(t *testing.T) {
	// La sesión queda abierta y la navegación sigue: el usuario de negocio
	// se aprovisiona en un reintento posterior.
	p := newFakeProvider()
	rec := &recorder{}
	uc := session.NewUseCase(p, syncerFail(), "", rec, nil)

	u, err := uc.Login(context.Background(), "ana@factory.test", "secreta")
	require.NoError(t, err, "el fallo de sync no es un fallo de login")
	assert.Nil(t, u)
	assert.NotNil(t, p.CurrentSession(), "la sesión sigue abierta")
	assert.Len(t, rec.warns, 1)
	assert.Empty(t, rec.errors)
}

func TestUseCase_RegisterEnviaElRedirect(t *testing.T) {
	p := newFakeProvider()
	rec := &recorder{}
	uc := session.NewUseCase(p, syncerOK("x"), "https://console.factory.test/bienvenida", rec, nil)

	require.NoError(t, uc.Register(context.Background(), "nuevo@factory.test", "secreta"))
	require.Len(t, p.signUps, 1)
	assert.Equal(t, "https://console.factory.test/bienvenida", p.signUps[0])
	assert.Len(t, rec.successes, 1)
	assert.Nil(t, p.CurrentSession(), "el registro no abre sesión")
}

func TestUseCase_LogoutCierraLaSesion(t *testing.T) {
	p := newFakeProvider()
	uc := session.NewUseCase(p, syncerOK("x"), "", nil, nil)

	_, err := uc.Login(context.Background(), "ana@factory.test", "secreta")
	require.NoError(t, err)
	require.NoError(t, uc.Logout(context.Background()))
	assert.Nil(t, p.CurrentSession())
}
