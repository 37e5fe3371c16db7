package session_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factory-console/internal/application/session"
	"github.com/jhoicas/factory-console/internal/domain/auth"
)

// ──────────────────────────────────────────────────────────────────────────────
// fakeProvider: proveedor de identidad controlado por el test
// ──────────────────────────────────────────────────────────────────────────────

type fakeProvider struct {
	mu      sync.Mutex
	session *auth.Session
	subs    map[int]func(*auth.Session)
	nextSub int

	signInErr  error
	signUpErr  error
	signOutErr error
	signUps    []string // redirectTarget de cada SignUp
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{subs: map[int]func(*auth.Session){}}
}

func (p *fakeProvider) CurrentSession() *auth.Session {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session
}

type fakeSub struct {
	once   sync.Once
	cancel func()
}

func (s *fakeSub) Unsubscribe() { s.once.Do(s.cancel) }

func (p *fakeProvider) OnSessionChange(fn func(*auth.Session)) auth.Subscription {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	p.mu.Unlock()
	return &fakeSub{cancel: func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}}
}

func (p *fakeProvider) setSession(s *auth.Session) {
	p.mu.Lock()
	p.session = s
	listeners := make([]func(*auth.Session), 0, len(p.subs))
	for _, fn := range p.subs {
		listeners = append(listeners, fn)
	}
	p.mu.Unlock()
	for _, fn := range listeners {
		fn(s)
	}
}

func (p *fakeProvider) subCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs)
}

func (p *fakeProvider) SignInWithPassword(ctx context.Context, email, password string) (*auth.Session, error) {
	if p.signInErr != nil {
		return nil, p.signInErr
	}
	s := &auth.Session{AccessToken: "tok", User: auth.User{ID: "u1", Email: email}}
	p.setSession(s)
	return s, nil
}

func (p *fakeProvider) SignUp(ctx context.Context, email, password, redirectTarget string) error {
	p.mu.Lock()
	p.signUps = append(p.signUps, redirectTarget)
	p.mu.Unlock()
	return p.signUpErr
}

func (p *fakeProvider) SignOut(ctx context.Context) error {
	p.setSession(nil)
	return p.signOutErr
}

var _ auth.Provider = (*fakeProvider)(nil)

// ──────────────────────────────────────────────────────────────────────────────
// Gate
// ──────────────────────────────────────────────────────────────────────────────

func TestGate_SinMontarDiceEsperar(t *testing.T) {
	g := session.NewGate(newFakeProvider(), nil)
	assert.Equal(t, session.GateResolving, g.State())
	assert.Equal(t, session.DecisionWait, g.Decide(),
		"sin resolver no se redirige ni se admite")
}

func TestGate_SinSesionRedirigeALogin(t *testing.T) {
	g := session.NewGate(newFakeProvider(), nil)
	g.Mount()
	defer g.Unmount()

	assert.Equal(t, session.GateResolved, g.State())
	assert.Equal(t, session.DecisionRedirectLogin, g.Decide())
	assert.Nil(t, g.Session())
}

func TestGate_ConSesionAdmite(t *testing.T) {
	p := newFakeProvider()
	p.setSession(&auth.Session{AccessToken: "tok", User: auth.User{ID: "u1"}})

	g := session.NewGate(p, nil)
	g.Mount()
	defer g.Unmount()

	assert.Equal(t, session.DecisionAdmit, g.Decide())
	require.NotNil(t, g.Session())
	assert.Equal(t, "u1", g.Session().User.ID)
}

func TestGate_SigueLosCambiosDeSesion(t *testing.T) {
	p := newFakeProvider()
	g := session.NewGate(p, nil)
	g.Mount()
	defer g.Unmount()
	require.Equal(t, session.DecisionRedirectLogin, g.Decide())

	p.setSession(&auth.Session{AccessToken: "tok"})
	assert.Equal(t, session.DecisionAdmit, g.Decide())

	p.setSession(nil)
	assert.Equal(t, session.DecisionRedirectLogin, g.Decide(),
		"el cierre de sesión vuelve a exigir login")
}

func TestGate_UnmountLiberaLaSuscripcion(t *testing.T) {
	p := newFakeProvider()
	g := session.NewGate(p, nil)
	g.Mount()
	require.Equal(t, 1, p.subCount())

	g.Unmount()
	assert.Zero(t, p.subCount())

	// Idempotente: un segundo Unmount no rompe nada.
	g.Unmount()
	assert.Zero(t, p.subCount())

	// Un cambio posterior al desmontaje no toca el estado del gate.
	p.setSession(&auth.Session{AccessToken: "tok"})
	assert.Nil(t, g.Session())
}

func TestGate_MountRepetidoNoDuplicaSuscripciones(t *testing.T) {
	p := newFakeProvider()
	g := session.NewGate(p, nil)
	g.Mount()
	g.Mount()
	defer g.Unmount()
	assert.Equal(t, 1, p.subCount())
}
