// Package session decide el acceso a las pantallas protegidas a partir de la
// sesión del proveedor de identidad externo, y expone el caso de uso de
// login/registro/cierre de sesión.
package session

import (
	"sync"

	"github.com/jhoicas/factory-console/internal/domain/auth"
	"github.com/jhoicas/factory-console/pkg/logger"
)

// GateState estado de resolución de la sesión al arrancar.
type GateState string

const (
	// GateResolving todavía no se sabe si hay sesión: se muestra un
	// indicador de espera y nada más.
	GateResolving GateState = "resolving"
	// GateResolved la sesión se conoce (presente o ausente).
	GateResolved GateState = "resolved"
)

// Decision acción que corresponde al estado actual del gate.
type Decision string

const (
	DecisionWait          Decision = "wait"
	DecisionRedirectLogin Decision = "redirect_login"
	DecisionAdmit         Decision = "admit"
)

// Gate guardia de acceso: observa la sesión del proveedor mientras el shell
// está montado. Disciplina de suscripción acotada: alta en Mount, baja
// incondicional en Unmount, incluidos caminos de error.
type Gate struct {
	provider auth.Provider
	log      *logger.Logger

	mu      sync.Mutex
	state   GateState
	session *auth.Session
	sub     auth.Subscription
	mounted bool
}

// NewGate construye el gate sin montar (estado resolving).
func NewGate(provider auth.Provider, log *logger.Logger) *Gate {
	if log == nil {
		log = logger.Nop()
	}
	return &Gate{provider: provider, log: log, state: GateResolving}
}

// Mount suscribe a los cambios de sesión y resuelve el estado inicial.
// Se suscribe antes de leer la sesión actual para no perder un cambio que
// llegue en el medio.
func (g *Gate) Mount() {
	g.mu.Lock()
	if g.mounted {
		g.mu.Unlock()
		return
	}
	g.mounted = true
	g.state = GateResolving
	g.mu.Unlock()

	sub := g.provider.OnSessionChange(g.onSessionChange)

	g.mu.Lock()
	if !g.mounted {
		// Desmontada mientras nos suscribíamos: liberar ya.
		g.mu.Unlock()
		sub.Unsubscribe()
		return
	}
	g.sub = sub
	g.mu.Unlock()

	g.onSessionChange(g.provider.CurrentSession())
}

// Unmount libera la suscripción; idempotente y segura en caminos de error.
func (g *Gate) Unmount() {
	g.mu.Lock()
	g.mounted = false
	sub := g.sub
	g.sub = nil
	g.mu.Unlock()
	if sub != nil {
		sub.Unsubscribe()
	}
}

// onSessionChange único escritor del estado del gate; los callbacks que
// llegan tras el desmontaje se descartan.
func (g *Gate) onSessionChange(s *auth.Session) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.mounted {
		return
	}
	g.session = s
	g.state = GateResolved
}

// State estado de resolución actual.
func (g *Gate) State() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Session sesión conocida por el gate (nil si no hay o aún resolviendo).
func (g *Gate) Session() *auth.Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.session == nil {
		return nil
	}
	copied := *g.session
	return &copied
}

// Decide qué hacer con una visita a pantalla protegida: esperar mientras
// resuelve, redirigir a login sin sesión, admitir con sesión.
func (g *Gate) Decide() Decision {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == GateResolving {
		return DecisionWait
	}
	if g.session == nil {
		return DecisionRedirectLogin
	}
	return DecisionAdmit
}
