// Package controller implementa el view-model de cada pantalla CRUD: carga
// inicial junto con sus referencias, ciclo de formulario alta/edición,
// recarga total tras cada mutación y manejo de errores no bloqueante.
package controller

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/factory-console/internal/application/form"
	"github.com/jhoicas/factory-console/internal/application/notify"
	"github.com/jhoicas/factory-console/internal/domain"
	"github.com/jhoicas/factory-console/pkg/logger"
)

// RefLoader carga de una colección de referencia. La fase de red corre en
// paralelo con la carga primaria; el commit (alimentar el resolver) se aplica
// recién cuando todas las cargas del join terminaron bien.
type RefLoader struct {
	load func(ctx context.Context) (commit func(), err error)
}

// Ref arma un RefLoader a partir del list del repositorio y una función de
// commit sobre la colección traída (típicamente resolver.Set).
func Ref[E any](list func(ctx context.Context) ([]E, error), apply func([]E)) RefLoader {
	return RefLoader{load: func(ctx context.Context) (func(), error) {
		items, err := list(ctx)
		if err != nil {
			return nil, err
		}
		return func() { apply(items) }, nil
	}}
}

// ScreenConfig comportamiento específico de una pantalla sobre filas R.
// Create o Remove en nil significan que la pantalla no ofrece esa operación
// (la pantalla de usuarios solo edita).
type ScreenConfig[R any] struct {
	Name   string // nombre corto para logs, ej. "parts"
	Fields []form.Field

	List   func(ctx context.Context) ([]R, error)
	Create func(ctx context.Context, f *form.Form) error
	Update func(ctx context.Context, row R, f *form.Form) error
	Remove func(ctx context.Context, row R) error

	// Fill vuelca la fila seleccionada al formulario (modo edición).
	Fill func(row R, f *form.Form)
	// Refs colecciones foráneas que la pantalla necesita para etiquetar.
	Refs []RefLoader
}

// Screen view-model genérico de una pantalla CRUD. Las llamadas a red son
// puntos de suspensión (bloquean la goroutine llamadora, no la UI); el estado
// interno se serializa con un mutex y las respuestas tardías de una carga
// superada o de una pantalla desmontada se descartan por generación.
type Screen[R any] struct {
	cfg    ScreenConfig[R]
	notify notify.Notifier
	log    *logger.Logger

	mu      sync.Mutex
	state   State
	rows    []R
	form    *form.Form
	editing *R
	modal   bool
	mounted bool
	loadGen uint64
}

// NewScreen construye la pantalla en estado idle.
func NewScreen[R any](cfg ScreenConfig[R], notifier notify.Notifier, log *logger.Logger) *Screen[R] {
	if notifier == nil {
		notifier = notify.Nop()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Screen[R]{
		cfg:    cfg,
		notify: notifier,
		log:    log,
		state:  StateIdle,
		form:   form.New(cfg.Fields),
	}
}

// ── Ciclo de montaje y carga ──────────────────────────────────────────────────

// Mount marca la pantalla como montada y dispara la carga inicial: lista
// primaria y todas las referencias en paralelo, con join lógico (no se
// muestran resultados parciales).
func (s *Screen[R]) Mount(ctx context.Context) {
	s.mu.Lock()
	s.mounted = true
	s.mu.Unlock()
	s.load(ctx)
}

// Unmount descarta la pantalla; cualquier respuesta que llegue después se
// ignora (guard de "sigue montada").
func (s *Screen[R]) Unmount() {
	s.mu.Lock()
	s.mounted = false
	s.mu.Unlock()
}

// Refresh es la acción equivalente a re-montar: única salida de error que no
// pasa por una mutación.
func (s *Screen[R]) Refresh(ctx context.Context) {
	s.load(ctx)
}

// load ejecuta el join de carga primaria + referencias y publica el resultado
// completo de una sola vez. En fallo conserva los datos previos visibles.
func (s *Screen[R]) load(ctx context.Context) {
	s.mu.Lock()
	if !s.mounted {
		s.mu.Unlock()
		return
	}
	s.state = StateLoading
	s.loadGen++
	gen := s.loadGen
	s.mu.Unlock()

	var rows []R
	commits := make([]func(), len(s.cfg.Refs))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.cfg.List(gctx)
		return err
	})
	for i, ref := range s.cfg.Refs {
		i, ref := i, ref
		g.Go(func() error {
			commit, err := ref.load(gctx)
			if err != nil {
				return err
			}
			commits[i] = commit
			return nil
		})
	}
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mounted || gen != s.loadGen {
		// Respuesta tardía contra una pantalla desmontada o una carga más
		// nueva: se descarta sin tocar estado.
		s.log.Debug().Str("screen", s.cfg.Name).Msg("carga descartada por guard de montaje")
		return
	}
	if err != nil {
		s.state = StateError
		s.log.Warn().Str("screen", s.cfg.Name).Err(err).Msg("carga de pantalla falló")
		s.notify.Error(domain.UserMessage(err))
		return
	}
	s.rows = rows
	for _, commit := range commits {
		commit()
	}
	s.state = StateReady
}

// ── Lectura de estado ─────────────────────────────────────────────────────────

// State estado actual de la máquina.
func (s *Screen[R]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Rows copia de las filas visibles.
func (s *Screen[R]) Rows() []R {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]R, len(s.rows))
	copy(out, s.rows)
	return out
}

// ModalOpen indica si hay un formulario (alta o edición) abierto.
func (s *Screen[R]) ModalOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal
}

// Editing devuelve la fila en edición, o nil si el formulario es de alta.
func (s *Screen[R]) Editing() *R {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing == nil {
		return nil
	}
	copied := *s.editing
	return &copied
}

// ── Ciclo de formulario ───────────────────────────────────────────────────────

// OpenCreate abre el formulario de alta en blanco con la clave editable.
// Si había otro formulario abierto, sus cambios sin guardar se descartan sin
// aviso (comportamiento vigente de la consola; ver tests).
func (s *Screen[R]) OpenCreate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg.Create == nil {
		return domain.NewValidationFailure("esta pantalla no permite altas")
	}
	if s.state == StateLoading || s.state == StateSaving {
		return domain.NewValidationFailure("hay una operación en curso")
	}
	s.form.Reset()
	s.editing = nil
	s.modal = true
	return nil
}

// OpenEdit abre el formulario precargado desde la fila seleccionada con los
// campos clave deshabilitados. Igual que OpenCreate, pisa cualquier
// formulario abierto.
func (s *Screen[R]) OpenEdit(row R) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateLoading || s.state == StateSaving {
		return domain.NewValidationFailure("hay una operación en curso")
	}
	s.form.Reset()
	s.cfg.Fill(row, s.form)
	s.editing = &row
	s.modal = true
	return nil
}

// CloseModal cierra el formulario descartando el borrador.
func (s *Screen[R]) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = false
	s.editing = nil
}

// SetField escribe un campo del formulario abierto.
func (s *Screen[R]) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.modal {
		return domain.NewValidationFailure("no hay formulario abierto")
	}
	return s.form.Set(name, value)
}

// FieldValue valor actual de un campo del formulario.
func (s *Screen[R]) FieldValue(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Get(name)
}

// Submit valida localmente y envía el alta o la edición. En éxito cierra el
// formulario y recarga la lista completa (sin merge optimista); en fallo el
// formulario queda abierto y se notifica el error. Mientras la mutación está
// pendiente la pantalla queda en saving y un segundo Submit se rechaza.
func (s *Screen[R]) Submit(ctx context.Context) error {
	s.mu.Lock()
	if !s.modal {
		s.mu.Unlock()
		return domain.NewValidationFailure("no hay formulario abierto")
	}
	if s.state == StateSaving {
		s.mu.Unlock()
		return domain.NewValidationFailure("guardado en curso; espere a que termine")
	}
	if err := s.form.Validate(); err != nil {
		// La validación local no sale del formulario: no hay red ni aviso.
		s.mu.Unlock()
		return err
	}
	s.state = StateSaving
	editing := s.editing
	f := s.form
	s.mu.Unlock()

	var err error
	if editing != nil {
		err = s.cfg.Update(ctx, *editing, f)
	} else {
		err = s.cfg.Create(ctx, f)
	}

	s.mu.Lock()
	if err != nil {
		s.state = StateError
		s.mu.Unlock()
		s.log.Warn().Str("screen", s.cfg.Name).Err(err).Msg("guardado falló")
		s.notify.Error(domain.UserMessage(err))
		return err
	}
	s.modal = false
	s.editing = nil
	s.state = StateReady
	s.mu.Unlock()

	s.notify.Success("guardado")
	// El servidor es la fuente de verdad: recarga total, nada de parchear
	// la lista local.
	s.load(ctx)
	return nil
}

// Delete elimina la fila previa confirmación explícita. Sin confirmación no
// se llama a la red y la fila queda intacta. En éxito recarga; en fallo
// notifica y la fila sigue visible.
func (s *Screen[R]) Delete(ctx context.Context, row R, confirmed bool) error {
	if !confirmed {
		return domain.NewValidationFailure("la eliminación requiere confirmación")
	}
	s.mu.Lock()
	if s.cfg.Remove == nil {
		s.mu.Unlock()
		return domain.NewValidationFailure("esta pantalla no permite eliminar")
	}
	if s.state == StateSaving {
		s.mu.Unlock()
		return domain.NewValidationFailure("hay una operación en curso")
	}
	s.state = StateSaving
	s.mu.Unlock()

	err := s.cfg.Remove(ctx, row)

	s.mu.Lock()
	if err != nil {
		s.state = StateError
		s.mu.Unlock()
		s.log.Warn().Str("screen", s.cfg.Name).Err(err).Msg("eliminación falló")
		s.notify.Error(domain.UserMessage(err))
		return err
	}
	s.state = StateReady
	s.mu.Unlock()

	s.notify.Success("eliminado")
	s.load(ctx)
	return nil
}
