package session

import (
	"context"

	"github.com/jhoicas/factory-console/internal/application/notify"
	"github.com/jhoicas/factory-console/internal/domain"
	"github.com/jhoicas/factory-console/internal/domain/auth"
	"github.com/jhoicas/factory-console/internal/domain/entity"
	"github.com/jhoicas/factory-console/pkg/logger"
)

// AppUserSyncer puerto de la llamada única /auth/sync que aprovisiona el
// usuario de negocio tras autenticarse. Lo implementa rest.UserRepository.
type AppUserSyncer interface {
	SyncAppUser(ctx context.Context) (*entity.AppUser, error)
}

// UseCase casos de uso de sesión: login con sincronización de usuario de
// negocio, registro y cierre de sesión.
type UseCase struct {
	provider auth.Provider
	syncer   AppUserSyncer
	notify   notify.Notifier
	log      *logger.Logger
	// RedirectTarget URL de retorno del correo de confirmación de registro.
	redirectTarget string
}

// NewUseCase construye el caso de uso de sesión.
func NewUseCase(provider auth.Provider, syncer AppUserSyncer, redirectTarget string, notifier notify.Notifier, log *logger.Logger) *UseCase {
	if notifier == nil {
		notifier = notify.Nop()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		provider:       provider,
		syncer:         syncer,
		notify:         notifier,
		log:            log,
		redirectTarget: redirectTarget,
	}
}

// Login autentica y luego sincroniza el usuario de negocio. Si el sync
// falla, solo se avisa: la navegación sigue igual (el usuario quedará
// aprovisionado en un reintento posterior). Devuelve el AppUser cuando el
// sync funcionó, nil cuando solo hubo advertencia.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*entity.AppUser, error) {
	if _, err := uc.provider.SignInWithPassword(ctx, email, password); err != nil {
		uc.notify.Error(domain.UserMessage(err))
		return nil, err
	}

	appUser, err := uc.syncer.SyncAppUser(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("sesión iniciada pero la sincronización del usuario de negocio falló")
		uc.notify.Warn("sesión iniciada, pero no se pudo sincronizar el usuario; reintente más tarde")
		return nil, nil
	}

	uc.notify.Success("sesión iniciada")
	return appUser, nil
}

// Register da de alta una identidad en el proveedor; la sesión se abre
// recién cuando el usuario confirma el correo e inicia sesión.
func (uc *UseCase) Register(ctx context.Context, email, password string) error {
	if err := uc.provider.SignUp(ctx, email, password, uc.redirectTarget); err != nil {
		uc.notify.Error(domain.UserMessage(err))
		return err
	}
	uc.notify.Success("registro enviado; revise su correo para confirmar")
	return nil
}

// Logout cierra la sesión vigente.
func (uc *UseCase) Logout(ctx context.Context) error {
	return uc.provider.SignOut(ctx)
}
