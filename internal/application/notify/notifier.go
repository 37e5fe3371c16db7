// Package notify define la salida de avisos al usuario. Las pantallas nunca
// se rompen por un fallo de datos: lo convierten en una notificación corta
// y no bloqueante por esta interfaz.
package notify

import "github.com/jhoicas/factory-console/pkg/logger"

// Notifier receptor de avisos de la capa de aplicación.
type Notifier interface {
	Success(message string)
	Warn(message string)
	Error(message string)
}

// Nop descarta todos los avisos; para tests y valores por defecto.
func Nop() Notifier { return nopNotifier{} }

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Warn(string)    {}
func (nopNotifier) Error(string)   {}

// Log notifier que escribe los avisos en el logger estructurado; es lo que
// usa la consola cuando no hay shell visual montado.
func Log(log *logger.Logger) Notifier {
	if log == nil {
		log = logger.Nop()
	}
	return logNotifier{log: log}
}

type logNotifier struct {
	log *logger.Logger
}

func (n logNotifier) Success(message string) { n.log.Info().Msg(message) }
func (n logNotifier) Warn(message string)    { n.log.Warn().Msg(message) }
func (n logNotifier) Error(message string)   { n.log.Error().Msg(message) }
