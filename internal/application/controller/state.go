package controller

// State estado de una pantalla. Máquina por pantalla:
// idle → loading → ready ⇄ saving → ready|error; error no es terminal y se
// sale de él con una carga exitosa o con el siguiente intento de mutación.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateSaving  State = "saving"
	StateError   State = "error"
)

func (s State) String() string { return string(s) }
