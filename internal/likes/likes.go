package likes

// State es el estado local visible de likes: membresía del usuario actual y
// conteo mostrado por vacación. Es un espejo optimista del agregado que
// mantiene el backend; puede divergir hasta la próxima recarga completa.
type State struct {
	Liked  map[int]bool
	Counts map[int]int
}

func NewState() State {
	return State{
		Liked:  make(map[int]bool),
		Counts: make(map[int]int),
	}
}

func (s State) clone() State {
	next := State{
		Liked:  make(map[int]bool, len(s.Liked)),
		Counts: make(map[int]int, len(s.Counts)),
	}
	for k, v := range s.Liked {
		next.Liked[k] = v
	}
	for k, v := range s.Counts {
		next.Counts[k] = v
	}
	return next
}

type Op int

const (
	OpLike Op = iota + 1
	OpUnlike
)

// Action es un delta concreto sobre una vacación. Cada toggle recuerda la
// acción que aplicó para poder revertir su propio delta, aun intercalado con
// otros toggles en vuelo sobre la misma vacación.
type Action struct {
	VacationID int
	Op         Op
}

// Invert devuelve la acción que deshace exactamente a.
func Invert(a Action) Action {
	inv := a
	if a.Op == OpLike {
		inv.Op = OpUnlike
	} else {
		inv.Op = OpLike
	}
	return inv
}

// Apply es una transición pura: no muta s, devuelve el estado siguiente.
func Apply(s State, a Action) State {
	next := s.clone()
	switch a.Op {
	case OpLike:
		next.Liked[a.VacationID] = true
		next.Counts[a.VacationID]++
	case OpUnlike:
		delete(next.Liked, a.VacationID)
		next.Counts[a.VacationID]--
	}
	return next
}
