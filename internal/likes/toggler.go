package likes

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Backend es el subconjunto del API client que necesita el toggler.
type Backend interface {
	Like(ctx context.Context, userID, vacationID int) error
	Unlike(ctx context.Context, userID, vacationID int) error
}

// Toggler da feedback inmediato para like/unlike: aplica el cambio local de
// forma síncrona y despacha la escritura autoritativa en segundo plano. En
// falla revierte el delta propio de esa llamada y reporta el mensaje; no
// re-lanza.
type Toggler struct {
	mu      sync.Mutex
	state   State
	backend Backend
	logger  *zap.Logger
	onError func(msg string)
}

func NewToggler(backend Backend, logger *zap.Logger) *Toggler {
	return &Toggler{
		state:   NewState(),
		backend: backend,
		logger:  logger,
	}
}

// SetErrorHandler registra el callback que recibe mensajes de falla.
func (t *Toggler) SetErrorHandler(fn func(msg string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onError = fn
}

// Seed carga los conteos del listado y la membresía del usuario actual.
func (t *Toggler) Seed(counts map[int]int, liked []int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = NewState()
	for id, n := range counts {
		t.state.Counts[id] = n
	}
	for _, id := range liked {
		t.state.Liked[id] = true
	}
}

// Snapshot devuelve una copia del estado local.
func (t *Toggler) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.clone()
}

func (t *Toggler) Liked(vacationID int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Liked[vacationID]
}

func (t *Toggler) Count(vacationID int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Counts[vacationID]
}

// Toggle voltea membresía y conteo antes de emitir la llamada de red, y
// devuelve un canal con el resultado de esa escritura. El canal se puede
// ignorar: la semántica es fire-and-forget y la falla ya se reportó por el
// callback de error.
func (t *Toggler) Toggle(ctx context.Context, userID, vacationID int) <-chan error {
	t.mu.Lock()
	action := Action{VacationID: vacationID, Op: OpLike}
	if t.state.Liked[vacationID] {
		action.Op = OpUnlike
	}
	t.state = Apply(t.state, action)
	onError := t.onError
	t.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		defer close(done)
		var err error
		if action.Op == OpLike {
			err = t.backend.Like(ctx, userID, vacationID)
		} else {
			err = t.backend.Unlike(ctx, userID, vacationID)
		}
		if err != nil {
			t.mu.Lock()
			t.state = Apply(t.state, Invert(action))
			t.mu.Unlock()
			if t.logger != nil {
				t.logger.Warn("like toggle failed",
					zap.Int("vacation_id", vacationID),
					zap.Error(err),
				)
			}
			if onError != nil {
				onError(err.Error())
			}
		}
		done <- err
	}()
	return done
}
