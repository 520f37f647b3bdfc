package likes

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestApply_IsPure(t *testing.T) {
	s := NewState()
	s.Counts[1] = 3

	next := Apply(s, Action{VacationID: 1, Op: OpLike})
	if !next.Liked[1] || next.Counts[1] != 4 {
		t.Fatalf("unexpected next state: %+v", next)
	}
	if s.Liked[1] || s.Counts[1] != 3 {
		t.Fatalf("Apply mutated its input: %+v", s)
	}
}

func TestInvert(t *testing.T) {
	like := Action{VacationID: 2, Op: OpLike}
	if inv := Invert(like); inv.Op != OpUnlike || inv.VacationID != 2 {
		t.Fatalf("unexpected inverse: %+v", inv)
	}
	if roundTrip := Invert(Invert(like)); roundTrip != like {
		t.Fatalf("double inverse must be identity: %+v", roundTrip)
	}
}

func TestApply_UnlikeRemovesMembership(t *testing.T) {
	s := NewState()
	s.Liked[7] = true
	s.Counts[7] = 10

	next := Apply(s, Action{VacationID: 7, Op: OpUnlike})
	if next.Liked[7] || next.Counts[7] != 9 {
		t.Fatalf("unexpected state after unlike: %+v", next)
	}
}

// mockLikesBackend bloquea cada escritura hasta que el test la libera con el
// resultado deseado.
type mockLikesBackend struct {
	calls   chan Action
	results chan error
}

func newMockLikesBackend() *mockLikesBackend {
	return &mockLikesBackend{
		calls:   make(chan Action, 8),
		results: make(chan error, 8),
	}
}

func (m *mockLikesBackend) Like(_ context.Context, userID, vacationID int) error {
	m.calls <- Action{VacationID: vacationID, Op: OpLike}
	return <-m.results
}

func (m *mockLikesBackend) Unlike(_ context.Context, userID, vacationID int) error {
	m.calls <- Action{VacationID: vacationID, Op: OpUnlike}
	return <-m.results
}

func TestToggle_AppliesBeforeBackendResponds(t *testing.T) {
	backend := newMockLikesBackend()
	toggler := NewToggler(backend, zap.NewNop())
	toggler.Seed(map[int]int{1: 5}, nil)

	done := toggler.Toggle(context.Background(), 9, 1)

	// El flip local ya es visible aunque el backend siga colgado.
	if !toggler.Liked(1) || toggler.Count(1) != 6 {
		t.Fatalf("optimistic flip not applied: liked=%v count=%d", toggler.Liked(1), toggler.Count(1))
	}

	<-backend.calls
	backend.results <- nil
	if err := <-done; err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !toggler.Liked(1) || toggler.Count(1) != 6 {
		t.Fatalf("confirmed state must keep the flip: liked=%v count=%d", toggler.Liked(1), toggler.Count(1))
	}
}

func TestToggle_RollbackOnFailure(t *testing.T) {
	backend := newMockLikesBackend()
	toggler := NewToggler(backend, zap.NewNop())
	toggler.Seed(map[int]int{1: 5}, nil)

	var gotMsg string
	toggler.SetErrorHandler(func(msg string) { gotMsg = msg })

	done := toggler.Toggle(context.Background(), 9, 1)
	<-backend.calls
	backend.results <- errors.New("backend down")
	if err := <-done; err == nil {
		t.Fatalf("expected error")
	}

	if toggler.Liked(1) || toggler.Count(1) != 5 {
		t.Fatalf("rollback missing: liked=%v count=%d", toggler.Liked(1), toggler.Count(1))
	}
	if gotMsg != "backend down" {
		t.Fatalf("error handler not invoked: %q", gotMsg)
	}
}

func TestToggle_RollbackRevertsOnlyItsOwnDelta(t *testing.T) {
	backend := newMockLikesBackend()
	toggler := NewToggler(backend, zap.NewNop())
	toggler.Seed(map[int]int{1: 5}, nil)

	// Primer toggle: like, queda en vuelo.
	doneA := toggler.Toggle(context.Background(), 9, 1)
	<-backend.calls

	// Segundo toggle sobre la misma vacación: unlike, confirma primero.
	doneB := toggler.Toggle(context.Background(), 9, 1)
	<-backend.calls
	backend.results <- nil // resuelve A o B según orden de llegada; ambas están encoladas
	backend.results <- errors.New("backend down")

	errA := <-doneA
	errB := <-doneB
	if (errA == nil) == (errB == nil) {
		t.Fatalf("expected exactly one failure, got %v / %v", errA, errB)
	}

	// Tras un éxito y una falla, sólo el delta de la llamada fallida se
	// revirtió. Los dos órdenes posibles dejan estados distintos pero ambos
	// consistentes con revertir un único delta.
	liked, count := toggler.Liked(1), toggler.Count(1)
	likeFailed := errA != nil && errB == nil
	if likeFailed {
		// like revertido, unlike confirmado: sin membresía, conteo 4.
		if liked || count != 4 {
			t.Fatalf("unexpected state: liked=%v count=%d", liked, count)
		}
	} else {
		// unlike revertido, like confirmado: con membresía, conteo 6.
		if !liked || count != 6 {
			t.Fatalf("unexpected state: liked=%v count=%d", liked, count)
		}
	}
}

func TestSeed_ResetsState(t *testing.T) {
	toggler := NewToggler(newMockLikesBackend(), zap.NewNop())
	toggler.Seed(map[int]int{1: 2, 3: 7}, []int{3})

	if toggler.Liked(1) || !toggler.Liked(3) {
		t.Fatalf("membership wrong: %v %v", toggler.Liked(1), toggler.Liked(3))
	}
	if toggler.Count(1) != 2 || toggler.Count(3) != 7 {
		t.Fatalf("counts wrong: %d %d", toggler.Count(1), toggler.Count(3))
	}

	toggler.Seed(map[int]int{1: 0}, nil)
	if toggler.Liked(3) || toggler.Count(3) != 0 {
		t.Fatalf("reseed must drop stale entries")
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	toggler := NewToggler(newMockLikesBackend(), zap.NewNop())
	toggler.Seed(map[int]int{1: 2}, []int{1})

	snap := toggler.Snapshot()
	snap.Counts[1] = 99
	delete(snap.Liked, 1)

	if toggler.Count(1) != 2 || !toggler.Liked(1) {
		t.Fatalf("snapshot aliased internal state")
	}
}
