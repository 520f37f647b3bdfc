package storage

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestMemoryStorage_RoundTrip(t *testing.T) {
	st := NewMemory()

	if _, ok := st.Get("missing"); ok {
		t.Fatalf("expected missing key")
	}
	st.Set("user", `{"user_id":1}`)
	if v, ok := st.Get("user"); !ok || v != `{"user_id":1}` {
		t.Fatalf("unexpected value: %q,%v", v, ok)
	}
	st.Delete("user")
	if _, ok := st.Get("user"); ok {
		t.Fatalf("delete did not remove the key")
	}
	// Borrar de nuevo es inofensivo.
	st.Delete("user")
}

func TestFileStorage_PersistsAcrossReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "front.json")

	st := NewFile(path, zap.NewNop())
	st.Set("token", "tok-1")
	st.Set("ui_language", "en")

	reloaded := NewFile(path, zap.NewNop())
	if v, ok := reloaded.Get("token"); !ok || v != "tok-1" {
		t.Fatalf("token not persisted: %q,%v", v, ok)
	}
	if v, ok := reloaded.Get("ui_language"); !ok || v != "en" {
		t.Fatalf("language not persisted: %q,%v", v, ok)
	}

	reloaded.Delete("token")
	final := NewFile(path, zap.NewNop())
	if _, ok := final.Get("token"); ok {
		t.Fatalf("delete not persisted")
	}
}

func TestFileStorage_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "front.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	st := NewFile(path, zap.NewNop())
	if _, ok := st.Get("anything"); ok {
		t.Fatalf("corrupt file must start empty")
	}
	st.Set("fresh", "value")
	if v, ok := st.Get("fresh"); !ok || v != "value" {
		t.Fatalf("storage unusable after corrupt start: %q,%v", v, ok)
	}
}

func TestFileStorage_MissingFileIsNotAnError(t *testing.T) {
	st := NewFile(filepath.Join(t.TempDir(), "never-written.json"), zap.NewNop())
	if _, ok := st.Get("anything"); ok {
		t.Fatalf("expected empty storage")
	}
}
