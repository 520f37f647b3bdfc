package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Storage es la ranura durable clave/valor del cliente, el equivalente del
// localStorage del navegador. Las implementaciones son best-effort: una falla
// de lectura o escritura nunca se propaga al llamador.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

type memoryStorage struct {
	mu    sync.Mutex
	items map[string]string
}

// NewMemory crea un storage en memoria, útil para tests y sesiones efímeras.
func NewMemory() Storage {
	return &memoryStorage{items: make(map[string]string)}
}

func (s *memoryStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[key]
	return v, ok
}

func (s *memoryStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
}

func (s *memoryStorage) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}

type fileStorage struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
	items  map[string]string
}

// NewFile crea un storage respaldado por un único archivo JSON. Un archivo
// ilegible o corrupto arranca vacío en lugar de fallar.
func NewFile(path string, logger *zap.Logger) Storage {
	s := &fileStorage{
		path:   path,
		logger: logger,
		items:  make(map[string]string),
	}
	s.load()
	return s
}

func (s *fileStorage) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) && s.logger != nil {
			s.logger.Warn("storage file read failed", zap.String("path", s.path), zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal(raw, &s.items); err != nil {
		if s.logger != nil {
			s.logger.Warn("storage file corrupt, starting empty", zap.String("path", s.path), zap.Error(err))
		}
		s.items = make(map[string]string)
	}
}

func (s *fileStorage) persist() {
	raw, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		if s.logger != nil {
			s.logger.Warn("storage dir create failed", zap.Error(err))
		}
		return
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil && s.logger != nil {
		s.logger.Warn("storage file write failed", zap.String("path", s.path), zap.Error(err))
	}
}

func (s *fileStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[key]
	return v, ok
}

func (s *fileStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	s.persist()
}

func (s *fileStorage) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	s.persist()
}
