package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"vacation-front/internal/api"
	"vacation-front/internal/domain"
	"vacation-front/internal/storage"
)

// Claves en el storage durable. KeyToken duplica solo la credencial para que
// capas más bajas la lean sin importar la forma completa de la sesión.
const (
	KeyRecord = "user"
	KeyToken  = "token"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// Backend es el subconjunto del API client que necesita el Session Store.
type Backend interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	Register(ctx context.Context, reg domain.Registration) (domain.User, error)
	VerifyToken(ctx context.Context) (domain.User, error)
}

// Store es el dueño exclusivo del registro de sesión persistido. Tiene dos
// estados: anónimo (current == nil) y autenticado. Existe sesión si y solo si
// existe credencial persistida; ambas se escriben y limpian juntas.
type Store struct {
	mu      sync.Mutex
	logger  *zap.Logger
	backend Backend
	storage storage.Storage
	current *domain.User
	lastErr string
}

// NewStore deriva el estado inicial del storage durable. Una ranura corrupta
// se limpia y fuerza el estado anónimo en lugar de propagar el error.
func NewStore(logger *zap.Logger, store storage.Storage, backend Backend) *Store {
	s := &Store{
		logger:  logger,
		backend: backend,
		storage: store,
	}
	s.load()
	return s
}

func (s *Store) load() {
	raw, ok := s.storage.Get(KeyRecord)
	if !ok {
		return
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		if s.logger != nil {
			s.logger.Warn("session record corrupt, clearing", zap.Error(err))
		}
		s.storage.Delete(KeyRecord)
		s.storage.Delete(KeyToken)
		return
	}
	s.current = &user
	// Asegura que la ranura de credencial refleje el registro tras recarga.
	if user.Token != "" {
		s.storage.Set(KeyToken, user.Token)
	}
}

// Login pasa a autenticado con la identidad que devuelve el backend. En falla
// guarda el mensaje recuperable y re-lanza, quedando anónimo.
func (s *Store) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.backend.Login(ctx, email, password)
	if err != nil {
		s.setErr(err)
		return domain.User{}, err
	}
	s.adopt(user)
	return user, nil
}

// Register crea la cuenta y pasa a autenticado. Si el backend no devolvió
// credencial, intenta un login de seguimiento con las mismas credenciales;
// una falla ahí no es fatal y solo se loguea.
func (s *Store) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	user, err := s.backend.Register(ctx, reg)
	if err != nil {
		s.setErr(err)
		return domain.User{}, err
	}
	s.adopt(user)

	if user.Token == "" && reg.Email != "" && reg.Password != "" {
		logged, err := s.backend.Login(ctx, reg.Email, reg.Password)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("follow-up login after register failed", zap.Error(err))
			}
			return user, nil
		}
		s.adopt(logged)
		return logged, nil
	}
	return user, nil
}

// Logout limpia registro y credencial incondicionalmente; es idempotente.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.lastErr = ""
	s.storage.Delete(KeyRecord)
	s.storage.Delete(KeyToken)
}

// Refresh re-consulta el perfil autoritativo y re-adjunta la credencial que ya
// tenía (el endpoint de verificación no devuelve una). Una falla clasificada
// como de autorización fuerza logout completo; cualquier otra deja el estado
// intacto y solo queda registrada.
func (s *Store) Refresh(ctx context.Context) (domain.User, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return domain.User{}, ErrNotAuthenticated
	}
	token := s.current.Token
	s.mu.Unlock()

	user, err := s.backend.VerifyToken(ctx)
	if err != nil {
		if api.IsAuthorization(err) {
			if s.logger != nil {
				s.logger.Warn("session refresh unauthorized, logging out", zap.Error(err))
			}
			s.Logout()
			s.setErr(err)
			return domain.User{}, err
		}
		s.setErr(err)
		return domain.User{}, err
	}

	user.Token = token
	s.adopt(user)
	return user, nil
}

// UpdateProfile mezcla campos en el registro en memoria y persistido sin
// llamada de red; sincronizar con el backend es responsabilidad del llamador.
func (s *Store) UpdateProfile(patch domain.UserPatch) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.User{}, ErrNotAuthenticated
	}
	user := *s.current
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.RoleID != nil {
		user.RoleID = *patch.RoleID
	}
	s.current = &user
	s.persistLocked(user)
	return user, nil
}

// Current devuelve un snapshot de la identidad autenticada.
func (s *Store) Current() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.User{}, false
	}
	return *s.current, true
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// IsAdmin se recalcula del rol en cada lectura; nunca se persiste aparte.
func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil && s.current.IsAdmin()
}

// Err devuelve el último mensaje de error recuperable.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Store) ClearErr() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

func (s *Store) adopt(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &user
	s.lastErr = ""
	s.persistLocked(user)
}

func (s *Store) persistLocked(user domain.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("session record marshal failed", zap.Error(err))
		}
		return
	}
	s.storage.Set(KeyRecord, string(raw))
	if user.Token != "" {
		s.storage.Set(KeyToken, user.Token)
	} else {
		s.storage.Delete(KeyToken)
	}
}

func (s *Store) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err.Error()
}
