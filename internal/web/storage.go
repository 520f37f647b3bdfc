package web

import (
	"net/url"

	"github.com/gin-contrib/sessions"
	"go.uber.org/zap"
)

// cookieStorage adapta la sesión de cookie de gin al contrato Storage del
// cliente. Cada escritura guarda la cookie de inmediato, best-effort.
type cookieStorage struct {
	sess   sessions.Session
	logger *zap.Logger
}

func (s *cookieStorage) Get(key string) (string, bool) {
	v, ok := s.sess.Get(key).(string)
	return v, ok
}

func (s *cookieStorage) Set(key, value string) {
	s.sess.Set(key, value)
	s.save()
}

func (s *cookieStorage) Delete(key string) {
	s.sess.Delete(key)
	s.save()
}

func (s *cookieStorage) save() {
	if err := s.sess.Save(); err != nil && s.logger != nil {
		s.logger.Warn("session cookie save failed", zap.Error(err))
	}
}

func queryEscape(v string) string {
	return url.QueryEscape(v)
}
