package web

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"vacation-front/internal/api"
	"vacation-front/internal/domain"
	"vacation-front/internal/prefs"
	"vacation-front/internal/session"
	"vacation-front/internal/storage"
)

// Claves del contexto de gin para el estado por request.
const (
	ctxStorage = "browser_storage"
	ctxSession = "session_store"
	ctxPrefs   = "prefs_store"
	ctxClient  = "api_client"
)

const sessionTTL = 30 * 24 * time.Hour

// Handler mantiene las dependencias compartidas de la capa web. El estado de
// sesión y preferencias se reconstruye por request desde el storage atado a la
// cookie del navegador.
type Handler struct {
	logger   *zap.Logger
	client   *api.Client
	redis    *redis.Client
	stateDir string
}

func NewHandler(logger *zap.Logger, client *api.Client, redisClient *redis.Client, stateDir string) *Handler {
	return &Handler{
		logger:   logger,
		client:   client,
		redis:    redisClient,
		stateDir: stateDir,
	}
}

// stateMiddleware deriva el storage durable del navegador y construye los
// stores de sesión y preferencias sobre él. Con redis configurado cada sesión
// vive bajo su namespace; sin redis pero con StateDir el respaldo es un
// archivo JSON por sesión; el último recurso es la cookie misma.
func (h *Handler) stateMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		var st storage.Storage
		switch {
		case h.redis != nil:
			st = storage.NewRedis(h.redis, "front:"+h.ensureSID(sess)+":", sessionTTL, h.logger)
		case h.stateDir != "":
			st = storage.NewFile(filepath.Join(h.stateDir, h.ensureSID(sess)+".json"), h.logger)
		default:
			st = &cookieStorage{sess: sess, logger: h.logger}
		}

		// El API client lee la credencial desde la ranura lateral, como
		// snapshot al inicio del request.
		tok, _ := st.Get(session.KeyToken)
		client := h.client.WithToken(tok)

		c.Set(ctxStorage, st)
		c.Set(ctxClient, client)
		c.Set(ctxSession, session.NewStore(h.logger, st, client))
		c.Set(ctxPrefs, prefs.NewStore(st))
		c.Next()
	}
}

// ensureSID garantiza un id de sesión estable en la cookie; el estado real
// vive del lado servidor bajo ese id.
func (h *Handler) ensureSID(sess sessions.Session) string {
	sid, _ := sess.Get("sid").(string)
	if sid == "" {
		sid = uuid.NewString()
		sess.Set("sid", sid)
		if err := sess.Save(); err != nil && h.logger != nil {
			h.logger.Warn("session cookie save failed", zap.Error(err))
		}
	}
	return sid
}

func currentSession(c *gin.Context) *session.Store {
	return c.MustGet(ctxSession).(*session.Store)
}

func currentPrefs(c *gin.Context) *prefs.Store {
	return c.MustGet(ctxPrefs).(*prefs.Store)
}

func currentClient(c *gin.Context) *api.Client {
	return c.MustGet(ctxClient).(*api.Client)
}

// requireAuth redirige visitas anónimas al login.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentSession(c).IsAuthenticated() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// requireAdmin redirige anónimos al login y usuarios sin rol de administrador
// al listado.
func (h *Handler) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		if !sess.IsAuthenticated() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if !sess.IsAdmin() {
			c.Redirect(http.StatusFound, "/vacations")
			c.Abort()
			return
		}
		c.Next()
	}
}

// pageData es el sobre común de todas las vistas.
type pageData struct {
	Title string
	Prefs prefs.Preferences
	User  *domain.User
	Error string
	Data  gin.H
}

func (h *Handler) render(c *gin.Context, status int, tmpl, title string, data gin.H) {
	var userPtr *domain.User
	if u, ok := currentSession(c).Current(); ok {
		userPtr = &u
	}
	if data == nil {
		data = gin.H{}
	}
	c.HTML(status, tmpl, pageData{
		Title: title,
		Prefs: currentPrefs(c).Snapshot(),
		User:  userPtr,
		Error: c.Query("error"),
		Data:  data,
	})
}

// redirectWithError vuelve a target mostrando msg como banner.
func redirectWithError(c *gin.Context, target, msg string) {
	c.Redirect(http.StatusFound, target+"?error="+queryEscape(msg))
}
