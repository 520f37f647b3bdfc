package web

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vacation-front/internal/config"
)

// NewRouter configura el router de gin con middlewares, sesión de cookie y el
// mapa completo de páginas. Las rutas de administración quedan detrás del
// gate de rol.
func NewRouter(logger *zap.Logger, cfg *config.Config, h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), cors.Default())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
	})
	r.Use(sessions.Sessions(cfg.SessionCookie, store))
	r.Use(h.stateMiddleware())

	r.SetHTMLTemplate(mustTemplates())

	r.GET("/", h.Home)
	r.GET("/about", h.About)
	r.GET("/no-money", h.NoMoney)

	r.GET("/login", h.LoginForm)
	r.POST("/login",
		rateLimitMiddleware(newIPLimiter(cfg.LoginRatePerMinute, cfg.LoginRateBurst)),
		h.LoginSubmit,
	)
	r.GET("/register", h.RegisterForm)
	r.POST("/register", h.RegisterSubmit)
	r.GET("/logout", h.Logout)

	r.GET("/vacations", h.Vacations)

	r.POST("/prefs", h.SetPreferences)

	authed := r.Group("", h.requireAuth())
	authed.GET("/profile", h.ProfileForm)
	authed.POST("/profile", h.ProfileSubmit)
	authed.POST("/vacations/:id/like", h.ToggleLike)
	authed.POST("/api/likes/toggle", h.ToggleLikeJSON)

	admin := r.Group("", h.requireAdmin())
	admin.GET("/admin", h.AdminPanel)
	admin.POST("/admin/users/:id/ban", h.BanUser)
	admin.POST("/admin/users/:id/unban", h.UnbanUser)
	admin.POST("/admin/users/:id/role", h.SetUserRole)
	admin.POST("/admin/users/:id/delete", h.DeleteUser)
	admin.GET("/vacations/add", h.AddVacationForm)
	admin.POST("/vacations/add", h.AddVacationSubmit)
	admin.GET("/vacations/edit/:id", h.EditVacationForm)
	admin.POST("/vacations/edit/:id", h.EditVacationSubmit)
	admin.POST("/vacations/:id/delete", h.DeleteVacation)

	return r
}
