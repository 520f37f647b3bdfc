package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vacation-front/internal/domain"
	"vacation-front/internal/validate"
)

func (h *Handler) LoginForm(c *gin.Context) {
	if currentSession(c).IsAuthenticated() {
		c.Redirect(http.StatusFound, "/vacations")
		return
	}
	h.render(c, http.StatusOK, "login.tmpl", "Login", nil)
}

// LoginSubmit autentica contra el backend vía el Session Store. El mensaje de
// falla (credenciales inválidas, usuario restringido) pasa verbatim al banner.
func (h *Handler) LoginSubmit(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("user_email"))
	password := strings.TrimSpace(c.PostForm("user_password"))
	if email == "" || password == "" {
		redirectWithError(c, "/login", "email and password are required")
		return
	}

	if _, err := currentSession(c).Login(c.Request.Context(), email, password); err != nil {
		redirectWithError(c, "/login", err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/vacations")
}

func (h *Handler) RegisterForm(c *gin.Context) {
	if currentSession(c).IsAuthenticated() {
		c.Redirect(http.StatusFound, "/vacations")
		return
	}
	h.render(c, http.StatusOK, "register.tmpl", "Register", nil)
}

// RegisterSubmit valida el formulario antes de despachar cualquier request,
// consulta disponibilidad del mail y delega el alta en el Session Store.
func (h *Handler) RegisterSubmit(c *gin.Context) {
	reg := domain.Registration{
		FirstName: strings.TrimSpace(c.PostForm("first_name")),
		LastName:  strings.TrimSpace(c.PostForm("last_name")),
		Email:     strings.TrimSpace(c.PostForm("user_email")),
		Password:  strings.TrimSpace(c.PostForm("user_password")),
	}
	if err := validate.Registration(validate.RegistrationInput{
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Email:     reg.Email,
		Password:  reg.Password,
	}); err != nil {
		redirectWithError(c, "/register", err.Error())
		return
	}

	if taken, err := currentClient(c).CheckEmail(c.Request.Context(), reg.Email); err == nil && taken {
		redirectWithError(c, "/register", "email already exists")
		return
	} else if err != nil && h.logger != nil {
		h.logger.Warn("check email failed", zap.Error(err))
	}

	if _, err := currentSession(c).Register(c.Request.Context(), reg); err != nil {
		redirectWithError(c, "/register", err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/vacations")
}

// Logout limpia la sesión incondicionalmente; es seguro repetirlo.
func (h *Handler) Logout(c *gin.Context) {
	currentSession(c).Logout()
	c.Redirect(http.StatusFound, "/")
}

// ProfileForm re-consulta el perfil autoritativo antes de renderizar. Una
// credencial vencida fuerza logout; cualquier otra falla muestra el perfil
// cacheado.
func (h *Handler) ProfileForm(c *gin.Context) {
	sess := currentSession(c)
	if _, err := sess.Refresh(c.Request.Context()); err != nil {
		if !sess.IsAuthenticated() {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		if h.logger != nil {
			h.logger.Warn("profile refresh failed", zap.Error(err))
		}
	}
	h.render(c, http.StatusOK, "profile.tmpl", "Profile", nil)
}

// ProfileSubmit aplica el parche local en el Session Store y sincroniza el
// backend con la misma operación; el parche local queda aunque el backend
// falle, igual que en el cliente original.
func (h *Handler) ProfileSubmit(c *gin.Context) {
	patch := domain.UserPatch{}
	if v := strings.TrimSpace(c.PostForm("first_name")); v != "" {
		patch.FirstName = &v
	}
	if v := strings.TrimSpace(c.PostForm("last_name")); v != "" {
		patch.LastName = &v
	}
	if v := strings.TrimSpace(c.PostForm("user_email")); v != "" {
		patch.Email = &v
	}

	sess := currentSession(c)
	user, err := sess.UpdateProfile(patch)
	if err != nil {
		redirectWithError(c, "/profile", err.Error())
		return
	}
	if err := currentClient(c).UpdateUser(c.Request.Context(), user.ID, patch); err != nil {
		redirectWithError(c, "/profile", err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/profile")
}
