package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetPreferences aplica los cambios de idioma, tema y moneda que traiga el
// formulario y vuelve a la página de origen. Valores desconocidos se ignoran
// dentro del Preferences Store.
func (h *Handler) SetPreferences(c *gin.Context) {
	p := currentPrefs(c)
	if v := c.PostForm("language"); v != "" {
		p.SetLanguage(v)
	}
	if v := c.PostForm("theme"); v != "" {
		p.SetTheme(v)
	}
	if v := c.PostForm("currency"); v != "" {
		p.SetCurrency(v)
	}

	target := c.PostForm("return_to")
	if target == "" || target[0] != '/' {
		target = "/"
	}
	c.Redirect(http.StatusFound, target)
}
