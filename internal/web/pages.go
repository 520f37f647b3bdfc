package web

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vacation-front/internal/domain"
	"vacation-front/internal/images"
	"vacation-front/internal/likes"
)

func (h *Handler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, "home.tmpl", "Home", nil)
}

func (h *Handler) About(c *gin.Context) {
	h.render(c, http.StatusOK, "about.tmpl", "About", nil)
}

func (h *Handler) NoMoney(c *gin.Context) {
	h.render(c, http.StatusOK, "no_money.tmpl", "Oops", nil)
}

type vacationCard struct {
	domain.Vacation
	ImageURL string
	Liked    bool
}

// Vacations arma el listado público: vacaciones ordenadas por fecha de inicio,
// imagen resuelta y membresía de like del usuario actual.
func (h *Handler) Vacations(c *gin.Context) {
	ctx := c.Request.Context()
	client := currentClient(c)

	vacations, err := client.ListVacations(ctx)
	if err != nil {
		h.render(c, http.StatusOK, "vacations.tmpl", "Vacations", gin.H{
			"LoadError": err.Error(),
		})
		return
	}
	sort.Slice(vacations, func(i, j int) bool {
		return vacations[i].StartDate < vacations[j].StartDate
	})

	liked := h.likedSet(c)
	cards := make([]vacationCard, 0, len(vacations))
	for _, v := range vacations {
		cards = append(cards, vacationCard{
			Vacation: v,
			ImageURL: images.Resolve(client.BaseURL(), v.FileName, v.CountryName),
			Liked:    liked[v.ID],
		})
	}
	h.render(c, http.StatusOK, "vacations.tmpl", "Vacations", gin.H{
		"Vacations": cards,
	})
}

// likedSet junta los likes del usuario autenticado; cualquier falla deja el
// set vacío, el listado sigue siendo visible.
func (h *Handler) likedSet(c *gin.Context) map[int]bool {
	liked := make(map[int]bool)
	user, ok := currentSession(c).Current()
	if !ok || user.IsAdmin() {
		return liked
	}
	all, err := currentClient(c).ListLikes(c.Request.Context())
	if err != nil {
		if h.logger != nil {
			h.logger.Warn("list likes failed", zap.Error(err))
		}
		return liked
	}
	for _, l := range all {
		if l.UserID == user.ID {
			liked[l.VacationID] = true
		}
	}
	return liked
}

// togglerFor construye un toggler sembrado con los conteos y la membresía
// actuales del usuario.
func (h *Handler) togglerFor(c *gin.Context, userID int) (*likes.Toggler, error) {
	ctx := c.Request.Context()
	client := currentClient(c)

	vacations, err := client.ListVacations(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[int]int, len(vacations))
	for _, v := range vacations {
		counts[v.ID] = v.Followers
	}

	var likedIDs []int
	if all, err := client.ListLikes(ctx); err == nil {
		for _, l := range all {
			if l.UserID == userID {
				likedIDs = append(likedIDs, l.VacationID)
			}
		}
	}

	t := likes.NewToggler(client, h.logger)
	t.Seed(counts, likedIDs)
	return t, nil
}

// ToggleLike maneja el botón de like del listado y espera el resultado de la
// escritura para poder mostrar el banner en el redirect.
func (h *Handler) ToggleLike(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/vacations")
		return
	}
	user, _ := currentSession(c).Current()
	if user.IsAdmin() {
		redirectWithError(c, "/vacations", "admins cannot like vacations")
		return
	}

	toggler, err := h.togglerFor(c, user.ID)
	if err != nil {
		redirectWithError(c, "/vacations", err.Error())
		return
	}
	if err := <-toggler.Toggle(c.Request.Context(), user.ID, id); err != nil {
		redirectWithError(c, "/vacations", err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/vacations")
}

// ToggleLikeJSON es la variante JSON del toggle para clientes con javascript.
func (h *Handler) ToggleLikeJSON(c *gin.Context) {
	var req struct {
		VacationID int `json:"vacation_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, _ := currentSession(c).Current()
	if user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "admins cannot like vacations"})
		return
	}

	toggler, err := h.togglerFor(c, user.ID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if err := <-toggler.Toggle(c.Request.Context(), user.ID, req.VacationID); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": err.Error(),
			"liked": toggler.Liked(req.VacationID),
			"count": toggler.Count(req.VacationID),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"liked": toggler.Liked(req.VacationID),
		"count": toggler.Count(req.VacationID),
	})
}
