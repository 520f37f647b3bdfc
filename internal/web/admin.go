package web

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vacation-front/internal/api"
	"vacation-front/internal/domain"
	"vacation-front/internal/validate"
)

type adminUserRow struct {
	domain.User
	Banned  bool
	BanInfo *domain.Ban
}

// AdminPanel lista los usuarios con su estado de restricción.
func (h *Handler) AdminPanel(c *gin.Context) {
	ctx := c.Request.Context()
	client := currentClient(c)

	users, err := client.ListUsers(ctx)
	if err != nil {
		h.render(c, http.StatusOK, "admin.tmpl", "Admin", gin.H{"LoadError": err.Error()})
		return
	}

	rows := make([]adminUserRow, 0, len(users))
	for _, u := range users {
		row := adminUserRow{User: u}
		if !u.IsAdmin() {
			if status, err := client.CheckBan(ctx, u.ID); err == nil {
				row.Banned = status.Banned
				row.BanInfo = status.Info
			} else if h.logger != nil {
				h.logger.Warn("check ban failed", zap.Int("user_id", u.ID), zap.Error(err))
			}
		}
		rows = append(rows, row)
	}
	h.render(c, http.StatusOK, "admin.tmpl", "Admin", gin.H{"Users": rows})
}

func (h *Handler) BanUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	days, _ := strconv.Atoi(c.PostForm("days"))
	reason := strings.TrimSpace(c.PostForm("reason"))
	if days <= 0 {
		redirectWithError(c, "/admin", "ban days must be greater than zero")
		return
	}
	if _, err := currentClient(c).Ban(c.Request.Context(), id, reason, days); err != nil {
		redirectWithError(c, "/admin", err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

func (h *Handler) UnbanUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	if err := currentClient(c).Unban(c.Request.Context(), id); err != nil {
		redirectWithError(c, "/admin", err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// SetUserRole cambia el rol vía el mismo patch parcial de PUT /users/:id.
func (h *Handler) SetUserRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	role, err := strconv.Atoi(c.PostForm("role_id"))
	if err != nil || (role != domain.RoleAdmin && role != domain.RoleUser) {
		redirectWithError(c, "/admin", "role must be 1 or 2")
		return
	}
	patch := domain.UserPatch{RoleID: &role}
	if err := currentClient(c).UpdateUser(c.Request.Context(), id, patch); err != nil {
		redirectWithError(c, "/admin", err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	if err := currentClient(c).DeleteUser(c.Request.Context(), id); err != nil {
		redirectWithError(c, "/admin", err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

func (h *Handler) AddVacationForm(c *gin.Context) {
	h.renderVacationForm(c, "/vacations/add", domain.Vacation{}, false)
}

func (h *Handler) EditVacationForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/vacations")
		return
	}
	vacation, err := currentClient(c).GetVacation(c.Request.Context(), id)
	if err != nil {
		redirectWithError(c, "/vacations", err.Error())
		return
	}
	h.renderVacationForm(c, "/vacations/edit/"+c.Param("id"), vacation, true)
}

func (h *Handler) renderVacationForm(c *gin.Context, action string, vacation domain.Vacation, editing bool) {
	countries, err := currentClient(c).ListCountries(c.Request.Context())
	if err != nil && h.logger != nil {
		h.logger.Warn("list countries failed", zap.Error(err))
	}
	title := "Add vacation"
	if editing {
		title = "Edit vacation"
	}
	h.render(c, http.StatusOK, "vacation_form.tmpl", title, gin.H{
		"Action":    action,
		"Vacation":  vacation,
		"Countries": countries,
		"Editing":   editing,
	})
}

// AddVacationSubmit valida el formulario completo antes de emitir cualquier
// request y después publica el alta multipart.
func (h *Handler) AddVacationSubmit(c *gin.Context) {
	form, err := h.vacationFormFrom(c, false)
	if err != nil {
		redirectWithError(c, "/vacations/add", err.Error())
		return
	}
	if _, err := currentClient(c).CreateVacation(c.Request.Context(), form); err != nil {
		redirectWithError(c, "/vacations/add", err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/vacations")
}

func (h *Handler) EditVacationSubmit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/vacations")
		return
	}
	form, err := h.vacationFormFrom(c, true)
	if err != nil {
		redirectWithError(c, "/vacations/edit/"+c.Param("id"), err.Error())
		return
	}
	if err := currentClient(c).UpdateVacation(c.Request.Context(), id, form); err != nil {
		redirectWithError(c, "/vacations/edit/"+c.Param("id"), err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/vacations")
}

func (h *Handler) DeleteVacation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/vacations")
		return
	}
	admin, _ := currentSession(c).Current()
	if err := currentClient(c).DeleteVacation(c.Request.Context(), id, admin.ID); err != nil {
		redirectWithError(c, "/vacations", err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/vacations")
}

// vacationFormFrom arma y valida el formulario multipart. La validación corre
// entera del lado cliente: un formulario inválido no genera ningún request.
func (h *Handler) vacationFormFrom(c *gin.Context, editing bool) (api.VacationForm, error) {
	countryID, _ := strconv.Atoi(c.PostForm("country_id"))
	price, _ := strconv.ParseFloat(c.PostForm("vacation_price"), 64)

	form := api.VacationForm{
		CountryID:   countryID,
		CountryName: strings.TrimSpace(c.PostForm("country_name")),
		Description: strings.TrimSpace(c.PostForm("vacation_description")),
		StartDate:   c.PostForm("vacation_start"),
		EndDate:     c.PostForm("vacation_ends"),
		Price:       price,
		Currency:    strings.ToUpper(strings.TrimSpace(c.PostForm("currency"))),
		RemoveImage: c.PostForm("remove_image") == "true",
	}
	admin, _ := currentSession(c).Current()
	form.AdminUserID = admin.ID

	if err := validate.Vacation(validate.VacationInput{
		CountryID:   form.CountryID,
		CountryName: form.CountryName,
		Description: form.Description,
		StartDate:   form.StartDate,
		EndDate:     form.EndDate,
		Price:       form.Price,
		AllowPast:   editing,
	}); err != nil {
		return api.VacationForm{}, err
	}

	if fileHeader, err := c.FormFile("file"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return api.VacationForm{}, err
		}
		var buf bytes.Buffer
		_, copyErr := io.Copy(&buf, file)
		file.Close()
		if copyErr != nil {
			return api.VacationForm{}, copyErr
		}
		form.FileName = fileHeader.Filename
		form.File = &buf
	}
	return form, nil
}
