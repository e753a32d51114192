package handler

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zanda/offday-portal/internal/model"
	"github.com/zanda/offday-portal/internal/service"
	"github.com/zanda/offday-portal/internal/session"
)

// OffTypes lists the selectable day-off categories, in display order.
var OffTypes = []string{
	"Leave Day",
	"Points Off Day",
	"Travel Day",
	"Travel and Points Off Day",
}

// PageHandler serves the server-rendered form surface. It is a two-state
// machine: without an identity cookie the login page is shown, with one
// the off-day form is shown.
type PageHandler struct {
	svc      *service.Service
	sessions *session.Manager
}

func NewPageHandler(svc *service.Service, sessions *session.Manager) *PageHandler {
	return &PageHandler{svc: svc, sessions: sessions}
}

// loginView is the data for the login page.
type loginView struct {
	Message string
	IsError bool
}

// offDayView is the data for the off-day form page. Single selects which
// date control is rendered; Form echoes submitted values back after a
// failed submission so the employee does not retype them.
type offDayView struct {
	Identity model.Identity
	Types    []string
	Single   bool
	Message  string
	IsError  bool
	Form     offDayEcho
}

type offDayEcho struct {
	OffType  string
	OffDate  string
	StartOff string
	EndOff   string
	Note     string
}

// Home renders the page matching the session state. The ?mode=single
// query toggles the single-day date picker; the toggle is purely
// presentational.
func (h *PageHandler) Home(c echo.Context) error {
	id, ok := h.sessions.Identity(c)
	if !ok {
		return c.Render(http.StatusOK, "login.html", loginView{})
	}
	return c.Render(http.StatusOK, "offday.html", offDayView{
		Identity: *id,
		Types:    OffTypes,
		Single:   c.QueryParam("mode") == "single",
	})
}

// Login handles the login form submit. Success stores the identity cookie
// and redirects back to the form page, which also drops any stale
// message; failure re-renders the login page with the error.
func (h *PageHandler) Login(c echo.Context) error {
	creds := model.Credentials{
		Name:     c.FormValue("username"),
		Password: c.FormValue("password"),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	res := h.svc.Login(ctx, creds)
	if !res.OK {
		return c.Render(http.StatusOK, "login.html", loginView{Message: res.Message, IsError: true})
	}
	h.sessions.Save(c, *res.Identity)
	return c.Redirect(http.StatusSeeOther, "/")
}

// SignOut clears the identity cookie and returns to the login page.
func (h *PageHandler) SignOut(c echo.Context) error {
	h.sessions.Clear(c)
	return c.Redirect(http.StatusSeeOther, "/")
}

// SubmitOffDay handles the off-day form submit. A successful submission
// renders a fresh form; a failed one re-renders with the error and the
// submitted values.
func (h *PageHandler) SubmitOffDay(c echo.Context) error {
	id, ok := h.sessions.Identity(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := c.Request().ParseForm(); err != nil {
		return c.Render(http.StatusOK, "offday.html", offDayView{
			Identity: *id,
			Types:    OffTypes,
			Message:  service.ErrorParse.Message(),
			IsError:  true,
		})
	}
	vals := c.Request().PostForm
	form := model.OffDayForm{
		OffType:  vals.Get("offType"),
		OffDate:  formPtr(vals, "offDate"),
		StartOff: formPtr(vals, "startOff"),
		EndOff:   formPtr(vals, "endOff"),
		Note:     formPtr(vals, "note"),
		User:     vals.Get("user"),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	res := h.svc.SubmitOffDay(ctx, form)
	view := offDayView{
		Identity: *id,
		Types:    OffTypes,
		Single:   form.OffDate != nil,
		Message:  res.Message,
		IsError:  !res.OK,
	}
	if !res.OK {
		view.Form = offDayEcho{
			OffType:  vals.Get("offType"),
			OffDate:  vals.Get("offDate"),
			StartOff: vals.Get("startOff"),
			EndOff:   vals.Get("endOff"),
			Note:     vals.Get("note"),
		}
	}
	return c.Render(http.StatusOK, "offday.html", view)
}

// formPtr distinguishes a field absent from the form (nil) from one
// present with a value, which is what selects the single-day vs range
// variant downstream.
func formPtr(vals url.Values, key string) *string {
	if !vals.Has(key) {
		return nil
	}
	v := vals.Get(key)
	return &v
}
