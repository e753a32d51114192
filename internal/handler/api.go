package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zanda/offday-portal/internal/model"
	"github.com/zanda/offday-portal/internal/service"
)

// APIHandler exposes the two dispatch operations as JSON endpoints so a
// non-browser front end can drive them with the same named fields as the
// form surface.
type APIHandler struct {
	svc *service.Service
}

func NewAPIHandler(svc *service.Service) *APIHandler {
	return &APIHandler{svc: svc}
}

// ----- DTOs -----

type loginReq struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type offDayReq struct {
	OffType  string  `json:"offType"`
	OffDate  *string `json:"offDate"`
	StartOff *string `json:"startOff"`
	EndOff   *string `json:"endOff"`
	Note     *string `json:"note"`
	User     string  `json:"user"`
}

// Login verifies credentials and returns the matched identity.
func (h *APIHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": service.ErrorParse.Message(),
			"error":   string(service.ErrorParse),
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	res := h.svc.Login(ctx, model.Credentials{Name: req.Name, Password: req.Password})
	if !res.OK {
		return c.JSON(statusFor(res.Kind), echo.Map{
			"message": res.Message,
			"error":   string(res.Kind),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  res.Message,
		"user_id":  res.Identity.ID,
		"username": res.Identity.Username,
	})
}

// SubmitOffDay stores one off-day request.
func (h *APIHandler) SubmitOffDay(c echo.Context) error {
	var req offDayReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": service.ErrorParse.Message(),
			"error":   string(service.ErrorParse),
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	res := h.svc.SubmitOffDay(ctx, model.OffDayForm{
		OffType:  req.OffType,
		OffDate:  req.OffDate,
		StartOff: req.StartOff,
		EndOff:   req.EndOff,
		Note:     req.Note,
		User:     req.User,
	})
	if !res.OK {
		return c.JSON(statusFor(res.Kind), echo.Map{
			"message": res.Message,
			"error":   string(res.Kind),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": res.Message})
}

// statusFor maps a failure class to its HTTP status.
func statusFor(kind service.ErrorKind) int {
	switch kind {
	case service.ErrorParse:
		return http.StatusBadRequest
	case service.ErrorNoUser:
		return http.StatusNotFound
	case service.ErrorBadPassword:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
