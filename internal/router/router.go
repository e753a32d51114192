// Package router wires the HTTP routes of the portal.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/zanda/offday-portal/internal/handler"
)

// Register attaches all routes to the Echo instance. The form surface
// lives at the root; the JSON API mirrors the same two operations under
// /v1. loginLimiter is applied to both login routes to slow credential
// guessing.
func Register(e *echo.Echo, pages *handler.PageHandler, api *handler.APIHandler, loginLimiter echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	// Server-rendered form surface.
	e.GET("/", pages.Home)
	e.POST("/login", pages.Login, loginLimiter)
	e.POST("/signout", pages.SignOut)
	e.POST("/days-off", pages.SubmitOffDay)

	// JSON API surface.
	v1 := e.Group("/v1")
	v1.POST("/auth/login", api.Login, loginLimiter)
	v1.POST("/days-off", api.SubmitOffDay)
}
