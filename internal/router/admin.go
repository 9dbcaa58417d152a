package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/veslaw/casefolio/internal/apperr"
	"github.com/veslaw/casefolio/internal/auth"
)

type AdminRouter struct {
	e    *echo.Echo
	gate *auth.Gate
}

func NewAdminRouter(e *echo.Echo, gate *auth.Gate) *AdminRouter {
	return &AdminRouter{e: e, gate: gate}
}

func (r *AdminRouter) Bind() {
	r.e.POST("/api/admin/login", r.loginHandler)
}

type loginRequest struct {
	Passcode string `json:"passcode"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (r *AdminRouter) loginHandler(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid login payload", err)
	}

	token, ok := r.gate.Authenticate(req.Passcode)
	if !ok {
		return apperr.NewUnauthorized("invalid passcode")
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token})
}
