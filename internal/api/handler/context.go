package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trw5157-hue/garage/internal/core/domain"
)

// currentUser extracts the profile injected by the Auth middleware. Its
// presence proves the middleware ran; without it the route is misconfigured
// and the request is rejected rather than served unscoped.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
