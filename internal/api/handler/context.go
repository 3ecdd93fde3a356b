package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// bearerToken returns the raw JWT injected by the Auth middleware. An
// empty token means the middleware did not run; fail with 401 rather than
// forwarding an unauthenticated call.
func bearerToken(c echo.Context) (string, error) {
	token, _ := c.Get("token").(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return token, nil
}
