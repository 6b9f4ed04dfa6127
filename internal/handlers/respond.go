package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func fail(c echo.Context, code int, message string) error {
	return c.JSON(code, echo.Map{
		"success": false,
		"message": message,
	})
}

func unauthorized(c echo.Context) error {
	return fail(c, http.StatusUnauthorized, "Необходима авторизация")
}
