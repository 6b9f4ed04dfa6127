package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"autoservice-backend/internal/store"
)

type PartsHandler struct {
	Store *store.Store
}

func (h *PartsHandler) GetParts(c echo.Context) error {
	parts, err := h.Store.ListParts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "parts": parts})
}

func (h *PartsHandler) GetPart(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusNotFound, "Запчасть не найдена")
	}

	part, err := h.Store.GetPart(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	if part == nil {
		return fail(c, http.StatusNotFound, "Запчасть не найдена")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "part": part})
}
