package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type StatsHandler struct{}

// GetStats serves the fixed marketing counters shown on the landing page.
func (h *StatsHandler) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"stats": echo.Map{
			"clients": "2,500+",
			"works":   "3,200+",
			"parts":   "5,000+",
			"support": "24/7",
		},
	})
}
