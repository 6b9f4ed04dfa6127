package handlers

import (
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"autoservice-backend/internal/service/search"
	"autoservice-backend/internal/util"
)

type SearchHandler struct {
	ES    *elasticsearch.Client
	Index string
}

func (h *SearchHandler) SearchParts(c echo.Context) error {
	if h.ES == nil {
		return fail(c, http.StatusServiceUnavailable, "Поиск временно недоступен")
	}

	q := c.QueryParam("q")
	if q == "" {
		return fail(c, http.StatusBadRequest, "Параметр q обязателен")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Calculate(page, size)

	ctx := c.Request().Context()

	total, parts, err := search.Search(ctx, h.ES, h.Index, q, from, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "total": total, "parts": parts})
}
