package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"autoservice-backend/internal/models"
	"autoservice-backend/internal/session"
	"autoservice-backend/internal/store"
)

type CarHandler struct {
	Store    *store.Store
	Sessions *session.Manager
}

func (h *CarHandler) GetUserCars(c echo.Context) error {
	user, ok := h.Sessions.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	cars, err := h.Store.ListUserCars(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "cars": cars})
}

func (h *CarHandler) AddUserCar(c echo.Context) error {
	user, ok := h.Sessions.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req struct {
		Brand        string `json:"brand"`
		Model        string `json:"model"`
		Year         int    `json:"year"`
		Vin          string `json:"vin"`
		LicensePlate string `json:"license_plate"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Поле brand обязательно")
	}
	if req.Brand == "" {
		return fail(c, http.StatusBadRequest, "Поле brand обязательно")
	}
	if req.Model == "" {
		return fail(c, http.StatusBadRequest, "Поле model обязательно")
	}

	carID, err := h.Store.AddUserCar(user.ID, models.UserCar{
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Vin:          req.Vin,
		LicensePlate: req.LicensePlate,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Автомобиль добавлен",
		"car_id":  carID,
	})
}

func (h *CarHandler) DeleteUserCar(c echo.Context) error {
	user, ok := h.Sessions.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusNotFound, "Автомобиль не найден")
	}

	deleted, err := h.Store.DeleteUserCar(uint(id), user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	if !deleted {
		return fail(c, http.StatusNotFound, "Автомобиль не найден")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Автомобиль удален"})
}
