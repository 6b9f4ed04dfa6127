package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"autoservice-backend/internal/events"
	"autoservice-backend/internal/models"
	"autoservice-backend/internal/session"
	"autoservice-backend/internal/store"
)

type UserHandler struct {
	Store    *store.Store
	Sessions *session.Manager
	Producer *events.Producer
}

func (h *UserHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "user_events", fmt.Sprint(event["user_id"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

// CreateOrGetUser identifies the caller by phone. A known phone returns
// the stored record untouched, so a second submit with a different name
// does not rename anybody.
func (h *UserHandler) CreateOrGetUser(c echo.Context) error {
	var req struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Имя и телефон обязательны")
	}
	if req.Name == "" || req.Phone == "" {
		return fail(c, http.StatusBadRequest, "Имя и телефон обязательны")
	}

	user, err := h.Store.UpsertUserByPhone(req.Name, req.Phone, req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	if err := h.Sessions.Establish(c, user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	h.publish(c, map[string]any{
		"type":    "user_identified",
		"user_id": user.ID,
		"phone":   user.Phone,
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": user})
}

func (h *UserHandler) GetUser(c echo.Context) error {
	user, ok := h.Sessions.CurrentUser(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Пользователь не авторизован")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": user})
}

func (h *UserHandler) Logout(c echo.Context) error {
	h.Sessions.Clear(c)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Выход выполнен"})
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user, ok := h.Sessions.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Имя обязательно")
	}
	if req.Name == "" {
		return fail(c, http.StatusBadRequest, "Имя обязательно")
	}

	updated, err := h.Store.UpdateUserProfile(user.ID, req.Name, req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	if !updated {
		return fail(c, http.StatusBadRequest, "Ошибка при обновлении")
	}

	// The session is a capture, refresh it so later reads see the new
	// name and email.
	fresh := models.User{ID: user.ID, Name: req.Name, Phone: user.Phone, Email: req.Email}
	if err := h.Sessions.Establish(c, fresh); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Профиль обновлен",
		"user":    fresh,
	})
}
