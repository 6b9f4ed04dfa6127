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

type OrderHandler struct {
	Store    *store.Store
	Sessions *session.Manager
	Producer *events.Producer
}

func (h *OrderHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "order_events", fmt.Sprint(event["user_id"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	user, ok := h.Sessions.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req struct {
		Items      []models.OrderItem `json:"items"`
		TotalPrice int                `json:"total_price"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Корзина пуста")
	}
	if len(req.Items) == 0 {
		return fail(c, http.StatusBadRequest, "Корзина пуста")
	}

	// Every referenced part must still exist; prices in the payload are
	// kept as the frozen snapshot.
	for _, item := range req.Items {
		part, err := h.Store.GetPart(item.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err)
		}
		if part == nil {
			return fail(c, http.StatusBadRequest, fmt.Sprintf("Товар %s не найден", item.Name))
		}
	}

	orderID, err := h.Store.CreateOrder(user.ID, req.Items, req.TotalPrice)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	h.publish(c, map[string]any{
		"type":     "order_created",
		"user_id":  user.ID,
		"order_id": orderID,
		"total":    req.TotalPrice,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"message":  "Заказ успешно создан",
		"order_id": orderID,
	})
}

func (h *OrderHandler) GetOrders(c echo.Context) error {
	user, ok := h.Sessions.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	orders, err := h.Store.ListOrdersForUser(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "orders": orders})
}
