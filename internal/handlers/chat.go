package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"autoservice-backend/internal/chat"
	"autoservice-backend/internal/events"
	"autoservice-backend/internal/session"
	"autoservice-backend/internal/store"
)

const (
	guestName   = "Гость"
	supportName = "Система"
)

type ChatHandler struct {
	Store    *store.Store
	Sessions *session.Manager
	Producer *events.Producer
}

func (h *ChatHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "chat_events", fmt.Sprint(event["user_id"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

// SendMessage stores the incoming message and, when a keyword matches,
// a synthesized support reply right behind it.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Сообщение не может быть пустым")
	}
	if req.Message == "" {
		return fail(c, http.StatusBadRequest, "Сообщение не может быть пустым")
	}

	var userID *uint
	userName := guestName
	if user, ok := h.Sessions.CurrentUser(c); ok {
		id := user.ID
		userID = &id
		userName = user.Name
	}

	if _, err := h.Store.SaveChatMessage(userID, userName, req.Message, false); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	h.publish(c, map[string]any{
		"type":    "chat_message",
		"user_id": userID,
		"name":    userName,
	})

	reply, ok := chat.Respond(req.Message)
	if !ok {
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": "Сообщение отправлено",
		})
	}

	if _, err := h.Store.SaveChatMessage(userID, supportName, reply, true); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"message":       "Сообщение отправлено",
		"auto_response": reply,
	})
}

// GetHistory returns the caller's messages oldest first and marks the
// support ones read as a side effect. Guests get an empty list.
func (h *ChatHandler) GetHistory(c echo.Context) error {
	user, ok := h.Sessions.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusOK, echo.Map{"success": true, "messages": []struct{}{}})
	}

	messages, err := h.Store.ListChatHistory(user.ID, 0)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	if len(messages) > 0 {
		if _, err := h.Store.MarkSupportMessagesRead(user.ID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "messages": messages})
}

func (h *ChatHandler) GetUnreadCount(c echo.Context) error {
	user, ok := h.Sessions.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusOK, echo.Map{"success": true, "count": 0})
	}

	count, err := h.Store.CountUnreadSupportMessages(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "count": count})
}

func (h *ChatHandler) MarkRead(c echo.Context) error {
	if user, ok := h.Sessions.CurrentUser(c); ok {
		if _, err := h.Store.MarkSupportMessagesRead(user.ID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
