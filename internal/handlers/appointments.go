package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"autoservice-backend/internal/events"
	"autoservice-backend/internal/models"
	"autoservice-backend/internal/session"
	"autoservice-backend/internal/store"
)

type AppointmentHandler struct {
	Store    *store.Store
	Sessions *session.Manager
	Producer *events.Producer
}

func (h *AppointmentHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "appointment_events", fmt.Sprint(event["user_id"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *AppointmentHandler) CreateAppointment(c echo.Context) error {
	user, ok := h.Sessions.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req struct {
		CarBrand       string `json:"carBrand"`
		CarModel       string `json:"carModel"`
		CarYear        int    `json:"carYear"`
		ServiceType    string `json:"serviceType"`
		Date           string `json:"date"`
		Time           string `json:"time"`
		AdditionalInfo string `json:"additionalInfo"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Некорректные данные записи")
	}

	required := []struct {
		field string
		empty bool
	}{
		{"carBrand", req.CarBrand == ""},
		{"carModel", req.CarModel == ""},
		{"carYear", req.CarYear == 0},
		{"serviceType", req.ServiceType == ""},
		{"date", req.Date == ""},
		{"time", req.Time == ""},
	}
	for _, f := range required {
		if f.empty {
			return fail(c, http.StatusBadRequest, fmt.Sprintf("Поле %s обязательно", f.field))
		}
	}

	appointmentID, err := h.Store.CreateAppointment(user.ID, models.Appointment{
		CarBrand:        req.CarBrand,
		CarModel:        req.CarModel,
		CarYear:         req.CarYear,
		ServiceType:     req.ServiceType,
		AppointmentDate: req.Date,
		AppointmentTime: req.Time,
		AdditionalInfo:  req.AdditionalInfo,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	h.publish(c, map[string]any{
		"type":           "appointment_created",
		"user_id":        user.ID,
		"appointment_id": appointmentID,
		"date":           req.Date,
		"time":           req.Time,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success":        true,
		"message":        "Запись успешно создана",
		"appointment_id": appointmentID,
	})
}

func (h *AppointmentHandler) GetAppointments(c echo.Context) error {
	user, ok := h.Sessions.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	appointments, err := h.Store.ListAppointmentsForUser(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "appointments": appointments})
}

func (h *AppointmentHandler) CancelAppointment(c echo.Context) error {
	user, ok := h.Sessions.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "Не удалось отменить запись")
	}

	cancelled, err := h.Store.CancelAppointment(uint(id), user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	if !cancelled {
		return fail(c, http.StatusBadRequest, "Не удалось отменить запись")
	}

	h.publish(c, map[string]any{
		"type":           "appointment_cancelled",
		"user_id":        user.ID,
		"appointment_id": id,
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Запись отменена"})
}
