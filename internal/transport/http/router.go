package httpserver

import (
	"github.com/labstack/echo/v4"

	"autoservice-backend/internal/handlers"
	"autoservice-backend/internal/store"
)

type Deps struct {
	Store              *store.Store
	PartsHandler       *handlers.PartsHandler
	UserHandler        *handlers.UserHandler
	OrderHandler       *handlers.OrderHandler
	AppointmentHandler *handlers.AppointmentHandler
	CarHandler         *handlers.CarHandler
	ChatHandler        *handlers.ChatHandler
	StatsHandler       *handlers.StatsHandler
	SearchHandler      *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	api := e.Group("/api")

	api.GET("/parts", d.PartsHandler.GetParts)
	api.GET("/parts/search", d.SearchHandler.SearchParts)
	api.GET("/parts/:id", d.PartsHandler.GetPart)

	api.POST("/user", d.UserHandler.CreateOrGetUser)
	api.GET("/user", d.UserHandler.GetUser)
	api.POST("/user/logout", d.UserHandler.Logout)
	api.PUT("/user/profile", d.UserHandler.UpdateProfile)

	api.POST("/orders", d.OrderHandler.CreateOrder)
	api.GET("/orders", d.OrderHandler.GetOrders)

	api.POST("/appointments", d.AppointmentHandler.CreateAppointment)
	api.GET("/appointments", d.AppointmentHandler.GetAppointments)
	api.DELETE("/appointments/:id", d.AppointmentHandler.CancelAppointment)

	api.GET("/user/cars", d.CarHandler.GetUserCars)
	api.POST("/user/cars", d.CarHandler.AddUserCar)
	api.DELETE("/user/cars/:id", d.CarHandler.DeleteUserCar)

	api.POST("/chat/messages", d.ChatHandler.SendMessage)
	api.GET("/chat/history", d.ChatHandler.GetHistory)
	api.GET("/chat/unread", d.ChatHandler.GetUnreadCount)
	api.POST("/chat/read", d.ChatHandler.MarkRead)

	api.GET("/stats", d.StatsHandler.GetStats)
}
