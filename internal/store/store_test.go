package store

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"autoservice-backend/internal/models"
)

func newTestStore(t *testing.T) *Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Part{},
		&models.Order{},
		&models.Appointment{},
		&models.UserCar{},
		&models.ChatMessage{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return New(db)
}

func TestUpsertUserByPhone(t *testing.T) {
	s := newTestStore(t)

	first, err := s.UpsertUserByPhone("Ivan", "+70001112233", "ivan@mail.ru")
	require.NoError(t, err)
	require.Equal(t, uint(1), first.ID)
	require.Equal(t, "Ivan", first.Name)

	second, err := s.UpsertUserByPhone("Petr", "+70001112233", "petr@mail.ru")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "Ivan", second.Name)
	require.Equal(t, "ivan@mail.ru", second.Email)
}

func TestUpdateUserProfile(t *testing.T) {
	s := newTestStore(t)

	user, err := s.UpsertUserByPhone("Ivan", "+70001112233", "")
	require.NoError(t, err)

	ok, err := s.UpdateUserProfile(user.ID, "Ivan Petrov", "new@mail.ru")
	require.NoError(t, err)
	require.True(t, ok)

	updated, err := s.UpsertUserByPhone("whatever", "+70001112233", "")
	require.NoError(t, err)
	require.Equal(t, "Ivan Petrov", updated.Name)
	require.Equal(t, "new@mail.ru", updated.Email)

	ok, err = s.UpdateUserProfile(999, "Nobody", "")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSeedParts(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SeedParts())

	parts, err := s.ListParts()
	require.NoError(t, err)
	require.Len(t, parts, 18)
	for i := 1; i < len(parts); i++ {
		require.Greater(t, parts[i].ID, parts[i-1].ID)
	}

	// a second run must not duplicate the catalog
	require.NoError(t, s.SeedParts())
	parts, err = s.ListParts()
	require.NoError(t, err)
	require.Len(t, parts, 18)
}

func TestGetPart(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SeedParts())

	part, err := s.GetPart(1)
	require.NoError(t, err)
	require.NotNil(t, part)
	require.Equal(t, 1, part.ID)

	missing, err := s.GetPart(99999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestOrderRoundTrip(t *testing.T) {
	s := newTestStore(t)

	items := []models.OrderItem{
		{ID: 1, Name: "Масло моторное 5W-40", Price: 2500, Quantity: 2},
		{ID: 4, Name: "Тормозные колодки передние", Price: 3200, Quantity: 1},
	}

	orderID, err := s.CreateOrder(1, items, 8200)
	require.NoError(t, err)
	require.Equal(t, uint(1), orderID)

	orders, err := s.ListOrdersForUser(1)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, items, orders[0].Items)
	require.Equal(t, 8200, orders[0].TotalPrice)
	require.Equal(t, "new", orders[0].Status)
}

func TestListOrdersNewestFirst(t *testing.T) {
	s := newTestStore(t)

	first, err := s.CreateOrder(1, []models.OrderItem{{ID: 1, Quantity: 1}}, 100)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := s.CreateOrder(1, []models.OrderItem{{ID: 2, Quantity: 1}}, 200)
	require.NoError(t, err)

	orders, err := s.ListOrdersForUser(1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, second, orders[0].ID)
	require.Equal(t, first, orders[1].ID)
}

func makeAppointment(date, tm string) models.Appointment {
	return models.Appointment{
		CarBrand:        "Toyota",
		CarModel:        "Camry",
		CarYear:         2020,
		ServiceType:     "oil",
		AppointmentDate: date,
		AppointmentTime: tm,
	}
}

func TestListAppointmentsOrdering(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateAppointment(1, makeAppointment("2026-09-01", "10:00"))
	require.NoError(t, err)
	_, err = s.CreateAppointment(1, makeAppointment("2026-09-02", "09:00"))
	require.NoError(t, err)
	_, err = s.CreateAppointment(1, makeAppointment("2026-09-01", "15:30"))
	require.NoError(t, err)

	appointments, err := s.ListAppointmentsForUser(1)
	require.NoError(t, err)
	require.Len(t, appointments, 3)
	require.Equal(t, "2026-09-02", appointments[0].AppointmentDate)
	require.Equal(t, "15:30", appointments[1].AppointmentTime)
	require.Equal(t, "10:00", appointments[2].AppointmentTime)
}

func TestCancelAppointment(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateAppointment(1, makeAppointment("2026-09-01", "10:00"))
	require.NoError(t, err)

	// wrong owner: row must survive
	ok, err := s.CancelAppointment(id, 2)
	require.NoError(t, err)
	require.False(t, ok)

	appointments, err := s.ListAppointmentsForUser(1)
	require.NoError(t, err)
	require.Len(t, appointments, 1)

	// non-pending: row must survive
	require.NoError(t, s.db.Model(&models.Appointment{}).Where("id = ?", id).Update("status", "confirmed").Error)
	ok, err = s.CancelAppointment(id, 1)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.db.Model(&models.Appointment{}).Where("id = ?", id).Update("status", "pending").Error)
	ok, err = s.CancelAppointment(id, 1)
	require.NoError(t, err)
	require.True(t, ok)

	appointments, err = s.ListAppointmentsForUser(1)
	require.NoError(t, err)
	require.Len(t, appointments, 0)
}

func TestUserCars(t *testing.T) {
	s := newTestStore(t)

	first, err := s.AddUserCar(1, models.UserCar{Brand: "Toyota", Model: "Camry", Year: 2018})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := s.AddUserCar(1, models.UserCar{Brand: "Nissan", Model: "Qashqai", Year: 2021})
	require.NoError(t, err)

	cars, err := s.ListUserCars(1)
	require.NoError(t, err)
	require.Len(t, cars, 2)
	require.Equal(t, second, cars[0].ID)

	ok, err := s.DeleteUserCar(first, 2)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = s.DeleteUserCar(first, 1)
	require.NoError(t, err)
	require.True(t, ok)

	cars, err = s.ListUserCars(1)
	require.NoError(t, err)
	require.Len(t, cars, 1)
}

func TestChatMessages(t *testing.T) {
	s := newTestStore(t)

	userID := uint(1)

	_, err := s.SaveChatMessage(nil, "Гость", "Привет", false)
	require.NoError(t, err)
	_, err = s.SaveChatMessage(&userID, "Ivan", "Когда вы работаете?", false)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = s.SaveChatMessage(&userID, "Система", "Пн-Пт 9:00-20:00", true)
	require.NoError(t, err)

	history, err := s.ListChatHistory(userID, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, "Когда вы работаете?", history[0].Message)
	require.True(t, history[1].IsSupport)

	count, err := s.CountUnreadSupportMessages(userID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	affected, err := s.MarkSupportMessagesRead(userID)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	count, err = s.CountUnreadSupportMessages(userID)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)

	// already-read rows are not touched again
	affected, err = s.MarkSupportMessagesRead(userID)
	require.NoError(t, err)
	require.Equal(t, int64(0), affected)
}

func TestChatHistoryLimit(t *testing.T) {
	s := newTestStore(t)

	userID := uint(1)
	for i := 0; i < 60; i++ {
		_, err := s.SaveChatMessage(&userID, "Ivan", "msg", false)
		require.NoError(t, err)
	}

	history, err := s.ListChatHistory(userID, 0)
	require.NoError(t, err)
	require.Len(t, history, 50)

	history, err = s.ListChatHistory(userID, 10)
	require.NoError(t, err)
	require.Len(t, history, 10)
}
