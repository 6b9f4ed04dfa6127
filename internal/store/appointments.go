package store

import (
	"autoservice-backend/internal/models"
)

func (s *Store) CreateAppointment(userID uint, a models.Appointment) (uint, error) {
	a.ID = 0
	a.UserID = userID
	a.Status = "pending"
	if err := s.db.Create(&a).Error; err != nil {
		return 0, err
	}
	return a.ID, nil
}

// ListAppointmentsForUser orders by the stored date and time strings.
// Dates are ISO yyyy-mm-dd and times hh:mm, so the string order is
// chronological.
func (s *Store) ListAppointmentsForUser(userID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Where("user_id = ?", userID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// CancelAppointment hard-deletes the row iff it belongs to userID and is
// still pending. Anything else is a no-op reported as false.
func (s *Store) CancelAppointment(id, userID uint) (bool, error) {
	result := s.db.
		Where("id = ? AND user_id = ? AND status = ?", id, userID, "pending").
		Delete(&models.Appointment{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
