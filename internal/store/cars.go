package store

import (
	"autoservice-backend/internal/models"
)

func (s *Store) AddUserCar(userID uint, car models.UserCar) (uint, error) {
	car.ID = 0
	car.UserID = userID
	if err := s.db.Create(&car).Error; err != nil {
		return 0, err
	}
	return car.ID, nil
}

func (s *Store) ListUserCars(userID uint) ([]models.UserCar, error) {
	var cars []models.UserCar
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&cars).Error
	if err != nil {
		return nil, err
	}
	return cars, nil
}

func (s *Store) DeleteUserCar(id, userID uint) (bool, error) {
	result := s.db.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.UserCar{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
