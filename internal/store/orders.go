package store

import (
	"encoding/json"

	"autoservice-backend/internal/models"
)

// CreateOrder persists the order with its items frozen into a JSON blob.
// Stock is not re-checked here, the handler validates items beforehand.
func (s *Store) CreateOrder(userID uint, items []models.OrderItem, totalPrice int) (uint, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return 0, err
	}

	order := models.Order{
		UserID:     userID,
		OrderData:  string(data),
		TotalPrice: totalPrice,
		Status:     "new",
	}
	if err := s.db.Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (s *Store) ListOrdersForUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if err := json.Unmarshal([]byte(orders[i].OrderData), &orders[i].Items); err != nil {
			return nil, err
		}
	}
	return orders, nil
}
