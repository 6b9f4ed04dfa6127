package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null"                 json:"name"`
	Phone     string    `gorm:"unique;not null"          json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`

	Cars []UserCar `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Part struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"not null"                 json:"name"`
	Category    string `gorm:"not null"                 json:"category"`
	Brand       string `gorm:"not null"                 json:"brand"`
	Price       int    `gorm:"not null"                 json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
	InStock     bool   `gorm:"default:true"             json:"in_stock"`
}

// OrderItem is a snapshot of a catalog position taken at order creation.
// It lives inside Order.OrderData as JSON and is never a table of its own.
type OrderItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity uint   `json:"quantity"`
}

type Order struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"index;not null"           json:"user_id"`
	OrderData  string    `gorm:"not null"                 json:"-"`
	TotalPrice int       `gorm:"not null"                 json:"total_price"`
	Status     string    `gorm:"not null;default:new"     json:"status"`
	CreatedAt  time.Time `json:"created_at"`

	Items []OrderItem `gorm:"-" json:"items"`
}

type Appointment struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint      `gorm:"index;not null"           json:"user_id"`
	CarBrand        string    `gorm:"not null"                 json:"car_brand"`
	CarModel        string    `gorm:"not null"                 json:"car_model"`
	CarYear         int       `gorm:"not null"                 json:"car_year"`
	ServiceType     string    `gorm:"not null"                 json:"service_type"`
	AppointmentDate string    `gorm:"not null"                 json:"appointment_date"`
	AppointmentTime string    `gorm:"not null"                 json:"appointment_time"`
	AdditionalInfo  string    `json:"additional_info"`
	Status          string    `gorm:"not null;default:pending" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type UserCar struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"index;not null"           json:"user_id"`
	Brand        string    `gorm:"not null"                 json:"brand"`
	Model        string    `gorm:"not null"                 json:"model"`
	Year         int       `json:"year"`
	Vin          string    `json:"vin"`
	LicensePlate string    `json:"license_plate"`
	CreatedAt    time.Time `json:"created_at"`
}

type ChatMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uint     `gorm:"index"                    json:"user_id"`
	UserName  string    `json:"user_name"`
	Message   string    `gorm:"not null"                 json:"message"`
	IsSupport bool      `gorm:"default:false"            json:"is_support"`
	IsRead    bool      `gorm:"default:false"            json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
