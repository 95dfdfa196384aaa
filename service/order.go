package service

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"shopapi/models"
)

// ErrAllFieldsRequired reports an order payload with a missing or empty
// required field. The message deliberately names no field.
var ErrAllFieldsRequired = errors.New("all fields are required")

// CreateOrderInput carries the order-placement payload. Items distinguishes
// absent (nil) from present-but-empty (non-nil, zero length); an empty list
// passes validation.
type CreateOrderInput struct {
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Email       string             `json:"email"`
	PhoneNumber string             `json:"phoneNumber"`
	City        string             `json:"city"`
	Address     string             `json:"address"`
	Items       []models.OrderItem `json:"items"`
	TotalPrice  float64            `json:"totalPrice"`
}

// OrderService owns Order records. Orders have no update operation: once
// placed, an order can only be read or deleted.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrder validates that every required field is present, then persists
// the order and returns it with its generated id. An empty string or a zero
// totalPrice counts as absent. The items are stored as opaque JSON: product
// ids are not resolved and totalPrice is trusted as submitted.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.PhoneNumber == "" ||
		in.City == "" || in.Address == "" || in.Items == nil || in.TotalPrice == 0 {
		return nil, ErrAllFieldsRequired
	}

	items, err := json.Marshal(in.Items)
	if err != nil {
		return nil, err
	}
	order := models.Order{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		City:        in.City,
		Address:     in.Address,
		Items:       datatypes.JSON(items),
		TotalPrice:  in.TotalPrice,
	}
	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	if err := s.db.WithContext(ctx).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder returns gorm.ErrRecordNotFound when no order has the id.
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteOrder removes the order permanently. Deleting an id that does not
// exist, or was already deleted, reports gorm.ErrRecordNotFound.
func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&order).Error
}
