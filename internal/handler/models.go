package handler

import (
	"time"

	"github.com/Juangrcode/sk-cleanup-orders/internal/entities"
)

// Order представляет заказ в ответах API
type Order struct {
	ID           string    `json:"id"`
	OrderNumber  int       `json:"order_number"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	PhoneNumber  string    `json:"phone_number"`
	Description  string    `json:"description"`
	DeliveryDate time.Time `json:"delivery_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrderPayload тело запроса на создание или обновление заказа.
// id, order_number и created_at всегда вычисляются сервером.
type OrderPayload struct {
	UserID       string    `json:"user_id" validate:"required"`
	Name         string    `json:"name" validate:"required,min=3,max=50"`
	PhoneNumber  string    `json:"phone_number" validate:"required,min=9,max=12"`
	Description  string    `json:"description" validate:"required,min=10,max=200"`
	DeliveryDate time.Time `json:"delivery_date" validate:"required"`
	Status       string    `json:"status,omitempty" validate:"omitempty,oneof=received inProcess finish"`
}

// DeleteResponse подтверждение удаления заказа
type DeleteResponse struct {
	OrderID string `json:"order_id"`
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		UserID:       o.UserID,
		Name:         o.Name,
		PhoneNumber:  o.PhoneNumber,
		Description:  o.Description,
		DeliveryDate: o.DeliveryDate,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
	}
}

func PayloadToDraft(p OrderPayload) entities.OrderDraft {
	return entities.OrderDraft{
		UserID:       p.UserID,
		Name:         p.Name,
		PhoneNumber:  p.PhoneNumber,
		Description:  p.Description,
		DeliveryDate: p.DeliveryDate,
		Status:       entities.Status(p.Status),
	}
}
