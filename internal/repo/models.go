package repo

import (
	"time"

	"github.com/Juangrcode/sk-cleanup-orders/internal/entities"
)

type Order struct {
	ID           string    `db:"id"`
	OrderNumber  int       `db:"order_number"`
	UserID       string    `db:"user_id"`
	Name         string    `db:"name"`
	PhoneNumber  string    `db:"phone_number"`
	Description  string    `db:"description"`
	DeliveryDate time.Time `db:"delivery_date"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

var orderColumns = []string{
	"id", "order_number", "user_id", "name", "phone_number",
	"description", "delivery_date", "status", "created_at",
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		UserID:       o.UserID,
		Name:         o.Name,
		PhoneNumber:  o.PhoneNumber,
		Description:  o.Description,
		DeliveryDate: o.DeliveryDate,
		Status:       entities.Status(o.Status),
		CreatedAt:    o.CreatedAt,
	}
}
