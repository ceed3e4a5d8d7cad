package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

// Status is a closed set of string variants. It is validated at the API
// boundary and stored as plain text, so comparisons never rely on anything
// beyond string equality.
type Status string

const (
	StatusReceived  Status = "received"
	StatusInProcess Status = "inProcess"
	StatusFinish    Status = "finish"
)

type Order struct {
	ID           string
	OrderNumber  int
	UserID       string
	Name         string
	PhoneNumber  string
	Description  string
	DeliveryDate time.Time
	Status       Status
	CreatedAt    time.Time
}

// OrderDraft carries the mutable fields supplied by the client.
// ID, OrderNumber and CreatedAt are always computed server-side.
type OrderDraft struct {
	UserID       string
	Name         string
	PhoneNumber  string
	Description  string
	DeliveryDate time.Time
	Status       Status
}

var (
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderNumberConflict means two creates raced for the same
	// order_number; the create transaction is retried on it.
	ErrOrderNumberConflict = errors.New("order number conflict")
)

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
}
