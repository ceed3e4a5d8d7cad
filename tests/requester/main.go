package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

const baseURL = "http://localhost:8080/api/orders"

type order struct {
	ID           string    `json:"id,omitempty"`
	OrderNumber  int       `json:"order_number,omitempty"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	PhoneNumber  string    `json:"phone_number"`
	Description  string    `json:"description"`
	DeliveryDate time.Time `json:"delivery_date"`
	Status       string    `json:"status,omitempty"`
}

// Прогоняет полный цикл: create -> list -> get -> update -> delete -> get (404).
func main() {
	created := do(http.MethodPost, baseURL, order{
		UserID:       "6383daa25e6687g5f00a3457",
		Name:         "Jorge",
		PhoneNumber:  "3000000000",
		Description:  "This is a description about order.",
		DeliveryDate: time.Now().Add(48 * time.Hour),
	})

	do(http.MethodGet, baseURL, nil)
	do(http.MethodGet, baseURL+"/"+created.ID, nil)

	updated := created
	updated.Status = "inProcess"
	do(http.MethodPut, baseURL+"/"+created.ID, updated)

	do(http.MethodDelete, baseURL+"/"+created.ID, nil)
	do(http.MethodGet, baseURL+"/"+created.ID, nil)
}

func do(method, url string, body any) order {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			fail(err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		fail(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fail(err)
	}
	defer resp.Body.Close()

	fmt.Println(method, url, "->", resp.Status)

	var result order
	json.NewDecoder(resp.Body).Decode(&result)
	return result
}

func fail(err error) {
	fmt.Println("Ошибка запроса:", err)
	os.Exit(1)
}
